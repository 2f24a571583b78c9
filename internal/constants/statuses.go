package constants

// Flight statuses (vol.statut).
const (
	FlightStatusActive  = "actif"
	FlightStatusBlocked = "bloque"
)

// Aircraft statuses (avion.statut).
const (
	AircraftStatusAvailable = "disponible"
)

// Reservation statuses (reservation.statut).
const (
	ReservationStatusPending   = "EN_ATTENTE"
	ReservationStatusPaid      = "PAYE"
	ReservationStatusConfirmed = "CONFIRMEE"
	ReservationStatusCancelled = "ANNULEE"
)

// CancelledFlightStatuses lists the spellings tolerated when counting
// cancelled flights. Legacy rows carry accented and English variants.
var CancelledFlightStatuses = []string{
	"annule", "annulé", "annulee", "annulée", "cancelled", "canceled",
}

// PaymentModeMobileMoney is the libelle of the default payment mode.
const PaymentModeMobileMoney = "Mobile Money"

// BookingTax is the fixed service fee added to every reservation total.
const BookingTax = 12.50
