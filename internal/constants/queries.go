package constants

const (
	CountActiveFlights = `
	SELECT COUNT(id) FROM vol WHERE statut = 'actif'
	`

	CountPendingReservations = `
	SELECT COUNT(id) FROM reservation WHERE statut = 'EN_ATTENTE'
	`

	SumPaymentsTotal = `
	SELECT COALESCE(SUM(montant), 0) FROM paiement
	`

	SumReservedSeats = `
	SELECT COALESCE(SUM(nombre_place), 0) FROM reservation
	`
)
