package services

import (
	"errors"
	"fmt"
)

// Business errors surfaced to API clients. Messages are user-facing and
// kept in French like the rest of the wire format.
var (
	ErrFlightNotFound      = errors.New("Vol introuvable.")
	ErrReservationNotFound = errors.New("Réservation introuvable.")
	ErrUserNotFound        = errors.New("Utilisateur introuvable.")
	ErrAircraftNotFound    = errors.New("Avion introuvable.")
	ErrPaymentNotFound     = errors.New("Aucun paiement trouvé pour cette réservation.")

	ErrEmailTaken         = errors.New("Un utilisateur avec cet email existe déjà.")
	ErrInvalidCredentials = errors.New("Email ou mot de passe incorrect.")
	ErrWrongOldPassword   = errors.New("L'ancien mot de passe est incorrect.")

	ErrAlreadyPaid  = errors.New("Le paiement pour cette réservation a déjà été effectué.")
	ErrInvalidPhone = errors.New("Le numéro de téléphone doit contenir exactement 9 chiffres.")

	ErrInvalidSeats        = errors.New("Le nombre de places doit être strictement positif.")
	ErrInvalidCapacity     = errors.New("La capacité doit être strictement positive.")
	ErrUnusableAircraft    = errors.New("La capacité de l'avion associé au vol est invalide.")
	ErrFlightHasBookings   = errors.New("Impossible de supprimer ce vol car il possède des réservations. Veuillez l'annuler à la place.")
	ErrAircraftInUse       = errors.New("Impossible de supprimer un avion associé à au moins un vol.")
	ErrUserHasReservations = errors.New("Impossible de supprimer un utilisateur ayant des réservations.")

	ErrNotAnImage = errors.New("Seuls les fichiers image sont autorisés.")
	ErrEmptyFile  = errors.New("Le fichier envoyé est vide.")
)

// CapacityError reports how many seats are still available when a booking
// asks for more than the aircraft can take.
type CapacityError struct {
	Remaining int
}

func (e *CapacityError) Error() string {
	return fmt.Sprintf("Capacité insuffisante sur ce vol. Places restantes : %d.", e.Remaining)
}
