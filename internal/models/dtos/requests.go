package dtos

// --- Auth / users ---

type RegisterRequest struct {
	Email    string `json:"email"`
	Nom      string `json:"nom"`
	Role     string `json:"role,omitempty"`
	Password string `json:"password"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateProfileRequest struct {
	Email *string `json:"email,omitempty"`
	Nom   *string `json:"nom,omitempty"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

// --- Reservations / payments ---

// CreateReservationRequest mirrors the booking form. FullName, Email, Date and
// Time come from the frontend flow and are not persisted on the reservation.
type CreateReservationRequest struct {
	VolID    int64  `json:"vol_id"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Date     string `json:"date"`
	Time     string `json:"time"`
	Seats    int    `json:"seats"`
}

type PaymentRequest struct {
	ReservationID int64  `json:"reservation_id"`
	PhoneNumber   string `json:"phone_number"`
}

// --- Back-office ---

type FlightCreateRequest struct {
	DepartCity  string  `json:"depart_city"`
	ArriveeCity string  `json:"arrivee_city"`
	DateDepart  string  `json:"date_depart"`
	HeureDepart string  `json:"heure_depart"`
	Price       float64 `json:"price"`
	Status      string  `json:"status"`
	AircraftID  int64   `json:"aircraft_id"`
}

type FlightUpdateRequest struct {
	DepartCity  *string  `json:"depart_city,omitempty"`
	ArriveeCity *string  `json:"arrivee_city,omitempty"`
	DateDepart  *string  `json:"date_depart,omitempty"`
	HeureDepart *string  `json:"heure_depart,omitempty"`
	Price       *float64 `json:"price,omitempty"`
	Status      *string  `json:"status,omitempty"`
	AircraftID  *int64   `json:"aircraft_id,omitempty"`
}

type AircraftCreateRequest struct {
	Modele    string  `json:"modele"`
	Capacite  int     `json:"capacite"`
	Statut    string  `json:"statut"`
	Compagnie *string `json:"compagnie,omitempty"`
}

type AircraftUpdateRequest struct {
	Modele    *string `json:"modele,omitempty"`
	Capacite  *int    `json:"capacite,omitempty"`
	Statut    *string `json:"statut,omitempty"`
	Compagnie *string `json:"compagnie,omitempty"`
}

type AdminUserCreateRequest struct {
	Email    string  `json:"email"`
	Nom      string  `json:"nom"`
	Password string  `json:"password"`
	Role     string  `json:"role,omitempty"`
	Status   *string `json:"status,omitempty"`
}

type AdminUserUpdateRequest struct {
	Email  *string `json:"email,omitempty"`
	Nom    *string `json:"nom,omitempty"`
	Role   *string `json:"role,omitempty"`
	Status *string `json:"status,omitempty"`
}

type AdminReservationCreateRequest struct {
	UtilisateurID int64 `json:"utilisateur_id"`
	VolID         int64 `json:"vol_id"`
	Seats         int   `json:"seats"`
}

type AdminReservationUpdateRequest struct {
	Seats  *int    `json:"seats,omitempty"`
	Statut *string `json:"statut,omitempty"`
}
