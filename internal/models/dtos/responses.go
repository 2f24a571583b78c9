package dtos

import "time"

// APIResponse is the standard JSON envelope for every API reply.
type APIResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message,omitempty"`
	ResponseTime string `json:"response_time,omitempty"`
	Data         any    `json:"data,omitempty"`
}

// --- Auth / users ---

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

type UserResponse struct {
	ID     int64   `json:"id"`
	Email  string  `json:"email"`
	Nom    string  `json:"nom"`
	Role   string  `json:"role"`
	Status *string `json:"status,omitempty"`
}

// --- Flights (public search, French keys match the vol columns) ---

type AircraftResponse struct {
	ID        int64   `json:"id"`
	Modele    string  `json:"modele"`
	Capacite  int     `json:"capacite"`
	Statut    string  `json:"statut"`
	Compagnie *string `json:"compagnie,omitempty"`
}

type FlightResponse struct {
	ID           int64             `json:"id"`
	VilleDepart  string            `json:"ville_depart"`
	VilleArrivee string            `json:"ville_arrivee"`
	DateDepart   string            `json:"date_depart"`
	HeureDepart  string            `json:"heure_depart"`
	DateArrivee  *string           `json:"date_arrivee"`
	HeureArrivee *string           `json:"heure_arrivee"`
	Prix         float64           `json:"prix"`
	Statut       string            `json:"statut"`
	AvionID      int64             `json:"avion_id"`
	Avion        *AircraftResponse `json:"avion,omitempty"`
}

type PaginatedFlightsResponse struct {
	Data    []FlightResponse `json:"data"`
	Page    int              `json:"page"`
	Limit   int              `json:"limit"`
	HasMore bool             `json:"has_more"`
}

// --- Reservations / payments ---

type ReservationCreatedResponse struct {
	ID         int64  `json:"id"`
	Statut     string `json:"statut"`
	VolID      int64  `json:"vol_id"`
	Seats      int    `json:"seats"`
	TotalPayer string `json:"total_payer"`
}

type ReservationFlightInfo struct {
	ID           int64   `json:"id"`
	VilleDepart  string  `json:"ville_depart"`
	VilleArrivee string  `json:"ville_arrivee"`
	DateDepart   string  `json:"date_depart"`
	HeureDepart  string  `json:"heure_depart"`
	DateArrivee  *string `json:"date_arrivee"`
	HeureArrivee *string `json:"heure_arrivee"`
	Prix         string  `json:"prix"`
}

type ReservationDetailResponse struct {
	ID          int64                 `json:"id"`
	Statut      string                `json:"statut"`
	NombrePlace int                   `json:"nombre_place"`
	TotalPayer  string                `json:"total_payer"`
	Vol         ReservationFlightInfo `json:"vol"`
}

type PaymentResultResponse struct {
	Status        string `json:"status"`
	ReservationID int64  `json:"reservation_id"`
	Statut        string `json:"statut"`
	Montant       string `json:"montant"`
}

// --- Back-office ---

type DayCount struct {
	Day   string `json:"day"`
	Count int    `json:"count"`
}

type WeeklyBookingsResponse struct {
	Data []DayCount `json:"data"`
}

type RecentReservationItem struct {
	ID            int64   `json:"id"`
	PassengerName string  `json:"passenger_name"`
	Initials      string  `json:"initials"`
	FlightCode    string  `json:"flight_code"`
	Status        string  `json:"status"`
	Amount        float64 `json:"amount"`
}

type RecentReservationsResponse struct {
	Items []RecentReservationItem `json:"items"`
}

type FlightsSummaryResponse struct {
	TotalFlightsToday    int     `json:"total_flights_today"`
	AvgLoadFactor        float64 `json:"avg_load_factor"`
	PendingCancellations int     `json:"pending_cancellations"`
}

type AdminFlightItem struct {
	ID               int64   `json:"id"`
	FlightCode       string  `json:"flight_code"`
	DepartCity       string  `json:"depart_city"`
	ArriveeCity      string  `json:"arrivee_city"`
	DateDepart       string  `json:"date_depart"`
	HeureDepart      string  `json:"heure_depart"`
	DateArrivee      *string `json:"date_arrivee"`
	HeureArrivee     *string `json:"heure_arrivee"`
	Price            float64 `json:"price"`
	Status           string  `json:"status"`
	AircraftModel    *string `json:"aircraft_model"`
	AircraftCapacity int     `json:"aircraft_capacity"`
	SeatsBooked      int     `json:"seats_booked"`
	LoadFactor       float64 `json:"load_factor"`
}

type AdminFlightListResponse struct {
	Items []AdminFlightItem `json:"items"`
	Total int64             `json:"total"`
	Limit int               `json:"limit"`
}

type AdminAircraftItem struct {
	ID        int64   `json:"id"`
	Modele    string  `json:"modele"`
	Capacite  int     `json:"capacite"`
	Statut    string  `json:"statut"`
	Compagnie *string `json:"compagnie"`
	VolsCount int     `json:"vols_count"`
}

type AdminAircraftListResponse struct {
	Items []AdminAircraftItem `json:"items"`
	Total int                 `json:"total"`
}

type AdminUserListResponse struct {
	Items []UserResponse `json:"items"`
	Total int            `json:"total"`
}

type AdminReservationUser struct {
	ID    int64  `json:"id"`
	Nom   string `json:"nom"`
	Email string `json:"email"`
}

type AdminReservationFlight struct {
	ID           int64  `json:"id"`
	VilleDepart  string `json:"ville_depart"`
	VilleArrivee string `json:"ville_arrivee"`
	DateDepart   string `json:"date_depart"`
	HeureDepart  string `json:"heure_depart"`
}

type AdminReservationItem struct {
	ID              int64                   `json:"id"`
	Statut          string                  `json:"statut"`
	DateReservation time.Time               `json:"date_reservation"`
	NombrePlace     int                     `json:"nombre_place"`
	TotalPayer      float64                 `json:"total_payer"`
	Utilisateur     *AdminReservationUser   `json:"utilisateur"`
	Vol             *AdminReservationFlight `json:"vol"`
}

type AdminReservationListResponse struct {
	Items []AdminReservationItem `json:"items"`
	Total int                    `json:"total"`
}

type ReservationStatusResponse struct {
	ID          int64   `json:"id"`
	Statut      string  `json:"statut"`
	NombrePlace int     `json:"nombre_place,omitempty"`
	TotalPayer  float64 `json:"total_payer,omitempty"`
}
