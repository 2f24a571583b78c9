package entities

// OverviewStats carries the agent dashboard headline numbers.
type OverviewStats struct {
	ActiveFlights       int     `json:"active_flights"`
	PendingReservations int     `json:"pending_reservations"`
	TotalRevenue        float64 `json:"total_revenue"`
	TotalPassengers     int     `json:"total_passengers"`
}
