package repositories

import (
	"context"

	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/models/entities"

	"github.com/jmoiron/sqlx"
)

// StatsRepo runs the dashboard aggregates over the raw sqlx connection.
type StatsRepo struct {
	db *sqlx.DB
}

func NewStatsRepo(db *sqlx.DB) *StatsRepo {
	return &StatsRepo{db: db}
}

// Overview collects the headline numbers for the agent dashboard.
func (r *StatsRepo) Overview(ctx context.Context) (*entities.OverviewStats, error) {
	stats := &entities.OverviewStats{}

	if err := r.db.GetContext(ctx, &stats.ActiveFlights, constants.CountActiveFlights); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.PendingReservations, constants.CountPendingReservations); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.TotalRevenue, constants.SumPaymentsTotal); err != nil {
		return nil, err
	}
	if err := r.db.GetContext(ctx, &stats.TotalPassengers, constants.SumReservedSeats); err != nil {
		return nil, err
	}

	return stats, nil
}
