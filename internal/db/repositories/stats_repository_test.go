package repositories

import (
	"context"
	"regexp"
	"testing"

	"jetcongo/backend/internal/constants"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"
)

func TestStatsRepoOverview(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewStatsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.CountActiveFlights)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(12))
	mock.ExpectQuery(regexp.QuoteMeta(constants.CountPendingReservations)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))
	mock.ExpectQuery(regexp.QuoteMeta(constants.SumPaymentsTotal)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(1520.75))
	mock.ExpectQuery(regexp.QuoteMeta(constants.SumReservedSeats)).
		WillReturnRows(sqlmock.NewRows([]string{"coalesce"}).AddRow(87))

	stats, err := repo.Overview(context.Background())
	if err != nil {
		t.Fatalf("overview: %v", err)
	}

	if stats.ActiveFlights != 12 {
		t.Errorf("active flights = %d, want 12", stats.ActiveFlights)
	}
	if stats.PendingReservations != 4 {
		t.Errorf("pending reservations = %d, want 4", stats.PendingReservations)
	}
	if stats.TotalRevenue != 1520.75 {
		t.Errorf("total revenue = %v, want 1520.75", stats.TotalRevenue)
	}
	if stats.TotalPassengers != 87 {
		t.Errorf("total passengers = %d, want 87", stats.TotalPassengers)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("unmet expectations: %v", err)
	}
}

func TestStatsRepoOverviewPropagatesError(t *testing.T) {
	mockDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	defer mockDB.Close()

	db := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewStatsRepo(db)

	mock.ExpectQuery(regexp.QuoteMeta(constants.CountActiveFlights)).
		WillReturnError(context.DeadlineExceeded)

	if _, err := repo.Overview(context.Background()); err == nil {
		t.Fatal("expected error, got nil")
	}
}
