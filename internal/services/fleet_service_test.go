package services

import (
	"errors"
	"testing"

	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
)

func TestFleetCreateAndList(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewFleetService(
		repositories.NewAircraftRepository(gdb),
		repositories.NewFlightRepository(gdb),
	)

	if _, err := svc.Create(testCtx(), &dtos.AircraftCreateRequest{
		Modele: "Airbus A320", Capacite: 0,
	}); !errors.Is(err, ErrInvalidCapacity) {
		t.Fatalf("zero capacity err = %v, want ErrInvalidCapacity", err)
	}

	aircraft, err := svc.Create(testCtx(), &dtos.AircraftCreateRequest{
		Modele: "Airbus A320", Capacite: 160,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if aircraft.Statut != "disponible" {
		t.Errorf("default statut = %q, want disponible", aircraft.Statut)
	}

	seedFlight(t, gdb, aircraft.ID, 245, "actif")
	seedFlight(t, gdb, aircraft.ID, 280, "actif")

	list, err := svc.List(testCtx())
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if list.Total != 1 {
		t.Fatalf("total = %d, want 1", list.Total)
	}
	if list.Items[0].VolsCount != 2 {
		t.Errorf("vols_count = %d, want 2", list.Items[0].VolsCount)
	}
}

func TestFleetUpdateBlocksFlights(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewFleetService(
		repositories.NewAircraftRepository(gdb),
		repositories.NewFlightRepository(gdb),
	)
	flightSvc := newFlightService(gdb)

	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	status := "maintenance"
	if _, err := svc.Update(testCtx(), aircraft.ID, &dtos.AircraftUpdateRequest{Statut: &status}); err != nil {
		t.Fatalf("update: %v", err)
	}

	// The aircraft's active flights must leave the public search.
	if _, err := flightSvc.GetFlight(testCtx(), flight.ID); !errors.Is(err, ErrFlightNotFound) {
		t.Fatalf("flight still active after grounding, err = %v", err)
	}
}

func TestFleetDeleteInUse(t *testing.T) {
	gdb := newTestDB(t)
	svc := NewFleetService(
		repositories.NewAircraftRepository(gdb),
		repositories.NewFlightRepository(gdb),
	)

	busy := seedAircraft(t, gdb, 100)
	seedFlight(t, gdb, busy.ID, 245, "actif")
	idle := seedAircraft(t, gdb, 78)

	if err := svc.Delete(testCtx(), busy.ID); !errors.Is(err, ErrAircraftInUse) {
		t.Fatalf("busy delete err = %v, want ErrAircraftInUse", err)
	}
	if err := svc.Delete(testCtx(), idle.ID); err != nil {
		t.Fatalf("idle delete: %v", err)
	}
	if err := svc.Delete(testCtx(), 9999); !errors.Is(err, ErrAircraftNotFound) {
		t.Fatalf("missing delete err = %v, want ErrAircraftNotFound", err)
	}
}
