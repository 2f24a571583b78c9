package services

import (
	"errors"
	"testing"

	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
)

func TestSearchFiltersAndSort(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)
	aircraft := seedAircraft(t, gdb, 100)

	seedFlight(t, gdb, aircraft.ID, 280, "actif")
	seedFlight(t, gdb, aircraft.ID, 195, "actif")
	seedFlight(t, gdb, aircraft.ID, 245, "actif")
	seedFlight(t, gdb, aircraft.ID, 150, "bloque")

	result, err := svc.Search(testCtx(), repositories.FlightSearch{
		Depart: "Kinshasa", Arrivee: "Goma",
	})
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(result.Data) != 3 {
		t.Fatalf("got %d flights, want 3 (blocked flight excluded)", len(result.Data))
	}
	// Default sort is price ascending.
	if result.Data[0].Prix != 195 || result.Data[2].Prix != 280 {
		t.Errorf("ascending sort broken: %v, %v", result.Data[0].Prix, result.Data[2].Prix)
	}

	desc, err := svc.Search(testCtx(), repositories.FlightSearch{SortDesc: true})
	if err != nil {
		t.Fatalf("search desc: %v", err)
	}
	if desc.Data[0].Prix != 280 {
		t.Errorf("descending sort broken: first price %v", desc.Data[0].Prix)
	}

	none, err := svc.Search(testCtx(), repositories.FlightSearch{Depart: "Lubumbashi"})
	if err != nil {
		t.Fatalf("search empty: %v", err)
	}
	if len(none.Data) != 0 {
		t.Errorf("got %d flights for unmatched city, want 0", len(none.Data))
	}
}

func TestSearchPagination(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)
	aircraft := seedAircraft(t, gdb, 100)

	for i := 0; i < 5; i++ {
		seedFlight(t, gdb, aircraft.ID, float64(100+i*10), "actif")
	}

	page1, err := svc.Search(testCtx(), repositories.FlightSearch{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("page 1: %v", err)
	}
	if len(page1.Data) != 2 || !page1.HasMore {
		t.Fatalf("page 1: %d flights, has_more=%v, want 2/true", len(page1.Data), page1.HasMore)
	}

	page3, err := svc.Search(testCtx(), repositories.FlightSearch{Page: 3, Limit: 2})
	if err != nil {
		t.Fatalf("page 3: %v", err)
	}
	if len(page3.Data) != 1 || page3.HasMore {
		t.Fatalf("page 3: %d flights, has_more=%v, want 1/false", len(page3.Data), page3.HasMore)
	}

	// Out-of-range values are normalized, not rejected.
	normalized, err := svc.Search(testCtx(), repositories.FlightSearch{Page: -4, Limit: 1000})
	if err != nil {
		t.Fatalf("normalized: %v", err)
	}
	if normalized.Page != 1 || normalized.Limit != 100 {
		t.Errorf("normalized page/limit = %d/%d, want 1/100", normalized.Page, normalized.Limit)
	}
}

func TestGetFlight(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")
	blocked := seedFlight(t, gdb, aircraft.ID, 300, "bloque")

	got, err := svc.GetFlight(testCtx(), flight.ID)
	if err != nil {
		t.Fatalf("get flight: %v", err)
	}
	if got.Avion == nil || got.Avion.Capacite != 100 {
		t.Errorf("aircraft not joined: %+v", got.Avion)
	}

	if _, err := svc.GetFlight(testCtx(), blocked.ID); !errors.Is(err, ErrFlightNotFound) {
		t.Errorf("blocked flight err = %v, want ErrFlightNotFound", err)
	}
	if _, err := svc.GetFlight(testCtx(), 9999); !errors.Is(err, ErrFlightNotFound) {
		t.Errorf("missing flight err = %v, want ErrFlightNotFound", err)
	}
}

func TestAdminListLoadFactor(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)
	resSvc := newReservationService(gdb)

	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")
	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")

	if _, err := resSvc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 25,
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	list, err := svc.AdminList(testCtx(), 50)
	if err != nil {
		t.Fatalf("admin list: %v", err)
	}
	if list.Total != 1 || len(list.Items) != 1 {
		t.Fatalf("total = %d, items = %d, want 1/1", list.Total, len(list.Items))
	}

	item := list.Items[0]
	if item.FlightCode != "JC-001" {
		t.Errorf("flight code = %q, want JC-001", item.FlightCode)
	}
	if item.SeatsBooked != 25 {
		t.Errorf("seats booked = %d, want 25", item.SeatsBooked)
	}
	if item.LoadFactor != 25.0 {
		t.Errorf("load factor = %v, want 25.0", item.LoadFactor)
	}
}

func TestAdminCreateUnknownAircraft(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)

	_, err := svc.AdminCreate(testCtx(), &dtos.FlightCreateRequest{
		DepartCity: "Kinshasa", ArriveeCity: "Goma",
		DateDepart: "2026-03-20", HeureDepart: "08:30",
		Price: 245, AircraftID: 42,
	})
	if !errors.Is(err, ErrAircraftNotFound) {
		t.Fatalf("err = %v, want ErrAircraftNotFound", err)
	}
}

func TestAdminDeleteFlightWithBookings(t *testing.T) {
	gdb := newTestDB(t)
	svc := newFlightService(gdb)
	resSvc := newReservationService(gdb)

	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")
	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")

	if _, err := resSvc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	}); err != nil {
		t.Fatalf("reserve: %v", err)
	}

	if err := svc.AdminDelete(testCtx(), flight.ID); !errors.Is(err, ErrFlightHasBookings) {
		t.Fatalf("delete err = %v, want ErrFlightHasBookings", err)
	}

	empty := seedFlight(t, gdb, aircraft.ID, 300, "actif")
	if err := svc.AdminDelete(testCtx(), empty.ID); err != nil {
		t.Fatalf("delete empty flight: %v", err)
	}
}
