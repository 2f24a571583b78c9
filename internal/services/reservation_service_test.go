package services

import (
	"errors"
	"testing"

	"jetcongo/backend/internal/models/dtos"
)

func TestCreateReservationTotalIncludesTax(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	if created.Statut != "EN_ATTENTE" {
		t.Errorf("statut = %q, want EN_ATTENTE", created.Statut)
	}
	// 2 x 245.00 + 12.50 service fee
	if created.TotalPayer != "502.50" {
		t.Errorf("total = %q, want 502.50", created.TotalPayer)
	}
}

func TestCreateReservationCapacity(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 10)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	if _, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 8,
	}); err != nil {
		t.Fatalf("first booking: %v", err)
	}

	_, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 3,
	})
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("overbooking err = %v, want CapacityError", err)
	}
	if capErr.Remaining != 2 {
		t.Errorf("remaining = %d, want 2", capErr.Remaining)
	}

	// The last two seats are still bookable.
	if _, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	}); err != nil {
		t.Fatalf("booking remaining seats: %v", err)
	}
}

func TestCancelledSeatsFreeCapacity(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 10)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	full, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 10,
	})
	if err != nil {
		t.Fatalf("full booking: %v", err)
	}

	if _, err := svc.Cancel(testCtx(), full.ID); err != nil {
		t.Fatalf("cancel: %v", err)
	}

	if _, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 10,
	}); err != nil {
		t.Fatalf("rebooking after cancel: %v", err)
	}
}

func TestCreateReservationValidation(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)
	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")
	blocked := seedFlight(t, gdb, aircraft.ID, 245, "bloque")

	if _, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 0,
	}); !errors.Is(err, ErrInvalidSeats) {
		t.Errorf("zero seats err = %v, want ErrInvalidSeats", err)
	}
	if _, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: blocked.ID, Seats: 1,
	}); !errors.Is(err, ErrFlightNotFound) {
		t.Errorf("blocked flight err = %v, want ErrFlightNotFound", err)
	}
}

func TestGetOwnedScoping(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	owner := seedUser(t, gdb, "owner@jetcongo.cd", "client")
	other := seedUser(t, gdb, "other@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := svc.Create(testCtx(), owner, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	detail, err := svc.GetOwned(testCtx(), owner, created.ID)
	if err != nil {
		t.Fatalf("get owned: %v", err)
	}
	if detail.Vol.VilleDepart != "Kinshasa" || detail.Vol.Prix != "245.00" {
		t.Errorf("flight info = %+v", detail.Vol)
	}

	if _, err := svc.GetOwned(testCtx(), other, created.ID); !errors.Is(err, ErrReservationNotFound) {
		t.Errorf("foreign reservation err = %v, want ErrReservationNotFound", err)
	}
}

func TestAdminUpdateResizesAndReprices(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 10)
	flight := seedFlight(t, gdb, aircraft.ID, 100, "actif")

	created, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	seats := 5
	updated, err := svc.AdminUpdate(testCtx(), created.ID, &dtos.AdminReservationUpdateRequest{Seats: &seats})
	if err != nil {
		t.Fatalf("resize: %v", err)
	}
	if updated.NombrePlace != 5 {
		t.Errorf("seats = %d, want 5", updated.NombrePlace)
	}
	if updated.TotalPayer != 512.50 {
		t.Errorf("total = %v, want 512.50", updated.TotalPayer)
	}

	// Resizing must not count the reservation's own seats against capacity.
	full := 10
	if _, err := svc.AdminUpdate(testCtx(), created.ID, &dtos.AdminReservationUpdateRequest{Seats: &full}); err != nil {
		t.Fatalf("resize to full capacity: %v", err)
	}

	over := 11
	_, err = svc.AdminUpdate(testCtx(), created.ID, &dtos.AdminReservationUpdateRequest{Seats: &over})
	var capErr *CapacityError
	if !errors.As(err, &capErr) {
		t.Fatalf("oversize err = %v, want CapacityError", err)
	}
}

func TestConfirmAndCancel(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := svc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 1,
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}

	confirmed, err := svc.Confirm(testCtx(), created.ID)
	if err != nil {
		t.Fatalf("confirm: %v", err)
	}
	if confirmed.Statut != "CONFIRMEE" {
		t.Errorf("statut = %q, want CONFIRMEE", confirmed.Statut)
	}

	cancelled, err := svc.Cancel(testCtx(), created.ID)
	if err != nil {
		t.Fatalf("cancel: %v", err)
	}
	if cancelled.Statut != "ANNULEE" {
		t.Errorf("statut = %q, want ANNULEE", cancelled.Statut)
	}

	if _, err := svc.Confirm(testCtx(), 9999); !errors.Is(err, ErrReservationNotFound) {
		t.Errorf("missing reservation err = %v, want ErrReservationNotFound", err)
	}
}

func TestAdminCreateOnBehalf(t *testing.T) {
	gdb := newTestDB(t)
	svc := newReservationService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 200, "actif")

	created, err := svc.AdminCreate(testCtx(), &dtos.AdminReservationCreateRequest{
		UtilisateurID: user.ID, VolID: flight.ID, Seats: 3,
	})
	if err != nil {
		t.Fatalf("admin create: %v", err)
	}
	if created.TotalPayer != "612.50" {
		t.Errorf("total = %q, want 612.50", created.TotalPayer)
	}

	if _, err := svc.AdminCreate(testCtx(), &dtos.AdminReservationCreateRequest{
		UtilisateurID: 9999, VolID: flight.ID, Seats: 1,
	}); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("unknown user err = %v, want ErrUserNotFound", err)
	}
}
