package services

import (
	"errors"
	"testing"

	"jetcongo/backend/internal/models/dtos"
)

func TestProcessPayment(t *testing.T) {
	gdb := newTestDB(t)
	resSvc := newReservationService(gdb)
	paySvc := newPaymentService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := resSvc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	result, err := paySvc.Process(testCtx(), user, &dtos.PaymentRequest{
		ReservationID: created.ID, PhoneNumber: "812345678",
	})
	if err != nil {
		t.Fatalf("process: %v", err)
	}
	if result.Statut != "PAYE" {
		t.Errorf("statut = %q, want PAYE", result.Statut)
	}
	if result.Montant != "502.50" {
		t.Errorf("montant = %q, want 502.50", result.Montant)
	}
}

func TestProcessPaymentPhoneValidation(t *testing.T) {
	gdb := newTestDB(t)
	paySvc := newPaymentService(gdb)
	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")

	for _, phone := range []string{"", "12345678", "1234567890", "81234567a", "+81234567"} {
		if _, err := paySvc.Process(testCtx(), user, &dtos.PaymentRequest{
			ReservationID: 1, PhoneNumber: phone,
		}); !errors.Is(err, ErrInvalidPhone) {
			t.Errorf("phone %q err = %v, want ErrInvalidPhone", phone, err)
		}
	}
}

func TestProcessPaymentTwiceFails(t *testing.T) {
	gdb := newTestDB(t)
	resSvc := newReservationService(gdb)
	paySvc := newPaymentService(gdb)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := resSvc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 1,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	req := &dtos.PaymentRequest{ReservationID: created.ID, PhoneNumber: "812345678"}
	if _, err := paySvc.Process(testCtx(), user, req); err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if _, err := paySvc.Process(testCtx(), user, req); !errors.Is(err, ErrAlreadyPaid) {
		t.Fatalf("second payment err = %v, want ErrAlreadyPaid", err)
	}
}

func TestProcessPaymentForeignReservation(t *testing.T) {
	gdb := newTestDB(t)
	resSvc := newReservationService(gdb)
	paySvc := newPaymentService(gdb)

	owner := seedUser(t, gdb, "owner@jetcongo.cd", "client")
	other := seedUser(t, gdb, "other@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := resSvc.Create(testCtx(), owner, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 1,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	if _, err := paySvc.Process(testCtx(), other, &dtos.PaymentRequest{
		ReservationID: created.ID, PhoneNumber: "812345678",
	}); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("foreign payment err = %v, want ErrReservationNotFound", err)
	}
}
