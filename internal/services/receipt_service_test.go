package services

import (
	"bytes"
	"errors"
	"testing"

	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
)

func TestGenerateReceipt(t *testing.T) {
	gdb := newTestDB(t)
	resSvc := newReservationService(gdb)
	paySvc := newPaymentService(gdb)
	receiptSvc := NewReceiptService(
		repositories.NewReservationRepository(gdb),
		repositories.NewPaymentRepository(gdb),
	)

	user := seedUser(t, gdb, "pax@jetcongo.cd", "client")
	aircraft := seedAircraft(t, gdb, 100)
	flight := seedFlight(t, gdb, aircraft.ID, 245, "actif")

	created, err := resSvc.Create(testCtx(), user, &dtos.CreateReservationRequest{
		VolID: flight.ID, Seats: 2,
	})
	if err != nil {
		t.Fatalf("create reservation: %v", err)
	}

	// Unpaid reservations have no receipt.
	if _, err := receiptSvc.Generate(testCtx(), user, created.ID); !errors.Is(err, ErrPaymentNotFound) {
		t.Fatalf("unpaid receipt err = %v, want ErrPaymentNotFound", err)
	}

	if _, err := paySvc.Process(testCtx(), user, &dtos.PaymentRequest{
		ReservationID: created.ID, PhoneNumber: "812345678",
	}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	content, err := receiptSvc.Generate(testCtx(), user, created.ID)
	if err != nil {
		t.Fatalf("generate: %v", err)
	}
	if len(content) == 0 {
		t.Fatal("empty receipt")
	}
	if !bytes.HasPrefix(content, []byte("%PDF")) {
		t.Errorf("receipt does not start with %%PDF header: %q", content[:8])
	}
}

func TestGenerateReceiptScoping(t *testing.T) {
	gdb := newTestDB(t)
	resSvc := newReservationService(gdb)
	paySvc := newPaymentService(gdb)
	receiptSvc := NewReceiptService(
		repositories.NewReservationRepository(gdb),
		repositories.NewPaymentRepository(gdb),
	)

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
	if _, err := paySvc.Process(testCtx(), owner, &dtos.PaymentRequest{
		ReservationID: created.ID, PhoneNumber: "812345678",
	}); err != nil {
		t.Fatalf("pay: %v", err)
	}

	if _, err := receiptSvc.Generate(testCtx(), other, created.ID); !errors.Is(err, ErrReservationNotFound) {
		t.Fatalf("foreign receipt err = %v, want ErrReservationNotFound", err)
	}
}
