package services

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"

	"gorm.io/gorm"
)

// Congolese mobile numbers without the country prefix.
var phonePattern = regexp.MustCompile(`^\d{9}$`)

// PaymentService processes Mobile Money payments for reservations.
type PaymentService struct {
	paymentRepo *repositories.PaymentRepository
	resRepo     *repositories.ReservationRepository
}

func NewPaymentService(paymentRepo *repositories.PaymentRepository, resRepo *repositories.ReservationRepository) *PaymentService {
	return &PaymentService{
		paymentRepo: paymentRepo,
		resRepo:     resRepo,
	}
}

// Process records the payment for one of the user's reservations and marks
// it PAYE. A reservation can only be paid once; the amount always equals
// the reservation total.
func (s *PaymentService) Process(ctx context.Context, user *gormModels.User, req *dtos.PaymentRequest) (*dtos.PaymentResultResponse, error) {
	if !phonePattern.MatchString(req.PhoneNumber) {
		return nil, ErrInvalidPhone
	}

	reservation, err := s.resRepo.GetOwned(ctx, req.ReservationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	existing, err := s.paymentRepo.GetByReservation(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrAlreadyPaid
	}

	mode, err := s.paymentRepo.GetOrCreateMode(ctx, constants.PaymentModeMobileMoney)
	if err != nil {
		return nil, err
	}

	phone := req.PhoneNumber
	payment := &gormModels.Payment{
		Montant:        reservation.TotalPayer,
		ReservationID:  reservation.ID,
		ModePaiementID: mode.ID,
		PhoneNumber:    &phone,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		return nil, err
	}

	reservation.Statut = constants.ReservationStatusPaid
	if err := s.resRepo.Save(ctx, reservation); err != nil {
		return nil, err
	}

	return &dtos.PaymentResultResponse{
		Status:        "ok",
		ReservationID: reservation.ID,
		Statut:        reservation.Statut,
		Montant:       fmt.Sprintf("%.2f", payment.Montant),
	}, nil
}
