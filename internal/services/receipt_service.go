package services

import (
	"bytes"
	"context"
	"errors"
	"fmt"

	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	gormModels "jetcongo/backend/internal/models/gorm"

	"github.com/phpdave11/gofpdf"
	"gorm.io/gorm"
)

// ReceiptService renders the PDF receipt of a paid reservation.
type ReceiptService struct {
	resRepo     *repositories.ReservationRepository
	paymentRepo *repositories.PaymentRepository
}

func NewReceiptService(resRepo *repositories.ReservationRepository, paymentRepo *repositories.PaymentRepository) *ReceiptService {
	return &ReceiptService{
		resRepo:     resRepo,
		paymentRepo: paymentRepo,
	}
}

// Generate builds the receipt for one of the user's reservations. The
// reservation must have a recorded payment.
func (s *ReceiptService) Generate(ctx context.Context, user *gormModels.User, reservationID int64) ([]byte, error) {
	reservation, err := s.resRepo.GetOwned(ctx, reservationID, user.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrReservationNotFound
		}
		return nil, err
	}

	payment, err := s.paymentRepo.GetByReservation(ctx, reservation.ID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, ErrPaymentNotFound
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.Cell(0, 12, "JetCongo")
	pdf.Ln(14)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.Cell(0, 8, tr("Reçu de paiement"))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Référence : JC-REC-%06d", reservation.ID)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Passager : %s", user.Nom)))
	pdf.Ln(6)
	pdf.Cell(0, 6, tr(fmt.Sprintf("Date du paiement : %s",
		payment.DatePaiement.Format("02/01/2006 15:04"))))
	pdf.Ln(10)

	if reservation.Vol != nil {
		vol := reservation.Vol
		pdf.SetFont("Helvetica", "B", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Vol : %s -> %s", vol.VilleDepart, vol.VilleArrivee)))
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 6, tr(fmt.Sprintf("Départ : %s à %s", vol.DateDepart, vol.HeureDepart)))
		pdf.Ln(10)
	}

	subtotal := reservation.TotalPayer - constants.BookingTax

	pdf.SetFont("Helvetica", "", 11)
	pdf.CellFormat(120, 7, tr(fmt.Sprintf("Billet x%d", reservation.NombrePlace)), "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f $", subtotal), "B", 1, "R", false, 0, "")
	pdf.CellFormat(120, 7, "Taxes et frais de service", "B", 0, "L", false, 0, "")
	pdf.CellFormat(40, 7, fmt.Sprintf("%.2f $", constants.BookingTax), "B", 1, "R", false, 0, "")

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 9, tr("Total payé"), "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 9, fmt.Sprintf("%.2f $", payment.Montant), "", 1, "R", false, 0, "")

	pdf.Ln(8)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.Cell(0, 5, tr("Merci d'avoir choisi JetCongo. Bon voyage !"))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
