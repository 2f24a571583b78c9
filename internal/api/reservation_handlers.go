package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/metrics"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/services"
)

// CreateReservationHandler handles POST /api/v1/reservations.
func CreateReservationHandler(resSvc *services.ReservationService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		var req dtos.CreateReservationRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		created, err := resSvc.Create(r.Context(), user, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if metricsReg != nil {
			metricsReg.ReservationsCreatedTotal.Inc()
		}
		common.RespondSuccess(w, initTime, "Réservation créée.", created, http.StatusCreated)
	}
}

// GetReservationHandler handles GET /api/v1/reservations/{id}, scoped to
// the reservations of the current user.
func GetReservationHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de réservation invalide.", http.StatusBadRequest)
			return
		}

		detail, err := resSvc.GetOwned(r.Context(), user, id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", detail)
	}
}

// GetReceiptHandler handles GET /api/v1/payments/{reservation_id}/receipt.
// It streams the PDF instead of the JSON envelope.
func GetReceiptHandler(receiptSvc *services.ReceiptService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		id, ok := pathID(r, "reservation_id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de réservation invalide.", http.StatusBadRequest)
			return
		}

		content, err := receiptSvc.Generate(r.Context(), user, id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		w.Header().Set("Content-Type", "application/pdf")
		w.Header().Set("Content-Disposition",
			fmt.Sprintf("attachment; filename=recu-jetcongo-%d.pdf", id))
		_, _ = w.Write(content)
	}
}
