package api

import (
	"encoding/json"
	"net/http"
	"time"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/metrics"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/services"
)

// ProcessPaymentHandler handles POST /api/v1/payments/process.
func ProcessPaymentHandler(paymentSvc *services.PaymentService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		var req dtos.PaymentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		result, err := paymentSvc.Process(r.Context(), user, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if metricsReg != nil {
			metricsReg.PaymentsProcessedTotal.Inc()
		}
		common.RespondSuccess(w, initTime, "Paiement enregistré.", result)
	}
}
