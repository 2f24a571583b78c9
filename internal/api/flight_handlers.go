package api

import (
	"net/http"
	"strconv"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/metrics"
	"jetcongo/backend/internal/services"

	"github.com/go-chi/chi/v5"
)

func queryInt(r *http.Request, key string, fallback int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return n
}

func pathID(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

// SearchFlightsHandler handles GET /api/v1/flights. Filters: depart,
// arrivee, date (YYYY-MM-DD), sort (price_asc|price_desc), page, limit.
func SearchFlightsHandler(flightSvc *services.FlightService, metricsReg *metrics.MetricsRegistry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		params := repositories.FlightSearch{
			Depart:   q.Get("depart"),
			Arrivee:  q.Get("arrivee"),
			Date:     q.Get("date"),
			SortDesc: q.Get("sort") == "price_desc",
			Page:     queryInt(r, "page", 1),
			Limit:    queryInt(r, "limit", 10),
		}

		result, err := flightSvc.Search(r.Context(), params)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		if metricsReg != nil {
			metricsReg.FlightSearchesTotal.Inc()
		}
		common.RespondSuccess(w, initTime, "", result)
	}
}

// GetFlightHandler handles GET /api/v1/flights/{id}.
func GetFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de vol invalide.", http.StatusBadRequest)
			return
		}

		flight, err := flightSvc.GetFlight(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "", flight)
	}
}
