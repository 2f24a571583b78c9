package api

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/services"
)

// Back-office handlers under /api/v1/admin, agent role required.

// --- Dashboard ---

// AdminStatsOverviewHandler handles GET /admin/stats/overview.
func AdminStatsOverviewHandler(statsSvc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		stats, err := statsSvc.Overview(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", stats)
	}
}

// AdminWeeklyBookingsHandler handles GET /admin/stats/weekly-bookings.
func AdminWeeklyBookingsHandler(statsSvc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := statsSvc.WeeklyBookings(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminRecentReservationsHandler handles GET /admin/reservations/recent.
func AdminRecentReservationsHandler(statsSvc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := statsSvc.RecentReservations(r.Context(), queryInt(r, "limit", 5))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminFlightsSummaryHandler handles GET /admin/flights/summary.
func AdminFlightsSummaryHandler(statsSvc *services.StatsService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := statsSvc.FlightsSummary(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// --- Flights ---

// parseAdminLimit reads the limit query parameter, defaulting to 200 and
// rejecting anything outside 1..500.
func parseAdminLimit(r *http.Request) (int, bool) {
	v := r.URL.Query().Get("limit")
	if v == "" {
		return 200, true
	}
	limit, err := strconv.Atoi(v)
	if err != nil || limit < 1 || limit > 500 {
		return 0, false
	}
	return limit, true
}

// AdminListFlightsHandler handles GET /admin/flights.
func AdminListFlightsHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		limit, ok := parseAdminLimit(r)
		if !ok {
			common.RespondError(w, initTime, nil, "La limite doit être comprise entre 1 et 500.", http.StatusBadRequest)
			return
		}

		data, err := flightSvc.AdminList(r.Context(), limit)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminCreateFlightHandler handles POST /admin/flights.
func AdminCreateFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.FlightCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.DepartCity == "" || req.ArriveeCity == "" || req.DateDepart == "" || req.HeureDepart == "" {
			common.RespondError(w, initTime, nil, "Villes, date et heure de départ sont requises.", http.StatusBadRequest)
			return
		}
		if req.Price < 0 {
			common.RespondError(w, initTime, nil, "Le prix ne peut pas être négatif.", http.StatusBadRequest)
			return
		}

		flight, err := flightSvc.AdminCreate(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vol créé.", flight, http.StatusCreated)
	}
}

// AdminUpdateFlightHandler handles PUT /admin/flights/{id}.
func AdminUpdateFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de vol invalide.", http.StatusBadRequest)
			return
		}

		var req dtos.FlightUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.Price != nil && *req.Price < 0 {
			common.RespondError(w, initTime, nil, "Le prix ne peut pas être négatif.", http.StatusBadRequest)
			return
		}

		flight, err := flightSvc.AdminUpdate(r.Context(), id, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vol mis à jour.", flight)
	}
}

// AdminDeleteFlightHandler handles DELETE /admin/flights/{id}.
func AdminDeleteFlightHandler(flightSvc *services.FlightService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de vol invalide.", http.StatusBadRequest)
			return
		}

		if err := flightSvc.AdminDelete(r.Context(), id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Vol supprimé.", nil)
	}
}

// --- Aircraft ---

// AdminListAircraftHandler handles GET /admin/aircrafts.
func AdminListAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := fleetSvc.List(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminCreateAircraftHandler handles POST /admin/aircrafts.
func AdminCreateAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AircraftCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.Modele == "" {
			common.RespondError(w, initTime, nil, "Le modèle est requis.", http.StatusBadRequest)
			return
		}

		aircraft, err := fleetSvc.Create(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Avion créé.", aircraft, http.StatusCreated)
	}
}

// AdminUpdateAircraftHandler handles PUT /admin/aircrafts/{id}.
func AdminUpdateAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant d'avion invalide.", http.StatusBadRequest)
			return
		}

		var req dtos.AircraftUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		aircraft, err := fleetSvc.Update(r.Context(), id, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Avion mis à jour.", aircraft)
	}
}

// AdminDeleteAircraftHandler handles DELETE /admin/aircrafts/{id}.
func AdminDeleteAircraftHandler(fleetSvc *services.FleetService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant d'avion invalide.", http.StatusBadRequest)
			return
		}

		if err := fleetSvc.Delete(r.Context(), id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Avion supprimé.", nil)
	}
}

// --- Users ---

// AdminListUsersHandler handles GET /admin/users. Optional role and status
// filters.
func AdminListUsersHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		q := r.URL.Query()
		data, err := userSvc.AdminList(r.Context(), q.Get("role"), q.Get("status"))
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminCreateUserHandler handles POST /admin/users.
func AdminCreateUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AdminUserCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Nom == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email, nom et mot de passe sont requis.", http.StatusBadRequest)
			return
		}

		user, err := userSvc.AdminCreate(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Utilisateur créé.", user, http.StatusCreated)
	}
}

// AdminUpdateUserHandler handles PUT /admin/users/{id}.
func AdminUpdateUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant d'utilisateur invalide.", http.StatusBadRequest)
			return
		}

		var req dtos.AdminUserUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		user, err := userSvc.AdminUpdate(r.Context(), id, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Utilisateur mis à jour.", user)
	}
}

// AdminDeleteUserHandler handles DELETE /admin/users/{id}.
func AdminDeleteUserHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant d'utilisateur invalide.", http.StatusBadRequest)
			return
		}

		if err := userSvc.AdminDelete(r.Context(), id); err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Utilisateur supprimé.", nil)
	}
}

// --- Reservations ---

// AdminListReservationsHandler handles GET /admin/reservations.
func AdminListReservationsHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		data, err := resSvc.AdminList(r.Context())
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "", data)
	}
}

// AdminCreateReservationHandler handles POST /admin/reservations.
func AdminCreateReservationHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.AdminReservationCreateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		created, err := resSvc.AdminCreate(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Réservation créée.", created, http.StatusCreated)
	}
}

// AdminUpdateReservationHandler handles PUT /admin/reservations/{id}.
func AdminUpdateReservationHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de réservation invalide.", http.StatusBadRequest)
			return
		}

		var req dtos.AdminReservationUpdateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		updated, err := resSvc.AdminUpdate(r.Context(), id, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Réservation mise à jour.", updated)
	}
}

// AdminConfirmReservationHandler handles POST /admin/reservations/{id}/confirm.
func AdminConfirmReservationHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de réservation invalide.", http.StatusBadRequest)
			return
		}

		result, err := resSvc.Confirm(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Réservation confirmée.", result)
	}
}

// AdminCancelReservationHandler handles POST /admin/reservations/{id}/cancel.
func AdminCancelReservationHandler(resSvc *services.ReservationService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		id, ok := pathID(r, "id")
		if !ok {
			common.RespondError(w, initTime, nil, "Identifiant de réservation invalide.", http.StatusBadRequest)
			return
		}

		result, err := resSvc.Cancel(r.Context(), id)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}
		common.RespondSuccess(w, initTime, "Réservation annulée.", result)
	}
}
