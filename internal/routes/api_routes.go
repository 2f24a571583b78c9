package routes

import (
	"jetcongo/backend/internal/api"
	"jetcongo/backend/internal/config"
	"jetcongo/backend/internal/metrics"
	"jetcongo/backend/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// RegisterAPIRoutes registers every /api/v1 route. Public search and auth
// endpoints come first, then the authenticated client surface, then the
// agent-only back-office.
func RegisterAPIRoutes(r chi.Router, cfg *config.Config, deps *api.Dependencies, metricsReg *metrics.MetricsRegistry) {

	svcs := deps.Services

	r.Route("/api/v1", func(v1 chi.Router) {

		// Public
		v1.Get("/flights", api.SearchFlightsHandler(svcs.Flights, metricsReg))
		v1.Get("/flights/{id}", api.GetFlightHandler(svcs.Flights))

		// Credential endpoints are rate limited per client IP.
		v1.Group(func(creds chi.Router) {
			creds.Use(middleware.RateLimitMiddleware)
			creds.Post("/auth/register", api.RegisterHandler(svcs.Users))
			creds.Post("/auth/login", api.LoginHandler(svcs.Users))
		})

		// Authenticated clients
		v1.Group(func(authed chi.Router) {
			authed.Use(middleware.AuthMiddleware(deps.Repo.User, cfg.JWTSecret))

			authed.Get("/users/me", api.MeHandler())
			authed.Put("/users/me", api.UpdateProfileHandler(svcs.Users))
			authed.Post("/users/me/password", api.ChangePasswordHandler(svcs.Users))
			authed.Post("/users/me/avatar", api.UploadAvatarHandler(svcs.Users))
			authed.Get("/users/me/avatar", api.GetAvatarHandler())

			authed.Post("/reservations", api.CreateReservationHandler(svcs.Reservations, metricsReg))
			authed.Get("/reservations/{id}", api.GetReservationHandler(svcs.Reservations))

			authed.Post("/payments/process", api.ProcessPaymentHandler(svcs.Payments, metricsReg))
			authed.Get("/payments/{reservation_id}/receipt", api.GetReceiptHandler(svcs.Receipts))

			// Agent back-office
			authed.Group(func(admin chi.Router) {
				admin.Use(middleware.IsAgentMiddleware())

				admin.Get("/admin/stats/overview", api.AdminStatsOverviewHandler(svcs.Stats))
				admin.Get("/admin/stats/weekly-bookings", api.AdminWeeklyBookingsHandler(svcs.Stats))

				admin.Get("/admin/flights", api.AdminListFlightsHandler(svcs.Flights))
				admin.Get("/admin/flights/summary", api.AdminFlightsSummaryHandler(svcs.Stats))
				admin.Post("/admin/flights", api.AdminCreateFlightHandler(svcs.Flights))
				admin.Put("/admin/flights/{id}", api.AdminUpdateFlightHandler(svcs.Flights))
				admin.Delete("/admin/flights/{id}", api.AdminDeleteFlightHandler(svcs.Flights))

				admin.Get("/admin/aircrafts", api.AdminListAircraftHandler(svcs.Fleet))
				admin.Post("/admin/aircrafts", api.AdminCreateAircraftHandler(svcs.Fleet))
				admin.Put("/admin/aircrafts/{id}", api.AdminUpdateAircraftHandler(svcs.Fleet))
				admin.Delete("/admin/aircrafts/{id}", api.AdminDeleteAircraftHandler(svcs.Fleet))

				admin.Get("/admin/users", api.AdminListUsersHandler(svcs.Users))
				admin.Post("/admin/users", api.AdminCreateUserHandler(svcs.Users))
				admin.Put("/admin/users/{id}", api.AdminUpdateUserHandler(svcs.Users))
				admin.Delete("/admin/users/{id}", api.AdminDeleteUserHandler(svcs.Users))

				admin.Get("/admin/reservations", api.AdminListReservationsHandler(svcs.Reservations))
				admin.Get("/admin/reservations/recent", api.AdminRecentReservationsHandler(svcs.Stats))
				admin.Post("/admin/reservations", api.AdminCreateReservationHandler(svcs.Reservations))
				admin.Put("/admin/reservations/{id}", api.AdminUpdateReservationHandler(svcs.Reservations))
				admin.Post("/admin/reservations/{id}/confirm", api.AdminConfirmReservationHandler(svcs.Reservations))
				admin.Post("/admin/reservations/{id}/cancel", api.AdminCancelReservationHandler(svcs.Reservations))
			})
		})
	})
}
