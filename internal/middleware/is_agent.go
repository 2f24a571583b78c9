package middleware

import (
	"net/http"
	"strings"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/constants"
)

// IsAgentMiddleware restricts a route group to back-office agents.
func IsAgentMiddleware() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			user := auth.CurrentUser(r.Context())

			if user == nil || !strings.EqualFold(user.Role, constants.RoleAgent.String()) {
				http.Error(w, "Accès réservé aux agents.", http.StatusForbidden)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
