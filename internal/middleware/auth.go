package middleware

import (
	"net/http"
	"strings"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/db/repositories"
)

// AuthMiddleware validates the Bearer token and loads the current user into
// the request context. Requests without a valid token get a 401.
func AuthMiddleware(userRepo *repositories.UserRepository, jwtSecret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if !strings.HasPrefix(authHeader, "Bearer ") {
				http.Error(w, "Unauthorized. Missing bearer token", http.StatusUnauthorized)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			userID, err := auth.ParseAccessToken(tokenString, jwtSecret)
			if err != nil {
				http.Error(w, "Unauthorized. Invalid token", http.StatusUnauthorized)
				return
			}

			user, err := userRepo.GetByID(r.Context(), userID)
			if err != nil {
				// Token subject no longer exists.
				http.Error(w, "Unauthorized. Unknown user", http.StatusUnauthorized)
				return
			}

			ctx := auth.SetCurrentUser(r.Context(), user)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
