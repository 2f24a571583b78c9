package api

import (
	"encoding/json"
	"net/http"
	"time"

	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/services"
)

// RegisterHandler handles POST /api/v1/auth/register.
func RegisterHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.RegisterRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.Email == "" || req.Nom == "" || req.Password == "" {
			common.RespondError(w, initTime, nil, "Email, nom et mot de passe sont requis.", http.StatusBadRequest)
			return
		}

		user, err := userSvc.Register(r.Context(), &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Compte créé.", user, http.StatusCreated)
	}
}

// LoginHandler handles POST /api/v1/auth/login.
func LoginHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()

		var req dtos.LoginRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		token, err := userSvc.Login(r.Context(), req.Email, req.Password)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Connexion réussie.", token)
	}
}
