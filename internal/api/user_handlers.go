package api

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/common"
	"jetcongo/backend/internal/models/dtos"
	"jetcongo/backend/internal/services"
)

// maxAvatarBytes caps profile picture uploads at 2 MiB.
const maxAvatarBytes = 2 << 20

// MeHandler handles GET /api/v1/users/me.
func MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		common.RespondSuccess(w, initTime, "", &dtos.UserResponse{
			ID:     user.ID,
			Email:  user.Email,
			Nom:    user.Nom,
			Role:   user.Role,
			Status: user.Status,
		})
	}
}

// UpdateProfileHandler handles PUT /api/v1/users/me.
func UpdateProfileHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		var req dtos.UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}

		updated, err := userSvc.UpdateProfile(r.Context(), user, &req)
		if err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Profil mis à jour.", updated)
	}
}

// ChangePasswordHandler handles POST /api/v1/users/me/password.
func ChangePasswordHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		var req dtos.ChangePasswordRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			common.RespondError(w, initTime, nil, "Corps de requête invalide.", http.StatusBadRequest)
			return
		}
		if req.NewPassword == "" {
			common.RespondError(w, initTime, nil, "Le nouveau mot de passe est requis.", http.StatusBadRequest)
			return
		}

		if err := userSvc.ChangePassword(r.Context(), user, req.OldPassword, req.NewPassword); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Mot de passe modifié.", nil)
	}
}

// UploadAvatarHandler handles POST /api/v1/users/me/avatar. The image comes
// in as the "file" part of a multipart form.
func UploadAvatarHandler(userSvc *services.UserService) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		if err := r.ParseMultipartForm(maxAvatarBytes); err != nil {
			common.RespondError(w, initTime, nil, "Formulaire multipart invalide.", http.StatusBadRequest)
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			common.RespondError(w, initTime, nil, "Le fichier est requis.", http.StatusBadRequest)
			return
		}
		defer file.Close()

		content, err := io.ReadAll(io.LimitReader(file, maxAvatarBytes+1))
		if err != nil {
			common.RespondError(w, initTime, nil, "Lecture du fichier impossible.", http.StatusBadRequest)
			return
		}
		if len(content) > maxAvatarBytes {
			common.RespondError(w, initTime, nil, "Le fichier dépasse la taille maximale de 2 Mo.", http.StatusRequestEntityTooLarge)
			return
		}

		contentType := header.Header.Get("Content-Type")
		if err := userSvc.SetAvatar(r.Context(), user, content, contentType); err != nil {
			respondServiceError(w, initTime, err)
			return
		}

		common.RespondSuccess(w, initTime, "Avatar mis à jour.", nil)
	}
}

// GetAvatarHandler handles GET /api/v1/users/me/avatar. It writes the raw
// image instead of the JSON envelope.
func GetAvatarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		initTime := time.Now()
		user := auth.CurrentUser(r.Context())

		if len(user.Avatar) == 0 {
			common.RespondError(w, initTime, nil, "Aucun avatar enregistré.", http.StatusNotFound)
			return
		}

		contentType := "image/png"
		if user.AvatarMime != nil {
			contentType = *user.AvatarMime
		}
		w.Header().Set("Content-Type", contentType)
		_, _ = w.Write(user.Avatar)
	}
}
