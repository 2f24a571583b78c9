package api

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"testing"
	"time"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/db"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"
	"jetcongo/backend/internal/services"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newHandlerTestUser(t *testing.T) (*services.UserService, *gormModels.User) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("migrate: %v", err)
	}

	user := &gormModels.User{
		Email:        "pax@jetcongo.cd",
		Nom:          "Jean Kabila",
		PasswordHash: "x",
		Role:         "client",
	}
	if err := gdb.Create(user).Error; err != nil {
		t.Fatalf("seed user: %v", err)
	}

	svc := services.NewUserService(
		repositories.NewUserRepository(gdb),
		repositories.NewReservationRepository(gdb),
		"test-secret",
		30*time.Minute,
	)
	return svc, user
}

func TestUploadAvatarMultipart(t *testing.T) {
	svc, user := newHandlerTestUser(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", `form-data; name="file"; filename="photo.png"`)
	header.Set("Content-Type", "image/png")
	part, err := form.CreatePart(header)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := part.Write([]byte("fake-png-bytes")); err != nil {
		t.Fatalf("write part: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	r := httptest.NewRequest("POST", "/api/v1/users/me/avatar", &body)
	r.Header.Set("Content-Type", form.FormDataContentType())
	r = r.WithContext(auth.SetCurrentUser(r.Context(), user))
	w := httptest.NewRecorder()

	UploadAvatarHandler(svc)(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200; body: %s", w.Code, w.Body.String())
	}

	var resp dtos.APIResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp.Status != "success" {
		t.Errorf("status = %q, want success", resp.Status)
	}
	if string(user.Avatar) != "fake-png-bytes" {
		t.Errorf("stored avatar = %q", user.Avatar)
	}
}

func TestUploadAvatarMissingFilePart(t *testing.T) {
	svc, user := newHandlerTestUser(t)

	var body bytes.Buffer
	form := multipart.NewWriter(&body)
	if err := form.WriteField("other", "value"); err != nil {
		t.Fatalf("write field: %v", err)
	}
	if err := form.Close(); err != nil {
		t.Fatalf("close form: %v", err)
	}

	r := httptest.NewRequest("POST", "/api/v1/users/me/avatar", &body)
	r.Header.Set("Content-Type", form.FormDataContentType())
	r = r.WithContext(auth.SetCurrentUser(r.Context(), user))
	w := httptest.NewRecorder()

	UploadAvatarHandler(svc)(w, r)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d, want 400", w.Code)
	}
}

func TestGetAvatarDefaultsToPNG(t *testing.T) {
	user := &gormModels.User{
		Email:  "pax@jetcongo.cd",
		Nom:    "Jean Kabila",
		Role:   "client",
		Avatar: []byte("fake-png-bytes"),
	}

	r := httptest.NewRequest("GET", "/api/v1/users/me/avatar", nil)
	r = r.WithContext(auth.SetCurrentUser(r.Context(), user))
	w := httptest.NewRecorder()

	GetAvatarHandler()(w, r)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", w.Code)
	}
	if ct := w.Header().Get("Content-Type"); ct != "image/png" {
		t.Errorf("content type = %q, want image/png", ct)
	}
	if w.Body.String() != "fake-png-bytes" {
		t.Errorf("body = %q", w.Body.String())
	}
}
