package services

import (
	"context"
	"strings"
	"time"

	"jetcongo/backend/internal/auth"
	"jetcongo/backend/internal/constants"
	"jetcongo/backend/internal/db/repositories"
	"jetcongo/backend/internal/models/dtos"
	gormModels "jetcongo/backend/internal/models/gorm"

	"golang.org/x/crypto/bcrypt"
)

// UserService covers registration, login and profile management, plus the
// back-office user administration.
type UserService struct {
	userRepo    *repositories.UserRepository
	resRepo     *repositories.ReservationRepository
	jwtSecret   string
	tokenExpiry time.Duration
}

func NewUserService(userRepo *repositories.UserRepository, resRepo *repositories.ReservationRepository, jwtSecret string, tokenExpiry time.Duration) *UserService {
	return &UserService{
		userRepo:    userRepo,
		resRepo:     resRepo,
		jwtSecret:   jwtSecret,
		tokenExpiry: tokenExpiry,
	}
}

// hashPassword hashes with bcrypt. Bcrypt only reads the first 72 bytes, so
// longer passwords are truncated up front instead of failing.
func hashPassword(password string) (string, error) {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	hash, err := bcrypt.GenerateFromPassword(raw, bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func verifyPassword(hash, password string) bool {
	raw := []byte(password)
	if len(raw) > 72 {
		raw = raw[:72]
	}
	return bcrypt.CompareHashAndPassword([]byte(hash), raw) == nil
}

func toUserResponse(user *gormModels.User) *dtos.UserResponse {
	return &dtos.UserResponse{
		ID:     user.ID,
		Email:  user.Email,
		Nom:    user.Nom,
		Role:   user.Role,
		Status: user.Status,
	}
}

// Register creates a new account. The email must be unused.
func (s *UserService) Register(ctx context.Context, req *dtos.RegisterRequest) (*dtos.UserResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = constants.RoleClient.String()
	}

	user := &gormModels.User{
		Email:        req.Email,
		Nom:          req.Nom,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

// Login verifies the credentials and issues an access token. Unknown email
// and wrong password share one error message.
func (s *UserService) Login(ctx context.Context, email, password string) (*dtos.TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if user == nil || !verifyPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	token, err := auth.CreateAccessToken(user.ID, s.jwtSecret, s.tokenExpiry)
	if err != nil {
		return nil, err
	}

	return &dtos.TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	}, nil
}

// UpdateProfile changes nom and/or email on the current user.
func (s *UserService) UpdateProfile(ctx context.Context, user *gormModels.User, req *dtos.UpdateProfileRequest) (*dtos.UserResponse, error) {
	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Nom != nil {
		user.Nom = *req.Nom
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// ChangePassword verifies the old password before storing the new hash.
func (s *UserService) ChangePassword(ctx context.Context, user *gormModels.User, oldPassword, newPassword string) error {
	if !verifyPassword(user.PasswordHash, oldPassword) {
		return ErrWrongOldPassword
	}

	hash, err := hashPassword(newPassword)
	if err != nil {
		return err
	}
	user.PasswordHash = hash
	return s.userRepo.Save(ctx, user)
}

// SetAvatar stores the uploaded image in-row together with its MIME type.
func (s *UserService) SetAvatar(ctx context.Context, user *gormModels.User, content []byte, contentType string) error {
	if !strings.HasPrefix(contentType, "image/") {
		return ErrNotAnImage
	}
	if len(content) == 0 {
		return ErrEmptyFile
	}

	user.Avatar = content
	user.AvatarMime = &contentType
	return s.userRepo.Save(ctx, user)
}

// --- Back-office ---

func (s *UserService) AdminList(ctx context.Context, role, status string) (*dtos.AdminUserListResponse, error) {
	users, err := s.userRepo.List(ctx, role, status)
	if err != nil {
		return nil, err
	}

	items := make([]dtos.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, *toUserResponse(&users[i]))
	}
	return &dtos.AdminUserListResponse{Items: items, Total: len(items)}, nil
}

// AdminCreate opens an account from the back-office. Unlike the public
// registration, the agent may set the role and status directly.
func (s *UserService) AdminCreate(ctx context.Context, req *dtos.AdminUserCreateRequest) (*dtos.UserResponse, error) {
	existing, err := s.userRepo.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	hash, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	role := req.Role
	if role == "" {
		role = constants.RoleClient.String()
	}

	user := &gormModels.User{
		Email:        req.Email,
		Nom:          req.Nom,
		PasswordHash: hash,
		Role:         role,
		Status:       req.Status,
	}
	if err := s.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	return toUserResponse(user), nil
}

func (s *UserService) AdminUpdate(ctx context.Context, id int64, req *dtos.AdminUserUpdateRequest) (*dtos.UserResponse, error) {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return nil, ErrUserNotFound
	}

	if req.Email != nil && *req.Email != user.Email {
		existing, err := s.userRepo.GetByEmail(ctx, *req.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil && existing.ID != user.ID {
			return nil, ErrEmailTaken
		}
		user.Email = *req.Email
	}
	if req.Nom != nil {
		user.Nom = *req.Nom
	}
	if req.Role != nil {
		user.Role = *req.Role
	}
	if req.Status != nil {
		user.Status = req.Status
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}
	return toUserResponse(user), nil
}

// AdminDelete refuses to remove users that still hold reservations.
func (s *UserService) AdminDelete(ctx context.Context, id int64) error {
	user, err := s.userRepo.GetByID(ctx, id)
	if err != nil {
		return ErrUserNotFound
	}

	count, err := s.resRepo.CountByUser(ctx, user.ID)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrUserHasReservations
	}

	return s.userRepo.Delete(ctx, user)
}
