package auth

import (
	"context"

	gormModels "jetcongo/backend/internal/models/gorm"
)

type contextKey string

var currentUserKey contextKey = "current_user"
var requestIDKey contextKey = "request_id"

func SetCurrentUser(ctx context.Context, user *gormModels.User) context.Context {
	return context.WithValue(ctx, currentUserKey, user)
}

// CurrentUser returns the authenticated user, or nil outside an
// authenticated request.
func CurrentUser(ctx context.Context) *gormModels.User {
	val := ctx.Value(currentUserKey)
	if user, ok := val.(*gormModels.User); ok {
		return user
	}
	return nil
}

func SetRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey, id)
}

func RequestID(ctx context.Context) string {
	if id, ok := ctx.Value(requestIDKey).(string); ok {
		return id
	}
	return ""
}
