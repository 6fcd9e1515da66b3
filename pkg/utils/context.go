package utils

import (
	"context"

	"product-catalog/internal/data/entity"
)

type contextKey string

const (
	UserKey contextKey = "user"
)

// SetUserContext attaches the resolved identity to the request context.
func SetUserContext(ctx context.Context, user *entity.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

// GetUserFromContext returns the authenticated user attached by the auth middleware.
func GetUserFromContext(ctx context.Context) (*entity.User, bool) {
	user, ok := ctx.Value(UserKey).(*entity.User)
	if !ok || user == nil {
		return nil, false
	}
	return user, true
}

func GetUserIDFromContext(ctx context.Context) (string, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return "", false
	}
	return user.ID, true
}

func GetRoleFromContext(ctx context.Context) (string, bool) {
	user, ok := GetUserFromContext(ctx)
	if !ok {
		return "", false
	}
	return string(user.Role), true
}
