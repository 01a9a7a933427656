package service

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/models"
)

// UserService implements the business rules of the example CRUD resource.
type UserService interface {
	// CreateUser validates and persists a new user. Returns
	// ErrInvalidUserData when email or username is empty, or
	// store.ErrUserAlreadyExists when either field collides with an
	// existing record.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// GetUser returns the user with the given id, or store.ErrUserNotFound.
	GetUser(ctx context.Context, id int64) (models.User, error)

	// ListUsers returns a page of users. Negative skip/limit values are
	// clamped to zero.
	ListUsers(ctx context.Context, skip, limit int64) ([]models.User, error)
}

// AppInfoService exposes process identity for the /version endpoint.
type AppInfoService interface {
	GetServiceName(ctx context.Context) string
	GetAppVersion(ctx context.Context) string
}
