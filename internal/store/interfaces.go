package store

import (
	"context"

	"github.com/MKhiriev/go-api-scaffold/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/user_repository_mock.go -package=mock

// UserRepository is the data-access contract for the users table.
type UserRepository interface {
	// CreateUser persists user and returns the record with server-assigned
	// fields populated. Returns ErrUserAlreadyExists on a uniqueness
	// violation.
	CreateUser(ctx context.Context, user models.User) (models.User, error)

	// FindUserByID returns the user with the given id, or ErrUserNotFound.
	FindUserByID(ctx context.Context, id int64) (models.User, error)

	// ExistsByEmailOrUsername reports whether any record already uses the
	// given email or the given username.
	ExistsByEmailOrUsername(ctx context.Context, email, username string) (bool, error)

	// ListUsers returns up to limit users ordered by id, skipping the first
	// skip records.
	ListUsers(ctx context.Context, skip, limit uint64) ([]models.User, error)
}
