package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// DefaultListLimit is the page size applied when a listing request does not
// specify a limit.
const DefaultListLimit = 100

// userService is the concrete implementation of UserService. It owns the
// uniqueness pre-check and pagination defaults; persistence is delegated to
// a [store.UserRepository].
type userService struct {
	userRepository store.UserRepository

	logger *logger.Logger
}

// NewUserService constructs a UserService wired to the given repository.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewUserService(userRepository store.UserRepository, logger *logger.Logger) UserService {
	return &userService{
		userRepository: userRepository,
		logger:         logger,
	}
}

// CreateUser validates and persists a new user record.
//
// Email and Username must both be non-empty. Before inserting, the service
// checks whether either field is already taken — email alone colliding is a
// conflict regardless of the username — and returns
// [store.ErrUserAlreadyExists] if so. The database's unique constraints act
// as a backstop for races between the check and the insert.
func (s *userService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Username == "" {
		log.Error().Str("username", user.Username).Msg("invalid user data provided")
		return models.User{}, ErrInvalidUserData
	}

	exists, err := s.userRepository.ExistsByEmailOrUsername(ctx, user.Email, user.Username)
	if err != nil {
		log.Err(err).Msg("user existence check ended with error")
		return models.User{}, fmt.Errorf("user existence check ended with error: %w", err)
	}
	if exists {
		return models.User{}, store.ErrUserAlreadyExists
	}

	created, err := s.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("username", user.Username).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return created, nil
}

// GetUser returns the user with the given primary key, or
// [store.ErrUserNotFound].
func (s *userService) GetUser(ctx context.Context, id int64) (models.User, error) {
	user, err := s.userRepository.FindUserByID(ctx, id)
	if err != nil {
		return models.User{}, fmt.Errorf("user lookup ended with error: %w", err)
	}

	return user, nil
}

// ListUsers returns a page of users ordered by id. Negative skip and limit
// values are clamped to zero; the HTTP layer applies the default page size
// of 100 when the limit parameter is absent.
func (s *userService) ListUsers(ctx context.Context, skip, limit int64) ([]models.User, error) {
	if skip < 0 {
		skip = 0
	}
	if limit < 0 {
		limit = 0
	}

	users, err := s.userRepository.ListUsers(ctx, uint64(skip), uint64(limit))
	if err != nil {
		return nil, fmt.Errorf("user listing ended with error: %w", err)
	}

	return users, nil
}
