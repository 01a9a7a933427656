package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/MKhiriev/go-api-scaffold/internal/auth"
	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

// stubUserService is a no-op UserService; its presence alone makes the
// route composer mount the user routes.
type stubUserService struct{}

func (s *stubUserService) CreateUser(_ context.Context, user models.User) (models.User, error) {
	return user, nil
}

func (s *stubUserService) GetUser(_ context.Context, id int64) (models.User, error) {
	return models.User{ID: id}, nil
}

func (s *stubUserService) ListUsers(_ context.Context, _, _ int64) ([]models.User, error) {
	return []models.User{}, nil
}

type stubAppInfoService struct {
	name    string
	version string
}

func (s *stubAppInfoService) GetServiceName(_ context.Context) string { return s.name }
func (s *stubAppInfoService) GetAppVersion(_ context.Context) string  { return s.version }

func newComposedRouter(tokens []string, users service.UserService) http.Handler {
	h := NewHandler(
		&service.Services{
			Users:   users,
			AppInfo: &stubAppInfoService{name: "go-api-scaffold", version: "1.0.0"},
		},
		auth.NewAuthorizer(auth.NewTokenStore(tokens)),
		logger.Nop(),
	)
	return h.Init()
}

func getStatus(t *testing.T, router http.Handler, path string) int {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr.Code
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

// TestInit_AlwaysMountedRoutes verifies the unconditional routes answer
// regardless of feature configuration.
func TestInit_AlwaysMountedRoutes(t *testing.T) {
	router := newComposedRouter(nil, nil)

	assert.Equal(t, http.StatusOK, getStatus(t, router, "/"))
	assert.Equal(t, http.StatusOK, getStatus(t, router, "/healthcheck"))
	assert.Equal(t, http.StatusOK, getStatus(t, router, "/items/42"))
	assert.Equal(t, http.StatusOK, getStatus(t, router, "/version"))
}

// TestInit_ProtectedRoutesAbsentWithoutTokens verifies that the protected
// group is not mounted at all when no tokens are configured: requests get a
// plain 404, not an auth error.
func TestInit_ProtectedRoutesAbsentWithoutTokens(t *testing.T) {
	router := newComposedRouter(nil, nil)

	assert.Equal(t, http.StatusNotFound, getStatus(t, router, "/v1/protected/"))
	assert.Equal(t, http.StatusNotFound, getStatus(t, router, "/v1/protected/data"))
}

// TestInit_ProtectedRoutesMountedWithTokens verifies that configuring tokens
// mounts the protected group behind the auth middleware.
func TestInit_ProtectedRoutesMountedWithTokens(t *testing.T) {
	router := newComposedRouter([]string{"secret"}, nil)

	// mounted, but a bare request is rejected by the middleware
	assert.Equal(t, http.StatusUnauthorized, getStatus(t, router, "/v1/protected/"))
	assert.Equal(t, http.StatusUnauthorized, getStatus(t, router, "/v1/protected/data"))
}

// TestInit_UserRoutesAbsentWithoutDatabase verifies that the users resource
// is not mounted when no user service exists.
func TestInit_UserRoutesAbsentWithoutDatabase(t *testing.T) {
	router := newComposedRouter(nil, nil)

	assert.Equal(t, http.StatusNotFound, getStatus(t, router, "/v1/users/"))
	assert.Equal(t, http.StatusNotFound, getStatus(t, router, "/v1/users/1"))
}

// TestInit_UserRoutesMountedWithDatabase verifies that a configured user
// service mounts the users resource.
func TestInit_UserRoutesMountedWithDatabase(t *testing.T) {
	router := newComposedRouter(nil, &stubUserService{})

	assert.Equal(t, http.StatusOK, getStatus(t, router, "/v1/users/"))
	assert.Equal(t, http.StatusOK, getStatus(t, router, "/v1/users/1"))
}

// TestInit_VersionNeverRequiresAuth verifies /version stays public even when
// authentication is configured.
func TestInit_VersionNeverRequiresAuth(t *testing.T) {
	router := newComposedRouter([]string{"secret"}, nil)

	assert.Equal(t, http.StatusOK, getStatus(t, router, "/version"))
}
