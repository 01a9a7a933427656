package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// ─────────────────────────────────────────────
// Mock
// ─────────────────────────────────────────────

// mockUserService implements service.UserService with per-method hooks.
type mockUserService struct {
	createFn func(ctx context.Context, user models.User) (models.User, error)
	getFn    func(ctx context.Context, id int64) (models.User, error)
	listFn   func(ctx context.Context, skip, limit int64) ([]models.User, error)
}

func (m *mockUserService) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	return m.createFn(ctx, user)
}

func (m *mockUserService) GetUser(ctx context.Context, id int64) (models.User, error) {
	return m.getFn(ctx, id)
}

func (m *mockUserService) ListUsers(ctx context.Context, skip, limit int64) ([]models.User, error) {
	return m.listFn(ctx, skip, limit)
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, req)
	return rr
}

// ─────────────────────────────────────────────
// Tests
// ─────────────────────────────────────────────

// TestCreateUserHandler_Success verifies a 201 with the created record.
func TestCreateUserHandler_Success(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			user.ID = 1
			return user, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodPost, "/v1/users/",
		`{"email": "john@example.com", "username": "john"}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, "john@example.com", created.Email)
	assert.True(t, created.IsActive, "is_active must default to true")
	assert.Nil(t, created.FullName)
}

// TestCreateUserHandler_ExplicitInactive verifies an explicit is_active=false
// survives the default.
func TestCreateUserHandler_ExplicitInactive(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, user models.User) (models.User, error) {
			return user, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodPost, "/v1/users/",
		`{"email": "a@b.c", "username": "ab", "is_active": false}`)

	require.Equal(t, http.StatusCreated, rr.Code)

	var created models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &created))
	assert.False(t, created.IsActive)
}

// TestCreateUserHandler_Conflict verifies a duplicate maps to a 400 with the
// conflict detail.
func TestCreateUserHandler_Conflict(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, store.ErrUserAlreadyExists
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodPost, "/v1/users/",
		`{"email": "taken@example.com", "username": "taken"}`)

	require.Equal(t, http.StatusBadRequest, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "User with this email or username already exists", body.Detail)
}

// TestCreateUserHandler_InvalidJSON verifies a malformed body is a 400.
func TestCreateUserHandler_InvalidJSON(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			t.Fatal("service must not be called for malformed JSON")
			return models.User{}, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodPost, "/v1/users/", `{"email": `)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestCreateUserHandler_InvalidData verifies the empty-fields rejection.
func TestCreateUserHandler_InvalidData(t *testing.T) {
	svc := &mockUserService{
		createFn: func(_ context.Context, _ models.User) (models.User, error) {
			return models.User{}, service.ErrInvalidUserData
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodPost, "/v1/users/", `{"email": "", "username": ""}`)

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestGetUserHandler_Success verifies a 200 with the found record.
func TestGetUserHandler_Success(t *testing.T) {
	svc := &mockUserService{
		getFn: func(_ context.Context, id int64) (models.User, error) {
			return models.User{ID: id, Email: "jane@example.com", Username: "jane", IsActive: true}, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodGet, "/v1/users/7", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var user models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &user))
	assert.Equal(t, int64(7), user.ID)
	assert.Equal(t, "jane", user.Username)
}

// TestGetUserHandler_NotFound verifies a 404 with the id-bearing detail.
func TestGetUserHandler_NotFound(t *testing.T) {
	svc := &mockUserService{
		getFn: func(_ context.Context, _ int64) (models.User, error) {
			return models.User{}, store.ErrUserNotFound
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodGet, "/v1/users/99999", "")

	require.Equal(t, http.StatusNotFound, rr.Code)

	var body models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
	assert.Equal(t, "User 99999 not found", body.Detail)
}

// TestGetUserHandler_NonIntegerID verifies id parsing happens before the
// service is consulted.
func TestGetUserHandler_NonIntegerID(t *testing.T) {
	svc := &mockUserService{
		getFn: func(_ context.Context, _ int64) (models.User, error) {
			t.Fatal("service must not be called for a non-integer id")
			return models.User{}, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodGet, "/v1/users/abc", "")

	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

// TestListUsersHandler_Defaults verifies skip=0 and the default limit are
// applied when the query parameters are absent.
func TestListUsersHandler_Defaults(t *testing.T) {
	var gotSkip, gotLimit int64
	svc := &mockUserService{
		listFn: func(_ context.Context, skip, limit int64) ([]models.User, error) {
			gotSkip, gotLimit = skip, limit
			return nil, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodGet, "/v1/users/", "")

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, int64(0), gotSkip)
	assert.Equal(t, int64(service.DefaultListLimit), gotLimit)
	assert.JSONEq(t, `[]`, rr.Body.String(), "nil page must serialize as an empty array")
}

// TestListUsersHandler_Pagination verifies explicit skip/limit are forwarded.
func TestListUsersHandler_Pagination(t *testing.T) {
	svc := &mockUserService{
		listFn: func(_ context.Context, skip, limit int64) ([]models.User, error) {
			assert.Equal(t, int64(2), skip)
			assert.Equal(t, int64(2), limit)
			return []models.User{{ID: 3}, {ID: 4}}, nil
		},
	}
	router := newComposedRouter(nil, svc)

	rr := doJSON(t, router, http.MethodGet, "/v1/users/?skip=2&limit=2", "")

	require.Equal(t, http.StatusOK, rr.Code)

	var users []models.User
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &users))
	require.Len(t, users, 2)
	assert.Equal(t, int64(3), users[0].ID)
	assert.Equal(t, int64(4), users[1].ID)
}

// TestListUsersHandler_NonIntegerParams verifies malformed pagination values
// are rejected with a 400.
func TestListUsersHandler_NonIntegerParams(t *testing.T) {
	svc := &mockUserService{
		listFn: func(_ context.Context, _, _ int64) ([]models.User, error) {
			t.Fatal("service must not be called for malformed pagination")
			return nil, nil
		},
	}
	router := newComposedRouter(nil, svc)

	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/v1/users/?skip=abc", "").Code)
	assert.Equal(t, http.StatusBadRequest, doJSON(t, router, http.MethodGet, "/v1/users/?limit=abc", "").Code)
}
