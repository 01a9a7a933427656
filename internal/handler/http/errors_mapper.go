package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/auth"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

var errorStatusMap = map[error]int{
	auth.ErrNotConfigured: http.StatusInternalServerError,
	auth.ErrMissingToken:  http.StatusUnauthorized,
	auth.ErrInvalidToken:  http.StatusForbidden,

	service.ErrInvalidUserData: http.StatusBadRequest,

	store.ErrUserAlreadyExists: http.StatusBadRequest,
	store.ErrUserNotFound:      http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

// errorDetailMap holds the client-facing detail strings for errors whose
// wire form differs from the internal error message.
var errorDetailMap = map[error]string{
	auth.ErrNotConfigured: "Bearer token authentication is not configured",
	auth.ErrMissingToken:  "Missing bearer token",
	auth.ErrInvalidToken:  "Invalid bearer token",

	service.ErrInvalidUserData: "Email and username must not be empty",

	store.ErrUserAlreadyExists: "User with this email or username already exists",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

func detailFromError(err error) string {
	for target, detail := range errorDetailMap {
		if errors.Is(err, target) {
			return detail
		}
	}
	return "Internal Server Error"
}

// writeError renders err as the uniform `{"detail": "..."}` error body with
// the mapped HTTP status. A missing-token rejection additionally advertises
// the expected scheme via "WWW-Authenticate: Bearer".
func (h *Handler) writeError(w http.ResponseWriter, err error) {
	if errors.Is(err, auth.ErrMissingToken) {
		w.Header().Set("WWW-Authenticate", "Bearer")
	}

	utils.WriteJSON(w, models.ErrorResponse{Detail: detailFromError(err)}, statusFromError(err))
}
