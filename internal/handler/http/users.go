package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/service"
	"github.com/MKhiriev/go-api-scaffold/internal/store"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

func (h *Handler) createUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	// is_active defaults to true when the field is absent from the body
	user := models.User{IsActive: true}
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Detail: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	created, err := h.services.Users.CreateUser(r.Context(), user)
	if err != nil {
		log.Err(err).Str("func", "*Handler.createUser").Msg("error creating user")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) getUser(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	idParam := chi.URLParam(r, "id")
	userID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getUser").Msg("non-integer user id")
		utils.WriteJSON(w, models.ErrorResponse{Detail: "User id must be an integer"}, http.StatusBadRequest)
		return
	}

	user, err := h.services.Users.GetUser(r.Context(), userID)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			utils.WriteJSON(w, models.ErrorResponse{Detail: fmt.Sprintf("User %d not found", userID)}, http.StatusNotFound)
			return
		}

		log.Err(err).Str("func", "*Handler.getUser").Msg("error getting user")
		h.writeError(w, err)
		return
	}

	utils.WriteJSON(w, user, http.StatusOK)
}

func (h *Handler) listUsers(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	skip, err := queryInt(r, "skip", 0)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Detail: "Query parameter `skip` must be an integer"}, http.StatusBadRequest)
		return
	}

	limit, err := queryInt(r, "limit", service.DefaultListLimit)
	if err != nil {
		utils.WriteJSON(w, models.ErrorResponse{Detail: "Query parameter `limit` must be an integer"}, http.StatusBadRequest)
		return
	}

	users, err := h.services.Users.ListUsers(r.Context(), skip, limit)
	if err != nil {
		log.Err(err).Str("func", "*Handler.listUsers").Msg("error listing users")
		h.writeError(w, err)
		return
	}

	if users == nil {
		users = []models.User{}
	}

	utils.WriteJSON(w, users, http.StatusOK)
}

// queryInt reads an integer query parameter, falling back to def when the
// parameter is absent or empty.
func queryInt(r *http.Request, name string, def int64) (int64, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}

	return strconv.ParseInt(raw, 10, 64)
}
