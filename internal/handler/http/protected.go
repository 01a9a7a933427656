package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/auth"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

func (h *Handler) readProtected(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.ProtectedResponse{
		Message:       "Access granted",
		Authenticated: "true",
	}, http.StatusOK)
}

func (h *Handler) readProtectedData(w http.ResponseWriter, r *http.Request) {
	token, _ := utils.GetTokenFromContext(r.Context())

	utils.WriteJSON(w, models.ProtectedDataResponse{
		Message:      "This is protected data",
		Data:         []string{"item1", "item2", "item3"},
		TokenPreview: auth.TokenPreview(token),
	}, http.StatusOK)
}
