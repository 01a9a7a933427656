package http

import (
	"net/http"

	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

func (h *Handler) root(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"Hello": "World"}, http.StatusOK)
}

func (h *Handler) healthcheck(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, models.HealthcheckResponse{Status: "ok"}, http.StatusOK)
}
