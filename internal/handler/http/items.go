package http

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-api-scaffold/internal/logger"
	"github.com/MKhiriev/go-api-scaffold/internal/utils"
	"github.com/MKhiriev/go-api-scaffold/models"
)

// getItem echoes the path id and the optional `q` query parameter back as an
// item. An absent `q` is returned as JSON null.
func (h *Handler) getItem(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	idParam := chi.URLParam(r, "id")
	itemID, err := strconv.ParseInt(idParam, 10, 64)
	if err != nil {
		log.Err(err).Str("func", "*Handler.getItem").Msg("non-integer item id")
		utils.WriteJSON(w, models.ErrorResponse{Detail: "Item id must be an integer"}, http.StatusBadRequest)
		return
	}

	item := models.Item{ItemID: itemID}
	if r.URL.Query().Has("q") {
		q := r.URL.Query().Get("q")
		item.Q = &q
	}

	utils.WriteJSON(w, item, http.StatusOK)
}
