package http

import (
	"fmt"
	"net/http"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serviceName := h.services.AppInfo.GetServiceName(r.Context())
	serverVersion := h.services.AppInfo.GetAppVersion(r.Context())

	w.Header().Set("Content-Type", "text/plain")
	fmt.Fprintf(w, "%s %s", serviceName, serverVersion)
}
