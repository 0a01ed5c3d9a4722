package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/utils"
)

func (h *Handler) getServerVersion(w http.ResponseWriter, r *http.Request) {
	serverVersion := h.services.AppInfoService.Version()

	w.Header().Set("Content-Type", "text/plain")
	w.Write([]byte(serverVersion))
}

func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, h.services.AppInfoService.Health(r.Context()), http.StatusOK)
}
