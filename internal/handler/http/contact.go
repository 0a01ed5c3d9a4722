package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

func (h *Handler) sendContactMessage(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := decodeJSON(r, &msg); err != nil {
		writeError(w, r, err)
		return
	}

	saved, err := h.services.ContactService.SendMessage(r.Context(), msg)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ContactResponse{Message: "Message sent!", Data: saved}, http.StatusOK)
}
