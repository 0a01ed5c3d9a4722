package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("id", registeredUser.ID).Bool("is_admin", registeredUser.IsAdmin).Msg("user registered")
	utils.WriteJSON(w, models.RegisterResponse{
		Message: "User created!",
		User:    registeredUser.Identity(),
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.Credentials
	if err := decodeJSON(r, &credentials); err != nil {
		writeError(w, r, err)
		return
	}

	foundUser, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("id", foundUser.ID).Msg("user successfully logged in")

	w.Header().Set("Authorization", "Bearer "+token.SignedString)
	utils.WriteJSON(w, models.LoginResponse{
		Message: "Logged in!",
		Token:   token.SignedString,
		User:    foundUser.Identity(),
	}, http.StatusOK)
}
