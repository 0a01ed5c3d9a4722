package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

func (h *Handler) listFavorites(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, errMissingIdentity)
		return
	}

	recipes, err := h.services.FavoriteService.ListFavorites(ctx, identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) listFavoriteIDs(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, errMissingIdentity)
		return
	}

	ids, err := h.services.FavoriteService.ListFavoriteIDs(ctx, identity.ID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.FavoriteIDs{IDs: ids}, http.StatusOK)
}

func (h *Handler) toggleFavorite(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	identity, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, errMissingIdentity)
		return
	}

	recipeID, err := recipeIDParam(r, "recipeId")
	if err != nil {
		writeError(w, r, err)
		return
	}

	toggle, err := h.services.FavoriteService.ToggleFavorite(ctx, identity.ID, recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Debug().Int64("recipe_id", recipeID).Bool("added", toggle.Added).Msg("favorite toggled")
	utils.WriteJSON(w, toggle, http.StatusOK)
}
