package http

import (
	"net/http"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/utils"
	"github.com/MKhiriev/go-recipe-box/models"
)

func (h *Handler) listRecipes(w http.ResponseWriter, r *http.Request) {
	recipes, err := h.services.RecipeService.ListRecipes(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipes, http.StatusOK)
}

func (h *Handler) getRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := recipeIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.GetRecipe(r.Context(), recipeID)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, recipe, http.StatusOK)
}

func (h *Handler) createRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	author, ok := utils.GetIdentityFromContext(ctx)
	if !ok {
		writeError(w, r, errMissingIdentity)
		return
	}

	var input models.RecipeInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.CreateRecipe(ctx, author, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("recipe_id", recipe.ID).Int64("author", author.ID).Msg("recipe created")
	utils.WriteJSON(w, models.RecipeResponse{Message: "Recipe added!", Recipe: recipe}, http.StatusOK)
}

func (h *Handler) updateRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID, err := recipeIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.RecipeInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	recipe, err := h.services.RecipeService.UpdateRecipe(ctx, recipeID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("recipe_id", recipe.ID).Msg("recipe updated")
	utils.WriteJSON(w, models.RecipeResponse{Message: "Recipe updated!", Recipe: recipe}, http.StatusOK)
}

func (h *Handler) deleteRecipe(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	recipeID, err := recipeIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	if err = h.services.RecipeService.DeleteRecipe(ctx, recipeID); err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Int64("recipe_id", recipeID).Msg("recipe deleted")
	utils.WriteMessage(w, "Recipe deleted!", http.StatusOK)
}

func (h *Handler) addReview(w http.ResponseWriter, r *http.Request) {
	recipeID, err := recipeIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.ReviewInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	review, err := h.services.RecipeService.AddReview(r.Context(), recipeID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.ReviewResponse{Message: "Review added", Review: review}, http.StatusOK)
}

func (h *Handler) rateRecipe(w http.ResponseWriter, r *http.Request) {
	recipeID, err := recipeIDParam(r, "id")
	if err != nil {
		writeError(w, r, err)
		return
	}

	var input models.RatingInput
	if err = decodeJSON(r, &input); err != nil {
		writeError(w, r, err)
		return
	}

	ratings, err := h.services.RecipeService.RateRecipe(r.Context(), recipeID, input)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RatingsResponse{Message: "Rating saved", Ratings: ratings}, http.StatusOK)
}
