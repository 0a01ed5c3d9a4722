package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

const defaultReviewer = "Anonymous"

type recipeService struct {
	recipeRepository store.RecipeRepository
	reviewRepository store.ReviewRepository

	logger *logger.Logger
}

func NewRecipeService(recipeRepository store.RecipeRepository, reviewRepository store.ReviewRepository, logger *logger.Logger) RecipeService {
	return &recipeService{
		recipeRepository: recipeRepository,
		reviewRepository: reviewRepository,
		logger:           logger,
	}
}

// ListRecipes returns every recipe, or those of one category, each with its
// reviews attached. The category is matched ignoring case and surrounding
// whitespace.
func (s *recipeService) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	recipes, err := s.recipeRepository.ListRecipes(ctx, strings.TrimSpace(category))
	if err != nil {
		return nil, fmt.Errorf("error listing recipes: %w", err)
	}

	return attachReviews(ctx, s.reviewRepository, recipes), nil
}

func (s *recipeService) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	if recipeID <= 0 {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	recipe, err := s.recipeRepository.GetRecipe(ctx, recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error getting recipe: %w", err)
	}

	return attachReviews(ctx, s.reviewRepository, []models.Recipe{recipe})[0], nil
}

// CreateRecipe stores a new recipe owned by author.
func (s *recipeService) CreateRecipe(ctx context.Context, author models.Identity, input models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	input, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}
	input.CreatedBy = nil
	if author.ID != 0 {
		input.CreatedBy = &author.ID
	}

	recipe, err := s.recipeRepository.CreateRecipe(ctx, input)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error creating recipe: %w", err)
	}

	log.Info().Int64("recipe_id", recipe.ID).Int64("author", author.ID).Msg("recipe created")
	recipe.Reviews = []models.Review{}
	return recipe, nil
}

func (s *recipeService) UpdateRecipe(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error) {
	if recipeID <= 0 {
		return models.Recipe{}, ErrInvalidRecipeID
	}

	input, err := normalizeRecipeInput(input)
	if err != nil {
		return models.Recipe{}, err
	}

	recipe, err := s.recipeRepository.UpdateRecipe(ctx, recipeID, input)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("error updating recipe: %w", err)
	}

	return attachReviews(ctx, s.reviewRepository, []models.Recipe{recipe})[0], nil
}

func (s *recipeService) DeleteRecipe(ctx context.Context, recipeID int64) error {
	if recipeID <= 0 {
		return ErrInvalidRecipeID
	}

	if err := s.recipeRepository.DeleteRecipe(ctx, recipeID); err != nil {
		return fmt.Errorf("error deleting recipe: %w", err)
	}

	return nil
}

// AddReview stores a public review. Missing fields fall back to the
// "Anonymous" reviewer, an empty text and a zero rating.
func (s *recipeService) AddReview(ctx context.Context, recipeID int64, input models.ReviewInput) (models.Review, error) {
	if recipeID <= 0 {
		return models.Review{}, ErrInvalidRecipeID
	}

	exists, err := s.recipeRepository.RecipeExists(ctx, recipeID)
	if err != nil {
		return models.Review{}, fmt.Errorf("error checking recipe: %w", err)
	}
	if !exists {
		return models.Review{}, store.ErrRecipeNotFound
	}

	review := models.Review{
		RecipeID: recipeID,
		Reviewer: strings.TrimSpace(input.Reviewer),
		Text:     input.Text,
		Rating:   float64(input.Rating),
	}
	if uid := strings.TrimSpace(string(input.UID)); uid != "" {
		review.UID = &uid
	}
	if review.Reviewer == "" {
		review.Reviewer = defaultReviewer
	}

	created, err := s.reviewRepository.CreateReview(ctx, review)
	if err != nil {
		return models.Review{}, fmt.Errorf("error adding review: %w", err)
	}

	return created, nil
}

// RateRecipe records uid's rating and returns the recipe's whole rating map.
func (s *recipeService) RateRecipe(ctx context.Context, recipeID int64, input models.RatingInput) (models.Ratings, error) {
	if recipeID <= 0 {
		return nil, ErrInvalidRecipeID
	}

	uid := strings.TrimSpace(string(input.UID))
	if uid == "" {
		return nil, ErrUIDRequired
	}

	ratings, err := s.recipeRepository.SaveRating(ctx, recipeID, uid, float64(input.Rating))
	if err != nil {
		return nil, fmt.Errorf("error saving rating: %w", err)
	}

	return ratings, nil
}

// attachReviews fills Reviews of every recipe using one batched query.
// A failed review lookup is logged and leaves the reviews empty.
func attachReviews(ctx context.Context, reviews store.ReviewRepository, recipes []models.Recipe) []models.Recipe {
	if len(recipes) == 0 {
		return recipes
	}

	ids := make([]int64, len(recipes))
	for i, recipe := range recipes {
		ids[i] = recipe.ID
	}

	byRecipe, err := reviews.ListReviews(ctx, ids...)
	if err != nil {
		logger.FromContext(ctx).Warn().Err(err).Msg("error fetching reviews, returning recipes without them")
	}

	for i := range recipes {
		recipes[i].Reviews = byRecipe[recipes[i].ID]
		if recipes[i].Reviews == nil {
			recipes[i].Reviews = []models.Review{}
		}
	}

	return recipes
}

// normalizeRecipeInput trims title and category and turns blank optional
// fields into NULLs.
func normalizeRecipeInput(input models.RecipeInput) (models.RecipeInput, error) {
	input.Title = strings.TrimSpace(input.Title)
	if input.Title == "" {
		return models.RecipeInput{}, ErrTitleRequired
	}
	input.Category = strings.TrimSpace(input.Category)

	input.Image = nilIfBlank(input.Image)
	input.Description = nilIfBlank(input.Description)
	input.Ingredients = nilIfBlank(input.Ingredients)
	input.Instructions = nilIfBlank(input.Instructions)

	return input, nil
}

func nilIfBlank(s *string) *string {
	if s == nil || strings.TrimSpace(*s) == "" {
		return nil
	}
	return s
}
