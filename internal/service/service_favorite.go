package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

type favoriteService struct {
	favoriteRepository store.FavoriteRepository
	reviewRepository   store.ReviewRepository

	logger *logger.Logger
}

func NewFavoriteService(favoriteRepository store.FavoriteRepository, reviewRepository store.ReviewRepository, logger *logger.Logger) FavoriteService {
	return &favoriteService{
		favoriteRepository: favoriteRepository,
		reviewRepository:   reviewRepository,
		logger:             logger,
	}
}

// ListFavorites returns the user's favorited recipes, most recently
// favorited first.
func (s *favoriteService) ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error) {
	recipes, err := s.favoriteRepository.ListFavoriteRecipes(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorites: %w", err)
	}

	return attachReviews(ctx, s.reviewRepository, recipes), nil
}

func (s *favoriteService) ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	ids, err := s.favoriteRepository.ListFavoriteIDs(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing favorite ids: %w", err)
	}

	return ids, nil
}

// ToggleFavorite adds the recipe to the user's favorites or removes it if it
// is already there.
func (s *favoriteService) ToggleFavorite(ctx context.Context, userID, recipeID int64) (models.FavoriteToggle, error) {
	log := logger.FromContext(ctx)

	if recipeID <= 0 {
		return models.FavoriteToggle{}, ErrInvalidRecipeID
	}

	added, err := s.favoriteRepository.ToggleFavorite(ctx, userID, recipeID)
	if err != nil {
		return models.FavoriteToggle{}, fmt.Errorf("error toggling favorite: %w", err)
	}

	log.Debug().Int64("user_id", userID).Int64("recipe_id", recipeID).Bool("added", added).Msg("favorite toggled")
	return models.FavoriteToggle{Added: added, Removed: !added}, nil
}
