// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-box/models"
)

// ErrorClassificator decides whether a failed database operation is worth
// retrying.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ConnProvider hands out the process-wide database handle. [Pool] is the
// production implementation; repositories never open connections themselves.
type ConnProvider interface {
	Conn(ctx context.Context) (*DB, error)
}

// UserRepository persists user accounts.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// RecipeRepository persists recipes and their rating maps.
type RecipeRepository interface {
	ListRecipes(ctx context.Context, category string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error
	RecipeExists(ctx context.Context, recipeID int64) (bool, error)
	SaveRating(ctx context.Context, recipeID int64, uid string, rating float64) (models.Ratings, error)
}

// ReviewRepository persists recipe reviews.
type ReviewRepository interface {
	ListReviews(ctx context.Context, recipeIDs ...int64) (map[int64][]models.Review, error)
	CreateReview(ctx context.Context, review models.Review) (models.Review, error)
}

// FavoriteRepository persists per-user favorite recipes.
type FavoriteRepository interface {
	ToggleFavorite(ctx context.Context, userID, recipeID int64) (added bool, err error)
	ListFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error)
	ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error)
}

// ContactRepository persists contact form messages.
type ContactRepository interface {
	CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

// FileStorage persists uploaded files and returns the public URL they are
// reachable at.
type FileStorage interface {
	Save(ctx context.Context, name, contentType string, r io.Reader) (string, error)
}
