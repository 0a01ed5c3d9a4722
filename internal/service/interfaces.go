package service

import (
	"context"
	"io"

	"github.com/MKhiriev/go-recipe-box/internal/store"
	"github.com/MKhiriev/go-recipe-box/models"
)

// AuthService registers and logs in users and is the credential verifier
// behind the auth middleware.
type AuthService interface {
	RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error)
	Login(ctx context.Context, credentials models.Credentials) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)

	// Verify checks a raw bearer token and returns the caller it was issued
	// for. With requireAdmin set, non-admin callers get ErrAdminOnly.
	Verify(ctx context.Context, tokenString string, requireAdmin bool) (models.Identity, error)
}

type RecipeService interface {
	ListRecipes(ctx context.Context, category string) ([]models.Recipe, error)
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)
	CreateRecipe(ctx context.Context, author models.Identity, input models.RecipeInput) (models.Recipe, error)
	UpdateRecipe(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error)
	DeleteRecipe(ctx context.Context, recipeID int64) error

	AddReview(ctx context.Context, recipeID int64, input models.ReviewInput) (models.Review, error)
	RateRecipe(ctx context.Context, recipeID int64, input models.RatingInput) (models.Ratings, error)
}

type FavoriteService interface {
	ListFavorites(ctx context.Context, userID int64) ([]models.Recipe, error)
	ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error)
	ToggleFavorite(ctx context.Context, userID, recipeID int64) (models.FavoriteToggle, error)
}

type ContactService interface {
	SendMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error)
}

type UploadService interface {
	Upload(ctx context.Context, originalName, contentType string, r io.Reader) (models.UploadedFile, error)
}

type AppInfoService interface {
	Version() string
	Health(ctx context.Context) models.Health
}

// PoolStatus is the view of the connection pool the health report needs.
type PoolStatus interface {
	State() store.PoolState
	Ping(ctx context.Context) error
}
