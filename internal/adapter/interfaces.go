// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides a client for the recipe-box REST API.
//
// The primary abstraction is [RecipeBoxClient], which hides request
// serialisation, bearer token handling and error decoding from callers.
//
// Non-2xx responses are mapped to the sentinel errors in errors.go by
// mapHTTPError, so callers can use [errors.Is] (e.g. [ErrNotFound] for 404,
// [ErrForbidden] for 403). The server's {"error": ...} message is kept in
// the wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-recipe-box/models"
)

// RecipeBoxClient defines communication with a recipe-box server.
type RecipeBoxClient interface {
	// SetToken stores the bearer token attached to all subsequent requests.
	// Login calls it on success.
	SetToken(token string)

	// Token returns the stored bearer token or an empty string.
	Token() string

	// Register creates an account and returns its public identity. It does
	// not log in.
	Register(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// Login authenticates and stores the returned token.
	Login(ctx context.Context, creds models.Credentials) (models.Identity, error)

	// ListRecipes lists recipes, optionally filtered by category.
	ListRecipes(ctx context.Context, category string) ([]models.Recipe, error)

	// GetRecipe fetches one recipe with its reviews.
	GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error)

	// ToggleFavorite adds or removes a favorite of the logged in user.
	ToggleFavorite(ctx context.Context, recipeID int64) (models.FavoriteToggle, error)

	// Health reports server liveness and database state.
	Health(ctx context.Context) (models.Health, error)
}
