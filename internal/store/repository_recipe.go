// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/models"
)

// recipeRepository is the PostgreSQL-backed implementation of
// [RecipeRepository] over the "recipes" table.
type recipeRepository struct {
	conns  ConnProvider
	logger *logger.Logger
}

// NewRecipeRepository constructs a [RecipeRepository].
func NewRecipeRepository(conns ConnProvider, logger *logger.Logger) RecipeRepository {
	logger.Debug().Msg("creating recipe repository")
	return &recipeRepository{
		conns:  conns,
		logger: logger,
	}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecipe(row rowScanner) (models.Recipe, error) {
	var recipe models.Recipe
	err := row.Scan(
		&recipe.ID,
		&recipe.Title,
		&recipe.Category,
		&recipe.Image,
		&recipe.CreatedBy,
		&recipe.Description,
		&recipe.Ingredients,
		&recipe.Instructions,
		&recipe.Favorite,
		&recipe.Ratings,
		&recipe.CreatedAt,
	)
	return recipe, err
}

func scanRecipes(rows *sql.Rows) ([]models.Recipe, error) {
	defer rows.Close()

	recipes := make([]models.Recipe, 0)
	for rows.Next() {
		recipe, err := scanRecipe(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		recipes = append(recipes, recipe)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return recipes, nil
}

// ListRecipes returns all recipes, or only those whose category matches
// ignoring case and surrounding whitespace.
func (r *recipeRepository) ListRecipes(ctx context.Context, category string) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectRecipesQuery(category)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.ListRecipes").Msg("error selecting recipes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return scanRecipes(rows)
}

// GetRecipe returns a single recipe or [ErrRecipeNotFound].
func (r *recipeRepository) GetRecipe(ctx context.Context, recipeID int64) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	query, args, err := buildSelectRecipeQuery(recipeID)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotFound
	case err != nil:
		log.Err(err).Str("func", "*recipeRepository.GetRecipe").Int64("recipe_id", recipeID).Msg("error selecting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return recipe, nil
}

// CreateRecipe inserts a recipe and returns the stored row.
func (r *recipeRepository) CreateRecipe(ctx context.Context, input models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	query, args, err := buildInsertRecipeQuery(input)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.CreateRecipe").Msg("error inserting recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

// UpdateRecipe overwrites the editable fields of a recipe and returns the
// stored row, or [ErrRecipeNotFound] if no row matched.
func (r *recipeRepository) UpdateRecipe(ctx context.Context, recipeID int64, input models.RecipeInput) (models.Recipe, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.Recipe{}, err
	}

	query, args, err := buildUpdateRecipeQuery(recipeID, input)
	if err != nil {
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	recipe, err := scanRecipe(db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Recipe{}, ErrRecipeNotFound
	case err != nil:
		log.Err(err).Str("func", "*recipeRepository.UpdateRecipe").Int64("recipe_id", recipeID).Msg("error updating recipe")
		return models.Recipe{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return recipe, nil
}

// DeleteRecipe removes a recipe. Reviews and favorites go with it through
// ON DELETE CASCADE. Returns [ErrRecipeNotFound] if nothing was deleted.
func (r *recipeRepository) DeleteRecipe(ctx context.Context, recipeID int64) error {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return err
	}

	query, args, err := buildDeleteRecipeQuery(recipeID)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*recipeRepository.DeleteRecipe").Int64("recipe_id", recipeID).Msg("error deleting recipe")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrRecipeNotFound
	}

	return nil
}

// RecipeExists reports whether a recipe with the given id exists.
func (r *recipeRepository) RecipeExists(ctx context.Context, recipeID int64) (bool, error) {
	db, err := r.conns.Conn(ctx)
	if err != nil {
		return false, err
	}

	query, args, err := buildRecipeExistsQuery(recipeID)
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var one int
	err = db.QueryRowContext(ctx, query, args...).Scan(&one)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return true, nil
}

// SaveRating sets ratings[uid] = rating. The row is locked with
// SELECT ... FOR UPDATE so concurrent raters never lose each other's votes.
// Returns the whole updated map.
func (r *recipeRepository) SaveRating(ctx context.Context, recipeID int64, uid string, rating float64) (models.Ratings, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return nil, err
	}

	var ratings models.Ratings
	err = db.WithTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildSelectRatingsForUpdateQuery(recipeID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		err = tx.QueryRowContext(ctx, query, args...).Scan(&ratings)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return ErrRecipeNotFound
		case err != nil:
			return fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		if ratings == nil {
			ratings = models.Ratings{}
		}
		ratings[uid] = rating

		query, args, err = buildUpdateRatingsQuery(recipeID, ratings)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}

		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRecipeNotFound) {
			log.Err(err).Str("func", "*recipeRepository.SaveRating").Int64("recipe_id", recipeID).Msg("error saving rating")
		}
		return nil, err
	}

	return ratings, nil
}
