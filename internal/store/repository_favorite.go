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
	"github.com/jackc/pgerrcode"
)

// favoriteRepository is the PostgreSQL-backed implementation of
// [FavoriteRepository] over the "favorites" table.
type favoriteRepository struct {
	conns  ConnProvider
	logger *logger.Logger
}

// NewFavoriteRepository constructs a [FavoriteRepository].
func NewFavoriteRepository(conns ConnProvider, logger *logger.Logger) FavoriteRepository {
	logger.Debug().Msg("creating favorite repository")
	return &favoriteRepository{
		conns:  conns,
		logger: logger,
	}
}

// ToggleFavorite removes the (user, recipe) favorite if it exists and adds it
// otherwise, inside one transaction. Returns true when the favorite was
// added. A nonexistent recipe yields [ErrRecipeNotFound].
func (r *favoriteRepository) ToggleFavorite(ctx context.Context, userID, recipeID int64) (bool, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return false, err
	}

	var added bool
	err = db.WithTx(ctx, nil, func(ctx context.Context, tx DBTX) error {
		query, args, err := buildSelectFavoriteQuery(userID, recipeID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}

		var favoriteID int64
		err = tx.QueryRowContext(ctx, query, args...).Scan(&favoriteID)
		switch {
		case err == nil:
			query, args, err = buildDeleteFavoriteQuery(favoriteID)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			added = false
			return nil
		case !errors.Is(err, sql.ErrNoRows):
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		query, args, err = buildInsertFavoriteQuery(userID, recipeID)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
		if _, err = tx.ExecContext(ctx, query, args...); err != nil {
			if postgresError(err) == pgerrcode.ForeignKeyViolation {
				return ErrRecipeNotFound
			}
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		added = true
		return nil
	})
	if err != nil {
		if !errors.Is(err, ErrRecipeNotFound) {
			log.Err(err).Str("func", "*favoriteRepository.ToggleFavorite").
				Int64("user_id", userID).Int64("recipe_id", recipeID).
				Msg("error toggling favorite")
		}
		return false, err
	}

	return added, nil
}

// ListFavoriteRecipes returns the user's favorited recipes, most recently
// favorited first.
func (r *favoriteRepository) ListFavoriteRecipes(ctx context.Context, userID int64) ([]models.Recipe, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectFavoriteRecipesQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavoriteRecipes").Msg("error selecting favorites")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return scanRecipes(rows)
}

// ListFavoriteIDs returns the ids of the user's favorited recipes.
func (r *favoriteRepository) ListFavoriteIDs(ctx context.Context, userID int64) ([]int64, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectFavoriteIDsQuery(userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*favoriteRepository.ListFavoriteIDs").Msg("error selecting favorite ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make([]int64, 0)
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}
