// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/models"
	"github.com/jackc/pgerrcode"
)

// reviewRepository is the PostgreSQL-backed implementation of
// [ReviewRepository] over the "reviews" table.
type reviewRepository struct {
	conns  ConnProvider
	logger *logger.Logger
}

// NewReviewRepository constructs a [ReviewRepository].
func NewReviewRepository(conns ConnProvider, logger *logger.Logger) ReviewRepository {
	logger.Debug().Msg("creating review repository")
	return &reviewRepository{
		conns:  conns,
		logger: logger,
	}
}

func scanReview(row rowScanner) (models.Review, error) {
	var review models.Review
	err := row.Scan(
		&review.ID,
		&review.RecipeID,
		&review.UID,
		&review.Reviewer,
		&review.Text,
		&review.Rating,
		&review.CreatedAt,
	)
	return review, err
}

// ListReviews returns the reviews of the given recipes grouped by recipe id,
// newest first. All recipes are served by a single query.
func (r *reviewRepository) ListReviews(ctx context.Context, recipeIDs ...int64) (map[int64][]models.Review, error) {
	log := logger.FromContext(ctx)

	byRecipe := make(map[int64][]models.Review, len(recipeIDs))
	if len(recipeIDs) == 0 {
		return byRecipe, nil
	}

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return nil, err
	}

	query, args, err := buildSelectReviewsQuery(recipeIDs)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*reviewRepository.ListReviews").Msg("error selecting reviews")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		review, err := scanReview(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		byRecipe[review.RecipeID] = append(byRecipe[review.RecipeID], review)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return byRecipe, nil
}

// CreateReview inserts a review. A foreign key violation means the recipe
// vanished and is reported as [ErrRecipeNotFound].
func (r *reviewRepository) CreateReview(ctx context.Context, review models.Review) (models.Review, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.Review{}, err
	}

	query, args, err := buildInsertReviewQuery(review)
	if err != nil {
		return models.Review{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	created, err := scanReview(db.QueryRowContext(ctx, query, args...))
	if err != nil {
		if postgresError(err) == pgerrcode.ForeignKeyViolation {
			return models.Review{}, ErrRecipeNotFound
		}
		log.Err(err).Str("func", "*reviewRepository.CreateReview").Msg("error inserting review")
		return models.Review{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return created, nil
}
