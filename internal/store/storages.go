// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

// Storages bundles the connection pool, every repository built on it and the
// upload backend. It is created once at startup and handed to the services.
type Storages struct {
	Pool *Pool

	UserRepository     UserRepository
	RecipeRepository   RecipeRepository
	ReviewRepository   ReviewRepository
	FavoriteRepository FavoriteRepository
	ContactRepository  ContactRepository

	FileStorage FileStorage
}

// NewStorages wires repositories to a fresh, uninitialized [Pool]. The pool
// is connected later by [Pool.Initialize], so startup never blocks on the
// database. The upload backend is S3 when a bucket is configured and the
// local uploads directory otherwise.
func NewStorages(ctx context.Context, cfg *config.StructuredConfig, log *logger.Logger, opts ...PoolOption) (*Storages, error) {
	pool := NewPool(cfg.Storage.DB, cfg.App.IsProduction(), log, opts...)

	var (
		files FileStorage
		err   error
	)
	if cfg.Storage.Files.S3.Bucket != "" {
		files, err = NewS3FileStorage(ctx, cfg.Storage.Files.S3, log)
	} else {
		files, err = NewLocalFileStorage(cfg.Storage.Files.UploadsDir, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error creating file storage: %w", err)
	}

	return &Storages{
		Pool:               pool,
		UserRepository:     NewUserRepository(pool, log),
		RecipeRepository:   NewRecipeRepository(pool, log),
		ReviewRepository:   NewReviewRepository(pool, log),
		FavoriteRepository: NewFavoriteRepository(pool, log),
		ContactRepository:  NewContactRepository(pool, log),
		FileStorage:        files,
	}, nil
}

// Close releases the connection pool.
func (s *Storages) Close() error {
	return s.Pool.Close()
}
