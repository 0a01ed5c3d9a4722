// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose SQL migrations of the recipe-box schema.
package migrations

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql
var embedMigrations embed.FS

// ErrNilDB is returned by [Migrate] when no database handle is given.
var ErrNilDB = errors.New("db is nil")

// Migrate applies every pending migration. Already applied versions are
// tracked by goose in its version table and skipped.
func Migrate(ctx context.Context, db *sql.DB) error {
	if db == nil {
		return ErrNilDB
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect("pgx"); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
