// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

// DB wraps the *sql.DB handed out by [Pool] together with the error
// classifier and logger used by repositories.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// NewDB wraps an already opened *sql.DB. It is used by [Pool] and by tests
// that plug in sqlmock connections.
func NewDB(db *sql.DB, log *logger.Logger) *DB {
	return &DB{
		DB:                 db,
		errorClassificator: NewPostgresErrorClassifier(),
		logger:             log,
	}
}
