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

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	conns  ConnProvider
	logger *logger.Logger
}

// NewUserRepository constructs a [UserRepository] that obtains connections
// from the provided [ConnProvider].
func NewUserRepository(conns ConnProvider, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		conns:  conns,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns it with the
// server-assigned fields (ID, CreatedAt) populated.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := buildInsertUserQuery(user)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var created models.User
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&created.ID, &created.Email, &created.Password, &created.IsAdmin, &created.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	return created, nil
}

// FindUserByEmail retrieves the user with the given (already normalized)
// email. Returns [ErrNoUserWasFound] if there is none.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.User{}, err
	}

	query, args, err := buildSelectUserByEmailQuery(email)
	if err != nil {
		return models.User{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.User
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&found.ID, &found.Email, &found.Password, &found.IsAdmin, &found.CreatedAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrNoUserWasFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}
