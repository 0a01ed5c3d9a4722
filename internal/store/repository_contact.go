// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/models"
)

type contactRepository struct {
	conns  ConnProvider
	logger *logger.Logger
}

// NewContactRepository constructs a [ContactRepository].
func NewContactRepository(conns ConnProvider, logger *logger.Logger) ContactRepository {
	logger.Debug().Msg("creating contact repository")
	return &contactRepository{
		conns:  conns,
		logger: logger,
	}
}

// CreateMessage stores a contact form submission and returns the stored row.
func (r *contactRepository) CreateMessage(ctx context.Context, msg models.ContactMessage) (models.ContactMessage, error) {
	log := logger.FromContext(ctx)

	db, err := r.conns.Conn(ctx)
	if err != nil {
		return models.ContactMessage{}, err
	}

	query, args, err := buildInsertContactQuery(msg)
	if err != nil {
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var saved models.ContactMessage
	err = db.QueryRowContext(ctx, query, args...).
		Scan(&saved.ID, &saved.Name, &saved.Email, &saved.Message, &saved.Timestamp, &saved.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*contactRepository.CreateMessage").Msg("error inserting contact message")
		return models.ContactMessage{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return saved, nil
}
