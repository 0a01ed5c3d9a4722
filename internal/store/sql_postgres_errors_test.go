// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	classifier := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{"nil", nil, NonRetryable},
		{"plain error", errors.New("boom"), NonRetryable},
		{"cannot connect now", pgError(pgerrcode.CannotConnectNow), Retryable},
		{"admin shutdown", pgError(pgerrcode.AdminShutdown), Retryable},
		{"too many connections", pgError(pgerrcode.TooManyConnections), Retryable},
		{"deadlock wrapped", fmt.Errorf("tx: %w", pgError(pgerrcode.DeadlockDetected)), Retryable},
		{"unique violation", pgError(pgerrcode.UniqueViolation), NonRetryable},
		{"undefined table", pgError(pgerrcode.UndefinedTable), NonRetryable},
		{"unknown code", pgError("XX999"), NonRetryable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, classifier.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

func TestPostgresError(t *testing.T) {
	assert.Equal(t, pgerrcode.UniqueViolation, postgresError(fmt.Errorf("x: %w", pgError(pgerrcode.UniqueViolation))))
	assert.Empty(t, postgresError(errors.New("plain")))
}
