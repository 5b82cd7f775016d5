// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
)

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestPostgresErrorClassifier_Classify(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "nil", err: nil, want: NonRetryable},
		{name: "plain error", err: errors.New("boom"), want: NonRetryable},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Retryable},
		{name: "serialization failure", err: pgError(pgerrcode.SerializationFailure), want: Retryable},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Retryable},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Retryable},
		{name: "invalid json", err: pgError(pgerrcode.InvalidTextRepresentation), want: Rejected},
		{name: "unique violation", err: pgError(pgerrcode.UniqueViolation), want: Rejected},
		{name: "undefined table", err: pgError(pgerrcode.UndefinedTable), want: NonRetryable},
		{name: "wrapped", err: fmt.Errorf("%w: %w", ErrExecutingStatement, pgError(pgerrcode.AdminShutdown)), want: NonRetryable},
		{name: "wrapped retryable", err: fmt.Errorf("%w: %w", ErrExecutingQuery, pgError(pgerrcode.TransactionRollback)), want: Retryable},
	}

	c := NewPostgresErrorClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestErrorClassification_String(t *testing.T) {
	assert.Equal(t, "retryable", Retryable.String())
	assert.Equal(t, "rejected", Rejected.String())
	assert.Equal(t, "non-retryable", NonRetryable.String())
}

func TestDB_Classify_WithoutClassifier(t *testing.T) {
	db := &DB{}
	assert.Equal(t, NonRetryable, db.Classify(pgError(pgerrcode.ConnectionFailure)))
}
