// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

// ErrorClassificator decides what a failed database call means for the
// caller.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// ErrorClassification is the verdict of an [ErrorClassificator].
type ErrorClassification int

const (
	// NonRetryable is the default for unknown errors and server-side bugs
	// such as syntax errors or missing tables.
	NonRetryable ErrorClassification = iota

	// Retryable marks failures that may succeed later: lost connections,
	// serialization failures, deadlocks, a server that is starting up.
	Retryable

	// Rejected marks input the database refuses: data exceptions and
	// integrity constraint violations. Sending the same payload again will
	// fail the same way.
	Rejected
)

func (c ErrorClassification) String() string {
	switch c {
	case Retryable:
		return "retryable"
	case Rejected:
		return "rejected"
	default:
		return "non-retryable"
	}
}

// PostgresErrorClassifier implements [ErrorClassificator] for the pgx driver.
type PostgresErrorClassifier struct{}

func NewPostgresErrorClassifier() *PostgresErrorClassifier {
	return &PostgresErrorClassifier{}
}

// Classify unwraps err to a *pgconn.PgError and maps its SQLSTATE. Errors
// that are not PostgreSQL errors are NonRetryable.
func (c *PostgresErrorClassifier) Classify(err error) ErrorClassification {
	if err == nil {
		return NonRetryable
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return ClassifyPgError(pgErr)
	}

	return NonRetryable
}

// ClassifyPgError maps a SQLSTATE to a classification.
// See https://www.postgresql.org/docs/current/errcodes-appendix.html.
//
// Class 08, class 40 and 57P03 are Retryable. Class 22 and class 23 are
// Rejected. Everything else, class 42 included, is NonRetryable.
func ClassifyPgError(pgErr *pgconn.PgError) ErrorClassification {
	switch {
	case pgerrcode.IsConnectionException(pgErr.Code),
		pgerrcode.IsTransactionRollback(pgErr.Code),
		pgErr.Code == pgerrcode.CannotConnectNow:
		return Retryable

	case pgerrcode.IsDataException(pgErr.Code),
		pgerrcode.IsIntegrityConstraintViolation(pgErr.Code):
		return Rejected
	}

	return NonRetryable
}
