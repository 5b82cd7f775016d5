// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
)

// DB wraps a *sql.DB together with the schema it should be migrated to and
// the classifier used for driver errors.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the schema matching the driver the DB was opened with.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// Classify reports whether err, returned by this database, is worth retrying.
func (db *DB) Classify(err error) ErrorClassification {
	if db.errorClassificator == nil {
		return NonRetryable
	}
	return db.errorClassificator.Classify(err)
}
