// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
)

// Storages groups the server-side repositories backed by PostgreSQL.
type Storages struct {
	Entities   EntityRepository
	Categories CategoryRepository
	Notes      NoteRepository

	db *DB
}

// NewStorages connects to PostgreSQL, applies migrations and builds the
// repositories on top of the connection.
func NewStorages(ctx context.Context, cfg config.DB, log *logger.Logger) (*Storages, error) {
	log.Info().Msg("creating new storages...")

	db, err := NewConnectPostgres(ctx, cfg, log)
	if err != nil {
		return nil, fmt.Errorf("postgres connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newStorages(db, log), nil
}

func newStorages(db *DB, log *logger.Logger) *Storages {
	return &Storages{
		Entities:   NewEntityRepository(db, log),
		Categories: NewCategoryRepository(db, log),
		Notes:      NewNoteRepository(db, log),
		db:         db,
	}
}

// Classify exposes the driver error classifier to the transport layer.
func (s *Storages) Classify(err error) ErrorClassification {
	return s.db.Classify(err)
}

func (s *Storages) Close() error {
	return s.db.Close()
}
