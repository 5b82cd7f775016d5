// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// ClientStorages groups everything the client keeps in its SQLite file: the
// sync queue and one local cache per synchronized entity family.
type ClientStorages struct {
	Queue Queue

	Transactions     LocalStore[*models.Transaction]
	PlannedTemplates LocalStore[*models.PlannedTemplate]
	Sheets           LocalStore[*models.Sheet]
	Categories       LocalCategoryStore
	Notes            LocalNoteStore

	db *DB
}

// NewClientStorages opens (or creates) the SQLite file at cfg.DB.DSN,
// migrates it and builds the local stores. The queue still needs
// Queue.Initialize before use.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Info().Msg("creating new client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err = db.Migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return newClientStorages(db, log), nil
}

func newClientStorages(db *DB, log *logger.Logger) *ClientStorages {
	return &ClientStorages{
		Queue:            NewQueue(db, log),
		Transactions:     NewLocalEntityRepository(db, models.EntityTransaction, models.NewTransaction, log),
		PlannedTemplates: NewLocalEntityRepository(db, models.EntityPlannedTemplate, models.NewPlannedTemplate, log),
		Sheets:           NewLocalEntityRepository(db, models.EntitySheet, models.NewSheet, log),
		Categories:       NewLocalCategoryRepository(db, log),
		Notes:            NewLocalNoteRepository(db, log),
		db:               db,
	}
}

func (s *ClientStorages) Close() error {
	return s.db.Close()
}
