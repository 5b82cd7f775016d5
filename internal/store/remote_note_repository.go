// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

type noteRepository struct {
	*DB
	logger *logger.Logger
}

func NewNoteRepository(db *DB, log *logger.Logger) NoteRepository {
	return &noteRepository{DB: db, logger: log}
}

func (n *noteRepository) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	rows, err := n.DB.QueryContext(ctx, selectNotes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.GetAll").Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.ActivityNote, 0, 16)
	for rows.Next() {
		var note models.ActivityNote
		if err = rows.Scan(&note.Key, &note.Text, &note.UpdatedAt); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		note.UpdatedAt = note.UpdatedAt.UTC()
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (n *noteRepository) Set(ctx context.Context, note models.ActivityNote) error {
	if note.Key == "" {
		return fmt.Errorf("%w: empty note key", ErrInvalidEntity)
	}

	if _, err := n.DB.ExecContext(ctx, upsertNote, note.Key, note.Text, note.UpdatedAt); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.Set").Str("key", note.Key).Msg("failed to upsert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (n *noteRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := n.DB.ExecContext(ctx, deleteNote, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "noteRepository.Delete").Str("key", key).Msg("failed to delete note")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}
