// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

type localNoteRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalNoteRepository(db *DB, log *logger.Logger) LocalNoteStore {
	return &localNoteRepository{DB: db, logger: log}
}

func (l *localNoteRepository) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	rows, err := l.DB.QueryContext(ctx, selectLocalNotes)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localNoteRepository.GetAll").Msg("failed to query notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.ActivityNote, 0, 16)
	for rows.Next() {
		note, err := scanLocalNote(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		notes = append(notes, note)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return notes, nil
}

func (l *localNoteRepository) Get(ctx context.Context, key string) (models.ActivityNote, error) {
	note, err := scanLocalNote(l.DB.QueryRowContext(ctx, selectLocalNote, key))
	if errors.Is(err, sql.ErrNoRows) {
		return models.ActivityNote{}, fmt.Errorf("%w: note %s", ErrEntityNotFound, key)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localNoteRepository.Get").Str("key", key).Msg("failed to read note")
		return models.ActivityNote{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return note, nil
}

func (l *localNoteRepository) Set(ctx context.Context, note models.ActivityNote) error {
	if note.Key == "" {
		return fmt.Errorf("%w: empty note key", ErrInvalidEntity)
	}

	if _, err := l.DB.ExecContext(ctx, upsertLocalNote, note.Key, note.Text, note.UpdatedAt.UnixNano()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localNoteRepository.Set").Str("key", note.Key).Msg("failed to upsert note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localNoteRepository) Delete(ctx context.Context, key string) (bool, error) {
	res, err := l.DB.ExecContext(ctx, deleteLocalNote, key)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localNoteRepository.Delete").Str("key", key).Msg("failed to delete note")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

func (l *localNoteRepository) ReplaceAll(ctx context.Context, notes []models.ActivityNote) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllLocalNotes); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for _, note := range notes {
		if _, err = tx.ExecContext(ctx, upsertLocalNote, note.Key, note.Text, note.UpdatedAt.UnixNano()); err != nil {
			logger.FromContext(ctx).Err(err).Str("func", "localNoteRepository.ReplaceAll").Str("key", note.Key).Msg("failed to insert note")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func scanLocalNote(row rowScanner) (models.ActivityNote, error) {
	var (
		note      models.ActivityNote
		updatedAt int64
	)
	if err := row.Scan(&note.Key, &note.Text, &updatedAt); err != nil {
		return models.ActivityNote{}, err
	}
	note.UpdatedAt = time.Unix(0, updatedAt).UTC()

	return note, nil
}
