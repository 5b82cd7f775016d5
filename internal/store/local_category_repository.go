// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

type localCategoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewLocalCategoryRepository(db *DB, log *logger.Logger) LocalCategoryStore {
	return &localCategoryRepository{DB: db, logger: log}
}

func (l *localCategoryRepository) GetAll(ctx context.Context) (models.Categories, error) {
	rows, err := l.DB.QueryContext(ctx, selectLocalCategories)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "localCategoryRepository.GetAll").Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// Add appends name at the end of its kind. added is false when the name was
// already there.
func (l *localCategoryRepository) Add(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	res, err := l.DB.ExecContext(ctx, insertLocalCategory, kind, name, kind)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localCategoryRepository.Add").
			Str("kind", string(kind)).
			Str("name", name).
			Msg("failed to insert category")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

func (l *localCategoryRepository) Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	res, err := l.DB.ExecContext(ctx, deleteLocalCategory, kind, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localCategoryRepository.Remove").
			Str("kind", string(kind)).
			Str("name", name).
			Msg("failed to delete category")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return affected > 0, nil
}

// Reorder assigns positions following names. Names unknown locally are
// ignored; known names missing from the list keep their old position after
// the listed ones.
func (l *localCategoryRepository) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, shiftLocalCategoryPositions, len(names), kind); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for i, name := range names {
		if _, err = tx.ExecContext(ctx, updateLocalCategoryPosition, i, kind, name); err != nil {
			logger.FromContext(ctx).Err(err).
				Str("func", "localCategoryRepository.Reorder").
				Str("kind", string(kind)).
				Str("name", name).
				Msg("failed to update category position")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

// ReplaceAll swaps the whole local list for categories.
func (l *localCategoryRepository) ReplaceAll(ctx context.Context, categories models.Categories) error {
	tx, err := l.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, deleteAllLocalCategories); err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for kind, names := range categories {
		for i, name := range names {
			if _, err = tx.ExecContext(ctx, insertLocalCategoryAt, kind, name, i); err != nil {
				logger.FromContext(ctx).Err(err).
					Str("func", "localCategoryRepository.ReplaceAll").
					Str("kind", string(kind)).
					Str("name", name).
					Msg("failed to insert category")
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}

func scanCategories(rows *sql.Rows) (models.Categories, error) {
	categories := make(models.Categories)
	for rows.Next() {
		var kind, name string
		if err := rows.Scan(&kind, &name); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		k := models.CategoryKind(kind)
		categories[k] = append(categories[k], name)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return categories, nil
}
