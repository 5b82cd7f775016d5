// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

type categoryRepository struct {
	*DB
	logger *logger.Logger
}

func NewCategoryRepository(db *DB, log *logger.Logger) CategoryRepository {
	return &categoryRepository{DB: db, logger: log}
}

func (c *categoryRepository) GetAll(ctx context.Context) (models.Categories, error) {
	rows, err := c.DB.QueryContext(ctx, selectCategories)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "categoryRepository.GetAll").Msg("failed to query categories")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	return scanCategories(rows)
}

// Add appends name to the end of kind. Adding an existing name is a no-op.
func (c *categoryRepository) Add(ctx context.Context, kind models.CategoryKind, name string) error {
	if _, err := c.DB.ExecContext(ctx, insertCategory, kind, name); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.Add").
			Str("kind", string(kind)).
			Str("name", name).
			Msg("failed to insert category")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (c *categoryRepository) Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	res, err := c.DB.ExecContext(ctx, deleteCategory, kind, name)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "categoryRepository.Remove").
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

func (c *categoryRepository) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	log := logger.FromContext(ctx).With().Str("func", "categoryRepository.Reorder").Str("kind", string(kind)).Logger()

	tx, err := c.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if _, err = tx.ExecContext(ctx, shiftCategoryPositions, len(names), kind); err != nil {
		log.Err(err).Msg("failed to shift category positions")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	for i, name := range names {
		if _, err = tx.ExecContext(ctx, updateCategoryPosition, i, kind, name); err != nil {
			log.Err(err).Str("name", name).Msg("failed to update category position")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}
	return nil
}
