// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// cachingCategoryRepository queues category intents instead of snapshots.
// Categories carry no version, so the remote applies every intent as is.
type cachingCategoryRepository struct {
	local  store.LocalCategoryStore
	remote adapter.RemoteCategoryStore
	queue  store.Queue

	logger *logger.Logger
}

func NewCachingCategoryRepository(local store.LocalCategoryStore, remote adapter.RemoteCategoryStore, queue store.Queue, log *logger.Logger) CategoryRepository {
	return &cachingCategoryRepository{local: local, remote: remote, queue: queue, logger: log}
}

func (c *cachingCategoryRepository) EntityType() models.EntityType {
	return models.EntityCategory
}

func (c *cachingCategoryRepository) GetAll(ctx context.Context) (models.Categories, error) {
	return c.local.GetAll(ctx)
}

func (c *cachingCategoryRepository) Add(ctx context.Context, kind models.CategoryKind, name string) error {
	name, err := validateCategory(kind, name)
	if err != nil {
		return err
	}

	added, err := c.local.Add(ctx, kind, name)
	if err != nil {
		return err
	}
	if !added {
		return nil
	}

	id := models.CategoryEntityID(kind, name)
	op := models.OperationCreate
	pending, err := c.queue.GetPendingForEntity(ctx, id)
	if err != nil {
		return fmt.Errorf("error reading queued change: %w", err)
	}
	if pending != nil && pending.Operation == models.OperationDelete {
		op = models.OperationUpdate
	}

	return c.enqueue(ctx, id, op, models.CategoryOp{Action: models.CategoryAdd, Kind: kind, Name: name})
}

// Remove of a name added since the last sync cancels the queued add.
func (c *cachingCategoryRepository) Remove(ctx context.Context, kind models.CategoryKind, name string) error {
	name, err := validateCategory(kind, name)
	if err != nil {
		return err
	}

	removed, err := c.local.Remove(ctx, kind, name)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	payload, err := json.Marshal(models.CategoryOp{Action: models.CategoryRemove, Kind: kind, Name: name})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	return c.queue.EnqueueDelete(ctx, models.EntityCategory, models.CategoryEntityID(kind, name), 0, payload)
}

func (c *cachingCategoryRepository) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	if err := kind.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if err := c.local.Reorder(ctx, kind, names); err != nil {
		return err
	}

	return c.enqueue(ctx, models.CategoryOrderEntityID(kind), models.OperationUpdate,
		models.CategoryOp{Action: models.CategoryReorder, Kind: kind, Names: names})
}

// RefreshFromCloud replaces the whole local list, so it is skipped while any
// category change is still queued.
func (c *cachingCategoryRepository) RefreshFromCloud(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).With().Str("func", "cachingCategoryRepository.RefreshFromCloud").Logger()

	pending, err := c.queue.HasPendingForType(ctx, models.EntityCategory)
	if err != nil {
		return 0, err
	}
	if pending {
		log.Debug().Msg("category changes are queued, refresh skipped")
		return 0, nil
	}

	categories, err := c.remote.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("failed to fetch remote categories")
		return 0, fmt.Errorf("error fetching remote categories: %w", err)
	}
	if err = c.local.ReplaceAll(ctx, categories); err != nil {
		return 0, err
	}

	return categories.Count(), nil
}

// InitializeCache refreshes on every call. Replacing the list is idempotent.
func (c *cachingCategoryRepository) InitializeCache(ctx context.Context) error {
	_, err := c.RefreshFromCloud(ctx)
	return err
}

func (c *cachingCategoryRepository) Push(ctx context.Context, change models.PendingChange) error {
	var op models.CategoryOp
	if err := json.Unmarshal(change.Payload, &op); err != nil {
		return fmt.Errorf("%w: %w", store.ErrDecodingPayload, err)
	}

	switch op.Action {
	case models.CategoryAdd:
		return c.remote.Add(ctx, op.Kind, op.Name)
	case models.CategoryRemove:
		_, err := c.remote.Remove(ctx, op.Kind, op.Name)
		return err
	case models.CategoryReorder:
		return c.remote.Reorder(ctx, op.Kind, op.Names)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCategoryOp, op.Action)
	}
}

func (c *cachingCategoryRepository) enqueue(ctx context.Context, id string, op models.Operation, categoryOp models.CategoryOp) error {
	payload, err := json.Marshal(categoryOp)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	return c.queue.EnqueueOperation(ctx, models.EntityCategory, id, op, 0, payload)
}

func validateCategory(kind models.CategoryKind, name string) (string, error) {
	if err := kind.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", fmt.Errorf("%w: empty category name", ErrInvalidDataProvided)
	}

	return name, nil
}
