// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_store_mock.go -package=mock

// EntityRepository is the server-side table of versioned entities.
type EntityRepository interface {
	List(ctx context.Context, entityType models.EntityType) ([]models.RemoteEntity, error)
	Get(ctx context.Context, entityType models.EntityType, id string) (models.RemoteEntity, error)
	// Save stores entity when its version is exactly one above the stored
	// version (an absent row counts as version 0) and returns
	// [ErrVersionConflict] otherwise.
	Save(ctx context.Context, entity models.RemoteEntity) error
	// Delete removes the row when it still holds expectedVersion. found is
	// false when there was no row.
	Delete(ctx context.Context, entityType models.EntityType, id string, expectedVersion int64) (found bool, err error)
	Version(ctx context.Context, entityType models.EntityType, id string) (int64, error)
	Ping(ctx context.Context) error
}

// CategoryRepository is the server-side table of category lists.
type CategoryRepository interface {
	GetAll(ctx context.Context) (models.Categories, error)
	Add(ctx context.Context, kind models.CategoryKind, name string) error
	Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error)
	Reorder(ctx context.Context, kind models.CategoryKind, names []string) error
}

// NoteRepository is the server-side table of activity notes.
type NoteRepository interface {
	GetAll(ctx context.Context) ([]models.ActivityNote, error)
	Set(ctx context.Context, note models.ActivityNote) error
	Delete(ctx context.Context, key string) (bool, error)
}
