// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// Queue is the durable FIFO log of local mutations waiting to be written to
// the remote store.
//
// Every method runs in its own transaction. Every method except Initialize
// returns [ErrQueueNotInitialized] until Initialize has reset rows left in
// PROCESSING by a crash.
type Queue interface {
	// Initialize performs crash recovery and returns the number of rows moved
	// from PROCESSING back to PENDING.
	Initialize(ctx context.Context) (int, error)

	// Enqueue inserts change as a new PENDING row. ID and CreatedAt are
	// filled in when empty.
	Enqueue(ctx context.Context, change *models.PendingChange) error

	// EnqueueSave records a save of entity. An existing row for the same
	// entity that is not PROCESSING is rewritten in place; otherwise a new
	// CREATE (version 1) or UPDATE row is appended. When a PROCESSING row
	// already carries the entity's version, the new row becomes an UPDATE
	// one version past it and entity's version is changed to match.
	EnqueueSave(ctx context.Context, entity models.Entity) error

	// EnqueueOperation is the coalescing primitive behind EnqueueSave, usable
	// for entities without a versioned snapshot. Coalesced category rows move
	// to the back of the queue.
	EnqueueOperation(ctx context.Context, entityType models.EntityType, entityID string, op models.Operation, version int64, payload json.RawMessage) error

	// EnqueueDelete drops queued non-delete rows of the entity first. When
	// one of them was a CREATE nothing is queued. Otherwise a DELETE row
	// expecting expectedVersion is queued; if a pending UPDATE was dropped,
	// the expectation is lowered to the version the remote still holds.
	EnqueueDelete(ctx context.Context, entityType models.EntityType, entityID string, expectedVersion int64, payload json.RawMessage) error

	Dequeue(ctx context.Context, id string) error
	Get(ctx context.Context, id string) (*models.PendingChange, error)

	// GetPending returns up to limit PENDING rows, oldest first.
	GetPending(ctx context.Context, limit uint64) ([]models.PendingChange, error)
	// GetPendingCount counts every row not yet synced, whatever its status.
	GetPendingCount(ctx context.Context) (int, error)
	HasPendingForType(ctx context.Context, entityType models.EntityType) (bool, error)
	// GetPendingForEntity returns the most recent row for entityID in any
	// status, or nil.
	GetPendingForEntity(ctx context.Context, entityID string) (*models.PendingChange, error)
	// PendingEntityIDs returns the ids of entityType that have any queued row.
	PendingEntityIDs(ctx context.Context, entityType models.EntityType) (map[string]struct{}, error)
	GetConflicts(ctx context.Context) ([]models.PendingChange, error)

	MarkProcessing(ctx context.Context, id string) error
	MarkFailed(ctx context.Context, id string, cause string) error
	MarkConflict(ctx context.Context, id string, cause string) error
	// ResolveConflict puts the row back to PENDING with a clean retry state
	// when useLocal is true and removes it otherwise.
	ResolveConflict(ctx context.Context, id string, useLocal bool) error
	// ReplacePayload rewrites the snapshot and version of a row.
	ReplacePayload(ctx context.Context, id string, version int64, payload json.RawMessage) error

	// SetOnChange installs the hook called after every committed enqueue.
	// Passing nil removes it.
	SetOnChange(fn func())

	GetMeta(ctx context.Context, key string) (string, bool, error)
	SetMeta(ctx context.Context, key, value string) error
}

// LocalStore is the local cache of one versioned entity type.
type LocalStore[E models.Entity] interface {
	GetAll(ctx context.Context, filter models.Filter) ([]E, error)
	GetByID(ctx context.Context, id string) (E, error)
	Save(ctx context.Context, entity E) error
	Delete(ctx context.Context, id string) (bool, error)
	GetVersion(ctx context.Context, id string) (int64, bool, error)
}

// LocalCategoryStore is the local cache of category lists.
type LocalCategoryStore interface {
	GetAll(ctx context.Context) (models.Categories, error)
	Add(ctx context.Context, kind models.CategoryKind, name string) (bool, error)
	Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error)
	Reorder(ctx context.Context, kind models.CategoryKind, names []string) error
	ReplaceAll(ctx context.Context, categories models.Categories) error
}

// LocalNoteStore is the local cache of activity notes.
type LocalNoteStore interface {
	GetAll(ctx context.Context) ([]models.ActivityNote, error)
	Get(ctx context.Context, key string) (models.ActivityNote, error)
	Set(ctx context.Context, note models.ActivityNote) error
	Delete(ctx context.Context, key string) (bool, error)
	ReplaceAll(ctx context.Context, notes []models.ActivityNote) error
}
