// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_service_mock.go -package=mock -mock_names=EntityRepository=MockCachingRepository,CategoryRepository=MockCachingCategoryRepository,NoteRepository=MockCachingNoteRepository

// Refreshable is implemented by every caching repository that can pull the
// remote snapshot into its local cache.
type Refreshable interface {
	// RefreshFromCloud replaces the local cache with the remote snapshot,
	// leaving entities with queued local changes untouched. It returns the
	// number of local rows written or removed.
	RefreshFromCloud(ctx context.Context) (int, error)

	// InitializeCache seeds the cache the first time a remote connection is
	// available. Calls after the first successful one are no-ops.
	InitializeCache(ctx context.Context) error
}

// SyncTarget sends one queued change of its entity type to the remote store.
type SyncTarget interface {
	EntityType() models.EntityType
	Push(ctx context.Context, change models.PendingChange) error
}

// ConflictTarget is implemented by targets of versioned entities. The sync
// engine type-asserts a [SyncTarget] to it when a version conflict needs a
// strategy; targets without it have their conflicts parked for the user.
type ConflictTarget interface {
	// FetchRemote returns the remote document and its metadata. Both are nil
	// when the entity does not exist remotely.
	FetchRemote(ctx context.Context, id string) (json.RawMessage, *models.Meta, error)

	// ForcePush writes change on top of remoteVersion regardless of what the
	// local snapshot says about versions.
	ForcePush(ctx context.Context, change models.PendingChange, remoteVersion int64) error

	// Restamp returns the payload and queue version that make change apply
	// cleanly on top of remoteVersion.
	Restamp(ctx context.Context, change models.PendingChange, remoteVersion int64) (json.RawMessage, int64, error)

	// RefreshEntity replaces the local copy of id with the remote one, or
	// drops it when the remote no longer has it.
	RefreshEntity(ctx context.Context, id string) error
}

// EntityRepository is the local-first facade of one versioned entity type.
// Reads never leave the local cache; writes land locally and are queued for
// the sync engine.
type EntityRepository[E models.Entity] interface {
	GetAll(ctx context.Context, filter models.Filter) ([]E, error)
	GetByID(ctx context.Context, id string) (E, error)

	// Save stamps version and timestamps, stores entity locally and queues it.
	Save(ctx context.Context, entity E) (E, error)
	// Delete removes id locally and queues a version-checked remote delete.
	Delete(ctx context.Context, id string) error

	BulkSave(ctx context.Context, entities []E) ([]E, error)
	BulkDelete(ctx context.Context, ids []string) error

	// SyncToCloud and DeleteFromCloud talk to the remote store directly and
	// are meant for the sync engine only.
	SyncToCloud(ctx context.Context, entity E) (E, error)
	DeleteFromCloud(ctx context.Context, id string, expectedVersion int64) (bool, error)

	Refreshable
	SyncTarget
	ConflictTarget
}

// CategoryRepository is the local-first facade of the category lists.
type CategoryRepository interface {
	GetAll(ctx context.Context) (models.Categories, error)
	Add(ctx context.Context, kind models.CategoryKind, name string) error
	Remove(ctx context.Context, kind models.CategoryKind, name string) error
	Reorder(ctx context.Context, kind models.CategoryKind, names []string) error

	Refreshable
	SyncTarget
}

// NoteRepository is the local-first facade of the activity notes.
type NoteRepository interface {
	GetAll(ctx context.Context) ([]models.ActivityNote, error)
	Get(ctx context.Context, key string) (models.ActivityNote, error)
	Set(ctx context.Context, key, text string) (models.ActivityNote, error)
	Remove(ctx context.Context, key string) error

	Refreshable
	SyncTarget
}

// ConnectivityGate is the part of the connection monitor the sync engine
// depends on.
type ConnectivityGate interface {
	IsConnected() bool
	// ReportNetworkError tells the monitor that a caller saw a failure that
	// looks like a lost connection.
	ReportNetworkError()
}

// ConnectionMonitor tracks whether the remote store is reachable.
type ConnectionMonitor interface {
	ConnectivityGate

	Status() models.ConnectionStatus
	State() models.ConnectionState

	// StartMonitoring runs health checks until ctx is done or StopMonitoring
	// is called.
	StartMonitoring(ctx context.Context)
	StopMonitoring()

	// ReconnectNow makes one immediate reconnection attempt and reports
	// whether it succeeded.
	ReconnectNow(ctx context.Context) bool

	OnStatusChanged(fn func(old, new models.ConnectionStatus))
}

// SyncEngine drains the queue into the remote store.
type SyncEngine interface {
	Start(ctx context.Context) error
	// Stop prevents new passes and waits for a running one to finish its
	// current change.
	Stop()

	// SyncNow runs one pass and returns the number of changes written to
	// the remote store. It returns 0 at once when the engine is stopped,
	// offline or already inside a pass.
	SyncNow(ctx context.Context) int
	IsSyncing() bool

	GetPendingCount(ctx context.Context) (int, error)
	GetConflicts(ctx context.Context) ([]models.PendingChange, error)
	ResolveConflictWithChoice(ctx context.Context, changeID string, useLocal bool) error

	OnConflict(fn func(models.SyncConflict))
	OnPendingCountChanged(fn func(count int))
	OnSyncCompleted(fn func(synced int))
}
