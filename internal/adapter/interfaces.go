// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter is the client side of the remote store.
//
// [RemoteStore], [RemoteCategoryStore] and [RemoteNoteStore] decouple the
// caching repositories from the transport; [RemoteConnection] is what the
// connection monitor pings. The package ships a REST implementation on
// resty ([NewHTTPAdapters]).
//
// HTTP statuses are mapped to the sentinel errors in errors.go by
// mapHTTPError so callers can use [errors.Is] without knowing the transport
// (e.g. [ErrVersionConflict] for 409, [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/adapter_mock.go -package=mock

// RemoteStore is the remote CRUD store of one versioned entity type.
type RemoteStore[E models.Entity] interface {
	GetAll(ctx context.Context) ([]E, error)

	// GetByID returns [ErrNotFound] (wrapped) when the entity is absent.
	GetByID(ctx context.Context, id string) (E, error)

	// Save writes entity when the remote still holds entity version - 1 and
	// returns the stored document. Otherwise it returns [ErrVersionConflict].
	Save(ctx context.Context, entity E) (E, error)

	// Delete removes the entity when the remote still holds
	// expectedVersion. found is false when the entity was already gone.
	Delete(ctx context.Context, id string, expectedVersion int64) (found bool, err error)

	// GetVersion returns the current remote version; ok is false when the
	// entity is absent.
	GetVersion(ctx context.Context, id string) (version int64, ok bool, err error)
}

// RemoteCategoryStore is the remote list of income and expense categories.
type RemoteCategoryStore interface {
	GetAll(ctx context.Context) (models.Categories, error)
	Add(ctx context.Context, kind models.CategoryKind, name string) error
	Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error)
	Reorder(ctx context.Context, kind models.CategoryKind, names []string) error
}

// RemoteNoteStore is the remote set of activity notes.
type RemoteNoteStore interface {
	GetAll(ctx context.Context) ([]models.ActivityNote, error)
	Set(ctx context.Context, note models.ActivityNote) error
	Delete(ctx context.Context, key string) (bool, error)
}

// RemoteConnection is the link the connection monitor supervises.
type RemoteConnection interface {
	// HealthCheck reports whether the remote answered the health endpoint.
	HealthCheck(ctx context.Context) bool

	// Reconnect drops pooled connections, builds a fresh client and checks
	// that the remote answers.
	Reconnect(ctx context.Context) error
}
