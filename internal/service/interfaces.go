// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"

	"github.com/MKhiriev/go-budget-sync/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock -exclude_interfaces=EntityServiceWrapper,CategoryServiceWrapper,NoteServiceWrapper

// EntityService is the remote store of versioned entities as the reference
// server exposes it. Documents are opaque JSON apart from the [models.Meta]
// fields.
type EntityService interface {
	List(ctx context.Context, entityType models.EntityType) ([]json.RawMessage, error)
	Get(ctx context.Context, entityType models.EntityType, id string) (json.RawMessage, error)

	// Save stores document under id when its version is exactly one above
	// the stored one and returns the stored document.
	Save(ctx context.Context, entityType models.EntityType, id string, document json.RawMessage) (json.RawMessage, error)
	Delete(ctx context.Context, entityType models.EntityType, id string, expectedVersion int64) (found bool, err error)
	Version(ctx context.Context, entityType models.EntityType, id string) (int64, error)

	Ping(ctx context.Context) error
}

type CategoryService interface {
	GetAll(ctx context.Context) (models.Categories, error)
	Add(ctx context.Context, kind models.CategoryKind, name string) error
	Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error)
	Reorder(ctx context.Context, kind models.CategoryKind, names []string) error
}

type NoteService interface {
	GetAll(ctx context.Context) ([]models.ActivityNote, error)
	Set(ctx context.Context, note models.ActivityNote) error
	Delete(ctx context.Context, key string) (bool, error)
}

// AuthService issues and checks the bearer tokens of sync clients. An
// empty sign key disables authentication.
type AuthService interface {
	Enabled() bool
	CreateToken(ctx context.Context, deviceID string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// EntityServiceWrapper defines middleware composition for EntityService.
// Implementations wrap an existing EntityService to add behavior such as
// validating.
type EntityServiceWrapper interface {
	Wrap(EntityService) EntityService
}

type CategoryServiceWrapper interface {
	Wrap(CategoryService) CategoryService
}

type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService
}
