// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// EntityType names a synchronized entity family. It is stored verbatim in the
// pending_changes.entity_type column and used in remote routes.
type EntityType string

const (
	EntityTransaction     EntityType = "transaction"
	EntityPlannedTemplate EntityType = "planned_template"
	EntitySheet           EntityType = "sheet"
	EntityCategory        EntityType = "category"
	EntityActivityNote    EntityType = "activity_note"
)

// Versioned reports whether entities of this type carry a per-item version
// and take part in optimistic concurrency checks.
func (t EntityType) Versioned() bool {
	switch t {
	case EntityTransaction, EntityPlannedTemplate, EntitySheet:
		return true
	default:
		return false
	}
}

// Meta holds the fields every versioned entity shares. It is embedded in the
// concrete entity types so its JSON fields are flattened into the entity
// document.
//
// Version starts at 1 for a new entity and grows by exactly one per
// successful remote write.
type Meta struct {
	ID         string     `json:"id"`
	Version    int64      `json:"version"`
	CreatedAt  *time.Time `json:"created_at,omitempty"`
	ModifiedAt *time.Time `json:"modified_at,omitempty"`
	ModifiedBy string     `json:"modified_by,omitempty"`
}

// Metadata returns the embedded metadata so generic code can stamp versions
// and timestamps without knowing the concrete entity type.
func (m *Meta) Metadata() *Meta {
	return m
}

// LastWrite returns the most recent known write time normalized to UTC:
// ModifiedAt when set, CreatedAt otherwise. ok is false when neither is set.
func (m *Meta) LastWrite() (t time.Time, ok bool) {
	switch {
	case m.ModifiedAt != nil && !m.ModifiedAt.IsZero():
		return m.ModifiedAt.UTC(), true
	case m.CreatedAt != nil && !m.CreatedAt.IsZero():
		return m.CreatedAt.UTC(), true
	default:
		return time.Time{}, false
	}
}

// Entity is implemented by pointers to every versioned entity type.
type Entity interface {
	Metadata() *Meta
	EntityType() EntityType
}

// Filter narrows local list queries. Zero values mean "no restriction".
type Filter struct {
	CreatedFrom   *time.Time
	CreatedTo     *time.Time
	ModifiedSince *time.Time
	Limit         uint64
}

// Timestamp returns a pointer to t in UTC. Convenience for filling Meta.
func Timestamp(t time.Time) *time.Time {
	u := t.UTC()
	return &u
}
