// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"time"
)

// RemoteEntity is how the server stores any versioned entity: the metadata
// columns it checks plus the opaque JSON document.
type RemoteEntity struct {
	Type       EntityType
	ID         string
	Version    int64
	CreatedAt  *time.Time
	ModifiedAt *time.Time
	ModifiedBy string
	Payload    json.RawMessage
}

// VersionResponse is returned by GET /api/v1/entities/{type}/{id}/version.
type VersionResponse struct {
	ID      string `json:"id"`
	Version int64  `json:"version"`
}

// AddCategoryRequest is the body of POST /api/v1/categories.
type AddCategoryRequest struct {
	Kind CategoryKind `json:"kind"`
	Name string       `json:"name"`
}

// ReorderCategoriesRequest is the body of PUT /api/v1/categories/{kind}/order.
type ReorderCategoriesRequest struct {
	Names []string `json:"names"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status string    `json:"status"`
	Time   time.Time `json:"time"`
}
