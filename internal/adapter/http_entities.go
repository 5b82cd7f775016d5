// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/MKhiriev/go-budget-sync/models"
)

// httpRemoteStore speaks the entity routes for one entity type. Entities
// travel as their own JSON documents.
type httpRemoteStore[E models.Entity] struct {
	conn       *httpConnection
	entityType models.EntityType
	newEntity  func() E
}

// newHTTPRemoteStore returns the REST store of entityType. newEntity must
// return a fresh non-nil value to decode into.
func newHTTPRemoteStore[E models.Entity](conn *httpConnection, entityType models.EntityType, newEntity func() E) RemoteStore[E] {
	return &httpRemoteStore[E]{conn: conn, entityType: entityType, newEntity: newEntity}
}

func (h *httpRemoteStore[E]) GetAll(ctx context.Context) ([]E, error) {
	resp, err := h.conn.request(ctx).
		SetPathParam("type", string(h.entityType)).
		Get(entitiesPath)
	if err != nil {
		return nil, fmt.Errorf("list %s request: %w", h.entityType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var docs []json.RawMessage
	if err = json.Unmarshal(resp.Body(), &docs); err != nil {
		return nil, fmt.Errorf("%w: decode %s list: %w", ErrMalformedResponse, h.entityType, err)
	}

	entities := make([]E, 0, len(docs))
	for _, doc := range docs {
		entity, err := h.decode(doc)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}

	return entities, nil
}

func (h *httpRemoteStore[E]) GetByID(ctx context.Context, id string) (E, error) {
	var zero E

	resp, err := h.conn.request(ctx).
		SetPathParams(map[string]string{"type": string(h.entityType), "id": id}).
		Get(entityPath)
	if err != nil {
		return zero, fmt.Errorf("get %s request: %w", h.entityType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return h.decode(resp.Body())
}

func (h *httpRemoteStore[E]) Save(ctx context.Context, entity E) (E, error) {
	var zero E

	resp, err := h.conn.request(ctx).
		SetPathParams(map[string]string{"type": string(h.entityType), "id": entity.Metadata().ID}).
		SetHeader("Content-Type", "application/json").
		SetBody(entity).
		Put(entityPath)
	if err != nil {
		return zero, fmt.Errorf("save %s request: %w", h.entityType, err)
	}
	if err = mapHTTPError(resp); err != nil {
		return zero, err
	}

	return h.decode(resp.Body())
}

func (h *httpRemoteStore[E]) Delete(ctx context.Context, id string, expectedVersion int64) (bool, error) {
	resp, err := h.conn.request(ctx).
		SetPathParams(map[string]string{"type": string(h.entityType), "id": id}).
		SetQueryParam("version", strconv.FormatInt(expectedVersion, 10)).
		Delete(entityPath)
	if err != nil {
		return false, fmt.Errorf("delete %s request: %w", h.entityType, err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return true, nil
}

func (h *httpRemoteStore[E]) GetVersion(ctx context.Context, id string) (int64, bool, error) {
	var version models.VersionResponse

	resp, err := h.conn.request(ctx).
		SetPathParams(map[string]string{"type": string(h.entityType), "id": id}).
		SetResult(&version).
		Get(versionPath)
	if err != nil {
		return 0, false, fmt.Errorf("get %s version request: %w", h.entityType, err)
	}
	err = mapHTTPError(resp)
	if errors.Is(err, ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}

	return version.Version, true, nil
}

func (h *httpRemoteStore[E]) decode(doc []byte) (E, error) {
	entity := h.newEntity()
	if err := json.Unmarshal(doc, entity); err != nil {
		var zero E
		return zero, fmt.Errorf("%w: decode %s: %w", ErrMalformedResponse, h.entityType, err)
	}
	return entity, nil
}
