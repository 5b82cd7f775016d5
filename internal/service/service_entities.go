// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// entityService maps entity documents onto [store.EntityRepository] rows.
type entityService struct {
	entities store.EntityRepository
	logger   *logger.Logger
}

func NewEntityService(entities store.EntityRepository, logger *logger.Logger) EntityService {
	return &entityService{entities: entities, logger: logger}
}

func (s *entityService) List(ctx context.Context, entityType models.EntityType) ([]json.RawMessage, error) {
	rows, err := s.entities.List(ctx, entityType)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("entity_type", string(entityType)).Msg("listing entities failed")
		return nil, fmt.Errorf("listing %s failed: %w", entityType, err)
	}

	documents := make([]json.RawMessage, 0, len(rows))
	for _, row := range rows {
		documents = append(documents, row.Payload)
	}

	return documents, nil
}

func (s *entityService) Get(ctx context.Context, entityType models.EntityType, id string) (json.RawMessage, error) {
	row, err := s.entities.Get(ctx, entityType, id)
	if err != nil {
		return nil, err
	}

	return row.Payload, nil
}

// Save fills id from the path and modified_by from the token device when
// the document leaves them empty.
func (s *entityService) Save(ctx context.Context, entityType models.EntityType, id string, document json.RawMessage) (json.RawMessage, error) {
	log := logger.FromContext(ctx)

	var meta models.Meta
	if err := json.Unmarshal(document, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(document, &fields); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	if fields == nil {
		return nil, fmt.Errorf("%w: document is not an object", ErrInvalidDataProvided)
	}

	switch meta.ID {
	case "":
		meta.ID = id
		fields["id"], _ = json.Marshal(id)
	case id:
	default:
		log.Error().Str("path_id", id).Str("document_id", meta.ID).Msg("entity id mismatch")
		return nil, fmt.Errorf("%w: %s != %s", ErrEntityIDMismatch, meta.ID, id)
	}

	if meta.ModifiedBy == "" {
		if device, ok := utils.GetDeviceIDFromContext(ctx); ok {
			meta.ModifiedBy = device
			fields["modified_by"], _ = json.Marshal(device)
		}
	}

	payload, err := json.Marshal(fields)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	err = s.entities.Save(ctx, models.RemoteEntity{
		Type:       entityType,
		ID:         meta.ID,
		Version:    meta.Version,
		CreatedAt:  meta.CreatedAt,
		ModifiedAt: meta.ModifiedAt,
		ModifiedBy: meta.ModifiedBy,
		Payload:    payload,
	})
	if err != nil {
		log.Err(err).
			Str("entity_type", string(entityType)).
			Str("id", id).
			Int64("version", meta.Version).
			Msg("saving entity failed")
		return nil, fmt.Errorf("saving %s failed: %w", entityType, err)
	}

	return payload, nil
}

func (s *entityService) Delete(ctx context.Context, entityType models.EntityType, id string, expectedVersion int64) (bool, error) {
	found, err := s.entities.Delete(ctx, entityType, id, expectedVersion)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("entity_type", string(entityType)).
			Str("id", id).
			Int64("expected_version", expectedVersion).
			Msg("deleting entity failed")
		return false, fmt.Errorf("deleting %s failed: %w", entityType, err)
	}

	return found, nil
}

func (s *entityService) Version(ctx context.Context, entityType models.EntityType, id string) (int64, error) {
	return s.entities.Version(ctx, entityType, id)
}

func (s *entityService) Ping(ctx context.Context) error {
	return s.entities.Ping(ctx)
}
