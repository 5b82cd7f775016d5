// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// localEntityRepository caches one versioned entity type in the shared
// local_entities table. The entity is stored as its JSON document next to
// the columns needed for filtering.
type localEntityRepository[E models.Entity] struct {
	*DB
	entityType models.EntityType
	newEntity  func() E
	logger     *logger.Logger
}

// NewLocalEntityRepository returns the local cache for entityType. newEntity
// must return a fresh non-nil value to decode into.
func NewLocalEntityRepository[E models.Entity](db *DB, entityType models.EntityType, newEntity func() E, log *logger.Logger) LocalStore[E] {
	return &localEntityRepository[E]{
		DB:         db,
		entityType: entityType,
		newEntity:  newEntity,
		logger:     log,
	}
}

// GetAll returns entities ordered by creation time. Entities without a
// creation time come first.
func (l *localEntityRepository[E]) GetAll(ctx context.Context, filter models.Filter) ([]E, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildLocalEntitiesQuery(l.entityType, filter)
	if err != nil {
		log.Err(err).Str("func", "localEntityRepository.GetAll").Str("entity_type", string(l.entityType)).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := l.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "localEntityRepository.GetAll").Str("entity_type", string(l.entityType)).Msg("failed to query local entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]E, 0, 32)
	for rows.Next() {
		var payload []byte
		if err = rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}

		entity, err := l.decode(payload)
		if err != nil {
			log.Err(err).Str("func", "localEntityRepository.GetAll").Str("entity_type", string(l.entityType)).Msg("failed to decode local entity")
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func (l *localEntityRepository[E]) GetByID(ctx context.Context, id string) (E, error) {
	var zero E

	var payload []byte
	err := l.DB.QueryRowContext(ctx, selectLocalEntity, l.entityType, id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return zero, fmt.Errorf("%w: %s %s", ErrEntityNotFound, l.entityType, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEntityRepository.GetByID").
			Str("entity_type", string(l.entityType)).
			Str("id", id).
			Msg("failed to read local entity")
		return zero, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return l.decode(payload)
}

// Save inserts or replaces entity.
func (l *localEntityRepository[E]) Save(ctx context.Context, entity E) error {
	meta := entity.Metadata()
	if meta.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrEncodingPayload, err)
	}

	_, err = l.DB.ExecContext(ctx, upsertLocalEntity,
		l.entityType,
		meta.ID,
		meta.Version,
		unixNanoOrNil(meta.CreatedAt),
		unixNanoOrNil(meta.ModifiedAt),
		payload,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEntityRepository.Save").
			Str("entity_type", string(l.entityType)).
			Str("id", meta.ID).
			Msg("failed to upsert local entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (l *localEntityRepository[E]) Delete(ctx context.Context, id string) (bool, error) {
	res, err := l.DB.ExecContext(ctx, deleteLocalEntity, l.entityType, id)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "localEntityRepository.Delete").
			Str("entity_type", string(l.entityType)).
			Str("id", id).
			Msg("failed to delete local entity")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected > 0, nil
}

func (l *localEntityRepository[E]) GetVersion(ctx context.Context, id string) (int64, bool, error) {
	var version int64
	err := l.DB.QueryRowContext(ctx, selectLocalEntityVersion, l.entityType, id).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, true, nil
}

func (l *localEntityRepository[E]) decode(payload []byte) (E, error) {
	entity := l.newEntity()
	if err := json.Unmarshal(payload, entity); err != nil {
		var zero E
		return zero, fmt.Errorf("%w: %w", ErrDecodingPayload, err)
	}
	return entity, nil
}

func buildLocalEntitiesQuery(entityType models.EntityType, filter models.Filter) (string, []any, error) {
	builder := psq.Select("payload").
		From("local_entities").
		Where(sq.Eq{"entity_type": entityType}).
		OrderBy("created_at", "id")

	if filter.CreatedFrom != nil {
		builder = builder.Where(sq.GtOrEq{"created_at": filter.CreatedFrom.UnixNano()})
	}
	if filter.CreatedTo != nil {
		builder = builder.Where(sq.Lt{"created_at": filter.CreatedTo.UnixNano()})
	}
	if filter.ModifiedSince != nil {
		builder = builder.Where(sq.GtOrEq{"modified_at": filter.ModifiedSince.UnixNano()})
	}
	if filter.Limit > 0 {
		builder = builder.Limit(filter.Limit)
	}

	return builder.ToSql()
}

func unixNanoOrNil(t *time.Time) any {
	if t == nil || t.IsZero() {
		return nil
	}
	return t.UnixNano()
}
