// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// remoteEntityRepository is the PostgreSQL implementation of
// [EntityRepository]. Writes lock the row with SELECT ... FOR UPDATE so the
// version check and the write happen atomically.
type remoteEntityRepository struct {
	*DB
	logger *logger.Logger
}

func NewEntityRepository(db *DB, log *logger.Logger) EntityRepository {
	return &remoteEntityRepository{DB: db, logger: log}
}

func (r *remoteEntityRepository) List(ctx context.Context, entityType models.EntityType) ([]models.RemoteEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListEntitiesQuery(entityType)
	if err != nil {
		log.Err(err).Str("func", "remoteEntityRepository.List").Str("entity_type", string(entityType)).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "remoteEntityRepository.List").Str("entity_type", string(entityType)).Msg("failed to query entities")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	entities := make([]models.RemoteEntity, 0, 50)
	for rows.Next() {
		entity, err := scanRemoteEntity(rows)
		if err != nil {
			log.Err(err).Str("func", "remoteEntityRepository.List").Str("entity_type", string(entityType)).Msg("failed to scan entity row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		entity.Type = entityType
		entities = append(entities, entity)
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "remoteEntityRepository.List").Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return entities, nil
}

func (r *remoteEntityRepository) Get(ctx context.Context, entityType models.EntityType, id string) (models.RemoteEntity, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildGetEntityQuery(entityType, id)
	if err != nil {
		return models.RemoteEntity{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	entity, err := scanRemoteEntity(r.DB.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return models.RemoteEntity{}, fmt.Errorf("%w: %s %s", ErrEntityNotFound, entityType, id)
	}
	if err != nil {
		log.Err(err).
			Str("func", "remoteEntityRepository.Get").
			Str("entity_type", string(entityType)).
			Str("id", id).
			Msg("failed to read entity")
		return models.RemoteEntity{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}
	entity.Type = entityType

	return entity, nil
}

func (r *remoteEntityRepository) Save(ctx context.Context, entity models.RemoteEntity) error {
	log := logger.FromContext(ctx).With().
		Str("func", "remoteEntityRepository.Save").
		Str("entity_type", string(entity.Type)).
		Str("id", entity.ID).
		Int64("version", entity.Version).
		Logger()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRowContext(ctx, selectEntityVersionForUpdate, entity.Type, entity.ID).Scan(&current)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		log.Err(err).Msg("failed to lock entity row")
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if current != entity.Version-1 {
		log.Info().Int64("stored_version", current).Msg("version conflict")
		return fmt.Errorf("%w: stored %d, incoming %d", ErrVersionConflict, current, entity.Version)
	}

	args := []any{
		entity.Type, entity.ID, entity.Version,
		entity.CreatedAt, entity.ModifiedAt, entity.ModifiedBy,
		string(entity.Payload),
	}

	if current == 0 {
		res, err := tx.ExecContext(ctx, insertEntity, args...)
		if err != nil {
			log.Err(err).Msg("failed to insert entity")
			return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
		}
		// another writer created the row between our read and insert
		if affected, _ := res.RowsAffected(); affected == 0 {
			return fmt.Errorf("%w: entity was created concurrently", ErrVersionConflict)
		}
	} else if _, err = tx.ExecContext(ctx, updateEntity, args...); err != nil {
		log.Err(err).Msg("failed to update entity")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

func (r *remoteEntityRepository) Delete(ctx context.Context, entityType models.EntityType, id string, expectedVersion int64) (bool, error) {
	log := logger.FromContext(ctx).With().
		Str("func", "remoteEntityRepository.Delete").
		Str("entity_type", string(entityType)).
		Str("id", id).
		Int64("expected_version", expectedVersion).
		Logger()

	tx, err := r.DB.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Msg("failed to begin transaction")
		return false, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	var current int64
	err = tx.QueryRowContext(ctx, selectEntityVersionForUpdate, entityType, id).Scan(&current)
	if errors.Is(err, sql.ErrNoRows) {
		return false, nil
	}
	if err != nil {
		log.Err(err).Msg("failed to lock entity row")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if current != expectedVersion {
		log.Info().Int64("stored_version", current).Msg("version conflict on delete")
		return false, fmt.Errorf("%w: stored %d, expected %d", ErrVersionConflict, current, expectedVersion)
	}

	if _, err = tx.ExecContext(ctx, deleteEntity, entityType, id); err != nil {
		log.Err(err).Msg("failed to delete entity")
		return false, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Msg("failed to commit transaction")
		return false, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return true, nil
}

func (r *remoteEntityRepository) Version(ctx context.Context, entityType models.EntityType, id string) (int64, error) {
	var version int64
	err := r.DB.QueryRowContext(ctx, selectEntityVersion, entityType, id).Scan(&version)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%w: %s %s", ErrEntityNotFound, entityType, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "remoteEntityRepository.Version").
			Str("entity_type", string(entityType)).
			Str("id", id).
			Msg("failed to read entity version")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return version, nil
}

func (r *remoteEntityRepository) Ping(ctx context.Context) error {
	return r.DB.PingContext(ctx)
}

func scanRemoteEntity(row rowScanner) (models.RemoteEntity, error) {
	var (
		entity  models.RemoteEntity
		payload []byte
	)

	err := row.Scan(
		&entity.ID,
		&entity.Version,
		&entity.CreatedAt,
		&entity.ModifiedAt,
		&entity.ModifiedBy,
		&payload,
	)
	if err != nil {
		return models.RemoteEntity{}, err
	}
	entity.Payload = payload

	return entity, nil
}
