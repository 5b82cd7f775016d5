// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// sqliteQueue is the SQLite implementation of [Queue] on the
// pending_changes and sync_metadata tables.
//
// FIFO order is created_at ascending with rowid as tie breaker. Coalescing
// rewrites a row in place, so a coalesced edit keeps the position of the
// first one.
type sqliteQueue struct {
	*DB
	ids *utils.UUIDGenerator
	now func() time.Time

	initialized atomic.Bool

	hookMu   sync.RWMutex
	onChange func()

	logger *logger.Logger
}

// NewQueue returns the sync queue backed by db. Call Initialize before use.
func NewQueue(db *DB, log *logger.Logger) Queue {
	return newSQLiteQueue(db, log)
}

func newSQLiteQueue(db *DB, log *logger.Logger) *sqliteQueue {
	return &sqliteQueue{
		DB:     db,
		ids:    utils.NewUUIDGenerator(),
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (q *sqliteQueue) Initialize(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx)

	res, err := q.DB.ExecContext(ctx, resetProcessingChanges, models.StatusPending, models.StatusProcessing)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueue.Initialize").Msg("failed to reset processing rows")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	recovered, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	q.initialized.Store(true)
	if recovered > 0 {
		q.logger.Warn().Str("func", "sqliteQueue.Initialize").Int64("recovered", recovered).
			Msg("rows left in PROCESSING by a previous run were reset to PENDING")
	}

	return int(recovered), nil
}

func (q *sqliteQueue) Enqueue(ctx context.Context, change *models.PendingChange) error {
	if err := q.ready(); err != nil {
		return err
	}
	if change.EntityID == "" || change.EntityType == "" {
		return fmt.Errorf("%w: empty entity type or id", ErrInvalidEntity)
	}

	if change.ID == "" {
		change.ID = q.ids.Generate()
	}
	if change.CreatedAt.IsZero() {
		change.CreatedAt = q.now()
	}
	if change.Status == "" {
		change.Status = models.StatusPending
	}

	_, err := q.DB.ExecContext(ctx, insertPendingChange,
		change.ID,
		change.EntityType,
		change.EntityID,
		change.Operation,
		[]byte(change.Payload),
		change.LocalVersion,
		change.CreatedAt.UnixNano(),
		change.RetryCount,
		nullString(change.LastError),
		change.Status,
	)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueue.Enqueue").
			Str("entity_type", string(change.EntityType)).
			Str("entity_id", change.EntityID).
			Msg("failed to insert pending change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	q.notify()
	return nil
}

func (q *sqliteQueue) EnqueueSave(ctx context.Context, entity models.Entity) error {
	meta := entity.Metadata()
	if meta.ID == "" {
		return fmt.Errorf("%w: empty id", ErrInvalidEntity)
	}

	op := models.OperationUpdate
	if meta.Version <= 1 {
		op = models.OperationCreate
	}

	return q.enqueue(ctx, "sqliteQueue.EnqueueSave", entity.EntityType(), meta.ID, op, meta.Version, true,
		func(version int64) (json.RawMessage, error) {
			meta.Version = version
			payload, err := json.Marshal(entity)
			if err != nil {
				return nil, fmt.Errorf("%w: %w", ErrEncodingPayload, err)
			}
			return payload, nil
		})
}

func (q *sqliteQueue) EnqueueOperation(ctx context.Context, entityType models.EntityType, entityID string, op models.Operation, version int64, payload json.RawMessage) error {
	return q.enqueue(ctx, "sqliteQueue.EnqueueOperation", entityType, entityID, op, version, false,
		func(int64) (json.RawMessage, error) { return payload, nil })
}

// enqueue coalesces into the newest row of the entity that is not in flight
// or inserts a new one. With rebase set, an edit whose version was taken
// from a row that went PROCESSING in the meantime is moved past that row's
// version, and encode receives the final version.
func (q *sqliteQueue) enqueue(
	ctx context.Context,
	fn string,
	entityType models.EntityType,
	entityID string,
	op models.Operation,
	version int64,
	rebase bool,
	encode func(version int64) (json.RawMessage, error),
) error {
	if err := q.ready(); err != nil {
		return err
	}
	if entityID == "" || entityType == "" {
		return fmt.Errorf("%w: empty entity type or id", ErrInvalidEntity)
	}

	err := q.withTx(ctx, fn, func(tx *sql.Tx) error {
		var existingID, existingOp string
		err := tx.QueryRowContext(ctx, selectCoalescableChange, entityType, entityID, models.StatusProcessing).
			Scan(&existingID, &existingOp)

		switch {
		case errors.Is(err, sql.ErrNoRows):
			if rebase {
				var inFlight sql.NullInt64
				err = tx.QueryRowContext(ctx, selectInFlightVersion,
					entityType, entityID, models.StatusProcessing, models.OperationDelete).Scan(&inFlight)
				if err != nil {
					return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
				}
				if inFlight.Valid && inFlight.Int64 >= version {
					version, op = inFlight.Int64+1, models.OperationUpdate
				}
			}

			payload, err := encode(version)
			if err != nil {
				return err
			}
			_, err = tx.ExecContext(ctx, insertPendingChange,
				q.ids.Generate(), entityType, entityID, op, []byte(payload), version,
				q.now().UnixNano(), 0, nil, models.StatusPending,
			)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
			return nil

		case err != nil:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		// a never-synced entity stays a CREATE however often it is edited
		newOp := op
		if models.Operation(existingOp) == models.OperationCreate && op == models.OperationUpdate {
			newOp = models.OperationCreate
		}

		payload, err := encode(version)
		if err != nil {
			return err
		}
		return q.coalesce(ctx, tx, entityType, existingID, newOp, payload, version)
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", fn).
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to enqueue change")
		return err
	}

	q.notify()
	return nil
}

// coalesce rewrites a queued row in place. Category rows are replayed
// intents whose order decides the remote result, so a rewritten one goes
// to the back of the queue.
func (q *sqliteQueue) coalesce(ctx context.Context, tx *sql.Tx, entityType models.EntityType, id string, op models.Operation, payload json.RawMessage, version int64) error {
	var err error
	if entityType == models.EntityCategory {
		_, err = tx.ExecContext(ctx, requeuePendingChange,
			op, []byte(payload), version, models.StatusPending, q.now().UnixNano(), id)
	} else {
		_, err = tx.ExecContext(ctx, coalescePendingChange,
			op, []byte(payload), version, models.StatusPending, id)
	}
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	return nil
}

func (q *sqliteQueue) EnqueueDelete(ctx context.Context, entityType models.EntityType, entityID string, expectedVersion int64, payload json.RawMessage) error {
	if err := q.ready(); err != nil {
		return err
	}
	if entityID == "" || entityType == "" {
		return fmt.Errorf("%w: empty entity type or id", ErrInvalidEntity)
	}

	queued := false
	err := q.withTx(ctx, "sqliteQueue.EnqueueDelete", func(tx *sql.Tx) error {
		rows, err := tx.QueryContext(ctx, selectDroppableChanges,
			entityType, entityID, models.StatusProcessing, models.OperationDelete)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		var (
			dropped       []string
			droppedCreate bool
			expected      = expectedVersion
		)
		for rows.Next() {
			var (
				id      string
				op      string
				version int64
			)
			if err = rows.Scan(&id, &op, &version); err != nil {
				rows.Close()
				return fmt.Errorf("%w: %w", ErrScanningRow, err)
			}
			dropped = append(dropped, id)

			switch models.Operation(op) {
			case models.OperationCreate:
				droppedCreate = true
			case models.OperationUpdate:
				// the remote still holds the version before the dropped update
				if version > 0 {
					expected = version - 1
				}
			}
		}
		if err = rows.Err(); err != nil {
			rows.Close()
			return fmt.Errorf("%w: %w", ErrScanningRows, err)
		}
		rows.Close()

		if len(dropped) > 0 {
			query, args, err := psq.Delete("pending_changes").Where(sq.Eq{"id": dropped}).ToSql()
			if err != nil {
				return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
			}
			if _, err = tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		}

		if droppedCreate {
			return nil
		}
		if expected < 0 {
			expected = 0
		}

		var existingID string
		err = tx.QueryRowContext(ctx, selectCoalescableDelete,
			entityType, entityID, models.StatusProcessing, models.OperationDelete).Scan(&existingID)
		switch {
		case errors.Is(err, sql.ErrNoRows):
			_, err = tx.ExecContext(ctx, insertPendingChange,
				q.ids.Generate(), entityType, entityID, models.OperationDelete, []byte(payload), expected,
				q.now().UnixNano(), 0, nil, models.StatusPending,
			)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
			}
		case err == nil:
			if err = q.coalesce(ctx, tx, entityType, existingID, models.OperationDelete, payload, expected); err != nil {
				return err
			}
		default:
			return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
		}

		queued = true
		return nil
	})
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueue.EnqueueDelete").
			Str("entity_type", string(entityType)).
			Str("entity_id", entityID).
			Msg("failed to enqueue delete")
		return err
	}

	if queued {
		q.notify()
	}
	return nil
}

func (q *sqliteQueue) Dequeue(ctx context.Context, id string) error {
	return q.execOne(ctx, "sqliteQueue.Dequeue", id, deletePendingChange, id)
}

func (q *sqliteQueue) Get(ctx context.Context, id string) (*models.PendingChange, error) {
	if err := q.ready(); err != nil {
		return nil, err
	}

	change, err := scanPendingChange(q.DB.QueryRowContext(ctx, selectPendingChangeByID, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrQueueEntryNotFound, id)
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteQueue.Get").Str("id", id).Msg("failed to read pending change")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &change, nil
}

func (q *sqliteQueue) GetPending(ctx context.Context, limit uint64) ([]models.PendingChange, error) {
	builder := psq.Select(pendingChangeColumns...).
		From("pending_changes").
		Where(sq.Eq{"status": models.StatusPending}).
		OrderBy("created_at", "rowid")
	if limit > 0 {
		builder = builder.Limit(limit)
	}

	return q.selectChanges(ctx, "sqliteQueue.GetPending", builder)
}

func (q *sqliteQueue) GetConflicts(ctx context.Context) ([]models.PendingChange, error) {
	builder := psq.Select(pendingChangeColumns...).
		From("pending_changes").
		Where(sq.Eq{"status": models.StatusConflict}).
		OrderBy("created_at", "rowid")

	return q.selectChanges(ctx, "sqliteQueue.GetConflicts", builder)
}

func (q *sqliteQueue) GetPendingCount(ctx context.Context) (int, error) {
	if err := q.ready(); err != nil {
		return 0, err
	}

	var count int
	if err := q.DB.QueryRowContext(ctx, countPendingChanges).Scan(&count); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteQueue.GetPendingCount").Msg("failed to count pending changes")
		return 0, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return count, nil
}

func (q *sqliteQueue) HasPendingForType(ctx context.Context, entityType models.EntityType) (bool, error) {
	if err := q.ready(); err != nil {
		return false, err
	}

	var exists bool
	if err := q.DB.QueryRowContext(ctx, existsPendingForType, entityType).Scan(&exists); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueue.HasPendingForType").
			Str("entity_type", string(entityType)).
			Msg("failed to check pending changes")
		return false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return exists, nil
}

func (q *sqliteQueue) GetPendingForEntity(ctx context.Context, entityID string) (*models.PendingChange, error) {
	if err := q.ready(); err != nil {
		return nil, err
	}

	change, err := scanPendingChange(q.DB.QueryRowContext(ctx, selectLatestChangeForEntity, entityID))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "sqliteQueue.GetPendingForEntity").
			Str("entity_id", entityID).
			Msg("failed to read latest change for entity")
		return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return &change, nil
}

func (q *sqliteQueue) PendingEntityIDs(ctx context.Context, entityType models.EntityType) (map[string]struct{}, error) {
	if err := q.ready(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	rows, err := q.DB.QueryContext(ctx, selectPendingEntityIDs, entityType)
	if err != nil {
		log.Err(err).Str("func", "sqliteQueue.PendingEntityIDs").Str("entity_type", string(entityType)).Msg("failed to query pending ids")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	ids := make(map[string]struct{})
	for rows.Next() {
		var id string
		if err = rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		ids[id] = struct{}{}
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return ids, nil
}

func (q *sqliteQueue) MarkProcessing(ctx context.Context, id string) error {
	return q.execOne(ctx, "sqliteQueue.MarkProcessing", id, markChangeProcessing, models.StatusProcessing, id)
}

func (q *sqliteQueue) MarkFailed(ctx context.Context, id string, cause string) error {
	return q.execOne(ctx, "sqliteQueue.MarkFailed", id, markChangeFailed, models.StatusPending, cause, id)
}

func (q *sqliteQueue) MarkConflict(ctx context.Context, id string, cause string) error {
	return q.execOne(ctx, "sqliteQueue.MarkConflict", id, markChangeConflict, models.StatusConflict, cause, id)
}

func (q *sqliteQueue) ResolveConflict(ctx context.Context, id string, useLocal bool) error {
	if useLocal {
		return q.execOne(ctx, "sqliteQueue.ResolveConflict", id, resetChangeToPending, models.StatusPending, id)
	}
	return q.execOne(ctx, "sqliteQueue.ResolveConflict", id, deletePendingChange, id)
}

func (q *sqliteQueue) ReplacePayload(ctx context.Context, id string, version int64, payload json.RawMessage) error {
	return q.execOne(ctx, "sqliteQueue.ReplacePayload", id, replaceChangePayload, []byte(payload), version, id)
}

func (q *sqliteQueue) SetOnChange(fn func()) {
	q.hookMu.Lock()
	defer q.hookMu.Unlock()
	q.onChange = fn
}

func (q *sqliteQueue) GetMeta(ctx context.Context, key string) (string, bool, error) {
	if err := q.ready(); err != nil {
		return "", false, err
	}

	var value string
	err := q.DB.QueryRowContext(ctx, selectSyncMetadata, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteQueue.GetMeta").Str("key", key).Msg("failed to read sync metadata")
		return "", false, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return value, true, nil
}

func (q *sqliteQueue) SetMeta(ctx context.Context, key, value string) error {
	if err := q.ready(); err != nil {
		return err
	}

	if _, err := q.DB.ExecContext(ctx, upsertSyncMetadata, key, value, q.now().UnixNano()); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "sqliteQueue.SetMeta").Str("key", key).Msg("failed to write sync metadata")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (q *sqliteQueue) ready() error {
	if !q.initialized.Load() {
		return ErrQueueNotInitialized
	}
	return nil
}

// notify runs the change hook outside of any transaction.
func (q *sqliteQueue) notify() {
	q.hookMu.RLock()
	fn := q.onChange
	q.hookMu.RUnlock()

	if fn != nil {
		fn()
	}
}

func (q *sqliteQueue) withTx(ctx context.Context, fn string, body func(tx *sql.Tx) error) error {
	tx, err := q.DB.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer tx.Rollback()

	if err = body(tx); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("failed to commit transaction")
		return fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return nil
}

// execOne runs a statement addressing a single row by id and reports
// ErrQueueEntryNotFound when nothing matched.
func (q *sqliteQueue) execOne(ctx context.Context, fn, id, query string, args ...any) error {
	if err := q.ready(); err != nil {
		return err
	}

	res, err := q.DB.ExecContext(ctx, query, args...)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", fn).Str("id", id).Msg("failed to update pending change")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrQueueEntryNotFound, id)
	}

	return nil
}

func (q *sqliteQueue) selectChanges(ctx context.Context, fn string, builder sq.SelectBuilder) ([]models.PendingChange, error) {
	if err := q.ready(); err != nil {
		return nil, err
	}
	log := logger.FromContext(ctx)

	query, args, err := builder.ToSql()
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to build query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := q.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", fn).Msg("failed to query pending changes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	changes := make([]models.PendingChange, 0, 16)
	for rows.Next() {
		change, err := scanPendingChange(rows)
		if err != nil {
			log.Err(err).Str("func", fn).Msg("failed to scan pending change")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		changes = append(changes, change)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return changes, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanPendingChange(row rowScanner) (models.PendingChange, error) {
	var (
		change     models.PendingChange
		entityType string
		operation  string
		status     string
		payload    []byte
		createdAt  int64
		lastError  sql.NullString
	)

	err := row.Scan(
		&change.ID,
		&entityType,
		&change.EntityID,
		&operation,
		&payload,
		&change.LocalVersion,
		&createdAt,
		&change.RetryCount,
		&lastError,
		&status,
	)
	if err != nil {
		return models.PendingChange{}, err
	}

	change.EntityType = models.EntityType(entityType)
	change.Operation = models.Operation(operation)
	change.Status = models.ChangeStatus(status)
	change.CreatedAt = time.Unix(0, createdAt).UTC()
	if len(payload) > 0 {
		change.Payload = json.RawMessage(payload)
	}
	if lastError.Valid {
		msg := lastError.String
		change.LastError = &msg
	}

	return change, nil
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
