// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"encoding/json"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// newTestClientDB открывает мигрированную SQLite-базу во временной директории
func newTestClientDB(t *testing.T) *DB {
	t.Helper()

	db, err := NewConnectSQLite(context.Background(), config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")}, logger.Nop())
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	t.Cleanup(func() { _ = db.Close() })

	return db
}

// newTestQueue возвращает уже инициализированную очередь с управляемыми часами
func newTestQueue(t *testing.T) (*sqliteQueue, *DB) {
	t.Helper()

	db := newTestClientDB(t)
	q := newSQLiteQueue(db, logger.Nop())

	clock := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	q.now = func() time.Time {
		clock = clock.Add(time.Second)
		return clock
	}

	_, err := q.Initialize(context.Background())
	require.NoError(t, err)

	return q, db
}

func testSheet(id string, version int64, name string) *models.Sheet {
	return &models.Sheet{Meta: models.Meta{ID: id, Version: version}, Name: name, Currency: "EUR"}
}

func pendingOf(t *testing.T, q *sqliteQueue) []models.PendingChange {
	t.Helper()
	changes, err := q.GetPending(context.Background(), 0)
	require.NoError(t, err)
	return changes
}

func decodeSheet(t *testing.T, payload json.RawMessage) *models.Sheet {
	t.Helper()
	s := models.NewSheet()
	require.NoError(t, json.Unmarshal(payload, s))
	return s
}

// ── Initialize ───────────────────────────────────────────────────────────────

func TestQueue_NotInitialized(t *testing.T) {
	db := newTestClientDB(t)
	q := NewQueue(db, logger.Nop())
	ctx := context.Background()

	assert.ErrorIs(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")), ErrQueueNotInitialized)
	assert.ErrorIs(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 1, nil), ErrQueueNotInitialized)
	assert.ErrorIs(t, q.Dequeue(ctx, "x"), ErrQueueNotInitialized)
	assert.ErrorIs(t, q.SetMeta(ctx, "k", "v"), ErrQueueNotInitialized)

	_, err := q.GetPending(ctx, 10)
	assert.ErrorIs(t, err, ErrQueueNotInitialized)
	_, err = q.GetPendingCount(ctx)
	assert.ErrorIs(t, err, ErrQueueNotInitialized)
	_, _, err = q.GetMeta(ctx, "k")
	assert.ErrorIs(t, err, ErrQueueNotInitialized)
}

func TestQueue_Initialize_RecoversProcessingRows(t *testing.T) {
	q, db := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-2", 1, "Feb")))
	changes := pendingOf(t, q)
	require.Len(t, changes, 2)
	require.NoError(t, q.MarkProcessing(ctx, changes[0].ID))

	// имитируем перезапуск процесса: новая очередь над тем же файлом
	restarted := newSQLiteQueue(db, logger.Nop())
	recovered, err := restarted.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	after, err := restarted.GetPending(ctx, 0)
	require.NoError(t, err)
	require.Len(t, after, 2)
	assert.Equal(t, changes[0].ID, after[0].ID)
	assert.Equal(t, models.StatusPending, after[0].Status)
}

// ── EnqueueSave ──────────────────────────────────────────────────────────────

func TestQueue_EnqueueSave_NewEntityIsCreate(t *testing.T) {
	q, _ := newTestQueue(t)

	require.NoError(t, q.EnqueueSave(context.Background(), testSheet("s-1", 1, "Jan")))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationCreate, changes[0].Operation)
	assert.Equal(t, models.EntitySheet, changes[0].EntityType)
	assert.Equal(t, "s-1", changes[0].EntityID)
	assert.Equal(t, int64(1), changes[0].LocalVersion)
	assert.Equal(t, "Jan", decodeSheet(t, changes[0].Payload).Name)
}

func TestQueue_EnqueueSave_CoalescesCreate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	first := pendingOf(t, q)[0]

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "January")))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, first.ID, changes[0].ID)
	assert.Equal(t, first.CreatedAt, changes[0].CreatedAt)
	assert.Equal(t, models.OperationCreate, changes[0].Operation)
	assert.Equal(t, "January", decodeSheet(t, changes[0].Payload).Name)
}

func TestQueue_EnqueueSave_CreateStaysCreate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueOperation(ctx, models.EntitySheet, "s-1", models.OperationCreate, 1, json.RawMessage(`{"id":"s-1"}`)))
	require.NoError(t, q.EnqueueOperation(ctx, models.EntitySheet, "s-1", models.OperationUpdate, 1, json.RawMessage(`{"id":"s-1","name":"x"}`)))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationCreate, changes[0].Operation)
	assert.JSONEq(t, `{"id":"s-1","name":"x"}`, string(changes[0].Payload))
}

func TestQueue_EnqueueSave_CoalescesUpdate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 4, "A")))
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 4, "B")))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationUpdate, changes[0].Operation)
	assert.Equal(t, int64(4), changes[0].LocalVersion)
	assert.Equal(t, "B", decodeSheet(t, changes[0].Payload).Name)
}

func TestQueue_EnqueueSave_DoesNotTouchProcessingRow(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 2, "A")))
	inFlight := pendingOf(t, q)[0]
	require.NoError(t, q.MarkProcessing(ctx, inFlight.ID))

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 3, "B")))

	stored, err := q.Get(ctx, inFlight.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusProcessing, stored.Status)
	assert.Equal(t, "A", decodeSheet(t, stored.Payload).Name)

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.NotEqual(t, inFlight.ID, changes[0].ID)
	assert.Equal(t, int64(3), changes[0].LocalVersion)

	count, err := q.GetPendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// Правка, прочитавшая версию из строки, которая уже ушла в PROCESSING,
// встаёт за неё следующей версией.
func TestQueue_EnqueueSave_RebasesPastProcessingRow(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "A")))
	inFlight := pendingOf(t, q)[0]
	require.NoError(t, q.MarkProcessing(ctx, inFlight.ID))

	edit := testSheet("s-1", 1, "B")
	require.NoError(t, q.EnqueueSave(ctx, edit))

	assert.Equal(t, int64(2), edit.Version)

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationUpdate, changes[0].Operation)
	assert.Equal(t, int64(2), changes[0].LocalVersion)

	queued := decodeSheet(t, changes[0].Payload)
	assert.Equal(t, int64(2), queued.Version)
	assert.Equal(t, "B", queued.Name)
}

func TestQueue_EnqueueSave_ProcessingDeleteIsNotRebased(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 3, nil))
	require.NoError(t, q.MarkProcessing(ctx, pendingOf(t, q)[0].ID))

	edit := testSheet("s-1", 1, "again")
	require.NoError(t, q.EnqueueSave(ctx, edit))

	assert.Equal(t, int64(1), edit.Version)
	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationCreate, changes[0].Operation)
}

// ── category intents ─────────────────────────────────────────────────────────

func TestQueue_CoalescedCategoryRowMovesToBack(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	order := models.CategoryOrderEntityID(models.CategoryExpense)
	fuel := models.CategoryEntityID(models.CategoryExpense, "Fuel")

	require.NoError(t, q.EnqueueOperation(ctx, models.EntityCategory, order, models.OperationUpdate, 0, json.RawMessage(`{"names":[]}`)))
	require.NoError(t, q.EnqueueOperation(ctx, models.EntityCategory, fuel, models.OperationCreate, 0, json.RawMessage(`{"name":"Fuel"}`)))
	require.NoError(t, q.EnqueueOperation(ctx, models.EntityCategory, order, models.OperationUpdate, 0, json.RawMessage(`{"names":["Fuel"]}`)))

	changes := pendingOf(t, q)
	require.Len(t, changes, 2)
	assert.Equal(t, fuel, changes[0].EntityID)
	assert.Equal(t, order, changes[1].EntityID)
	assert.JSONEq(t, `{"names":["Fuel"]}`, string(changes[1].Payload))
}

func TestQueue_CoalescedEntityRowKeepsPosition(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "A")))
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-2", 1, "B")))
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "A2")))

	changes := pendingOf(t, q)
	require.Len(t, changes, 2)
	assert.Equal(t, "s-1", changes[0].EntityID)
	assert.Equal(t, "s-2", changes[1].EntityID)
}

func TestQueue_EnqueueSave_EmptyID(t *testing.T) {
	q, _ := newTestQueue(t)

	err := q.EnqueueSave(context.Background(), testSheet("", 1, "x"))
	assert.ErrorIs(t, err, ErrInvalidEntity)
}

// ── EnqueueDelete ────────────────────────────────────────────────────────────

func TestQueue_EnqueueDelete_CancelsUnsyncedCreate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 1, nil))

	count, err := q.GetPendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestQueue_EnqueueDelete_ReplacesUpdate(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 3, "edited")))
	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 3, json.RawMessage(`{"id":"s-1"}`)))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationDelete, changes[0].Operation)
	// на сервере всё ещё лежит версия 2
	assert.Equal(t, int64(2), changes[0].LocalVersion)
	assert.JSONEq(t, `{"id":"s-1"}`, string(changes[0].Payload))
}

func TestQueue_EnqueueDelete_NoQueuedRows(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 5, nil))
	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 5, nil))

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationDelete, changes[0].Operation)
	assert.Equal(t, int64(5), changes[0].LocalVersion)
}

func TestQueue_EnqueueDelete_KeepsProcessingRow(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	inFlight := pendingOf(t, q)[0]
	require.NoError(t, q.MarkProcessing(ctx, inFlight.ID))

	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 1, nil))

	_, err := q.Get(ctx, inFlight.ID)
	require.NoError(t, err)

	changes := pendingOf(t, q)
	require.Len(t, changes, 1)
	assert.Equal(t, models.OperationDelete, changes[0].Operation)
	assert.Equal(t, int64(1), changes[0].LocalVersion)
}

// ── Ordering and lookups ─────────────────────────────────────────────────────

func TestQueue_GetPending_FIFOAndLimit(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	for _, id := range []string{"a", "b", "c"} {
		require.NoError(t, q.EnqueueSave(ctx, testSheet(id, 1, id)))
	}
	// повторная правка "a" не должна сдвигать её в конец
	require.NoError(t, q.EnqueueSave(ctx, testSheet("a", 1, "a2")))

	changes := pendingOf(t, q)
	require.Len(t, changes, 3)
	assert.Equal(t, []string{"a", "b", "c"}, []string{changes[0].EntityID, changes[1].EntityID, changes[2].EntityID})

	limited, err := q.GetPending(ctx, 2)
	require.NoError(t, err)
	assert.Len(t, limited, 2)
}

func TestQueue_Lookups(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	require.NoError(t, q.EnqueueOperation(ctx, models.EntityCategory, "category:income:Bonus", models.OperationCreate, 0, json.RawMessage(`{}`)))

	has, err := q.HasPendingForType(ctx, models.EntitySheet)
	require.NoError(t, err)
	assert.True(t, has)

	has, err = q.HasPendingForType(ctx, models.EntityTransaction)
	require.NoError(t, err)
	assert.False(t, has)

	ids, err := q.PendingEntityIDs(ctx, models.EntitySheet)
	require.NoError(t, err)
	assert.Equal(t, map[string]struct{}{"s-1": {}}, ids)

	latest, err := q.GetPendingForEntity(ctx, "s-1")
	require.NoError(t, err)
	require.NotNil(t, latest)
	assert.Equal(t, models.OperationCreate, latest.Operation)

	missing, err := q.GetPendingForEntity(ctx, "nope")
	require.NoError(t, err)
	assert.Nil(t, missing)

	_, err = q.Get(ctx, "nope")
	assert.ErrorIs(t, err, ErrQueueEntryNotFound)
}

// ── Status transitions ───────────────────────────────────────────────────────

func TestQueue_MarkFailed(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	id := pendingOf(t, q)[0].ID
	require.NoError(t, q.MarkProcessing(ctx, id))
	require.NoError(t, q.MarkFailed(ctx, id, "connection refused"))
	require.NoError(t, q.MarkFailed(ctx, id, "timeout"))

	change, err := q.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, change.Status)
	assert.Equal(t, 2, change.RetryCount)
	require.NotNil(t, change.LastError)
	assert.Equal(t, "timeout", *change.LastError)
}

func TestQueue_ConflictLifecycle(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 2, "mine")))
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-2", 2, "theirs")))
	changes := pendingOf(t, q)
	require.NoError(t, q.MarkConflict(ctx, changes[0].ID, "version conflict"))
	require.NoError(t, q.MarkConflict(ctx, changes[1].ID, "version conflict"))

	assert.Empty(t, pendingOf(t, q))
	conflicts, err := q.GetConflicts(ctx)
	require.NoError(t, err)
	require.Len(t, conflicts, 2)

	count, err := q.GetPendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)

	require.NoError(t, q.ReplacePayload(ctx, changes[0].ID, 8, json.RawMessage(`{"id":"s-1","version":8}`)))
	require.NoError(t, q.ResolveConflict(ctx, changes[0].ID, true))
	require.NoError(t, q.ResolveConflict(ctx, changes[1].ID, false))

	after := pendingOf(t, q)
	require.Len(t, after, 1)
	assert.Equal(t, changes[0].ID, after[0].ID)
	assert.Equal(t, int64(8), after[0].LocalVersion)
	assert.Zero(t, after[0].RetryCount)
	assert.Nil(t, after[0].LastError)

	_, err = q.Get(ctx, changes[1].ID)
	assert.ErrorIs(t, err, ErrQueueEntryNotFound)
}

func TestQueue_Dequeue(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 1, "Jan")))
	id := pendingOf(t, q)[0].ID

	require.NoError(t, q.Dequeue(ctx, id))
	assert.ErrorIs(t, q.Dequeue(ctx, id), ErrQueueEntryNotFound)
}

// ── Hooks and metadata ───────────────────────────────────────────────────────

func TestQueue_OnChange(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	calls := 0
	q.SetOnChange(func() {
		// хук вызывается после коммита, строка уже видна
		count, err := q.GetPendingCount(ctx)
		require.NoError(t, err)
		assert.Positive(t, count)
		calls++
	})

	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-1", 2, "Jan")))
	require.NoError(t, q.EnqueueDelete(ctx, models.EntitySheet, "s-1", 2, nil))
	require.NoError(t, q.Enqueue(ctx, &models.PendingChange{EntityType: models.EntityActivityNote, EntityID: "note:k", Operation: models.OperationUpdate}))
	assert.Equal(t, 3, calls)

	q.SetOnChange(nil)
	require.NoError(t, q.EnqueueSave(ctx, testSheet("s-9", 1, "x")))
	assert.Equal(t, 3, calls)
}

func TestQueue_Meta(t *testing.T) {
	q, _ := newTestQueue(t)
	ctx := context.Background()

	_, ok, err := q.GetMeta(ctx, models.MetaLastSyncAt)
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, q.SetMeta(ctx, models.MetaLastSyncAt, "2026-01-01T00:00:00Z"))
	require.NoError(t, q.SetMeta(ctx, models.MetaLastSyncAt, "2026-01-02T00:00:00Z"))

	value, ok, err := q.GetMeta(ctx, models.MetaLastSyncAt)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "2026-01-02T00:00:00Z", value)
}
