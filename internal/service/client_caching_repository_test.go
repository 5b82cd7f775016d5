// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net"
	"path/filepath"
	"sync/atomic"
	"syscall"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/mock"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

// stubGate: простой ConnectivityGate без mockgen, считает сообщения об ошибках сети.
type stubGate struct {
	offline atomic.Bool
	reports atomic.Int32
}

func (g *stubGate) IsConnected() bool   { return !g.offline.Load() }
func (g *stubGate) ReportNetworkError() { g.reports.Add(1) }

// newTestStorages открывает временный SQLite-файл с уже инициализированной очередью.
func newTestStorages(t *testing.T) *store.ClientStorages {
	t.Helper()

	storages, err := store.NewClientStorages(context.Background(), config.ClientStorage{
		DB: config.ClientDB{DSN: filepath.Join(t.TempDir(), "client.db")},
	}, logger.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { _ = storages.Close() })

	_, err = storages.Queue.Initialize(context.Background())
	require.NoError(t, err)

	return storages
}

func newTestTransactions(
	t *testing.T,
	ctrl *gomock.Controller,
	storages *store.ClientStorages,
) (*cachingRepository[*models.Transaction], *mock.MockRemoteStore[*models.Transaction]) {
	t.Helper()

	remote := mock.NewMockRemoteStore[*models.Transaction](ctrl)
	repo := newCachingRepository(models.EntityTransaction, models.NewTransaction,
		storages.Transactions, remote, storages.Queue, "laptop", logger.Nop())

	return repo, remote
}

func newTestEngine(t *testing.T, queue store.Queue, gate ConnectivityGate, strategy models.ConflictStrategy, targets ...SyncTarget) *syncEngine {
	t.Helper()

	engine := newSyncEngine(queue, gate, config.ClientSync{
		SyncInterval:  time.Hour,
		DebounceDelay: time.Hour,
		BatchSize:     100,
		Strategy:      strategy,
	}, targets, logger.Nop())
	require.NoError(t, engine.Start(context.Background()))
	t.Cleanup(engine.Stop)

	return engine
}

func testTx(id, amount string) *models.Transaction {
	return &models.Transaction{
		Meta:     models.Meta{ID: id},
		SheetID:  "sheet-1",
		Date:     time.Date(2026, 3, 14, 0, 0, 0, 0, time.UTC),
		Amount:   decimal.RequireFromString(amount),
		Currency: "EUR",
		Kind:     models.CategoryExpense,
		Category: "Food",
	}
}

// echoSave returns the entity the remote was asked to store.
func echoSave(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
	return tx, nil
}

func mustField(t *testing.T, payload json.RawMessage, name string) json.RawMessage {
	t.Helper()

	var fields map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &fields))
	return fields[name]
}

func pendingFor(t *testing.T, queue store.Queue, entityID string) []models.PendingChange {
	t.Helper()

	all, err := queue.GetPending(context.Background(), 0)
	require.NoError(t, err)

	var rows []models.PendingChange
	for _, change := range all {
		if change.EntityID == entityID {
			rows = append(rows, change)
		}
	}
	return rows
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestCachingRepository_Save_NewEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	saved, err := repo.Save(ctx, testTx("", "100"))
	require.NoError(t, err)

	assert.NotEmpty(t, saved.ID, "id is generated")
	assert.Equal(t, int64(1), saved.Version)
	assert.Equal(t, "laptop", saved.ModifiedBy)
	require.NotNil(t, saved.CreatedAt)
	require.NotNil(t, saved.ModifiedAt)

	rows := pendingFor(t, storages.Queue, saved.ID)
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationCreate, rows[0].Operation)
	assert.Equal(t, int64(1), rows[0].LocalVersion)
}

// Две правки до синхронизации схлопываются в одну строку.
func TestCachingRepository_Save_CoalescesEdits(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	tx, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)
	createdAt := *tx.CreatedAt

	tx.Amount = decimal.RequireFromString("150")
	tx, err = repo.Save(ctx, tx)
	require.NoError(t, err)

	assert.Equal(t, int64(1), tx.Version, "unsent create keeps its version")
	assert.True(t, createdAt.Equal(*tx.CreatedAt))

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationCreate, rows[0].Operation)
	assert.JSONEq(t, `"150"`, string(mustField(t, rows[0].Payload, "amount")))

	cached, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("150").Equal(cached.Amount))
}

func TestCachingRepository_Save_SyncedEntityBumpsVersion(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	// кэш уже содержит синхронизированную версию 3
	synced := testTx("x", "10")
	synced.Version = 3
	synced.CreatedAt = models.Timestamp(time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, storages.Transactions.Save(ctx, synced))

	edit := testTx("x", "20")
	saved, err := repo.Save(ctx, edit)
	require.NoError(t, err)

	assert.Equal(t, int64(4), saved.Version)
	assert.True(t, synced.CreatedAt.Equal(*saved.CreatedAt), "created_at is carried over from the cache")

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationUpdate, rows[0].Operation)
	assert.Equal(t, int64(4), rows[0].LocalVersion)
}

// sendingQueue отправляет строку сущности (MarkProcessing) прямо перед
// EnqueueSave, как если бы движок забрал её между чтением и записью.
type sendingQueue struct {
	store.Queue
	beforeSave func()
}

func (q *sendingQueue) EnqueueSave(ctx context.Context, entity models.Entity) error {
	if q.beforeSave != nil {
		q.beforeSave()
		q.beforeSave = nil
	}
	return q.Queue.EnqueueSave(ctx, entity)
}

func TestCachingRepository_Save_RowSentDuringSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	queue := &sendingQueue{Queue: storages.Queue}
	repo := newCachingRepository(models.EntityTransaction, models.NewTransaction,
		storages.Transactions, mock.NewMockRemoteStore[*models.Transaction](ctrl), queue, "laptop", logger.Nop())
	ctx := context.Background()

	_, err := repo.Save(ctx, testTx("t-1", "100"))
	require.NoError(t, err)

	queue.beforeSave = func() {
		rows := pendingFor(t, storages.Queue, "t-1")
		require.Len(t, rows, 1)
		require.NoError(t, storages.Queue.MarkProcessing(ctx, rows[0].ID))
	}

	saved, err := repo.Save(ctx, testTx("t-1", "150"))
	require.NoError(t, err)
	assert.Equal(t, int64(2), saved.Version)

	rows := pendingFor(t, storages.Queue, "t-1")
	require.Len(t, rows, 1, "the in-flight CREATE is not duplicated")
	assert.Equal(t, models.OperationUpdate, rows[0].Operation)
	assert.Equal(t, int64(2), rows[0].LocalVersion)

	local, err := repo.GetByID(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, int64(2), local.Version)
	assert.Equal(t, "150", local.Amount.String())
}

func TestCachingRepository_Save_OverQueuedDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	synced := testTx("x", "10")
	synced.Version = 2
	require.NoError(t, storages.Transactions.Save(ctx, synced))

	require.NoError(t, repo.Delete(ctx, "x"))
	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	require.Equal(t, models.OperationDelete, rows[0].Operation)

	saved, err := repo.Save(ctx, testTx("x", "30"))
	require.NoError(t, err)
	assert.Equal(t, int64(3), saved.Version, "written on top of the version the remote still holds")

	rows = pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationUpdate, rows[0].Operation)
	assert.Equal(t, int64(3), rows[0].LocalVersion)
}

// ---------------------------------------------------------------------------
// Delete
// ---------------------------------------------------------------------------

func TestCachingRepository_Delete_UnsyncedCreate(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)
	require.NoError(t, repo.Delete(ctx, "x"))

	assert.Empty(t, pendingFor(t, storages.Queue, "x"), "create and delete cancel out")

	_, err = repo.GetByID(ctx, "x")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
}

func TestCachingRepository_Delete_SyncedEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave).Times(1)
	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.LastWriteWins, repo)

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)
	require.Equal(t, 1, engine.SyncNow(ctx))

	require.NoError(t, repo.Delete(ctx, "x"))

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationDelete, rows[0].Operation)
	assert.Equal(t, int64(1), rows[0].LocalVersion, "expects the synced version")
}

func TestCachingRepository_Delete_Missing(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)

	err := repo.Delete(context.Background(), "nope")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
}

func TestCachingRepository_BulkDelete(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	t.Run("empty list is a no-op", func(t *testing.T) {
		require.NoError(t, repo.BulkDelete(ctx, nil))
		count, err := storages.Queue.GetPendingCount(ctx)
		require.NoError(t, err)
		assert.Zero(t, count)
	})

	t.Run("versions are captured per item", func(t *testing.T) {
		for i, version := range []int64{2, 5} {
			tx := testTx(fmt.Sprintf("b-%d", i), "1")
			tx.Version = version
			require.NoError(t, storages.Transactions.Save(ctx, tx))
		}

		require.NoError(t, repo.BulkDelete(ctx, []string{"b-0", "missing", "b-1"}))

		first := pendingFor(t, storages.Queue, "b-0")
		second := pendingFor(t, storages.Queue, "b-1")
		require.Len(t, first, 1)
		require.Len(t, second, 1)
		assert.Equal(t, int64(2), first[0].LocalVersion)
		assert.Equal(t, int64(5), second[0].LocalVersion)
		assert.Empty(t, pendingFor(t, storages.Queue, "missing"))
	})
}

func TestCachingRepository_BulkSave(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	saved, err := repo.BulkSave(ctx, []*models.Transaction{testTx("a", "1"), testTx("b", "2")})
	require.NoError(t, err)
	require.Len(t, saved, 2)

	count, err := storages.Queue.GetPendingCount(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, count)
}

// ---------------------------------------------------------------------------
// RefreshFromCloud
// ---------------------------------------------------------------------------

func TestCachingRepository_RefreshFromCloud_SkipsPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	// "a" редактируется локально, "c" удалён на сервере
	_, err := repo.Save(ctx, testTx("a", "999"))
	require.NoError(t, err)
	stale := testTx("c", "3")
	stale.Version = 1
	require.NoError(t, storages.Transactions.Save(ctx, stale))

	remoteA := testTx("a", "1")
	remoteA.Version = 7
	remoteB := testTx("b", "2")
	remoteB.Version = 1
	remote.EXPECT().GetAll(gomock.Any()).Return([]*models.Transaction{remoteA, remoteB}, nil)

	refreshed, err := repo.RefreshFromCloud(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, refreshed, "b written, c dropped")

	a, err := repo.GetByID(ctx, "a")
	require.NoError(t, err)
	assert.True(t, decimal.RequireFromString("999").Equal(a.Amount), "pending edit is not clobbered")

	_, err = repo.GetByID(ctx, "b")
	require.NoError(t, err)

	_, err = repo.GetByID(ctx, "c")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
}

func TestCachingRepository_RefreshFromCloud_RemoteError(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)

	remote.EXPECT().GetAll(gomock.Any()).Return(nil, adapter.ErrServiceUnavailable)

	_, err := repo.RefreshFromCloud(context.Background())
	assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
}

func TestCachingRepository_InitializeCache_Once(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	gomock.InOrder(
		remote.EXPECT().GetAll(gomock.Any()).Return(nil, adapter.ErrServiceUnavailable),
		remote.EXPECT().GetAll(gomock.Any()).Return([]*models.Transaction{}, nil),
	)

	require.Error(t, repo.InitializeCache(ctx), "failed seeding is retried")
	require.NoError(t, repo.InitializeCache(ctx))
	require.NoError(t, repo.InitializeCache(ctx), "no remote call after success")
}

// Сохранили, синхронизировали, подтянули в пустой кэш: поля совпадают.
func TestCachingRepository_RoundTrip(t *testing.T) {
	ctrl := gomock.NewController(t)
	ctx := context.Background()

	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)

	var stored *models.Transaction
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, tx *models.Transaction) (*models.Transaction, error) {
			copied := *tx
			stored = &copied
			return tx, nil
		})
	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.LastWriteWins, repo)

	original := testTx("rt", "42.50")
	original.Description = "groceries"
	original, err := repo.Save(ctx, original)
	require.NoError(t, err)
	require.Equal(t, 1, engine.SyncNow(ctx))
	require.NotNil(t, stored)

	fresh := newTestStorages(t)
	freshRepo, freshRemote := newTestTransactions(t, ctrl, fresh)
	freshRemote.EXPECT().GetAll(gomock.Any()).Return([]*models.Transaction{stored}, nil)

	n, err := freshRepo.RefreshFromCloud(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	got, err := freshRepo.GetByID(ctx, "rt")
	require.NoError(t, err)
	assert.Equal(t, original.SheetID, got.SheetID)
	assert.True(t, original.Amount.Equal(got.Amount))
	assert.Equal(t, original.Currency, got.Currency)
	assert.Equal(t, original.Category, got.Category)
	assert.Equal(t, original.Description, got.Description)
	assert.True(t, original.Date.Equal(got.Date))
	assert.True(t, original.CreatedAt.Equal(*got.CreatedAt))
	assert.Equal(t, original.ModifiedBy, got.ModifiedBy)
}

// ---------------------------------------------------------------------------
// Sync end to end
// ---------------------------------------------------------------------------

// Сохранили офлайн, вышли в сеть, один вызов cloud.save.
func TestSync_OfflineSaveThenSync(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	gate := &stubGate{}
	gate.offline.Store(true)
	engine := newTestEngine(t, storages.Queue, gate, models.LastWriteWins, repo)

	tx := testTx("x", "100")
	_, err := repo.Save(ctx, tx)
	require.NoError(t, err)

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.OperationCreate, rows[0].Operation)
	assert.Zero(t, engine.SyncNow(ctx), "no network call while offline")

	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, sent *models.Transaction) (*models.Transaction, error) {
			assert.Equal(t, "x", sent.ID)
			assert.Equal(t, int64(1), sent.Version)
			assert.True(t, decimal.NewFromInt(100).Equal(sent.Amount))
			return sent, nil
		}).Times(1)

	gate.offline.Store(false)
	assert.Equal(t, 1, engine.SyncNow(ctx))

	count, err := storages.Queue.GetPendingCount(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

// SERVER_WINS убирает строку и подтягивает серверную копию.
func TestSync_ServerWinsConflict(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.ServerWins, repo)

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)

	serverCopy := testTx("x", "7")
	serverCopy.Version = 4
	remote.EXPECT().Save(gomock.Any(), gomock.Any()).
		Return(nil, fmt.Errorf("%w: remote holds 4", adapter.ErrVersionConflict)).Times(1)
	remote.EXPECT().GetByID(gomock.Any(), "x").Return(serverCopy, nil).Times(1)

	assert.Zero(t, engine.SyncNow(ctx))
	assert.Empty(t, pendingFor(t, storages.Queue, "x"))

	cached, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, int64(4), cached.Version)
	assert.True(t, decimal.NewFromInt(7).Equal(cached.Amount))

	// повторов нет: очередь пуста, новых вызовов remote не будет
	assert.Zero(t, engine.SyncNow(ctx))
}

// Сброс соединения возвращает строку в PENDING с retryCount=1.
func TestSync_ConnectionResetIsRetried(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	gate := &stubGate{}
	engine := newTestEngine(t, storages.Queue, gate, models.LastWriteWins, repo)

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)

	reset := &net.OpError{Op: "read", Net: "tcp", Err: syscall.ECONNRESET}
	gomock.InOrder(
		remote.EXPECT().Save(gomock.Any(), gomock.Any()).Return(nil, reset),
		remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave),
	)

	assert.Zero(t, engine.SyncNow(ctx))

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	assert.Equal(t, models.StatusPending, rows[0].Status)
	assert.Equal(t, 1, rows[0].RetryCount)
	require.NotNil(t, rows[0].LastError)
	assert.Equal(t, int32(1), gate.reports.Load(), "monitor is told about the network fault")

	assert.Equal(t, 1, engine.SyncNow(ctx))
	assert.Empty(t, pendingFor(t, storages.Queue, "x"))
}

// Строка, оставшаяся в PROCESSING после сбоя, снова уходит.
func TestSync_CrashRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)
	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1)
	require.NoError(t, storages.Queue.MarkProcessing(ctx, rows[0].ID))

	recovered, err := storages.Queue.Initialize(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, recovered)

	row, err := storages.Queue.Get(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusPending, row.Status)

	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(echoSave).Times(1)
	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.LastWriteWins, repo)
	assert.Equal(t, 1, engine.SyncNow(ctx))
}

func TestSync_DeleteAlreadyGoneRemotely(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	synced := testTx("x", "1")
	synced.Version = 2
	require.NoError(t, storages.Transactions.Save(ctx, synced))
	require.NoError(t, repo.Delete(ctx, "x"))

	remote.EXPECT().Delete(gomock.Any(), "x", int64(2)).Return(false, nil)

	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.LastWriteWins, repo)
	assert.Equal(t, 1, engine.SyncNow(ctx))
}

// Новая правка во время отправки остаётся отдельной строкой и не затирается.
func TestSync_EditDuringPushIsKept(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)

	remote.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, sent *models.Transaction) (*models.Transaction, error) {
			// пока первая запись в PROCESSING, пользователь правит ещё раз
			_, err := repo.Save(ctx, testTx("x", "200"))
			require.NoError(t, err)
			return sent, nil
		})

	engine := newTestEngine(t, storages.Queue, &stubGate{}, models.LastWriteWins, repo)
	assert.Equal(t, 1, engine.SyncNow(ctx))

	rows := pendingFor(t, storages.Queue, "x")
	require.Len(t, rows, 1, "the newer edit waits for the next pass")
	assert.Equal(t, int64(2), rows[0].LocalVersion)

	cached, err := repo.GetByID(ctx, "x")
	require.NoError(t, err)
	assert.True(t, decimal.NewFromInt(200).Equal(cached.Amount), "remote copy does not overwrite the newer edit")
}

// ---------------------------------------------------------------------------
// Conflict helpers
// ---------------------------------------------------------------------------

func TestCachingRepository_FetchRemote(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	t.Run("absent", func(t *testing.T) {
		remote.EXPECT().GetByID(gomock.Any(), "gone").Return(nil, fmt.Errorf("%w: gone", adapter.ErrNotFound))

		payload, meta, err := repo.FetchRemote(ctx, "gone")
		require.NoError(t, err)
		assert.Nil(t, payload)
		assert.Nil(t, meta)
	})

	t.Run("present", func(t *testing.T) {
		tx := testTx("x", "5")
		tx.Version = 9
		remote.EXPECT().GetByID(gomock.Any(), "x").Return(tx, nil)

		payload, meta, err := repo.FetchRemote(ctx, "x")
		require.NoError(t, err)
		require.NotNil(t, meta)
		assert.Equal(t, int64(9), meta.Version)
		assert.Contains(t, string(payload), `"sheet_id":"sheet-1"`)
	})

	t.Run("transport error", func(t *testing.T) {
		remote.EXPECT().GetByID(gomock.Any(), "y").Return(nil, errors.New("connection refused"))

		_, _, err := repo.FetchRemote(ctx, "y")
		assert.Error(t, err)
	})
}

func TestCachingRepository_Restamp(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	_, err := repo.Save(ctx, testTx("x", "100"))
	require.NoError(t, err)
	change := pendingFor(t, storages.Queue, "x")[0]

	payload, version, err := repo.Restamp(ctx, change, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(7), version)
	assert.JSONEq(t, `7`, string(mustField(t, payload, "version")))

	del := models.PendingChange{EntityID: "x", Operation: models.OperationDelete, Payload: change.Payload}
	_, version, err = repo.Restamp(ctx, del, 6)
	require.NoError(t, err)
	assert.Equal(t, int64(6), version, "a delete expects the live version")
}

func TestCachingRepository_ForcePush_DeleteOfAbsentEntity(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, _ := newTestTransactions(t, ctrl, storages)

	// remote.Delete не ожидается: удалять нечего
	change := models.PendingChange{EntityID: "x", Operation: models.OperationDelete}
	assert.NoError(t, repo.ForcePush(context.Background(), change, 0))
}

func TestCachingRepository_RefreshEntity_RemoteGone(t *testing.T) {
	ctrl := gomock.NewController(t)
	storages := newTestStorages(t)
	repo, remote := newTestTransactions(t, ctrl, storages)
	ctx := context.Background()

	cached := testTx("x", "1")
	cached.Version = 1
	require.NoError(t, storages.Transactions.Save(ctx, cached))

	remote.EXPECT().GetByID(gomock.Any(), "x").Return(nil, adapter.ErrNotFound)
	require.NoError(t, repo.RefreshEntity(ctx, "x"))

	_, err := repo.GetByID(ctx, "x")
	assert.ErrorIs(t, err, store.ErrEntityNotFound)
}
