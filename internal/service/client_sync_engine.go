// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// syncEngine drains the queue into the remote store.
//
// A pass is started by the debounced queue hook, by the safety-net ticker or
// by SyncNow. syncing collapses overlapping triggers into one pass; passMu
// lets Stop wait for the pass that is running.
type syncEngine struct {
	queue   store.Queue
	targets map[models.EntityType]SyncTarget
	gate    ConnectivityGate
	cfg     config.ClientSync
	now     func() time.Time

	running atomic.Bool
	syncing atomic.Bool
	passMu  sync.Mutex

	mu       sync.Mutex
	debounce *time.Timer
	passCtx  context.Context
	cancel   context.CancelFunc
	wg       sync.WaitGroup

	observersMu sync.RWMutex
	onConflict  []func(models.SyncConflict)
	onPending   []func(int)
	onSynced    []func(int)

	logger *logger.Logger
}

func NewSyncEngine(queue store.Queue, gate ConnectivityGate, cfg config.ClientSync, targets []SyncTarget, log *logger.Logger) SyncEngine {
	return newSyncEngine(queue, gate, cfg, targets, log)
}

func newSyncEngine(queue store.Queue, gate ConnectivityGate, cfg config.ClientSync, targets []SyncTarget, log *logger.Logger) *syncEngine {
	if cfg.Strategy == "" {
		cfg.Strategy = models.DefaultConflictStrategy
	}

	byType := make(map[models.EntityType]SyncTarget, len(targets))
	for _, target := range targets {
		byType[target.EntityType()] = target
	}

	return &syncEngine{
		queue:   queue,
		targets: byType,
		gate:    gate,
		cfg:     cfg,
		now:     func() time.Time { return time.Now().UTC() },
		passCtx: context.Background(),
		logger:  log,
	}
}

// Start installs the queue hook and the safety-net ticker. Passes run on a
// context detached from ctx, so cancelling ctx only stops the ticker.
func (e *syncEngine) Start(ctx context.Context) error {
	count, err := e.queue.GetPendingCount(ctx)
	if err != nil {
		return fmt.Errorf("error reading pending count: %w", err)
	}

	e.mu.Lock()
	if e.running.Load() {
		e.mu.Unlock()
		return nil
	}
	var loopCtx context.Context
	e.passCtx = e.logger.WithContext(context.WithoutCancel(ctx))
	loopCtx, e.cancel = context.WithCancel(ctx)
	e.running.Store(true)
	e.queue.SetOnChange(e.onQueueChanged)

	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.loop(loopCtx)
	}()
	e.mu.Unlock()

	e.logger.Info().
		Str("strategy", string(e.cfg.Strategy)).
		Dur("interval", e.cfg.SyncInterval).
		Int("pending", count).
		Msg("sync engine started")
	e.notifyPending(count)

	return nil
}

func (e *syncEngine) Stop() {
	e.mu.Lock()
	if !e.running.Load() {
		e.mu.Unlock()
		return
	}
	e.running.Store(false)
	e.queue.SetOnChange(nil)
	if e.debounce != nil {
		e.debounce.Stop()
		e.debounce = nil
	}
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	e.wg.Wait()

	// a pass started by SyncNow or the debounce timer finishes its row
	e.passMu.Lock()
	e.passMu.Unlock()

	e.logger.Info().Msg("sync engine stopped")
}

func (e *syncEngine) IsSyncing() bool {
	return e.syncing.Load()
}

func (e *syncEngine) SyncNow(ctx context.Context) int {
	if !e.running.Load() || !e.gate.IsConnected() {
		return 0
	}
	if !e.syncing.CompareAndSwap(false, true) {
		return 0
	}
	defer e.syncing.Store(false)

	e.passMu.Lock()
	defer e.passMu.Unlock()
	if !e.running.Load() {
		return 0
	}

	return e.drain(e.logger.WithContext(ctx))
}

func (e *syncEngine) GetPendingCount(ctx context.Context) (int, error) {
	return e.queue.GetPendingCount(ctx)
}

func (e *syncEngine) GetConflicts(ctx context.Context) ([]models.PendingChange, error) {
	return e.queue.GetConflicts(ctx)
}

// ResolveConflictWithChoice settles a parked change. With useLocal the
// change is restamped on top of the current remote version and sent again;
// otherwise it is dropped and the local copy is refreshed from the remote.
func (e *syncEngine) ResolveConflictWithChoice(ctx context.Context, changeID string, useLocal bool) error {
	log := e.logger.With().Str("func", "syncEngine.ResolveConflictWithChoice").Str("change_id", changeID).Bool("use_local", useLocal).Logger()

	change, err := e.queue.Get(ctx, changeID)
	if err != nil {
		return err
	}
	if change.Status != models.StatusConflict {
		return fmt.Errorf("%w: %s is %s", ErrChangeNotInConflict, changeID, change.Status)
	}
	target := e.targets[change.EntityType]

	if useLocal {
		if ct, ok := target.(ConflictTarget); ok {
			_, remote, err := ct.FetchRemote(ctx, change.EntityID)
			if err != nil {
				return fmt.Errorf("error fetching remote %s %s: %w", change.EntityType, change.EntityID, err)
			}
			payload, version, err := ct.Restamp(ctx, *change, remoteVersion(remote))
			if err != nil {
				return err
			}
			if err = e.queue.ReplacePayload(ctx, changeID, version, payload); err != nil {
				return err
			}
		}
		if err = e.queue.ResolveConflict(ctx, changeID, true); err != nil {
			return err
		}
		log.Info().Msg("conflict resolved, local change requeued")
		e.emitPendingCount(ctx)
		e.triggerAsync()
		return nil
	}

	if err = e.queue.ResolveConflict(ctx, changeID, false); err != nil {
		return err
	}
	switch t := target.(type) {
	case ConflictTarget:
		err = t.RefreshEntity(ctx, change.EntityID)
	case Refreshable:
		_, err = t.RefreshFromCloud(ctx)
	}
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh local copy after discarding change")
	}
	log.Info().Msg("conflict resolved, local change discarded")
	e.emitPendingCount(ctx)

	return nil
}

func (e *syncEngine) OnConflict(fn func(models.SyncConflict)) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()
	e.onConflict = append(e.onConflict, fn)
}

func (e *syncEngine) OnPendingCountChanged(fn func(count int)) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()
	e.onPending = append(e.onPending, fn)
}

func (e *syncEngine) OnSyncCompleted(fn func(synced int)) {
	e.observersMu.Lock()
	defer e.observersMu.Unlock()
	e.onSynced = append(e.onSynced, fn)
}

func (e *syncEngine) loop(ctx context.Context) {
	ticker := time.NewTicker(e.cfg.SyncInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := e.SyncNow(e.currentPassCtx()); n > 0 {
				e.logger.Debug().Int("synced", n).Msg("safety-net pass synced changes")
			}
		}
	}
}

// onQueueChanged is the queue hook. It restarts the debounce timer, so a
// burst of edits ends in one pass.
func (e *syncEngine) onQueueChanged() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running.Load() {
		return
	}

	if e.debounce != nil {
		e.debounce.Stop()
	}
	e.debounce = time.AfterFunc(e.cfg.DebounceDelay, func() {
		if !e.running.Load() {
			return
		}
		ctx := e.currentPassCtx()
		e.emitPendingCount(ctx)
		e.SyncNow(ctx)
	})
}

// triggerAsync starts a pass in the background. Stop waits for it.
func (e *syncEngine) triggerAsync() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if !e.running.Load() {
		return
	}

	ctx := e.passCtx
	e.wg.Add(1)
	go func() {
		defer e.wg.Done()
		e.SyncNow(ctx)
	}()
}

func (e *syncEngine) currentPassCtx() context.Context {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.passCtx
}

// drain sends one batch of PENDING rows in FIFO order. A failed row never
// stops the rest of the batch.
func (e *syncEngine) drain(ctx context.Context) int {
	changes, err := e.queue.GetPending(ctx, uint64(e.cfg.BatchSize))
	if err != nil {
		e.logger.Err(err).Str("func", "syncEngine.drain").Msg("failed to read pending changes")
		return 0
	}

	synced := 0
	for _, change := range changes {
		if !e.running.Load() {
			break
		}
		if e.process(ctx, change) {
			synced++
		}
	}

	if len(changes) > 0 {
		if err = e.queue.SetMeta(ctx, models.MetaLastSyncAt, e.now().Format(time.RFC3339Nano)); err != nil {
			e.logger.Warn().Err(err).Msg("failed to record last sync time")
		}
		e.logger.Info().Int("batch", len(changes)).Int("synced", synced).Msg("sync pass finished")
	}

	e.emitPendingCount(ctx)
	e.observersMu.RLock()
	observers := append([]func(int){}, e.onSynced...)
	e.observersMu.RUnlock()
	for _, fn := range observers {
		fn(synced)
	}

	return synced
}

// process reports whether change reached the remote store.
func (e *syncEngine) process(ctx context.Context, change models.PendingChange) bool {
	log := e.logger.With().
		Str("change_id", change.ID).
		Str("entity_type", string(change.EntityType)).
		Str("entity_id", change.EntityID).
		Str("operation", string(change.Operation)).
		Logger()

	target, ok := e.targets[change.EntityType]
	if !ok {
		e.park(ctx, change, fmt.Errorf("%w: %s", ErrNoSyncTarget, change.EntityType))
		return false
	}

	// queue bookkeeping outlives a cancelled pass so no row is left PROCESSING
	bookkeeping := context.WithoutCancel(ctx)

	if err := e.queue.MarkProcessing(bookkeeping, change.ID); err != nil {
		log.Err(err).Msg("failed to mark change as processing")
		return false
	}

	if err := target.Push(ctx, change); err != nil {
		return e.handleFailure(bookkeeping, ctx.Err() != nil, target, change, err)
	}

	if err := e.queue.Dequeue(bookkeeping, change.ID); err != nil {
		log.Err(err).Msg("change was synced but could not be dequeued")
		return false
	}
	log.Debug().Msg("change synced")

	return true
}

func (e *syncEngine) handleFailure(ctx context.Context, cancelled bool, target SyncTarget, change models.PendingChange, cause error) bool {
	kind, known := classifySyncError(cause)
	log := e.logger.With().
		Str("change_id", change.ID).
		Str("entity_id", change.EntityID).
		Str("kind", kind.String()).
		Logger()

	switch kind {
	case syncErrorConflict:
		log.Info().Err(cause).Str("strategy", string(e.cfg.Strategy)).Msg("version conflict")
		ct, ok := target.(ConflictTarget)
		if !ok {
			e.park(ctx, change, cause)
			return false
		}
		return e.resolve(ctx, ct, change, cause)

	case syncErrorPermanent:
		log.Error().Err(cause).Msg("change rejected by remote store")
		e.park(ctx, change, cause)
		return false

	default:
		if !known {
			log.Warn().Err(cause).Msg("unclassified sync error, retrying")
		} else {
			log.Warn().Err(cause).Msg("transient sync error, retrying")
		}
		e.retryLater(ctx, change, cause, !cancelled)
		return false
	}
}

func (e *syncEngine) resolve(ctx context.Context, ct ConflictTarget, change models.PendingChange, cause error) bool {
	switch e.cfg.Strategy {
	case models.ServerWins:
		e.serverWins(ctx, ct, change)
		return false
	case models.ClientWins:
		return e.clientWins(ctx, ct, change)
	case models.AskUser:
		e.askUser(ctx, ct, change, cause)
		return false
	default:
		return e.lastWriteWins(ctx, ct, change)
	}
}

// serverWins drops change and pulls the remote copy, unless a newer local
// edit of the entity is already queued.
func (e *syncEngine) serverWins(ctx context.Context, ct ConflictTarget, change models.PendingChange) {
	if err := e.queue.Dequeue(ctx, change.ID); err != nil {
		e.logger.Err(err).Str("change_id", change.ID).Msg("failed to drop conflicting change")
		return
	}

	latest, err := e.queue.GetPendingForEntity(ctx, change.EntityID)
	if err != nil {
		e.logger.Err(err).Str("entity_id", change.EntityID).Msg("failed to read queued changes")
		return
	}
	if latest != nil {
		e.logger.Debug().Str("entity_id", change.EntityID).Msg("newer local change queued, cache left as is")
		return
	}

	if err = ct.RefreshEntity(ctx, change.EntityID); err != nil {
		e.logger.Warn().Err(err).Str("entity_id", change.EntityID).Msg("failed to refresh entity from remote")
	}
}

func (e *syncEngine) clientWins(ctx context.Context, ct ConflictTarget, change models.PendingChange) bool {
	_, remote, err := ct.FetchRemote(ctx, change.EntityID)
	if err != nil {
		e.retryAfterResolution(ctx, change, err)
		return false
	}

	return e.forcePush(ctx, ct, change, remoteVersion(remote))
}

func (e *syncEngine) lastWriteWins(ctx context.Context, ct ConflictTarget, change models.PendingChange) bool {
	_, remote, err := ct.FetchRemote(ctx, change.EntityID)
	if err != nil {
		e.retryAfterResolution(ctx, change, err)
		return false
	}
	if remote == nil {
		return e.forcePush(ctx, ct, change, 0)
	}

	useLocal, ambiguity := localWriteWins(change, remote)
	if ambiguity != "" {
		e.logger.Warn().Str("change_id", change.ID).Str("entity_id", change.EntityID).Bool("use_local", useLocal).Msg(ambiguity)
	}
	if useLocal {
		return e.forcePush(ctx, ct, change, remote.Version)
	}

	e.serverWins(ctx, ct, change)
	return false
}

func (e *syncEngine) askUser(ctx context.Context, ct ConflictTarget, change models.PendingChange, cause error) {
	if err := e.queue.MarkConflict(ctx, change.ID, cause.Error()); err != nil {
		e.logger.Err(err).Str("change_id", change.ID).Msg("failed to park conflicting change")
		return
	}

	remote, _, err := ct.FetchRemote(ctx, change.EntityID)
	if err != nil {
		e.logger.Warn().Err(err).Str("entity_id", change.EntityID).Msg("failed to fetch remote copy for conflict")
		remote = nil
	}

	e.emitConflict(models.SyncConflict{
		ChangeID:   change.ID,
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		Operation:  change.Operation,
		Local:      change.Payload,
		Remote:     remote,
		Reason:     cause.Error(),
	})
}

func (e *syncEngine) forcePush(ctx context.Context, ct ConflictTarget, change models.PendingChange, version int64) bool {
	if err := ct.ForcePush(ctx, change, version); err != nil {
		e.retryAfterResolution(ctx, change, err)
		return false
	}
	if err := e.queue.Dequeue(ctx, change.ID); err != nil {
		e.logger.Err(err).Str("change_id", change.ID).Msg("change was force-pushed but could not be dequeued")
		return false
	}
	e.logger.Info().Str("change_id", change.ID).Int64("remote_version", version).Msg("local change force-pushed")

	return true
}

// retryAfterResolution handles a failure while a conflict was being
// resolved. A second conflict means the remote moved again, the next pass
// starts over.
func (e *syncEngine) retryAfterResolution(ctx context.Context, change models.PendingChange, cause error) {
	kind, _ := classifySyncError(cause)
	switch kind {
	case syncErrorPermanent:
		e.park(ctx, change, cause)
	case syncErrorConflict:
		e.retryLater(ctx, change, cause, false)
	default:
		e.retryLater(ctx, change, cause, true)
	}
}

func (e *syncEngine) retryLater(ctx context.Context, change models.PendingChange, cause error, reportNetwork bool) {
	if err := e.queue.MarkFailed(ctx, change.ID, cause.Error()); err != nil {
		e.logger.Err(err).Str("change_id", change.ID).Msg("failed to return change to pending")
	}
	if reportNetwork {
		e.gate.ReportNetworkError()
	}
}

// park removes change from the retry path and tells observers about it.
func (e *syncEngine) park(ctx context.Context, change models.PendingChange, cause error) {
	if err := e.queue.MarkConflict(ctx, change.ID, cause.Error()); err != nil {
		e.logger.Err(err).Str("change_id", change.ID).Msg("failed to park change")
		return
	}

	e.emitConflict(models.SyncConflict{
		ChangeID:   change.ID,
		EntityType: change.EntityType,
		EntityID:   change.EntityID,
		Operation:  change.Operation,
		Local:      change.Payload,
		Reason:     cause.Error(),
	})
}

func (e *syncEngine) emitConflict(conflict models.SyncConflict) {
	e.observersMu.RLock()
	observers := append([]func(models.SyncConflict){}, e.onConflict...)
	e.observersMu.RUnlock()

	for _, fn := range observers {
		fn(conflict)
	}
}

func (e *syncEngine) emitPendingCount(ctx context.Context) {
	count, err := e.queue.GetPendingCount(ctx)
	if err != nil {
		e.logger.Warn().Err(err).Msg("failed to count pending changes")
		return
	}
	e.notifyPending(count)
}

func (e *syncEngine) notifyPending(count int) {
	e.observersMu.RLock()
	observers := append([]func(int){}, e.onPending...)
	e.observersMu.RUnlock()

	for _, fn := range observers {
		fn(count)
	}
}

// localWriteWins compares the last write of the local change with the remote
// one, both in UTC. A DELETE was written when it was queued. Ties go to the
// remote. When a side has no timestamp the other side wins; with none at all
// the remote wins. ambiguity is non-empty in those fallback cases.
func localWriteWins(change models.PendingChange, remote *models.Meta) (useLocal bool, ambiguity string) {
	localAt, localOK := localWriteTime(change)
	remoteAt, remoteOK := remote.LastWrite()

	switch {
	case !localOK && !remoteOK:
		return false, "no write timestamps on either side, keeping remote"
	case !remoteOK:
		return true, "remote has no write timestamp, keeping local"
	case !localOK:
		return false, "local change has no write timestamp, keeping remote"
	}

	return localAt.After(remoteAt), ""
}

func localWriteTime(change models.PendingChange) (time.Time, bool) {
	if change.Operation == models.OperationDelete {
		if change.CreatedAt.IsZero() {
			return time.Time{}, false
		}
		return change.CreatedAt.UTC(), true
	}

	var meta models.Meta
	if err := json.Unmarshal(change.Payload, &meta); err != nil {
		return time.Time{}, false
	}
	return meta.LastWrite()
}

func remoteVersion(meta *models.Meta) int64 {
	if meta == nil {
		return 0
	}
	return meta.Version
}
