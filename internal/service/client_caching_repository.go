// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// cachingRepository implements [EntityRepository] on top of a local cache,
// the sync queue and a remote store.
type cachingRepository[E models.Entity] struct {
	entityType models.EntityType
	newEntity  func() E

	local  store.LocalStore[E]
	remote adapter.RemoteStore[E]
	queue  store.Queue

	deviceName string
	ids        *utils.UUIDGenerator
	now        func() time.Time

	initMu      sync.Mutex
	initialized bool

	logger *logger.Logger
}

// NewCachingRepository builds the repository of one versioned entity type.
// deviceName is written to ModifiedBy on every local save.
func NewCachingRepository[E models.Entity](
	entityType models.EntityType,
	newEntity func() E,
	local store.LocalStore[E],
	remote adapter.RemoteStore[E],
	queue store.Queue,
	deviceName string,
	log *logger.Logger,
) EntityRepository[E] {
	return newCachingRepository(entityType, newEntity, local, remote, queue, deviceName, log)
}

func newCachingRepository[E models.Entity](
	entityType models.EntityType,
	newEntity func() E,
	local store.LocalStore[E],
	remote adapter.RemoteStore[E],
	queue store.Queue,
	deviceName string,
	log *logger.Logger,
) *cachingRepository[E] {
	return &cachingRepository[E]{
		entityType: entityType,
		newEntity:  newEntity,
		local:      local,
		remote:     remote,
		queue:      queue,
		deviceName: deviceName,
		ids:        utils.NewUUIDGenerator(),
		now:        func() time.Time { return time.Now().UTC() },
		logger:     log,
	}
}

func (r *cachingRepository[E]) EntityType() models.EntityType {
	return r.entityType
}

func (r *cachingRepository[E]) GetAll(ctx context.Context, filter models.Filter) ([]E, error) {
	return r.local.GetAll(ctx, filter)
}

func (r *cachingRepository[E]) GetByID(ctx context.Context, id string) (E, error) {
	return r.local.GetByID(ctx, id)
}

// Save picks the version the queued write must carry:
//   - a queued, not yet sent save keeps its version, so rapid edits coalesce
//     into one remote write;
//   - a queued delete means the remote still holds that version, the entity
//     is written on top of it;
//   - otherwise the local version plus one, or 1 for a new entity.
func (r *cachingRepository[E]) Save(ctx context.Context, entity E) (E, error) {
	log := logger.FromContext(ctx)
	meta := entity.Metadata()
	if meta.ID == "" {
		meta.ID = r.ids.Generate()
	}

	existing, exists, err := r.lookup(ctx, meta.ID)
	if err != nil {
		return entity, err
	}

	pending, err := r.queue.GetPendingForEntity(ctx, meta.ID)
	if err != nil {
		log.Err(err).Str("func", "cachingRepository.Save").Str("id", meta.ID).Msg("failed to read queued change")
		return entity, fmt.Errorf("error reading queued change: %w", err)
	}
	if pending != nil && pending.EntityType != r.entityType {
		pending = nil
	}

	switch {
	case pending != nil && pending.Status != models.StatusProcessing && pending.Operation != models.OperationDelete:
		meta.Version = pending.LocalVersion
	case pending != nil && pending.Status != models.StatusProcessing && pending.Operation == models.OperationDelete:
		meta.Version = pending.LocalVersion + 1
	case exists:
		meta.Version = existing.Metadata().Version + 1
	default:
		meta.Version = 1
	}

	now := r.now()
	if meta.CreatedAt == nil || meta.CreatedAt.IsZero() {
		if exists && existing.Metadata().CreatedAt != nil {
			meta.CreatedAt = existing.Metadata().CreatedAt
		} else {
			meta.CreatedAt = models.Timestamp(now)
		}
	}
	meta.ModifiedAt = models.Timestamp(now)
	meta.ModifiedBy = r.deviceName

	if err = r.local.Save(ctx, entity); err != nil {
		log.Err(err).Str("func", "cachingRepository.Save").Str("id", meta.ID).Msg("failed to save entity locally")
		return entity, fmt.Errorf("error saving %s locally: %w", r.entityType, err)
	}
	version := meta.Version
	if err = r.queue.EnqueueSave(ctx, entity); err != nil {
		log.Err(err).Str("func", "cachingRepository.Save").Str("id", meta.ID).Msg("failed to queue entity")
		return entity, fmt.Errorf("error queueing %s: %w", r.entityType, err)
	}
	// the row this edit coalesced into was sent meanwhile, the queue moved the version past it
	if meta.Version != version {
		if err = r.local.Save(ctx, entity); err != nil {
			log.Err(err).Str("func", "cachingRepository.Save").Str("id", meta.ID).Msg("failed to save rebased entity locally")
			return entity, fmt.Errorf("error saving %s locally: %w", r.entityType, err)
		}
	}

	return entity, nil
}

// Delete queues a remote delete that expects the local version. The queue
// lowers the expectation itself when it drops a not yet sent update.
func (r *cachingRepository[E]) Delete(ctx context.Context, id string) error {
	existing, exists, err := r.lookup(ctx, id)
	if err != nil {
		return err
	}
	if !exists {
		return fmt.Errorf("%w: %s %s", store.ErrEntityNotFound, r.entityType, id)
	}

	return r.deleteSnapshot(ctx, existing)
}

func (r *cachingRepository[E]) BulkSave(ctx context.Context, entities []E) ([]E, error) {
	saved := make([]E, 0, len(entities))
	for _, entity := range entities {
		s, err := r.Save(ctx, entity)
		if err != nil {
			return saved, err
		}
		saved = append(saved, s)
	}

	return saved, nil
}

// BulkDelete reads every snapshot before deleting anything. Ids that are not
// cached are skipped.
func (r *cachingRepository[E]) BulkDelete(ctx context.Context, ids []string) error {
	if len(ids) == 0 {
		return nil
	}

	snapshots := make([]E, 0, len(ids))
	for _, id := range ids {
		existing, exists, err := r.lookup(ctx, id)
		if err != nil {
			return err
		}
		if !exists {
			logger.FromContext(ctx).Debug().Str("func", "cachingRepository.BulkDelete").Str("id", id).Msg("entity is not cached, skipped")
			continue
		}
		snapshots = append(snapshots, existing)
	}

	for _, snapshot := range snapshots {
		if err := r.deleteSnapshot(ctx, snapshot); err != nil {
			return err
		}
	}

	return nil
}

func (r *cachingRepository[E]) deleteSnapshot(ctx context.Context, snapshot E) error {
	meta := snapshot.Metadata()

	payload, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	if _, err = r.local.Delete(ctx, meta.ID); err != nil {
		return fmt.Errorf("error deleting %s locally: %w", r.entityType, err)
	}
	if err = r.queue.EnqueueDelete(ctx, r.entityType, meta.ID, meta.Version, payload); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cachingRepository.deleteSnapshot").Str("id", meta.ID).Msg("failed to queue delete")
		return fmt.Errorf("error queueing delete of %s: %w", r.entityType, err)
	}

	return nil
}

// RefreshFromCloud writes every remote entity into the cache and drops
// cached entities the remote no longer has. Entities with queued changes are
// left as they are.
func (r *cachingRepository[E]) RefreshFromCloud(ctx context.Context) (int, error) {
	log := logger.FromContext(ctx).With().Str("func", "cachingRepository.RefreshFromCloud").Str("entity_type", string(r.entityType)).Logger()

	remote, err := r.remote.GetAll(ctx)
	if err != nil {
		log.Err(err).Msg("failed to fetch remote snapshot")
		return 0, fmt.Errorf("error fetching remote %s: %w", r.entityType, err)
	}

	pending, err := r.queue.PendingEntityIDs(ctx, r.entityType)
	if err != nil {
		return 0, fmt.Errorf("error reading queued ids: %w", err)
	}

	refreshed := 0
	seen := make(map[string]struct{}, len(remote))
	for _, entity := range remote {
		id := entity.Metadata().ID
		seen[id] = struct{}{}
		if _, ok := pending[id]; ok {
			continue
		}
		if err = r.local.Save(ctx, entity); err != nil {
			return refreshed, fmt.Errorf("error caching %s %s: %w", r.entityType, id, err)
		}
		refreshed++
	}

	cached, err := r.local.GetAll(ctx, models.Filter{})
	if err != nil {
		return refreshed, fmt.Errorf("error reading cached %s: %w", r.entityType, err)
	}
	for _, entity := range cached {
		id := entity.Metadata().ID
		if _, ok := seen[id]; ok {
			continue
		}
		if _, ok := pending[id]; ok {
			continue
		}
		if _, err = r.local.Delete(ctx, id); err != nil {
			return refreshed, fmt.Errorf("error dropping %s %s: %w", r.entityType, id, err)
		}
		refreshed++
	}

	log.Debug().Int("refreshed", refreshed).Int("skipped", len(pending)).Msg("cache refreshed")
	return refreshed, nil
}

func (r *cachingRepository[E]) InitializeCache(ctx context.Context) error {
	r.initMu.Lock()
	defer r.initMu.Unlock()

	if r.initialized {
		return nil
	}
	if _, err := r.RefreshFromCloud(ctx); err != nil {
		return err
	}
	r.initialized = true

	return nil
}

func (r *cachingRepository[E]) SyncToCloud(ctx context.Context, entity E) (E, error) {
	return r.remote.Save(ctx, entity)
}

func (r *cachingRepository[E]) DeleteFromCloud(ctx context.Context, id string, expectedVersion int64) (bool, error) {
	return r.remote.Delete(ctx, id, expectedVersion)
}

// Push sends change as it was queued. The payload is never re-read from the
// cache, so a newer local edit stays in its own queue row.
func (r *cachingRepository[E]) Push(ctx context.Context, change models.PendingChange) error {
	if change.Operation == models.OperationDelete {
		found, err := r.DeleteFromCloud(ctx, change.EntityID, change.LocalVersion)
		if err != nil {
			return err
		}
		if !found {
			logger.FromContext(ctx).Debug().Str("func", "cachingRepository.Push").Str("id", change.EntityID).Msg("entity was already gone remotely")
		}
		return nil
	}

	entity, err := r.decode(change.Payload)
	if err != nil {
		return err
	}
	entity.Metadata().Version = change.LocalVersion

	saved, err := r.SyncToCloud(ctx, entity)
	if err != nil {
		return err
	}

	return r.adopt(ctx, change, saved)
}

func (r *cachingRepository[E]) FetchRemote(ctx context.Context, id string) (json.RawMessage, *models.Meta, error) {
	entity, err := r.remote.GetByID(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		return nil, nil, nil
	}
	if err != nil {
		return nil, nil, err
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}
	meta := *entity.Metadata()

	return payload, &meta, nil
}

func (r *cachingRepository[E]) ForcePush(ctx context.Context, change models.PendingChange, remoteVersion int64) error {
	if change.Operation == models.OperationDelete {
		if remoteVersion == 0 {
			return nil
		}
		_, err := r.DeleteFromCloud(ctx, change.EntityID, remoteVersion)
		return err
	}

	payload, version, err := r.Restamp(ctx, change, remoteVersion)
	if err != nil {
		return err
	}
	entity, err := r.decode(payload)
	if err != nil {
		return err
	}
	entity.Metadata().Version = version

	saved, err := r.SyncToCloud(ctx, entity)
	if err != nil {
		return err
	}

	return r.adopt(ctx, change, saved)
}

func (r *cachingRepository[E]) Restamp(_ context.Context, change models.PendingChange, remoteVersion int64) (json.RawMessage, int64, error) {
	if change.Operation == models.OperationDelete {
		return change.Payload, remoteVersion, nil
	}

	entity, err := r.decode(change.Payload)
	if err != nil {
		return nil, 0, err
	}
	version := remoteVersion + 1
	entity.Metadata().Version = version

	payload, err := json.Marshal(entity)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	return payload, version, nil
}

func (r *cachingRepository[E]) RefreshEntity(ctx context.Context, id string) error {
	entity, err := r.remote.GetByID(ctx, id)
	if errors.Is(err, adapter.ErrNotFound) {
		_, err = r.local.Delete(ctx, id)
		return err
	}
	if err != nil {
		return err
	}

	return r.local.Save(ctx, entity)
}

// adopt writes the stored remote copy into the cache when change is still
// the newest queued row of the entity. A newer local edit is never
// overwritten.
func (r *cachingRepository[E]) adopt(ctx context.Context, change models.PendingChange, saved E) error {
	latest, err := r.queue.GetPendingForEntity(ctx, change.EntityID)
	if err != nil {
		return err
	}
	if latest != nil && latest.ID != change.ID {
		return nil
	}
	if _, exists, err := r.lookup(ctx, change.EntityID); err != nil || !exists {
		return err
	}

	if err = r.local.Save(ctx, saved); err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "cachingRepository.adopt").Str("id", change.EntityID).Msg("failed to cache remote copy")
		return fmt.Errorf("error caching remote copy: %w", err)
	}
	return nil
}

func (r *cachingRepository[E]) lookup(ctx context.Context, id string) (E, bool, error) {
	entity, err := r.local.GetByID(ctx, id)
	if errors.Is(err, store.ErrEntityNotFound) {
		var zero E
		return zero, false, nil
	}
	if err != nil {
		return entity, false, fmt.Errorf("error reading cached %s %s: %w", r.entityType, id, err)
	}

	return entity, true, nil
}

func (r *cachingRepository[E]) decode(payload json.RawMessage) (E, error) {
	entity := r.newEntity()
	if err := json.Unmarshal(payload, entity); err != nil {
		var zero E
		return zero, fmt.Errorf("%w: %w", store.ErrDecodingPayload, err)
	}
	return entity, nil
}
