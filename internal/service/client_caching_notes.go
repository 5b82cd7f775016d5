// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

type cachingNoteRepository struct {
	local  store.LocalNoteStore
	remote adapter.RemoteNoteStore
	queue  store.Queue
	now    func() time.Time

	logger *logger.Logger
}

func NewCachingNoteRepository(local store.LocalNoteStore, remote adapter.RemoteNoteStore, queue store.Queue, log *logger.Logger) NoteRepository {
	return &cachingNoteRepository{
		local:  local,
		remote: remote,
		queue:  queue,
		now:    func() time.Time { return time.Now().UTC() },
		logger: log,
	}
}

func (n *cachingNoteRepository) EntityType() models.EntityType {
	return models.EntityActivityNote
}

func (n *cachingNoteRepository) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	return n.local.GetAll(ctx)
}

func (n *cachingNoteRepository) Get(ctx context.Context, key string) (models.ActivityNote, error) {
	return n.local.Get(ctx, key)
}

func (n *cachingNoteRepository) Set(ctx context.Context, key, text string) (models.ActivityNote, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return models.ActivityNote{}, fmt.Errorf("%w: empty note key", ErrInvalidDataProvided)
	}

	op := models.OperationUpdate
	if _, err := n.local.Get(ctx, key); errors.Is(err, store.ErrEntityNotFound) {
		op = models.OperationCreate
	} else if err != nil {
		return models.ActivityNote{}, err
	}

	note := models.ActivityNote{Key: key, Text: text, UpdatedAt: n.now()}
	if err := n.local.Set(ctx, note); err != nil {
		return models.ActivityNote{}, err
	}

	payload, err := json.Marshal(note)
	if err != nil {
		return note, fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}
	if err = n.queue.EnqueueOperation(ctx, models.EntityActivityNote, models.NoteEntityID(key), op, 0, payload); err != nil {
		return note, err
	}

	return note, nil
}

func (n *cachingNoteRepository) Remove(ctx context.Context, key string) error {
	removed, err := n.local.Delete(ctx, key)
	if err != nil {
		return err
	}
	if !removed {
		return nil
	}

	payload, err := json.Marshal(models.ActivityNote{Key: key})
	if err != nil {
		return fmt.Errorf("%w: %w", store.ErrEncodingPayload, err)
	}

	return n.queue.EnqueueDelete(ctx, models.EntityActivityNote, models.NoteEntityID(key), 0, payload)
}

// RefreshFromCloud is skipped while any note change is queued, same as for
// categories.
func (n *cachingNoteRepository) RefreshFromCloud(ctx context.Context) (int, error) {
	pending, err := n.queue.HasPendingForType(ctx, models.EntityActivityNote)
	if err != nil {
		return 0, err
	}
	if pending {
		logger.FromContext(ctx).Debug().Str("func", "cachingNoteRepository.RefreshFromCloud").Msg("note changes are queued, refresh skipped")
		return 0, nil
	}

	notes, err := n.remote.GetAll(ctx)
	if err != nil {
		return 0, fmt.Errorf("error fetching remote notes: %w", err)
	}
	if err = n.local.ReplaceAll(ctx, notes); err != nil {
		return 0, err
	}

	return len(notes), nil
}

func (n *cachingNoteRepository) InitializeCache(ctx context.Context) error {
	_, err := n.RefreshFromCloud(ctx)
	return err
}

func (n *cachingNoteRepository) Push(ctx context.Context, change models.PendingChange) error {
	var note models.ActivityNote
	if err := json.Unmarshal(change.Payload, &note); err != nil {
		return fmt.Errorf("%w: %w", store.ErrDecodingPayload, err)
	}

	if change.Operation == models.OperationDelete {
		_, err := n.remote.Delete(ctx, note.Key)
		return err
	}

	return n.remote.Set(ctx, note)
}
