// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"fmt"
	"io"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/internal/workers"
	"github.com/MKhiriev/go-budget-sync/models"
)

type App struct {
	queue        store.Queue
	monitor      service.ConnectionMonitor
	engine       service.SyncEngine
	refreshables []service.Refreshable
	closer       io.Closer

	shutdownTimeout time.Duration

	// ctx is the Run context, used by work started from status callbacks.
	ctx context.Context

	// seeded is set once every repository has pulled its first snapshot.
	seeded atomic.Bool
	// connectedMu keeps one onConnected run at a time.
	connectedMu sync.Mutex

	// reconnects tracks onConnected runs started by status callbacks. Once
	// closing is set no new run starts.
	reconnectsMu sync.Mutex
	reconnects   sync.WaitGroup
	closing      bool

	now    func() time.Time
	logger *logger.Logger
}

func NewApp(storages *store.ClientStorages, services *service.ClientServices, cfg *config.ClientConfig, log *logger.Logger) *App {
	return newApp(storages.Queue, services.Monitor, services.Engine, services.Refreshables(), storages, cfg.ShutdownTimeout, log)
}

func newApp(
	queue store.Queue,
	monitor service.ConnectionMonitor,
	engine service.SyncEngine,
	refreshables []service.Refreshable,
	closer io.Closer,
	shutdownTimeout time.Duration,
	log *logger.Logger,
) *App {
	return &App{
		queue:           queue,
		monitor:         monitor,
		engine:          engine,
		refreshables:    refreshables,
		closer:          closer,
		shutdownTimeout: shutdownTimeout,
		now:             func() time.Time { return time.Now().UTC() },
		logger:          log,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.ctx = ctx

	recovered, err := a.queue.Initialize(ctx)
	if err != nil {
		return fmt.Errorf("queue recovery: %w", err)
	}
	if recovered > 0 {
		a.logger.Warn().Int("recovered", recovered).Msg("changes interrupted by a crash are pending again")
	}

	a.monitor.OnStatusChanged(a.onStatusChanged)
	a.engine.OnConflict(a.onConflict)
	a.engine.OnPendingCountChanged(func(count int) {
		a.logger.Debug().Int("pending", count).Msg("pending changes")
	})
	a.engine.OnSyncCompleted(func(synced int) {
		a.logger.Info().Int("synced", synced).Msg("sync pass completed")
	})

	ws := workers.NewWorkers(a.logger,
		workers.NewWorker("connection-monitor",
			func(ctx context.Context) error {
				a.monitor.StartMonitoring(ctx)
				return nil
			},
			workers.Bounded(a.monitor.StopMonitoring),
		),
		workers.NewWorker("sync-engine", a.engine.Start, workers.Bounded(a.engine.Stop)),
	)
	if err = ws.Run(ctx); err != nil {
		return err
	}

	if a.monitor.ReconnectNow(ctx) {
		a.onConnected()
	}

	<-ctx.Done()
	a.logger.Info().Msg("client is shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.shutdownTimeout)
	defer cancel()

	if err = ws.Shutdown(shutdownCtx); err != nil {
		a.logger.Err(err).Msg("workers did not stop cleanly")
	}
	if err = a.waitReconnects(shutdownCtx); err != nil {
		a.logger.Err(err).Msg("reconnect work did not finish before shutdown timeout")
	}
	if err = a.closer.Close(); err != nil {
		return fmt.Errorf("closing local storage: %w", err)
	}

	return nil
}

func (a *App) onStatusChanged(old, new models.ConnectionStatus) {
	a.logger.Info().Str("from", string(old)).Str("to", string(new)).Msg("connection status changed")

	if new == models.StatusConnected {
		a.reconnectsMu.Lock()
		defer a.reconnectsMu.Unlock()
		if !a.closing {
			a.reconnects.Go(a.onConnected)
		}
	}
}

func (a *App) waitReconnects(ctx context.Context) error {
	a.reconnectsMu.Lock()
	a.closing = true
	a.reconnectsMu.Unlock()

	done := make(chan struct{})
	go func() {
		a.reconnects.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// onConnected seeds the cache the first time it succeeds and then pushes
// whatever was queued while offline.
func (a *App) onConnected() {
	if !a.connectedMu.TryLock() {
		return
	}
	defer a.connectedMu.Unlock()

	ctx := a.ctx
	if ctx.Err() != nil {
		return
	}

	if !a.seeded.Load() {
		a.seedCache(ctx)
	}

	synced := a.engine.SyncNow(ctx)
	a.logger.Debug().Int("synced", synced).Msg("sync after reconnect")
}

func (a *App) seedCache(ctx context.Context) {
	for _, r := range a.refreshables {
		if err := r.InitializeCache(ctx); err != nil {
			// retried on the next connection
			a.logger.Err(err).Msg("seeding local cache failed")
			return
		}
	}

	a.seeded.Store(true)
	if err := a.queue.SetMeta(ctx, models.MetaLastFullSyncAt, a.now().Format(time.RFC3339Nano)); err != nil {
		a.logger.Err(err).Msg("saving full sync time failed")
	}
}

func (a *App) onConflict(conflict models.SyncConflict) {
	a.logger.Warn().
		Str("change_id", conflict.ChangeID).
		Str("entity_type", string(conflict.EntityType)).
		Str("entity_id", conflict.EntityID).
		Str("operation", string(conflict.Operation)).
		Str("reason", conflict.Reason).
		Msg("sync conflict needs a decision")
}
