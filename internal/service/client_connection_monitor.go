// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/singleflight"
)

const reconnectFlight = "reconnect"

// connectionMonitor supervises [adapter.RemoteConnection].
//
// While CONNECTED it health-checks every HealthInterval. A failed check or a
// reported network error starts the reconnect loop (RECONNECTING), which
// makes up to ReconnectAttempts attempts with capped exponential backoff and
// ends in CONNECTED or OFFLINE. While OFFLINE every OfflineInterval tick is
// one silent reconnect attempt.
type connectionMonitor struct {
	conn adapter.RemoteConnection
	cfg  config.ClientMonitor

	mu         sync.Mutex
	status     models.ConnectionStatus
	attempts   int
	monitoring bool
	loopCtx    context.Context
	cancel     context.CancelFunc

	// attemptMu keeps a manual attempt and the loop from rebuilding the
	// client at the same time.
	attemptMu sync.Mutex
	flight    singleflight.Group
	wake      chan struct{}
	wg        sync.WaitGroup

	observersMu sync.RWMutex
	observers   []func(old, new models.ConnectionStatus)

	logger *logger.Logger
}

func NewConnectionMonitor(conn adapter.RemoteConnection, cfg config.ClientMonitor, log *logger.Logger) ConnectionMonitor {
	return newConnectionMonitor(conn, cfg, log)
}

func newConnectionMonitor(conn adapter.RemoteConnection, cfg config.ClientMonitor, log *logger.Logger) *connectionMonitor {
	return &connectionMonitor{
		conn:   conn,
		cfg:    cfg,
		status: models.StatusConnected,
		wake:   make(chan struct{}, 1),
		logger: log,
	}
}

func (m *connectionMonitor) Status() models.ConnectionStatus {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.status
}

func (m *connectionMonitor) State() models.ConnectionState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return models.ConnectionState{Status: m.status, ReconnectAttempts: m.attempts}
}

func (m *connectionMonitor) IsConnected() bool {
	return m.Status() == models.StatusConnected
}

func (m *connectionMonitor) OnStatusChanged(fn func(old, new models.ConnectionStatus)) {
	m.observersMu.Lock()
	defer m.observersMu.Unlock()
	m.observers = append(m.observers, fn)
}

func (m *connectionMonitor) StartMonitoring(ctx context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.monitoring {
		return
	}

	m.loopCtx, m.cancel = context.WithCancel(ctx)
	m.monitoring = true

	m.wg.Add(1)
	go func() {
		defer m.wg.Done()
		m.loop(m.loopCtx)
	}()
	m.logger.Info().Str("status", string(m.status)).Msg("connection monitoring started")
}

// StopMonitoring cancels the health loop and any reconnect loop and waits
// for them to return.
func (m *connectionMonitor) StopMonitoring() {
	m.mu.Lock()
	if !m.monitoring {
		m.mu.Unlock()
		return
	}
	m.monitoring = false
	cancel := m.cancel
	m.mu.Unlock()

	cancel()
	m.wg.Wait()
	m.logger.Info().Msg("connection monitoring stopped")
}

// ReportNetworkError moves a CONNECTED monitor to RECONNECTING at once.
// Without a running health loop there is nobody to drive reconnects, so the
// monitor goes OFFLINE and waits for ReconnectNow.
func (m *connectionMonitor) ReportNetworkError() {
	m.mu.Lock()
	if m.status != models.StatusConnected {
		m.mu.Unlock()
		return
	}
	if !m.monitoring {
		m.mu.Unlock()
		m.transition(models.StatusConnected, models.StatusOffline)
		return
	}
	ctx := m.loopCtx
	m.wg.Add(1)
	m.mu.Unlock()

	m.logger.Warn().Msg("network error reported, reconnecting")
	go func() {
		defer m.wg.Done()
		m.reconnect(ctx)
	}()
}

// ReconnectNow makes one attempt without backoff. A failed attempt leaves a
// running reconnect loop alone.
func (m *connectionMonitor) ReconnectNow(ctx context.Context) bool {
	m.mu.Lock()
	m.attempts = 0
	m.mu.Unlock()

	if err := m.attempt(ctx); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("func", "connectionMonitor.ReconnectNow").Msg("manual reconnect failed")
		m.changeStatus(models.StatusOffline, func(cur models.ConnectionStatus) bool {
			return cur != models.StatusReconnecting
		})
		return false
	}

	m.setStatus(models.StatusConnected)
	return true
}

func (m *connectionMonitor) loop(ctx context.Context) {
	for {
		timer := time.NewTimer(m.interval())
		select {
		case <-ctx.Done():
			timer.Stop()
			return
		case <-m.wake:
			// status changed, re-arm with the interval of the new status
			timer.Stop()
		case <-timer.C:
			m.tick(ctx)
		}
	}
}

func (m *connectionMonitor) interval() time.Duration {
	if m.Status() == models.StatusConnected {
		return m.cfg.HealthInterval
	}
	return m.cfg.OfflineInterval
}

func (m *connectionMonitor) tick(ctx context.Context) {
	switch m.Status() {
	case models.StatusConnected:
		if m.conn.HealthCheck(ctx) {
			return
		}
		m.logger.Warn().Msg("health check failed, reconnecting")
		m.reconnect(ctx)

	case models.StatusOffline:
		if err := m.attempt(ctx); err != nil {
			m.logger.Debug().Err(err).Msg("still offline")
			return
		}
		m.transition(models.StatusOffline, models.StatusConnected)

	case models.StatusReconnecting:
		// the reconnect loop owns the state
	}
}

// reconnect runs the backoff loop. Concurrent triggers join the running
// loop instead of starting their own.
func (m *connectionMonitor) reconnect(ctx context.Context) {
	_, _, _ = m.flight.Do(reconnectFlight, func() (any, error) {
		m.mu.Lock()
		m.attempts = 0
		m.mu.Unlock()
		m.setStatus(models.StatusReconnecting)

		retries := m.cfg.ReconnectAttempts - 1
		if retries < 0 {
			retries = 0
		}
		backoff := retry.NewExponential(m.cfg.ReconnectBaseDelay)
		backoff = retry.WithCappedDuration(m.cfg.ReconnectMaxDelay, backoff)
		backoff = retry.WithMaxRetries(uint64(retries), backoff)

		err := retry.Do(ctx, backoff, func(ctx context.Context) error {
			if m.IsConnected() {
				return nil
			}

			m.mu.Lock()
			m.attempts++
			attempt := m.attempts
			m.mu.Unlock()

			if err := m.attempt(ctx); err != nil {
				m.logger.Warn().Err(err).Int("attempt", attempt).Msg("reconnect attempt failed")
				return retry.RetryableError(err)
			}
			m.transition(models.StatusReconnecting, models.StatusConnected)
			return nil
		})
		if err != nil {
			m.logger.Error().Err(err).Int("attempts", m.State().ReconnectAttempts).Msg("reconnect attempts exhausted, going offline")
			m.transition(models.StatusReconnecting, models.StatusOffline)
		}
		return nil, nil
	})
}

func (m *connectionMonitor) attempt(ctx context.Context) error {
	m.attemptMu.Lock()
	defer m.attemptMu.Unlock()
	return m.conn.Reconnect(ctx)
}

// transition moves to next only when the monitor is still in from.
func (m *connectionMonitor) transition(from, next models.ConnectionStatus) bool {
	return m.changeStatus(next, func(cur models.ConnectionStatus) bool { return cur == from })
}

func (m *connectionMonitor) setStatus(next models.ConnectionStatus) bool {
	return m.changeStatus(next, nil)
}

// changeStatus sets next when allow accepts the current status and notifies
// observers outside the lock.
func (m *connectionMonitor) changeStatus(next models.ConnectionStatus, allow func(models.ConnectionStatus) bool) bool {
	m.mu.Lock()
	old := m.status
	if old == next || (allow != nil && !allow(old)) {
		m.mu.Unlock()
		return false
	}
	m.status = next
	if next == models.StatusConnected {
		m.attempts = 0
	}
	m.mu.Unlock()

	select {
	case m.wake <- struct{}{}:
	default:
	}

	m.logger.Info().Str("old", string(old)).Str("new", string(next)).Msg("connection status changed")

	m.observersMu.RLock()
	observers := append([]func(old, new models.ConnectionStatus){}, m.observers...)
	m.observersMu.RUnlock()
	for _, fn := range observers {
		fn(old, next)
	}

	return true
}
