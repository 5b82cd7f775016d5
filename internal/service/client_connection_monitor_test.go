// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/mock"
	"github.com/MKhiriev/go-budget-sync/models"
)

var errRefused = errors.New("dial tcp 127.0.0.1:8080: connection refused")

// transitions собирает смены статуса, на которые подписан тест.
type transitions struct {
	mu   sync.Mutex
	seen [][2]models.ConnectionStatus
}

func (tr *transitions) record(old, new models.ConnectionStatus) {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	tr.seen = append(tr.seen, [2]models.ConnectionStatus{old, new})
}

func (tr *transitions) list() [][2]models.ConnectionStatus {
	tr.mu.Lock()
	defer tr.mu.Unlock()
	return append([][2]models.ConnectionStatus{}, tr.seen...)
}

func newTestMonitor(ctrl *gomock.Controller, cfg config.ClientMonitor) (*connectionMonitor, *mock.MockRemoteConnection, *transitions) {
	conn := mock.NewMockRemoteConnection(ctrl)
	m := newConnectionMonitor(conn, cfg, logger.Nop())
	tr := &transitions{}
	m.OnStatusChanged(tr.record)
	return m, conn, tr
}

// fastMonitorConfig: миллисекундные интервалы; health-check раз в час, если не задано иное.
func fastMonitorConfig() config.ClientMonitor {
	return config.ClientMonitor{
		HealthInterval:     time.Hour,
		OfflineInterval:    time.Hour,
		ReconnectAttempts:  3,
		ReconnectBaseDelay: time.Millisecond,
		ReconnectMaxDelay:  2 * time.Millisecond,
	}
}

func TestConnectionMonitor_InitialState(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestMonitor(ctrl, fastMonitorConfig())

	assert.Equal(t, models.StatusConnected, m.Status())
	assert.True(t, m.IsConnected())
	assert.Equal(t, models.ConnectionState{Status: models.StatusConnected}, m.State())
}

func TestConnectionMonitor_ReportNetworkError_NotMonitoring(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, tr := newTestMonitor(ctrl, fastMonitorConfig())

	m.ReportNetworkError()

	assert.Equal(t, models.StatusOffline, m.Status())
	assert.Equal(t, [][2]models.ConnectionStatus{{models.StatusConnected, models.StatusOffline}}, tr.list())
}

func TestConnectionMonitor_ReconnectNow(t *testing.T) {
	ctx := context.Background()

	t.Run("success from offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, conn, tr := newTestMonitor(ctrl, fastMonitorConfig())
		m.ReportNetworkError()

		conn.EXPECT().Reconnect(gomock.Any()).Return(nil)

		assert.True(t, m.ReconnectNow(ctx))
		assert.Equal(t, models.StatusConnected, m.Status())
		assert.Zero(t, m.State().ReconnectAttempts)
		assert.Equal(t, models.StatusConnected, tr.list()[1][1])
	})

	t.Run("failure goes offline", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		m, conn, _ := newTestMonitor(ctrl, fastMonitorConfig())

		conn.EXPECT().Reconnect(gomock.Any()).Return(errRefused).Times(1)

		assert.False(t, m.ReconnectNow(ctx))
		assert.Equal(t, models.StatusOffline, m.Status())
	})
}

// Неудачный health-check: N попыток с backoff, затем OFFLINE.
func TestConnectionMonitor_ReconnectExhausted(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := fastMonitorConfig()
	cfg.HealthInterval = 5 * time.Millisecond
	m, conn, tr := newTestMonitor(ctrl, cfg)

	conn.EXPECT().HealthCheck(gomock.Any()).Return(false).Times(1)
	conn.EXPECT().Reconnect(gomock.Any()).Return(errRefused).Times(3)

	m.StartMonitoring(context.Background())
	defer m.StopMonitoring()

	require.Eventually(t, func() bool { return m.Status() == models.StatusOffline }, 2*time.Second, 5*time.Millisecond)

	assert.Equal(t, 3, m.State().ReconnectAttempts)
	assert.Equal(t, [][2]models.ConnectionStatus{
		{models.StatusConnected, models.StatusReconnecting},
		{models.StatusReconnecting, models.StatusOffline},
	}, tr.list())
}

func TestConnectionMonitor_ReconnectSucceedsOnRetry(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := fastMonitorConfig()
	cfg.HealthInterval = 5 * time.Millisecond
	m, conn, _ := newTestMonitor(ctrl, cfg)

	gomock.InOrder(
		conn.EXPECT().HealthCheck(gomock.Any()).Return(false),
		conn.EXPECT().Reconnect(gomock.Any()).Return(errRefused),
		conn.EXPECT().Reconnect(gomock.Any()).Return(nil),
	)
	conn.EXPECT().HealthCheck(gomock.Any()).Return(true).AnyTimes()

	m.StartMonitoring(context.Background())
	defer m.StopMonitoring()

	require.Eventually(t, func() bool {
		s := m.State()
		return s.Status == models.StatusConnected && s.ReconnectAttempts == 0
	}, 2*time.Second, 5*time.Millisecond)
}

// Пока идёт переподключение, новые сигналы не запускают второй цикл.
func TestConnectionMonitor_SingleReconnectLoop(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, conn, _ := newTestMonitor(ctrl, fastMonitorConfig())

	entered := make(chan struct{})
	release := make(chan struct{})
	conn.EXPECT().Reconnect(gomock.Any()).DoAndReturn(func(context.Context) error {
		close(entered)
		<-release
		return nil
	}).Times(1)

	m.StartMonitoring(context.Background())
	defer m.StopMonitoring()

	m.ReportNetworkError()
	<-entered
	assert.Equal(t, models.StatusReconnecting, m.Status())

	m.ReportNetworkError()
	m.ReportNetworkError()
	m.tick(context.Background()) // тик во время RECONNECTING ничего не делает

	close(release)
	require.Eventually(t, m.IsConnected, 2*time.Second, 5*time.Millisecond)
}

func TestConnectionMonitor_ReconnectNow_DuringLoopKeepsReconnecting(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, conn, _ := newTestMonitor(ctrl, fastMonitorConfig())

	// цикл переподключения уже владеет состоянием
	m.setStatus(models.StatusReconnecting)
	conn.EXPECT().Reconnect(gomock.Any()).Return(errRefused)

	assert.False(t, m.ReconnectNow(context.Background()))
	assert.Equal(t, models.StatusReconnecting, m.Status(), "a failed manual attempt leaves the running loop alone")
}

// В OFFLINE каждый тик пытается переподключиться.
func TestConnectionMonitor_OfflineRecovery(t *testing.T) {
	ctrl := gomock.NewController(t)
	cfg := fastMonitorConfig()
	cfg.OfflineInterval = 5 * time.Millisecond
	m, conn, tr := newTestMonitor(ctrl, cfg)

	m.ReportNetworkError() // без мониторинга сразу OFFLINE
	require.Equal(t, models.StatusOffline, m.Status())

	gomock.InOrder(
		conn.EXPECT().Reconnect(gomock.Any()).Return(errRefused),
		conn.EXPECT().Reconnect(gomock.Any()).Return(nil),
	)

	m.StartMonitoring(context.Background())
	defer m.StopMonitoring()

	require.Eventually(t, m.IsConnected, 2*time.Second, 5*time.Millisecond)
	assert.Equal(t, [][2]models.ConnectionStatus{
		{models.StatusConnected, models.StatusOffline},
		{models.StatusOffline, models.StatusConnected},
	}, tr.list())
}

func TestConnectionMonitor_StartStopIdempotent(t *testing.T) {
	ctrl := gomock.NewController(t)
	m, _, _ := newTestMonitor(ctrl, fastMonitorConfig())

	m.StartMonitoring(context.Background())
	m.StartMonitoring(context.Background())
	m.StopMonitoring()
	m.StopMonitoring()

	assert.Equal(t, models.StatusConnected, m.Status())
}
