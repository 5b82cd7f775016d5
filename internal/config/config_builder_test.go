// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/models"
)

// ── build ─────────────────────────────────────────────────────────────────────

func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

func TestBuild_EmptyBuilder(t *testing.T) {
	cfg, err := newConfigBuilder().build()
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_LaterSourceWins verifies that later sources override non-zero
// fields of earlier ones while zero fields never erase.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{App: App{DeviceName: "file", LogFile: "file.log"}},
		&StructuredConfig{App: App{DeviceName: "env"}},
		&StructuredConfig{App: App{DeviceName: "flag"}, Workers: Workers{BatchSize: 7}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "flag", cfg.App.DeviceName)
	assert.Equal(t, "file.log", cfg.App.LogFile)
	assert.Equal(t, 7, cfg.Workers.BatchSize)
}

// ── withFlags / withFile ──────────────────────────────────────────────────────

func TestWithFlags_ParserError(t *testing.T) {
	b := newConfigBuilder().withFlags(func([]string) (*StructuredConfig, error) {
		return nil, errors.New("bad flag")
	}, nil)

	_, err := b.build()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "bad flag")
}

func TestWithFile_NoOp_WhenNoPathSet(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{})

	b.withFile()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

func TestWithFile_PrependsFileConfig(t *testing.T) {
	p := writeConfigFile(t, "c.json", `{"app": {"device_name": "from-file", "log_file": "file.log"}}`)

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: p, App: App{DeviceName: "from-flags"}})
	b.withFile()
	require.NoError(t, b.err)
	require.Len(t, b.configs, 2)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "from-flags", cfg.App.DeviceName)
	assert.Equal(t, "file.log", cfg.App.LogFile)
}

func TestWithFile_SetsError_WhenFileNotFound(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{ConfigFilePath: filepath.Join(t.TempDir(), "none.yaml")})

	b.withFile()
	require.Error(t, b.err)
}

// ── GetClientConfig / GetServerConfig ─────────────────────────────────────────

func TestGetClientConfig_Defaults(t *testing.T) {
	t.Chdir(t.TempDir())

	cfg, err := GetClientConfig([]string{"-d", "/tmp/budget.db", "-r", "http://localhost:8080", "-device", "laptop"})
	require.NoError(t, err)

	assert.Equal(t, "/tmp/budget.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "laptop", cfg.App.DeviceName)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 30*time.Second, cfg.Sync.SyncInterval)
	assert.Equal(t, time.Second, cfg.Sync.DebounceDelay)
	assert.Equal(t, 100, cfg.Sync.BatchSize)
	assert.Equal(t, models.LastWriteWins, cfg.Sync.Strategy)
	assert.Equal(t, 30*time.Second, cfg.Monitor.HealthInterval)
	assert.Equal(t, 5*time.Second, cfg.Monitor.OfflineInterval)
	assert.Equal(t, 5, cfg.Monitor.ReconnectAttempts)
	assert.Equal(t, time.Second, cfg.Monitor.ReconnectBaseDelay)
	assert.Equal(t, 16*time.Second, cfg.Monitor.ReconnectMaxDelay)
	assert.Equal(t, 2*time.Second, cfg.ShutdownTimeout)
}

func TestGetClientConfig_FlagsOverrideEnv(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("STORAGE_LOCAL_PATH", "/env/budget.db")
	t.Setenv("ADAPTER_ADDRESS", "http://env:8080")
	t.Setenv("WORKERS_CONFLICT_STRATEGY", "server_wins")

	cfg, err := GetClientConfig([]string{"-d", "/flag/budget.db", "-device", "x"})
	require.NoError(t, err)

	assert.Equal(t, "/flag/budget.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "http://env:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, models.ServerWins, cfg.Sync.Strategy)
}

func TestNewClientConfig_Validation(t *testing.T) {
	valid := func() *StructuredConfig {
		return &StructuredConfig{
			App:     App{DeviceName: "d"},
			Storage: Storage{Local: Local{Path: "/tmp/b.db"}},
			Adapter: Adapter{HTTPAddress: "http://localhost:8080"},
		}
	}

	tests := []struct {
		name   string
		mutate func(c *StructuredConfig)
		want   error
	}{
		{name: "valid", mutate: func(*StructuredConfig) {}},
		{name: "empty path", mutate: func(c *StructuredConfig) { c.Storage.Local.Path = "" }, want: ErrInvalidStorageConfigs},
		{name: "in-memory path", mutate: func(c *StructuredConfig) { c.Storage.Local.Path = ":memory:" }, want: ErrInvalidStorageConfigs},
		{name: "no remote", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "" }, want: ErrInvalidAdapterConfigs},
		{name: "relative remote", mutate: func(c *StructuredConfig) { c.Adapter.HTTPAddress = "localhost:8080" }, want: ErrInvalidAdapterConfigs},
		{name: "unknown strategy", mutate: func(c *StructuredConfig) { c.Workers.ConflictStrategy = "coin_flip" }, want: ErrInvalidWorkerConfigs},
		{
			name: "max delay below base",
			mutate: func(c *StructuredConfig) {
				c.Workers.ReconnectBaseDelay = 10 * time.Second
				c.Workers.ReconnectMaxDelay = time.Second
			},
			want: ErrInvalidWorkerConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid()
			tt.mutate(c)

			_, err := NewClientConfig(c)
			if tt.want == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestGetServerConfig(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("APP_TOKEN_SIGN_KEY", "secret")

	cfg, err := GetServerConfig([]string{"-d", "postgres://localhost/budget"})
	require.NoError(t, err)

	assert.Equal(t, DefaultServerAddress, cfg.HTTPAddress)
	assert.Equal(t, "postgres://localhost/budget", cfg.DB.DSN)
	assert.Equal(t, "secret", cfg.TokenSignKey)
	assert.Equal(t, DefaultTokenDuration, cfg.TokenDuration)
	assert.Equal(t, DefaultShutdownTimeout, cfg.ShutdownTimeout)
}

func TestNewServerConfig_Validation(t *testing.T) {
	_, err := NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "k"}})
	assert.ErrorIs(t, err, ErrInvalidStorageConfigs)

	_, err = NewServerConfig(&StructuredConfig{Storage: Storage{DB: DB{DSN: "postgres://x"}}})
	assert.ErrorIs(t, err, ErrInvalidAppConfigs)

	// выпуск токена не требует базы данных
	cfg, err := NewServerConfig(&StructuredConfig{App: App{TokenSignKey: "k"}, IssueTokenFor: "laptop"})
	require.NoError(t, err)
	assert.Equal(t, "laptop", cfg.IssueTokenFor)
}
