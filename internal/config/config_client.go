// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/MKhiriev/go-budget-sync/models"
)

// ClientApp holds client-side application settings.
type ClientApp struct {
	// DeviceName is stamped on ModifiedBy of local edits.
	DeviceName string
	// LogFile is the rotated log destination.
	LogFile string
}

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// HTTPAddress is the base URL of the remote store.
	HTTPAddress string
	// RequestTimeout is the default timeout for outbound requests.
	RequestTimeout time.Duration
	// Token is the bearer token, empty for an open server.
	Token string
}

// ClientDB contains local database connection settings for the client.
type ClientDB struct {
	// DSN is the SQLite file path.
	DSN string
}

// ClientStorage groups client storage backend settings.
type ClientStorage struct {
	DB ClientDB
}

// ClientSync configures the sync engine.
type ClientSync struct {
	SyncInterval  time.Duration
	DebounceDelay time.Duration
	BatchSize     int
	Strategy      models.ConflictStrategy
}

// ClientMonitor configures the connection monitor.
type ClientMonitor struct {
	HealthInterval     time.Duration
	OfflineInterval    time.Duration
	ReconnectAttempts  int
	ReconnectBaseDelay time.Duration
	ReconnectMaxDelay  time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	App     ClientApp
	Adapter ClientAdapter
	Storage ClientStorage
	Sync    ClientSync
	Monitor ClientMonitor

	// ShutdownTimeout bounds how long Stop waits for each worker.
	ShutdownTimeout time.Duration
}

// GetClientConfig builds the client config from .env, the environment,
// args and the optional config file, applies defaults and validates the
// result.
func GetClientConfig(args []string) (*ClientConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(ParseClientFlags, args).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewClientConfig(cfg)
}

// NewClientConfig maps the fields relevant to the client and fills defaults.
func NewClientConfig(cfg *StructuredConfig) (*ClientConfig, error) {
	strategy, err := models.ParseConflictStrategy(cfg.Workers.ConflictStrategy)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidWorkerConfigs, err)
	}

	deviceName := cfg.App.DeviceName
	if deviceName == "" {
		deviceName, _ = os.Hostname()
	}

	clientCfg := &ClientConfig{
		App: ClientApp{
			DeviceName: deviceName,
			LogFile:    cfg.App.LogFile,
		},
		Adapter: ClientAdapter{
			HTTPAddress:    cfg.Adapter.HTTPAddress,
			RequestTimeout: orDefault(cfg.Adapter.RequestTimeout, DefaultRequestTimeout),
			Token:          cfg.Adapter.Token,
		},
		Storage: ClientStorage{
			DB: ClientDB{DSN: cfg.Storage.Local.Path},
		},
		Sync: ClientSync{
			SyncInterval:  orDefault(cfg.Workers.SyncInterval, DefaultSyncInterval),
			DebounceDelay: orDefault(cfg.Workers.DebounceDelay, DefaultDebounceDelay),
			BatchSize:     orDefault(cfg.Workers.BatchSize, DefaultBatchSize),
			Strategy:      strategy,
		},
		Monitor: ClientMonitor{
			HealthInterval:     orDefault(cfg.Workers.HealthInterval, DefaultHealthInterval),
			OfflineInterval:    orDefault(cfg.Workers.OfflineInterval, DefaultOfflineInterval),
			ReconnectAttempts:  orDefault(cfg.Workers.ReconnectAttempts, DefaultReconnectAttempts),
			ReconnectBaseDelay: orDefault(cfg.Workers.ReconnectBaseDelay, DefaultReconnectBaseDelay),
			ReconnectMaxDelay:  orDefault(cfg.Workers.ReconnectMaxDelay, DefaultReconnectMaxDelay),
		},
		ShutdownTimeout: orDefault(cfg.Workers.ShutdownTimeout, DefaultShutdownTimeout),
	}

	return clientCfg, clientCfg.validate()
}

func orDefault[T time.Duration | int](v, def T) T {
	if v <= 0 {
		return def
	}
	return v
}
