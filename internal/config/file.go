// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig is the on-disk shape of the config file. Durations are written
// as strings like "30s".
type fileConfig struct {
	App struct {
		TokenSignKey  string   `json:"token_sign_key" yaml:"token_sign_key"`
		TokenIssuer   string   `json:"token_issuer" yaml:"token_issuer"`
		TokenDuration Duration `json:"token_duration" yaml:"token_duration"`
		DeviceName    string   `json:"device_name" yaml:"device_name"`
		LogFile       string   `json:"log_file" yaml:"log_file"`
	} `json:"app" yaml:"app"`

	Storage struct {
		DB struct {
			DSN string `json:"dsn" yaml:"dsn"`
		} `json:"db" yaml:"db"`
		Local struct {
			Path string `json:"path" yaml:"path"`
		} `json:"local" yaml:"local"`
	} `json:"storage" yaml:"storage"`

	Server struct {
		HTTPAddress     string   `json:"http_address" yaml:"http_address"`
		RequestTimeout  Duration `json:"request_timeout" yaml:"request_timeout"`
		ShutdownTimeout Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Adapter struct {
		HTTPAddress    string   `json:"http_address" yaml:"http_address"`
		RequestTimeout Duration `json:"request_timeout" yaml:"request_timeout"`
		Token          string   `json:"token" yaml:"token"`
	} `json:"adapter" yaml:"adapter"`

	Workers struct {
		SyncInterval       Duration `json:"sync_interval" yaml:"sync_interval"`
		DebounceDelay      Duration `json:"debounce_delay" yaml:"debounce_delay"`
		BatchSize          int      `json:"batch_size" yaml:"batch_size"`
		ConflictStrategy   string   `json:"conflict_strategy" yaml:"conflict_strategy"`
		HealthInterval     Duration `json:"health_interval" yaml:"health_interval"`
		OfflineInterval    Duration `json:"offline_interval" yaml:"offline_interval"`
		ReconnectAttempts  int      `json:"reconnect_attempts" yaml:"reconnect_attempts"`
		ReconnectBaseDelay Duration `json:"reconnect_base_delay" yaml:"reconnect_base_delay"`
		ReconnectMaxDelay  Duration `json:"reconnect_max_delay" yaml:"reconnect_max_delay"`
		ShutdownTimeout    Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"workers" yaml:"workers"`
}

// parseFile reads a JSON or YAML config file. The format follows the file
// extension; anything other than .yaml or .yml is read as JSON.
func parseFile(path string) (*StructuredConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	var fc fileConfig
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		if err = yaml.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		if err = json.Unmarshal(data, &fc); err != nil {
			return nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	}

	return &StructuredConfig{
		App: App{
			TokenSignKey:  fc.App.TokenSignKey,
			TokenIssuer:   fc.App.TokenIssuer,
			TokenDuration: time.Duration(fc.App.TokenDuration),
			DeviceName:    fc.App.DeviceName,
			LogFile:       fc.App.LogFile,
		},
		Storage: Storage{
			DB:    DB{DSN: fc.Storage.DB.DSN},
			Local: Local{Path: fc.Storage.Local.Path},
		},
		Server: Server{
			HTTPAddress:     fc.Server.HTTPAddress,
			RequestTimeout:  time.Duration(fc.Server.RequestTimeout),
			ShutdownTimeout: time.Duration(fc.Server.ShutdownTimeout),
		},
		Adapter: Adapter{
			HTTPAddress:    fc.Adapter.HTTPAddress,
			RequestTimeout: time.Duration(fc.Adapter.RequestTimeout),
			Token:          fc.Adapter.Token,
		},
		Workers: Workers{
			SyncInterval:       time.Duration(fc.Workers.SyncInterval),
			DebounceDelay:      time.Duration(fc.Workers.DebounceDelay),
			BatchSize:          fc.Workers.BatchSize,
			ConflictStrategy:   fc.Workers.ConflictStrategy,
			HealthInterval:     time.Duration(fc.Workers.HealthInterval),
			OfflineInterval:    time.Duration(fc.Workers.OfflineInterval),
			ReconnectAttempts:  fc.Workers.ReconnectAttempts,
			ReconnectBaseDelay: time.Duration(fc.Workers.ReconnectBaseDelay),
			ReconnectMaxDelay:  time.Duration(fc.Workers.ReconnectMaxDelay),
			ShutdownTimeout:    time.Duration(fc.Workers.ShutdownTimeout),
		},
	}, nil
}

// Duration is a wrapper around time.Duration that decodes from strings like
// "1h" or "30s" as well as from integer nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v interface{}
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
		return nil
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
		return nil
	default:
		return json.Unmarshal(b, (*time.Duration)(d))
	}
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var n int64
	if err := node.Decode(&n); err == nil {
		*d = Duration(time.Duration(n))
		return nil
	}

	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	tmp, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(tmp)
	return nil
}

func (d Duration) MarshalYAML() (any, error) {
	return time.Duration(d).String(), nil
}
