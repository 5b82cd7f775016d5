// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"
	"time"
)

// ServerConfig is the reference server view of [StructuredConfig].
type ServerConfig struct {
	HTTPAddress     string
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration

	DB DB

	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration

	// IssueTokenFor, when set, asks the server binary to print a token for
	// that device and exit.
	IssueTokenFor string
}

// GetServerConfig builds the server config from .env, the environment, args
// and the optional config file.
func GetServerConfig(args []string) (*ServerConfig, error) {
	cfg, err := newConfigBuilder().
		withDotEnv(DotEnvFile).
		withEnv().
		withFlags(ParseServerFlags, args).
		withFile().
		build()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	return NewServerConfig(cfg)
}

func NewServerConfig(cfg *StructuredConfig) (*ServerConfig, error) {
	address := cfg.Server.HTTPAddress
	if address == "" {
		address = DefaultServerAddress
	}

	serverCfg := &ServerConfig{
		HTTPAddress:     address,
		RequestTimeout:  orDefault(cfg.Server.RequestTimeout, DefaultRequestTimeout),
		ShutdownTimeout: orDefault(cfg.Server.ShutdownTimeout, DefaultShutdownTimeout),
		DB:              cfg.Storage.DB,
		TokenSignKey:    cfg.App.TokenSignKey,
		TokenIssuer:     cfg.App.TokenIssuer,
		TokenDuration:   orDefault(cfg.App.TokenDuration, DefaultTokenDuration),
		IssueTokenFor:   cfg.IssueTokenFor,
	}

	return serverCfg, serverCfg.validate()
}
