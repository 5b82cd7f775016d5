// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package config provides configuration loading, merging, and validation
// for the client and the reference server.
//
// Sources in increasing priority (later non-zero fields win):
//  1. JSON or YAML config file
//  2. Environment variables, after loading .env
//  3. Command-line flags
//
// The entry points are [GetClientConfig] and [GetServerConfig].
package config
