// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Operation is the kind of remote write a pending change represents.
type Operation string

const (
	OperationCreate Operation = "CREATE"
	OperationUpdate Operation = "UPDATE"
	OperationDelete Operation = "DELETE"
)

// ChangeStatus is the lifecycle state of a queued change.
type ChangeStatus string

const (
	StatusPending    ChangeStatus = "PENDING"
	StatusProcessing ChangeStatus = "PROCESSING"
	StatusConflict   ChangeStatus = "CONFLICT"
	StatusFailed     ChangeStatus = "FAILED"
)

// PendingChange is one durable row of the sync queue.
//
// For CREATE and UPDATE rows Payload is the full entity snapshot and
// LocalVersion is the version the remote must end up at. For DELETE rows
// LocalVersion is the version the remote is expected to hold.
type PendingChange struct {
	ID           string          `json:"id"`
	EntityType   EntityType      `json:"entity_type"`
	EntityID     string          `json:"entity_id"`
	Operation    Operation       `json:"operation"`
	Payload      json.RawMessage `json:"payload,omitempty"`
	LocalVersion int64           `json:"local_version"`
	CreatedAt    time.Time       `json:"created_at"`
	RetryCount   int             `json:"retry_count"`
	LastError    *string         `json:"last_error,omitempty"`
	Status       ChangeStatus    `json:"status"`
}

// SyncConflict is emitted when a change needs an external decision. Remote
// is nil when the entity does not exist remotely.
type SyncConflict struct {
	ChangeID   string          `json:"change_id"`
	EntityType EntityType      `json:"entity_type"`
	EntityID   string          `json:"entity_id"`
	Operation  Operation       `json:"operation"`
	Local      json.RawMessage `json:"local,omitempty"`
	Remote     json.RawMessage `json:"remote,omitempty"`
	Reason     string          `json:"reason,omitempty"`
}

// ConflictStrategy selects how version conflicts are resolved.
type ConflictStrategy string

const (
	ServerWins              ConflictStrategy = "server_wins"
	ClientWins              ConflictStrategy = "client_wins"
	LastWriteWins           ConflictStrategy = "last_write_wins"
	AskUser                 ConflictStrategy = "ask_user"
	DefaultConflictStrategy                  = LastWriteWins
)

// ParseConflictStrategy accepts the snake_case names above, case-insensitive,
// with dashes allowed in place of underscores. Empty input gives the default.
func ParseConflictStrategy(s string) (ConflictStrategy, error) {
	norm := strings.ReplaceAll(strings.ToLower(strings.TrimSpace(s)), "-", "_")
	switch ConflictStrategy(norm) {
	case "":
		return DefaultConflictStrategy, nil
	case ServerWins, ClientWins, LastWriteWins, AskUser:
		return ConflictStrategy(norm), nil
	default:
		return "", fmt.Errorf("unknown conflict strategy %q", s)
	}
}

// ConnectionStatus is the state of the link to the remote store.
type ConnectionStatus string

const (
	StatusConnected    ConnectionStatus = "CONNECTED"
	StatusReconnecting ConnectionStatus = "RECONNECTING"
	StatusOffline      ConnectionStatus = "OFFLINE"
)

// ConnectionState is a snapshot of the monitor.
type ConnectionState struct {
	Status            ConnectionStatus `json:"status"`
	ReconnectAttempts int              `json:"reconnect_attempts"`
}

// Sync metadata keys.
const (
	MetaLastSyncAt     = "last_sync_at"
	MetaLastFullSyncAt = "last_full_sync_at"
)
