// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "errors"

// Sentinel errors returned by repositories and the sync queue. Callers match
// them with [errors.Is].
var (
	// ErrEntityNotFound is returned when a lookup by id matches nothing.
	ErrEntityNotFound = errors.New("entity not found")

	// ErrVersionConflict is returned by the remote repository when the
	// incoming version is not exactly one above the stored one, or when a
	// delete names a version the row no longer has.
	ErrVersionConflict = errors.New("entity version conflict")

	// ErrQueueNotInitialized is returned by every queue operation until
	// crash recovery has run through Queue.Initialize.
	ErrQueueNotInitialized = errors.New("sync queue is not initialized")

	// ErrQueueEntryNotFound is returned when a queue row addressed by id
	// does not exist anymore.
	ErrQueueEntryNotFound = errors.New("sync queue entry not found")

	// ErrInvalidEntity is returned when an entity cannot be stored because
	// its id is empty or its payload is not valid JSON.
	ErrInvalidEntity = errors.New("invalid entity")
)

// Low-level database operation errors. Repository methods wrap the driver
// error with one of these.
var (
	ErrBuildingSQLQuery     = errors.New("error building sql query")
	ErrExecutingQuery       = errors.New("error executing sql query")
	ErrBeginningTransaction = errors.New("failed to begin transaction")
	ErrCommitingTransaction = errors.New("failed to commit transaction")
	ErrExecutingStatement   = errors.New("failed to execute statement")
	ErrScanningRow          = errors.New("failed to scan row")
	ErrScanningRows         = errors.New("failed to scan rows")
	ErrEncodingPayload      = errors.New("failed to encode payload")
	ErrDecodingPayload      = errors.New("failed to decode payload")
)
