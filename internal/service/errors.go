// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	ErrUnknownEntityType   = errors.New("unknown entity type")
	ErrEntityIDMismatch    = errors.New("entity id does not match the path")
	ErrNoSyncTarget        = errors.New("no sync target registered for entity type")
	ErrChangeNotInConflict = errors.New("pending change is not in conflict")
	ErrUnknownCategoryOp   = errors.New("unknown category operation")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
)
