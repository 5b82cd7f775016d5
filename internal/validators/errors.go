// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidID           = errors.New("invalid entity id")
	ErrInvalidVersion      = errors.New("invalid version")
	ErrInvalidEntityType   = errors.New("invalid entity type")
	ErrEmptyPayload        = errors.New("payload is required")
	ErrInvalidCategoryKind = errors.New("invalid category kind")
	ErrInvalidCategoryName = errors.New("invalid category name")
	ErrEmptyNames          = errors.New("names list cannot be empty")
	ErrDuplicateName       = errors.New("names list contains duplicates")
	ErrInvalidNoteKey      = errors.New("invalid note key")
)
