// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/go-budget-sync/models"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the entity id.
	FieldID = "id"

	// FieldVersion targets the version an incoming write wants to reach.
	FieldVersion = "version"

	// FieldExpectedVersion targets the version a delete expects. Zero is
	// allowed there.
	FieldExpectedVersion = "expected_version"

	// FieldEntityType targets the versioned entity family.
	FieldEntityType = "entity_type"

	// FieldPayload targets the JSON document of an entity.
	FieldPayload = "payload"

	FieldCategoryKind  = "category_kind"
	FieldCategoryName  = "category_name"
	FieldCategoryNames = "category_names"

	FieldNoteKey = "note_key"
)

// maxNameLength bounds category names and note keys.
const maxNameLength = 200

// EntityValidator checks what clients send to the remote server.
type EntityValidator struct{}

func NewEntityValidator() Validator {
	return &EntityValidator{}
}

func (v *EntityValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.RemoteEntity:
		return v.validateRemoteEntity(ctx, value, fields...)
	case *models.RemoteEntity:
		return v.validateRemoteEntity(ctx, *value, fields...)

	case models.EntityType:
		return validateEntityType(value)

	case models.AddCategoryRequest:
		return v.validateCategory(ctx, value.Kind, value.Name, nil, fields...)
	case *models.AddCategoryRequest:
		return v.validateCategory(ctx, value.Kind, value.Name, nil, fields...)

	case models.CategoryOp:
		return v.validateCategory(ctx, value.Kind, value.Name, value.Names, fields...)
	case *models.CategoryOp:
		return v.validateCategory(ctx, value.Kind, value.Name, value.Names, fields...)

	case models.ActivityNote:
		return v.validateNote(ctx, value, fields...)
	case *models.ActivityNote:
		return v.validateNote(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *EntityValidator) validateRemoteEntity(_ context.Context, entity models.RemoteEntity, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEntityType, FieldID, FieldVersion, FieldPayload}
	}

	for _, f := range fields {
		switch f {
		case FieldEntityType:
			if err := validateEntityType(entity.Type); err != nil {
				return err
			}
		case FieldID:
			if !isValidName(entity.ID) {
				return ErrInvalidID
			}
		case FieldVersion:
			if entity.Version < 1 {
				return ErrInvalidVersion
			}
		case FieldExpectedVersion:
			if entity.Version < 0 {
				return ErrInvalidVersion
			}
		case FieldPayload:
			if len(entity.Payload) == 0 || !json.Valid(entity.Payload) {
				return ErrEmptyPayload
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateCategory(_ context.Context, kind models.CategoryKind, name string, names []string, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldCategoryKind, FieldCategoryName}
	}

	for _, f := range fields {
		switch f {
		case FieldCategoryKind:
			if kind.Validate() != nil {
				return ErrInvalidCategoryKind
			}
		case FieldCategoryName:
			if !isValidName(name) {
				return ErrInvalidCategoryName
			}
		case FieldCategoryNames:
			if len(names) == 0 {
				return ErrEmptyNames
			}
			seen := make(map[string]struct{}, len(names))
			for _, n := range names {
				if !isValidName(n) {
					return ErrInvalidCategoryName
				}
				if _, ok := seen[n]; ok {
					return ErrDuplicateName
				}
				seen[n] = struct{}{}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *EntityValidator) validateNote(_ context.Context, note models.ActivityNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldNoteKey}
	}

	for _, f := range fields {
		switch f {
		case FieldNoteKey:
			if !isValidName(note.Key) {
				return ErrInvalidNoteKey
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func validateEntityType(t models.EntityType) error {
	if !t.Versioned() {
		return ErrInvalidEntityType
	}
	return nil
}

func isValidName(s string) bool {
	return strings.TrimSpace(s) != "" && len(s) <= maxNameLength
}
