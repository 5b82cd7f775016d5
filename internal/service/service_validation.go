// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/MKhiriev/go-budget-sync/internal/validators"
	"github.com/MKhiriev/go-budget-sync/models"
)

// EntityValidationService checks entity requests before they reach the
// wrapped service. Validation failures wrap [ErrInvalidDataProvided].
type EntityValidationService struct {
	inner     EntityService
	validator validators.Validator
}

func NewEntityValidationService() EntityServiceWrapper {
	return &EntityValidationService{validator: validators.NewEntityValidator()}
}

func (v *EntityValidationService) Wrap(inner EntityService) EntityService {
	v.inner = inner
	return v
}

func (v *EntityValidationService) List(ctx context.Context, entityType models.EntityType) ([]json.RawMessage, error) {
	if err := v.validate(ctx, entityType); err != nil {
		return nil, err
	}
	return v.inner.List(ctx, entityType)
}

func (v *EntityValidationService) Get(ctx context.Context, entityType models.EntityType, id string) (json.RawMessage, error) {
	if err := v.validate(ctx, models.RemoteEntity{Type: entityType, ID: id}, validators.FieldEntityType, validators.FieldID); err != nil {
		return nil, err
	}
	return v.inner.Get(ctx, entityType, id)
}

func (v *EntityValidationService) Save(ctx context.Context, entityType models.EntityType, id string, document json.RawMessage) (json.RawMessage, error) {
	// the version travels inside the document
	var meta models.Meta
	if err := json.Unmarshal(document, &meta); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}

	entity := models.RemoteEntity{Type: entityType, ID: id, Version: meta.Version, Payload: document}
	if err := v.validate(ctx, entity); err != nil {
		return nil, err
	}
	return v.inner.Save(ctx, entityType, id, document)
}

func (v *EntityValidationService) Delete(ctx context.Context, entityType models.EntityType, id string, expectedVersion int64) (bool, error) {
	entity := models.RemoteEntity{Type: entityType, ID: id, Version: expectedVersion}
	if err := v.validate(ctx, entity, validators.FieldEntityType, validators.FieldID, validators.FieldExpectedVersion); err != nil {
		return false, err
	}
	return v.inner.Delete(ctx, entityType, id, expectedVersion)
}

func (v *EntityValidationService) Version(ctx context.Context, entityType models.EntityType, id string) (int64, error) {
	if err := v.validate(ctx, models.RemoteEntity{Type: entityType, ID: id}, validators.FieldEntityType, validators.FieldID); err != nil {
		return 0, err
	}
	return v.inner.Version(ctx, entityType, id)
}

func (v *EntityValidationService) Ping(ctx context.Context) error {
	return v.inner.Ping(ctx)
}

func (v *EntityValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// CategoryValidationService checks category kinds and names.
type CategoryValidationService struct {
	inner     CategoryService
	validator validators.Validator
}

func NewCategoryValidationService() CategoryServiceWrapper {
	return &CategoryValidationService{validator: validators.NewEntityValidator()}
}

func (v *CategoryValidationService) Wrap(inner CategoryService) CategoryService {
	v.inner = inner
	return v
}

func (v *CategoryValidationService) GetAll(ctx context.Context) (models.Categories, error) {
	return v.inner.GetAll(ctx)
}

func (v *CategoryValidationService) Add(ctx context.Context, kind models.CategoryKind, name string) error {
	if err := v.validate(ctx, models.AddCategoryRequest{Kind: kind, Name: name}); err != nil {
		return err
	}
	return v.inner.Add(ctx, kind, name)
}

func (v *CategoryValidationService) Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	if err := v.validate(ctx, models.AddCategoryRequest{Kind: kind, Name: name}); err != nil {
		return false, err
	}
	return v.inner.Remove(ctx, kind, name)
}

func (v *CategoryValidationService) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	op := models.CategoryOp{Action: models.CategoryReorder, Kind: kind, Names: names}
	if err := v.validate(ctx, op, validators.FieldCategoryKind, validators.FieldCategoryNames); err != nil {
		return err
	}
	return v.inner.Reorder(ctx, kind, names)
}

func (v *CategoryValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}

// NoteValidationService checks note keys.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{validator: validators.NewEntityValidator()}
}

func (v *NoteValidationService) Wrap(inner NoteService) NoteService {
	v.inner = inner
	return v
}

func (v *NoteValidationService) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	return v.inner.GetAll(ctx)
}

func (v *NoteValidationService) Set(ctx context.Context, note models.ActivityNote) error {
	if err := v.validate(ctx, note); err != nil {
		return err
	}
	return v.inner.Set(ctx, note)
}

func (v *NoteValidationService) Delete(ctx context.Context, key string) (bool, error) {
	if err := v.validate(ctx, models.ActivityNote{Key: key}); err != nil {
		return false, err
	}
	return v.inner.Delete(ctx, key)
}

func (v *NoteValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
	}
	return nil
}
