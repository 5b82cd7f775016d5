// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

type categoryService struct {
	categories store.CategoryRepository
	logger     *logger.Logger
}

func NewCategoryService(categories store.CategoryRepository, logger *logger.Logger) CategoryService {
	return &categoryService{categories: categories, logger: logger}
}

func (s *categoryService) GetAll(ctx context.Context) (models.Categories, error) {
	return s.categories.GetAll(ctx)
}

// Add is idempotent: adding a present name changes nothing.
func (s *categoryService) Add(ctx context.Context, kind models.CategoryKind, name string) error {
	if err := s.categories.Add(ctx, kind, strings.TrimSpace(name)); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Str("name", name).Msg("adding category failed")
		return fmt.Errorf("adding category failed: %w", err)
	}
	return nil
}

func (s *categoryService) Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	return s.categories.Remove(ctx, kind, name)
}

func (s *categoryService) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	if err := s.categories.Reorder(ctx, kind, names); err != nil {
		logger.FromContext(ctx).Err(err).Str("kind", string(kind)).Strs("names", names).Msg("reordering categories failed")
		return fmt.Errorf("reordering categories failed: %w", err)
	}
	return nil
}

type noteService struct {
	notes  store.NoteRepository
	now    func() time.Time
	logger *logger.Logger
}

func NewNoteService(notes store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		notes:  notes,
		now:    func() time.Time { return time.Now().UTC() },
		logger: logger,
	}
}

func (s *noteService) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	return s.notes.GetAll(ctx)
}

func (s *noteService) Set(ctx context.Context, note models.ActivityNote) error {
	if note.UpdatedAt.IsZero() {
		note.UpdatedAt = s.now()
	}
	if err := s.notes.Set(ctx, note); err != nil {
		logger.FromContext(ctx).Err(err).Str("key", note.Key).Msg("saving note failed")
		return fmt.Errorf("saving note failed: %w", err)
	}
	return nil
}

func (s *noteService) Delete(ctx context.Context, key string) (bool, error) {
	return s.notes.Delete(ctx, key)
}
