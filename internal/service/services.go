// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
)

// Services is the business layer of the reference server.
type Services struct {
	Entities   EntityService
	Categories CategoryService
	Notes      NoteService
	Auth       AuthService
}

func NewServices(storages *store.Storages, cfg *config.ServerConfig, logger *logger.Logger) *Services {
	return &Services{
		Entities:   NewEntityValidationService().Wrap(NewEntityService(storages.Entities, logger)),
		Categories: NewCategoryValidationService().Wrap(NewCategoryService(storages.Categories, logger)),
		Notes:      NewNoteValidationService().Wrap(NewNoteService(storages.Notes, logger)),
		Auth:       NewAuthService(cfg, logger),
	}
}
