// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"github.com/MKhiriev/go-budget-sync/internal/adapter"
	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/models"
)

// ClientServices is everything the client host talks to.
type ClientServices struct {
	Transactions     EntityRepository[*models.Transaction]
	PlannedTemplates EntityRepository[*models.PlannedTemplate]
	Sheets           EntityRepository[*models.Sheet]
	Categories       CategoryRepository
	Notes            NoteRepository

	Monitor ConnectionMonitor
	Engine  SyncEngine
}

func NewClientServices(storages *store.ClientStorages, adapters *adapter.Adapters, cfg *config.ClientConfig, log *logger.Logger) *ClientServices {
	device := cfg.App.DeviceName

	transactions := NewCachingRepository(models.EntityTransaction, models.NewTransaction,
		storages.Transactions, adapters.Transactions, storages.Queue, device, log)
	plannedTemplates := NewCachingRepository(models.EntityPlannedTemplate, models.NewPlannedTemplate,
		storages.PlannedTemplates, adapters.PlannedTemplates, storages.Queue, device, log)
	sheets := NewCachingRepository(models.EntitySheet, models.NewSheet,
		storages.Sheets, adapters.Sheets, storages.Queue, device, log)
	categories := NewCachingCategoryRepository(storages.Categories, adapters.Categories, storages.Queue, log)
	notes := NewCachingNoteRepository(storages.Notes, adapters.Notes, storages.Queue, log)

	monitor := NewConnectionMonitor(adapters.Connection, cfg.Monitor, log)
	engine := NewSyncEngine(storages.Queue, monitor, cfg.Sync,
		[]SyncTarget{transactions, plannedTemplates, sheets, categories, notes}, log)

	return &ClientServices{
		Transactions:     transactions,
		PlannedTemplates: plannedTemplates,
		Sheets:           sheets,
		Categories:       categories,
		Notes:            notes,
		Monitor:          monitor,
		Engine:           engine,
	}
}

// Refreshables lists the repositories in the order the cache is seeded:
// sheets before the transactions that reference them.
func (s *ClientServices) Refreshables() []Refreshable {
	return []Refreshable{s.Sheets, s.Transactions, s.PlannedTemplates, s.Categories, s.Notes}
}
