// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/store"
)

type Handler struct {
	services *service.Services

	// classifier turns database failures into 503 or 422 responses.
	classifier store.ErrorClassificator

	logger *logger.Logger
}

func NewHandler(services *service.Services, classifier store.ErrorClassificator, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:   services,
		classifier: classifier,
		logger:     logger,
	}
}
