// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// health answers 200 while the database is reachable and 503 otherwise.
// Clients use it as their connectivity probe.
func (h *Handler) health(w http.ResponseWriter, r *http.Request) {
	now := time.Now().UTC()

	if err := h.services.Entities.Ping(r.Context()); err != nil {
		logger.FromRequest(r).Err(err).Msg("health check: database unreachable")
		_, _ = utils.WriteJSON(w, models.HealthResponse{Status: "unavailable", Time: now}, http.StatusServiceUnavailable)
		return
	}

	_, _ = utils.WriteJSON(w, models.HealthResponse{Status: "ok", Time: now}, http.StatusOK)
}
