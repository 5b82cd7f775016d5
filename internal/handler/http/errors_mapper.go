// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/store"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
)

var errorStatusMap = map[error]int{
	ErrInvalidJSON:    http.StatusBadRequest,
	ErrInvalidVersion: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrUnknownEntityType:       http.StatusBadRequest,
	service.ErrEntityIDMismatch:        http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	store.ErrEntityNotFound:  http.StatusNotFound,
	store.ErrVersionConflict: http.StatusConflict,
	store.ErrInvalidEntity:   http.StatusBadRequest,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError answers with the status mapped from err. Unmapped failures go
// through the database classifier: retryable ones become 503 so clients
// try again later, rejected input becomes 422.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	status := statusFromError(err)
	if status == http.StatusInternalServerError && h.classifier != nil {
		switch h.classifier.Classify(err) {
		case store.Retryable:
			status = http.StatusServiceUnavailable
		case store.Rejected:
			status = http.StatusUnprocessableEntity
		}
	}

	log := logger.FromRequest(r)
	message := err.Error()
	if status >= http.StatusInternalServerError {
		log.Err(err).Int("status", status).Msg("request failed")
		message = http.StatusText(status)
	} else {
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	utils.WriteError(w, message, status)
}
