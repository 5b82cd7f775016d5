// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// maxDocumentSize bounds the body of an entity write.
const maxDocumentSize = 1 << 20

func entityTypeParam(r *http.Request) models.EntityType {
	return models.EntityType(chi.URLParam(r, "type"))
}

func (h *Handler) listEntities(w http.ResponseWriter, r *http.Request) {
	documents, err := h.services.Entities.List(r.Context(), entityTypeParam(r))
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if documents == nil {
		documents = []json.RawMessage{}
	}

	_, _ = utils.WriteJSON(w, documents, http.StatusOK)
}

func (h *Handler) getEntity(w http.ResponseWriter, r *http.Request) {
	document, err := h.services.Entities.Get(r.Context(), entityTypeParam(r), chi.URLParam(r, "id"))
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, document, http.StatusOK)
}

// saveEntity stores the document if its version is one above the stored
// one and answers with the document as stored.
func (h *Handler) saveEntity(w http.ResponseWriter, r *http.Request) {
	body, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxDocumentSize))
	if err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	if !json.Valid(body) {
		h.writeError(w, r, ErrInvalidJSON)
		return
	}

	document, err := h.services.Entities.Save(r.Context(), entityTypeParam(r), chi.URLParam(r, "id"), body)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, document, http.StatusOK)
}

// deleteEntity expects the stored version in the "version" query
// parameter. An absent entity answers 404 so clients can tell it was
// already gone.
func (h *Handler) deleteEntity(w http.ResponseWriter, r *http.Request) {
	expectedVersion, err := strconv.ParseInt(r.URL.Query().Get("version"), 10, 64)
	if err != nil || expectedVersion < 0 {
		h.writeError(w, r, ErrInvalidVersion)
		return
	}

	entityType, id := entityTypeParam(r), chi.URLParam(r, "id")
	found, err := h.services.Entities.Delete(r.Context(), entityType, id, expectedVersion)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		utils.WriteError(w, fmt.Sprintf("%s %s not found", entityType, id), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) entityVersion(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	version, err := h.services.Entities.Version(r.Context(), entityTypeParam(r), id)
	if err != nil {
		h.writeError(w, r, err)
		return
	}

	_, _ = utils.WriteJSON(w, models.VersionResponse{ID: id, Version: version}, http.StatusOK)
}
