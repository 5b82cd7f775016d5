// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := h.services.Categories.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if categories == nil {
		categories = models.Categories{}
	}

	_, _ = utils.WriteJSON(w, categories, http.StatusOK)
}

func (h *Handler) addCategory(w http.ResponseWriter, r *http.Request) {
	var req models.AddCategoryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	if err := h.services.Categories.Add(r.Context(), req.Kind, req.Name); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) removeCategory(w http.ResponseWriter, r *http.Request) {
	kind, name := models.CategoryKind(chi.URLParam(r, "kind")), chi.URLParam(r, "name")

	found, err := h.services.Categories.Remove(r.Context(), kind, name)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		utils.WriteError(w, fmt.Sprintf("category %s/%s not found", kind, name), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) reorderCategories(w http.ResponseWriter, r *http.Request) {
	var req models.ReorderCategoriesRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}

	kind := models.CategoryKind(chi.URLParam(r, "kind"))
	if err := h.services.Categories.Reorder(r.Context(), kind, req.Names); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	notes, err := h.services.Notes.GetAll(r.Context())
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if notes == nil {
		notes = []models.ActivityNote{}
	}

	_, _ = utils.WriteJSON(w, notes, http.StatusOK)
}

// setNote takes the key from the path; a key in the body is ignored.
func (h *Handler) setNote(w http.ResponseWriter, r *http.Request) {
	var note models.ActivityNote
	if err := json.NewDecoder(r.Body).Decode(&note); err != nil {
		h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidJSON, err))
		return
	}
	note.Key = chi.URLParam(r, "key")

	if err := h.services.Notes.Set(r.Context(), note); err != nil {
		h.writeError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) deleteNote(w http.ResponseWriter, r *http.Request) {
	key := chi.URLParam(r, "key")

	found, err := h.services.Notes.Delete(r.Context(), key)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	if !found {
		utils.WriteError(w, fmt.Sprintf("note %s not found", key), http.StatusNotFound)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
