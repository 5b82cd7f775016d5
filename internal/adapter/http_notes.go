// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-sync/models"
)

type httpNoteStore struct {
	conn *httpConnection
}

func (h *httpNoteStore) GetAll(ctx context.Context) ([]models.ActivityNote, error) {
	var notes []models.ActivityNote

	resp, err := h.conn.request(ctx).SetResult(&notes).Get(notesPath)
	if err != nil {
		return nil, fmt.Errorf("list notes request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return notes, nil
}

func (h *httpNoteStore) Set(ctx context.Context, note models.ActivityNote) error {
	resp, err := h.conn.request(ctx).
		SetPathParam("key", note.Key).
		SetHeader("Content-Type", "application/json").
		SetBody(note).
		Put(notePath)
	if err != nil {
		return fmt.Errorf("set note request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpNoteStore) Delete(ctx context.Context, key string) (bool, error) {
	resp, err := h.conn.request(ctx).
		SetPathParam("key", key).
		Delete(notePath)
	if err != nil {
		return false, fmt.Errorf("delete note request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return true, nil
}
