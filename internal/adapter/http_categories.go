// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-budget-sync/models"
)

type httpCategoryStore struct {
	conn *httpConnection
}

func (h *httpCategoryStore) GetAll(ctx context.Context) (models.Categories, error) {
	categories := make(models.Categories)

	resp, err := h.conn.request(ctx).SetResult(&categories).Get(categoriesPath)
	if err != nil {
		return nil, fmt.Errorf("list categories request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return categories, nil
}

func (h *httpCategoryStore) Add(ctx context.Context, kind models.CategoryKind, name string) error {
	resp, err := h.conn.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(models.AddCategoryRequest{Kind: kind, Name: name}).
		Post(categoriesPath)
	if err != nil {
		return fmt.Errorf("add category request: %w", err)
	}

	return mapHTTPError(resp)
}

func (h *httpCategoryStore) Remove(ctx context.Context, kind models.CategoryKind, name string) (bool, error) {
	resp, err := h.conn.request(ctx).
		SetPathParams(map[string]string{"kind": string(kind), "name": name}).
		Delete(categoryPath)
	if err != nil {
		return false, fmt.Errorf("remove category request: %w", err)
	}
	if resp.StatusCode() == http.StatusNotFound {
		return false, nil
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	return true, nil
}

func (h *httpCategoryStore) Reorder(ctx context.Context, kind models.CategoryKind, names []string) error {
	resp, err := h.conn.request(ctx).
		SetPathParam("kind", string(kind)).
		SetHeader("Content-Type", "application/json").
		SetBody(models.ReorderCategoriesRequest{Names: names}).
		Put(orderPath)
	if err != nil {
		return fmt.Errorf("reorder categories request: %w", err)
	}

	return mapHTTPError(resp)
}
