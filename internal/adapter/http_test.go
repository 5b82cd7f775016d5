// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/models"
)

// newTestAdapters создаёт адаптеры, направленные на тестовый сервер
func newTestAdapters(t *testing.T, serverURL string) *Adapters {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 2 * time.Second, Token: "tkn"}

	a, err := NewHTTPAdapters(cfg, logger.Nop())
	require.NoError(t, err)
	return a
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, v any) {
	t.Helper()
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	require.NoError(t, json.NewEncoder(w).Encode(v))
}

func sampleTransaction(version int64) *models.Transaction {
	created := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	return &models.Transaction{
		Meta: models.Meta{
			ID:         "tx-1",
			Version:    version,
			CreatedAt:  &created,
			ModifiedAt: &created,
			ModifiedBy: "laptop",
		},
		SheetID:  "sheet-1",
		Date:     created,
		Amount:   decimal.RequireFromString("100.50"),
		Currency: "EUR",
		Kind:     models.CategoryExpense,
		Category: "Fuel",
	}
}

// ── NewHTTPAdapters ──────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		raw     string
		want    string
		wantErr bool
	}{
		{raw: "http://localhost:8080/", want: "http://localhost:8080"},
		{raw: "  localhost:8080 ", want: "http://localhost:8080"},
		{raw: "https://budget.example.com/base/", want: "https://budget.example.com/base"},
		{raw: "", wantErr: true},
		{raw: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.raw)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPAdapters_InvalidAddress(t *testing.T) {
	_, err := NewHTTPAdapters(config.ClientAdapter{}, logger.Nop())
	require.Error(t, err)
}

// ── Entities ─────────────────────────────────────────────────────────────────

func TestRemoteStore_GetAll(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/api/v1/entities/transaction", r.URL.Path)
		assert.Equal(t, "Bearer tkn", r.Header.Get("Authorization"))
		writeJSON(t, w, http.StatusOK, []*models.Transaction{sampleTransaction(1), sampleTransaction(2)})
	}))
	defer srv.Close()

	got, err := newTestAdapters(t, srv.URL).Transactions.GetAll(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "tx-1", got[0].ID)
	assert.True(t, decimal.RequireFromString("100.5").Equal(got[1].Amount))
	assert.Equal(t, int64(2), got[1].Version)
}

func TestRemoteStore_GetAll_MalformedBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"not":"a list"}`))
	}))
	defer srv.Close()

	_, err := newTestAdapters(t, srv.URL).Sheets.GetAll(context.Background())
	assert.ErrorIs(t, err, ErrMalformedResponse)
}

func TestRemoteStore_GetByID_NotFound(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/entities/sheet/missing", r.URL.Path)
		writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "entity not found"})
	}))
	defer srv.Close()

	_, err := newTestAdapters(t, srv.URL).Sheets.GetByID(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestRemoteStore_Save(t *testing.T) {
	tx := sampleTransaction(3)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/v1/entities/transaction/tx-1", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		var sent models.Transaction
		require.NoError(t, json.Unmarshal(body, &sent))
		assert.Equal(t, int64(3), sent.Version)
		assert.Equal(t, "Fuel", sent.Category)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write(body)
	}))
	defer srv.Close()

	saved, err := newTestAdapters(t, srv.URL).Transactions.Save(context.Background(), tx)
	require.NoError(t, err)
	assert.Equal(t, tx.ID, saved.ID)
	assert.Equal(t, tx.Version, saved.Version)
	assert.Equal(t, tx.CreatedAt.UTC(), saved.CreatedAt.UTC())
}

func TestRemoteStore_Save_Conflict(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(t, w, http.StatusConflict, map[string]string{"error": "entity version conflict"})
	}))
	defer srv.Close()

	_, err := newTestAdapters(t, srv.URL).Transactions.Save(context.Background(), sampleTransaction(2))
	assert.ErrorIs(t, err, ErrVersionConflict)
}

func TestRemoteStore_Delete(t *testing.T) {
	tests := []struct {
		name      string
		status    int
		wantFound bool
		wantErr   error
	}{
		{name: "deleted", status: http.StatusNoContent, wantFound: true},
		{name: "already gone", status: http.StatusNotFound, wantFound: false},
		{name: "stale version", status: http.StatusConflict, wantErr: ErrVersionConflict},
		{name: "forbidden", status: http.StatusForbidden, wantErr: ErrForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				assert.Equal(t, http.MethodDelete, r.Method)
				assert.Equal(t, "/api/v1/entities/planned_template/p-1", r.URL.Path)
				assert.Equal(t, "4", r.URL.Query().Get("version"))
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			found, err := newTestAdapters(t, srv.URL).PlannedTemplates.Delete(context.Background(), "p-1", 4)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantFound, found)
		})
	}
}

func TestRemoteStore_GetVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v1/entities/transaction/tx-1/version":
			writeJSON(t, w, http.StatusOK, models.VersionResponse{ID: "tx-1", Version: 7})
		default:
			writeJSON(t, w, http.StatusNotFound, map[string]string{"error": "entity not found"})
		}
	}))
	defer srv.Close()

	store := newTestAdapters(t, srv.URL).Transactions

	version, ok, err := store.GetVersion(context.Background(), "tx-1")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(7), version)

	_, ok, err = store.GetVersion(context.Background(), "tx-2")
	require.NoError(t, err)
	assert.False(t, ok)
}

// ── Categories ───────────────────────────────────────────────────────────────

func TestCategoryStore(t *testing.T) {
	var added models.AddCategoryRequest
	var reordered models.ReorderCategoriesRequest

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet && r.URL.Path == "/api/v1/categories":
			writeJSON(t, w, http.StatusOK, models.Categories{
				models.CategoryExpense: {"Fuel", "Food"},
				models.CategoryIncome:  {"Salary"},
			})
		case r.Method == http.MethodPost && r.URL.Path == "/api/v1/categories":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&added))
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/categories/expense/Fuel":
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete:
			w.WriteHeader(http.StatusNotFound)
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/categories/expense/order":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&reordered))
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusTeapot)
		}
	}))
	defer srv.Close()

	store := newTestAdapters(t, srv.URL).Categories
	ctx := context.Background()

	all, err := store.GetAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []string{"Fuel", "Food"}, all[models.CategoryExpense])
	assert.Equal(t, 3, all.Count())

	require.NoError(t, store.Add(ctx, models.CategoryIncome, "Bonus"))
	assert.Equal(t, models.AddCategoryRequest{Kind: models.CategoryIncome, Name: "Bonus"}, added)

	removed, err := store.Remove(ctx, models.CategoryExpense, "Fuel")
	require.NoError(t, err)
	assert.True(t, removed)

	removed, err = store.Remove(ctx, models.CategoryExpense, "Rent")
	require.NoError(t, err)
	assert.False(t, removed)

	require.NoError(t, store.Reorder(ctx, models.CategoryExpense, []string{"Food", "Fuel"}))
	assert.Equal(t, []string{"Food", "Fuel"}, reordered.Names)
}

// ── Notes ────────────────────────────────────────────────────────────────────

func TestNoteStore(t *testing.T) {
	updated := time.Date(2026, 4, 2, 8, 0, 0, 0, time.UTC)
	var stored models.ActivityNote

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodGet:
			writeJSON(t, w, http.StatusOK, []models.ActivityNote{{Key: "2026-04", Text: "moved flat", UpdatedAt: updated}})
		case r.Method == http.MethodPut && r.URL.Path == "/api/v1/notes/2026-04":
			require.NoError(t, json.NewDecoder(r.Body).Decode(&stored))
			w.WriteHeader(http.StatusNoContent)
		case r.Method == http.MethodDelete && r.URL.Path == "/api/v1/notes/2026-04":
			w.WriteHeader(http.StatusNoContent)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	store := newTestAdapters(t, srv.URL).Notes
	ctx := context.Background()

	notes, err := store.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, notes, 1)
	assert.Equal(t, "moved flat", notes[0].Text)
	assert.True(t, updated.Equal(notes[0].UpdatedAt))

	require.NoError(t, store.Set(ctx, models.ActivityNote{Key: "2026-04", Text: "new text", UpdatedAt: updated}))
	assert.Equal(t, "new text", stored.Text)

	deleted, err := store.Delete(ctx, "2026-04")
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = store.Delete(ctx, "2026-05")
	require.NoError(t, err)
	assert.False(t, deleted)
}

// ── Connection ───────────────────────────────────────────────────────────────

func TestConnection_HealthCheck(t *testing.T) {
	healthy := true
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/health", r.URL.Path)
		if !healthy {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		writeJSON(t, w, http.StatusOK, models.HealthResponse{Status: "ok"})
	}))
	defer srv.Close()

	conn := newTestAdapters(t, srv.URL).Connection
	assert.True(t, conn.HealthCheck(context.Background()))

	healthy = false
	assert.False(t, conn.HealthCheck(context.Background()))

	srv.Close()
	assert.False(t, conn.HealthCheck(context.Background()))
}

func TestConnection_Reconnect(t *testing.T) {
	status := http.StatusOK
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(status)
	}))
	defer srv.Close()

	conn := newTestAdapters(t, srv.URL).Connection
	require.NoError(t, conn.Reconnect(context.Background()))

	status = http.StatusBadGateway
	err := conn.Reconnect(context.Background())
	assert.ErrorIs(t, err, ErrUnhealthy)
	assert.ErrorIs(t, err, ErrBadGateway)
}

// TestConnection_NetworkErrorIsWrapped проверяет, что сетевые ошибки
// доходят до классификатора синхронизации без потери типа.
func TestConnection_NetworkErrorIsWrapped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	a := newTestAdapters(t, srv.URL)
	srv.Close()

	err := a.Connection.Reconnect(context.Background())
	require.Error(t, err)
	var urlErr *url.Error
	assert.True(t, errors.As(err, &urlErr))

	_, err = a.Transactions.Save(context.Background(), sampleTransaction(1))
	require.Error(t, err)
	assert.True(t, errors.As(err, &urlErr))
}

// ── mapHTTPError ─────────────────────────────────────────────────────────────

func TestMapHTTPError(t *testing.T) {
	tests := []struct {
		status int
		want   error
	}{
		{status: http.StatusBadRequest, want: ErrBadRequest},
		{status: http.StatusUnauthorized, want: ErrUnauthorized},
		{status: http.StatusForbidden, want: ErrForbidden},
		{status: http.StatusNotFound, want: ErrNotFound},
		{status: http.StatusConflict, want: ErrVersionConflict},
		{status: http.StatusUnprocessableEntity, want: ErrUnprocessable},
		{status: http.StatusInternalServerError, want: ErrInternalServerError},
		{status: http.StatusBadGateway, want: ErrBadGateway},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable},
		{status: http.StatusGatewayTimeout, want: ErrGatewayTimeout},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = w.Write([]byte("details"))
			}))
			defer srv.Close()

			err := newTestAdapters(t, srv.URL).Categories.Add(context.Background(), models.CategoryIncome, "x")
			assert.ErrorIs(t, err, tt.want)
			assert.Contains(t, err.Error(), "details")
		})
	}
}

func TestMapHTTPError_UnknownStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	err := newTestAdapters(t, srv.URL).Categories.Add(context.Background(), models.CategoryIncome, "x")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "http 418")
}
