// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-budget-sync/internal/utils"
)

func TestNotFoundAndMethodNotAllowed(t *testing.T) {
	router := chi.NewRouter()
	router.NotFound(notFound)
	router.MethodNotAllowed(methodNotAllowed)
	router.Get("/api/v1/notes", func(w http.ResponseWriter, r *http.Request) {})

	tests := []struct {
		name       string
		method     string
		path       string
		wantStatus int
	}{
		{"registered", http.MethodGet, "/api/v1/notes", http.StatusOK},
		{"unknown route", http.MethodGet, "/api/v1/wallets", http.StatusNotFound},
		{"wrong method", http.MethodPost, "/api/v1/notes", http.StatusMethodNotAllowed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			router.ServeHTTP(rr, httptest.NewRequest(tt.method, tt.path, nil))

			assert.Equal(t, tt.wantStatus, rr.Code)
			if tt.wantStatus == http.StatusOK {
				return
			}

			var body utils.ErrorResponse
			require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &body))
			assert.Contains(t, body.Error, tt.path)
		})
	}
}
