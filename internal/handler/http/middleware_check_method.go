// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"

	"github.com/MKhiriev/go-budget-sync/internal/utils"
)

// notFound and methodNotAllowed replace chi's plain-text answers so every
// error body is an [utils.ErrorResponse].
func notFound(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "route "+r.URL.Path+" not found", http.StatusNotFound)
}

func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	utils.WriteError(w, "method "+r.Method+" is not allowed on "+r.URL.Path, http.StatusMethodNotAllowed)
}
