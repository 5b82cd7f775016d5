// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/mock"
	"github.com/MKhiriev/go-budget-sync/internal/service"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

// ---- Helpers ----

func newHandlerWithAuthService(auth service.AuthService) *Handler {
	return &Handler{
		logger:   logger.Nop(),
		services: &service.Services{Auth: auth},
	}
}

// executeAuth прогоняет запрос через auth и возвращает device из контекста next.
func executeAuth(h *Handler, authHeader string) (*httptest.ResponseRecorder, any) {
	var device any
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		device = r.Context().Value(utils.DeviceIDCtxKey)
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/v1/notes", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	rr := httptest.NewRecorder()
	h.auth(next).ServeHTTP(rr, req)

	return rr, device
}

// ---- auth middleware table test ----

type parseResult struct {
	token models.Token
	err   error
}

func TestAuth_Middleware_TableTest(t *testing.T) {
	tests := []struct {
		name           string
		authHeader     string
		parse          *parseResult
		expectedStatus int
		wantDevice     any
	}{
		{
			name:           "empty Authorization header → 401",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "no scheme → 401",
			authHeader:     "BearerTokenWithoutSpace",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:           "Basic scheme → 401",
			authHeader:     "Basic dXNlcjpwYXNz",
			expectedStatus: http.StatusUnauthorized,
		},
		{
			name:       "valid token → device in context",
			authHeader: "Bearer valid-token",
			parse: &parseResult{
				token: models.Token{DeviceID: "laptop"},
			},
			expectedStatus: http.StatusOK,
			wantDevice:     "laptop",
		},
		{
			name:       "expired token → 401",
			authHeader: "Bearer expired-token",
			parse: &parseResult{
				err: service.ErrTokenIsExpiredOrInvalid,
			},
			expectedStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			auth := mock.NewMockAuthService(ctrl)
			auth.EXPECT().Enabled().Return(true)
			if tt.parse != nil {
				auth.EXPECT().ParseToken(gomock.Any(), gomock.Any()).Return(tt.parse.token, tt.parse.err)
			}
			// иначе ParseToken не должен вызываться: header пустой или невалидный

			rr, device := executeAuth(newHandlerWithAuthService(auth), tt.authHeader)

			assert.Equal(t, tt.expectedStatus, rr.Code)
			assert.Equal(t, tt.wantDevice, device)
		})
	}
}

func TestAuth_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Enabled().Return(false)

	rr, device := executeAuth(newHandlerWithAuthService(auth), "")

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Nil(t, device)
}

func TestAuth_ErrorResponseBody(t *testing.T) {
	ctrl := gomock.NewController(t)
	auth := mock.NewMockAuthService(ctrl)
	auth.EXPECT().Enabled().Return(true)

	rr, _ := executeAuth(newHandlerWithAuthService(auth), "")

	assert.JSONEq(t, `{"error":"empty `+"`Authorization`"+` header"}`, rr.Body.String())
}
