// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync/atomic"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-budget-sync/internal/config"
	"github.com/MKhiriev/go-budget-sync/internal/logger"
	"github.com/MKhiriev/go-budget-sync/internal/utils"
	"github.com/MKhiriev/go-budget-sync/models"
)

const (
	healthPath     = "/api/v1/health"
	entitiesPath   = "/api/v1/entities/{type}"
	entityPath     = "/api/v1/entities/{type}/{id}"
	versionPath    = "/api/v1/entities/{type}/{id}/version"
	categoriesPath = "/api/v1/categories"
	categoryPath   = "/api/v1/categories/{kind}/{name}"
	orderPath      = "/api/v1/categories/{kind}/order"
	notesPath      = "/api/v1/notes"
	notePath       = "/api/v1/notes/{key}"
)

// Adapters bundles the REST implementations of every remote interface. All
// of them share one connection, so Reconnect refreshes every store at once.
type Adapters struct {
	Connection       RemoteConnection
	Transactions     RemoteStore[*models.Transaction]
	PlannedTemplates RemoteStore[*models.PlannedTemplate]
	Sheets           RemoteStore[*models.Sheet]
	Categories       RemoteCategoryStore
	Notes            RemoteNoteStore
}

// NewHTTPAdapters normalises cfg.HTTPAddress and builds the REST stores.
// Returns an error if the address is empty or not a valid URL.
func NewHTTPAdapters(cfg config.ClientAdapter, log *logger.Logger) (*Adapters, error) {
	conn, err := newHTTPConnection(cfg, log)
	if err != nil {
		return nil, err
	}

	return &Adapters{
		Connection:       conn,
		Transactions:     newHTTPRemoteStore(conn, models.EntityTransaction, models.NewTransaction),
		PlannedTemplates: newHTTPRemoteStore(conn, models.EntityPlannedTemplate, models.NewPlannedTemplate),
		Sheets:           newHTTPRemoteStore(conn, models.EntitySheet, models.NewSheet),
		Categories:       &httpCategoryStore{conn: conn},
		Notes:            &httpNoteStore{conn: conn},
	}, nil
}

// httpConnection owns the resty client. The pointer is swapped on
// Reconnect so requests already in flight finish on the old client.
type httpConnection struct {
	current atomic.Pointer[utils.HTTPClient]

	baseURL string
	cfg     config.ClientAdapter
	logger  *logger.Logger
}

func newHTTPConnection(cfg config.ClientAdapter, log *logger.Logger) (*httpConnection, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	c := &httpConnection{baseURL: baseURL, cfg: cfg, logger: log}
	c.current.Store(utils.NewHTTPClient(baseURL, cfg.RequestTimeout, strings.TrimSpace(cfg.Token)))

	return c, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

func (c *httpConnection) request(ctx context.Context) *resty.Request {
	return c.current.Load().R().SetContext(ctx)
}

func (c *httpConnection) HealthCheck(ctx context.Context) bool {
	resp, err := c.request(ctx).Get(healthPath)
	if err != nil {
		logger.FromContext(ctx).Debug().Err(err).Str("func", "httpConnection.HealthCheck").Msg("health check failed")
		return false
	}

	return resp.StatusCode() == http.StatusOK
}

func (c *httpConnection) Reconnect(ctx context.Context) error {
	fresh := utils.NewHTTPClient(c.baseURL, c.cfg.RequestTimeout, strings.TrimSpace(c.cfg.Token))

	resp, err := fresh.R().SetContext(ctx).Get(healthPath)
	if err != nil {
		return fmt.Errorf("reconnect request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return fmt.Errorf("%w: %w", ErrUnhealthy, err)
	}

	old := c.current.Swap(fresh)
	if old != nil {
		old.GetClient().CloseIdleConnections()
	}
	c.logger.Info().Str("func", "httpConnection.Reconnect").Str("base_url", c.baseURL).Msg("reconnected to remote store")

	return nil
}
