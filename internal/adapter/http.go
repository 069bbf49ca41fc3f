// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/go-snippet-box/internal/config"
	"github.com/MKhiriev/go-snippet-box/internal/logger"
	"github.com/MKhiriev/go-snippet-box/internal/utils"
	"github.com/MKhiriev/go-snippet-box/models"
)

type httpServerAdapter struct {
	client *utils.HTTPClient

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter builds a REST [ServerAdapter] for the server at
// cfg.HTTPAddress. A bare host:port is treated as http.
func NewHTTPServerAdapter(cfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	h := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, cfg.RequestTimeout),
		logger: logger,
	}
	h.client.OnBeforeRequest(func(_ *resty.Client, r *resty.Request) error {
		if token := h.Token(); token != "" {
			r.SetAuthToken(token)
		}
		return nil
	})

	return h, nil
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

func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

func (h *httpServerAdapter) setToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	return h.client.R().SetContext(ctx)
}

// do sends req and maps both transport failures and non-2xx answers.
func (h *httpServerAdapter) do(req *resty.Request, method, path string) (*resty.Response, error) {
	resp, err := req.Execute(method, path)
	if err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("request failed")
		return nil, fmt.Errorf("%s %s: %w: %w", method, path, ErrTransport, err)
	}
	if err = mapHTTPError(resp); err != nil {
		h.logger.Debug().Err(err).Str("method", method).Str("path", path).Msg("server rejected request")
		return resp, fmt.Errorf("%s %s: %w", method, path, err)
	}
	return resp, nil
}

func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) error {
	_, err := h.do(h.request(ctx).SetBody(creds), resty.MethodPost, "/auth/signup")
	return err
}

func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) error {
	resp, err := h.do(h.request(ctx).SetBody(creds), resty.MethodPost, "/auth/login")
	if err != nil {
		return err
	}

	// the cookie jar already holds the session; the bearer copy covers
	// servers that mark the cookie Secure on a plain-http address
	if header := resp.Header().Get("Authorization"); header != "" {
		token, parseErr := utils.ParseBearerToken(header)
		if parseErr != nil {
			return fmt.Errorf("login parse bearer token: %w", parseErr)
		}
		h.setToken(token)
	}
	return nil
}

func (h *httpServerAdapter) Logout(ctx context.Context) error {
	_, err := h.do(h.request(ctx), resty.MethodPost, "/auth/logout")
	h.setToken("")
	return err
}

func (h *httpServerAdapter) Me(ctx context.Context) (*models.PublicUser, error) {
	var me models.MeResponse
	if _, err := h.do(h.request(ctx).SetResult(&me), resty.MethodGet, "/auth/me"); err != nil {
		return nil, err
	}
	return me.User, nil
}

func (h *httpServerAdapter) ListSnippets(ctx context.Context, q models.ListQuery) (models.ListResponse, error) {
	var list models.ListResponse

	req := h.request(ctx).SetResult(&list)
	if q.Category != "" {
		req.SetQueryParam("category", q.Category.String())
	}
	if q.Search != "" {
		req.SetQueryParam("search", q.Search)
	}
	if q.Limit > 0 {
		req.SetQueryParam("limit", strconv.Itoa(q.Limit))
	}
	if q.Cursor != nil {
		req.SetQueryParam("cursor", q.Cursor.UTC().Format(time.RFC3339Nano))
	}

	if _, err := h.do(req, resty.MethodGet, "/snippets"); err != nil {
		return models.ListResponse{}, err
	}
	if list.Snippets == nil {
		list.Snippets = []models.Snippet{}
	}
	return list, nil
}

func (h *httpServerAdapter) GetSnippet(ctx context.Context, id string) (models.Snippet, error) {
	var snippet models.Snippet
	_, err := h.do(h.request(ctx).SetResult(&snippet).SetPathParam("id", id), resty.MethodGet, "/snippets/{id}")
	return snippet, err
}

func (h *httpServerAdapter) CreateSnippet(ctx context.Context, in models.SnippetInput) (models.Snippet, error) {
	var snippet models.Snippet
	_, err := h.do(h.request(ctx).SetBody(in).SetResult(&snippet), resty.MethodPost, "/snippets")
	return snippet, err
}

func (h *httpServerAdapter) UpdateSnippet(ctx context.Context, id string, in models.SnippetInput) (models.Snippet, error) {
	var snippet models.Snippet
	_, err := h.do(h.request(ctx).SetBody(in).SetResult(&snippet).SetPathParam("id", id), resty.MethodPut, "/snippets/{id}")
	return snippet, err
}

func (h *httpServerAdapter) DeleteSnippet(ctx context.Context, id string) error {
	_, err := h.do(h.request(ctx).SetPathParam("id", id), resty.MethodDelete, "/snippets/{id}")
	return err
}

func (h *httpServerAdapter) Preview(ctx context.Context, id string) (models.PreviewBundle, error) {
	var bundle models.PreviewBundle
	_, err := h.do(h.request(ctx).SetResult(&bundle).SetPathParam("id", id), resty.MethodGet, "/snippets/{id}/preview")
	return bundle, err
}

func (h *httpServerAdapter) Categories(ctx context.Context) ([]models.Category, error) {
	var resp models.CategoriesResponse
	if _, err := h.do(h.request(ctx).SetResult(&resp), resty.MethodGet, "/categories"); err != nil {
		return nil, err
	}
	return resp.Categories, nil
}

func (h *httpServerAdapter) ServerVersion(ctx context.Context) (string, error) {
	resp, err := h.do(h.request(ctx).SetHeader("Accept", "text/plain"), resty.MethodGet, "/version")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(resp.String()), nil
}
