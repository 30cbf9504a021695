// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"sort"
	"strings"
	"time"

	verrors "vqr/cli/internal/errors"
)

// StatusError is returned when the catalog service answers with an unexpected status.
type StatusError struct {
	URL        string
	StatusCode int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("catalog returned status %d for %s", e.StatusCode, e.URL)
}

// HTTPCatalog implements Catalog over the catalog service REST endpoints:
//
//	GET /v1/datasets/{name}
//	GET /v1/datasources/{id}
//	GET /v1/datasets
type HTTPCatalog struct {
	// baseURL is the base URL for all requests (e.g., "https://catalog.example.com")
	baseURL string
	// token is sent as a bearer token when non-empty
	token string
	// client is the underlying HTTP client with configured timeout
	client *http.Client
}

// NewHTTP creates a catalog client for baseURL with a 10-second request timeout.
func NewHTTP(baseURL, token string) *HTTPCatalog {
	return &HTTPCatalog{
		baseURL: strings.TrimRight(baseURL, "/"),
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

// LookupDataset calls GET /v1/datasets/{name}.
func (h *HTTPCatalog) LookupDataset(ctx context.Context, name string) (*Dataset, error) {
	var d Dataset
	found, err := h.get(ctx, "/v1/datasets/"+url.PathEscape(name), &d)
	if err != nil {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, fmt.Sprintf("lookup dataset %q", name), err)
	}
	if !found {
		return nil, verrors.New(verrors.DatasetNotFound, fmt.Sprintf("dataset %q not found in catalog", name))
	}
	if d.Name == "" {
		d.Name = name
	}
	return &d, nil
}

// LookupDataSource calls GET /v1/datasources/{id}.
func (h *HTTPCatalog) LookupDataSource(ctx context.Context, id string) (*DataSource, error) {
	var ds DataSource
	found, err := h.get(ctx, "/v1/datasources/"+url.PathEscape(id), &ds)
	if err != nil {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, fmt.Sprintf("lookup data source %q", id), err)
	}
	if !found {
		return nil, verrors.New(verrors.DataSourceNotFound, fmt.Sprintf("data source %q not found in catalog", id))
	}
	if ds.ID == "" {
		ds.ID = id
	}
	return &ds, nil
}

// ListDatasets calls GET /v1/datasets. The service may return either a bare
// array or an object with a "datasets" array.
func (h *HTTPCatalog) ListDatasets(ctx context.Context) ([]Dataset, error) {
	var raw json.RawMessage
	if _, err := h.get(ctx, "/v1/datasets", &raw); err != nil {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, "list datasets", err)
	}

	var out []Dataset
	if err := json.Unmarshal(raw, &out); err != nil {
		var wrapped struct {
			Datasets []Dataset `json:"datasets"`
		}
		if err2 := json.Unmarshal(raw, &wrapped); err2 != nil {
			return nil, verrors.Wrap(verrors.CatalogUnavailable, "decode dataset list", err)
		}
		out = wrapped.Datasets
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

// get performs a GET and decodes a JSON body into out. found is false on 404.
func (h *HTTPCatalog) get(ctx context.Context, path string, out any) (found bool, err error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, h.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("User-Agent", "vqr-cli/1.0")
	req.Header.Set("Accept", "application/json")
	if h.token != "" {
		req.Header.Set("Authorization", "Bearer "+h.token)
	}

	resp, err := h.client.Do(req)
	if err != nil {
		return false, err
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNotFound:
		return false, nil
	default:
		return false, &StatusError{URL: req.URL.String(), StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode response: %w", err)
	}
	return true, nil
}
