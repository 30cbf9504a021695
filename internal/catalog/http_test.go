// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	verrors "vqr/cli/internal/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalogServer(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/v1/datasets/USER999.AWS_ACCOUNTS", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer secret-token" {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		_, _ = w.Write([]byte(`{"datasource":"db2-aws","schema":"","query":"","table":"AWS_ACCOUNTS"}`))
	})
	mux.HandleFunc("/v1/datasources/db2-aws", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"driver_class":"com.ibm.db2.jcc.DB2Driver","URL":"jdbc:db2://h:50000/BLUDB","user":"USER999","password":"pw"}`))
	})
	mux.HandleFunc("/v1/datasets", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"datasets":[{"name":"USER999.B"},{"name":"USER999.A"}]}`))
	})
	mux.HandleFunc("/v1/datasources/broken", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestHTTPCatalogLookup(t *testing.T) {
	srv := newCatalogServer(t)
	c := NewHTTP(srv.URL+"/", "secret-token")
	ctx := context.Background()

	d, err := c.LookupDataset(ctx, "USER999.AWS_ACCOUNTS")
	require.NoError(t, err)
	assert.Equal(t, "USER999.AWS_ACCOUNTS", d.Name)
	assert.Equal(t, "db2-aws", d.DataSource)
	assert.Equal(t, "AWS_ACCOUNTS", d.Table)

	ds, err := c.LookupDataSource(ctx, d.DataSource)
	require.NoError(t, err)
	assert.Equal(t, "db2-aws", ds.ID)
	assert.Equal(t, "jdbc:db2://h:50000/BLUDB", ds.URL)
	assert.Equal(t, "pw", ds.Password)
}

func TestHTTPCatalogErrors(t *testing.T) {
	srv := newCatalogServer(t)
	ctx := context.Background()

	_, err := NewHTTP(srv.URL, "secret-token").LookupDataset(ctx, "USER999.NOPE")
	assert.True(t, verrors.Is(err, verrors.DatasetNotFound))

	_, err = NewHTTP(srv.URL, "wrong").LookupDataset(ctx, "USER999.AWS_ACCOUNTS")
	require.Error(t, err)
	var se *StatusError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusUnauthorized, se.StatusCode)
	assert.True(t, verrors.Is(err, verrors.CatalogUnavailable))

	_, err = NewHTTP(srv.URL, "").LookupDataSource(ctx, "missing")
	assert.True(t, verrors.Is(err, verrors.DataSourceNotFound))

	_, err = NewHTTP(srv.URL, "").LookupDataSource(ctx, "broken")
	require.True(t, errors.As(err, &se))
	assert.Equal(t, http.StatusBadGateway, se.StatusCode)
}

func TestHTTPCatalogList(t *testing.T) {
	srv := newCatalogServer(t)

	list, err := NewHTTP(srv.URL, "").ListDatasets(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "USER999.A", list[0].Name)
}
