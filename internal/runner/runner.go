// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package runner executes one query against a catalog dataset.
//
// A run looks up the dataset descriptor, then its data source descriptor,
// resolves the query text, opens a single connection, materializes the
// result and closes the connection. Steps run strictly in that order and the
// first failure ends the run. Nothing is cached between runs.
package runner

import (
	"context"
	"database/sql"

	"github.com/pterm/pterm"

	"vqr/cli/internal/catalog"
	"vqr/cli/internal/connect"
	"vqr/cli/internal/logging"
	"vqr/cli/internal/query"
	"vqr/cli/internal/sqlexec"
)

// OpenFunc opens a connection for a data source descriptor.
type OpenFunc func(ctx context.Context, ds *catalog.DataSource) (*sql.DB, error)

// Runner wires the catalog, connection opener and executor together.
type Runner struct {
	Catalog  catalog.Catalog
	Executor *sqlexec.Executor
	// Open defaults to connect.Open.
	Open OpenFunc
	Log  *pterm.Logger
}

// Request names the dataset to query. SQL, when non-blank, replaces the
// default select-all statement; a query stored on the dataset still wins.
type Request struct {
	Dataset string
	SQL     string
}

// Output is the materialized result of a run.
type Output struct {
	Dataset    *catalog.Dataset
	DataSource string
	Query      string
	Result     *sqlexec.Result
}

// New returns a Runner over cat that logs to log.
func New(cat catalog.Catalog, log *pterm.Logger) *Runner {
	return &Runner{
		Catalog:  cat,
		Executor: sqlexec.New(log),
		Open:     (&connect.Opener{Log: log}).Open,
		Log:      log,
	}
}

// Plan looks up the dataset and returns it with the query a run would
// execute, without touching the data source.
func (r *Runner) Plan(ctx context.Context, req Request) (*catalog.Dataset, string, error) {
	ds, err := r.Catalog.LookupDataset(ctx, req.Dataset)
	if err != nil {
		return nil, "", err
	}
	return ds, query.Resolve(ds, req.SQL), nil
}

// Run executes req. The connection is closed once the result is read, on
// success and on failure.
func (r *Runner) Run(ctx context.Context, req Request) (*Output, error) {
	log := r.Log
	if log == nil {
		log = logging.Discard()
	}

	ds, q, err := r.Plan(ctx, req)
	if err != nil {
		return nil, err
	}
	src, err := r.Catalog.LookupDataSource(ctx, ds.DataSource)
	if err != nil {
		return nil, err
	}
	log.Debug("resolved dataset", log.Args(logging.MaskArgs(
		"dataset", ds.Name,
		"datasource", src.ID,
		"url", src.URL,
		"overridden", query.Overridden(ds),
	)...))

	open := r.Open
	if open == nil {
		open = connect.Open
	}
	db, err := open(ctx, src)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			log.Warn("closing connection", log.Args("datasource", src.ID, "error", cerr.Error()))
		}
	}()

	exec := r.Executor
	if exec == nil {
		exec = sqlexec.New(log)
	}
	res, err := exec.Query(ctx, db, q)
	if err != nil {
		return nil, err
	}

	return &Output{
		Dataset:    ds,
		DataSource: src.ID,
		Query:      q,
		Result:     res,
	}, nil
}
