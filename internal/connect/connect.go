// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package connect opens a database/sql connection to a catalog data source.
// One connection is opened per query run; the caller owns it and closes it.
package connect

import (
	"context"
	"database/sql"

	_ "github.com/duckdb/duckdb-go/v2"
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
	_ "github.com/microsoft/go-mssqldb"
	"github.com/pterm/pterm"

	"vqr/cli/internal/catalog"
	"vqr/cli/internal/dsn"
	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/logging"
)

// Opener opens data source connections and logs the masked DSN at debug level.
type Opener struct {
	Log *pterm.Logger
}

// Open resolves the descriptor into a driver and DSN, opens it and pings it
// with ctx. No timeout is added beyond what ctx carries.
func (o *Opener) Open(ctx context.Context, ds *catalog.DataSource) (*sql.DB, error) {
	if ds == nil {
		return nil, verrors.New(verrors.InvalidDataSource, "no data source descriptor")
	}

	driver, connStr, err := dsn.Resolve(ds.DriverClass, ds.URL, ds.User, ds.Password)
	if err != nil {
		return nil, verrors.Wrap(verrors.InvalidDataSource, "data source "+ds.ID, err)
	}

	log := o.Log
	if log == nil {
		log = logging.Discard()
	}
	log.Debug("opening data source", log.Args(logging.MaskArgs("id", ds.ID, "driver", string(driver), "dsn", connStr)...))

	db, err := sql.Open(string(driver), connStr)
	if err != nil {
		return nil, verrors.Wrap(verrors.ConnectFailed, "open data source "+ds.ID, err)
	}
	// One connection per run; database/sql would otherwise pool freely.
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, verrors.Wrap(verrors.ConnectFailed, "connect to data source "+ds.ID, err)
	}
	return db, nil
}

// Open opens ds without logging.
func Open(ctx context.Context, ds *catalog.DataSource) (*sql.DB, error) {
	return (&Opener{}).Open(ctx, ds)
}
