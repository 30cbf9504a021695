// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package sqlexec executes a query over a database/sql connection and
// materializes every row into an in-memory Result.
//
// Driver values are normalized while reading so that callers see plain Go
// values regardless of which driver produced them:
//   - UUID and UNIQUEIDENTIFIER columns become canonical UUID text
//   - other []byte values become a string when they are valid UTF-8, and
//     \x-prefixed hex otherwise
//   - everything else is kept as returned by the driver
package sqlexec

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"unicode/utf8"

	mssql "github.com/microsoft/go-mssqldb"
	"github.com/pterm/pterm"

	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/logging"
)

// Executor runs queries and materializes their results.
type Executor struct {
	// Log receives debug lines about executed statements; nil discards them.
	Log *pterm.Logger
}

// New creates an Executor that logs to log.
func New(log *pterm.Logger) *Executor {
	return &Executor{Log: log}
}

// Query runs sql on db and reads all rows. The whole result is held in memory.
func (e *Executor) Query(ctx context.Context, db *sql.DB, query string) (*Result, error) {
	log := e.Log
	if log == nil {
		log = logging.Discard()
	}
	log.Debug("executing query", log.Args("sql", preview(query)))

	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil, verrors.Wrap(verrors.QueryFailed, "execute query", err)
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, verrors.Wrap(verrors.QueryFailed, "read columns", err)
	}
	types := make([]string, len(cols))
	if cts, err := rows.ColumnTypes(); err == nil {
		for i, ct := range cts {
			types[i] = strings.ToUpper(ct.DatabaseTypeName())
		}
	}
	res := &Result{
		Columns: cols,
		Rows:    [][]any{},
	}

	for rows.Next() {
		vals := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range vals {
			ptrs[i] = &vals[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, verrors.Wrap(verrors.QueryFailed, "read row", err)
		}
		for i, v := range vals {
			vals[i] = normalize(v, types[i])
		}
		res.Rows = append(res.Rows, vals)
	}
	if err := rows.Err(); err != nil {
		return nil, verrors.Wrap(verrors.QueryFailed, "read rows", err)
	}

	log.Debug("query complete", log.Args("columns", len(cols), "rows", len(res.Rows)))
	return res, nil
}

// normalize converts driver values to JSON and CSV friendly Go values.
// dbType is the upper-cased database type name of the column, if known.
func normalize(val any, dbType string) any {
	switch v := val.(type) {
	case []byte:
		switch {
		case dbType == "UNIQUEIDENTIFIER" && len(v) == 16:
			// SQL Server stores the first three groups little-endian.
			var u mssql.UniqueIdentifier
			if err := u.Scan(v); err == nil {
				return u.String()
			}
		case dbType == "UUID" && len(v) == 16:
			return formatUUID(v)
		}
		if utf8.Valid(v) {
			return string(v)
		}
		return fmt.Sprintf("\\x%x", v)
	case [16]byte:
		return formatUUID(v[:])
	default:
		return v
	}
}

// formatUUID formats 16 bytes as xxxxxxxx-xxxx-xxxx-xxxx-xxxxxxxxxxxx.
func formatUUID(v []byte) string {
	return fmt.Sprintf("%x-%x-%x-%x-%x", v[0:4], v[4:6], v[6:8], v[8:10], v[10:16])
}

func preview(s string) string {
	const max = 200
	if len(s) <= max {
		return s
	}
	return s[:max] + "..."
}
