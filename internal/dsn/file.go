// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"strings"
)

// FileResolver handles embedded engines that open a local database file:
// SQLite, and DuckDB for Parquet/CSV datasets on local or object storage.
//
//	jdbc:sqlite:/data/stocks.db
//	jdbc:duckdb:/data/lake.duckdb
//	sqlite:/data/stocks.db or a bare path
//
// Credentials do not apply and are ignored.
type FileResolver struct {
	driver Driver
}

// NewFileResolver creates a resolver for a file-based driver.
func NewFileResolver(d Driver) *FileResolver {
	return &FileResolver{driver: d}
}

// Parse extracts the database path from the URL.
func (r *FileResolver) Parse(rawURL string) (*DSNInfo, error) {
	rest, _ := stripJDBC(strings.TrimSpace(rawURL))
	lower := strings.ToLower(rest)
	for _, prefix := range []string{"sqlite3:", "sqlite:", "duckdb:"} {
		if strings.HasPrefix(lower, prefix) {
			rest = rest[len(prefix):]
			break
		}
	}
	info := &DSNInfo{
		Driver:   r.driver,
		Path:     rest,
		Params:   make(map[string]string),
		Original: rawURL,
	}
	if r.driver == DriverSQLite && strings.TrimSpace(rest) == "" {
		return nil, NewParseError(rawURL, "missing database path", "use jdbc:sqlite:/path/to/file.db")
	}
	return info, nil
}

// Normalize returns the path; an empty DuckDB path opens an in-memory database.
func (r *FileResolver) Normalize(info *DSNInfo) (string, error) {
	if info == nil {
		return "", NewParseError("", "nil DSN info", "")
	}
	if info.Driver == DriverSQLite && strings.TrimSpace(info.Path) == "" {
		return "", NewParseError(info.Original, "missing database path", "use jdbc:sqlite:/path/to/file.db")
	}
	return info.Path, nil
}
