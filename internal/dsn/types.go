// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "fmt"

// Driver is the database/sql driver name a data source is opened with.
type Driver string

const (
	DriverPostgreSQL Driver = "pgx"
	DriverSQLServer  Driver = "sqlserver"
	DriverMySQL      Driver = "mysql"
	DriverSQLite     Driver = "sqlite3"
	DriverDuckDB     Driver = "duckdb"
	DriverUnknown    Driver = ""
)

// DSNInfo contains parsed information from a data source URL
type DSNInfo struct {
	Driver   Driver
	Host     string
	Port     string
	User     string
	Password string
	Database string
	// Instance is the SQL Server named instance, if any.
	Instance string
	// Path is the database file for file-based drivers.
	Path     string
	Params   map[string]string
	Original string
}

// String returns the original URL the info was parsed from
func (d *DSNInfo) String() string {
	return d.Original
}

// WithCredentials returns a copy of info with user and password replaced by
// the non-empty arguments. Credentials passed alongside the URL win over the
// ones embedded in it.
func (d *DSNInfo) WithCredentials(user, password string) *DSNInfo {
	out := *d
	if user != "" {
		out.User = user
	}
	if password != "" {
		out.Password = password
	}
	return &out
}

// Resolver is an interface for driver-specific DSN resolution
type Resolver interface {
	// Parse parses a data source URL (JDBC or native form) into DSN info
	Parse(rawURL string) (*DSNInfo, error)

	// Normalize converts DSN info to the connection string its driver expects
	Normalize(info *DSNInfo) (string, error)
}

// ParseError represents an error that occurred during DSN parsing
type ParseError struct {
	DSN    string
	Reason string
	Hint   string
}

func (e *ParseError) Error() string {
	if e.Hint != "" {
		return fmt.Sprintf("invalid data source URL: %s\nHint: %s", e.Reason, e.Hint)
	}
	return fmt.Sprintf("invalid data source URL: %s", e.Reason)
}

// NewParseError creates a new ParseError
func NewParseError(dsn, reason, hint string) *ParseError {
	return &ParseError{
		DSN:    dsn,
		Reason: reason,
		Hint:   hint,
	}
}
