// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package query builds the SQL text executed for a dataset.
package query

import (
	"strings"

	"vqr/cli/internal/catalog"
)

// Default returns the select-all statement for a table, qualified by schema
// when schema is non-blank. Identifiers are quoted so reserved words and
// mixed-case names survive.
func Default(schema, table string) string {
	if strings.TrimSpace(schema) != "" {
		return `SELECT * FROM "` + schema + `"."` + table + `"`
	}
	return `SELECT * FROM "` + table + `"`
}

// Resolve returns the query to execute for ds.
// base is caller-supplied query text; when blank the default select-all
// statement is used. A non-empty override on the descriptor replaces either.
func Resolve(ds *catalog.Dataset, base string) string {
	q := base
	if strings.TrimSpace(q) == "" {
		q = Default(ds.Schema, ds.Table)
	}
	if ds.Query != "" {
		q = ds.Query
	}
	return q
}

// Overridden reports whether ds carries its own query text.
func Overridden(ds *catalog.Dataset) bool {
	return ds.Query != ""
}
