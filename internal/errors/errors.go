// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package errors defines typed errors with categories for user-friendly reporting.
// Each step of a query run (catalog lookup, connection, execution, rendering)
// wraps its failure with a machine-readable Kind while keeping the underlying
// error reachable through errors.Is and errors.As.
package errors

import (
	stderrors "errors"
	"fmt"
)

// Kind is a machine-readable error category.
type Kind string

const (
	// CatalogUnavailable indicates the catalog could not be read or reached.
	CatalogUnavailable Kind = "catalog_unavailable"
	// DatasetNotFound indicates the logical dataset name is unknown to the catalog.
	DatasetNotFound Kind = "dataset_not_found"
	// DataSourceNotFound indicates the dataset references an unknown data source.
	DataSourceNotFound Kind = "datasource_not_found"
	// InvalidDataSource indicates the data source descriptor cannot be turned into a DSN.
	InvalidDataSource Kind = "invalid_datasource"
	// ConnectFailed indicates the physical data source could not be opened.
	ConnectFailed Kind = "connect_failed"
	// QueryFailed indicates the query failed to execute or its rows could not be read.
	QueryFailed Kind = "query_failed"
	// ChartFailed indicates the result could not be rendered as a chart.
	ChartFailed Kind = "chart_failed"
	// NotebookInvalid indicates a notebook file failed validation.
	NotebookInvalid Kind = "notebook_invalid"
)

// E wraps an error with kind and human-friendly message.
type E struct {
	Kind    Kind
	Message string
	Err     error
}

func (e *E) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// Unwrap returns the underlying error.
func (e *E) Unwrap() error { return e.Err }

func Wrap(kind Kind, msg string, err error) *E { return &E{Kind: kind, Message: msg, Err: err} }
func New(kind Kind, msg string) *E             { return &E{Kind: kind, Message: msg} }

// KindOf returns the kind of the outermost *E in err's chain, or "" if none.
func KindOf(err error) Kind {
	var e *E
	if stderrors.As(err, &e) {
		return e.Kind
	}
	return ""
}

// Is reports whether err carries the given kind anywhere in its chain.
func Is(err error, kind Kind) bool {
	for err != nil {
		var e *E
		if !stderrors.As(err, &e) {
			return false
		}
		if e.Kind == kind {
			return true
		}
		err = e.Err
	}
	return false
}
