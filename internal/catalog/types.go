// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package catalog resolves logical dataset names to the physical connection
// parameters of their backing data source. Two lookups are involved: the
// dataset descriptor names a data source id, and the data source descriptor
// carries the driver, URL and credentials needed to open a connection.
//
// Descriptors are read-only to callers and are resolved per invocation; no
// implementation caches lookups across calls.
package catalog

import (
	"context"
	"strings"
)

// Dataset describes a logical dataset (virtual table or join view).
type Dataset struct {
	// Name is the logical name, "<namespace>.<table-or-view>".
	Name string `yaml:"name" json:"name"`
	// DataSource is the id of the backing data source.
	DataSource string `yaml:"datasource" json:"datasource"`
	// Schema optionally qualifies Table.
	Schema string `yaml:"schema" json:"schema"`
	// Query, when non-empty, replaces any other query text for this dataset.
	Query string `yaml:"query" json:"query"`
	// Table is the physical table or view name.
	Table string `yaml:"table" json:"table"`
	// Description is free text shown when listing datasets.
	Description string `yaml:"description,omitempty" json:"description,omitempty"`
}

// Namespace returns the part of Name before the first dot, or "" if there is none.
func (d Dataset) Namespace() string {
	if i := strings.Index(d.Name, "."); i > 0 {
		return d.Name[:i]
	}
	return ""
}

// DataSource describes a physical backend reachable by driver, URL and credentials.
type DataSource struct {
	ID          string `yaml:"id" json:"id"`
	DriverClass string `yaml:"driver_class" json:"driver_class"`
	URL         string `yaml:"url" json:"URL"`
	User        string `yaml:"user" json:"user"`
	Password    string `yaml:"password" json:"password"`
}

// Catalog looks up dataset and data source descriptors.
type Catalog interface {
	// LookupDataset returns the descriptor for a logical dataset name.
	LookupDataset(ctx context.Context, name string) (*Dataset, error)
	// LookupDataSource returns the descriptor for a data source id.
	LookupDataSource(ctx context.Context, id string) (*DataSource, error)
}

// Lister is implemented by catalogs that can enumerate their datasets.
type Lister interface {
	// ListDatasets returns all datasets sorted by name.
	ListDatasets(ctx context.Context) ([]Dataset, error)
}
