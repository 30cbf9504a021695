// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"regexp"
	"sort"
	"strings"

	verrors "vqr/cli/internal/errors"

	"gopkg.in/yaml.v3"
)

// reEnvRef matches a value that is exactly one ${NAME} reference.
var reEnvRef = regexp.MustCompile(`^\$\{([A-Za-z_][A-Za-z0-9_]*)\}$`)

// fileDocument is the on-disk layout of a catalog file.
type fileDocument struct {
	DataSources []DataSource `yaml:"data_sources"`
	Datasets    []Dataset    `yaml:"datasets"`
}

// FileCatalog is a catalog backed by a YAML document.
type FileCatalog struct {
	datasets    map[string]Dataset
	dataSources map[string]DataSource
}

// LoadFile reads a catalog from a YAML file.
func LoadFile(path string) (*FileCatalog, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, "open catalog file "+path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads a catalog document from r.
// Passwords written as ${NAME} are replaced by the value of the environment variable NAME.
func Parse(r io.Reader) (*FileCatalog, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, "read catalog", err)
	}

	var doc fileDocument
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && err != io.EOF {
		return nil, verrors.Wrap(verrors.CatalogUnavailable, "parse catalog", err)
	}

	c := &FileCatalog{
		datasets:    make(map[string]Dataset, len(doc.Datasets)),
		dataSources: make(map[string]DataSource, len(doc.DataSources)),
	}
	for _, ds := range doc.DataSources {
		if strings.TrimSpace(ds.ID) == "" {
			return nil, verrors.New(verrors.CatalogUnavailable, "data source without id")
		}
		if _, dup := c.dataSources[ds.ID]; dup {
			return nil, verrors.New(verrors.CatalogUnavailable, fmt.Sprintf("duplicate data source %q", ds.ID))
		}
		ds.Password = expandSecret(ds.Password)
		c.dataSources[ds.ID] = ds
	}
	for _, d := range doc.Datasets {
		if strings.TrimSpace(d.Name) == "" {
			return nil, verrors.New(verrors.CatalogUnavailable, "dataset without name")
		}
		if _, dup := c.datasets[d.Name]; dup {
			return nil, verrors.New(verrors.CatalogUnavailable, fmt.Sprintf("duplicate dataset %q", d.Name))
		}
		c.datasets[d.Name] = d
	}
	return c, nil
}

func expandSecret(v string) string {
	m := reEnvRef.FindStringSubmatch(v)
	if m == nil {
		return v
	}
	return os.Getenv(m[1])
}

// LookupDataset returns the dataset with the exact given name.
func (c *FileCatalog) LookupDataset(_ context.Context, name string) (*Dataset, error) {
	d, ok := c.datasets[name]
	if !ok {
		return nil, verrors.New(verrors.DatasetNotFound, fmt.Sprintf("dataset %q not found in catalog", name))
	}
	return &d, nil
}

// LookupDataSource returns the data source with the given id.
func (c *FileCatalog) LookupDataSource(_ context.Context, id string) (*DataSource, error) {
	ds, ok := c.dataSources[id]
	if !ok {
		return nil, verrors.New(verrors.DataSourceNotFound, fmt.Sprintf("data source %q not found in catalog", id))
	}
	return &ds, nil
}

// ListDatasets returns all datasets sorted by name.
func (c *FileCatalog) ListDatasets(_ context.Context) ([]Dataset, error) {
	out := make([]Dataset, 0, len(c.datasets))
	for _, d := range c.datasets {
		out = append(out, d)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}
