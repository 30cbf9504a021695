// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package notebook runs a list of query cells read from a YAML file.
//
// Each cell is an independent query run: cells share no connections or
// results. Cells run in file order and the first failing cell stops the
// notebook.
package notebook

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/runner"
)

// Notebook is a parsed notebook file.
type Notebook struct {
	Cells []Cell `yaml:"cells"`
	// Dir is the directory relative plot output paths are resolved against.
	Dir string `yaml:"-"`
}

// Cell is one query, optionally rendered as a chart.
type Cell struct {
	Title   string `yaml:"title"`
	Dataset string `yaml:"dataset"`
	SQL     string `yaml:"sql"`
	Rows    int    `yaml:"rows"`
	Plot    *Plot  `yaml:"plot"`
}

// Plot selects the date column and series of a chart cell. Out, when set,
// writes the chart to an image file instead of the terminal.
type Plot struct {
	X   string   `yaml:"x"`
	Y   []string `yaml:"y"`
	Out string   `yaml:"out"`
}

// Name returns the cell title, or its dataset when untitled.
func (c Cell) Name() string {
	if c.Title != "" {
		return c.Title
	}
	return c.Dataset
}

// Load reads and validates a notebook file.
func Load(path string) (*Notebook, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, verrors.Wrap(verrors.NotebookInvalid, "open notebook "+path, err)
	}
	defer f.Close()

	nb, err := Parse(f)
	if err != nil {
		return nil, err
	}
	nb.Dir = filepath.Dir(path)
	return nb, nil
}

// Parse reads and validates a notebook document.
func Parse(r io.Reader) (*Notebook, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, verrors.Wrap(verrors.NotebookInvalid, "read notebook", err)
	}
	var nb Notebook
	dec := yaml.NewDecoder(bytes.NewReader(b))
	dec.KnownFields(true)
	if err := dec.Decode(&nb); err != nil && err != io.EOF {
		return nil, verrors.Wrap(verrors.NotebookInvalid, "parse notebook", err)
	}
	if err := nb.Validate(); err != nil {
		return nil, err
	}
	return &nb, nil
}

// Validate checks that every cell names a dataset and that chart cells name
// a date column and at least one series.
func (n *Notebook) Validate() error {
	if len(n.Cells) == 0 {
		return verrors.New(verrors.NotebookInvalid, "notebook has no cells")
	}
	for i, c := range n.Cells {
		if strings.TrimSpace(c.Dataset) == "" {
			return verrors.New(verrors.NotebookInvalid, fmt.Sprintf("cell %d: dataset is required", i+1))
		}
		if c.Rows < 0 {
			return verrors.New(verrors.NotebookInvalid, fmt.Sprintf("cell %d: rows must not be negative", i+1))
		}
		if c.Plot == nil {
			continue
		}
		if strings.TrimSpace(c.Plot.X) == "" {
			return verrors.New(verrors.NotebookInvalid, fmt.Sprintf("cell %d: plot.x is required", i+1))
		}
		if len(c.Plot.Y) == 0 {
			return verrors.New(verrors.NotebookInvalid, fmt.Sprintf("cell %d: plot.y needs at least one column", i+1))
		}
	}
	return nil
}

// OutputPath resolves p against the notebook directory.
func (n *Notebook) OutputPath(p string) string {
	if p == "" || filepath.IsAbs(p) || n.Dir == "" {
		return p
	}
	return filepath.Join(n.Dir, p)
}

// CellError reports which cell stopped the notebook.
type CellError struct {
	Index int // 1-based
	Name  string
	Err   error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("cell %d (%s): %v", e.Index, e.Name, e.Err)
}

func (e *CellError) Unwrap() error { return e.Err }

// QueryRunner executes one query request.
type QueryRunner interface {
	Run(ctx context.Context, req runner.Request) (*runner.Output, error)
}

// Handler renders the output of a cell. index is 1-based.
type Handler func(index int, c Cell, out *runner.Output) error

// Run executes the cells in order, passing each output to handle. It stops
// at the first cell whose query or handler fails.
func (n *Notebook) Run(ctx context.Context, r QueryRunner, handle Handler) error {
	for i, c := range n.Cells {
		if err := ctx.Err(); err != nil {
			return &CellError{Index: i + 1, Name: c.Name(), Err: err}
		}
		out, err := r.Run(ctx, runner.Request{Dataset: c.Dataset, SQL: c.SQL})
		if err != nil {
			return &CellError{Index: i + 1, Name: c.Name(), Err: err}
		}
		if handle == nil {
			continue
		}
		if err := handle(i+1, c, out); err != nil {
			return &CellError{Index: i + 1, Name: c.Name(), Err: err}
		}
	}
	return nil
}
