// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package chart renders query results as time-series line charts, either
// in the terminal or to an image file.
package chart

import (
	"fmt"
	"time"

	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/sqlexec"
)

// Default axis labels.
const (
	XLabel = "Day"
	YLabel = "Value"
)

// Series is one line of a chart.
type Series struct {
	Name   string
	Values []float64
}

// Chart is a set of series over a shared date axis.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	X      []time.Time
	Series []Series
}

// FromResult builds a chart with xCol as the date axis and one series per
// yCol. Every value must be a date or a number respectively.
func FromResult(res *sqlexec.Result, xCol string, yCols ...string) (*Chart, error) {
	if res == nil || res.Len() == 0 {
		return nil, verrors.New(verrors.ChartFailed, "no rows to plot")
	}
	if len(yCols) == 0 {
		return nil, verrors.New(verrors.ChartFailed, "at least one series column is required")
	}

	x, err := res.Times(xCol)
	if err != nil {
		return nil, verrors.Wrap(verrors.ChartFailed, "x axis", err)
	}
	c := &Chart{XLabel: XLabel, YLabel: YLabel, X: x}
	for _, col := range yCols {
		vals, err := res.Float64s(col)
		if err != nil {
			return nil, verrors.Wrap(verrors.ChartFailed, "series "+col, err)
		}
		c.Series = append(c.Series, Series{Name: res.Columns[res.ColumnIndex(col)], Values: vals})
	}
	return c, nil
}

// Span returns the first and last date on the x axis.
func (c *Chart) Span() (time.Time, time.Time) {
	if len(c.X) == 0 {
		return time.Time{}, time.Time{}
	}
	return c.X[0], c.X[len(c.X)-1]
}

func (c *Chart) labels() (string, string) {
	x, y := c.XLabel, c.YLabel
	if x == "" {
		x = XLabel
	}
	if y == "" {
		y = YLabel
	}
	return x, y
}

func (c *Chart) validate() error {
	if len(c.Series) == 0 {
		return verrors.New(verrors.ChartFailed, "chart has no series")
	}
	for _, s := range c.Series {
		if len(s.Values) != len(c.X) {
			return verrors.New(verrors.ChartFailed, fmt.Sprintf("series %s has %d values for %d dates", s.Name, len(s.Values), len(c.X)))
		}
	}
	return nil
}
