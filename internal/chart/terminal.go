// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chart

import (
	"fmt"
	"io"
	"time"

	"github.com/guptarohit/asciigraph"

	verrors "vqr/cli/internal/errors"
)

// palette colors series in order: red, blue, then the rest.
var palette = []asciigraph.AnsiColor{
	asciigraph.Red,
	asciigraph.Blue,
	asciigraph.Green,
	asciigraph.Yellow,
	asciigraph.Magenta,
	asciigraph.Cyan,
}

// Terminal writes c to w as a multi-series ASCII line chart. Series longer
// than width are resampled to fit; width <= 0 plots one column per point.
func Terminal(w io.Writer, c *Chart, width, height int) error {
	if err := c.validate(); err != nil {
		return err
	}
	if height <= 0 {
		height = 20
	}

	data := make([][]float64, len(c.Series))
	names := make([]string, len(c.Series))
	colors := make([]asciigraph.AnsiColor, len(c.Series))
	for i, s := range c.Series {
		data[i] = s.Values
		names[i] = s.Name
		colors[i] = palette[i%len(palette)]
	}

	xl, yl := c.labels()
	from, to := c.Span()
	opts := []asciigraph.Option{
		asciigraph.Height(height),
		asciigraph.Precision(2),
		asciigraph.SeriesColors(colors...),
		asciigraph.SeriesLegends(names...),
		asciigraph.Caption(fmt.Sprintf("%s: %s .. %s   %s", xl, from.Format(time.DateOnly), to.Format(time.DateOnly), yl)),
	}
	if width > 0 {
		opts = append(opts, asciigraph.Width(width))
	}

	var out string
	if c.Title != "" {
		out = c.Title + "\n\n"
	}
	out += asciigraph.PlotMany(data, opts...) + "\n"
	if _, err := io.WriteString(w, out); err != nil {
		return verrors.Wrap(verrors.ChartFailed, "write chart", err)
	}
	return nil
}
