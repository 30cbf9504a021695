// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chart

import (
	"image/color"
	"path/filepath"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	verrors "vqr/cli/internal/errors"
)

var lineColors = []color.Color{
	color.RGBA{R: 0xd6, G: 0x27, B: 0x28, A: 0xff},
	color.RGBA{R: 0x1f, G: 0x77, B: 0xb4, A: 0xff},
	color.RGBA{R: 0x2c, G: 0xa0, B: 0x2c, A: 0xff},
	color.RGBA{R: 0xff, G: 0x7f, B: 0x0e, A: 0xff},
	color.RGBA{R: 0x94, G: 0x67, B: 0xbd, A: 0xff},
}

// SupportedImage reports whether path has an extension SavePNG can write.
func SupportedImage(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png", ".svg", ".pdf", ".jpg", ".jpeg", ".tif", ".tiff", ".eps":
		return true
	}
	return false
}

// SavePNG renders c to path. The format follows the file extension, so
// .svg or .pdf work as well as .png.
func SavePNG(path string, c *Chart) error {
	if err := c.validate(); err != nil {
		return err
	}
	if !SupportedImage(path) {
		return verrors.New(verrors.ChartFailed, "unsupported image format "+filepath.Ext(path))
	}

	p := plot.New()
	p.Title.Text = c.Title
	xl, yl := c.labels()
	p.X.Label.Text = xl
	p.Y.Label.Text = yl
	p.X.Tick.Marker = plot.TimeTicks{Format: "2006-01-02"}
	p.Add(plotter.NewGrid())

	for i, s := range c.Series {
		pts := make(plotter.XYs, len(s.Values))
		for j, v := range s.Values {
			pts[j].X = float64(c.X[j].Unix())
			pts[j].Y = v
		}
		line, err := plotter.NewLine(pts)
		if err != nil {
			return verrors.Wrap(verrors.ChartFailed, "series "+s.Name, err)
		}
		line.Color = lineColors[i%len(lineColors)]
		line.Width = vg.Points(1.5)
		p.Add(line)
		p.Legend.Add(s.Name, line)
	}
	p.Legend.Top = true

	if err := p.Save(10*vg.Inch, 5*vg.Inch, path); err != nil {
		return verrors.Wrap(verrors.ChartFailed, "save chart "+path, err)
	}
	return nil
}
