// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package chart

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/sqlexec"
)

func stockResult() *sqlexec.Result {
	res := &sqlexec.Result{Columns: []string{"TX_DATE", "OPENING", "MOVING_AVG"}}
	start := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		res.Rows = append(res.Rows, []any{
			start.AddDate(0, 0, i).Format("2006-01-02"),
			float64(70 + i),
			71.5 + float64(i)/2,
		})
	}
	return res
}

func TestFromResult(t *testing.T) {
	c, err := FromResult(stockResult(), "tx_date", "OPENING", "MOVING_AVG")
	require.NoError(t, err)

	assert.Equal(t, "Day", c.XLabel)
	assert.Equal(t, "Value", c.YLabel)
	require.Len(t, c.Series, 2)
	assert.Equal(t, "OPENING", c.Series[0].Name)
	assert.Equal(t, []float64{70, 71, 72, 73, 74}, c.Series[0].Values)
	from, to := c.Span()
	assert.Equal(t, "2020-01-01", from.Format("2006-01-02"))
	assert.Equal(t, "2020-01-05", to.Format("2006-01-02"))
}

func TestFromResultErrors(t *testing.T) {
	tests := []struct {
		name  string
		res   *sqlexec.Result
		x     string
		y     []string
		match string
	}{
		{name: "no rows", res: &sqlexec.Result{Columns: []string{"TX_DATE"}}, x: "TX_DATE", y: []string{"OPENING"}, match: "no rows"},
		{name: "no series", res: stockResult(), x: "TX_DATE", match: "at least one series"},
		{name: "missing x column", res: stockResult(), x: "DAY", y: []string{"OPENING"}, match: `column "DAY" not in result`},
		{name: "missing y column", res: stockResult(), x: "TX_DATE", y: []string{"CLOSING"}, match: `column "CLOSING" not in result`},
		{name: "non-numeric series", res: stockResult(), x: "TX_DATE", y: []string{"TX_DATE"}, match: "not a number"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := FromResult(tt.res, tt.x, tt.y...)
			require.Error(t, err)
			assert.Equal(t, verrors.ChartFailed, verrors.KindOf(err))
			assert.Contains(t, err.Error(), tt.match)
		})
	}
}

func TestTerminal(t *testing.T) {
	c, err := FromResult(stockResult(), "TX_DATE", "OPENING", "MOVING_AVG")
	require.NoError(t, err)
	c.Title = "AAPL"

	var buf bytes.Buffer
	require.NoError(t, Terminal(&buf, c, 40, 10))

	out := buf.String()
	assert.Contains(t, out, "AAPL")
	assert.Contains(t, out, "Day: 2020-01-01 .. 2020-01-05")
	assert.Contains(t, out, "Value")
	assert.Contains(t, out, "OPENING")
	assert.Contains(t, out, "MOVING_AVG")
}

func TestTerminalRejectsMismatchedSeries(t *testing.T) {
	c := &Chart{
		X:      []time.Time{time.Now(), time.Now()},
		Series: []Series{{Name: "a", Values: []float64{1}}},
	}
	err := Terminal(&bytes.Buffer{}, c, 0, 0)
	require.Error(t, err)
	assert.Equal(t, verrors.ChartFailed, verrors.KindOf(err))
}

func TestSavePNG(t *testing.T) {
	c, err := FromResult(stockResult(), "TX_DATE", "OPENING", "MOVING_AVG")
	require.NoError(t, err)
	dir := t.TempDir()

	png := filepath.Join(dir, "aapl.png")
	require.NoError(t, SavePNG(png, c))
	b, err := os.ReadFile(png)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(b, []byte("\x89PNG")), "not a PNG file")

	svg := filepath.Join(dir, "aapl.svg")
	require.NoError(t, SavePNG(svg, c))
	b, err = os.ReadFile(svg)
	require.NoError(t, err)
	assert.Contains(t, string(b), "<svg")

	err = SavePNG(filepath.Join(dir, "aapl.txt"), c)
	require.Error(t, err)
	assert.Equal(t, verrors.ChartFailed, verrors.KindOf(err))
}
