// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package sqlexec

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"
)

// Result is a fully materialized query result.
type Result struct {
	Columns []string `json:"columns"`
	Rows    [][]any  `json:"rows"`
}

// Len returns the number of rows.
func (r *Result) Len() int { return len(r.Rows) }

// Head returns a result holding at most the first n rows. n <= 0 keeps all rows.
func (r *Result) Head(n int) *Result {
	if n <= 0 || n >= len(r.Rows) {
		return r
	}
	return &Result{Columns: r.Columns, Rows: r.Rows[:n]}
}

// ColumnIndex returns the index of the named column, or -1. Names are
// matched exactly first and then case-insensitively, since drivers differ
// in how they fold unquoted identifiers.
func (r *Result) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	for i, c := range r.Columns {
		if strings.EqualFold(c, name) {
			return i
		}
	}
	return -1
}

// Float64s returns the named column as float64 values.
func (r *Result) Float64s(col string) ([]float64, error) {
	idx := r.ColumnIndex(col)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not in result (have %s)", col, strings.Join(r.Columns, ", "))
	}
	out := make([]float64, len(r.Rows))
	for i, row := range r.Rows {
		f, err := toFloat64(row[idx])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, col, err)
		}
		out[i] = f
	}
	return out, nil
}

// Times returns the named column as time values. Dates may arrive as
// time.Time or as text, depending on the driver.
func (r *Result) Times(col string) ([]time.Time, error) {
	idx := r.ColumnIndex(col)
	if idx < 0 {
		return nil, fmt.Errorf("column %q not in result (have %s)", col, strings.Join(r.Columns, ", "))
	}
	out := make([]time.Time, len(r.Rows))
	for i, row := range r.Rows {
		t, err := toTime(row[idx])
		if err != nil {
			return nil, fmt.Errorf("row %d, column %q: %w", i+1, col, err)
		}
		out[i] = t
	}
	return out, nil
}

// WriteJSON writes the result as an indented JSON object.
func (r *Result) WriteJSON(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(r)
}

// WriteCSV writes a header line followed by one line per row.
func (r *Result) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(r.Columns); err != nil {
		return err
	}
	record := make([]string, len(r.Columns))
	for _, row := range r.Rows {
		for i, v := range row {
			record[i] = FormatValue(v)
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

// FormatValue renders a cell for text output. NULL is empty and dates
// without a clock component print as YYYY-MM-DD.
func FormatValue(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case time.Time:
		if x.Hour() == 0 && x.Minute() == 0 && x.Second() == 0 && x.Nanosecond() == 0 {
			return x.Format(time.DateOnly)
		}
		return x.Format(time.RFC3339)
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(x), 'f', -1, 32)
	default:
		return fmt.Sprint(x)
	}
}

// floater matches decimal types such as duckdb.Decimal.
type floater interface {
	Float64() float64
}

func toFloat64(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int16:
		return float64(x), nil
	case int8:
		return float64(x), nil
	case uint64:
		return float64(x), nil
	case uint32:
		return float64(x), nil
	case uint8:
		return float64(x), nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("not a number: %q", x)
		}
		return f, nil
	case []byte:
		return toFloat64(string(x))
	case floater:
		return x.Float64(), nil
	case nil:
		return 0, fmt.Errorf("NULL value")
	default:
		return 0, fmt.Errorf("not a number: %v (%T)", v, v)
	}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	time.DateTime,
	"2006-01-02T15:04:05",
	time.DateOnly,
}

func toTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range timeLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("not a date: %q", x)
	case []byte:
		return toTime(string(x))
	case nil:
		return time.Time{}, fmt.Errorf("NULL value")
	default:
		return time.Time{}, fmt.Errorf("not a date: %v (%T)", v, v)
	}
}
