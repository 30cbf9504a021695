// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package logging

import (
	"io"
	"os"

	"github.com/pterm/pterm"
)

// New returns a structured logger writing to w (stderr when nil).
// Debug lines are emitted only when verbose is set.
func New(w io.Writer, verbose bool) *pterm.Logger {
	if w == nil {
		w = os.Stderr
	}
	level := pterm.LogLevelInfo
	if verbose {
		level = pterm.LogLevelDebug
	}
	return pterm.DefaultLogger.WithWriter(w).WithLevel(level).WithTime(false)
}

// Discard returns a logger that drops everything.
func Discard() *pterm.Logger {
	return pterm.DefaultLogger.WithWriter(io.Discard).WithLevel(pterm.LogLevelDisabled)
}

// MaskArgs masks every string value in a key/value list so it can be passed
// to pterm.Logger.Args without leaking credentials.
func MaskArgs(kv ...any) []any {
	out := make([]any, len(kv))
	for i, v := range kv {
		if s, ok := v.(string); ok && i%2 == 1 {
			out[i] = Mask(s)
			continue
		}
		out[i] = v
	}
	return out
}
