// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package errors

import (
	stderrors "errors"
	"fmt"
	"testing"
)

func TestWrapKeepsUnderlyingError(t *testing.T) {
	base := stderrors.New("connection refused")
	err := fmt.Errorf("run: %w", Wrap(ConnectFailed, "open data source", base))

	if !stderrors.Is(err, base) {
		t.Fatalf("errors.Is() lost the underlying error: %v", err)
	}
	if got := KindOf(err); got != ConnectFailed {
		t.Errorf("KindOf() = %q, want %q", got, ConnectFailed)
	}
}

func TestIs(t *testing.T) {
	inner := New(DatasetNotFound, "USER999.NOPE")
	outer := Wrap(CatalogUnavailable, "lookup", inner)

	tests := []struct {
		name string
		err  error
		kind Kind
		want bool
	}{
		{name: "outer kind", err: outer, kind: CatalogUnavailable, want: true},
		{name: "inner kind", err: outer, kind: DatasetNotFound, want: true},
		{name: "absent kind", err: outer, kind: QueryFailed, want: false},
		{name: "plain error", err: stderrors.New("x"), kind: QueryFailed, want: false},
		{name: "nil", err: nil, kind: QueryFailed, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Is(tt.err, tt.kind); got != tt.want {
				t.Errorf("Is() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestErrorString(t *testing.T) {
	if got := New(QueryFailed, "boom").Error(); got != "query_failed: boom" {
		t.Errorf("Error() = %q", got)
	}
	if got := Wrap(QueryFailed, "boom", stderrors.New("syntax")).Error(); got != "query_failed: boom: syntax" {
		t.Errorf("Error() = %q", got)
	}
}
