// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package httperrors

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"syscall"
	"testing"

	"vqr/cli/internal/catalog"
)

func TestDiagnose(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantTitle string
		wantHint  string
	}{
		{
			name:      "unauthorized",
			err:       fmt.Errorf("lookup: %w", &catalog.StatusError{URL: "https://cat/v1/datasets/x", StatusCode: 401}),
			wantTitle: "rejected the API token",
			wantHint:  "vqr token",
		},
		{
			name:      "server error",
			err:       &catalog.StatusError{URL: "https://cat/v1/datasets/x", StatusCode: 503},
			wantTitle: "Catalog service error",
			wantHint:  "503",
		},
		{
			name:      "deadline",
			err:       fmt.Errorf("get: %w", context.DeadlineExceeded),
			wantTitle: "Connection timeout",
			wantHint:  "cat.example.com",
		},
		{
			name:      "dns",
			err:       &net.DNSError{Err: "no such host", Name: "cat.example.com"},
			wantTitle: "Cannot resolve cat.example.com",
			wantHint:  "host name",
		},
		{
			name:      "refused",
			err:       &net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED},
			wantTitle: "Connection refused",
			wantHint:  "port",
		},
		{
			name:      "tls",
			err:       errors.New("x509: certificate signed by unknown authority"),
			wantTitle: "Secure connection failed",
			wantHint:  "date and time",
		},
		{
			name:      "generic",
			err:       errors.New("unexpected EOF"),
			wantTitle: "Cannot reach cat.example.com",
			wantHint:  "unexpected EOF",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := Diagnose(tt.err, "looking up dataset", "cat.example.com")
			if !strings.Contains(d.Title, tt.wantTitle) {
				t.Errorf("Title = %q, want it to contain %q", d.Title, tt.wantTitle)
			}
			if !strings.Contains(strings.Join(d.Hints, "\n"), tt.wantHint) {
				t.Errorf("Hints = %q, want one containing %q", d.Hints, tt.wantHint)
			}
		})
	}
}

func TestExtractHostFromURL(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{in: "https://catalog.example.com/api", want: "catalog.example.com"},
		{in: "jdbc:postgresql://db2.example.com:5432/STOCKS", want: "db2.example.com:5432"},
		{in: "jdbc:sqlserver://mssql.example.com:1433;databaseName=STOCKS", want: "mssql.example.com:1433"},
		{in: "/data/catalog.yaml", want: ""},
	}
	for _, tt := range tests {
		if got := ExtractHostFromURL(tt.in); got != tt.want {
			t.Errorf("ExtractHostFromURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestIsNetworkError(t *testing.T) {
	if IsNetworkError(nil) {
		t.Error("nil is not a network error")
	}
	if !IsNetworkError(&net.OpError{Op: "dial", Net: "tcp", Err: syscall.ECONNREFUSED}) {
		t.Error("dial error should be a network error")
	}
	if IsNetworkError(&catalog.StatusError{StatusCode: 404}) {
		t.Error("404 is not a network error")
	}
	if IsNetworkError(errors.New("yaml: line 3: bad indentation")) {
		t.Error("parse error is not a network error")
	}
}
