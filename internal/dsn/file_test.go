// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import "testing"

func TestFileResolver(t *testing.T) {
	tests := []struct {
		name        string
		driverClass string
		url         string
		wantDriver  Driver
		want        string
	}{
		{name: "jdbc sqlite", driverClass: "org.sqlite.JDBC", url: "jdbc:sqlite:/data/stocks.db", wantDriver: DriverSQLite, want: "/data/stocks.db"},
		{name: "sqlite scheme", driverClass: "sqlite3", url: "sqlite:/data/stocks.db", wantDriver: DriverSQLite, want: "/data/stocks.db"},
		{name: "sqlite file URI", driverClass: "sqlite3", url: "file:/data/stocks.db?mode=ro", wantDriver: DriverSQLite, want: "file:/data/stocks.db?mode=ro"},
		{name: "sqlite memory", driverClass: "sqlite3", url: ":memory:", wantDriver: DriverSQLite, want: ":memory:"},
		{name: "jdbc duckdb", driverClass: "org.duckdb.DuckDBDriver", url: "jdbc:duckdb:/lake/history.duckdb", wantDriver: DriverDuckDB, want: "/lake/history.duckdb"},
		{name: "duckdb in memory", driverClass: "duckdb", url: "", wantDriver: DriverDuckDB, want: ""},
		{name: "credentials ignored", driverClass: "duckdb", url: "jdbc:duckdb:/lake/x.duckdb", wantDriver: DriverDuckDB, want: "/lake/x.duckdb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, got, err := Resolve(tt.driverClass, tt.url, "user", "password")
			if err != nil {
				t.Fatalf("Resolve() error = %v", err)
			}
			if d != tt.wantDriver {
				t.Errorf("driver = %q, want %q", d, tt.wantDriver)
			}
			if got != tt.want {
				t.Errorf("Resolve() = %q, want %q", got, tt.want)
			}
		})
	}
}
