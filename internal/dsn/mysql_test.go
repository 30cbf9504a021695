// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package dsn

import (
	"testing"

	"github.com/go-sql-driver/mysql"
)

func TestMySQLResolver(t *testing.T) {
	resolver := NewMySQLResolver()

	tests := []struct {
		name       string
		dsn        string
		user       string
		password   string
		wantAddr   string
		wantDB     string
		wantUser   string
		wantPass   string
		wantParams map[string]string
	}{
		{
			name:     "jdbc drops driver properties",
			dsn:      "jdbc:mysql://mysql.example.com/STOCKS?useSSL=false&user=analyst",
			password: "pw",
			wantAddr: "mysql.example.com:3306",
			wantDB:   "STOCKS",
			wantUser: "analyst",
			wantPass: "pw",
		},
		{
			name:       "url form keeps params",
			dsn:        "mysql://analyst:pw@mysql.example.com:3307/STOCKS?autocommit=1",
			wantAddr:   "mysql.example.com:3307",
			wantDB:     "STOCKS",
			wantUser:   "analyst",
			wantPass:   "pw",
			wantParams: map[string]string{"autocommit": "1"},
		},
		{
			name:     "go driver DSN",
			dsn:      "analyst:pw@tcp(mysql.example.com:3306)/STOCKS",
			wantAddr: "mysql.example.com:3306",
			wantDB:   "STOCKS",
			wantUser: "analyst",
			wantPass: "pw",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info, err := resolver.Parse(tt.dsn)
			if err != nil {
				t.Fatalf("Parse() error = %v", err)
			}
			normalized, err := resolver.Normalize(info.WithCredentials(tt.user, tt.password))
			if err != nil {
				t.Fatalf("Normalize() error = %v", err)
			}

			cfg, err := mysql.ParseDSN(normalized)
			if err != nil {
				t.Fatalf("normalized DSN %q does not parse: %v", normalized, err)
			}
			if cfg.Addr != tt.wantAddr {
				t.Errorf("Addr = %q, want %q", cfg.Addr, tt.wantAddr)
			}
			if cfg.DBName != tt.wantDB {
				t.Errorf("DBName = %q, want %q", cfg.DBName, tt.wantDB)
			}
			if cfg.User != tt.wantUser || cfg.Passwd != tt.wantPass {
				t.Errorf("credentials = %q/%q, want %q/%q", cfg.User, cfg.Passwd, tt.wantUser, tt.wantPass)
			}
			if !cfg.ParseTime {
				t.Error("ParseTime not enabled")
			}
			if cfg.Params["sql_mode"] != ansiQuotes {
				t.Errorf("sql_mode = %q, want %q", cfg.Params["sql_mode"], ansiQuotes)
			}
			if _, ok := cfg.Params["useSSL"]; ok {
				t.Error("JDBC-only property passed to the driver")
			}
			for k, v := range tt.wantParams {
				if cfg.Params[k] != v {
					t.Errorf("Params[%s] = %q, want %q", k, cfg.Params[k], v)
				}
			}
		})
	}
}

func TestMySQLResolverRequiresUser(t *testing.T) {
	resolver := NewMySQLResolver()
	info, err := resolver.Parse("jdbc:mysql://mysql.example.com/STOCKS")
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if _, err := resolver.Normalize(info); err == nil {
		t.Error("expected missing username error")
	}
}
