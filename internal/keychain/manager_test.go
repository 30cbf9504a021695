// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package keychain

import (
	"errors"
	"testing"
)

// memBackend is an in-memory keychainBackend.
type memBackend map[string]string

func (m memBackend) Set(key, value string) error { m[key] = value; return nil }

func (m memBackend) Get(key string) (string, error) {
	v, ok := m[key]
	if !ok {
		return "", ErrNotFound
	}
	return v, nil
}

func (m memBackend) Delete(key string) error { delete(m, key); return nil }

func TestCatalogTokenLifecycle(t *testing.T) {
	store := memBackend{}
	m := &Manager{backend: store}

	if _, err := m.LoadCatalogToken(); !errors.Is(err, ErrNotFound) {
		t.Fatalf("LoadCatalogToken() on empty store error = %v, want ErrNotFound", err)
	}

	if err := m.SaveCatalogToken("  tok-123\n"); err != nil {
		t.Fatalf("SaveCatalogToken() error = %v", err)
	}
	if store[KeyCatalogToken] != "tok-123" {
		t.Errorf("stored token = %q, want trimmed value", store[KeyCatalogToken])
	}

	got, err := m.LoadCatalogToken()
	if err != nil || got != "tok-123" {
		t.Fatalf("LoadCatalogToken() = %q, %v", got, err)
	}

	if err := m.ClearCatalogToken(); err != nil {
		t.Fatalf("ClearCatalogToken() error = %v", err)
	}
	if _, err := m.LoadCatalogToken(); !errors.Is(err, ErrNotFound) {
		t.Errorf("token still present after clear: %v", err)
	}
	if err := m.ClearCatalogToken(); err != nil {
		t.Errorf("clearing a missing token should succeed, got %v", err)
	}
}

func TestSaveCatalogTokenRejectsEmpty(t *testing.T) {
	m := &Manager{backend: memBackend{}}
	if err := m.SaveCatalogToken("   "); err == nil {
		t.Error("expected error for blank token")
	}
}

func TestLoadCatalogTokenEmptyValue(t *testing.T) {
	m := &Manager{backend: memBackend{KeyCatalogToken: ""}}
	if _, err := m.LoadCatalogToken(); !errors.Is(err, ErrNotFound) {
		t.Errorf("empty stored value error = %v, want ErrNotFound", err)
	}
}
