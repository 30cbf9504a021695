// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package catalog

import (
	"strings"

	verrors "vqr/cli/internal/errors"
)

// Open returns an HTTP catalog for http(s) sources and a file catalog otherwise.
// The token is only used by the HTTP catalog.
func Open(source, token string) (Catalog, error) {
	source = strings.TrimSpace(source)
	if source == "" {
		return nil, verrors.New(verrors.CatalogUnavailable, "no catalog configured (use --catalog or VQR_CATALOG)")
	}
	lower := strings.ToLower(source)
	if strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://") {
		return NewHTTP(source, token), nil
	}
	return LoadFile(strings.TrimPrefix(source, "file://"))
}
