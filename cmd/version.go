// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import "runtime"

var (
	// Version holds the CLI version information.
	// This value is typically set at build time using -ldflags.
	Version = "0.0.0-dev"
	// Commit is the source revision, also set with -ldflags.
	Commit = ""
)

// versionString formats the version line printed by --version.
func versionString() string {
	s := "vqr " + Version
	if Commit != "" {
		s += " (" + Commit + ")"
	}
	return s + " " + runtime.GOOS + "/" + runtime.GOARCH
}
