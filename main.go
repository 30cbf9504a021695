// Package main is the entry point for the vqr CLI.
// vqr runs queries against catalog datasets and charts the results.
package main

import (
	"vqr/cli/cmd"
)

func main() {
	cmd.Execute()
}
