// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/catalog"
	"vqr/cli/internal/dsn"
	"vqr/cli/internal/logging"
	"vqr/cli/internal/query"
	"vqr/cli/internal/runner"
)

var describeSQL string

// describeCmd shows how a dataset resolves without connecting to it.
var describeCmd = &cobra.Command{
	Use:   "describe <dataset>",
	Short: "Show a dataset, its data source and the query that would run",
	Long: `The describe command prints the dataset and data source descriptors from the
catalog and the query text a run would execute. Credentials are masked and no
connection is opened.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		ctx := cmd.Context()

		ds, q, err := s.runner.Plan(ctx, runner.Request{Dataset: args[0], SQL: describeSQL})
		if err != nil {
			return err
		}
		src, err := s.cat.LookupDataSource(ctx, ds.DataSource)
		if err != nil {
			return err
		}

		pterm.DefaultSection.Println(ds.Name)
		pterm.Println(describeDataset(ds))
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint("Data Source")).
			WithPadding(1).
			Println(describeDataSource(src))
		pterm.Println()

		title := "Query"
		if query.Overridden(ds) {
			title = "Query (dataset override)"
		}
		pterm.DefaultBox.
			WithTitle(pterm.NewStyle(pterm.FgCyan, pterm.Bold).Sprint(title)).
			WithPadding(1).
			Println(strings.TrimSpace(q))
		pterm.Println()
		return nil
	},
}

func init() {
	describeCmd.Flags().StringVar(&describeSQL, "sql", "", "Query text to show instead of SELECT *")
	rootCmd.AddCommand(describeCmd)
}

func describeDataset(ds *catalog.Dataset) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Data source: %s\n", ds.DataSource)
	schema := ds.Schema
	if strings.TrimSpace(schema) == "" {
		schema = "(none)"
	}
	fmt.Fprintf(&b, "Schema:      %s\n", schema)
	fmt.Fprintf(&b, "Table:       %s", ds.Table)
	if ds.Description != "" {
		fmt.Fprintf(&b, "\nDescription: %s", ds.Description)
	}
	return b.String()
}

func describeDataSource(src *catalog.DataSource) string {
	driver := dsn.DetectDriver(src.DriverClass, src.URL)
	driverName := string(driver)
	if driver == dsn.DriverUnknown {
		driverName = "unsupported"
	}
	password := ""
	if src.Password != "" {
		password = "***"
	}
	return strings.Join([]string{
		"ID:       " + src.ID,
		"Driver:   " + src.DriverClass + " (" + driverName + ")",
		"URL:      " + logging.Mask(src.URL),
		"User:     " + src.User,
		"Password: " + password,
	}, "\n")
}
