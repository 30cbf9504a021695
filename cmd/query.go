// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/runner"
	"vqr/cli/internal/sqlexec"
)

var (
	querySQL    string
	queryRows   int
	queryOutput string
)

// queryCmd runs a dataset query and previews the first rows.
var queryCmd = &cobra.Command{
	Use:   "query <dataset>",
	Short: "Run a dataset query and preview the result",
	Long: `The query command looks up the dataset in the catalog, runs its query
against the backing data source and prints the first rows.

Without --sql the query is SELECT * FROM the dataset's table. A query stored
on the dataset descriptor always takes precedence over both.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		switch queryOutput {
		case "table", "json", "csv":
		default:
			return fmt.Errorf("unknown output format %q (use table, json or csv)", queryOutput)
		}

		s, err := newSession()
		if err != nil {
			return err
		}
		rows := queryRows
		if !cmd.Flags().Changed("rows") {
			rows = s.cfg.PreviewRows
		}

		var out *runner.Output
		err = withSpinner("querying "+args[0], func() error {
			var rerr error
			out, rerr = s.runner.Run(cmd.Context(), runner.Request{Dataset: args[0], SQL: querySQL})
			return rerr
		})
		if err != nil {
			return err
		}
		return writeResult(os.Stdout, out, rows, queryOutput)
	},
}

func init() {
	queryCmd.Flags().StringVar(&querySQL, "sql", "", "Query text to run instead of SELECT *")
	queryCmd.Flags().IntVar(&queryRows, "rows", 5, "Number of rows to preview (0 for all)")
	queryCmd.Flags().StringVarP(&queryOutput, "output", "o", "table", "Output format: table, json or csv")
	rootCmd.AddCommand(queryCmd)
}

// writeResult prints the first rows of out in the requested format.
func writeResult(w io.Writer, out *runner.Output, rows int, format string) error {
	head := out.Result.Head(rows)
	switch format {
	case "json":
		return head.WriteJSON(w)
	case "csv":
		return head.WriteCSV(w)
	}

	if len(out.Result.Columns) == 0 {
		pterm.Info.Println("Query returned no columns")
		return nil
	}
	if err := printTable(w, head); err != nil {
		return err
	}
	fmt.Fprintln(w, summary(out.Result, head))
	return nil
}

func summary(all, shown *sqlexec.Result) string {
	if shown.Len() < all.Len() {
		return fmt.Sprintf("%d of %d rows", shown.Len(), all.Len())
	}
	if all.Len() == 1 {
		return "1 row"
	}
	return fmt.Sprintf("%d rows", all.Len())
}
