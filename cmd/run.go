// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/notebook"
	"vqr/cli/internal/runner"
)

// runCmd runs the cells of a notebook file in order.
var runCmd = &cobra.Command{
	Use:   "run <notebook.yaml>",
	Short: "Run the query cells of a notebook file",
	Long: `The run command executes each cell of a notebook file in order. A cell
queries one dataset and prints a preview, or draws a chart when it has a
plot section. The first failing cell stops the run.

Example notebook:
  cells:
    - title: AWS accounts
      dataset: USER999.AWS_ACCOUNTS
    - title: AAPL opening price
      dataset: USER999.DB2_STOCK_HISTORY
      plot:
        x: TX_DATE
        y: [OPENING, MOVING_AVG]`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		nb, err := notebook.Load(args[0])
		if err != nil {
			return err
		}
		s, err := newSession()
		if err != nil {
			return err
		}

		r := spinnerRunner{s.runner}
		return nb.Run(cmd.Context(), r, func(i int, c notebook.Cell, out *runner.Output) error {
			pterm.DefaultSection.Println(fmt.Sprintf("[%d/%d] %s", i, len(nb.Cells), c.Name()))
			if c.Plot != nil {
				return renderChart(out, c.Name(), c.Plot.X, c.Plot.Y, nb.OutputPath(c.Plot.Out), s.cfg.Chart)
			}
			rows := c.Rows
			if rows == 0 {
				rows = s.cfg.PreviewRows
			}
			return writeResult(os.Stdout, out, rows, "table")
		})
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

// spinnerRunner shows a spinner while each cell's query runs.
type spinnerRunner struct {
	r *runner.Runner
}

func (s spinnerRunner) Run(ctx context.Context, req runner.Request) (*runner.Output, error) {
	var out *runner.Output
	err := withSpinner("querying "+req.Dataset, func() error {
		var rerr error
		out, rerr = s.r.Run(ctx, req)
		return rerr
	})
	return out, err
}
