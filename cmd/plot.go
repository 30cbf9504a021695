// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/chart"
	"vqr/cli/internal/config"
	"vqr/cli/internal/runner"
	"vqr/cli/internal/terminal"
)

var (
	plotX   string
	plotY   []string
	plotSQL string
	plotOut string
)

// plotCmd charts numeric columns of a dataset against a date column.
var plotCmd = &cobra.Command{
	Use:   "plot <dataset>",
	Short: "Chart dataset columns over a date axis",
	Long: `The plot command runs the dataset query and draws each --y column as a
line against the --x date column. By default the chart is drawn in the
terminal; --out writes a PNG or SVG image instead.

Example:
  vqr plot USER999.DB2_STOCK_HISTORY --x TX_DATE --y OPENING --y MOVING_AVG`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(plotY) == 0 {
			return errors.New("at least one --y column is required")
		}
		if plotOut != "" && !chart.SupportedImage(plotOut) {
			return errors.New("--out must end in .png, .svg, .pdf or .jpg")
		}

		s, err := newSession()
		if err != nil {
			return err
		}

		var out *runner.Output
		err = withSpinner("querying "+args[0], func() error {
			var rerr error
			out, rerr = s.runner.Run(cmd.Context(), runner.Request{Dataset: args[0], SQL: plotSQL})
			return rerr
		})
		if err != nil {
			return err
		}
		return renderChart(out, args[0], plotX, plotY, plotOut, s.cfg.Chart)
	},
}

func init() {
	plotCmd.Flags().StringVar(&plotX, "x", "", "Date column for the x axis")
	plotCmd.Flags().StringArrayVar(&plotY, "y", nil, "Numeric column to plot (repeatable)")
	plotCmd.Flags().StringVar(&plotSQL, "sql", "", "Query text to run instead of SELECT *")
	plotCmd.Flags().StringVar(&plotOut, "out", "", "Write the chart to an image file")
	_ = plotCmd.MarkFlagRequired("x")
	rootCmd.AddCommand(plotCmd)
}

// renderChart draws out as a chart in the terminal or to outPath.
func renderChart(out *runner.Output, title, x string, y []string, outPath string, dims config.ChartConfig) error {
	c, err := chart.FromResult(out.Result, x, y...)
	if err != nil {
		return err
	}
	c.Title = title

	if outPath != "" {
		if err := chart.SavePNG(outPath, c); err != nil {
			return err
		}
		pterm.Success.Println("Chart written to " + outPath)
		return nil
	}

	width, _ := terminal.Size(dims.Width, dims.Height)
	// Leave room for the y axis labels.
	width -= 12
	if dims.Width > 0 && width > dims.Width {
		width = dims.Width
	}
	return chart.Terminal(os.Stdout, c, width, dims.Height)
}
