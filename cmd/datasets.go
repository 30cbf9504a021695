// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"errors"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/catalog"
)

// datasetsCmd lists the datasets of catalogs that support listing.
var datasetsCmd = &cobra.Command{
	Use:   "datasets",
	Short: "List catalog datasets",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := newSession()
		if err != nil {
			return err
		}
		lister, ok := s.cat.(catalog.Lister)
		if !ok {
			return errors.New("this catalog does not support listing datasets")
		}
		list, err := lister.ListDatasets(cmd.Context())
		if err != nil {
			return err
		}
		if len(list) == 0 {
			pterm.Info.Println("The catalog has no datasets")
			return nil
		}

		data := pterm.TableData{{"Dataset", "Data source", "Description"}}
		for _, d := range list {
			data = append(data, []string{d.Name, d.DataSource, d.Description})
		}
		return pterm.DefaultTable.WithHasHeader().WithData(data).Render()
	},
}

func init() {
	rootCmd.AddCommand(datasetsCmd)
}
