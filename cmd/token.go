// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

package cmd

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/catalog"
	"vqr/cli/internal/config"
	"vqr/cli/internal/keychain"
	"vqr/cli/internal/terminal"
)

var clearToken bool

// tokenCmd stores the catalog service API token in the OS keychain.
var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Store the catalog service API token in the OS keychain",
	Long: `The token command prompts for the API token of the catalog service and stores
it in the OS keychain. Remote catalogs use it as a bearer token. When a
catalog URL is configured the token is checked against it before saving.

A catalog URL passed with --catalog is also saved to the config file.
VQR_CATALOG_TOKEN, when set, takes precedence over the stored token.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		km, err := keychain.GetManager()
		if err != nil {
			pterm.Println("❌ Secure storage is not available on this system.")
			pterm.Println("   Set VQR_CATALOG_TOKEN instead.")
			return err
		}

		if clearToken {
			if err := km.ClearCatalogToken(); err != nil {
				return err
			}
			pterm.Success.Println("Catalog token removed from the keychain")
			return nil
		}

		promptText := "Enter catalog API token: "
		fmt.Print(promptText)
		var token string
		if terminal.IsTerminal() {
			token, err = terminal.ReadSecret()
			fmt.Println()
		} else {
			token, err = bufio.NewReader(os.Stdin).ReadString('\n')
			if errors.Is(err, io.EOF) {
				err = nil
			}
		}
		if err != nil {
			return err
		}
		token = strings.TrimSpace(token)

		// Clear the prompt from the terminal; the input itself was not echoed.
		terminal.ClearPreviousLines(len(promptText))

		if token == "" {
			return errors.New("token is required")
		}

		cfg, _ := config.Load()
		if source := cfg.CatalogSource(catalogFlag); isRemote(source) {
			err := withSpinner("verifying token", func() error {
				_, err := catalog.NewHTTP(source, token).ListDatasets(cmd.Context())
				return err
			})
			if err != nil {
				pterm.Println("Token check failed. Please check the token and the catalog URL.")
				return err
			}
		}

		if err := km.SaveCatalogToken(token); err != nil {
			pterm.Println("❌ Failed to save the token securely.")
			return err
		}
		pterm.Success.Println("Catalog token saved to the OS keychain")

		// Remember a catalog URL given on the command line for later runs.
		if catalogFlag != "" && isRemote(catalogFlag) && cfg.Catalog != catalogFlag {
			cfg.Catalog = catalogFlag
			if err := config.Save(cfg); err != nil {
				pterm.Warning.Println("Could not save catalog URL to config: " + err.Error())
			}
		}
		return nil
	},
}

func init() {
	tokenCmd.Flags().BoolVar(&clearToken, "clear", false, "Remove the stored token")
	rootCmd.AddCommand(tokenCmd)
}

func isRemote(source string) bool {
	lower := strings.ToLower(source)
	return strings.HasPrefix(lower, "http://") || strings.HasPrefix(lower, "https://")
}
