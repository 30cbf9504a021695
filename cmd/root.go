// Copyright (c) 2025 Seedfast
// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package cmd provides the command-line interface for vqr.
// It implements subcommands that query, describe and chart catalog datasets
// using the Cobra CLI framework, with pterm for terminal output.
package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"vqr/cli/internal/catalog"
	"vqr/cli/internal/config"
	verrors "vqr/cli/internal/errors"
	"vqr/cli/internal/httperrors"
	"vqr/cli/internal/keychain"
	"vqr/cli/internal/logging"
	"vqr/cli/internal/runner"
)

var (
	showVersion bool
	catalogFlag string
	verboseFlag bool

	// activeSource is the catalog the current command opened, for error hints.
	activeSource string
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "vqr",
	Short: "Query and chart virtualized datasets",
	Long: `vqr resolves logical dataset names through a catalog, runs a query against
the backing data source and previews the result as a table or a time-series chart.

The catalog is a YAML file or the URL of a catalog service:
  vqr --catalog ./catalog.yaml query USER999.AWS_ACCOUNTS
  VQR_CATALOG=https://catalog.example.com vqr datasets`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if showVersion {
			fmt.Println(versionString())
			return nil
		}
		return cmd.Help()
	},
}

// Execute runs the CLI application and exits non-zero on failure.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		reportError(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().BoolVar(&showVersion, "version", false, "Show CLI version information")
	rootCmd.PersistentFlags().StringVar(&catalogFlag, "catalog", "", "Catalog file path or service URL (env VQR_CATALOG)")
	rootCmd.PersistentFlags().BoolVarP(&verboseFlag, "verbose", "v", false, "Enable debug logging")
}

// session is what every data command needs: settings, a logger and a runner.
type session struct {
	cfg    config.Config
	log    *pterm.Logger
	source string
	cat    catalog.Catalog
	runner *runner.Runner
}

// newSession loads configuration and opens the catalog.
func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		// A broken config file should not block queries; defaults apply.
		pterm.Warning.Println("Ignoring unreadable config file: " + err.Error())
	}
	verbose := cfg.Verbose(verboseFlag)
	if verbose {
		// The macOS keychain backend reads this directly.
		_ = os.Setenv(config.EnvVerbose, "1")
	}
	log := logging.New(os.Stderr, verbose)

	source := cfg.CatalogSource(catalogFlag)
	activeSource = source
	token := catalogToken(source, log)
	log.Debug("opening catalog", log.Args(logging.MaskArgs("source", source)...))

	cat, err := catalog.Open(source, token)
	if err != nil {
		return nil, err
	}
	return &session{
		cfg:    cfg,
		log:    log,
		source: source,
		cat:    cat,
		runner: runner.New(cat, log),
	}, nil
}

// catalogToken returns the API token for remote catalogs: VQR_CATALOG_TOKEN
// first, then the OS keychain. File catalogs need none.
func catalogToken(source string, log *pterm.Logger) string {
	if !isRemote(source) {
		return ""
	}
	if t := strings.TrimSpace(os.Getenv(config.EnvCatalogToken)); t != "" {
		return t
	}
	km, err := keychain.GetManager()
	if err != nil {
		log.Debug("keychain unavailable", log.Args("error", err.Error()))
		return ""
	}
	t, err := km.LoadCatalogToken()
	if err != nil {
		if !errors.Is(err, keychain.ErrNotFound) {
			log.Debug("reading catalog token", log.Args("error", err.Error()))
		}
		return ""
	}
	return t
}

// reportError prints err with credentials masked. Network failures get
// troubleshooting hints.
func reportError(err error) {
	switch verrors.KindOf(err) {
	case verrors.CatalogUnavailable:
		if httperrors.IsNetworkError(err) {
			httperrors.Print(err, "reading the catalog", httperrors.ExtractHostFromURL(activeSource))
		}
	case verrors.ConnectFailed:
		if httperrors.IsNetworkError(err) {
			httperrors.Print(err, "connecting to the data source", "")
		}
	}
	pterm.Error.Println(logging.PresentError("", err))
}
