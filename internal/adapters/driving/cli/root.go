// Package cli is the portalcheck command-line surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"os/signal"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/portalcheck/internal/adapters/driven/config/env"
	"github.com/custodia-labs/portalcheck/internal/adapters/driven/config/file"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driving"
	"github.com/custodia-labs/portalcheck/internal/core/services"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

const defaultEnvFile = ".env"

// version is set at build time with -ldflags "-X .../cli.version=...".
var version = "dev"

// Services used by the commands. Nil services are wired on first use;
// tests replace them with mocks.
var (
	reconcileService driving.ReconcileService
	settingsService  driving.SettingsService
)

// Persistent flags.
var (
	verbose     bool
	configDir   string
	envFile     string
	resolveAll  bool
	matchPolicy string
)

var rootCmd = &cobra.Command{
	Use:   "portalcheck",
	Short: "Reconcile missing merchants against portals and onboarded companies",
	Long: `portalcheck reads the missing-merchant list, rewrites each candidate to its
canonical merchant name using the portal mapping, reports the portal URL of the
first matched name, and lists which matched names already exist in the company
directory.

Running portalcheck without a subcommand is the same as "portalcheck reconcile".`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runReconcile,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	flags.StringVar(&configDir, "config-dir", "", "configuration directory (default ~/"+file.DefaultDirName+")")
	flags.StringVar(&envFile, "env-file", defaultEnvFile, "dotenv file loaded into the environment before running")
	flags.BoolVar(&resolveAll, "resolve-all", false, "look up the portal of every matched name, not just the first")
	flags.StringVar(&matchPolicy, "match-policy", "", "containment tie-break: first or longest (overrides match.policy)")
}

// Execute runs the root command, cancelling on interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(verbose)
	return loadEnvFile(cmd)
}

// loadEnvFile loads --env-file. The default file is optional; an explicitly
// named file must exist. Variables already set in the environment win.
func loadEnvFile(cmd *cobra.Command) error {
	if envFile == "" {
		return nil
	}
	err := godotenv.Load(envFile)
	if err == nil {
		logger.Debug("loaded environment from %s", envFile)
		return nil
	}
	if errors.Is(err, fs.ErrNotExist) && !cmd.Flags().Changed("env-file") {
		return nil
	}
	return fmt.Errorf("load env file %s: %w", envFile, err)
}

// ensureSettingsService opens the TOML config under --config-dir with
// PORTALCHECK_* environment overrides on top.
func ensureSettingsService() (driving.SettingsService, error) {
	if settingsService != nil {
		return settingsService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	settingsService = services.NewSettingsService(env.NewOverlay(store))
	return settingsService, nil
}
