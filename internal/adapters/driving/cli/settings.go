package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and configure where portalcheck reads its three sources from and how
candidates are matched.

Settings are stored in config.toml under the config directory. Any key can be
overridden for a single run with a PORTALCHECK_<KEY> environment variable,
e.g. PORTALCHECK_DIRECTORY_TABLE for directory.table.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long:  `Validate and persist a single setting. Run "portalcheck settings keys" for the list of keys.`,
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List setting keys",
	Args:  cobra.NoArgs,
	RunE:  runSettingsKeys,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsKeysCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	svc, err := ensureSettingsService()
	if err != nil {
		return err
	}

	settings, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	out := cmd.OutOrStdout()

	fmt.Fprintln(out, "Current Settings")
	fmt.Fprintln(out, "================")
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Missing Merchants]")
	printSource(out, settings.Missing)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Portal Mapping]")
	printSource(out, settings.Mapping)
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Google]")
	fmt.Fprintf(out, "  Credentials: %s\n", orNotSet(settings.Google.CredentialsFile))
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Company Directory]")
	fmt.Fprintf(out, "  Table: %s\n", settings.Directory.Table)
	fmt.Fprintf(out, "  Region: %s\n", settings.Directory.Region)
	fmt.Fprintf(out, "  Attribute: %s\n", settings.Directory.Attribute)
	if settings.Directory.Endpoint != "" {
		fmt.Fprintf(out, "  Endpoint: %s\n", settings.Directory.Endpoint)
	}
	if settings.Directory.PageSize > 0 {
		fmt.Fprintf(out, "  Page Size: %d\n", settings.Directory.PageSize)
	}
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Match]")
	if settings.Match.ExcludeTag == "" {
		fmt.Fprintln(out, "  Exclude: (filter disabled)")
	} else {
		fmt.Fprintf(out, "  Exclude: %q\n", settings.Match.ExcludeTag)
	}
	fmt.Fprintf(out, "  Policy: %s\n", settings.Match.Policy.Description())
	fmt.Fprintln(out)

	fmt.Fprintln(out, "[Report]")
	fmt.Fprintf(out, "  Resolve All: %t\n", settings.Report.ResolveAll)
	fmt.Fprintln(out)

	fmt.Fprintf(out, "Config file: %s\n", svc.ConfigPath())
	return nil
}

func printSource(out io.Writer, src domain.SourceSettings) {
	fmt.Fprintf(out, "  Kind: %s\n", src.Kind.Description())
	switch src.Kind {
	case domain.SourceKindSheets:
		fmt.Fprintf(out, "  Spreadsheet: %s\n", orNotSet(src.SpreadsheetID))
		fmt.Fprintf(out, "  Range: %s\n", src.Range)
	case domain.SourceKindXLSX:
		fmt.Fprintf(out, "  Path: %s\n", src.Path)
		if src.Sheet != "" {
			fmt.Fprintf(out, "  Sheet: %s\n", src.Sheet)
		} else {
			fmt.Fprintln(out, "  Sheet: (first)")
		}
	default:
		fmt.Fprintf(out, "  Path: %s\n", src.Path)
	}
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	svc, err := ensureSettingsService()
	if err != nil {
		return err
	}

	key, value := strings.TrimSpace(args[0]), args[1]
	if err := svc.Set(key, value); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Set %s = %q\n", key, value)
	return nil
}

func runSettingsKeys(cmd *cobra.Command, _ []string) error {
	svc, err := ensureSettingsService()
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, key := range svc.Keys() {
		fmt.Fprintln(out, key)
	}
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
