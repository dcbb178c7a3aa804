package cli

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/portalcheck/internal/connectors"
	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driving"
	"github.com/custodia-labs/portalcheck/internal/core/services"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

var reconcileCmd = &cobra.Command{
	Use:   "reconcile",
	Short: "Run one reconciliation and print the summary",
	Long: `Loads the missing-merchant list, the portal mapping and the company directory,
then prints the portal of the first matched name and the matched names that are
already onboarded. A source that cannot be read is reported as a warning and
treated as empty.`,
	Args: cobra.NoArgs,
	RunE: runReconcile,
}

func init() {
	rootCmd.AddCommand(reconcileCmd)
}

func runReconcile(cmd *cobra.Command, _ []string) error {
	if matchPolicy != "" && !domain.MatchPolicy(matchPolicy).IsValid() {
		return fmt.Errorf("%w: --match-policy must be first or longest, got %q", domain.ErrInvalidInput, matchPolicy)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := ensureReconcileService(ctx)
	if err != nil {
		return err
	}

	report, err := svc.Run(ctx)
	if err != nil {
		return fmt.Errorf("reconcile failed: %w", err)
	}

	printReport(cmd.OutOrStdout(), report)
	return nil
}

// ensureReconcileService wires the sources from the effective settings.
func ensureReconcileService(ctx context.Context) (driving.ReconcileService, error) {
	if reconcileService != nil {
		return reconcileService, nil
	}

	settingsSvc, err := ensureSettingsService()
	if err != nil {
		return nil, err
	}
	settings, err := settingsSvc.Get()
	if err != nil {
		return nil, fmt.Errorf("failed to get settings: %w", err)
	}
	applyFlagOverrides(settings)
	logger.Debug("settings from %s", settingsSvc.ConfigPath())

	sources := connectors.NewFactory(*settings).Build(ctx)
	reconcileService = services.NewReconcileService(
		sources.Missing,
		sources.Mapping,
		sources.Directory,
		settings.Match,
		settings.Report,
	)
	return reconcileService, nil
}

func applyFlagOverrides(settings *domain.Settings) {
	if resolveAll {
		settings.Report.ResolveAll = true
	}
	if matchPolicy != "" {
		settings.Match.Policy = domain.MatchPolicy(matchPolicy)
	}
}

// printReport writes the run summary to out.
func printReport(out io.Writer, report *domain.Report) {
	fmt.Fprintf(out, "Run %s\n", report.RunID)
	if report.ExcludeTag != "" {
		fmt.Fprintf(out, "Candidates: %d (%d excluded by %q, %d rewritten to canonical names)\n",
			report.Candidates, report.Excluded, report.ExcludeTag, report.Rewritten)
	} else {
		fmt.Fprintf(out, "Candidates: %d (%d rewritten to canonical names)\n", report.Candidates, report.Rewritten)
	}

	printLookup(out, report.Portal, "")
	if len(report.Portals) > 0 {
		fmt.Fprintln(out, "Portals:")
		for _, lookup := range report.Portals {
			printLookup(out, lookup, "  "+lookup.Name+": ")
		}
	}

	if len(report.Existing) == 0 {
		fmt.Fprintln(out, "No matching names found.")
	} else {
		fmt.Fprintf(out, "Matched Company Names: %d\n", len(report.Existing))
		for _, name := range report.Existing {
			fmt.Fprintf(out, "  %s\n", name)
		}
	}

	for _, f := range report.Failures {
		fmt.Fprintf(out, "Warning: %v\n", failureMessage(f))
	}
}

func printLookup(out io.Writer, lookup domain.PortalLookup, prefix string) {
	if lookup.Found {
		fmt.Fprintf(out, "%sFound %s\n", prefix, lookup.URL)
		return
	}
	fmt.Fprintf(out, "%sNot Found\n", prefix)
}

// failureMessage prefixes the source name unless the error already carries it.
func failureMessage(f domain.SourceFailure) string {
	var srcErr *domain.SourceError
	if errors.As(f.Err, &srcErr) {
		return f.Err.Error()
	}
	return fmt.Sprintf("%s: %v", f.Source, f.Err)
}
