package cli

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
)

func sampleReport() *domain.Report {
	return &domain.Report{
		RunID:      "3f1c2d4e-0000-4000-8000-000000000001",
		StartedAt:  time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
		ExcludeTag: domain.DefaultExcludeTag,
		Candidates: 3,
		Excluded:   1,
		Rewritten:  1,
		Matched:    []string{"Aldo Shoes", "Nike"},
		Portal:     domain.PortalLookup{Name: "Aldo Shoes", URL: "http://portal/aldo", Found: true},
		Existing:   []string{"Aldo Shoes"},
	}
}

func runRoot(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	if args == nil {
		// cobra reads os.Args when given nil
		args = []string{}
	}
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return buf.String(), err
}

func TestReconcileCmd_Use(t *testing.T) {
	assert.Equal(t, "reconcile", reconcileCmd.Use)
	assert.Equal(t, "Run one reconciliation and print the summary", reconcileCmd.Short)
}

func TestReconcileCmd_PrintsSummary(t *testing.T) {
	mock := &mockReconcileService{report: sampleReport()}
	setupTestServices(t, mock, newMockSettingsService())

	out, err := runRoot(t, "reconcile")

	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, out, "Run 3f1c2d4e-0000-4000-8000-000000000001\n")
	assert.Contains(t, out, `Candidates: 3 (1 excluded by "Card Linked", 1 rewritten to canonical names)`)
	assert.Contains(t, out, "Found http://portal/aldo\n")
	assert.Contains(t, out, "Matched Company Names: 1\n  Aldo Shoes\n")
	assert.NotContains(t, out, "Warning:")
}

func TestRootCmd_RunsReconcileWithoutSubcommand(t *testing.T) {
	mock := &mockReconcileService{report: sampleReport()}
	setupTestServices(t, mock, newMockSettingsService())

	out, err := runRoot(t)

	require.NoError(t, err)
	assert.Equal(t, 1, mock.calls)
	assert.Contains(t, out, "Found http://portal/aldo")
}

func TestReconcileCmd_NotFoundAndNoMatches(t *testing.T) {
	report := &domain.Report{RunID: "run-1", ExcludeTag: domain.DefaultExcludeTag}
	setupTestServices(t, &mockReconcileService{report: report}, newMockSettingsService())

	out, err := runRoot(t, "reconcile")

	require.NoError(t, err)
	assert.Contains(t, out, "Not Found\n")
	assert.Contains(t, out, "No matching names found.\n")
}

func TestReconcileCmd_FilterDisabled(t *testing.T) {
	report := &domain.Report{RunID: "run-1", Candidates: 2, Rewritten: 2}
	setupTestServices(t, &mockReconcileService{report: report}, newMockSettingsService())

	out, err := runRoot(t, "reconcile")

	require.NoError(t, err)
	assert.Contains(t, out, "Candidates: 2 (2 rewritten to canonical names)")
	assert.NotContains(t, out, "excluded by")
}

func TestReconcileCmd_ResolveAllLines(t *testing.T) {
	report := sampleReport()
	report.Portals = []domain.PortalLookup{
		{Name: "Aldo Shoes", URL: "http://portal/aldo", Found: true},
		{Name: "Nike"},
	}
	setupTestServices(t, &mockReconcileService{report: report}, newMockSettingsService())

	out, err := runRoot(t, "reconcile")

	require.NoError(t, err)
	assert.Contains(t, out, "Portals:\n  Aldo Shoes: Found http://portal/aldo\n  Nike: Not Found\n")
}

func TestReconcileCmd_PrintsWarnings(t *testing.T) {
	report := sampleReport()
	report.Failures = []domain.SourceFailure{
		{
			Source: domain.SourceCompanyDirectory,
			Err:    domain.Unavailable(domain.SourceCompanyDirectory, errBoom),
		},
		{Source: domain.SourcePortalMapping, Err: errBoom},
		{
			Source: domain.SourceMissingMerchants,
			Err:    fmt.Errorf("load: %w", domain.Malformed(domain.SourceMissingMerchants, errBoom)),
		},
	}
	setupTestServices(t, &mockReconcileService{report: report}, newMockSettingsService())

	out, err := runRoot(t, "reconcile")

	require.NoError(t, err)
	assert.Contains(t, out, "Warning: company directory: source unavailable: boom\n")
	assert.Contains(t, out, "Warning: portal mapping: boom\n")
	assert.Contains(t, out, "Warning: load: missing merchants: parse error: boom\n")
	assert.NotContains(t, out, "missing merchants: load:")
}

func TestReconcileCmd_SummaryGoesToOut(t *testing.T) {
	setupTestServices(t, &mockReconcileService{report: sampleReport()}, newMockSettingsService())

	outBuf := new(bytes.Buffer)
	errBuf := new(bytes.Buffer)
	rootCmd.SetOut(outBuf)
	rootCmd.SetErr(errBuf)
	rootCmd.SetArgs([]string{"reconcile"})

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, outBuf.String(), "Found http://portal/aldo\n")
	assert.Contains(t, outBuf.String(), "Matched Company Names: 1\n")
	assert.Empty(t, errBuf.String())
}

func TestReconcileCmd_ServiceError(t *testing.T) {
	setupTestServices(t, &mockReconcileService{err: errBoom}, newMockSettingsService())

	_, err := runRoot(t, "reconcile")

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
	assert.Contains(t, err.Error(), "reconcile failed")
}

func TestReconcileCmd_InvalidMatchPolicy(t *testing.T) {
	mock := &mockReconcileService{report: sampleReport()}
	setupTestServices(t, mock, newMockSettingsService())

	_, err := runRoot(t, "reconcile", "--match-policy", "shortest")

	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, mock.calls)
}

func TestReconcileCmd_RejectsArgs(t *testing.T) {
	setupTestServices(t, &mockReconcileService{report: sampleReport()}, newMockSettingsService())

	_, err := runRoot(t, "reconcile", "extra")

	assert.Error(t, err)
}

func TestApplyFlagOverrides(t *testing.T) {
	setupTestServices(t, nil, nil)
	settings := domain.DefaultSettings()

	applyFlagOverrides(&settings)
	assert.False(t, settings.Report.ResolveAll)
	assert.Equal(t, domain.MatchPolicyFirst, settings.Match.Policy)

	resolveAll, matchPolicy = true, "longest"
	applyFlagOverrides(&settings)
	assert.True(t, settings.Report.ResolveAll)
	assert.Equal(t, domain.MatchPolicyLongest, settings.Match.Policy)
}

func TestReconcileCmd_WiresSourcesFromSettings(t *testing.T) {
	dir := t.TempDir()
	missing := filepath.Join(dir, "missing.json")
	mapping := filepath.Join(dir, "portals.json")
	require.NoError(t, os.WriteFile(missing, []byte(`["Aldo - Card Linked", "aldo", "Zara"]`), 0600))
	require.NoError(t, os.WriteFile(mapping, []byte(`[["Aldo Shoes", "http://portal/aldo"], ["Nike", "http://portal/nike"]]`), 0600))

	settingsMock := newMockSettingsService()
	settingsMock.settings.Missing = domain.SourceSettings{Kind: domain.SourceKindJSON, Path: missing}
	settingsMock.settings.Mapping = domain.SourceSettings{Kind: domain.SourceKindJSON, Path: mapping}
	// No table keeps the test off the network; the directory degrades to empty.
	settingsMock.settings.Directory.Table = ""
	setupTestServices(t, nil, settingsMock)

	out, err := runRoot(t, "reconcile", "--resolve-all")

	require.NoError(t, err)
	assert.Contains(t, out, `Candidates: 3 (1 excluded by "Card Linked", 1 rewritten to canonical names)`)
	assert.Contains(t, out, "Found http://portal/aldo\n")
	assert.Contains(t, out, "  Zara: Not Found\n")
	assert.Contains(t, out, "No matching names found.\n")
	assert.Contains(t, out, "Warning: company directory: source unavailable")
}

func TestReconcileCmd_SettingsError(t *testing.T) {
	settingsMock := newMockSettingsService()
	settingsMock.getErr = errBoom
	setupTestServices(t, nil, settingsMock)

	_, err := runRoot(t, "reconcile")

	require.Error(t, err)
	assert.ErrorIs(t, err, errBoom)
}
