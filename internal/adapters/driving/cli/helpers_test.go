package cli

import (
	"context"
	"errors"
	"io"
	"os"
	"testing"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driving"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// mockReconcileService implements driving.ReconcileService for testing.
type mockReconcileService struct {
	report *domain.Report
	err    error
	calls  int
}

func (m *mockReconcileService) Run(_ context.Context) (*domain.Report, error) {
	m.calls++
	return m.report, m.err
}

// mockSettingsService implements driving.SettingsService for testing.
type mockSettingsService struct {
	settings domain.Settings
	getErr   error
	setErr   error
	stored   map[string]string
}

func newMockSettingsService() *mockSettingsService {
	return &mockSettingsService{settings: domain.DefaultSettings(), stored: map[string]string{}}
}

func (m *mockSettingsService) Get() (*domain.Settings, error) {
	if m.getErr != nil {
		return nil, m.getErr
	}
	s := m.settings
	return &s, nil
}

func (m *mockSettingsService) Set(key, value string) error {
	if m.setErr != nil {
		return m.setErr
	}
	m.stored[key] = value
	return nil
}

func (m *mockSettingsService) Keys() []string {
	return []string{"missing.kind", "match.policy"}
}

func (m *mockSettingsService) ConfigPath() string {
	return "/tmp/portalcheck/config.toml"
}

var (
	_ driving.ReconcileService = (*mockReconcileService)(nil)
	_ driving.SettingsService  = (*mockSettingsService)(nil)
)

var errBoom = errors.New("boom")

// setupTestServices swaps in mocks and resets persistent flag state.
func setupTestServices(t *testing.T, rec driving.ReconcileService, set driving.SettingsService) {
	t.Helper()

	oldReconcile, oldSettings := reconcileService, settingsService
	reconcileService, settingsService = rec, set
	logger.SetOutput(io.Discard)

	t.Cleanup(func() {
		reconcileService, settingsService = oldReconcile, oldSettings
		verbose, configDir, envFile = false, "", defaultEnvFile
		resolveAll, matchPolicy = false, ""
		for _, name := range []string{"verbose", "config-dir", "env-file", "resolve-all", "match-policy"} {
			if f := rootCmd.PersistentFlags().Lookup(name); f != nil {
				f.Changed = false
			}
		}
		rootCmd.SetArgs(nil)
		logger.SetVerbose(false)
		logger.SetOutput(os.Stderr)
	})
}
