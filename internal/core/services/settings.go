package services

import (
	"fmt"
	"strconv"

	"github.com/custodia-labs/portalcheck/internal/core/domain"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	keyMissingKind    = "missing.kind"
	keyMissingPath    = "missing.path"
	keyMissingSheetID = "missing.spreadsheet_id"
	keyMissingRange   = "missing.range"
	keyMissingSheet   = "missing.sheet"
	keyMappingKind    = "mapping.kind"
	keyMappingPath    = "mapping.path"
	keyMappingSheetID = "mapping.spreadsheet_id"
	keyMappingRange   = "mapping.range"
	keyMappingSheet   = "mapping.sheet"
	keyGoogleCreds    = "google.credentials_file"
	keyDirTable       = "directory.table"
	keyDirRegion      = "directory.region"
	keyDirAttribute   = "directory.attribute"
	keyDirEndpoint    = "directory.endpoint"
	keyDirPageSize    = "directory.page_size"
	keyMatchExclude   = "match.exclude"
	keyMatchPolicy    = "match.policy"
	keyResolveAll     = "report.resolve_all"
)

// settingKeys lists every recognised key in display order.
var settingKeys = []string{
	keyMissingKind, keyMissingPath, keyMissingSheetID, keyMissingRange, keyMissingSheet,
	keyMappingKind, keyMappingPath, keyMappingSheetID, keyMappingRange, keyMappingSheet,
	keyGoogleCreds,
	keyDirTable, keyDirRegion, keyDirAttribute, keyDirEndpoint, keyDirPageSize,
	keyMatchExclude, keyMatchPolicy,
	keyResolveAll,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
// Missing or invalid values fall back to domain.DefaultSettings.
func (s *SettingsService) Get() (*domain.Settings, error) {
	defaults := domain.DefaultSettings()

	settings := &domain.Settings{
		Missing: domain.SourceSettings{
			Kind:          s.getKind(keyMissingKind, defaults.Missing.Kind),
			Path:          s.getString(keyMissingPath, defaults.Missing.Path),
			SpreadsheetID: s.configStore.GetString(keyMissingSheetID), // No default - must be configured
			Range:         s.getString(keyMissingRange, defaults.Missing.Range),
			Sheet:         s.configStore.GetString(keyMissingSheet),
		},
		Mapping: domain.SourceSettings{
			Kind:          s.getKind(keyMappingKind, defaults.Mapping.Kind),
			Path:          s.getString(keyMappingPath, defaults.Mapping.Path),
			SpreadsheetID: s.configStore.GetString(keyMappingSheetID),
			Range:         s.getString(keyMappingRange, defaults.Mapping.Range),
			Sheet:         s.configStore.GetString(keyMappingSheet),
		},
		Google: domain.GoogleSettings{
			CredentialsFile: s.getString(keyGoogleCreds, defaults.Google.CredentialsFile),
		},
		Directory: domain.DirectorySettings{
			Table:     s.getString(keyDirTable, defaults.Directory.Table),
			Region:    s.getString(keyDirRegion, defaults.Directory.Region),
			Attribute: s.getString(keyDirAttribute, defaults.Directory.Attribute),
			Endpoint:  s.configStore.GetString(keyDirEndpoint),
			PageSize:  s.getInt(keyDirPageSize, defaults.Directory.PageSize),
		},
		Match: domain.MatchSettings{
			ExcludeTag: s.getExcludeTag(defaults.Match.ExcludeTag),
			Policy:     s.getPolicy(defaults.Match.Policy),
		},
		Report: domain.ReportSettings{
			ResolveAll: s.getBool(keyResolveAll, defaults.Report.ResolveAll),
		},
	}

	return settings, nil
}

// Set validates value for key and persists it.
func (s *SettingsService) Set(key, value string) error {
	var stored any = value

	switch key {
	case keyMissingKind, keyMappingKind:
		if !domain.SourceKind(value).IsValid() {
			return fmt.Errorf("%w: %s must be json, sheets or xlsx, got %q", domain.ErrInvalidInput, key, value)
		}
	case keyMatchPolicy:
		if !domain.MatchPolicy(value).IsValid() {
			return fmt.Errorf("%w: %s must be first or longest, got %q", domain.ErrInvalidInput, key, value)
		}
	case keyDirPageSize:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%w: %s must be a non-negative integer, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = int64(n)
	case keyResolveAll:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s must be true or false, got %q", domain.ErrInvalidInput, key, value)
		}
		stored = b
	default:
		if !isSettingKey(key) {
			return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
		}
	}

	if err := s.configStore.Set(key, stored); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys returns every recognised setting key in display order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, len(settingKeys))
	copy(keys, settingKeys)
	return keys
}

// ConfigPath returns the configuration file path.
func (s *SettingsService) ConfigPath() string {
	return s.configStore.Path()
}

func isSettingKey(key string) bool {
	for _, k := range settingKeys {
		if k == key {
			return true
		}
	}
	return false
}

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

// getExcludeTag honours an explicitly empty tag, which disables the filter.
func (s *SettingsService) getExcludeTag(defaultVal string) string {
	if _, exists := s.configStore.Get(keyMatchExclude); !exists {
		return defaultVal
	}
	return s.configStore.GetString(keyMatchExclude)
}

func (s *SettingsService) getKind(key string, defaultVal domain.SourceKind) domain.SourceKind {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	kind := domain.SourceKind(val)
	if !kind.IsValid() {
		return defaultVal
	}
	return kind
}

func (s *SettingsService) getPolicy(defaultVal domain.MatchPolicy) domain.MatchPolicy {
	val := s.configStore.GetString(keyMatchPolicy)
	if val == "" {
		return defaultVal
	}
	policy := domain.MatchPolicy(val)
	if !policy.IsValid() {
		return defaultVal
	}
	return policy
}
