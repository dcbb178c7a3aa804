package driving

import "github.com/custodia-labs/portalcheck/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get returns the effective settings, defaults filled in.
	Get() (*domain.Settings, error)

	// Set validates and persists a single setting.
	Set(key, value string) error

	// Keys returns every recognised setting key in display order.
	Keys() []string

	// ConfigPath returns where settings are persisted.
	ConfigPath() string
}
