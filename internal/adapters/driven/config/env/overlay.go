// Package env overlays process environment variables on top of another
// config store. PORTALCHECK_DIRECTORY_TABLE overrides "directory.table".
package env

import (
	"os"
	"strconv"
	"strings"

	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
	"github.com/custodia-labs/portalcheck/internal/logger"
)

// Prefix is prepended to every overridable key.
const Prefix = "PORTALCHECK_"

// Ensure Overlay implements the interface.
var _ driven.ConfigStore = (*Overlay)(nil)

// LookupFunc reports the value of an environment variable.
type LookupFunc func(name string) (string, bool)

// Overlay reads environment overrides before falling through to base.
// Writes always go to base.
type Overlay struct {
	base   driven.ConfigStore
	lookup LookupFunc
}

// NewOverlay wraps base with overrides from the process environment.
func NewOverlay(base driven.ConfigStore) *Overlay {
	return NewOverlayWithLookup(base, os.LookupEnv)
}

// NewOverlayWithLookup wraps base with overrides from lookup.
func NewOverlayWithLookup(base driven.ConfigStore, lookup LookupFunc) *Overlay {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Overlay{base: base, lookup: lookup}
}

// VarName returns the environment variable that overrides key.
func VarName(key string) string {
	return Prefix + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

// Get returns the override for key when set, otherwise the base value.
// Overrides are always strings.
func (o *Overlay) Get(key string) (any, bool) {
	if v, ok := o.lookup(VarName(key)); ok {
		return v, true
	}
	return o.base.Get(key)
}

// GetString retrieves a string configuration value.
func (o *Overlay) GetString(key string) string {
	if v, ok := o.lookup(VarName(key)); ok {
		return v
	}
	return o.base.GetString(key)
}

// GetInt parses an override as a base-10 integer. Unparseable overrides
// read as 0 and are logged as a warning.
func (o *Overlay) GetInt(key string) int {
	if v, ok := o.lookup(VarName(key)); ok {
		n, err := strconv.Atoi(strings.TrimSpace(v))
		if err != nil {
			logger.Warn("ignoring %s=%q: not an integer", VarName(key), v)
			return 0
		}
		return n
	}
	return o.base.GetInt(key)
}

// GetBool parses an override with strconv.ParseBool. Unparseable overrides
// read as false and are logged as a warning.
func (o *Overlay) GetBool(key string) bool {
	if v, ok := o.lookup(VarName(key)); ok {
		b, err := strconv.ParseBool(strings.TrimSpace(v))
		if err != nil {
			logger.Warn("ignoring %s=%q: not a boolean", VarName(key), v)
			return false
		}
		return b
	}
	return o.base.GetBool(key)
}

// Set writes to the base store. An active override still wins on read.
func (o *Overlay) Set(key string, value any) error {
	return o.base.Set(key, value)
}

// Load reloads the base store.
func (o *Overlay) Load() error {
	return o.base.Load()
}

// Path returns the base store's path.
func (o *Overlay) Path() string {
	return o.base.Path()
}
