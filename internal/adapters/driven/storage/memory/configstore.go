// Package memory provides an in-memory driven.ConfigStore. Services are
// tested against it, and it can be seeded with a fixed set of values.
package memory

import (
	"sync"

	"github.com/custodia-labs/portalcheck/internal/core/ports/driven"
)

// Ensure ConfigStore implements the interface.
var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore keeps settings in a map guarded by a RWMutex.
type ConfigStore struct {
	mu     sync.RWMutex
	values map[string]any
}

// NewConfigStore creates a new in-memory config store, optionally seeded.
func NewConfigStore(seed ...map[string]any) *ConfigStore {
	s := &ConfigStore{values: make(map[string]any)}
	for _, m := range seed {
		for k, v := range m {
			s.values[k] = v
		}
	}
	return s
}

// Get retrieves a configuration value by key.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	val, ok := s.values[key]
	return val, ok
}

// GetString returns the value of key if it is a string.
func (s *ConfigStore) GetString(key string) string {
	v, _ := typed[string](s, key)
	return v
}

// GetInt returns the value of key as an int. It accepts int, int64 and
// float64 so seeds decoded from JSON or TOML behave like the file store.
func (s *ConfigStore) GetInt(key string) int {
	if v, ok := typed[int](s, key); ok {
		return v
	}
	if v, ok := typed[int64](s, key); ok {
		return int(v)
	}
	if v, ok := typed[float64](s, key); ok {
		return int(v)
	}
	return 0
}

// GetBool returns the value of key if it is a bool.
func (s *ConfigStore) GetBool(key string) bool {
	v, _ := typed[bool](s, key)
	return v
}

func typed[T any](s *ConfigStore, key string) (T, bool) {
	val, _ := s.Get(key)
	v, ok := val.(T)
	return v, ok
}

// Set stores a value. Nothing is persisted.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return nil
}

// Load is a no-op; the store has no backing file.
func (s *ConfigStore) Load() error {
	return nil
}

// Path returns ":memory:".
func (s *ConfigStore) Path() string {
	return ":memory:"
}
