package plugin

import (
	"encoding/json"
	"sync"
)

// Settings is one plugin's configuration snapshot, keyed by field ID.
// Plugins treat it as read-only for the duration of a request.
type Settings map[string]any

// SettingsStore holds per-plugin settings, populated from the store at
// boot and refreshed when the admin saves a plugin's settings.
type SettingsStore struct {
	mu       sync.RWMutex
	byPlugin map[string]Settings
}

func NewSettingsStore() *SettingsStore {
	return &SettingsStore{byPlugin: make(map[string]Settings)}
}

// Put replaces the settings snapshot for a plugin.
func (s *SettingsStore) Put(pluginID string, settings Settings) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.byPlugin[pluginID] = settings
}

// GetSettings returns the settings for a plugin, or an empty map for an
// unknown ID. It never returns nil and never fails.
func (s *SettingsStore) GetSettings(pluginID string) Settings {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if st, ok := s.byPlugin[pluginID]; ok {
		return st
	}
	return Settings{}
}

// String returns the setting as a string, or fallback when absent or not
// a string.
func (s Settings) String(key, fallback string) string {
	if v, ok := s[key].(string); ok {
		return v
	}
	return fallback
}

// Bool returns the setting as a bool. Accepts native bools and the legacy
// "true"/"false" string encoding.
func (s Settings) Bool(key string, fallback bool) bool {
	switch v := s[key].(type) {
	case bool:
		return v
	case string:
		if v == "true" {
			return true
		}
		if v == "false" {
			return false
		}
	}
	return fallback
}

// Float returns the setting as a float64. JSON numbers decode to float64;
// ints are accepted for values set programmatically.
func (s Settings) Float(key string, fallback float64) float64 {
	switch v := s[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	}
	return fallback
}

// List normalizes a list-valued setting. Legacy data stored the list as a
// JSON-serialized string; current data stores a native array. Both decode
// to the same result, and anything malformed yields an empty list rather
// than an error.
func (s Settings) List(key string) []map[string]any {
	raw, ok := s[key]
	if !ok {
		return nil
	}
	switch v := raw.(type) {
	case string:
		var out []map[string]any
		if err := json.Unmarshal([]byte(v), &out); err != nil {
			return nil
		}
		return out
	case []any:
		out := make([]map[string]any, 0, len(v))
		for _, item := range v {
			if m, ok := item.(map[string]any); ok {
				out = append(out, m)
			}
		}
		return out
	case []map[string]any:
		return v
	}
	return nil
}
