package store

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"noteva/pkg/models"
)

// GetPluginRecord loads the stored state for a plugin. Unknown plugins
// come back disabled with empty settings rather than an error, and a
// malformed settings blob degrades to empty settings.
func (s *Store) GetPluginRecord(id string) (models.PluginRecord, error) {
	rec := models.PluginRecord{ID: id, Settings: map[string]any{}}
	if id == "" {
		return rec, models.ErrInvalidID
	}
	var enabled int
	var raw string
	err := s.db.QueryRow("SELECT enabled, settings FROM plugins WHERE plugin_id = ?", id).Scan(&enabled, &raw)
	if err == sql.ErrNoRows {
		return rec, nil
	}
	if err != nil {
		return rec, fmt.Errorf("getting plugin %s: %w", id, err)
	}
	rec.Enabled = enabled != 0
	if json.Unmarshal([]byte(raw), &rec.Settings) != nil {
		rec.Settings = map[string]any{}
	}
	return rec, nil
}

// SavePluginRecord upserts a plugin's enabled flag and settings.
func (s *Store) SavePluginRecord(rec models.PluginRecord) error {
	if rec.ID == "" {
		return models.ErrInvalidID
	}
	if rec.Settings == nil {
		rec.Settings = map[string]any{}
	}
	raw, err := json.Marshal(rec.Settings)
	if err != nil {
		return fmt.Errorf("encoding plugin settings: %w", err)
	}
	enabled := 0
	if rec.Enabled {
		enabled = 1
	}
	_, err = s.db.Exec(
		`INSERT INTO plugins (plugin_id, enabled, settings) VALUES (?, ?, ?)
		 ON CONFLICT(plugin_id) DO UPDATE SET enabled = excluded.enabled, settings = excluded.settings`,
		rec.ID, enabled, string(raw),
	)
	if err != nil {
		return fmt.Errorf("saving plugin %s: %w", rec.ID, err)
	}
	return nil
}

// ListPluginRecords returns all stored plugin rows keyed by ID.
func (s *Store) ListPluginRecords() (map[string]models.PluginRecord, error) {
	rows, err := s.db.Query("SELECT plugin_id, enabled, settings FROM plugins")
	if err != nil {
		return nil, fmt.Errorf("listing plugins: %w", err)
	}
	defer rows.Close()

	out := map[string]models.PluginRecord{}
	for rows.Next() {
		var id, raw string
		var enabled int
		if err := rows.Scan(&id, &enabled, &raw); err != nil {
			return nil, fmt.Errorf("scanning plugin: %w", err)
		}
		rec := models.PluginRecord{ID: id, Enabled: enabled != 0, Settings: map[string]any{}}
		if json.Unmarshal([]byte(raw), &rec.Settings) != nil {
			rec.Settings = map[string]any{}
		}
		out[id] = rec
	}
	return out, rows.Err()
}
