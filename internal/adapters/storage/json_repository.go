package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/ports"
)

// Store keys. They are part of the persisted data contract and must not change.
const (
	FilterKey   = "futsal_filter_v1"
	LastDateKey = "futsal_last_date_v1"
	RecordsKey  = "futsal_records_v1"
	SettingsKey = "futsal_settings_v2"
)

// JSONRepository implements the record, settings and filter repositories
// as JSON documents inside a ports.KVStore
type JSONRepository struct {
	store ports.KVStore
}

var _ ports.Repository = (*JSONRepository)(nil)

// NewJSONRepository creates a JSONRepository on top of store
func NewJSONRepository(store ports.KVStore) *JSONRepository {
	return &JSONRepository{store: store}
}

// Load returns every stored record; an unreadable document yields an empty list.
// Entries are decoded one by one so a single odd record cannot hide the rest.
func (r *JSONRepository) Load(ctx context.Context) []domain.Record {
	var entries []json.RawMessage
	if !r.loadJSON(ctx, RecordsKey, &entries) {
		return []domain.Record{}
	}

	records := make([]domain.Record, 0, len(entries))
	for i, entry := range entries {
		var rec domain.Record
		if err := json.Unmarshal(entry, &rec); err != nil {
			logging.Logger.Warn("Skipping unreadable record", "index", i, "error", err)
			continue
		}
		records = append(records, rec)
	}
	return records
}

// Save replaces the whole record list
func (r *JSONRepository) Save(ctx context.Context, records []domain.Record) error {
	if records == nil {
		records = []domain.Record{}
	}
	return r.saveJSON(ctx, RecordsKey, records)
}

// Clear removes every record
func (r *JSONRepository) Clear(ctx context.Context) error {
	if err := r.store.Delete(ctx, RecordsKey); err != nil {
		return fmt.Errorf("failed to clear records: %w", err)
	}
	return nil
}

// LoadSettings returns the normalized settings, or zero settings when absent
func (r *JSONRepository) LoadSettings(ctx context.Context) domain.Settings {
	var settings domain.Settings
	r.loadJSON(ctx, SettingsKey, &settings)
	return settings.Normalized()
}

// SaveSettings persists normalized settings
func (r *JSONRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	return r.saveJSON(ctx, SettingsKey, settings.Normalized())
}

// LoadFilter returns the last used analysis filter
func (r *JSONRepository) LoadFilter(ctx context.Context) domain.FilterState {
	var state domain.FilterState
	r.loadJSON(ctx, FilterKey, &state)
	return state
}

// SaveFilter persists the analysis filter
func (r *JSONRepository) SaveFilter(ctx context.Context, state domain.FilterState) error {
	return r.saveJSON(ctx, FilterKey, state)
}

// LoadLastDate returns the date of the last entered record, or ""
func (r *JSONRepository) LoadLastDate(ctx context.Context) string {
	value, found, err := r.store.Get(ctx, LastDateKey)
	if err != nil || !found {
		return ""
	}
	return strings.TrimSpace(value)
}

// SaveLastDate remembers the date of the last entered record
func (r *JSONRepository) SaveLastDate(ctx context.Context, date string) error {
	if err := r.store.Set(ctx, LastDateKey, date); err != nil {
		return fmt.Errorf("failed to save last date: %w", err)
	}
	return nil
}

// loadJSON decodes key into v and reports whether a usable document was found
func (r *JSONRepository) loadJSON(ctx context.Context, key string, v any) bool {
	value, found, err := r.store.Get(ctx, key)
	if err != nil {
		logging.Logger.Error("Failed to read store key", "key", key, "error", err)
		return false
	}
	if !found || strings.TrimSpace(value) == "" {
		return false
	}
	if err := json.Unmarshal([]byte(value), v); err != nil {
		logging.Logger.Warn("Ignoring unreadable store document", "key", key, "error", err)
		return false
	}
	return true
}

func (r *JSONRepository) saveJSON(ctx context.Context, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := r.store.Set(ctx, key, string(data)); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
