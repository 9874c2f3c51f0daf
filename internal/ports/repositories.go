package ports

import (
	"context"

	"futsal/internal/domain"
)

// RecordRepository persists the flat list of session records.
// Every load reads the whole list and every save replaces it.
type RecordRepository interface {
	Clear(ctx context.Context) error
	// Load never fails: an unreadable document is logged and treated as empty
	Load(ctx context.Context) []domain.Record
	Save(ctx context.Context, records []domain.Record) error
}

// SettingsRepository persists user settings for record entry
type SettingsRepository interface {
	LoadSettings(ctx context.Context) domain.Settings
	SaveSettings(ctx context.Context, settings domain.Settings) error
}

// FilterStateRepository persists analysis filters and the last entered date
type FilterStateRepository interface {
	LoadFilter(ctx context.Context) domain.FilterState
	LoadLastDate(ctx context.Context) string
	SaveFilter(ctx context.Context, state domain.FilterState) error
	SaveLastDate(ctx context.Context, date string) error
}

// Repository is the full persistence surface used by the services
type Repository interface {
	FilterStateRepository
	RecordRepository
	SettingsRepository
}
