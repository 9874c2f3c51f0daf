package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/ports"
)

// RecordService creates, edits and deletes session records
type RecordService struct {
	newID func() string
	now   func() time.Time
	repo  ports.Repository
}

// NewRecordService creates a new RecordService
func NewRecordService(repo ports.Repository) *RecordService {
	return &RecordService{
		newID: uuid.NewString,
		now:   time.Now,
		repo:  repo,
	}
}

// List returns every stored record in storage order
func (s *RecordService) List(ctx context.Context) []domain.Record {
	return s.repo.Load(ctx)
}

// Get returns the record with id
func (s *RecordService) Get(ctx context.Context, id string) (domain.Record, error) {
	for _, r := range s.repo.Load(ctx) {
		if r.ID == id {
			return r, nil
		}
	}
	return domain.Record{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
}

// Create validates and appends a new record.
// The entered date and assist target are remembered for the next entry.
func (s *RecordService) Create(ctx context.Context, in RecordInput) (domain.Record, error) {
	record := in.fields()
	if err := record.Validate(); err != nil {
		logging.Logger.Debug("Record rejected", "error", err)
		return domain.Record{}, err
	}

	record.ID = s.newID()
	record.CreatedAt = domain.Timestamp(s.now())

	records := append(s.repo.Load(ctx), record)
	if err := s.repo.Save(ctx, records); err != nil {
		return domain.Record{}, fmt.Errorf("failed to save record: %w", err)
	}
	logging.Logger.Info("Record created", "id", record.ID, "date", record.Date, "place", record.Place)

	if err := s.repo.SaveLastDate(ctx, record.Date); err != nil {
		logging.Logger.Warn("Failed to remember last date", "error", err)
	}

	settings := s.repo.LoadSettings(ctx)
	if settings.SelectedAssistTarget != record.Assists.TargetName {
		settings.SelectedAssistTarget = record.Assists.TargetName
		if err := s.repo.SaveSettings(ctx, settings); err != nil {
			logging.Logger.Warn("Failed to remember assist target", "error", err)
		}
	}

	return record, nil
}

// Update replaces the fields of record id, keeping its id and creation time
func (s *RecordService) Update(ctx context.Context, id string, in RecordInput) (domain.Record, error) {
	records := s.repo.Load(ctx)
	idx := indexOf(records, id)
	if idx < 0 {
		return domain.Record{}, fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}

	updated := in.fields()
	if err := updated.Validate(); err != nil {
		return domain.Record{}, err
	}
	updated.ID = records[idx].ID
	updated.CreatedAt = records[idx].CreatedAt
	updated.UpdatedAt = domain.Timestamp(s.now())

	records[idx] = updated
	if err := s.repo.Save(ctx, records); err != nil {
		return domain.Record{}, fmt.Errorf("failed to save record: %w", err)
	}
	logging.Logger.Info("Record updated", "id", id)
	return updated, nil
}

// Delete removes record id
func (s *RecordService) Delete(ctx context.Context, id string) error {
	records := s.repo.Load(ctx)
	idx := indexOf(records, id)
	if idx < 0 {
		return fmt.Errorf("%w: %s", domain.ErrRecordNotFound, id)
	}

	records = append(records[:idx], records[idx+1:]...)
	if err := s.repo.Save(ctx, records); err != nil {
		return fmt.Errorf("failed to delete record: %w", err)
	}
	logging.Logger.Info("Record deleted", "id", id)
	return nil
}

// Wipe removes every record; settings are kept
func (s *RecordService) Wipe(ctx context.Context) error {
	if err := s.repo.Clear(ctx); err != nil {
		return fmt.Errorf("failed to wipe records: %w", err)
	}
	logging.Logger.Info("All records wiped")
	return nil
}

// LastDate returns the date to prefill for the next entry: the last entered date, else today
func (s *RecordService) LastDate(ctx context.Context) string {
	if d := s.repo.LoadLastDate(ctx); d != "" {
		return d
	}
	return s.now().Format(domain.DateLayout)
}

func indexOf(records []domain.Record, id string) int {
	for i, r := range records {
		if r.ID == id {
			return i
		}
	}
	return -1
}
