package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"futsal/internal/domain"
	"futsal/internal/logging"
	"futsal/internal/ports"
)

// ExportVersion is the schema version written into export documents
const ExportVersion = 4

// TransferService exports and imports the record list
type TransferService struct {
	now  func() time.Time
	repo ports.RecordRepository
}

// NewTransferService creates a new TransferService
func NewTransferService(repo ports.RecordRepository) *TransferService {
	return &TransferService{now: time.Now, repo: repo}
}

// Export writes every record as an indented export document
func (s *TransferService) Export(ctx context.Context, w io.Writer) (int, error) {
	doc := ExportDocument{
		ExportedAt: domain.Timestamp(s.now()),
		Records:    s.repo.Load(ctx),
		Version:    ExportVersion,
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return 0, fmt.Errorf("failed to write export: %w", err)
	}
	logging.Logger.Info("Records exported", "count", len(doc.Records))
	return len(doc.Records), nil
}

// importDocument decodes records lazily so one bad entry does not reject the file
type importDocument struct {
	Records *[]json.RawMessage `json:"records"`
}

// Import merges an export document into the store by id; existing ids win.
// Malformed JSON or a missing records array returns ErrInvalidImport and leaves the store untouched.
func (s *TransferService) Import(ctx context.Context, r io.Reader) (ImportResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}

	var doc importDocument
	if err := json.Unmarshal(bytes.TrimSpace(data), &doc); err != nil {
		logging.Logger.Warn("Import rejected", "error", err)
		return ImportResult{}, fmt.Errorf("%w: %v", domain.ErrInvalidImport, err)
	}
	if doc.Records == nil {
		return ImportResult{}, fmt.Errorf("%w: records array missing", domain.ErrInvalidImport)
	}

	result := ImportResult{Received: len(*doc.Records)}
	current := s.repo.Load(ctx)
	known := make(map[string]bool, len(current))
	for _, rec := range current {
		known[rec.ID] = true
	}

	merged := current
	for _, raw := range *doc.Records {
		var rec domain.Record
		if err := json.Unmarshal(raw, &rec); err != nil {
			continue
		}
		if rec.ID == "" || !rec.IsWellFormed() {
			continue
		}
		result.Valid++
		if known[rec.ID] {
			result.Skipped++
			continue
		}
		known[rec.ID] = true
		merged = append(merged, rec)
		result.Added++
	}

	if result.Added > 0 {
		if err := s.repo.Save(ctx, merged); err != nil {
			return ImportResult{}, fmt.Errorf("failed to save imported records: %w", err)
		}
	}
	logging.Logger.Info("Records imported", "received", result.Received, "added", result.Added, "skipped", result.Skipped)
	return result, nil
}
