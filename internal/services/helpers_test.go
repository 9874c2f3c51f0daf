package services

import (
	"context"
	"testing"
	"time"

	"futsal/internal/adapters/storage"
	"futsal/internal/domain"
)

var fixedNow = time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

func newTestRepo(t *testing.T) *storage.JSONRepository {
	t.Helper()
	return storage.NewJSONRepository(storage.NewMemoryStore())
}

func newTestRecordService(t *testing.T, repo *storage.JSONRepository) *RecordService {
	t.Helper()
	svc := NewRecordService(repo)
	n := 0
	svc.newID = func() string {
		n++
		return "id-" + string(rune('0'+n))
	}
	svc.now = func() time.Time { return fixedNow }
	return svc
}

func seed(t *testing.T, repo *storage.JSONRepository, records ...domain.Record) {
	t.Helper()
	if err := repo.Save(context.Background(), records); err != nil {
		t.Fatalf("seed: %v", err)
	}
}

func intPtr(v int) *int { return &v }
