package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"futsal/internal/domain"
	portsmocks "futsal/internal/ports/mocks"
)

func TestJSONRepository_StoreReadErrorIsEmpty(t *testing.T) {
	store := portsmocks.NewMockKVStore(t)
	store.EXPECT().Get(mock.Anything, RecordsKey).Return("", false, errors.New("disk gone"))

	repo := NewJSONRepository(store)

	assert.Empty(t, repo.Load(context.Background()))
}

func TestJSONRepository_StoreWriteErrorPropagates(t *testing.T) {
	boom := errors.New("read-only")
	store := portsmocks.NewMockKVStore(t)
	store.EXPECT().Set(mock.Anything, RecordsKey, "[]").Return(boom)
	store.EXPECT().Delete(mock.Anything, RecordsKey).Return(boom)

	repo := NewJSONRepository(store)

	assert.ErrorIs(t, repo.Save(context.Background(), nil), boom)
	assert.ErrorIs(t, repo.Clear(context.Background()), boom)
}

func TestJSONRepository_SettingsReadErrorIsZero(t *testing.T) {
	store := portsmocks.NewMockKVStore(t)
	store.EXPECT().Get(mock.Anything, SettingsKey).Return("", false, errors.New("locked"))

	repo := NewJSONRepository(store)

	assert.Equal(t, domain.Settings{AssistTargets: []string{}, CustomPlaces: []string{}}, repo.LoadSettings(context.Background()))
}
