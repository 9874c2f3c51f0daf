package cmd

import (
	adapterstorage "futsal/internal/adapters/storage"
	"futsal/internal/domain"
	"futsal/internal/ports"
	"futsal/internal/services"
)

// Container holds all dependencies for the application
type Container struct {
	// Services
	AnalysisService *services.AnalysisService
	RecordService   *services.RecordService
	SettingsService *services.SettingsService
	TransferService *services.TransferService

	// DBPath is the database file watched by the dashboard; empty for in-memory runs
	DBPath string

	// Internal - for cleanup only
	store ports.KVStore
}

// NewContainer creates a new Container with all dependencies wired.
// Empty defaults fall back to the built-in venue list.
func NewContainer(dbPath string, defaults []string) (*Container, error) {
	store, err := adapterstorage.NewSQLiteStore(dbPath)
	if err != nil {
		return nil, err
	}

	c := newContainer(store, defaults)
	c.DBPath = store.Path()
	return c, nil
}

// NewMemoryContainer wires the services on a map-backed store; DBPath stays empty
func NewMemoryContainer(defaults []string) *Container {
	return newContainer(adapterstorage.NewMemoryStore(), defaults)
}

// newContainer wires the services on top of any key-value store
func newContainer(store ports.KVStore, defaults []string) *Container {
	if len(defaults) == 0 {
		defaults = domain.DefaultPlaces
	}

	repo := adapterstorage.NewJSONRepository(store)

	return &Container{
		AnalysisService: services.NewAnalysisService(repo, repo),
		RecordService:   services.NewRecordService(repo),
		SettingsService: services.NewSettingsService(repo, defaults),
		TransferService: services.NewTransferService(repo),
		store:           store,
	}
}

// Close closes all resources held by the container
func (c *Container) Close() error {
	if c.store != nil {
		return c.store.Close()
	}
	return nil
}
