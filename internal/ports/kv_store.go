package ports

import "context"

// KVStore is a string key-value store holding whole JSON documents
type KVStore interface {
	Close() error
	Delete(ctx context.Context, key string) error
	Get(ctx context.Context, key string) (value string, found bool, err error)
	Set(ctx context.Context, key, value string) error
}
