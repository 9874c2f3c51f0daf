package ports

import "context"

// AssetFetcher retrieves a static asset from its origin
type AssetFetcher interface {
	Fetch(ctx context.Context, path string) ([]byte, error)
}
