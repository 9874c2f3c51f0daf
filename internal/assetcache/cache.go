// Package assetcache serves static assets cache-first from versioned buckets.
package assetcache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"futsal/internal/logging"
	"futsal/internal/ports"
)

// DefaultVersion is the bucket name of the current asset set.
// Bump it whenever an asset changes so clients drop stale copies.
const DefaultVersion = "futsal-tracker-cache-v4"

// DefaultAssets are pre-fetched on install
var DefaultAssets = []string{
	"./",
	"./index.html",
	"./analysis.html",
	"./manifest.json",
}

// ErrNotFound is returned when neither the cache nor the origin has the asset
var ErrNotFound = errors.New("asset not found")

// Source tells where a fetched asset came from
type Source string

const (
	SourceCache   Source = "cache"
	SourceNetwork Source = "network"
)

// Cache holds one bucket of assets per version
type Cache struct {
	assets  []string
	buckets map[string]map[string][]byte
	fetcher ports.AssetFetcher
	mu      sync.RWMutex
	version string
}

// New creates an empty cache for version
func New(version string, assets []string, fetcher ports.AssetFetcher) *Cache {
	if version == "" {
		version = DefaultVersion
	}
	return &Cache{
		assets:  assets,
		buckets: make(map[string]map[string][]byte),
		fetcher: fetcher,
		version: version,
	}
}

// Version returns the current bucket name
func (c *Cache) Version() string {
	return c.version
}

// Install fetches every asset into the current bucket.
// The bucket is only stored when all assets were fetched.
func (c *Cache) Install(ctx context.Context) error {
	contents := make([][]byte, len(c.assets))

	g, gctx := errgroup.WithContext(ctx)
	for i, asset := range c.assets {
		g.Go(func() error {
			data, err := c.fetcher.Fetch(gctx, Normalize(asset))
			if err != nil {
				return fmt.Errorf("failed to fetch %s: %w", asset, err)
			}
			contents[i] = data
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	bucket := make(map[string][]byte, len(c.assets))
	for i, asset := range c.assets {
		bucket[Normalize(asset)] = contents[i]
	}

	c.mu.Lock()
	c.buckets[c.version] = bucket
	c.mu.Unlock()

	logging.Logger.Info("Asset cache installed", "version", c.version, "assets", len(bucket))
	return nil
}

// Seed stores a pre-existing bucket, as left behind by an older version
func (c *Cache) Seed(version string, assets map[string][]byte) {
	bucket := make(map[string][]byte, len(assets))
	for path, data := range assets {
		bucket[Normalize(path)] = data
	}
	c.mu.Lock()
	c.buckets[version] = bucket
	c.mu.Unlock()
}

// Activate evicts every bucket except the current version and returns the evicted names
func (c *Cache) Activate() []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var evicted []string
	for name := range c.buckets {
		if name != c.version {
			delete(c.buckets, name)
			evicted = append(evicted, name)
		}
	}
	sort.Strings(evicted)
	if len(evicted) > 0 {
		logging.Logger.Info("Asset cache activated", "version", c.version, "evicted", evicted)
	}
	return evicted
}

// Buckets returns the stored bucket names
func (c *Cache) Buckets() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()

	names := make([]string, 0, len(c.buckets))
	for name := range c.buckets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Fetch serves path from any bucket first and falls back to the origin
func (c *Cache) Fetch(ctx context.Context, path string) ([]byte, Source, error) {
	key := Normalize(path)

	if data, ok := c.lookup(key); ok {
		return data, SourceCache, nil
	}

	data, err := c.fetcher.Fetch(ctx, key)
	if err != nil {
		return nil, SourceNetwork, err
	}
	return data, SourceNetwork, nil
}

// lookup prefers the current bucket, then any bucket not yet evicted
func (c *Cache) lookup(key string) ([]byte, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	if data, ok := c.buckets[c.version][key]; ok {
		return data, true
	}
	for _, bucket := range c.buckets {
		if data, ok := bucket[key]; ok {
			return data, true
		}
	}
	return nil, false
}

// Normalize maps request paths and asset entries onto one key.
// "./", "/" and "" all name index.html.
func Normalize(path string) string {
	path = strings.TrimPrefix(path, ".")
	path = strings.TrimPrefix(path, "/")
	if path == "" {
		return "index.html"
	}
	return path
}

// FSFetcher is an origin backed by a filesystem, such as embedded static files
type FSFetcher struct {
	FS fs.FS
}

// Fetch reads path from the filesystem
func (f FSFetcher) Fetch(ctx context.Context, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	data, err := fs.ReadFile(f.FS, Normalize(path))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}
	return data, err
}
