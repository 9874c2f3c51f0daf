package assetcache

import (
	"context"
	"errors"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portsmocks "futsal/internal/ports/mocks"
)

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"index.html":    {Data: []byte("<html>home</html>")},
		"analysis.html": {Data: []byte("<html>analysis</html>")},
		"manifest.json": {Data: []byte(`{"name":"futsal"}`)},
		"late.txt":      {Data: []byte("late")},
	}
}

func TestNormalize(t *testing.T) {
	assert.Equal(t, "index.html", Normalize("./"))
	assert.Equal(t, "index.html", Normalize("/"))
	assert.Equal(t, "index.html", Normalize(""))
	assert.Equal(t, "app.js", Normalize("./app.js"))
	assert.Equal(t, "app.js", Normalize("/app.js"))
}

func TestInstall_ServesCacheFirst(t *testing.T) {
	ctx := context.Background()
	origin := testFS()
	cache := New("v1", DefaultAssets, FSFetcher{FS: origin})

	require.NoError(t, cache.Install(ctx))
	origin["index.html"] = &fstest.MapFile{Data: []byte("<html>changed</html>")}

	data, source, err := cache.Fetch(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source)
	assert.Equal(t, "<html>home</html>", string(data))
}

func TestFetch_FallsBackToNetwork(t *testing.T) {
	ctx := context.Background()
	cache := New("v1", DefaultAssets, FSFetcher{FS: testFS()})
	require.NoError(t, cache.Install(ctx))

	data, source, err := cache.Fetch(ctx, "/late.txt")
	require.NoError(t, err)
	assert.Equal(t, SourceNetwork, source)
	assert.Equal(t, "late", string(data))

	_, _, err = cache.Fetch(ctx, "/missing.js")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestInstall_FailureStoresNothing(t *testing.T) {
	fetcher := portsmocks.NewMockAssetFetcher(t)
	fetcher.EXPECT().Fetch(mock.Anything, "index.html").Return([]byte("ok"), nil).Maybe()
	fetcher.EXPECT().Fetch(mock.Anything, "app.js").Return(nil, errors.New("offline"))
	cache := New("v2", []string{"./", "./app.js"}, fetcher)

	err := cache.Install(context.Background())

	require.Error(t, err)
	assert.Empty(t, cache.Buckets())
}

func TestActivate_EvictsOtherVersions(t *testing.T) {
	ctx := context.Background()
	cache := New("v4", DefaultAssets, FSFetcher{FS: testFS()})
	cache.Seed("v2", map[string][]byte{"./old.js": []byte("old")})
	cache.Seed("v3", map[string][]byte{"./index.html": []byte("v3 home")})
	require.NoError(t, cache.Install(ctx))

	data, source, err := cache.Fetch(ctx, "/old.js")
	require.NoError(t, err)
	assert.Equal(t, SourceCache, source, "old buckets serve until activation")
	assert.Equal(t, "old", string(data))

	data, _, err = cache.Fetch(ctx, "/")
	require.NoError(t, err)
	assert.Equal(t, "<html>home</html>", string(data), "current bucket wins")

	evicted := cache.Activate()

	assert.Equal(t, []string{"v2", "v3"}, evicted)
	assert.Equal(t, []string{"v4"}, cache.Buckets())
	_, _, err = cache.Fetch(ctx, "/old.js")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Empty(t, cache.Activate())
}

func TestNew_DefaultVersion(t *testing.T) {
	assert.Equal(t, DefaultVersion, New("", nil, FSFetcher{FS: testFS()}).Version())
}
