package web

import (
	"embed"
	"errors"
	"io/fs"
	"path"

	"github.com/gofiber/fiber/v2"

	"futsal/internal/assetcache"
)

//go:embed static
var staticFS embed.FS

// StaticFS returns the embedded pages rooted at the static directory
func StaticFS() fs.FS {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return sub
}

// NewAssetCache returns a cache whose origin is the embedded pages
func NewAssetCache(version string) *assetcache.Cache {
	return assetcache.New(version, assetcache.DefaultAssets, assetcache.FSFetcher{FS: StaticFS()})
}

// assetHandler serves static pages cache-first and reports the source in X-Cache
func assetHandler(cache *assetcache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		data, source, err := cache.Fetch(c.UserContext(), c.Path())
		if err != nil {
			if errors.Is(err, assetcache.ErrNotFound) {
				return fiber.ErrNotFound
			}
			return err
		}

		c.Set(fiber.HeaderContentType, contentType(assetcache.Normalize(c.Path())))
		c.Set("X-Cache", string(source))
		return c.Send(data)
	}
}

func contentType(name string) string {
	switch path.Ext(name) {
	case ".html":
		return fiber.MIMETextHTMLCharsetUTF8
	case ".json":
		return fiber.MIMEApplicationJSONCharsetUTF8
	case ".js":
		return fiber.MIMEApplicationJavaScriptCharsetUTF8
	case ".css":
		return "text/css; charset=utf-8"
	case ".png":
		return "image/png"
	default:
		return "application/octet-stream"
	}
}
