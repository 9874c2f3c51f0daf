// Package web exposes records, settings, analysis and charts over HTTP.
package web

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"

	"futsal/internal/assetcache"
	"futsal/internal/logging"
)

// shutdownTimeout bounds graceful shutdown
const shutdownTimeout = 30 * time.Second

// Options configures NewFiberApp
type Options struct {
	// AccessLog receives one line per request; nil disables access logging
	AccessLog io.Writer
	// Assets serves the static pages; nil disables them
	Assets *assetcache.Cache
}

// NewFiberApp wires middleware and routes
func NewFiberApp(h *Handler, opts Options) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          customErrorHandler,
		IdleTimeout:           60 * time.Second,
		ReadTimeout:           15 * time.Second,
		UnescapePath:          true,
		WriteTimeout:          35 * time.Second,
	})

	// Global middleware (order matters)
	app.Use(recover.New())
	if opts.AccessLog != nil {
		app.Use(logger.New(logger.Config{
			Format: "${time} ${status} ${method} ${path} ${latency}\n",
			Output: opts.AccessLog,
		}))
	}
	app.Use(cors.New(cors.Config{
		AllowHeaders: "Origin,Content-Type,Accept",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
		AllowOrigins: "*",
	}))

	app.Get("/health", h.Health)

	api := app.Group("/api")

	api.Get("/records", h.ListRecords)
	api.Post("/records", h.CreateRecord)
	api.Delete("/records", h.WipeRecords)
	api.Get("/records/:id", h.GetRecord)
	api.Put("/records/:id", h.UpdateRecord)
	api.Delete("/records/:id", h.DeleteRecord)

	api.Get("/settings", h.GetSettings)
	api.Post("/settings/places", h.AddPlace)
	api.Delete("/settings/places/:name", h.RemovePlace)
	api.Post("/settings/targets", h.AddTarget)
	api.Put("/settings/targets/selected", h.SelectTarget)
	api.Delete("/settings/targets/:name", h.RemoveTarget)

	api.Get("/analysis", h.Analysis)
	api.Get("/charts/:file", h.Chart)

	api.Get("/export", h.Export)
	api.Post("/import", h.Import)

	if opts.Assets != nil {
		app.Get("/*", assetHandler(opts.Assets))
	}

	return app
}

// Serve listens on addr until ctx is cancelled, then shuts down gracefully
func Serve(ctx context.Context, app *fiber.App, addr string) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Logger.Info("Starting HTTP server", "address", addr)
		errCh <- app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logging.Logger.Info("Shutting down HTTP server")
	if err := app.ShutdownWithTimeout(shutdownTimeout); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, context.Canceled) {
		logging.Logger.Debug("Listener closed", "error", err)
	}
	logging.Logger.Info("HTTP server stopped")
	return nil
}
