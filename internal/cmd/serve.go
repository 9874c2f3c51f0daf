package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"futsal/internal/config"
	"futsal/internal/logging"
	"futsal/internal/web"
)

// ServeCmd serves the web pages and JSON API
type ServeCmd struct {
	AccessLog  bool   `help:"Print one line per request to stderr"`
	Addr       string `help:"Listen address (default: server_addr setting or 127.0.0.1:8080)"`
	NoAssets   bool   `help:"Serve only the JSON API"`
	AssetCache string `help:"Asset cache version; bumping it evicts older buckets"`
}

// Run executes the serve command
func (s *ServeCmd) Run(container *Container, cli *CLI) error {
	var fromSettings, cacheFromSettings string
	if cli.settings != nil {
		fromSettings = cli.settings.ServerAddr
		cacheFromSettings = cli.settings.AssetCacheVersion
	}
	addr := stringSetting(s.Addr, "FUTSAL_SERVER_ADDR", fromSettings, config.DefaultServerAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	opts := web.Options{}
	if s.AccessLog {
		opts.AccessLog = os.Stderr
	}
	if !s.NoAssets {
		cache := web.NewAssetCache(stringSetting(s.AssetCache, "FUTSAL_ASSET_CACHE_VERSION", cacheFromSettings, ""))
		if err := cache.Install(ctx); err != nil {
			return fmt.Errorf("failed to install asset cache: %w", err)
		}
		cache.Activate()
		opts.Assets = cache
	}

	handler := web.NewHandler(
		container.RecordService,
		container.SettingsService,
		container.TransferService,
		container.AnalysisService,
	)
	app := web.NewFiberApp(handler, opts)

	logging.Logger.Info("Executing serve command", "address", addr, "assets", opts.Assets != nil)
	fmt.Fprintf(cli.stdout(), "Serving futsal on http://%s (Ctrl+C to stop)\n", addr)
	return web.Serve(ctx, app, addr)
}
