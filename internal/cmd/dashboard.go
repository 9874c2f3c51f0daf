package cmd

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"futsal/internal/logging"
	"futsal/internal/ui"
	"futsal/internal/watch"
)

// DashboardCmd starts the analysis dashboard
type DashboardCmd struct {
	NoWatch bool `help:"Do not reload when another process changes the database"`
}

// Run executes the dashboard
func (d *DashboardCmd) Run(container *Container) error {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var changes <-chan struct{}
	if !d.NoWatch && container.DBPath != "" {
		watcher, err := watch.NewStoreWatcher(container.DBPath, watch.DefaultDelay)
		if err != nil {
			logging.Logger.Warn("Store watcher unavailable, live reload disabled", "error", err)
		} else if err := watcher.Start(ctx); err != nil {
			logging.Logger.Warn("Failed to start store watcher", "error", err)
		} else {
			defer watcher.Stop()
			changes = watcher.Changes()
		}
	}

	logging.Logger.Info("Starting dashboard", "db", container.DBPath, "watch", changes != nil)
	p := tea.NewProgram(
		ui.NewDashboard(ctx, container.AnalysisService, changes),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		logging.Logger.Error("Dashboard program error", "error", err)
		return fmt.Errorf("error running dashboard: %w", err)
	}

	logging.Logger.Info("Dashboard exited normally")
	return nil
}
