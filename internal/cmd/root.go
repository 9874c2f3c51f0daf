package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/alecthomas/kong"

	"futsal/internal/config"
	"futsal/internal/logging"
	"futsal/internal/paths"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	DB          string           `help:"Path to the SQLite database (default: $FUTSAL_HOME/futsal.db)" name:"db" type:"path"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	InMemory    bool             `help:"Use a throwaway in-memory store (nothing is saved)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`

	Dashboard DashboardCmd `cmd:"" help:"Open the analysis dashboard (default)" default:"1"`
	Record    RecordCmd    `cmd:"record" help:"Manage session records (add, edit, del, list, wipe, new)"`
	Settings  SettingsCmd  `cmd:"settings" help:"Manage places, assist targets and settings metadata"`
	Analysis  AnalysisCmd  `cmd:"analysis" help:"Print an analysis report"`
	Export    ExportCmd    `cmd:"export" help:"Export every record as a JSON backup"`
	Import    ImportCmd    `cmd:"import" help:"Merge records from a JSON backup"`
	Serve     ServeCmd     `cmd:"serve" help:"Serve the web pages and JSON API"`
	SSH       SSHCmd       `cmd:"ssh" help:"Serve the dashboard over SSH"`
	Info      VersionCmd   `cmd:"version" help:"Show version information"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	Out       io.Writer        `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
func (c *CLI) AfterApply(kctx *kong.Context) error {
	// Precedence: CLI flags > env vars > settings.json > defaults.
	// A setting is only applied while the flag is at its default and no env var is set.
	if c.settings != nil {
		if c.MaxLogFiles == logging.DefaultMaxLogFiles {
			if _, hasEnv := os.LookupEnv(logging.EnvMaxLogFiles); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		if !c.Debug {
			if _, hasEnv := os.LookupEnv(logging.EnvDebug); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}
	}

	opts := logging.Options{Debug: c.Debug, File: c.DebugFile, MaxFiles: c.MaxLogFiles}
	if kctx != nil {
		opts.Command = kctx.Command()
	}
	if err := logging.Initialize(opts); err != nil {
		return err
	}
	// Exported after initialization so ssh sessions and serve log alongside this process
	logging.ExportEnv(opts)

	// The container opens the database, so it is created once logging is ready
	var container *Container
	if c.InMemory {
		container = NewMemoryContainer(c.defaultPlaces())
	} else {
		var err error
		container, err = NewContainer(c.dbPath(), c.defaultPlaces())
		if err != nil {
			return fmt.Errorf("failed to initialize container: %w", err)
		}
	}
	c.Container = container
	if kctx != nil {
		kctx.Bind(container)
	}

	logging.Logger.Debug("CLI initialized", "db", container.DBPath, "in_memory", c.InMemory, "debug", c.Debug)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}

// stdout returns where command output is written
func (c *CLI) stdout() io.Writer {
	if c.Out != nil {
		return c.Out
	}
	return os.Stdout
}

// dbPath resolves --db, then FUTSAL_DB, then settings.json, then $FUTSAL_HOME/futsal.db
func (c *CLI) dbPath() string {
	if c.DB != "" {
		return paths.ExpandPath(c.DB)
	}
	if env, ok := os.LookupEnv("FUTSAL_DB"); ok && env != "" {
		return paths.ExpandPath(env)
	}
	if c.settings != nil && c.settings.DBPath != "" {
		return c.settings.DBPath
	}
	return paths.DBPath()
}

func (c *CLI) defaultPlaces() []string {
	if c.settings != nil && len(c.settings.DefaultPlaces) > 0 {
		return c.settings.DefaultPlaces
	}
	return nil
}

// stringSetting applies the flag > env > settings.json > default precedence to a string option
func stringSetting(flag, envName, fromSettings, fallback string) string {
	if flag != "" {
		return flag
	}
	if env, ok := os.LookupEnv(envName); ok && env != "" {
		return env
	}
	if fromSettings != "" {
		return fromSettings
	}
	return fallback
}
