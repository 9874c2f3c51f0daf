package logging

import (
	"cmp"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"slices"
	"strconv"
	"time"

	"github.com/google/uuid"

	"futsal/internal/paths"
)

// Environment variables through which ssh sessions and the web server
// pick up the debug settings of the command that started them
const (
	EnvDebug       = "FUTSAL_DEBUG"
	EnvDebugFile   = "FUTSAL_DEBUG_FILE"
	EnvMaxLogFiles = "FUTSAL_MAX_LOG_FILES"
)

// DefaultMaxLogFiles is the rotation limit used when no flag overrides it
const DefaultMaxLogFiles = 1000

// Logger is the public logger instance accessible from all packages.
// It discards everything until Initialize enables debug output.
var Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))

// Options selects where debug logs go
type Options struct {
	// Command is the kong command path, e.g. "record add"; every entry carries it
	Command  string
	Debug    bool
	File     string
	MaxFiles int
}

// inherit fills unset options from the FUTSAL_DEBUG* environment.
// It returns whether debug mode came from a parent process.
func (o Options) inherit() (Options, bool) {
	inherited := false
	if os.Getenv(EnvDebug) == "1" {
		inherited = !o.Debug
		o.Debug = true
	}
	if o.File == "" {
		o.File = os.Getenv(EnvDebugFile)
	}
	if o.MaxFiles == DefaultMaxLogFiles {
		if parsed, err := strconv.Atoi(os.Getenv(EnvMaxLogFiles)); err == nil {
			o.MaxFiles = parsed
		}
	}
	return o, inherited
}

// Initialize sets up the logger; without debug or a log file nothing is written
func Initialize(opts Options) error {
	opts, inherited := opts.inherit()

	if !opts.Debug && opts.File == "" {
		Logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
		return nil
	}

	logFilePath := opts.File
	if logFilePath == "" {
		logDir, err := LogDir()
		if err != nil {
			return fmt.Errorf("failed to get log directory: %w", err)
		}
		if err := os.MkdirAll(logDir, 0755); err != nil {
			return fmt.Errorf("failed to create log directory: %w", err)
		}
		if opts.MaxFiles > 0 {
			if err := rotateLogs(logDir, opts.MaxFiles); err != nil {
				fmt.Fprintf(os.Stderr, "Warning: log rotation failed: %v\n", err)
			}
		}
		logFilePath = filepath.Join(logDir, logFileName(time.Now()))
	} else if err := os.MkdirAll(filepath.Dir(logFilePath), 0755); err != nil {
		return fmt.Errorf("failed to create log directory: %w", err)
	}

	logFile, err := os.OpenFile(logFilePath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to create log file: %w", err)
	}

	Logger = slog.New(slog.NewJSONHandler(logFile, &slog.HandlerOptions{Level: slog.LevelDebug})).
		With("pid", os.Getpid())
	if opts.Command != "" {
		Logger = Logger.With("command", opts.Command)
	}

	if !inherited {
		Logger.Info("Debug logging initialized", "log_file", logFilePath)
		fmt.Printf("Debug mode enabled. Logs: %s\n", logFilePath)
	}
	return nil
}

// ExportEnv publishes the effective debug settings for processes started by
// serve and ssh, so their entries land next to the parent's
func ExportEnv(opts Options) {
	if opts.Debug || opts.File != "" {
		os.Setenv(EnvDebug, "1")
		if opts.File != "" {
			os.Setenv(EnvDebugFile, opts.File)
		}
	}
	if opts.MaxFiles != DefaultMaxLogFiles {
		os.Setenv(EnvMaxLogFiles, strconv.Itoa(opts.MaxFiles))
	}
}

// logFileName sorts by start time; the uuid suffix keeps parallel runs apart
func logFileName(now time.Time) string {
	return fmt.Sprintf("futsal-%s-%s.log", now.Format("20060102-150405"), uuid.NewString()[:8])
}

// rotateLogs removes the oldest log files so that a new one fits under maxLogFiles
func rotateLogs(logDir string, maxLogFiles int) error {
	entries, err := os.ReadDir(logDir)
	if err != nil {
		return fmt.Errorf("failed to read log directory: %w", err)
	}

	type logFile struct {
		modTime time.Time
		path    string
	}
	var logs []logFile
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".log" {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			continue
		}
		logs = append(logs, logFile{modTime: info.ModTime(), path: filepath.Join(logDir, entry.Name())})
	}

	excess := len(logs) - maxLogFiles + 1
	if excess <= 0 {
		return nil
	}

	slices.SortFunc(logs, func(a, b logFile) int { return a.modTime.Compare(b.modTime) })
	for _, old := range logs[:excess] {
		if err := os.Remove(old.path); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to delete old log file %s: %v\n", old.path, err)
		}
	}
	return nil
}

// LogDir returns $FUTSAL_HOME/logs when FUTSAL_HOME is set, else the OS log directory
func LogDir() (string, error) {
	if os.Getenv("FUTSAL_HOME") != "" {
		return filepath.Join(paths.FutsalHome(), "logs"), nil
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}

	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(homeDir, "Library", "Logs", "futsal"), nil
	case "linux":
		stateHome := cmp.Or(os.Getenv("XDG_STATE_HOME"), filepath.Join(homeDir, ".local", "state"))
		return filepath.Join(stateHome, "futsal"), nil
	case "windows":
		localAppData := cmp.Or(os.Getenv("LOCALAPPDATA"), filepath.Join(homeDir, "AppData", "Local"))
		return filepath.Join(localAppData, "futsal", "logs"), nil
	default:
		return filepath.Join(homeDir, ".futsal", "logs"), nil
	}
}
