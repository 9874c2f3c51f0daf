package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"futsal/internal/paths"
)

// Defaults applied when neither a flag, an environment variable nor settings.json sets a value
const (
	DefaultServerAddr = "127.0.0.1:8080"
	DefaultSSHHost    = "127.0.0.1"
	DefaultSSHPort    = 23234
)

// Settings represents the structure of ~/.futsal/settings.json
type Settings struct {
	AssetCacheVersion string      `json:"asset_cache_version,omitempty"`
	DBPath            string      `json:"db_path,omitempty"`
	Debug             *bool       `json:"debug,omitempty"`
	DefaultPlaces     StringArray `json:"default_places,omitempty"`
	MaxLogFiles       *int        `json:"max_log_files,omitempty"`
	ServerAddr        string      `json:"server_addr,omitempty"`
	SSHHost           string      `json:"ssh_host,omitempty"`
	SSHPort           *int        `json:"ssh_port,omitempty"`
}

// StringArray supports both JSON arrays and comma-separated strings
type StringArray []string

// UnmarshalJSON implements custom unmarshaling for StringArray
func (sa *StringArray) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*sa = arr
		return nil
	}

	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		return err
	}
	*sa = parseCommaSeparated(str)
	return nil
}

// parseCommaSeparated splits comma-separated string and trims whitespace
func parseCommaSeparated(s string) []string {
	if s == "" {
		return []string{}
	}
	parts := strings.Split(s, ",")
	result := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}

// LoadSettings loads settings from $FUTSAL_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(paths.SettingsPath())
}

// LoadSettingsFrom loads settings from an explicit path
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	if settings.DBPath != "" {
		settings.DBPath = paths.ExpandPath(settings.DBPath)
	}

	return &settings, nil
}

// SaveSettings saves settings to $FUTSAL_HOME/settings.json
func SaveSettings(settings *Settings) error {
	return SaveSettingsTo(paths.SettingsPath(), settings)
}

// SaveSettingsTo saves settings to an explicit path, creating its directory
func SaveSettingsTo(path string, settings *Settings) error {
	data, err := json.MarshalIndent(settings, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal settings: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create settings directory: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write settings file: %w", err)
	}

	return nil
}
