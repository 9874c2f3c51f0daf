package paths

import (
	"os"
	"path/filepath"
)

// FutsalHome returns FUTSAL_HOME or the ~/.futsal default
func FutsalHome() string {
	home := os.Getenv("FUTSAL_HOME")
	if home == "" {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return ".futsal"
		}
		return filepath.Join(homeDir, ".futsal")
	}
	return ExpandPath(home)
}

// DBPath returns $FUTSAL_HOME/futsal.db
func DBPath() string {
	return filepath.Join(FutsalHome(), "futsal.db")
}

// SettingsPath returns $FUTSAL_HOME/settings.json
func SettingsPath() string {
	return filepath.Join(FutsalHome(), "settings.json")
}

// HostKeyPath returns $FUTSAL_HOME/ssh_host_ed25519
func HostKeyPath() string {
	return filepath.Join(FutsalHome(), "ssh_host_ed25519")
}

// ExpandPath expands ~ to home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err == nil {
			if len(path) == 1 {
				return homeDir
			}
			return filepath.Join(homeDir, path[1:])
		}
	}
	return path
}
