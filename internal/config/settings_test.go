package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStringArrayUnmarshal(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected StringArray
	}{
		{name: "array", input: `["a","b"]`, expected: StringArray{"a", "b"}},
		{name: "comma separated", input: `"a, b ,,c"`, expected: StringArray{"a", "b", "c"}},
		{name: "empty string", input: `""`, expected: StringArray{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var sa StringArray
			require.NoError(t, json.Unmarshal([]byte(tt.input), &sa))
			assert.Equal(t, tt.expected, sa)
		})
	}
}

func TestStringArrayUnmarshalRejectsNumbers(t *testing.T) {
	var sa StringArray
	assert.Error(t, json.Unmarshal([]byte(`42`), &sa))
}

func TestLoadSettingsMissingFile(t *testing.T) {
	s, err := LoadSettingsFrom(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err)
	assert.Equal(t, &Settings{}, s)
}

func TestLoadSettingsInvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{nope"), 0644))

	_, err := LoadSettingsFrom(path)
	assert.ErrorContains(t, err, "invalid settings.json")
}

func TestSaveAndLoadSettings(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "settings.json")
	debug := true
	port := 2222

	require.NoError(t, SaveSettingsTo(path, &Settings{
		Debug:         &debug,
		DefaultPlaces: StringArray{"体育館"},
		ServerAddr:    ":9000",
		SSHPort:       &port,
	}))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	require.NotNil(t, loaded.Debug)
	assert.True(t, *loaded.Debug)
	assert.Equal(t, StringArray{"体育館"}, loaded.DefaultPlaces)
	assert.Equal(t, ":9000", loaded.ServerAddr)
	require.NotNil(t, loaded.SSHPort)
	assert.Equal(t, 2222, *loaded.SSHPort)
}

func TestLoadSettingsExpandsDBPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"db_path":"~/data/futsal.db"}`), 0644))

	loaded, err := LoadSettingsFrom(path)
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, "data", "futsal.db"), loaded.DBPath)
}

func TestGetSettingsExample(t *testing.T) {
	example := GetSettingsExample()

	assert.Len(t, example, 8)
	assert.Equal(t, true, example["debug"])
	assert.Equal(t, 1000, example["max_log_files"])
	assert.Equal(t, DefaultSSHPort, example["ssh_port"])
	assert.Equal(t, "~/.futsal/futsal.db", example["db_path"])
	assert.Equal(t, []string{"体育館", "大会", "その他"}, example["default_places"])
}
