package config

import (
	"os"
	"path/filepath"
)

// GetSettingsFilePath returns the path to the settings file
func GetSettingsFilePath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.glimpse/settings.json" // Fallback to unexpanded path
	}
	return filepath.Join(homeDir, ".glimpse", "settings.json")
}

// GetDBPath returns the default SQLite database path
func GetDBPath() string {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "~/.glimpse/glimpse.db"
	}
	return filepath.Join(homeDir, ".glimpse", "glimpse.db")
}

// ExpandPath expands a leading ~ to the user's home directory
func ExpandPath(path string) string {
	if len(path) > 0 && path[0] == '~' {
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return path
		}
		if len(path) == 1 {
			return homeDir
		}
		return filepath.Join(homeDir, path[1:])
	}
	return path
}
