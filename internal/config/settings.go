package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Settings represents the structure of ~/.glimpse/settings.json.
// Pointer fields distinguish "unset" from explicit zero values; precedence
// is CLI flag > env var > settings.json > default.
type Settings struct {
	DBPath          string   `json:"db_path,omitempty"`
	Debug           *bool    `json:"debug,omitempty"`
	ErrorClearDelay *int     `json:"error_clear_delay,omitempty"`
	ExposureSeconds *float64 `json:"exposure_seconds,omitempty"`
	MaxLogFiles     *int     `json:"max_log_files,omitempty"`
	MaxTrials       *int     `json:"max_trials,omitempty"`
	MediaDir        string   `json:"media_dir,omitempty"`
	MinTextChars    *int     `json:"min_text_chars,omitempty"`
	Mode            string   `json:"mode,omitempty"`
	Ordering        string   `json:"ordering,omitempty"`
	Outcomes        []string `json:"outcomes,omitempty"`
	StudyID         string   `json:"study_id,omitempty"`
}

// LoadSettings reads settings.json from the default location. A missing file
// is not an error; a malformed one is.
func LoadSettings() (*Settings, error) {
	return LoadSettingsFromPath(GetSettingsFilePath())
}

// LoadSettingsFromPath reads settings from an explicit path
func LoadSettingsFromPath(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("failed to parse settings file %s: %w", path, err)
	}
	return &settings, nil
}
