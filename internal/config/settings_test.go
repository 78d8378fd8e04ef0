package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadSettingsFromPath_MissingFile(t *testing.T) {
	settings, err := LoadSettingsFromPath(filepath.Join(t.TempDir(), "settings.json"))
	require.NoError(t, err, "a missing settings file is not an error")
	assert.Equal(t, &Settings{}, settings)
}

func TestLoadSettingsFromPath_Valid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	content := `{
		"db_path": "~/.glimpse/custom.db",
		"debug": true,
		"exposure_seconds": 3.5,
		"max_trials": 10,
		"mode": "vid_text",
		"outcomes": ["Won", "Lost", "Unsure"],
		"study_id": "pilot"
	}`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	settings, err := LoadSettingsFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, "~/.glimpse/custom.db", settings.DBPath)
	require.NotNil(t, settings.Debug)
	assert.True(t, *settings.Debug)
	require.NotNil(t, settings.ExposureSeconds)
	assert.Equal(t, 3.5, *settings.ExposureSeconds)
	require.NotNil(t, settings.MaxTrials)
	assert.Equal(t, 10, *settings.MaxTrials)
	assert.Equal(t, "vid_text", settings.Mode)
	assert.Equal(t, []string{"Won", "Lost", "Unsure"}, settings.Outcomes)
	assert.Equal(t, "pilot", settings.StudyID)
	assert.Nil(t, settings.MinTextChars, "absent keys stay unset")
}

func TestLoadSettingsFromPath_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0644))

	_, err := LoadSettingsFromPath(path)
	assert.Error(t, err)
}
