package cmd

import (
	"fmt"
	"os"

	"github.com/alecthomas/kong"

	"glimpse/internal/config"
	"glimpse/internal/logging"
)

// CLI represents the command-line interface structure
type CLI struct {
	Version     kong.VersionFlag `help:"Show version information"`
	Debug       bool             `help:"Enable debug logging to file" short:"d"`
	DebugFile   string           `help:"Custom path for debug log file (disables automatic cleanup)"`
	MaxLogFiles int              `help:"Maximum number of log files to keep (0 = unlimited)" default:"1000"`
	DB          string           `help:"Path to the study database" type:"path"`

	Run     RunCmd     `cmd:"" help:"Run the survey locally (default)" default:"1"`
	Serve   ServeCmd   `cmd:"serve" help:"Serve the survey to participants over SSH"`
	Catalog CatalogCmd `cmd:"catalog" help:"List cataloged stimuli for a mode"`
	Export  ExportCmd  `cmd:"export" help:"Export collected responses to CSV"`

	// Internal fields (not flags)
	Container *Container       `kong:"-"`
	settings  *config.Settings `kong:"-"`
}

// SetSettings sets the settings on the CLI struct
func (c *CLI) SetSettings(settings *config.Settings) {
	c.settings = settings
}

// AfterApply initializes logging after CLI parsing and applies settings
// with precedence: CLI flags > env vars > settings.json > defaults
func (c *CLI) AfterApply() error {
	if c.settings != nil {
		// Apply MaxLogFiles setting
		if c.MaxLogFiles == 1000 {
			if _, hasEnv := os.LookupEnv("GLIMPSE_MAX_LOG_FILES"); !hasEnv {
				if c.settings.MaxLogFiles != nil {
					c.MaxLogFiles = *c.settings.MaxLogFiles
				}
			}
		}

		// Apply Debug setting
		if !c.Debug {
			if _, hasEnv := os.LookupEnv("GLIMPSE_DEBUG"); !hasEnv {
				if c.settings.Debug != nil && *c.settings.Debug {
					c.Debug = true
				}
			}
		}

		// Apply DBPath setting
		if c.DB == "" && c.settings.DBPath != "" {
			c.DB = config.ExpandPath(c.settings.DBPath)
		}
	}
	if c.DB == "" {
		c.DB = config.GetDBPath()
	}

	logFilePath, err := logging.Initialize(c.Debug, c.DebugFile, c.MaxLogFiles)
	if err != nil {
		return err
	}

	// Served sessions inherit debug settings and append to the same file
	if c.Debug || c.DebugFile != "" {
		os.Setenv("GLIMPSE_DEBUG", "1")
		if logFilePath != "" {
			os.Setenv("GLIMPSE_DEBUG_FILE", logFilePath)
		}
	}
	if c.MaxLogFiles != 1000 {
		os.Setenv("GLIMPSE_MAX_LOG_FILES", fmt.Sprintf("%d", c.MaxLogFiles))
	}

	c.Container = NewContainer(c.DB)
	return nil
}

// Close closes all resources held by the CLI
func (c *CLI) Close() error {
	if c.Container != nil {
		return c.Container.Close()
	}
	return nil
}
