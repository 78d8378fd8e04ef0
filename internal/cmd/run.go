package cmd

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"glimpse/internal/logging"
	"glimpse/internal/services"
	"glimpse/internal/ui"
)

// RunCmd runs the survey locally in the current terminal
type RunCmd struct {
	StudyFlags

	ErrorClearDelay int `help:"Seconds to wait before clearing error messages" default:"10"`
}

// Run executes the run command
func (r *RunCmd) Run(cli *CLI) error {
	cfg, err := r.studyConfig(cli.settings)
	if err != nil {
		return err
	}

	errorClearDelay := r.ErrorClearDelay
	if r.ErrorClearDelay == 10 && cli.settings != nil && cli.settings.ErrorClearDelay != nil {
		errorClearDelay = *cli.settings.ErrorClearDelay
	}

	catalog, err := cli.Container.NewCatalog(cfg)
	if err != nil {
		return fmt.Errorf("failed to open catalog: %w", err)
	}

	sink, err := cli.Container.Sink()
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	recorder := services.NewRecorder(sink, sink)
	study := services.NewStudyService(cfg, catalog, recorder)

	logging.Logger.Info("Starting local survey session",
		"study_id", cfg.StudyID,
		"mode", string(cfg.Mode),
		"exposure_seconds", cfg.ExposureSeconds,
		"max_trials", cfg.MaxTrials,
		"db", cli.DB)

	model := ui.NewModel(study, time.Duration(errorClearDelay)*time.Second)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("failed to run survey: %w", err)
	}
	return nil
}
