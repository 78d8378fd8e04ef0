package cmd

import (
	"fmt"
	"strings"

	"glimpse/internal/config"
	"glimpse/internal/domain"
	"glimpse/internal/logging"
)

// StudyFlags are the study tunables shared by the run and serve commands
type StudyFlags struct {
	Catalog      string  `help:"Catalog strategy (dir or manifest)" default:"dir" enum:"dir,manifest"`
	Exposure     float64 `help:"Stimulus exposure duration in seconds" default:"2.0"`
	MaxTrials    int     `help:"Maximum number of trials per session" default:"30"`
	MediaDir     string  `help:"Directory containing media stimuli" default:"."`
	MinTextChars int     `help:"Minimum free-text response length" default:"1"`
	Mode         string  `help:"Presentation mode (img_sliders, img_text, vid_sliders, vid_text); unrecognized values fall back to the default" default:"img_sliders"`
	Ordering     string  `help:"Trial ordering policy" default:"independent" enum:"independent,participant"`
	Outcomes     string  `help:"Comma-separated outcome judgments (e.g. 'Won,Lost' or 'Won,Lost,Unsure')" default:"Won,Lost"`
	StudyID      string  `help:"Study identifier written to every record" default:"two_second_multimode"`
}

// studyConfig builds the StudyConfig with precedence:
// CLI flag > settings.json > default
func (f StudyFlags) studyConfig(settings *config.Settings) (config.StudyConfig, error) {
	cfg := config.DefaultStudyConfig()

	if settings != nil {
		if settings.ExposureSeconds != nil {
			cfg.ExposureSeconds = *settings.ExposureSeconds
		}
		if settings.MaxTrials != nil {
			cfg.MaxTrials = *settings.MaxTrials
		}
		if settings.MinTextChars != nil {
			cfg.MinTextChars = *settings.MinTextChars
		}
		if settings.MediaDir != "" {
			cfg.MediaDir = config.ExpandPath(settings.MediaDir)
		}
		if settings.Mode != "" {
			cfg.Mode = domain.ParseMode(settings.Mode)
		}
		if settings.StudyID != "" {
			cfg.StudyID = settings.StudyID
		}
		if settings.Ordering != "" {
			policy, err := domain.ParseOrderingPolicy(settings.Ordering)
			if err != nil {
				return cfg, fmt.Errorf("settings.json: %w", err)
			}
			cfg.Ordering = policy
		}
		if len(settings.Outcomes) > 0 {
			set, err := domain.ParseOutcomeSet(strings.Join(settings.Outcomes, ","))
			if err != nil {
				return cfg, fmt.Errorf("settings.json: %w", err)
			}
			cfg.Outcomes = set
		}
	}

	// Flags override settings when not at their default value
	if f.Exposure != config.DefaultExposureSeconds {
		cfg.ExposureSeconds = f.Exposure
	}
	if f.MaxTrials != config.DefaultMaxTrials {
		cfg.MaxTrials = f.MaxTrials
	}
	if f.MinTextChars != config.DefaultMinTextChars {
		cfg.MinTextChars = f.MinTextChars
	}
	if f.MediaDir != "." {
		cfg.MediaDir = f.MediaDir
	}
	if f.StudyID != config.DefaultStudyID {
		cfg.StudyID = f.StudyID
	}
	if f.Catalog != config.DefaultCatalogSource {
		cfg.CatalogSource = f.Catalog
	}
	if f.Mode != string(domain.DefaultMode) {
		mode := domain.ParseMode(f.Mode)
		if string(mode) != f.Mode {
			logging.Logger.Warn("Unrecognized mode, falling back to default",
				"requested", f.Mode,
				"fallback", string(mode))
		}
		cfg.Mode = mode
	}
	if f.Ordering != string(domain.OrderingIndependent) {
		policy, err := domain.ParseOrderingPolicy(f.Ordering)
		if err != nil {
			return cfg, err
		}
		cfg.Ordering = policy
	}
	if f.Outcomes != "Won,Lost" {
		set, err := domain.ParseOutcomeSet(f.Outcomes)
		if err != nil {
			return cfg, err
		}
		cfg.Outcomes = set
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}
