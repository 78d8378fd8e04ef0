package config

import (
	"fmt"
	"time"

	"glimpse/internal/domain"
)

// Study configuration defaults
const (
	DefaultStudyID         = "two_second_multimode"
	DefaultExposureSeconds = 2.0
	DefaultMaxTrials       = 30
	DefaultMinTextChars    = 1
	DefaultCatalogSource   = "dir"
)

// StudyConfig carries every tunable of a study run. Built once per command
// invocation and passed explicitly; no ambient state.
type StudyConfig struct {
	CatalogSource   string // "dir" or "manifest"
	ExposureSeconds float64
	MaxTrials       int
	MediaDir        string
	MinTextChars    int
	Mode            domain.Mode
	Ordering        domain.OrderingPolicy
	Outcomes        domain.OutcomeSet
	StudyID         string
}

// DefaultStudyConfig returns a config with all defaults applied
func DefaultStudyConfig() StudyConfig {
	return StudyConfig{
		CatalogSource:   DefaultCatalogSource,
		ExposureSeconds: DefaultExposureSeconds,
		MaxTrials:       DefaultMaxTrials,
		MediaDir:        ".",
		MinTextChars:    DefaultMinTextChars,
		Mode:            domain.DefaultMode,
		Ordering:        domain.OrderingIndependent,
		Outcomes:        domain.DefaultOutcomes(),
		StudyID:         DefaultStudyID,
	}
}

// Exposure returns the exposure duration as a time.Duration
func (c StudyConfig) Exposure() time.Duration {
	return time.Duration(c.ExposureSeconds * float64(time.Second))
}

// Validate checks the config for operator errors
func (c StudyConfig) Validate() error {
	if c.ExposureSeconds <= 0 {
		return fmt.Errorf("exposure must be positive, got %.2f", c.ExposureSeconds)
	}
	if c.MaxTrials <= 0 {
		return fmt.Errorf("max trials must be positive, got %d", c.MaxTrials)
	}
	if c.MinTextChars < 1 {
		return fmt.Errorf("min text chars must be at least 1, got %d", c.MinTextChars)
	}
	if len(c.Outcomes) == 0 {
		return fmt.Errorf("outcome set must not be empty")
	}
	switch c.CatalogSource {
	case "dir", "manifest":
	default:
		return fmt.Errorf("unknown catalog source %q (valid: dir, manifest)", c.CatalogSource)
	}
	return nil
}
