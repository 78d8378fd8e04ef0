package domain

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Participant holds the consent and demographic data for one session.
// Created at the Consent phase, completed at Demographics, immutable after.
type Participant struct {
	Age              int
	Consented        bool
	ConsentTimestamp time.Time
	Gender           string
	ID               string
	Name             string
	Nationality      string
}

// NewParticipantID generates an opaque participant token (8 upper-case hex
// characters). Participants may replace it with their own identifier on the
// consent screen.
func NewParticipantID() string {
	id := uuid.New()
	return strings.ToUpper(strings.ReplaceAll(id.String(), "-", "")[:8])
}

// ValidateDemographics checks the fields collected at the Demographics phase
func (p Participant) ValidateDemographics() error {
	if strings.TrimSpace(p.Name) == "" ||
		strings.TrimSpace(p.Gender) == "" ||
		strings.TrimSpace(p.Nationality) == "" {
		return ErrMissingDemographics
	}
	if p.Age <= 0 {
		return ErrInvalidAge
	}
	return nil
}
