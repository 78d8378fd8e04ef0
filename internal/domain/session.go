package domain

import (
	"strings"
	"time"
)

// Phase is one state of the session state machine
type Phase string

const (
	PhaseConsent      Phase = "consent"
	PhaseDemographics Phase = "demographics"
	PhaseShow         Phase = "show"
	PhaseRate         Phase = "rate"
	PhaseDone         Phase = "done"
)

// SessionState is the single source of truth for one participant's run.
// It is exclusively owned by its session; every transition method is a
// guarded, idempotent step so the driving loop may re-invoke handlers while
// waiting on a timer or user input.
type SessionState struct {
	Cursor      int // 0-based position within the plan
	Media       []MediaItem
	Mode        Mode
	Participant Participant
	Phase       Phase
	Plan        TrialPlan
	ShowStarted *time.Time // nil means exposure not yet started
	StudyID     string
	Submitted   bool // submission guard for the current trial cursor
}

// NewSessionState creates a fresh session at the Consent phase with a
// generated participant id
func NewSessionState(studyID string, mode Mode) *SessionState {
	return &SessionState{
		Mode:        mode,
		Participant: Participant{ID: NewParticipantID()},
		Phase:       PhaseConsent,
		StudyID:     studyID,
	}
}

// GrantConsent records the consent affirmation and finalizes the participant
// id, moving Consent -> Demographics. The participant may override the
// generated id; an empty override keeps it.
func (s *SessionState) GrantConsent(agreed bool, participantID string, now time.Time) error {
	if s.Phase != PhaseConsent {
		return ErrInvalidPhase
	}
	if !agreed {
		return ErrConsentRequired
	}

	if id := strings.TrimSpace(participantID); id != "" {
		s.Participant.ID = id
	}
	s.Participant.Consented = true
	s.Participant.ConsentTimestamp = now.UTC()
	s.Phase = PhaseDemographics
	return nil
}

// CompleteDemographics stores the validated demographic fields and fixes the
// trial plan, moving Demographics -> Show. An empty catalog fails the
// transition with no state change.
func (s *SessionState) CompleteDemographics(name string, age int, gender, nationality string, media []MediaItem, plan TrialPlan) error {
	if s.Phase != PhaseDemographics {
		return ErrInvalidPhase
	}

	candidate := s.Participant
	candidate.Age = age
	candidate.Gender = strings.TrimSpace(gender)
	candidate.Name = strings.TrimSpace(name)
	candidate.Nationality = strings.TrimSpace(nationality)
	if err := candidate.ValidateDemographics(); err != nil {
		return err
	}

	if len(media) == 0 || len(plan) == 0 {
		return ErrEmptyCatalog
	}

	s.Participant = candidate
	s.Media = media
	s.Plan = plan
	s.Cursor = 0
	s.ShowStarted = nil
	s.Submitted = false
	s.Phase = PhaseShow
	return nil
}

// BeginExposure records the exposure start on first entry to Show for the
// current trial. Safe to call repeatedly; only the first call per trial
// takes effect.
func (s *SessionState) BeginExposure(now time.Time) {
	if s.Phase == PhaseShow && s.ShowStarted == nil {
		t := now
		s.ShowStarted = &t
	}
}

// ExposureRemaining returns how much of the configured exposure is left.
// The duration is a minimum guaranteed exposure, not an exact one.
func (s *SessionState) ExposureRemaining(now time.Time, duration time.Duration) time.Duration {
	if s.ShowStarted == nil {
		return duration
	}
	return duration - now.Sub(*s.ShowStarted)
}

// FinishExposure fires the Show -> Rate transition, clearing the start
// timestamp so the next trial's timer restarts from zero. Fires exactly once
// per trial; re-invocation in Rate is rejected.
func (s *SessionState) FinishExposure() error {
	if s.Phase != PhaseShow {
		return ErrInvalidPhase
	}
	s.ShowStarted = nil
	s.Phase = PhaseRate
	return nil
}

// MarkSubmitted sets the per-trial submission guard. It must be set before
// any side-effecting write so a slow or failing write cannot allow a
// duplicate resubmission.
func (s *SessionState) MarkSubmitted() error {
	if s.Phase != PhaseRate {
		return ErrInvalidPhase
	}
	if s.Submitted {
		return ErrDuplicateSubmission
	}
	s.Submitted = true
	return nil
}

// Advance moves to the next trial after a recorded response: Rate -> Show,
// or Rate -> Done when the plan is consumed
func (s *SessionState) Advance() error {
	if s.Phase != PhaseRate || !s.Submitted {
		return ErrInvalidPhase
	}

	s.Cursor++
	s.Submitted = false
	s.ShowStarted = nil
	if s.Cursor >= len(s.Plan) {
		s.Phase = PhaseDone
	} else {
		s.Phase = PhaseShow
	}
	return nil
}

// Reset discards all session state, returning to Consent with a fresh
// participant id. This is the only cancellation path; it invalidates the
// current plan and any in-flight exposure timer.
func (s *SessionState) Reset() {
	*s = *NewSessionState(s.StudyID, s.Mode)
}

// CurrentItem returns the stimulus for the current trial cursor
func (s *SessionState) CurrentItem() (MediaItem, error) {
	if s.Cursor < 0 || s.Cursor >= len(s.Plan) {
		return MediaItem{}, ErrPlanExhausted
	}
	idx := s.Plan[s.Cursor]
	if idx < 0 || idx >= len(s.Media) {
		return MediaItem{}, ErrPlanExhausted
	}
	return s.Media[idx], nil
}

// CurrentCatalogIndex returns the catalog index of the current trial
func (s *SessionState) CurrentCatalogIndex() (int, error) {
	if s.Cursor < 0 || s.Cursor >= len(s.Plan) {
		return 0, ErrPlanExhausted
	}
	return s.Plan[s.Cursor], nil
}

// TotalTrials is the fixed plan length
func (s *SessionState) TotalTrials() int {
	return len(s.Plan)
}
