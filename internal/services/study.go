package services

import (
	"context"
	"time"

	"glimpse/internal/config"
	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
)

// StudyService drives one participant's session through the survey phases.
// It owns the SessionState exclusively; every public method is one
// phase-step that yields back to the caller, so the UI loop can re-invoke
// it while waiting on the exposure timer or user input.
type StudyService struct {
	catalog  ports.MediaCatalog
	cfg      config.StudyConfig
	clock    func() time.Time
	recorder *Recorder
	state    *domain.SessionState
}

// NewStudyService creates the service with a fresh session at Consent
func NewStudyService(cfg config.StudyConfig, catalog ports.MediaCatalog, recorder *Recorder) *StudyService {
	return &StudyService{
		catalog:  catalog,
		cfg:      cfg,
		clock:    time.Now,
		recorder: recorder,
		state:    domain.NewSessionState(cfg.StudyID, cfg.Mode),
	}
}

// State exposes the session state for rendering. The UI must treat it as
// read-only; all mutation goes through the phase-step methods.
func (s *StudyService) State() *domain.SessionState {
	return s.state
}

// Config returns the study configuration of this run
func (s *StudyService) Config() config.StudyConfig {
	return s.cfg
}

// Consent processes the consent-screen submission: re-validates the selected
// mode (falling back to the default), stamps the consent timestamp and
// finalizes the participant id.
func (s *StudyService) Consent(ctx context.Context, input ConsentInput) error {
	if input.Mode != "" {
		mode := domain.ParseMode(input.Mode)
		s.state.Mode = mode
		s.cfg.Mode = mode
	}

	if err := s.state.GrantConsent(input.Agreed, input.ParticipantID, s.clock()); err != nil {
		return err
	}

	logging.Logger.Info("Consent granted",
		"participant_id", s.state.Participant.ID,
		"mode", string(s.state.Mode))
	return nil
}

// SubmitDemographics validates the demographic fields, fixes the trial plan
// and enters the Show phase. An empty catalog fails the transition with no
// state change; the participant must restart with a different configuration.
func (s *StudyService) SubmitDemographics(ctx context.Context, input DemographicsInput) error {
	if s.state.Phase != domain.PhaseDemographics {
		return domain.ErrInvalidPhase
	}

	media, err := s.catalog.List(ctx, s.state.Mode.Kind())
	if err != nil {
		return err
	}

	var plan domain.TrialPlan
	if len(media) > 0 {
		rng := domain.NewOrderSource(s.cfg.Ordering, s.state.Participant.ID)
		plan, err = domain.NewPlan(len(media), s.cfg.MaxTrials, rng)
		if err != nil {
			return err
		}
	}

	err = s.state.CompleteDemographics(input.Name, input.Age, input.Gender, input.Nationality, media, plan)
	if err != nil {
		return err
	}

	logging.Logger.Info("Trial plan fixed",
		"participant_id", s.state.Participant.ID,
		"total_trials", s.state.TotalTrials(),
		"order_sequence", s.state.Plan.Encode(),
		"ordering", string(s.cfg.Ordering))
	return nil
}

// StepExposure performs one poll step of the Show phase: starts the timer on
// first entry and fires the Show -> Rate transition once the configured
// duration has elapsed. Returns the remaining exposure; zero or negative
// means the session moved on to Rate.
func (s *StudyService) StepExposure(ctx context.Context) (time.Duration, error) {
	if s.state.Phase != domain.PhaseShow {
		return 0, domain.ErrInvalidPhase
	}

	now := s.clock()
	s.state.BeginExposure(now)

	remaining := s.state.ExposureRemaining(now, s.cfg.Exposure())
	if remaining > 0 {
		return remaining, nil
	}

	if err := s.state.FinishExposure(); err != nil {
		return 0, err
	}
	return 0, nil
}

// SubmitRating validates and records the response for the current trial,
// then advances the cursor. The submission guard is set before the write so
// a slow or failing write cannot produce a duplicate row; a persistence
// failure is returned in the result but never blocks advancement.
func (s *StudyService) SubmitRating(ctx context.Context, input RatingInput) (SubmitResult, error) {
	if s.state.Phase != domain.PhaseRate {
		return SubmitResult{}, domain.ErrInvalidPhase
	}
	if s.state.Submitted {
		// No-op: never produce a second record for the same cursor
		logging.Logger.Warn("Duplicate submission ignored",
			"participant_id", s.state.Participant.ID,
			"cursor", s.state.Cursor)
		return SubmitResult{}, domain.ErrDuplicateSubmission
	}

	resp := domain.TrialResponse{Outcome: input.Outcome}
	if s.state.Mode.UsesSliders() {
		ratings := domain.Ratings{}
		if input.Ratings != nil {
			ratings = *input.Ratings
		}
		resp.Ratings = &ratings
	} else {
		resp.FreeText = input.FreeText
	}

	if err := resp.Validate(s.cfg.Outcomes, s.cfg.MinTextChars); err != nil {
		return SubmitResult{}, err
	}

	// Guard first, then side effects
	if err := s.state.MarkSubmitted(); err != nil {
		return SubmitResult{}, err
	}

	now := s.clock()
	record, err := domain.AssembleRecord(s.state, resp, now)
	if err != nil {
		return SubmitResult{}, err
	}
	progress, err := domain.AssembleProgress(s.state, now)
	if err != nil {
		return SubmitResult{}, err
	}

	persistErr := s.recorder.Record(ctx, record, progress)

	if err := s.state.Advance(); err != nil {
		return SubmitResult{PersistError: persistErr, Recorded: true}, err
	}

	return SubmitResult{
		Done:         s.state.Phase == domain.PhaseDone,
		PersistError: persistErr,
		Recorded:     true,
	}, nil
}

// Reset discards the whole session and returns to Consent. The plan is
// re-randomized on the next demographics submission.
func (s *StudyService) Reset() {
	logging.Logger.Info("Session reset",
		"participant_id", s.state.Participant.ID,
		"phase", string(s.state.Phase))
	s.state.Reset()
}

// ListCatalog exposes the catalog listing for operator commands
func (s *StudyService) ListCatalog(ctx context.Context, mode domain.Mode) ([]domain.MediaItem, error) {
	return s.catalog.List(ctx, mode.Kind())
}
