package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testTime = time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)

func testMedia(n int) []MediaItem {
	media := make([]MediaItem, n)
	for i := range media {
		media[i] = MediaItem{
			Kind: KindImage,
			Name: string(rune('a'+i)) + ".png",
		}
	}
	return media
}

// walkToShow drives a fresh session through Consent and Demographics
func walkToShow(t *testing.T, media []MediaItem, plan TrialPlan) *SessionState {
	t.Helper()

	s := NewSessionState("study", ModeImageSliders)
	require.NoError(t, s.GrantConsent(true, "", testTime))
	require.NoError(t, s.CompleteDemographics("Ana", 30, "Female", "Portuguese", media, plan))
	return s
}

func TestNewSessionState(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)

	assert.Equal(t, PhaseConsent, s.Phase)
	assert.Equal(t, "study", s.StudyID)
	assert.Len(t, s.Participant.ID, 8)
	assert.False(t, s.Participant.Consented)
}

func TestGrantConsent(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)
	generated := s.Participant.ID

	require.NoError(t, s.GrantConsent(true, "", testTime))

	assert.Equal(t, PhaseDemographics, s.Phase)
	assert.True(t, s.Participant.Consented)
	assert.Equal(t, testTime, s.Participant.ConsentTimestamp)
	assert.Equal(t, generated, s.Participant.ID, "empty override keeps the generated id")
}

func TestGrantConsent_OverridesParticipantID(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)

	require.NoError(t, s.GrantConsent(true, "  P042  ", testTime))
	assert.Equal(t, "P042", s.Participant.ID)
}

func TestGrantConsent_Declined(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)

	err := s.GrantConsent(false, "", testTime)
	assert.ErrorIs(t, err, ErrConsentRequired)
	assert.Equal(t, PhaseConsent, s.Phase)
	assert.False(t, s.Participant.Consented)
}

func TestGrantConsent_WrongPhase(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)
	require.NoError(t, s.GrantConsent(true, "", testTime))

	err := s.GrantConsent(true, "", testTime)
	assert.ErrorIs(t, err, ErrInvalidPhase)
}

func TestCompleteDemographics(t *testing.T) {
	s := walkToShow(t, testMedia(3), TrialPlan{2, 0, 1})

	assert.Equal(t, PhaseShow, s.Phase)
	assert.Equal(t, "Ana", s.Participant.Name)
	assert.Equal(t, 30, s.Participant.Age)
	assert.Equal(t, 0, s.Cursor)
	assert.Equal(t, 3, s.TotalTrials())
}

func TestCompleteDemographics_ValidationFailures(t *testing.T) {
	tests := []struct {
		name        string
		pname       string
		age         int
		gender      string
		nationality string
		expected    error
	}{
		{"missing name", "", 30, "Female", "Portuguese", ErrMissingDemographics},
		{"missing gender", "Ana", 30, "", "Portuguese", ErrMissingDemographics},
		{"missing nationality", "Ana", 30, "Female", "", ErrMissingDemographics},
		{"zero age", "Ana", 0, "Female", "Portuguese", ErrInvalidAge},
		{"negative age", "Ana", -5, "Female", "Portuguese", ErrInvalidAge},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewSessionState("study", ModeImageSliders)
			require.NoError(t, s.GrantConsent(true, "", testTime))

			err := s.CompleteDemographics(tt.pname, tt.age, tt.gender, tt.nationality, testMedia(3), TrialPlan{0, 1, 2})
			assert.ErrorIs(t, err, tt.expected)
			assert.Equal(t, PhaseDemographics, s.Phase)
			assert.Empty(t, s.Participant.Name, "failed transition must not store fields")
		})
	}
}

func TestCompleteDemographics_EmptyCatalog(t *testing.T) {
	s := NewSessionState("study", ModeImageSliders)
	require.NoError(t, s.GrantConsent(true, "", testTime))

	err := s.CompleteDemographics("Ana", 30, "Female", "Portuguese", nil, nil)
	assert.ErrorIs(t, err, ErrEmptyCatalog)
	assert.Equal(t, PhaseDemographics, s.Phase)
}

func TestBeginExposure_Idempotent(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})

	s.BeginExposure(testTime)
	require.NotNil(t, s.ShowStarted)
	first := *s.ShowStarted

	s.BeginExposure(testTime.Add(5 * time.Second))
	assert.Equal(t, first, *s.ShowStarted, "repeated calls must not restart the timer")
}

func TestExposureRemaining(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})
	exposure := 2 * time.Second

	assert.Equal(t, exposure, s.ExposureRemaining(testTime, exposure), "full duration before the timer starts")

	s.BeginExposure(testTime)
	assert.Equal(t, 1500*time.Millisecond, s.ExposureRemaining(testTime.Add(500*time.Millisecond), exposure))
	assert.LessOrEqual(t, s.ExposureRemaining(testTime.Add(3*time.Second), exposure), time.Duration(0))
}

func TestFinishExposure(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})
	s.BeginExposure(testTime)

	require.NoError(t, s.FinishExposure())
	assert.Equal(t, PhaseRate, s.Phase)
	assert.Nil(t, s.ShowStarted)

	assert.ErrorIs(t, s.FinishExposure(), ErrInvalidPhase, "fires exactly once per trial")
}

func TestMarkSubmitted_Guard(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})
	require.NoError(t, s.FinishExposure())

	require.NoError(t, s.MarkSubmitted())
	assert.ErrorIs(t, s.MarkSubmitted(), ErrDuplicateSubmission)
}

func TestMarkSubmitted_WrongPhase(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})

	assert.ErrorIs(t, s.MarkSubmitted(), ErrInvalidPhase)
}

func TestAdvance_RequiresSubmission(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})
	require.NoError(t, s.FinishExposure())

	assert.ErrorIs(t, s.Advance(), ErrInvalidPhase)
}

func TestAdvance_FullWalk(t *testing.T) {
	plan := TrialPlan{2, 0, 1}
	s := walkToShow(t, testMedia(3), plan)

	for i := range plan {
		assert.Equal(t, PhaseShow, s.Phase)
		assert.Equal(t, i, s.Cursor)

		item, err := s.CurrentItem()
		require.NoError(t, err)
		assert.Equal(t, testMedia(3)[plan[i]].Name, item.Name)

		s.BeginExposure(testTime)
		require.NoError(t, s.FinishExposure())
		require.NoError(t, s.MarkSubmitted())
		require.NoError(t, s.Advance())

		assert.False(t, s.Submitted, "guard resets for the next trial")
	}

	assert.Equal(t, PhaseDone, s.Phase)
	_, err := s.CurrentItem()
	assert.ErrorIs(t, err, ErrPlanExhausted)
}

func TestReset(t *testing.T) {
	s := walkToShow(t, testMedia(2), TrialPlan{0, 1})
	originalID := s.Participant.ID

	s.Reset()

	assert.Equal(t, PhaseConsent, s.Phase)
	assert.Equal(t, "study", s.StudyID)
	assert.Equal(t, ModeImageSliders, s.Mode)
	assert.NotEqual(t, originalID, s.Participant.ID, "reset issues a fresh participant id")
	assert.Empty(t, s.Plan)
	assert.Nil(t, s.ShowStarted)
}
