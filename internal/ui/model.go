package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/services"
	"glimpse/internal/theme"
)

// exposurePollInterval is how often the Show phase re-checks the timer.
// The exposure duration is a minimum, not an exact bound.
const exposurePollInterval = 100 * time.Millisecond

// Model is the top-level Bubble Tea model. It renders the phase the session
// is in and routes input to the active form; all state transitions go
// through the StudyService.
type Model struct {
	consentForm     *ConsentForm
	demoForm        *DemographicsForm
	errNotice       string
	errorClearDelay time.Duration
	exposureBar     progress.Model
	height          int
	noticeSeq       int
	quitting        bool
	ratingForm      *RatingForm
	remaining       time.Duration
	svc             *services.StudyService
	warnNotice      string
	width           int
}

// NewModel creates the survey UI bound to a study service
func NewModel(svc *services.StudyService, errorClearDelay time.Duration) *Model {
	bar := progress.New(progress.WithDefaultGradient())
	bar.Width = 40

	state := svc.State()
	return &Model{
		consentForm:     NewConsentForm(state.Mode, state.Participant.ID),
		errorClearDelay: errorClearDelay,
		exposureBar:     bar,
		svc:             svc,
	}
}

func (m *Model) Init() tea.Cmd {
	return m.consentForm.Init()
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		m.width = msg.Width
		if w := msg.Width - 8; w > 0 && w < 60 {
			m.exposureBar.Width = w
		}
		return m, nil

	case clearNoticeMsg:
		if msg.seq == m.noticeSeq {
			m.errNotice = ""
			m.warnNotice = ""
		}
		return m, nil

	case exposureTickMsg:
		if m.svc.State().Phase != domain.PhaseShow {
			// Stale tick from a reset or an already-fired timer
			return m, nil
		}
		return m, m.stepExposure()

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		case "ctrl+r":
			// Participant-triggered full reset, valid from any phase
			m.svc.Reset()
			state := m.svc.State()
			m.consentForm = NewConsentForm(state.Mode, state.Participant.ID)
			m.demoForm = nil
			m.ratingForm = nil
			m.errNotice = ""
			m.warnNotice = ""
			return m, m.consentForm.Init()
		}
		if m.svc.State().Phase == domain.PhaseDone {
			if msg.String() == "enter" || msg.String() == "q" {
				m.quitting = true
				return m, tea.Quit
			}
			return m, nil
		}
	}

	return m.updatePhase(msg)
}

// updatePhase routes the message to the active phase component
func (m *Model) updatePhase(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch m.svc.State().Phase {
	case domain.PhaseConsent:
		return m.updateConsent(msg)
	case domain.PhaseDemographics:
		return m.updateDemographics(msg)
	case domain.PhaseRate:
		return m.updateRate(msg)
	}
	return m, nil
}

func (m *Model) updateConsent(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.consentForm.Update(msg)
	if !m.consentForm.Completed {
		return m, cmd
	}

	res := m.consentForm.Result()
	err := m.svc.Consent(context.Background(), services.ConsentInput{
		Agreed:        res.Agreed,
		Mode:          res.Mode,
		ParticipantID: res.ParticipantID,
	})
	if err != nil {
		state := m.svc.State()
		m.consentForm = NewConsentForm(domain.ParseMode(res.Mode), state.Participant.ID)
		return m, tea.Batch(m.consentForm.Init(), m.setError(err))
	}

	m.demoForm = NewDemographicsForm()
	return m, m.demoForm.Init()
}

func (m *Model) updateDemographics(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.demoForm.Update(msg)
	if !m.demoForm.Completed {
		return m, cmd
	}

	err := m.svc.SubmitDemographics(context.Background(), m.demoForm.Result())
	if err != nil {
		// Phase unchanged: re-collect (empty catalog requires a restart
		// with a different mode or media directory)
		m.demoForm = NewDemographicsForm()
		return m, tea.Batch(m.demoForm.Init(), m.setError(err))
	}

	m.demoForm = nil
	return m, m.stepExposure()
}

func (m *Model) updateRate(msg tea.Msg) (tea.Model, tea.Cmd) {
	_, cmd := m.ratingForm.Update(msg)
	if !m.ratingForm.Completed {
		return m, cmd
	}

	result, err := m.svc.SubmitRating(context.Background(), m.ratingForm.Result())
	if err != nil {
		// Validation failure or duplicate: phase not advanced, no record
		cfg := m.svc.Config()
		m.ratingForm = NewRatingForm(m.svc.State().Mode, cfg.Outcomes)
		return m, tea.Batch(m.ratingForm.Init(), m.setError(err))
	}

	m.ratingForm = nil
	var cmds []tea.Cmd
	if result.PersistError != nil {
		cmds = append(cmds, m.setWarning(
			fmt.Sprintf("response not saved (%v); the session continues", result.PersistError)))
	}
	if !result.Done {
		cmds = append(cmds, m.stepExposure())
	}
	return m, tea.Batch(cmds...)
}

// stepExposure performs one exposure poll step and schedules the follow-up:
// another tick while the stimulus is still showing, or the rating form once
// the timer has fired
func (m *Model) stepExposure() tea.Cmd {
	remaining, err := m.svc.StepExposure(context.Background())
	if err != nil {
		logging.Logger.Debug("Exposure step rejected", "error", err)
		return nil
	}
	m.remaining = remaining

	if m.svc.State().Phase == domain.PhaseRate {
		cfg := m.svc.Config()
		m.ratingForm = NewRatingForm(m.svc.State().Mode, cfg.Outcomes)
		return m.ratingForm.Init()
	}

	return tea.Tick(exposurePollInterval, func(t time.Time) tea.Msg {
		return exposureTickMsg{at: t}
	})
}

// setError shows an inline error that auto-clears after the configured delay
func (m *Model) setError(err error) tea.Cmd {
	m.errNotice = err.Error()
	m.warnNotice = ""
	return m.scheduleClear()
}

// setWarning shows a degraded-mode notice that auto-clears
func (m *Model) setWarning(text string) tea.Cmd {
	m.warnNotice = text
	return m.scheduleClear()
}

func (m *Model) scheduleClear() tea.Cmd {
	m.noticeSeq++
	seq := m.noticeSeq
	return tea.Tick(m.errorClearDelay, func(time.Time) tea.Msg {
		return clearNoticeMsg{seq: seq}
	})
}

func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	state := m.svc.State()
	cfg := m.svc.Config()

	var body string
	switch state.Phase {
	case domain.PhaseConsent:
		kind := "images"
		if state.Mode.Kind() == domain.KindVideo {
			kind = "videos"
		}
		intro := theme.NormalStyle.Render(fmt.Sprintf(
			"This study presents %s for %.1f seconds each. Guess the emotions the\nathlete displays and estimate the result of the match.",
			kind, cfg.ExposureSeconds))
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render("Consent to Participate"),
			intro,
			"",
			m.consentForm.View(),
		)

	case domain.PhaseDemographics:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.TitleStyle.Render("Participant Information"),
			m.demoForm.View(),
		)

	case domain.PhaseShow:
		item, err := state.CurrentItem()
		if err != nil {
			body = theme.ErrorStyle.Render(err.Error())
			break
		}
		body = renderStimulus(item, state.Cursor+1, state.TotalTrials(),
			m.remaining, cfg.Exposure(), m.exposureBar)

	case domain.PhaseRate:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.SubtitleStyle.Render(fmt.Sprintf("Response %d of %d", state.Cursor+1, state.TotalTrials())),
			"",
			m.ratingForm.View(),
		)

	case domain.PhaseDone:
		body = lipgloss.JoinVertical(lipgloss.Left,
			theme.DoneStyle.Render("Done! Thank you."),
			theme.NormalStyle.Render("Your responses have been saved."),
			"",
			theme.CaptionStyle.Render("Press enter to exit."),
		)
	}

	footer := theme.CaptionStyle.Render("ctrl+r reset • ctrl+c quit")
	if m.errNotice != "" {
		footer = theme.ErrorStyle.Render(formatNotice(errorPrefix, m.errNotice, m.noticeWidth())) + "\n" + footer
	} else if m.warnNotice != "" {
		footer = theme.WarningStyle.Render(formatNotice(warningPrefix, m.warnNotice, m.noticeWidth())) + "\n" + footer
	}

	return body + "\n\n" + footer
}

func (m *Model) noticeWidth() int {
	if m.width > 0 {
		return m.width
	}
	return 80
}
