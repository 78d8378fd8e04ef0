package ui

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"glimpse/internal/domain"
)

// ConsentFormResult contains the consent-screen submission
type ConsentFormResult struct {
	Agreed        bool
	Mode          string
	ParticipantID string
}

// ConsentForm is the Bubble Tea component for the Consent phase: study mode
// selection, an editable participant id and the consent affirmation.
type ConsentForm struct {
	Completed bool // Exported so Model can check completion
	form      *huh.Form
	result    ConsentFormResult
}

// NewConsentForm creates the consent form with the current mode and the
// generated participant id prefilled
func NewConsentForm(mode domain.Mode, participantID string) *ConsentForm {
	cf := &ConsentForm{
		result: ConsentFormResult{
			Mode:          string(mode),
			ParticipantID: participantID,
		},
	}

	modeOptions := make([]huh.Option[string], 0, len(domain.AllModes()))
	for _, m := range domain.AllModes() {
		modeOptions = append(modeOptions, huh.NewOption(describeMode(m), string(m)))
	}

	cf.form = huh.NewForm(huh.NewGroup(
		huh.NewSelect[string]().
			Title("Select study mode").
			Options(modeOptions...).
			Value(&cf.result.Mode),
		huh.NewInput().
			Title("Participant ID").
			Description("Pre-generated; you may replace it with your own identifier.").
			Value(&cf.result.ParticipantID).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("participant id required")
				}
				return nil
			}),
		huh.NewConfirm().
			Title("I consent to participate").
			Description("Each stimulus is shown briefly; you then rate the emotions you saw and estimate the match result.").
			Value(&cf.result.Agreed).
			Affirmative("I consent").
			Negative("Not yet"),
	))

	return cf
}

func describeMode(m domain.Mode) string {
	kind := "images"
	if m.Kind() == domain.KindVideo {
		kind = "videos"
	}
	response := "emotion sliders"
	if !m.UsesSliders() {
		response = "free text"
	}
	return fmt.Sprintf("%s (%s, %s)", string(m), kind, response)
}

func (cf *ConsentForm) Init() tea.Cmd {
	return cf.form.Init()
}

func (cf *ConsentForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := cf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		cf.form = f
	}

	if cf.form.State == huh.StateCompleted {
		cf.Completed = true
	}
	return cf, cmd
}

func (cf *ConsentForm) View() string {
	return cf.form.View()
}

// Result returns the form result
func (cf *ConsentForm) Result() ConsentFormResult {
	return cf.result
}
