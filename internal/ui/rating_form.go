package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"glimpse/internal/domain"
	"glimpse/internal/services"
)

// RatingForm is the Bubble Tea component for the Rate phase. Slider modes
// collect eight 0-100 intensities plus the outcome judgment; text modes
// collect a free-text description plus the outcome judgment.
type RatingForm struct {
	Completed bool
	form      *huh.Form
	freeText  string
	outcome   string
	ratings   []string // one raw value per domain.Emotions entry
	sliders   bool
}

// NewRatingForm creates the rating form for the current trial
func NewRatingForm(mode domain.Mode, outcomes domain.OutcomeSet) *RatingForm {
	rf := &RatingForm{
		ratings: make([]string, len(domain.Emotions)),
		sliders: mode.UsesSliders(),
	}
	for i := range rf.ratings {
		rf.ratings[i] = strconv.Itoa(domain.RatingDefault)
	}

	outcomeOptions := make([]huh.Option[string], 0, len(outcomes))
	for _, o := range outcomes {
		outcomeOptions = append(outcomeOptions, huh.NewOption(o, o))
	}
	outcomeField := huh.NewSelect[string]().
		Title("Did the athlete win or lose?").
		Options(outcomeOptions...).
		Value(&rf.outcome).
		Validate(func(s string) error {
			if s == "" {
				return fmt.Errorf("select an outcome")
			}
			return nil
		})

	var fields []huh.Field
	if rf.sliders {
		for i, emotion := range domain.Emotions {
			fields = append(fields, huh.NewInput().
				Title(emotion).
				Description(fmt.Sprintf("Intensity %d-%d", domain.RatingMin, domain.RatingMax)).
				Value(&rf.ratings[i]).
				Validate(validateRating))
		}
		fields = append(fields, outcomeField)
	} else {
		fields = append(fields,
			outcomeField,
			huh.NewText().
				Title("Describe the emotions you saw").
				Description("Words of any language are fine.").
				Value(&rf.freeText),
		)
	}

	rf.form = huh.NewForm(huh.NewGroup(fields...))
	return rf
}

func validateRating(s string) error {
	v, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("enter a number between %d and %d", domain.RatingMin, domain.RatingMax)
	}
	if v < domain.RatingMin || v > domain.RatingMax {
		return fmt.Errorf("must be between %d and %d", domain.RatingMin, domain.RatingMax)
	}
	return nil
}

func (rf *RatingForm) Init() tea.Cmd {
	return rf.form.Init()
}

func (rf *RatingForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := rf.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		rf.form = f
	}

	if rf.form.State == huh.StateCompleted {
		rf.Completed = true
	}
	return rf, cmd
}

func (rf *RatingForm) View() string {
	return rf.form.View()
}

// Result returns the submission as service input. Field validators already
// bounded the rating values.
func (rf *RatingForm) Result() services.RatingInput {
	input := services.RatingInput{Outcome: rf.outcome}

	if rf.sliders {
		values := make([]int, len(rf.ratings))
		for i, raw := range rf.ratings {
			values[i], _ = strconv.Atoi(strings.TrimSpace(raw))
		}
		input.Ratings = &domain.Ratings{
			Angry:     values[0],
			Happy:     values[1],
			Sad:       values[2],
			Scared:    values[3],
			Surprised: values[4],
			Neutral:   values[5],
			Disgusted: values[6],
			Contempt:  values[7],
		}
	} else {
		input.FreeText = rf.freeText
	}
	return input
}
