package ui

import (
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"glimpse/internal/services"
)

// Gender options offered on the demographics form; an enum-like open set,
// stored as plain strings
var genderOptions = []string{"Female", "Male", "Non-binary / Other", "Prefer not to say"}

// DemographicsForm is the Bubble Tea component for the Demographics phase
type DemographicsForm struct {
	Completed bool
	age       string
	form      *huh.Form
	gender    string
	name      string
	natl      string
}

// NewDemographicsForm creates the demographics form
func NewDemographicsForm() *DemographicsForm {
	df := &DemographicsForm{}

	options := make([]huh.Option[string], 0, len(genderOptions))
	for _, g := range genderOptions {
		options = append(options, huh.NewOption(g, g))
	}

	df.form = huh.NewForm(huh.NewGroup(
		huh.NewInput().
			Title("Full name").
			Value(&df.name).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("name required")
				}
				return nil
			}),
		huh.NewInput().
			Title("Age").
			Value(&df.age).
			Validate(func(s string) error {
				age, err := strconv.Atoi(strings.TrimSpace(s))
				if err != nil {
					return fmt.Errorf("age must be a number")
				}
				if age <= 0 {
					return fmt.Errorf("age must be positive")
				}
				return nil
			}),
		huh.NewSelect[string]().
			Title("Gender").
			Options(options...).
			Value(&df.gender),
		huh.NewInput().
			Title("Nationality").
			Value(&df.natl).
			Validate(func(s string) error {
				if strings.TrimSpace(s) == "" {
					return fmt.Errorf("nationality required")
				}
				return nil
			}),
	))

	return df
}

func (df *DemographicsForm) Init() tea.Cmd {
	return df.form.Init()
}

func (df *DemographicsForm) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	form, cmd := df.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		df.form = f
	}

	if df.form.State == huh.StateCompleted {
		df.Completed = true
	}
	return df, cmd
}

func (df *DemographicsForm) View() string {
	return df.form.View()
}

// Result returns the submission as service input. Age is safe to parse
// here; the field validator already enforced a positive integer.
func (df *DemographicsForm) Result() services.DemographicsInput {
	age, _ := strconv.Atoi(strings.TrimSpace(df.age))
	return services.DemographicsInput{
		Age:         age,
		Gender:      df.gender,
		Name:        df.name,
		Nationality: df.natl,
	}
}
