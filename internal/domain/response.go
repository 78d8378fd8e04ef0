package domain

import (
	"fmt"
	"strings"
)

// Emotions is the fixed label set rated in slider modes, in output order
var Emotions = []string{
	"Angry", "Happy", "Sad", "Scared",
	"Surprised", "Neutral", "Disgusted", "Contempt",
}

// Rating scale bounds
const (
	RatingMin     = 0
	RatingMax     = 100
	RatingDefault = 0
)

// Ratings holds the eight emotion-intensity values of a slider response
type Ratings struct {
	Angry     int
	Contempt  int
	Disgusted int
	Happy     int
	Neutral   int
	Sad       int
	Scared    int
	Surprised int
}

// Values returns the ratings in Emotions order
func (r Ratings) Values() []int {
	return []int{r.Angry, r.Happy, r.Sad, r.Scared, r.Surprised, r.Neutral, r.Disgusted, r.Contempt}
}

// Validate checks every rating against the scale bounds
func (r Ratings) Validate() error {
	for i, v := range r.Values() {
		if v < RatingMin || v > RatingMax {
			return fmt.Errorf("%w: %s=%d", ErrRatingOutOfRange, Emotions[i], v)
		}
	}
	return nil
}

// OutcomeSet is the configurable enumeration of outcome judgments
// (Won/Lost, optionally Unsure)
type OutcomeSet []string

// DefaultOutcomes is the two-option enumeration used by most study variants
func DefaultOutcomes() OutcomeSet {
	return OutcomeSet{"Won", "Lost"}
}

// ParseOutcomeSet parses a comma-separated outcome list
func ParseOutcomeSet(raw string) (OutcomeSet, error) {
	var set OutcomeSet
	for _, part := range strings.Split(raw, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		set = append(set, part)
	}
	if len(set) == 0 {
		return nil, fmt.Errorf("outcome set must contain at least one value")
	}
	return set, nil
}

// Contains reports whether the outcome is a member of the set
func (s OutcomeSet) Contains(outcome string) bool {
	for _, o := range s {
		if o == outcome {
			return true
		}
	}
	return false
}

// TrialResponse is the validated form payload for one trial. Exactly one of
// Ratings or FreeText is populated, depending on the mode.
type TrialResponse struct {
	FreeText string
	Outcome  string
	Ratings  *Ratings
}

// Validate checks the response against the configured outcome set, scale
// bounds and minimum text length. A failed validation leaves the phase
// unchanged and produces no record.
func (t TrialResponse) Validate(outcomes OutcomeSet, minTextChars int) error {
	if t.Outcome == "" {
		return ErrOutcomeRequired
	}
	if !outcomes.Contains(t.Outcome) {
		return fmt.Errorf("%w: %q", ErrUnknownOutcome, t.Outcome)
	}

	if t.Ratings != nil {
		return t.Ratings.Validate()
	}

	if len(strings.TrimSpace(t.FreeText)) < minTextChars {
		return ErrTextTooShort
	}
	return nil
}
