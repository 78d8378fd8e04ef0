package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRatings_Validate(t *testing.T) {
	tests := []struct {
		name    string
		ratings Ratings
		wantErr error
	}{
		{"all zero", Ratings{}, nil},
		{"all max", Ratings{Angry: 100, Happy: 100, Sad: 100, Scared: 100, Surprised: 100, Neutral: 100, Disgusted: 100, Contempt: 100}, nil},
		{"above max", Ratings{Happy: 101}, ErrRatingOutOfRange},
		{"below min", Ratings{Contempt: -1}, ErrRatingOutOfRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.ratings.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestRatings_ValuesOrder(t *testing.T) {
	r := Ratings{Angry: 1, Happy: 2, Sad: 3, Scared: 4, Surprised: 5, Neutral: 6, Disgusted: 7, Contempt: 8}
	assert.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, r.Values())
	assert.Len(t, Emotions, len(r.Values()))
}

func TestParseOutcomeSet(t *testing.T) {
	set, err := ParseOutcomeSet("Won,Lost")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSet{"Won", "Lost"}, set)

	set, err = ParseOutcomeSet(" Won , Lost , Unsure ")
	require.NoError(t, err)
	assert.Equal(t, OutcomeSet{"Won", "Lost", "Unsure"}, set)

	_, err = ParseOutcomeSet(" , ,")
	assert.Error(t, err)
}

func TestTrialResponse_Validate(t *testing.T) {
	outcomes := DefaultOutcomes()

	tests := []struct {
		name     string
		response TrialResponse
		wantErr  error
	}{
		{"valid sliders", TrialResponse{Outcome: "Won", Ratings: &Ratings{Happy: 80}}, nil},
		{"valid text", TrialResponse{Outcome: "Lost", FreeText: "looked tense"}, nil},
		{"missing outcome", TrialResponse{Ratings: &Ratings{}}, ErrOutcomeRequired},
		{"unknown outcome", TrialResponse{Outcome: "Drew", Ratings: &Ratings{}}, ErrUnknownOutcome},
		{"rating out of range", TrialResponse{Outcome: "Won", Ratings: &Ratings{Sad: 200}}, ErrRatingOutOfRange},
		{"empty text", TrialResponse{Outcome: "Won"}, ErrTextTooShort},
		{"whitespace-only text", TrialResponse{Outcome: "Won", FreeText: "   "}, ErrTextTooShort},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.response.Validate(outcomes, 1)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestTrialResponse_Validate_MinTextChars(t *testing.T) {
	outcomes := DefaultOutcomes()

	resp := TrialResponse{Outcome: "Won", FreeText: "ok"}
	assert.NoError(t, resp.Validate(outcomes, 2))
	assert.ErrorIs(t, resp.Validate(outcomes, 3), ErrTextTooShort)
}
