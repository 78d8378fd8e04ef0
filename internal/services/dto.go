package services

import "glimpse/internal/domain"

// ConsentInput carries the consent-screen submission
type ConsentInput struct {
	Agreed        bool
	Mode          string // re-selected mode, validated with fallback
	ParticipantID string // editable; empty keeps the generated id
}

// DemographicsInput carries the demographics-form submission
type DemographicsInput struct {
	Age         int
	Gender      string
	Name        string
	Nationality string
}

// RatingInput carries the rating-form submission for one trial. Exactly one
// of Ratings or FreeText is honored, depending on the session mode.
type RatingInput struct {
	FreeText string
	Outcome  string
	Ratings  *domain.Ratings
}

// SubmitResult reports what happened to a rating submission
type SubmitResult struct {
	Done         bool  // session reached the Done phase
	PersistError error // non-fatal sink failure, surfaced as a warning
	Recorded     bool
}
