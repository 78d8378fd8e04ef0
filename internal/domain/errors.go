package domain

import "errors"

var (
	ErrConsentRequired     = errors.New("consent is required to continue")
	ErrDuplicateSubmission = errors.New("response already submitted for this trial")
	ErrEmptyCatalog        = errors.New("no media files found for the selected mode")
	ErrInvalidAge          = errors.New("age must be a positive number")
	ErrInvalidPhase        = errors.New("operation not valid in the current phase")
	ErrMissingDemographics = errors.New("all demographic fields are required")
	ErrOutcomeRequired     = errors.New("an outcome judgment is required")
	ErrPlanExhausted       = errors.New("no trial remaining in the plan")
	ErrRatingOutOfRange    = errors.New("rating outside the allowed scale")
	ErrTextTooShort        = errors.New("text response is too short")
	ErrUnknownOutcome      = errors.New("outcome judgment not in the allowed set")
)
