package domain

import (
	"strings"
	"time"
)

// TrialRecord is one append-only row per completed trial: the participant
// snapshot, trial position, media identity and the response payload. The
// eight rating fields are nil in text modes; FreeText is empty in slider
// modes.
type TrialRecord struct {
	Age              int
	Consented        bool
	ConsentTimestamp time.Time
	FreeText         string
	Gender           string
	MediaFile        string
	MediaKind        MediaKind
	Name             string
	Nationality      string
	OrderIndex       int // 1-based position within the plan
	Outcome          string
	ParticipantID    string
	Ratings          *Ratings
	StudyID          string
	Timestamp        time.Time // response time, UTC
	TrialIndex       int       // 1-based index within the catalog
}

// ProgressRecord is one denormalized monitoring row per completed trial,
// written to the secondary summary sink
type ProgressRecord struct {
	MediaFile     string
	MediaKind     MediaKind
	Mode          Mode
	NCompleted    int
	OrderIndex    int
	OrderSequence string // comma-separated plan indices
	ParticipantID string
	StudyID       string
	Timestamp     time.Time
	TotalTrials   int
	TrialIndex    int
}

// AssembleRecord builds the trial row from the current session state and a
// just-validated response. Pure function of its inputs; the caller enforces
// the submission guard.
func AssembleRecord(s *SessionState, resp TrialResponse, now time.Time) (TrialRecord, error) {
	item, err := s.CurrentItem()
	if err != nil {
		return TrialRecord{}, err
	}
	catalogIdx, err := s.CurrentCatalogIndex()
	if err != nil {
		return TrialRecord{}, err
	}

	rec := TrialRecord{
		Age:              s.Participant.Age,
		Consented:        s.Participant.Consented,
		ConsentTimestamp: s.Participant.ConsentTimestamp,
		Gender:           s.Participant.Gender,
		MediaFile:        item.Name,
		MediaKind:        item.Kind,
		Name:             s.Participant.Name,
		Nationality:      s.Participant.Nationality,
		OrderIndex:       s.Cursor + 1,
		Outcome:          resp.Outcome,
		ParticipantID:    s.Participant.ID,
		StudyID:          s.StudyID,
		Timestamp:        now.UTC(),
		TrialIndex:       catalogIdx + 1,
	}

	if resp.Ratings != nil {
		r := *resp.Ratings
		rec.Ratings = &r
	} else {
		rec.FreeText = strings.TrimSpace(resp.FreeText)
	}
	return rec, nil
}

// AssembleProgress builds the summary row for the current trial
func AssembleProgress(s *SessionState, now time.Time) (ProgressRecord, error) {
	item, err := s.CurrentItem()
	if err != nil {
		return ProgressRecord{}, err
	}
	catalogIdx, err := s.CurrentCatalogIndex()
	if err != nil {
		return ProgressRecord{}, err
	}

	return ProgressRecord{
		MediaFile:     item.Name,
		MediaKind:     item.Kind,
		Mode:          s.Mode,
		NCompleted:    s.Cursor + 1,
		OrderIndex:    s.Cursor + 1,
		OrderSequence: s.Plan.Encode(),
		ParticipantID: s.Participant.ID,
		StudyID:       s.StudyID,
		Timestamp:     now.UTC(),
		TotalTrials:   len(s.Plan),
		TrialIndex:    catalogIdx + 1,
	}, nil
}
