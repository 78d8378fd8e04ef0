package storage

import (
	"time"

	"glimpse/internal/domain"
)

// isoFormat is the wire format for timestamps (UTC, ISO-8601)
const isoFormat = time.RFC3339

func formatISO(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(isoFormat)
}

func parseISO(s string) time.Time {
	if s == "" {
		return time.Time{}
	}
	t, err := time.Parse(isoFormat, s)
	if err != nil {
		return time.Time{}
	}
	return t
}

// recordToModel converts a domain.TrialRecord to a ResponseModel (GORM)
func recordToModel(r domain.TrialRecord) ResponseModel {
	m := ResponseModel{
		Age:                  r.Age,
		Consented:            r.Consented,
		ConsentTimestampISO:  formatISO(r.ConsentTimestamp),
		FreeText:             r.FreeText,
		Gender:               r.Gender,
		MediaFile:            r.MediaFile,
		MediaKind:            string(r.MediaKind),
		Name:                 r.Name,
		Nationality:          r.Nationality,
		OrderIndex:           r.OrderIndex,
		ParticipantID:        r.ParticipantID,
		ResponseTimestampISO: formatISO(r.Timestamp),
		ResultEstimate:       r.Outcome,
		StudyID:              r.StudyID,
		TrialIndex:           r.TrialIndex,
	}

	if r.Ratings != nil {
		ratings := *r.Ratings
		m.RatingAngry = &ratings.Angry
		m.RatingContempt = &ratings.Contempt
		m.RatingDisgusted = &ratings.Disgusted
		m.RatingHappy = &ratings.Happy
		m.RatingNeutral = &ratings.Neutral
		m.RatingSad = &ratings.Sad
		m.RatingScared = &ratings.Scared
		m.RatingSurprised = &ratings.Surprised
	}
	return m
}

// modelToRecord converts a ResponseModel (GORM) to a domain.TrialRecord
func modelToRecord(m ResponseModel) domain.TrialRecord {
	r := domain.TrialRecord{
		Age:              m.Age,
		Consented:        m.Consented,
		ConsentTimestamp: parseISO(m.ConsentTimestampISO),
		FreeText:         m.FreeText,
		Gender:           m.Gender,
		MediaFile:        m.MediaFile,
		MediaKind:        domain.MediaKind(m.MediaKind),
		Name:             m.Name,
		Nationality:      m.Nationality,
		OrderIndex:       m.OrderIndex,
		Outcome:          m.ResultEstimate,
		ParticipantID:    m.ParticipantID,
		StudyID:          m.StudyID,
		Timestamp:        parseISO(m.ResponseTimestampISO),
		TrialIndex:       m.TrialIndex,
	}

	// All eight columns are written together; any one marks a slider row
	if m.RatingAngry != nil {
		r.Ratings = &domain.Ratings{
			Angry:     deref(m.RatingAngry),
			Contempt:  deref(m.RatingContempt),
			Disgusted: deref(m.RatingDisgusted),
			Happy:     deref(m.RatingHappy),
			Neutral:   deref(m.RatingNeutral),
			Sad:       deref(m.RatingSad),
			Scared:    deref(m.RatingScared),
			Surprised: deref(m.RatingSurprised),
		}
	}
	return r
}

func deref(v *int) int {
	if v == nil {
		return 0
	}
	return *v
}

// progressToModel converts a domain.ProgressRecord to a ProgressModel (GORM)
func progressToModel(p domain.ProgressRecord) ProgressModel {
	return ProgressModel{
		MediaFile:            p.MediaFile,
		MediaKind:            string(p.MediaKind),
		Mode:                 string(p.Mode),
		NCompleted:           p.NCompleted,
		OrderIndex:           p.OrderIndex,
		OrderSequence:        p.OrderSequence,
		ParticipantID:        p.ParticipantID,
		ResponseTimestampISO: formatISO(p.Timestamp),
		StudyID:              p.StudyID,
		TotalTrials:          p.TotalTrials,
		TrialIndex:           p.TrialIndex,
	}
}

// modelToProgress converts a ProgressModel (GORM) to a domain.ProgressRecord
func modelToProgress(m ProgressModel) domain.ProgressRecord {
	return domain.ProgressRecord{
		MediaFile:     m.MediaFile,
		MediaKind:     domain.MediaKind(m.MediaKind),
		Mode:          domain.Mode(m.Mode),
		NCompleted:    m.NCompleted,
		OrderIndex:    m.OrderIndex,
		OrderSequence: m.OrderSequence,
		ParticipantID: m.ParticipantID,
		StudyID:       m.StudyID,
		Timestamp:     parseISO(m.ResponseTimestampISO),
		TotalTrials:   m.TotalTrials,
		TrialIndex:    m.TrialIndex,
	}
}

// manifestToItem converts a MediaManifestModel to a domain.MediaItem
func manifestToItem(m MediaManifestModel) domain.MediaItem {
	path := m.Path
	if path == "" {
		path = m.FileName
	}
	return domain.MediaItem{
		GroupLabel:   m.GroupLabel,
		Kind:         domain.MediaKind(m.Kind),
		Name:         m.FileName,
		OutcomeLabel: m.OutcomeLabel,
		Path:         path,
	}
}
