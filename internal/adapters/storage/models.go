package storage

import "time"

// ResponseModel is the GORM model for the responses table, one row per
// completed trial. Rating columns are nullable; NULL marks the unused
// branch in text modes.
type ResponseModel struct {
	Age                  int    `gorm:"not null"`
	Consented            bool   `gorm:"not null;default:false"`
	ConsentTimestampISO  string `gorm:"column:consent_timestamp_iso;not null;default:''"`
	CreatedAt            time.Time
	FreeText             string `gorm:"not null;default:''"`
	Gender               string `gorm:"not null;default:''"`
	ID                   uint   `gorm:"primaryKey;autoIncrement"`
	MediaFile            string `gorm:"not null"`
	MediaKind            string `gorm:"not null;check:media_kind IN ('image','video')"`
	Name                 string `gorm:"not null;default:''"`
	Nationality          string `gorm:"not null;default:''"`
	OrderIndex           int    `gorm:"not null"`
	ParticipantID        string `gorm:"not null;index:idx_responses_participant"`
	RatingAngry          *int
	RatingContempt       *int
	RatingDisgusted      *int
	RatingHappy          *int
	RatingNeutral        *int
	RatingSad            *int
	RatingScared         *int
	RatingSurprised      *int
	ResponseTimestampISO string `gorm:"column:response_timestamp_iso;not null"`
	ResultEstimate       string `gorm:"not null"`
	StudyID              string `gorm:"not null;index:idx_responses_study"`
	TrialIndex           int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ResponseModel) TableName() string { return "responses" }

// ProgressModel is the GORM model for the progress table, one denormalized
// monitoring row per completed trial
type ProgressModel struct {
	CreatedAt            time.Time
	ID                   uint   `gorm:"primaryKey;autoIncrement"`
	MediaFile            string `gorm:"not null"`
	MediaKind            string `gorm:"not null"`
	Mode                 string `gorm:"not null"`
	NCompleted           int    `gorm:"not null"`
	OrderIndex           int    `gorm:"not null"`
	OrderSequence        string `gorm:"not null;default:''"`
	ParticipantID        string `gorm:"not null;index:idx_progress_participant"`
	ResponseTimestampISO string `gorm:"column:response_timestamp_iso;not null"`
	StudyID              string `gorm:"not null;index:idx_progress_study"`
	TotalTrials          int    `gorm:"not null"`
	TrialIndex           int    `gorm:"not null"`
}

// TableName specifies the table name for GORM
func (ProgressModel) TableName() string { return "progress" }

// MediaManifestModel is the GORM model for the media_manifest table, the
// manifest-table catalog strategy
type MediaManifestModel struct {
	CreatedAt    time.Time
	FileName     string `gorm:"primaryKey"`
	GroupLabel   string `gorm:"not null;default:''"`
	Kind         string `gorm:"not null;index:idx_manifest_kind;check:kind IN ('image','video')"`
	OutcomeLabel string `gorm:"not null;default:''"`
	Path         string `gorm:"not null;default:''"`
	UpdatedAt    time.Time
}

// TableName specifies the table name for GORM
func (MediaManifestModel) TableName() string { return "media_manifest" }
