package ports

import (
	"context"

	"glimpse/internal/domain"
)

// ResponseWriter appends completed trial rows. Append is best-effort from
// the controller's point of view: failures are surfaced but never block
// phase advancement.
type ResponseWriter interface {
	AppendResponse(ctx context.Context, record domain.TrialRecord) error
}

// ProgressWriter appends denormalized per-trial summary rows for monitoring
type ProgressWriter interface {
	AppendProgress(ctx context.Context, record domain.ProgressRecord) error
}

// ResponseReader reads back collected rows, used by the export command
type ResponseReader interface {
	ListResponses(ctx context.Context, studyID string) ([]domain.TrialRecord, error)
	ListProgress(ctx context.Context, studyID string) ([]domain.ProgressRecord, error)
}

// RecordSink is the composite interface over the append-only tabular store
type RecordSink interface {
	ResponseWriter
	ProgressWriter
	ResponseReader
	Close() error
}
