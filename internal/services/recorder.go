package services

import (
	"context"

	"golang.org/x/sync/errgroup"

	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
)

// Recorder forwards assembled rows to the storage sinks. Both writes are
// best-effort: failures are logged and reported to the caller as a warning,
// never as a blocking condition.
type Recorder struct {
	progress  ports.ProgressWriter
	responses ports.ResponseWriter
}

// NewRecorder creates a Recorder. The progress writer may be nil when no
// summary sink is configured.
func NewRecorder(responses ports.ResponseWriter, progress ports.ProgressWriter) *Recorder {
	return &Recorder{
		progress:  progress,
		responses: responses,
	}
}

// Record appends the response row and the progress row. The two appends run
// concurrently and both are always attempted; the first error (if any) is
// returned for operator display.
func (r *Recorder) Record(ctx context.Context, record domain.TrialRecord, progress domain.ProgressRecord) error {
	if r.responses == nil {
		// No sink configured: data is retained only in session state
		logging.Logger.Warn("No storage sink configured, trial not persisted",
			"participant_id", record.ParticipantID,
			"order_index", record.OrderIndex)
		return nil
	}

	var g errgroup.Group

	g.Go(func() error {
		if err := r.responses.AppendResponse(ctx, record); err != nil {
			logging.Logger.Error("Failed to append response row",
				"error", err,
				"participant_id", record.ParticipantID,
				"order_index", record.OrderIndex)
			return err
		}
		return nil
	})

	if r.progress != nil {
		g.Go(func() error {
			if err := r.progress.AppendProgress(ctx, progress); err != nil {
				logging.Logger.Error("Failed to append progress row",
					"error", err,
					"participant_id", progress.ParticipantID,
					"order_index", progress.OrderIndex)
				return err
			}
			return nil
		})
	}

	return g.Wait()
}
