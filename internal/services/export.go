package services

import (
	"context"
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"glimpse/internal/domain"
	"glimpse/internal/logging"
	"glimpse/internal/ports"
)

// Column orders match the historical response/meta sheets, so downstream
// analysis scripts keep working unchanged.
var (
	responseHeader = []string{
		"study_id", "participant_id", "consented", "consent_timestamp_iso",
		"name", "age", "gender", "nationality",
		"trial_index", "order_index", "media_kind", "media_file",
		"rating_angry", "rating_happy", "rating_sad", "rating_scared",
		"rating_surprised", "rating_neutral", "rating_disgusted", "rating_contempt",
		"result_estimate", "free_text",
		"response_timestamp_iso",
	}

	progressHeader = []string{
		"study_id", "participant_id", "mode",
		"total_trials", "order_sequence", "n_completed",
		"media_kind", "media_file", "trial_index", "order_index",
		"response_timestamp_iso",
	}
)

// ExportService writes collected rows out as CSV files for analysis hand-off
type ExportService struct {
	reader ports.ResponseReader
}

// NewExportService creates a new ExportService
func NewExportService(reader ports.ResponseReader) *ExportService {
	return &ExportService{reader: reader}
}

// ExportResult reports how many rows were written
type ExportResult struct {
	ProgressRows int
	ResponseRows int
}

// ExportCSV dumps all responses and progress rows for a study (empty studyID
// exports everything) to the given file paths. An empty progressPath skips
// the progress export.
func (e *ExportService) ExportCSV(ctx context.Context, studyID, responsesPath, progressPath string) (ExportResult, error) {
	var result ExportResult

	records, err := e.reader.ListResponses(ctx, studyID)
	if err != nil {
		return result, err
	}
	if err := writeResponsesCSV(responsesPath, records); err != nil {
		return result, err
	}
	result.ResponseRows = len(records)

	if progressPath != "" {
		progress, err := e.reader.ListProgress(ctx, studyID)
		if err != nil {
			return result, err
		}
		if err := writeProgressCSV(progressPath, progress); err != nil {
			return result, err
		}
		result.ProgressRows = len(progress)
	}

	logging.Logger.Info("Export complete",
		"study_id", studyID,
		"response_rows", result.ResponseRows,
		"progress_rows", result.ProgressRows)
	return result, nil
}

func writeResponsesCSV(path string, records []domain.TrialRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(responseHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, r := range records {
		row := []string{
			r.StudyID,
			r.ParticipantID,
			strconv.FormatBool(r.Consented),
			formatTimestamp(r.ConsentTimestamp),
			r.Name,
			strconv.Itoa(r.Age),
			r.Gender,
			r.Nationality,
			strconv.Itoa(r.TrialIndex),
			strconv.Itoa(r.OrderIndex),
			string(r.MediaKind),
			r.MediaFile,
		}
		row = append(row, ratingColumns(r.Ratings)...)
		row = append(row, r.Outcome, r.FreeText, formatTimestamp(r.Timestamp))

		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

func writeProgressCSV(path string, records []domain.ProgressRecord) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create export file: %w", err)
	}
	defer file.Close()

	w := csv.NewWriter(file)
	if err := w.Write(progressHeader); err != nil {
		return fmt.Errorf("failed to write header: %w", err)
	}

	for _, p := range records {
		row := []string{
			p.StudyID,
			p.ParticipantID,
			string(p.Mode),
			strconv.Itoa(p.TotalTrials),
			p.OrderSequence,
			strconv.Itoa(p.NCompleted),
			string(p.MediaKind),
			p.MediaFile,
			strconv.Itoa(p.TrialIndex),
			strconv.Itoa(p.OrderIndex),
			formatTimestamp(p.Timestamp),
		}
		if err := w.Write(row); err != nil {
			return fmt.Errorf("failed to write row: %w", err)
		}
	}

	w.Flush()
	return w.Error()
}

// ratingColumns renders the eight rating cells in sheet order, empty for
// text-mode rows
func ratingColumns(r *domain.Ratings) []string {
	if r == nil {
		return []string{"", "", "", "", "", "", "", ""}
	}
	values := r.Values()
	cols := make([]string, len(values))
	for i, v := range values {
		cols[i] = strconv.Itoa(v)
	}
	return cols
}

func formatTimestamp(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(time.RFC3339)
}
