package services

import (
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
)

// fakeReader serves canned rows for export tests
type fakeReader struct {
	progress  []domain.ProgressRecord
	responses []domain.TrialRecord
}

func (f *fakeReader) ListResponses(ctx context.Context, studyID string) ([]domain.TrialRecord, error) {
	return f.responses, nil
}

func (f *fakeReader) ListProgress(ctx context.Context, studyID string) ([]domain.ProgressRecord, error) {
	return f.progress, nil
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	rows, err := csv.NewReader(file).ReadAll()
	require.NoError(t, err)
	return rows
}

func TestExportCSV(t *testing.T) {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	reader := &fakeReader{
		responses: []domain.TrialRecord{
			{
				Age: 30, Consented: true, ConsentTimestamp: ts,
				Gender: "Female", MediaFile: "a.png", MediaKind: domain.KindImage,
				Name: "Ana", Nationality: "Portuguese",
				OrderIndex: 1, Outcome: "Won", ParticipantID: "ABCD1234",
				Ratings: &domain.Ratings{Happy: 90},
				StudyID: "study", Timestamp: ts.Add(3 * time.Second), TrialIndex: 3,
			},
			{
				Age: 30, Consented: true, ConsentTimestamp: ts,
				Gender: "Female", MediaFile: "b.png", MediaKind: domain.KindImage,
				Name: "Ana", Nationality: "Portuguese",
				OrderIndex: 2, Outcome: "Lost", ParticipantID: "ABCD1234",
				FreeText: "looked tense",
				StudyID:  "study", Timestamp: ts.Add(9 * time.Second), TrialIndex: 1,
			},
		},
		progress: []domain.ProgressRecord{
			{
				MediaFile: "a.png", MediaKind: domain.KindImage,
				Mode: domain.ModeImageSliders, NCompleted: 1, OrderIndex: 1,
				OrderSequence: "2,0,1", ParticipantID: "ABCD1234",
				StudyID: "study", Timestamp: ts.Add(3 * time.Second),
				TotalTrials: 3, TrialIndex: 3,
			},
		},
	}

	dir := t.TempDir()
	responsesPath := filepath.Join(dir, "responses.csv")
	progressPath := filepath.Join(dir, "progress.csv")

	exporter := NewExportService(reader)
	result, err := exporter.ExportCSV(context.Background(), "study", responsesPath, progressPath)
	require.NoError(t, err)
	assert.Equal(t, 2, result.ResponseRows)
	assert.Equal(t, 1, result.ProgressRows)

	rows := readCSV(t, responsesPath)
	require.Len(t, rows, 3)
	assert.Equal(t, responseHeader, rows[0])

	slider := rows[1]
	assert.Equal(t, "study", slider[0])
	assert.Equal(t, "ABCD1234", slider[1])
	assert.Equal(t, "true", slider[2])
	assert.Equal(t, "2026-03-14T10:30:00Z", slider[3])
	assert.Equal(t, "3", slider[8], "trial_index")
	assert.Equal(t, "1", slider[9], "order_index")
	assert.Equal(t, "a.png", slider[11])
	assert.Equal(t, "0", slider[12], "rating_angry")
	assert.Equal(t, "90", slider[13], "rating_happy")
	assert.Equal(t, "Won", slider[20])
	assert.Equal(t, "", slider[21], "slider rows carry no free text")

	text := rows[2]
	assert.Equal(t, "", text[12], "text rows leave the rating cells empty")
	assert.Equal(t, "looked tense", text[21])

	progressRows := readCSV(t, progressPath)
	require.Len(t, progressRows, 2)
	assert.Equal(t, progressHeader, progressRows[0])
	assert.Equal(t, "2,0,1", progressRows[1][4], "order_sequence")
}

func TestExportCSV_SkipsProgressWhenPathEmpty(t *testing.T) {
	dir := t.TempDir()
	responsesPath := filepath.Join(dir, "responses.csv")

	exporter := NewExportService(&fakeReader{})
	result, err := exporter.ExportCSV(context.Background(), "", responsesPath, "")
	require.NoError(t, err)
	assert.Zero(t, result.ProgressRows)

	rows := readCSV(t, responsesPath)
	require.Len(t, rows, 1, "header only for an empty store")
}
