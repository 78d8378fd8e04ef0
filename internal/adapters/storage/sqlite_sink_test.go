package storage

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"glimpse/internal/domain"
)

func newTestSink(t *testing.T) *SQLiteSink {
	t.Helper()

	sink, err := NewSQLiteSink(filepath.Join(t.TempDir(), "glimpse.db"))
	require.NoError(t, err)
	t.Cleanup(func() { sink.Close() })
	return sink
}

func sliderRecord(orderIndex int) domain.TrialRecord {
	ts := time.Date(2026, 3, 14, 10, 30, 0, 0, time.UTC)
	return domain.TrialRecord{
		Age:              30,
		Consented:        true,
		ConsentTimestamp: ts,
		Gender:           "Female",
		MediaFile:        "a.png",
		MediaKind:        domain.KindImage,
		Name:             "Ana",
		Nationality:      "Portuguese",
		OrderIndex:       orderIndex,
		Outcome:          "Won",
		ParticipantID:    "ABCD1234",
		Ratings:          &domain.Ratings{Happy: 90, Surprised: 15},
		StudyID:          "study",
		Timestamp:        ts.Add(3 * time.Second),
		TrialIndex:       2,
	}
}

func TestSQLiteSink_AppendAndListResponses(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	slider := sliderRecord(1)
	require.NoError(t, sink.AppendResponse(ctx, slider))

	text := sliderRecord(2)
	text.Ratings = nil
	text.FreeText = "looked tense"
	text.Outcome = "Lost"
	require.NoError(t, sink.AppendResponse(ctx, text))

	records, err := sink.ListResponses(ctx, "study")
	require.NoError(t, err)
	require.Len(t, records, 2)

	got := records[0]
	assert.Equal(t, slider.ParticipantID, got.ParticipantID)
	assert.Equal(t, slider.ConsentTimestamp, got.ConsentTimestamp)
	assert.Equal(t, slider.Timestamp, got.Timestamp)
	assert.Equal(t, slider.TrialIndex, got.TrialIndex)
	assert.Equal(t, "Won", got.Outcome)
	require.NotNil(t, got.Ratings)
	assert.Equal(t, 90, got.Ratings.Happy)
	assert.Equal(t, 15, got.Ratings.Surprised)
	assert.Equal(t, 0, got.Ratings.Angry)

	assert.Nil(t, records[1].Ratings, "text rows round-trip with null rating columns")
	assert.Equal(t, "looked tense", records[1].FreeText)
}

func TestSQLiteSink_ListResponses_FiltersByStudy(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	require.NoError(t, sink.AppendResponse(ctx, sliderRecord(1)))

	other := sliderRecord(1)
	other.StudyID = "pilot"
	require.NoError(t, sink.AppendResponse(ctx, other))

	records, err := sink.ListResponses(ctx, "pilot")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "pilot", records[0].StudyID)

	all, err := sink.ListResponses(ctx, "")
	require.NoError(t, err)
	assert.Len(t, all, 2, "empty study id lists everything")
}

func TestSQLiteSink_AppendAndListProgress(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	prog := domain.ProgressRecord{
		MediaFile:     "a.png",
		MediaKind:     domain.KindImage,
		Mode:          domain.ModeImageSliders,
		NCompleted:    1,
		OrderIndex:    1,
		OrderSequence: "2,0,1",
		ParticipantID: "ABCD1234",
		StudyID:       "study",
		Timestamp:     time.Date(2026, 3, 14, 10, 30, 3, 0, time.UTC),
		TotalTrials:   3,
		TrialIndex:    3,
	}
	require.NoError(t, sink.AppendProgress(ctx, prog))

	records, err := sink.ListProgress(ctx, "study")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, prog, records[0])
}

func TestSQLiteSink_ManifestCatalog(t *testing.T) {
	sink := newTestSink(t)
	ctx := context.Background()

	entries := []domain.MediaItem{
		{Kind: domain.KindImage, Name: "b.png", OutcomeLabel: "Won"},
		{Kind: domain.KindImage, Name: "a.png", OutcomeLabel: "Lost", Path: "/media/a.png"},
		{Kind: domain.KindVideo, Name: "clip.mp4"},
	}
	for _, item := range entries {
		require.NoError(t, sink.UpsertManifestEntry(ctx, item))
	}

	images, err := sink.List(ctx, domain.KindImage)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "a.png", images[0].Name, "sorted by file name")
	assert.Equal(t, "/media/a.png", images[0].Path)
	assert.Equal(t, "b.png", images[1].Name)
	assert.Equal(t, "b.png", images[1].Path, "path defaults to the file name")

	// Upsert overwrites the existing row instead of duplicating it
	require.NoError(t, sink.UpsertManifestEntry(ctx, domain.MediaItem{
		Kind: domain.KindImage, Name: "a.png", OutcomeLabel: "Won",
	}))
	images, err = sink.List(ctx, domain.KindImage)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, "Won", images[0].OutcomeLabel)
}

func TestSQLiteSink_ReopenKeepsRows(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "glimpse.db")

	sink, err := NewSQLiteSink(dbPath)
	require.NoError(t, err)
	require.NoError(t, sink.AppendResponse(context.Background(), sliderRecord(1)))
	require.NoError(t, sink.Close())

	reopened, err := NewSQLiteSink(dbPath)
	require.NoError(t, err)
	defer reopened.Close()

	records, err := reopened.ListResponses(context.Background(), "study")
	require.NoError(t, err)
	assert.Len(t, records, 1)
}
