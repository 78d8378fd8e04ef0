package ui

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNotice_Empty(t *testing.T) {
	assert.Equal(t, "", formatNotice(errorPrefix, "", 80))
}

func TestFormatNotice_ShortMessage(t *testing.T) {
	got := formatNotice(errorPrefix, "outcome is required", 80)
	assert.Equal(t, "Error: outcome is required", got)
}

func TestFormatNotice_WrapsToSecondLine(t *testing.T) {
	got := formatNotice(warningPrefix, "response not saved (database is locked); the session continues", 40)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, 2)
	assert.True(t, strings.HasPrefix(lines[0], warningPrefix))
	assert.NotContains(t, got, truncationMark)
}

func TestFormatNotice_TruncatesLongMessage(t *testing.T) {
	long := strings.Repeat("lorem ipsum dolor ", 30)
	got := formatNotice(errorPrefix, long, 40)

	lines := strings.Split(got, "\n")
	assert.Len(t, lines, maxNoticeLines)
	assert.True(t, strings.HasSuffix(got, truncationMark))
	for _, line := range lines {
		assert.LessOrEqual(t, len(line), 40+len(errorPrefix))
	}
}
