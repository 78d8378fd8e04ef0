package ui

import (
	"strings"
	"unicode/utf8"
)

const (
	maxNoticeLines = 2
	errorPrefix    = "Error: "
	warningPrefix  = "Warning: "
	truncationMark = "..."
)

// formatNotice wraps a message to at most maxNoticeLines lines of maxWidth,
// prefixed, truncating with "..." when it does not fit. Keeps validation
// errors readable without letting a long SQL error take over the screen.
func formatNotice(prefix, message string, maxWidth int) string {
	if message == "" {
		return ""
	}
	if maxWidth < 20 {
		maxWidth = 20
	}

	words := strings.Fields(message)
	if len(words) == 0 {
		return prefix + message
	}

	lineWidth := maxWidth - utf8.RuneCountInString(prefix)
	if lineWidth < 10 {
		lineWidth = 10
	}

	var lines []string
	var current strings.Builder
	for _, word := range words {
		if current.Len() > 0 &&
			utf8.RuneCountInString(current.String())+1+utf8.RuneCountInString(word) > lineWidth {
			lines = append(lines, current.String())
			current.Reset()
			if len(lines) == maxNoticeLines {
				break
			}
			lineWidth = maxWidth
		}
		if current.Len() > 0 {
			current.WriteString(" ")
		}
		current.WriteString(word)
	}
	truncated := len(lines) == maxNoticeLines
	if !truncated && current.Len() > 0 {
		lines = append(lines, current.String())
	}

	if truncated {
		last := lines[maxNoticeLines-1]
		maxRunes := maxWidth - utf8.RuneCountInString(truncationMark)
		if runes := []rune(last); len(runes) > maxRunes && maxRunes > 0 {
			last = string(runes[:maxRunes])
		}
		lines[maxNoticeLines-1] = last + truncationMark
	}

	return prefix + strings.Join(lines, "\n")
}
