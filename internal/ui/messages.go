package ui

import "time"

// exposureTickMsg drives the Show-phase polling loop. Each tick is one
// re-entry into the exposure step; the stimulus stays on screen until the
// timer fires.
type exposureTickMsg struct {
	at time.Time
}

// clearNoticeMsg clears the inline error/warning display after the
// configured delay
type clearNoticeMsg struct {
	seq int
}
