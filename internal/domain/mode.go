package domain

// Mode selects the stimulus kind and response style for a study run
type Mode string

const (
	ModeImageSliders Mode = "img_sliders"
	ModeImageText    Mode = "img_text"
	ModeVideoSliders Mode = "vid_sliders"
	ModeVideoText    Mode = "vid_text"

	// DefaultMode is used when an unrecognized mode is requested
	DefaultMode = ModeImageSliders
)

// AllModes lists every valid presentation mode
func AllModes() []Mode {
	return []Mode{ModeImageSliders, ModeImageText, ModeVideoSliders, ModeVideoText}
}

// ParseMode validates a raw mode string, falling back to DefaultMode on an
// unrecognized value
func ParseMode(raw string) Mode {
	for _, m := range AllModes() {
		if raw == string(m) {
			return m
		}
	}
	return DefaultMode
}

// Kind returns the stimulus kind presented by the mode
func (m Mode) Kind() MediaKind {
	switch m {
	case ModeVideoSliders, ModeVideoText:
		return KindVideo
	default:
		return KindImage
	}
}

// UsesSliders reports whether the mode collects slider ratings (as opposed
// to a free-text response)
func (m Mode) UsesSliders() bool {
	return m == ModeImageSliders || m == ModeVideoSliders
}
