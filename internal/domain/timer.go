package domain

import (
	"fmt"
	"time"
)

// SessionToken identifies one run of a countdown. Only events carrying the
// current token may change what is displayed.
type SessionToken string

// NewSessionToken mints a fresh token.
func NewSessionToken() SessionToken {
	return SessionToken(generateID())
}

// TimerEvent is a value produced by a background countdown and applied by
// the owner of the application state.
type TimerEvent interface {
	timerEvent()
}

// MeditationTick reports the remaining seconds of a meditation session.
// Done is set on the final event of a session that ran to completion.
type MeditationTick struct {
	Token     SessionToken
	Remaining int
	Done      bool
}

func (MeditationTick) timerEvent() {}

// MeditationPreset is a selectable meditation length.
type MeditationPreset struct {
	Name     string
	Duration time.Duration
}

// DefaultMeditationPresets returns the 5 and 10 minute presets.
func DefaultMeditationPresets() []MeditationPreset {
	return []MeditationPreset{
		{Name: "5 Min", Duration: 300 * time.Second},
		{Name: "10 Min", Duration: 600 * time.Second},
	}
}

// MeditationDoneText replaces the clock when a session completes.
const MeditationDoneText = "Done!"

// MeditationState is what the meditation widget shows.
// ActivePreset is the preset whose control is disabled, or -1.
type MeditationState struct {
	Token        SessionToken
	Running      bool
	Remaining    int
	Display      string
	ActivePreset int
}

// NewMeditationState returns the idle widget state, showing the longest
// preset as in a fresh session.
func NewMeditationState(presets []MeditationPreset) MeditationState {
	display := FormatClock(600)
	if n := len(presets); n > 0 {
		display = FormatClock(int(presets[n-1].Duration.Seconds()))
	}
	return MeditationState{Display: display, ActivePreset: -1}
}

// PresetDisabled reports whether the preset control is disabled.
func (m MeditationState) PresetDisabled(i int) bool {
	return m.Running && m.ActivePreset == i
}

// FormatClock renders seconds as MM:SS.
func FormatClock(seconds int) string {
	if seconds < 0 {
		seconds = 0
	}
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
