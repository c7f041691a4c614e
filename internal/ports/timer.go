package ports

import (
	"context"

	"github.com/xvierd/zenith/internal/domain"
)

// MeditationCountdown runs one meditation session at a time.
// Events are delivered as domain.MeditationTick values on the channel the
// implementation was built with.
type MeditationCountdown interface {
	// Start supersedes any running session and returns the new token.
	Start(ctx context.Context, seconds int) domain.SessionToken

	// Stop cancels the running session, if any.
	Stop()
}

// Breather runs the 4-7-8 breathing sequence.
// Events are delivered as domain.BreathFrame values.
type Breather interface {
	// Start begins a session. It returns domain.ErrBreathingInProgress
	// while a session is running.
	Start(ctx context.Context) error

	// Running reports whether a session is in progress.
	Running() bool
}
