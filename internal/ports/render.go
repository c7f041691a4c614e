package ports

import (
	"github.com/xvierd/zenith/internal/domain"
)

// Target names a widget that can be redrawn on its own.
type Target string

const (
	// TargetMeditationClock is the meditation countdown and its presets.
	TargetMeditationClock Target = "meditation_clock"

	// TargetBreathingWidget is the breathing circle and status line.
	TargetBreathingWidget Target = "breathing_widget"
)

// Renderer defines the interface for building views from state.
// This is a driven port (implemented by adapters).
type Renderer interface {
	// Render rebuilds the page of the active tab from scratch.
	Render(state *domain.AppState) error

	// RenderTarget rebuilds only the given widget.
	RenderTarget(target Target, state *domain.AppState) error
}

// Notifier defines the interface for desktop notifications.
// This is a driven port (implemented by adapters).
type Notifier interface {
	// NotifyMeditationComplete announces the end of a meditation session.
	// Disabled notifiers return nil.
	NotifyMeditationComplete(preset string) error

	// IsEnabled reports whether notifications are shown.
	IsEnabled() bool
}
