package domain

import (
	"fmt"
	"math"
	"time"
)

// BreathPhase is a step of the 4-7-8 breathing exercise.
type BreathPhase string

const (
	PhaseIdle    BreathPhase = "idle"
	PhaseInhale  BreathPhase = "inhale"
	PhaseHold    BreathPhase = "hold"
	PhaseRelease BreathPhase = "release"
	PhaseReset   BreathPhase = "reset"
)

// Breathing colors.
const (
	BreathGreen = "#00E676"
	BreathRed   = "#FF5252"
	BreathBlue  = "#448AFF"
	BreathWhite = "#FFFFFF"
)

// BreathReadyText is the status line between sessions.
const BreathReadyText = "Ready to breathe?"

// Resting values of the breathing circle.
const (
	RestingScale   = 1.0
	RestingOpacity = 0.2
	ExpandedScale  = 2.5
)

// Easing shapes a scale transition.
type Easing string

const (
	EaseInOut   Easing = "ease_in_out"
	EaseDecel   Easing = "decelerate"
	EaseAccel   Easing = "accelerate"
	EaseInstant Easing = "instant"
)

// PhaseSpec describes one phase of the exercise. A zero Scale keeps the
// circle at its previous size.
type PhaseSpec struct {
	Phase   BreathPhase
	Seconds int
	Label   string
	Color   string
	Scale   float64
	Opacity float64
	Easing  Easing
}

// BreathingPlan is the fixed 4-7-8 sequence.
var BreathingPlan = []PhaseSpec{
	{Phase: PhaseInhale, Seconds: 4, Label: "INHALE", Color: BreathGreen, Scale: ExpandedScale, Opacity: 0.8, Easing: EaseDecel},
	{Phase: PhaseHold, Seconds: 7, Label: "HOLD", Color: BreathRed},
	{Phase: PhaseRelease, Seconds: 8, Label: "RELEASE", Color: BreathBlue, Scale: RestingScale, Opacity: RestingOpacity, Easing: EaseAccel},
}

// BreathingTicks is the number of one second steps in a full session.
func BreathingTicks() int {
	n := 0
	for _, p := range BreathingPlan {
		n += p.Seconds
	}
	return n
}

// BreathStatus formats the countdown line, e.g. "INHALE... 4".
func BreathStatus(label string, n int) string {
	return fmt.Sprintf("%s... %d", label, n)
}

// BreathVisual is the animated circle. The scale moves from FromScale to
// ToScale over Transition starting at StartedAt.
type BreathVisual struct {
	FromScale  float64
	ToScale    float64
	Color      string
	Opacity    float64
	Easing     Easing
	Transition time.Duration
	StartedAt  time.Time
}

// RestingVisual is the circle between sessions.
func RestingVisual() BreathVisual {
	return BreathVisual{
		FromScale: RestingScale,
		ToScale:   RestingScale,
		Color:     BreathGreen,
		Opacity:   RestingOpacity,
		Easing:    EaseInstant,
	}
}

// ScaleAt returns the circle scale at the given instant.
func (v BreathVisual) ScaleAt(now time.Time) float64 {
	if v.Transition <= 0 || v.Easing == EaseInstant {
		return v.ToScale
	}
	p := float64(now.Sub(v.StartedAt)) / float64(v.Transition)
	p = clampFloat(p, 0, 1)
	return v.FromScale + (v.ToScale-v.FromScale)*ease(v.Easing, p)
}

// Animating reports whether the scale is still moving at now.
func (v BreathVisual) Animating(now time.Time) bool {
	return v.Transition > 0 && v.Easing != EaseInstant && now.Before(v.StartedAt.Add(v.Transition))
}

func ease(e Easing, p float64) float64 {
	switch e {
	case EaseDecel:
		return 1 - (1-p)*(1-p)
	case EaseAccel:
		return p * p
	case EaseInOut:
		return (1 - math.Cos(math.Pi*p)) / 2
	default:
		return p
	}
}

// BreathFrame is one status update of a breathing session.
type BreathFrame struct {
	Phase  BreathPhase
	Count  int
	Status string
	Color  string
	Visual BreathVisual
}

func (BreathFrame) timerEvent() {}

// BreathingState is what the breathing widget shows.
type BreathingState struct {
	Active      bool
	Phase       BreathPhase
	Status      string
	StatusColor string
	Visual      BreathVisual
}

// NewBreathingState returns the idle widget.
func NewBreathingState() BreathingState {
	return BreathingState{
		Phase:       PhaseIdle,
		Status:      BreathReadyText,
		StatusColor: BreathWhite,
		Visual:      RestingVisual(),
	}
}
