package domain

import (
	"fmt"
	"math"
	"time"
)

// Slider bounds for the sleep page.
const (
	MinSleepHours   = 0.0
	MaxSleepHours   = 14.0
	MinSleepQuality = 1
	MaxSleepQuality = 5
	MinNapHours     = 0.0
	MaxNapHours     = 3.0

	minutesPerDay = 24 * 60
)

// TimeOfDay is a wall-clock time without a date.
type TimeOfDay struct {
	Hour   int
	Minute int
}

// NewTimeOfDay validates and builds a time of day.
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTime, hour, minute)
	}
	return TimeOfDay{Hour: hour, Minute: minute}, nil
}

// ParseTimeOfDay parses "HH:MM" (24h).
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return TimeOfDay{Hour: t.Hour(), Minute: t.Minute()}, nil
}

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int {
	return t.Hour*60 + t.Minute
}

// Add shifts the time by the given minutes, wrapping around midnight.
func (t TimeOfDay) Add(minutes int) TimeOfDay {
	m := (t.Minutes() + minutes) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay{Hour: m / 60, Minute: m % 60}
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour, t.Minute)
}

// FormatTimeOfDay renders an optional time, using placeholder when unset.
func FormatTimeOfDay(t *TimeOfDay, placeholder string) string {
	if t == nil {
		return placeholder
	}
	return t.String()
}

// SleepState holds the values edited on the sleep page.
// SleepHours is derived from Bedtime and Wakeup whenever both are set, but
// the slider may overwrite it until the next schedule change.
type SleepState struct {
	SleepHours   float64
	SleepQuality int
	NapHours     float64
	Bedtime      *TimeOfDay
	Wakeup       *TimeOfDay
}

// DefaultSleepState returns the values shown on first launch.
func DefaultSleepState() SleepState {
	return SleepState{
		SleepHours:   7.0,
		SleepQuality: 3,
		NapHours:     0.0,
	}
}

// ComputeSleepHours returns the time between bedtime and wakeup in hours.
// A wakeup at or before bedtime is taken to be on the next day. The result
// is clamped to the sleep slider range. ok is false when either time is
// missing, in which case the caller keeps its current value.
func ComputeSleepHours(bedtime, wakeup *TimeOfDay) (hours float64, ok bool) {
	if bedtime == nil || wakeup == nil {
		return 0, false
	}
	b := bedtime.Minutes()
	w := wakeup.Minutes()
	if w <= b {
		w += minutesPerDay
	}
	return ClampSleepHours(float64(w-b) / 60), true
}

// ClampSleepHours limits v to [0, 14].
func ClampSleepHours(v float64) float64 {
	return clampFloat(v, MinSleepHours, MaxSleepHours)
}

// ClampNapHours limits v to [0, 3].
func ClampNapHours(v float64) float64 {
	return clampFloat(v, MinNapHours, MaxNapHours)
}

// ClampSleepQuality limits v to [1, 5].
func ClampSleepQuality(v int) int {
	if v < MinSleepQuality {
		return MinSleepQuality
	}
	if v > MaxSleepQuality {
		return MaxSleepQuality
	}
	return v
}

func clampFloat(v, lo, hi float64) float64 {
	if math.IsNaN(v) {
		return lo
	}
	return math.Min(math.Max(v, lo), hi)
}

// FormatSleepHours renders "7 Hours" for whole values and "7.5 Hours" otherwise.
func FormatSleepHours(h float64) string {
	if h == math.Trunc(h) {
		return fmt.Sprintf("%d Hours", int(h))
	}
	return fmt.Sprintf("%.1f Hours", h)
}

var qualityLabels = map[int]string{
	1: "Horrible (Insomnia)",
	2: "Poor",
	3: "Average",
	4: "Good",
	5: "Well Rested",
}

var qualityDescriptions = map[int]string{
	1: "Horrible - Barely slept at all.",
	2: "Poor - Restless, woke up frequently.",
	3: "Average - Okay sleep, usual routine.",
	4: "Good - Restful, mostly uninterrupted.",
	5: "Well Rested - Didn't wake up once, feeling extremely energized.",
}

// QualityLabel returns the short label for a quality score.
func QualityLabel(q int) string {
	return qualityLabels[ClampSleepQuality(q)]
}

// QualityDescription returns the longer explanation of a quality score.
func QualityDescription(q int) string {
	return qualityDescriptions[ClampSleepQuality(q)]
}
