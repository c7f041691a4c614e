package domain

import (
	"fmt"
	"math"
)

// Severity classifies advisory messages.
type Severity string

const (
	SeverityNeutral  Severity = "neutral"
	SeverityPositive Severity = "positive"
	SeverityWarning  Severity = "warning"
)

// Nap thresholds in minutes.
const (
	PowerNapMinMinutes = 15
	PowerNapMaxMinutes = 30
)

// NapAdvice is the feedback shown under the nap slider.
type NapAdvice struct {
	Minutes  int
	Label    string
	Message  string
	Severity Severity
}

// NapMinutes converts the nap slider value into whole minutes.
func NapMinutes(napHours float64) int {
	return int(math.Round(napHours * 60))
}

// AdviseNap classifies a nap length.
func AdviseNap(napHours float64) NapAdvice {
	mins := NapMinutes(napHours)
	advice := NapAdvice{Minutes: mins, Label: "No Nap", Severity: SeverityNeutral}
	if mins <= 0 {
		advice.Minutes = 0
		return advice
	}

	advice.Label = fmt.Sprintf("%d min", mins)
	switch {
	case mins > PowerNapMaxMinutes:
		advice.Message = "Short naps are better. Long naps (>30m) cause inertia."
		advice.Severity = SeverityWarning
	case mins >= PowerNapMinMinutes:
		advice.Message = "Power naps (15-30m) boost energy."
		advice.Severity = SeverityPositive
	default:
		advice.Message = "Too short for benefit. Aim for 15-30m."
	}
	return advice
}

// ScheduleAdvisory is the banner shown for a risky sleep schedule.
type ScheduleAdvisory struct {
	Title    string
	Detail   string
	Tip      string
	Severity Severity
}

var riskyScheduleAdvisory = ScheduleAdvisory{
	Title:    "Risky Sleep Schedule",
	Detail:   "Sleeping late (>2:00) and waking late (>13:00) increases risk of depressive moods.",
	Tip:      "Go to sleep earlier and wake up earlier for mood boosts.",
	Severity: SeverityWarning,
}

// IsRiskySchedule reports a bedtime hour in [2,6) combined with a wakeup
// hour of 13 or later. Unset times are never risky.
func IsRiskySchedule(bedtime, wakeup *TimeOfDay) bool {
	if bedtime == nil || wakeup == nil {
		return false
	}
	lateSleep := bedtime.Hour >= 2 && bedtime.Hour < 6
	lateWake := wakeup.Hour >= 13
	return lateSleep && lateWake
}

// AdviseSchedule returns the risk banner when the schedule is risky.
func AdviseSchedule(bedtime, wakeup *TimeOfDay) (ScheduleAdvisory, bool) {
	if !IsRiskySchedule(bedtime, wakeup) {
		return ScheduleAdvisory{}, false
	}
	return riskyScheduleAdvisory, true
}

// Greeting picks the dashboard salutation for the hour of day.
func Greeting(hour int) string {
	switch {
	case hour >= 5 && hour < 12:
		return "Good Morning"
	case hour >= 12 && hour < 17:
		return "Good Afternoon"
	case hour >= 17 && hour < 21:
		return "Good Evening"
	default:
		return "Good Night"
	}
}
