package domain

import "time"

// SleepEntry is one night in the sleep history.
type SleepEntry struct {
	Date       time.Time
	Hours      float64
	Quality    int
	NapMinutes int
	Bedtime    *TimeOfDay
	Wakeup     *TimeOfDay
}

// NewSleepEntry captures the current sleep state as a night ending on date.
func NewSleepEntry(date time.Time, s SleepState) SleepEntry {
	e := SleepEntry{
		Date:       date,
		Hours:      ClampSleepHours(s.SleepHours),
		Quality:    ClampSleepQuality(s.SleepQuality),
		NapMinutes: NapMinutes(ClampNapHours(s.NapHours)),
	}
	if s.Bedtime != nil {
		b := *s.Bedtime
		e.Bedtime = &b
	}
	if s.Wakeup != nil {
		w := *s.Wakeup
		e.Wakeup = &w
	}
	return e
}

// HistoryRange selects the tab of the sleep history page.
type HistoryRange int

const (
	HistoryPastTwoDays HistoryRange = iota
	HistoryWeek
	HistoryMonth
)

// HistoryRanges lists the history tabs in display order.
var HistoryRanges = []HistoryRange{HistoryPastTwoDays, HistoryWeek, HistoryMonth}

// Label returns the tab title.
func (r HistoryRange) Label() string {
	switch r {
	case HistoryPastTwoDays:
		return "Past 2 Days"
	case HistoryWeek:
		return "Week"
	case HistoryMonth:
		return "Month"
	default:
		return "Unknown"
	}
}

// SleepStats aggregates a set of nights.
type SleepStats struct {
	Nights     int
	AvgHours   float64
	AvgQuality float64
}

// Stats averages the given entries. An empty slice yields zero stats.
func Stats(entries []SleepEntry) SleepStats {
	if len(entries) == 0 {
		return SleepStats{}
	}
	var hours, quality float64
	for _, e := range entries {
		hours += e.Hours
		quality += float64(e.Quality)
	}
	n := float64(len(entries))
	return SleepStats{
		Nights:     len(entries),
		AvgHours:   hours / n,
		AvgQuality: quality / n,
	}
}

// LastNights returns up to n most recent entries, oldest first.
// Entries are expected in chronological order.
func LastNights(entries []SleepEntry, n int) []SleepEntry {
	if len(entries) <= n {
		return entries
	}
	return entries[len(entries)-n:]
}

// BarTier buckets a night for the week chart.
type BarTier string

const (
	BarRested BarTier = "rested"
	BarFair   BarTier = "fair"
	BarShort  BarTier = "short"
)

// TierFor classifies hours of sleep: 7h or more is rested, under 6h short.
func TierFor(hours float64) BarTier {
	switch {
	case hours >= 7:
		return BarRested
	case hours < 6:
		return BarShort
	default:
		return BarFair
	}
}

// BarFraction scales hours onto a 10 hour chart, clamped to [0,1].
func BarFraction(hours float64) float64 {
	return clampFloat(hours/10, 0, 1)
}

// SampleHistory returns a week of demo nights ending yesterday.
func SampleHistory(now time.Time) []SleepEntry {
	at := func(h, m int) *TimeOfDay { return &TimeOfDay{Hour: h, Minute: m} }
	nights := []struct {
		hours   float64
		quality int
		nap     int
		bed     *TimeOfDay
		wake    *TimeOfDay
	}{
		{6.5, 3, 0, at(0, 30), at(7, 0)},
		{7.0, 4, 15, at(23, 30), at(6, 30)},
		{5.5, 2, 40, at(1, 30), at(7, 0)},
		{8.0, 5, 0, at(22, 30), at(6, 30)},
		{9.0, 5, 0, at(22, 0), at(7, 0)},
		{6.0, 2, 0, at(1, 0), at(7, 0)},
		{7.5, 4, 20, at(23, 0), at(6, 30)},
	}

	day := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	out := make([]SleepEntry, 0, len(nights))
	for i, n := range nights {
		out = append(out, SleepEntry{
			Date:       day.AddDate(0, 0, i-len(nights)),
			Hours:      n.hours,
			Quality:    n.quality,
			NapMinutes: n.nap,
			Bedtime:    n.bed,
			Wakeup:     n.wake,
		})
	}
	return out
}
