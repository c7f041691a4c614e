package domain

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func TestStats(t *testing.T) {
	tests := []struct {
		name    string
		entries []SleepEntry
		want    SleepStats
	}{
		{"empty", nil, SleepStats{}},
		{
			"two nights",
			[]SleepEntry{{Hours: 7.5, Quality: 4}, {Hours: 6.0, Quality: 2}},
			SleepStats{Nights: 2, AvgHours: 6.75, AvgQuality: 3},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if diff := cmp.Diff(tt.want, Stats(tt.entries)); diff != "" {
				t.Errorf("Stats() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSampleHistory(t *testing.T) {
	h := SampleHistory(fixedNow)
	if len(h) != 7 {
		t.Fatalf("SampleHistory() returned %d nights, want 7", len(h))
	}

	last := h[len(h)-1]
	wantDay := time.Date(2026, 10, 13, 0, 0, 0, 0, time.UTC)
	if !last.Date.Equal(wantDay) {
		t.Errorf("last night = %v, want %v", last.Date, wantDay)
	}
	if last.Hours != 7.5 || last.Quality != 4 || last.NapMinutes != 20 {
		t.Errorf("yesterday = %+v", last)
	}
	for i := 1; i < len(h); i++ {
		if !h[i].Date.After(h[i-1].Date) {
			t.Fatalf("history not chronological at %d", i)
		}
	}
}

func TestNewSleepEntry_CopiesTimes(t *testing.T) {
	s := DefaultSleepState()
	s.Bedtime = tod(23, 0)
	s.Wakeup = tod(6, 30)
	s.NapHours = 0.4

	e := NewSleepEntry(fixedNow, s)
	s.Bedtime.Hour = 1

	want := SleepEntry{
		Date:       fixedNow,
		Hours:      7,
		Quality:    3,
		NapMinutes: 24,
		Bedtime:    tod(23, 0),
		Wakeup:     tod(6, 30),
	}
	if diff := cmp.Diff(want, e, cmpopts.EquateApproxTime(0)); diff != "" {
		t.Errorf("NewSleepEntry() mismatch (-want +got):\n%s", diff)
	}
}

func TestLastNights(t *testing.T) {
	h := SampleHistory(fixedNow)
	if got := LastNights(h, 2); len(got) != 2 || got[1].Hours != 7.5 || got[0].Hours != 6.0 {
		t.Errorf("LastNights(2) = %+v", got)
	}
	if got := LastNights(h, 30); len(got) != 7 {
		t.Errorf("LastNights(30) returned %d", len(got))
	}
}

func TestTierFor(t *testing.T) {
	tests := []struct {
		hours float64
		want  BarTier
	}{
		{9, BarRested},
		{7, BarRested},
		{6.5, BarFair},
		{6, BarFair},
		{5.5, BarShort},
	}
	for _, tt := range tests {
		if got := TierFor(tt.hours); got != tt.want {
			t.Errorf("TierFor(%v) = %q, want %q", tt.hours, got, tt.want)
		}
	}
	if got := BarFraction(12); got != 1 {
		t.Errorf("BarFraction(12) = %v", got)
	}
	if got := BarFraction(6.5); got != 0.65 {
		t.Errorf("BarFraction(6.5) = %v", got)
	}
}
