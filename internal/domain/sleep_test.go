package domain

import (
	"errors"
	"math"
	"testing"
)

func tod(h, m int) *TimeOfDay {
	return &TimeOfDay{Hour: h, Minute: m}
}

func TestComputeSleepHours(t *testing.T) {
	tests := []struct {
		name    string
		bedtime *TimeOfDay
		wakeup  *TimeOfDay
		want    float64
		wantOK  bool
	}{
		{"overnight", tod(23, 0), tod(6, 30), 7.5, true},
		{"late bedtime late wake", tod(3, 0), tod(14, 0), 11.0, true},
		{"same day", tod(13, 0), tod(15, 30), 2.5, true},
		{"equal wraps to full day and clamps", tod(22, 0), tod(22, 0), 14, true},
		{"long sleep clamps", tod(18, 0), tod(12, 0), 14, true},
		{"midnight to morning", tod(0, 0), tod(8, 0), 8, true},
		{"missing bedtime", nil, tod(7, 0), 0, false},
		{"missing wakeup", tod(23, 0), nil, 0, false},
		{"both missing", nil, nil, 0, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ComputeSleepHours(tt.bedtime, tt.wakeup)
			if ok != tt.wantOK {
				t.Fatalf("ComputeSleepHours() ok = %v, want %v", ok, tt.wantOK)
			}
			if got != tt.want {
				t.Errorf("ComputeSleepHours() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestComputeSleepHours_AllPairs(t *testing.T) {
	for b := 0; b < 24*60; b += 15 {
		for w := 0; w < 24*60; w += 15 {
			bed := &TimeOfDay{Hour: b / 60, Minute: b % 60}
			wake := &TimeOfDay{Hour: w / 60, Minute: w % 60}

			want := float64(w-b) / 60
			if w <= b {
				want = float64(w+24*60-b) / 60
			}
			want = math.Min(math.Max(want, 0), 14)

			got, ok := ComputeSleepHours(bed, wake)
			if !ok || got != want {
				t.Fatalf("ComputeSleepHours(%s, %s) = %v, %v; want %v", bed, wake, got, ok, want)
			}
		}
	}
}

func TestParseTimeOfDay(t *testing.T) {
	got, err := ParseTimeOfDay("06:30")
	if err != nil {
		t.Fatalf("ParseTimeOfDay() error = %v", err)
	}
	if got != (TimeOfDay{Hour: 6, Minute: 30}) {
		t.Errorf("ParseTimeOfDay() = %v", got)
	}

	for _, bad := range []string{"", "25:00", "7", "aa:bb"} {
		if _, err := ParseTimeOfDay(bad); !errors.Is(err, ErrInvalidTime) {
			t.Errorf("ParseTimeOfDay(%q) error = %v, want ErrInvalidTime", bad, err)
		}
	}
}

func TestTimeOfDay_Add(t *testing.T) {
	tests := []struct {
		start   TimeOfDay
		minutes int
		want    string
	}{
		{TimeOfDay{23, 45}, 15, "00:00"},
		{TimeOfDay{0, 0}, -15, "23:45"},
		{TimeOfDay{6, 30}, 90, "08:00"},
		{TimeOfDay{12, 0}, -24 * 60, "12:00"},
	}
	for _, tt := range tests {
		if got := tt.start.Add(tt.minutes).String(); got != tt.want {
			t.Errorf("%s.Add(%d) = %s, want %s", tt.start, tt.minutes, got, tt.want)
		}
	}
}

func TestNewTimeOfDay_Invalid(t *testing.T) {
	if _, err := NewTimeOfDay(24, 0); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("NewTimeOfDay(24, 0) error = %v", err)
	}
	if _, err := NewTimeOfDay(10, -1); !errors.Is(err, ErrInvalidTime) {
		t.Errorf("NewTimeOfDay(10, -1) error = %v", err)
	}
}

func TestClamps(t *testing.T) {
	if got := ClampSleepHours(20); got != 14 {
		t.Errorf("ClampSleepHours(20) = %v", got)
	}
	if got := ClampSleepHours(-1); got != 0 {
		t.Errorf("ClampSleepHours(-1) = %v", got)
	}
	if got := ClampNapHours(5); got != 3 {
		t.Errorf("ClampNapHours(5) = %v", got)
	}
	if got := ClampSleepQuality(0); got != 1 {
		t.Errorf("ClampSleepQuality(0) = %v", got)
	}
	if got := ClampSleepQuality(9); got != 5 {
		t.Errorf("ClampSleepQuality(9) = %v", got)
	}
	if got := ClampSleepHours(math.NaN()); got != 0 {
		t.Errorf("ClampSleepHours(NaN) = %v", got)
	}
}

func TestFormatSleepHours(t *testing.T) {
	tests := []struct {
		h    float64
		want string
	}{
		{7, "7 Hours"},
		{7.5, "7.5 Hours"},
		{0, "0 Hours"},
		{6.3, "6.3 Hours"},
	}
	for _, tt := range tests {
		if got := FormatSleepHours(tt.h); got != tt.want {
			t.Errorf("FormatSleepHours(%v) = %q, want %q", tt.h, got, tt.want)
		}
	}
}

func TestQualityLabel(t *testing.T) {
	want := []string{"Horrible (Insomnia)", "Poor", "Average", "Good", "Well Rested"}
	for i, w := range want {
		if got := QualityLabel(i + 1); got != w {
			t.Errorf("QualityLabel(%d) = %q, want %q", i+1, got, w)
		}
	}
	if QualityDescription(4) == "" {
		t.Error("QualityDescription(4) should not be empty")
	}
}
