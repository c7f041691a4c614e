package domain

import (
	"errors"
	"testing"
)

func TestNewHabit(t *testing.T) {
	t.Run("empty label is rejected", func(t *testing.T) {
		for _, label := range []string{"", "   "} {
			if _, err := NewHabit(label, CategoryExercise); !errors.Is(err, ErrEmptyHabitLabel) {
				t.Errorf("NewHabit(%q) error = %v, want ErrEmptyHabitLabel", label, err)
			}
		}
	})

	t.Run("empty category defaults to Others", func(t *testing.T) {
		h, err := NewHabit("Run", "")
		if err != nil {
			t.Fatalf("NewHabit() error = %v", err)
		}
		if h.Category != CategoryOthers {
			t.Errorf("Category = %q, want %q", h.Category, CategoryOthers)
		}
		if h.Done {
			t.Error("new habit should not be done")
		}
	})

	t.Run("duplicate labels get distinct ids", func(t *testing.T) {
		a, _ := NewHabit("Walk", CategoryExercise)
		b, _ := NewHabit("Walk", CategoryExercise)
		if a.ID == "" || a.ID == b.ID {
			t.Errorf("ids should be unique, got %q and %q", a.ID, b.ID)
		}
	})
}

func TestParseCategory(t *testing.T) {
	tests := []struct {
		in   string
		want Category
	}{
		{"Exercise", CategoryExercise},
		{"mental exercise", CategoryMentalExercise},
		{" Chores ", CategoryChores},
		{"", CategoryOthers},
		{"Knitting", CategoryOthers},
	}
	for _, tt := range tests {
		if got := ParseCategory(tt.in); got != tt.want {
			t.Errorf("ParseCategory(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestHabitProgress(t *testing.T) {
	done, total, frac := HabitProgress(nil)
	if done != 0 || total != 0 || frac != 0 {
		t.Errorf("HabitProgress(nil) = %d, %d, %v", done, total, frac)
	}

	habits := []*Habit{{Done: true}, {Done: false}, {Done: true}, {Done: false}}
	done, total, frac = HabitProgress(habits)
	if done != 2 || total != 4 || frac != 0.5 {
		t.Errorf("HabitProgress() = %d, %d, %v", done, total, frac)
	}
}

func TestUpNext(t *testing.T) {
	habits := []*Habit{
		{Label: "a", Done: true},
		{Label: "b"},
		{Label: "c"},
		{Label: "d", Done: true},
		{Label: "e"},
		{Label: "f"},
	}
	got := UpNext(habits, 3)
	if len(got) != 3 {
		t.Fatalf("UpNext() returned %d habits, want 3", len(got))
	}
	for i, want := range []string{"b", "c", "e"} {
		if got[i].Label != want {
			t.Errorf("UpNext()[%d] = %q, want %q", i, got[i].Label, want)
		}
	}

	if len(UpNext([]*Habit{{Done: true}}, 3)) != 0 {
		t.Error("UpNext() should be empty when all habits are done")
	}
}

func TestSplitByDone(t *testing.T) {
	habits := []*Habit{{Label: "a", Done: true}, {Label: "b"}, {Label: "c", Done: true}}
	todo, done := SplitByDone(habits)
	if len(todo) != 1 || todo[0].Label != "b" {
		t.Errorf("todo = %v", todo)
	}
	if len(done) != 2 {
		t.Errorf("done = %v", done)
	}
}

func TestAppState_FindHabit(t *testing.T) {
	s := NewAppState(DefaultContent(fixedNow))
	if len(s.Habits) != 6 {
		t.Fatalf("seed habits = %d, want 6", len(s.Habits))
	}
	if s.Selection.HabitID != s.Habits[0].ID {
		t.Error("selection should start on the first habit")
	}

	h, i, err := s.FindHabit(s.Habits[2].ID)
	if err != nil || i != 2 || h != s.Habits[2] {
		t.Errorf("FindHabit() = %v, %d, %v", h, i, err)
	}
	if _, _, err := s.FindHabit("missing"); !errors.Is(err, ErrHabitNotFound) {
		t.Errorf("FindHabit(missing) error = %v", err)
	}
}
