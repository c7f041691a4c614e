// Package domain contains the core records of Zenith: habits, sleep
// parameters, navigation flags and timer sessions, plus the pure rules that
// derive sleep duration and advisory feedback from them.
// Nothing in this package blocks or touches the terminal.
package domain

import (
	"errors"
	"strings"
)

// Common domain errors.
var (
	ErrEmptyHabitLabel     = errors.New("habit label cannot be empty")
	ErrHabitNotFound       = errors.New("habit not found")
	ErrInvalidTab          = errors.New("invalid tab")
	ErrInvalidTime         = errors.New("invalid time of day")
	ErrBreathingInProgress = errors.New("breathing session already running")
)

// Category groups habits on the movement page.
type Category string

const (
	CategorySocialising    Category = "Socialising"
	CategoryExercise       Category = "Exercise"
	CategoryMentalExercise Category = "Mental Exercise"
	CategoryHygiene        Category = "Hygiene"
	CategoryNutrition      Category = "Nutrition"
	CategoryChores         Category = "Chores"
	CategoryOthers         Category = "Others"
)

// Categories lists every category in picker order.
var Categories = []Category{
	CategorySocialising,
	CategoryExercise,
	CategoryMentalExercise,
	CategoryHygiene,
	CategoryNutrition,
	CategoryChores,
	CategoryOthers,
}

// ParseCategory maps free text onto a known category. Empty or unknown
// values fall back to Others.
func ParseCategory(s string) Category {
	s = strings.TrimSpace(s)
	for _, c := range Categories {
		if strings.EqualFold(s, string(c)) {
			return c
		}
	}
	return CategoryOthers
}

// Habit is a trackable daily activity.
// ID is the identity; Label is display text and may repeat.
type Habit struct {
	ID       string
	Label    string
	Done     bool
	Category Category
}

// NewHabit creates an unchecked habit with a fresh ID.
func NewHabit(label string, category Category) (*Habit, error) {
	if strings.TrimSpace(label) == "" {
		return nil, ErrEmptyHabitLabel
	}
	if category == "" {
		category = CategoryOthers
	}
	return &Habit{
		ID:       generateID(),
		Label:    label,
		Category: ParseCategory(string(category)),
	}, nil
}

// HabitProgress counts completed habits.
// Fraction is zero for an empty list.
func HabitProgress(habits []*Habit) (done, total int, fraction float64) {
	total = len(habits)
	for _, h := range habits {
		if h.Done {
			done++
		}
	}
	if total > 0 {
		fraction = float64(done) / float64(total)
	}
	return done, total, fraction
}

// UpNext returns the first n habits that are not done, in list order.
func UpNext(habits []*Habit, n int) []*Habit {
	var out []*Habit
	for _, h := range habits {
		if len(out) == n {
			break
		}
		if !h.Done {
			out = append(out, h)
		}
	}
	return out
}

// SplitByDone partitions habits into the To Do and Done columns.
func SplitByDone(habits []*Habit) (todo, done []*Habit) {
	for _, h := range habits {
		if h.Done {
			done = append(done, h)
		} else {
			todo = append(todo, h)
		}
	}
	return todo, done
}
