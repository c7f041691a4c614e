package domain

import "time"

// EmergencyContact is a support line shown on the help section.
type EmergencyContact struct {
	Name        string
	Contact     string
	Description string
	Kind        string
}

// HabitSeed is a habit preloaded on start.
type HabitSeed struct {
	Label    string
	Category Category
}

// SleepField is the focused control on the sleep page.
type SleepField int

const (
	FieldSleepHours SleepField = iota
	FieldBedtime
	FieldWakeup
	FieldQuality
	FieldNap
)

// SleepFields lists the sleep page controls top to bottom.
var SleepFields = []SleepField{FieldSleepHours, FieldBedtime, FieldWakeup, FieldQuality, FieldNap}

// Selection is the cursor state read by the views.
type Selection struct {
	HabitID          string
	HabitFilter      string
	SleepField       SleepField
	MeditationPreset int
}

// Content is the static text and seed data of the app.
type Content struct {
	Quote      string
	SleepQuote string
	Contacts   []EmergencyContact
	Habits     []HabitSeed
	Presets    []MeditationPreset
	History    []SleepEntry
}

// DefaultContent returns the built-in quote, contacts and seed habits.
func DefaultContent(now time.Time) Content {
	return Content{
		Quote:      "Small steps every day lead to giant leaps over time.",
		SleepQuote: "“Sleep is the best meditation.” — Dalai Lama",
		Contacts: []EmergencyContact{
			{Name: "Line", Contact: "804", Description: "Available 24/7", Kind: "phone"},
			{Name: "Live Chat Support", Contact: "+490741741", Description: "Free support", Kind: "sms"},
			{Name: "Email", Contact: "info@zenith.de", Description: "Free support", Kind: "sms"},
		},
		Habits: []HabitSeed{
			{Label: "Morning Stretch", Category: CategoryExercise},
			{Label: "30 Min Walk", Category: CategoryExercise},
			{Label: "Gym Workout", Category: CategoryExercise},
			{Label: "Drink 2L Water", Category: CategoryNutrition},
			{Label: "Read 10 Pages", Category: CategoryMentalExercise},
			{Label: "Lunch with a Friend", Category: CategorySocialising},
		},
		Presets: DefaultMeditationPresets(),
		History: SampleHistory(now),
	}
}

// AppState is the whole in-memory state of a running app. It is owned by
// one goroutine; everything else reads it through that owner.
type AppState struct {
	Habits     []*Habit
	Sleep      SleepState
	History    []SleepEntry
	Nav        NavigationState
	Background Background
	Meditation MeditationState
	Presets    []MeditationPreset
	Breathing  BreathingState
	Selection  Selection
	Notice     string
	Quote      string
	SleepQuote string
	Contacts   []EmergencyContact
}

// NewAppState builds the start-up state from content. Seeds with an empty
// label are skipped.
func NewAppState(c Content) *AppState {
	s := &AppState{
		Sleep:      DefaultSleepState(),
		History:    append([]SleepEntry(nil), c.History...),
		Nav:        NavigationState{Tab: TabDashboard},
		Background: BackgroundFor(TabDashboard),
		Meditation: NewMeditationState(c.Presets),
		Presets:    append([]MeditationPreset(nil), c.Presets...),
		Breathing:  NewBreathingState(),
		Quote:      c.Quote,
		SleepQuote: c.SleepQuote,
		Contacts:   append([]EmergencyContact(nil), c.Contacts...),
	}
	for _, seed := range c.Habits {
		h, err := NewHabit(seed.Label, seed.Category)
		if err != nil {
			continue
		}
		s.Habits = append(s.Habits, h)
	}
	if len(s.Habits) > 0 {
		s.Selection.HabitID = s.Habits[0].ID
	}
	return s
}

// FindHabit returns the habit with the given ID and its index.
func (s *AppState) FindHabit(id string) (*Habit, int, error) {
	for i, h := range s.Habits {
		if h.ID == id {
			return h, i, nil
		}
	}
	return nil, -1, ErrHabitNotFound
}
