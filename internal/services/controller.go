package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/sahilm/fuzzy"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
	"github.com/xvierd/zenith/internal/xslog"
)

// Step sizes of the sleep page controls.
const (
	SleepHoursStep  = 0.5
	TimeStepMinutes = 15
	NapStepMinutes  = 5
)

// Defaults used when a bedtime or wake-up time is adjusted while unset.
var (
	DefaultBedtime = domain.TimeOfDay{Hour: 23}
	DefaultWakeup  = domain.TimeOfDay{Hour: 7}
)

// ControllerDeps holds the collaborators of a Controller. Only Renderer is
// required.
type ControllerDeps struct {
	Renderer   ports.Renderer
	Meditation ports.MeditationCountdown
	Breathing  ports.Breather
	Notifier   ports.Notifier
	Logger     *slog.Logger
}

// Controller handles every user action and timer event. It owns the
// AppState and must be called from a single goroutine.
type Controller struct {
	state      *domain.AppState
	renderer   ports.Renderer
	meditation ports.MeditationCountdown
	breathing  ports.Breather
	notifier   ports.Notifier
	logger     *slog.Logger
}

// NewController creates a controller over state.
func NewController(state *domain.AppState, deps ControllerDeps) *Controller {
	logger := deps.Logger
	if logger == nil {
		logger = xslog.Discard()
	}
	return &Controller{
		state:      state,
		renderer:   deps.Renderer,
		meditation: deps.Meditation,
		breathing:  deps.Breathing,
		notifier:   deps.Notifier,
		logger:     logger,
	}
}

// State returns the state for reading by views.
func (c *Controller) State() *domain.AppState {
	return c.state
}

// Refresh rebuilds the active page, e.g. after a resize.
func (c *Controller) Refresh() {
	c.render()
}

// DismissNotice clears the transient notice.
func (c *Controller) DismissNotice() {
	c.state.Notice = ""
}

// AddHabit appends a new habit. An empty label is ignored.
func (c *Controller) AddHabit(label string, category domain.Category) (*domain.Habit, error) {
	h, err := domain.NewHabit(label, category)
	if err != nil {
		c.logger.Debug("habit not added", xslog.Error(err))
		return nil, err
	}
	c.state.Habits = append(c.state.Habits, h)
	if c.state.Selection.HabitID == "" {
		c.state.Selection.HabitID = h.ID
	}
	if tab := c.state.Nav.Tab; tab == domain.TabMovement || tab == domain.TabDashboard {
		c.render()
	}
	return h, nil
}

// DeleteHabit removes the habit with the given ID. A cursor on the removed
// habit moves to the row that takes its place in the visible list.
func (c *Controller) DeleteHabit(id string) error {
	_, i, err := c.state.FindHabit(id)
	if err != nil {
		c.logger.Debug("habit not deleted", xslog.HabitID(id), xslog.Error(err))
		return fmt.Errorf("delete habit: %w", err)
	}
	row := indexOfHabit(c.VisibleHabits(), id)
	c.state.Habits = append(c.state.Habits[:i], c.state.Habits[i+1:]...)
	if c.state.Selection.HabitID == id {
		c.state.Selection.HabitID = ""
		if visible := c.VisibleHabits(); len(visible) > 0 {
			c.state.Selection.HabitID = visible[min(max(row, 0), len(visible)-1)].ID
		}
	}
	c.render()
	return nil
}

// ToggleHabit sets the done flag of a habit.
func (c *Controller) ToggleHabit(id string, done bool) error {
	h, _, err := c.state.FindHabit(id)
	if err != nil {
		c.logger.Debug("habit not toggled", xslog.HabitID(id), xslog.Error(err))
		return fmt.Errorf("toggle habit: %w", err)
	}
	h.Done = done
	if c.state.Nav.Tab == domain.TabMovement {
		c.render()
	}
	return nil
}

// VisibleHabits returns the habits matching the current filter.
func (c *Controller) VisibleHabits() []*domain.Habit {
	return FilterHabits(c.state.Habits, c.state.Selection.HabitFilter)
}

// FilterHabits fuzzy matches q against habit labels. An empty query returns
// habits unchanged; otherwise best matches come first.
func FilterHabits(habits []*domain.Habit, q string) []*domain.Habit {
	if q == "" {
		return habits
	}
	labels := make([]string, len(habits))
	for i, h := range habits {
		labels[i] = h.Label
	}
	matches := fuzzy.Find(q, labels)
	out := make([]*domain.Habit, 0, len(matches))
	for _, m := range matches {
		out = append(out, habits[m.Index])
	}
	return out
}

// SetHabitFilter narrows the movement lists and moves the cursor onto the
// first match.
func (c *Controller) SetHabitFilter(q string) {
	c.state.Selection.HabitFilter = q
	visible := c.VisibleHabits()
	if indexOfHabit(visible, c.state.Selection.HabitID) < 0 {
		c.state.Selection.HabitID = ""
		if len(visible) > 0 {
			c.state.Selection.HabitID = visible[0].ID
		}
	}
	c.render()
}

// SelectedHabit returns the habit under the cursor, or nil.
func (c *Controller) SelectedHabit() *domain.Habit {
	h, _, err := c.state.FindHabit(c.state.Selection.HabitID)
	if err != nil {
		return nil
	}
	return h
}

// MoveHabitCursor moves the cursor by delta within the visible habits,
// clamping at both ends.
func (c *Controller) MoveHabitCursor(delta int) {
	visible := c.VisibleHabits()
	if len(visible) == 0 {
		c.state.Selection.HabitID = ""
		return
	}
	cur := 0
	for i, h := range visible {
		if h.ID == c.state.Selection.HabitID {
			cur = i
			break
		}
	}
	next := min(max(cur+delta, 0), len(visible)-1)
	c.state.Selection.HabitID = visible[next].ID
	c.render()
}

// SetBedtime stores the bedtime and recomputes the sleep duration.
func (c *Controller) SetBedtime(t domain.TimeOfDay) {
	c.state.Sleep.Bedtime = &t
	c.recomputeSleep()
	c.render()
}

// SetWakeup stores the wake-up time and recomputes the sleep duration.
func (c *Controller) SetWakeup(t domain.TimeOfDay) {
	c.state.Sleep.Wakeup = &t
	c.recomputeSleep()
	c.render()
}

func (c *Controller) recomputeSleep() {
	if hours, ok := domain.ComputeSleepHours(c.state.Sleep.Bedtime, c.state.Sleep.Wakeup); ok {
		c.state.Sleep.SleepHours = hours
	}
}

// SetSleepHours overwrites the sleep duration.
func (c *Controller) SetSleepHours(v float64) {
	c.state.Sleep.SleepHours = domain.ClampSleepHours(v)
	c.render()
}

// SetSleepQuality overwrites the sleep quality.
func (c *Controller) SetSleepQuality(v int) {
	c.state.Sleep.SleepQuality = domain.ClampSleepQuality(v)
	c.render()
}

// SetNapHours overwrites the nap duration.
func (c *Controller) SetNapHours(v float64) {
	c.state.Sleep.NapHours = domain.ClampNapHours(v)
	c.render()
}

// FocusSleepField moves the sleep page focus by delta, wrapping around.
func (c *Controller) FocusSleepField(delta int) {
	n := len(domain.SleepFields)
	i := (int(c.state.Selection.SleepField) + delta%n + n) % n
	c.state.Selection.SleepField = domain.SleepFields[i]
	c.render()
}

// AdjustSleepField steps the focused sleep control by dir steps.
func (c *Controller) AdjustSleepField(dir int) {
	s := c.state.Sleep
	switch c.state.Selection.SleepField {
	case domain.FieldSleepHours:
		c.SetSleepHours(s.SleepHours + float64(dir)*SleepHoursStep)
	case domain.FieldBedtime:
		c.SetBedtime(stepTime(s.Bedtime, DefaultBedtime, dir))
	case domain.FieldWakeup:
		c.SetWakeup(stepTime(s.Wakeup, DefaultWakeup, dir))
	case domain.FieldQuality:
		c.SetSleepQuality(s.SleepQuality + dir)
	case domain.FieldNap:
		minutes := domain.NapMinutes(s.NapHours) + dir*NapStepMinutes
		c.SetNapHours(float64(minutes) / 60)
	}
}

func stepTime(cur *domain.TimeOfDay, fallback domain.TimeOfDay, dir int) domain.TimeOfDay {
	if cur == nil {
		return fallback
	}
	return cur.Add(dir * TimeStepMinutes)
}

// LogSleep records the current sleep state as a night ending on now.
func (c *Controller) LogSleep(now time.Time) domain.SleepEntry {
	entry := domain.NewSleepEntry(now, c.state.Sleep)
	c.state.History = append(c.state.History, entry)
	c.logger.Info("sleep logged", slog.Float64("hours", entry.Hours), slog.Int("quality", entry.Quality))
	c.render()
	return entry
}

// Navigate switches to tab. If the new page cannot be rendered the previous
// page stays active and a notice is raised.
func (c *Controller) Navigate(tab domain.Tab) error {
	if !tab.Valid() {
		err := fmt.Errorf("%w: %d", domain.ErrInvalidTab, int(tab))
		c.logger.Debug("navigation ignored", xslog.Error(err))
		return err
	}

	prevNav, prevBg := c.state.Nav, c.state.Background
	c.state.Nav.Tab = tab
	if tab != domain.TabSleep {
		c.state.Nav.ShowSleepHistory = false
	}
	c.state.Background = domain.BackgroundFor(tab)

	if err := c.renderer.Render(c.state); err != nil {
		c.state.Nav, c.state.Background = prevNav, prevBg
		c.state.Notice = "Navigation Error: " + err.Error()
		c.logger.Error("navigation failed", xslog.Tab(tab.Label()), xslog.Error(err))
		return fmt.Errorf("navigate to %s: %w", tab.Label(), err)
	}
	c.state.Notice = ""
	return nil
}

// ToggleSleepHistory flips between the sleep page and its history.
func (c *Controller) ToggleSleepHistory() {
	c.state.Nav.ShowSleepHistory = !c.state.Nav.ShowSleepHistory
	c.render()
}

// SelectHistoryRange switches the history tab.
func (c *Controller) SelectHistoryRange(r domain.HistoryRange) {
	if r < domain.HistoryPastTwoDays || r > domain.HistoryMonth {
		c.logger.Debug("history range ignored", slog.Int("range", int(r)))
		return
	}
	c.state.Nav.HistoryRange = r
	c.render()
}

// SelectMindfulnessSection switches the mindfulness sub tab.
func (c *Controller) SelectMindfulnessSection(s domain.MindfulnessSection) {
	if s < domain.SectionMeditation || s > domain.SectionEmergencyHelp {
		c.logger.Debug("mindfulness section ignored", slog.Int("section", int(s)))
		return
	}
	c.state.Nav.MindfulnessSection = s
	c.render()
}

// SelectMeditationPreset moves the preset cursor.
func (c *Controller) SelectMeditationPreset(i int) {
	if i < 0 || i >= len(c.state.Presets) {
		return
	}
	c.state.Selection.MeditationPreset = i
	c.renderTarget(ports.TargetMeditationClock)
}

// StartMeditation starts the preset at index i, superseding any running
// session. Starting the preset that is already running is ignored.
func (c *Controller) StartMeditation(ctx context.Context, i int) error {
	if i < 0 || i >= len(c.state.Presets) {
		return fmt.Errorf("unknown meditation preset %d", i)
	}
	if c.state.Meditation.PresetDisabled(i) {
		c.logger.Debug("meditation preset disabled", slog.Int("preset", i))
		return nil
	}
	if c.meditation == nil {
		return errors.New("meditation timer not configured")
	}

	preset := c.state.Presets[i]
	seconds := int(preset.Duration.Seconds())
	token := c.meditation.Start(ctx, seconds)
	c.state.Meditation = domain.MeditationState{
		Token:        token,
		Running:      true,
		Remaining:    seconds,
		Display:      domain.FormatClock(seconds),
		ActivePreset: i,
	}
	c.state.Selection.MeditationPreset = i
	c.logger.Info("meditation started", slog.String("preset", preset.Name), xslog.Duration(preset.Duration))
	c.renderTarget(ports.TargetMeditationClock)
	return nil
}

// StartBreathing begins the breathing exercise. A start while a session is
// running is ignored.
func (c *Controller) StartBreathing(ctx context.Context) error {
	if c.breathing == nil {
		return errors.New("breathing coach not configured")
	}
	if c.state.Breathing.Active {
		c.logger.Debug("breathing start ignored", xslog.Error(domain.ErrBreathingInProgress))
		return nil
	}
	if err := c.breathing.Start(ctx); err != nil {
		if errors.Is(err, domain.ErrBreathingInProgress) {
			c.logger.Debug("breathing start ignored", xslog.Error(err))
			return nil
		}
		return fmt.Errorf("start breathing: %w", err)
	}
	c.state.Breathing.Active = true
	return nil
}

// ApplyTimerEvent folds a timer event into the state. Meditation ticks of a
// superseded session are dropped.
func (c *Controller) ApplyTimerEvent(ev domain.TimerEvent) {
	switch ev := ev.(type) {
	case domain.MeditationTick:
		c.applyMeditationTick(ev)
	case domain.BreathFrame:
		c.applyBreathFrame(ev)
	default:
		c.logger.Debug("unknown timer event", slog.String("type", fmt.Sprintf("%T", ev)))
	}
}

func (c *Controller) applyMeditationTick(ev domain.MeditationTick) {
	m := &c.state.Meditation
	if ev.Token != m.Token {
		c.logger.Debug("stale meditation tick dropped", xslog.Token(string(ev.Token)))
		return
	}
	if ev.Done {
		preset := m.ActivePreset
		m.Running = false
		m.Remaining = 0
		m.Display = domain.MeditationDoneText
		m.ActivePreset = -1
		c.notifyMeditationDone(preset)
	} else {
		m.Running = true
		m.Remaining = ev.Remaining
		m.Display = domain.FormatClock(ev.Remaining)
	}
	c.renderTarget(ports.TargetMeditationClock)
}

func (c *Controller) applyBreathFrame(ev domain.BreathFrame) {
	b := &c.state.Breathing
	b.Phase = ev.Phase
	b.Status = ev.Status
	b.StatusColor = ev.Color
	b.Visual = ev.Visual
	b.Active = ev.Phase != domain.PhaseReset && ev.Phase != domain.PhaseIdle
	if ev.Phase == domain.PhaseReset {
		b.StatusColor = domain.BreathWhite
		b.Status = domain.BreathReadyText
	}
	c.renderTarget(ports.TargetBreathingWidget)
}

func (c *Controller) notifyMeditationDone(preset int) {
	if c.notifier == nil || !c.notifier.IsEnabled() {
		return
	}
	name := "meditation"
	if preset >= 0 && preset < len(c.state.Presets) {
		name = c.state.Presets[preset].Name
	}
	notifier, logger := c.notifier, c.logger
	go func() {
		if err := notifier.NotifyMeditationComplete(name); err != nil {
			logger.Warn("notification failed", xslog.Error(err))
		}
	}()
}

// render rebuilds the active page. Failures become a notice.
func (c *Controller) render() {
	if err := c.renderer.Render(c.state); err != nil {
		c.state.Notice = "Render Error: " + err.Error()
		c.logger.Error("render failed", xslog.Tab(c.state.Nav.Tab.Label()), xslog.Error(err))
	}
}

// renderTarget redraws a single widget while the mindfulness page is shown.
func (c *Controller) renderTarget(target ports.Target) {
	if c.state.Nav.Tab != domain.TabMindfulness {
		return
	}
	if err := c.renderer.RenderTarget(target, c.state); err != nil {
		c.state.Notice = "Render Error: " + err.Error()
		c.logger.Error("render failed", xslog.Target(string(target)), xslog.Error(err))
	}
}

// indexOfHabit returns the position of id in habits, or -1.
func indexOfHabit(habits []*domain.Habit, id string) int {
	for i, h := range habits {
		if h.ID == id {
			return i
		}
	}
	return -1
}
