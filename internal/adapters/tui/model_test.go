package tui

import (
	"context"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/services"
)

func keyPress(s string) tea.Msg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "space":
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "shift+tab":
		return tea.KeyMsg{Type: tea.KeyShiftTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

type stubCountdown struct {
	starts int
}

func (c *stubCountdown) Start(_ context.Context, _ int) domain.SessionToken {
	c.starts++
	return domain.SessionToken("session-" + string(rune('0'+c.starts)))
}

func (c *stubCountdown) Stop() {}

type stubBreather struct {
	starts int
}

func (b *stubBreather) Start(context.Context) error {
	b.starts++
	return nil
}

func (b *stubBreather) Running() bool { return b.starts > 0 }

type harness struct {
	model     Model
	countdown *stubCountdown
	breather  *stubBreather
}

func newHarness() *harness {
	views := testBuilder()
	h := &harness{countdown: &stubCountdown{}, breather: &stubBreather{}}
	ctrl := services.NewController(testState(), services.ControllerDeps{
		Renderer:   views,
		Meditation: h.countdown,
		Breathing:  h.breather,
	})
	h.model = NewModel(context.Background(), ctrl, views, nil)
	h.model.now = func() time.Time { return fixedNow }
	return h
}

// press feeds keys through Update in order.
func (h *harness) press(keys ...string) tea.Cmd {
	var cmd tea.Cmd
	for _, k := range keys {
		var result tea.Model
		result, cmd = h.model.Update(keyPress(k))
		h.model = result.(Model)
	}
	return cmd
}

func (h *harness) state() *domain.AppState {
	return h.model.ctrl.State()
}

// ---------------------------------------------------------------------------
// Navigation
// ---------------------------------------------------------------------------

func TestModel_NumberKeysNavigate(t *testing.T) {
	h := newHarness()
	tests := []struct {
		key  string
		want domain.Tab
	}{
		{"2", domain.TabMovement},
		{"3", domain.TabSleep},
		{"4", domain.TabMindfulness},
		{"1", domain.TabDashboard},
	}
	for _, tt := range tests {
		h.press(tt.key)
		if got := h.state().Nav.Tab; got != tt.want {
			t.Errorf("[%s] tab = %s, want %s", tt.key, got.Label(), tt.want.Label())
		}
	}
}

func TestModel_TabKeysWrap(t *testing.T) {
	h := newHarness()
	h.press("shift+tab")
	if got := h.state().Nav.Tab; got != domain.TabMindfulness {
		t.Errorf("shift+tab from dashboard = %s, want Mindfulness", got.Label())
	}
	h.press("tab")
	if got := h.state().Nav.Tab; got != domain.TabDashboard {
		t.Errorf("tab from mindfulness = %s, want Dashboard", got.Label())
	}
}

func TestModel_NavigateRendersPage(t *testing.T) {
	h := newHarness()
	h.press("2")
	if !strings.Contains(h.model.View(), "Habits & Movement") {
		t.Error("View should show the movement page after [2]")
	}
	if h.state().Background.Kind != domain.BackgroundGradient {
		t.Error("movement page should use a gradient background")
	}
}

func TestModel_QuitKey(t *testing.T) {
	h := newHarness()
	cmd := h.press("q")
	if cmd == nil {
		t.Fatal("[q] should return a command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("[q] should quit")
	}
}

func TestModel_EscDismissesNoticeFirst(t *testing.T) {
	h := newHarness()
	h.press("3", "h")
	h.state().Notice = "Render Error: boom"

	h.press("esc")
	if h.state().Notice != "" {
		t.Error("esc should clear the notice")
	}
	if !h.state().Nav.ShowSleepHistory {
		t.Error("first esc should not leave the history page")
	}

	h.press("esc")
	if h.state().Nav.ShowSleepHistory {
		t.Error("second esc should leave the history page")
	}
}

func TestModel_ViewShowsRailAndNotice(t *testing.T) {
	h := newHarness()
	h.state().Notice = "Navigation Error: nope"
	view := h.model.View()
	for _, want := range []string{"Zenith", "Dashboard", "Mindfulness", "Navigation Error: nope"} {
		if !strings.Contains(view, want) {
			t.Errorf("View should contain %q", want)
		}
	}
}

func TestModel_WindowSizeResizesPage(t *testing.T) {
	h := newHarness()
	result, _ := h.model.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	h.model = result.(Model)

	if h.model.views.width != 120-railWidth {
		t.Errorf("page width = %d, want %d", h.model.views.width, 120-railWidth)
	}
	if h.model.views.height != 40-chromeHeight {
		t.Errorf("page height = %d, want %d", h.model.views.height, 40-chromeHeight)
	}
}

// ---------------------------------------------------------------------------
// Movement
// ---------------------------------------------------------------------------

func TestModel_SpaceTogglesSelectedHabit(t *testing.T) {
	h := newHarness()
	first := h.state().Habits[0]

	h.press("2", "space")
	if !first.Done {
		t.Error("space should mark the selected habit done")
	}
	h.press("space")
	if first.Done {
		t.Error("second space should mark it not done")
	}
}

func TestModel_CursorAndDelete(t *testing.T) {
	h := newHarness()
	second := h.state().Habits[1]

	h.press("2", "down")
	if got := h.state().Selection.HabitID; got != second.ID {
		t.Fatalf("cursor should be on %q", second.Label)
	}
	h.press("d")
	if len(h.state().Habits) != 5 {
		t.Errorf("len(Habits) = %d, want 5", len(h.state().Habits))
	}
	if _, _, err := h.state().FindHabit(second.ID); err == nil {
		t.Error("deleted habit should be gone")
	}
}

func TestModel_AddDialog_EnterSavesHabit(t *testing.T) {
	h := newHarness()
	h.press("2", "a")
	if !h.model.dialogOpen {
		t.Fatal("[a] should open the add dialog")
	}

	h.press("Y", "o", "g", "a", "up", "enter")
	if h.model.dialogOpen {
		t.Error("enter should close the dialog")
	}
	habits := h.state().Habits
	last := habits[len(habits)-1]
	if last.Label != "Yoga" {
		t.Errorf("new habit label = %q, want Yoga", last.Label)
	}
	if want := domain.Categories[len(domain.Categories)-2]; last.Category != want {
		t.Errorf("new habit category = %s, want %s", last.Category, want)
	}
}

func TestModel_AddDialog_EmptyLabelKeepsDialogOpen(t *testing.T) {
	h := newHarness()
	h.press("2", "a", "enter")
	if !h.model.dialogOpen {
		t.Error("enter with an empty label should keep the dialog open")
	}
	if len(h.state().Habits) != 6 {
		t.Error("no habit should be added")
	}
}

func TestModel_AddDialog_EscCancels(t *testing.T) {
	h := newHarness()
	h.press("2", "a", "x", "esc")
	if h.model.dialogOpen {
		t.Error("esc should close the dialog")
	}
	if len(h.state().Habits) != 6 {
		t.Error("esc should not add a habit")
	}
}

func TestModel_AddDialog_SwallowsGlobalKeys(t *testing.T) {
	h := newHarness()
	h.press("2", "a", "3", "q")
	if h.state().Nav.Tab != domain.TabMovement {
		t.Error("digits typed in the dialog should not navigate")
	}
	if got := h.model.dialog.input.Value(); got != "3q" {
		t.Errorf("dialog input = %q, want 3q", got)
	}
}

func TestModel_FilterNarrowsHabits(t *testing.T) {
	h := newHarness()
	h.press("2", "/", "g", "y", "m")
	if got := h.state().Selection.HabitFilter; got != "gym" {
		t.Errorf("HabitFilter = %q, want gym", got)
	}
	visible := h.model.ctrl.VisibleHabits()
	if len(visible) == 0 || visible[0].Label != "Gym Workout" {
		t.Error("filter should put Gym Workout first")
	}

	h.press("enter")
	if h.model.filtering {
		t.Error("enter should leave filter mode")
	}
	if h.state().Selection.HabitFilter != "gym" {
		t.Error("enter should keep the filter")
	}

	h.press("/", "esc")
	if h.state().Selection.HabitFilter != "" {
		t.Error("esc should clear the filter")
	}
}

// ---------------------------------------------------------------------------
// Sleep
// ---------------------------------------------------------------------------

func TestModel_SleepSliderKeys(t *testing.T) {
	h := newHarness()
	h.press("3", "right")
	if got := h.state().Sleep.SleepHours; got != 7.5 {
		t.Errorf("SleepHours = %v, want 7.5", got)
	}

	h.press("down")
	if got := h.state().Selection.SleepField; got != domain.FieldBedtime {
		t.Errorf("SleepField = %d, want bedtime", got)
	}
	h.press("right")
	if b := h.state().Sleep.Bedtime; b == nil || b.Hour != 23 || b.Minute != 0 {
		t.Errorf("first adjust should set the default bedtime, got %v", b)
	}
	h.press("right")
	if b := h.state().Sleep.Bedtime; b == nil || b.Hour != 23 || b.Minute != 15 {
		t.Errorf("Bedtime = %v, want 23:15", b)
	}
}

func TestModel_LogNightAppendsHistory(t *testing.T) {
	h := newHarness()
	before := len(h.state().History)
	h.press("3", "l")
	if got := len(h.state().History); got != before+1 {
		t.Errorf("len(History) = %d, want %d", got, before+1)
	}
}

func TestModel_HistoryRangeKeys(t *testing.T) {
	h := newHarness()
	h.press("3", "h")
	if !h.state().Nav.ShowSleepHistory {
		t.Fatal("[h] should open the history page")
	}
	h.press("right")
	if got := h.state().Nav.HistoryRange; got != domain.HistoryWeek {
		t.Errorf("HistoryRange = %s, want week", got.Label())
	}
	h.press("left", "left")
	if got := h.state().Nav.HistoryRange; got != domain.HistoryMonth {
		t.Errorf("HistoryRange should wrap to month, got %s", got.Label())
	}
	h.press("h")
	if h.state().Nav.ShowSleepHistory {
		t.Error("[h] should close the history page")
	}
}

// ---------------------------------------------------------------------------
// Mindfulness
// ---------------------------------------------------------------------------

func TestModel_EnterStartsMeditation(t *testing.T) {
	h := newHarness()
	h.press("4", "right", "enter")
	if h.countdown.starts != 1 {
		t.Fatalf("countdown starts = %d, want 1", h.countdown.starts)
	}
	m := h.state().Meditation
	if !m.Running || m.ActivePreset != 1 {
		t.Errorf("meditation = %+v, want preset 1 running", m)
	}

	h.press("enter")
	if h.countdown.starts != 1 {
		t.Error("starting the running preset again should be ignored")
	}
}

func TestModel_SectionKeysAndBreathing(t *testing.T) {
	h := newHarness()
	h.press("4", "]")
	if got := h.state().Nav.MindfulnessSection; got != domain.SectionBreathing {
		t.Fatalf("section = %s, want breathing", got.Label())
	}
	h.press("enter")
	if h.breather.starts != 1 || !h.state().Breathing.Active {
		t.Error("enter should start the breathing exercise")
	}
	h.press("enter")
	if h.breather.starts != 1 {
		t.Error("enter while breathing should be ignored")
	}

	h.press("[", "[")
	if got := h.state().Nav.MindfulnessSection; got != domain.SectionEmergencyHelp {
		t.Errorf("section should wrap to emergency help, got %s", got.Label())
	}
}

func TestModel_TimerEventUpdatesClock(t *testing.T) {
	h := newHarness()
	h.press("4", "enter")
	token := h.state().Meditation.Token

	result, _ := h.model.Update(timerEventMsg{event: domain.MeditationTick{Token: token, Remaining: 299}})
	h.model = result.(Model)

	if got := h.state().Meditation.Display; got != "04:59" {
		t.Errorf("Display = %q, want 04:59", got)
	}
}

func TestModel_BreathFrameStartsAnimation(t *testing.T) {
	h := newHarness()
	h.press("4", "]")

	visual := domain.BreathVisual{
		FromScale:  domain.RestingScale,
		ToScale:    domain.ExpandedScale,
		Color:      domain.BreathGreen,
		Opacity:    1,
		Easing:     domain.EaseDecel,
		Transition: 4 * time.Second,
		StartedAt:  fixedNow,
	}
	frame := domain.BreathFrame{Phase: domain.PhaseInhale, Count: 4, Status: "Inhale 4", Color: domain.BreathGreen, Visual: visual}

	result, cmd := h.model.Update(timerEventMsg{event: frame})
	h.model = result.(Model)
	if !h.model.animating {
		t.Error("an easing frame should start the animation")
	}
	if cmd == nil {
		t.Error("an easing frame should schedule the next animation frame")
	}
	if got := h.state().Breathing.Status; got != "Inhale 4" {
		t.Errorf("Status = %q, want Inhale 4", got)
	}

	result, cmd = h.model.Update(frameMsg(fixedNow))
	h.model = result.(Model)
	if cmd == nil {
		t.Error("frames should continue while the circle moves")
	}

	h.model.now = func() time.Time { return fixedNow.Add(5 * time.Second) }
	result, cmd = h.model.Update(frameMsg(fixedNow))
	h.model = result.(Model)
	if cmd != nil || h.model.animating {
		t.Error("frames should stop once the transition ends")
	}
}

func TestModel_HelpToggle(t *testing.T) {
	h := newHarness()
	h.press("?")
	if !h.model.help.ShowAll {
		t.Error("[?] should expand the help")
	}
	h.press("?")
	if h.model.help.ShowAll {
		t.Error("second [?] should collapse the help")
	}
}
