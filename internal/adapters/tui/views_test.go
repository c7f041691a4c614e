package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/config"
	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
)

var fixedNow = time.Date(2026, 10, 14, 9, 30, 0, 0, time.UTC)

func testBuilder() *ViewBuilder {
	b := NewViewBuilder(nil)
	b.now = func() time.Time { return fixedNow }
	return b
}

func testState() *domain.AppState {
	return domain.NewAppState(domain.DefaultContent(fixedNow))
}

func TestViewBuilder_RenderEachTab(t *testing.T) {
	tests := []struct {
		tab  domain.Tab
		want string
	}{
		{domain.TabDashboard, "Daily Progress"},
		{domain.TabMovement, "Habits & Movement"},
		{domain.TabSleep, "Sleep Tracker"},
		{domain.TabMindfulness, "Mindfulness"},
	}

	for _, tt := range tests {
		t.Run(tt.tab.Label(), func(t *testing.T) {
			b := testBuilder()
			state := testState()
			state.Nav.Tab = tt.tab
			state.Background = domain.BackgroundFor(tt.tab)

			if err := b.Render(state); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if !strings.Contains(b.Page(), tt.want) {
				t.Errorf("page for %s should contain %q", tt.tab.Label(), tt.want)
			}
		})
	}
}

func TestViewBuilder_RenderSleepHistory(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.Nav.Tab = domain.TabSleep
	state.Nav.ShowSleepHistory = true

	for _, r := range domain.HistoryRanges {
		state.Nav.HistoryRange = r
		if err := b.Render(state); err != nil {
			t.Fatalf("Render(%s) error = %v", r.Label(), err)
		}
		if !strings.Contains(b.Page(), "Sleep History") {
			t.Errorf("history page for %s should contain the heading", r.Label())
		}
	}
}

func TestViewBuilder_RenderEmptyHistory(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.History = nil
	state.Nav.Tab = domain.TabSleep
	state.Nav.ShowSleepHistory = true

	if err := b.Render(state); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if !strings.Contains(b.Page(), "No nights logged yet.") {
		t.Error("empty history should show the placeholder")
	}
}

func TestViewBuilder_RenderUnknownTab(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.Nav.Tab = domain.Tab(9)

	err := b.Render(state)
	if !errors.Is(err, ErrUnknownTab) {
		t.Errorf("Render() error = %v, want ErrUnknownTab", err)
	}
}

func TestViewBuilder_RenderTarget_SkipsHiddenWidget(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.Nav.Tab = domain.TabMindfulness
	state.Nav.MindfulnessSection = domain.SectionEmergencyHelp
	if err := b.Render(state); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	before := b.Page()

	state.Meditation.Display = "04:59"
	if err := b.RenderTarget(ports.TargetMeditationClock, state); err != nil {
		t.Fatalf("RenderTarget() error = %v", err)
	}
	if b.Page() != before {
		t.Error("RenderTarget should not touch the page when the widget is hidden")
	}
}

func TestViewBuilder_RenderTarget_UpdatesWidgetOnly(t *testing.T) {
	b := testBuilder()
	b.SetSize(20, 24)
	state := testState()
	state.Nav.Tab = domain.TabMindfulness
	if err := b.Render(state); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	head := b.head

	state.Meditation.Display = "04:59"
	if err := b.RenderTarget(ports.TargetMeditationClock, state); err != nil {
		t.Fatalf("RenderTarget() error = %v", err)
	}
	if b.head != head {
		t.Error("RenderTarget should keep the page head")
	}
	if !strings.Contains(b.Page(), "04:59") {
		t.Error("page should show the new clock")
	}
}

func TestViewBuilder_RenderTarget_Unknown(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.Nav.Tab = domain.TabMindfulness

	err := b.RenderTarget(ports.Target("calendar"), state)
	if !errors.Is(err, ErrUnknownTarget) {
		t.Errorf("RenderTarget() error = %v, want ErrUnknownTarget", err)
	}
}

func TestViewBuilder_EmergencyContacts(t *testing.T) {
	b := testBuilder()
	state := testState()
	state.Nav.Tab = domain.TabMindfulness
	state.Nav.MindfulnessSection = domain.SectionEmergencyHelp

	if err := b.Render(state); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	for _, c := range state.Contacts {
		if !strings.Contains(b.Page(), c.Contact) {
			t.Errorf("page should list contact %q", c.Contact)
		}
	}
}

func TestResolveTheme_FillsEmptyFields(t *testing.T) {
	theme := &config.ThemeConfig{ColorAccent: "#123456"}
	got := resolveTheme(theme)
	want := config.DefaultThemeConfig()

	if got.ColorAccent != "#123456" {
		t.Errorf("ColorAccent = %q, want the override", got.ColorAccent)
	}
	if got.ColorDanger != want.ColorDanger {
		t.Errorf("ColorDanger = %q, want default %q", got.ColorDanger, want.ColorDanger)
	}
	if resolveTheme(nil) != want {
		t.Error("resolveTheme(nil) should return the default theme")
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"#0f0c29", "#0f0c29"},
		{"#FF00AA69", "#00aa69"},
		{"#0000AA69", "#121212"},
		{"not-a-color", "#121212"},
		{"#FZ00AA69", "#121212"},
		{"#FF00AAZZ", "#121212"},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := parseColor(tt.in).Hex(); got != tt.want {
				t.Errorf("parseColor(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestRenderBigClock(t *testing.T) {
	color := lipgloss.Color("#FFFFFF")

	big := renderBigClock("09:59", color, 80)
	if n := strings.Count(big, "\n"); n != 4 {
		t.Errorf("wide clock should have 5 lines, got %d", n+1)
	}

	narrow := renderBigClock("09:59", color, 20)
	if strings.Contains(narrow, "\n") || !strings.Contains(narrow, "09:59") {
		t.Errorf("narrow clock should fall back to plain text, got %q", narrow)
	}

	if got := renderBigClock("Done!", color, 80); strings.Count(got, "\n") != 4 {
		t.Error("Done! should render in block glyphs")
	}

	if got := renderBigClock("?", color, 80); strings.Contains(got, "\n") {
		t.Error("unknown characters should fall back to plain text")
	}
}

func TestRenderCircle_GrowsWithScale(t *testing.T) {
	small := renderCircle(0.5, domain.BreathGreen, 0.6)
	large := renderCircle(1.0, domain.BreathGreen, 1.0)
	if small == "" || large == "" {
		t.Fatal("renderCircle should draw something")
	}
	if circleRadius(0.5) >= circleRadius(1.0) {
		t.Error("radius should grow with scale")
	}
}

func TestFormatHoursShort(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{7, "7h"},
		{7.5, "7.5h"},
		{0, "0h"},
	}
	for _, tt := range tests {
		if got := formatHoursShort(tt.in); got != tt.want {
			t.Errorf("formatHoursShort(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
