package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/config"
	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
)

// View builder errors.
var (
	ErrUnknownTab    = errors.New("unknown tab")
	ErrUnknownTarget = errors.New("unknown render target")
)

const (
	defaultPageWidth  = 80
	defaultPageHeight = 24
)

// ViewBuilder implements ports.Renderer. It keeps the last rendered page so
// the mindfulness widgets can be redrawn without rebuilding the rest.
type ViewBuilder struct {
	st     styles
	width  int
	height int
	now    func() time.Time

	head   string
	widget string
	tail   string
	bg     domain.Background
	page   string
}

// NewViewBuilder creates a builder using theme; nil means the default theme.
func NewViewBuilder(theme *config.ThemeConfig) *ViewBuilder {
	return &ViewBuilder{
		st:     newStyles(resolveTheme(theme)),
		width:  defaultPageWidth,
		height: defaultPageHeight,
		now:    time.Now,
	}
}

// SetSize sets the page area in cells.
func (b *ViewBuilder) SetSize(width, height int) {
	if width > 0 {
		b.width = width
	}
	if height > 0 {
		b.height = height
	}
}

// Page returns the last rendered page.
func (b *ViewBuilder) Page() string {
	return b.page
}

// Render rebuilds the page of the active tab from scratch.
func (b *ViewBuilder) Render(state *domain.AppState) error {
	var (
		head, widget, tail string
		err                error
	)
	switch state.Nav.Tab {
	case domain.TabDashboard:
		head = b.dashboardView(state)
	case domain.TabMovement:
		head = b.movementView(state)
	case domain.TabSleep:
		if state.Nav.ShowSleepHistory {
			head = b.historyView(state)
		} else {
			head = b.sleepView(state)
		}
	case domain.TabMindfulness:
		head, widget, tail, err = b.mindfulnessView(state)
	default:
		return fmt.Errorf("%w: %d", ErrUnknownTab, int(state.Nav.Tab))
	}
	if err != nil {
		return err
	}

	b.head, b.widget, b.tail = head, widget, tail
	b.bg = state.Background
	b.compose()
	return nil
}

// RenderTarget rebuilds one mindfulness widget. Targets not shown in the
// current section are skipped.
func (b *ViewBuilder) RenderTarget(target ports.Target, state *domain.AppState) error {
	section := state.Nav.MindfulnessSection
	switch target {
	case ports.TargetMeditationClock:
		if state.Nav.Tab != domain.TabMindfulness || section != domain.SectionMeditation {
			return nil
		}
		b.widget = b.meditationWidget(state)
	case ports.TargetBreathingWidget:
		if state.Nav.Tab != domain.TabMindfulness || section != domain.SectionBreathing {
			return nil
		}
		b.widget = b.breathingWidget(state)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownTarget, target)
	}
	b.compose()
	return nil
}

func (b *ViewBuilder) compose() {
	parts := []string{b.head}
	if b.widget != "" {
		parts = append(parts, b.widget)
	}
	if b.tail != "" {
		parts = append(parts, b.tail)
	}
	body := lipgloss.JoinVertical(lipgloss.Left, parts...)

	frame := b.st.card.
		BorderForeground(borderTint(b.bg)).
		Width(max(b.width-2, 10))
	b.page = lipgloss.JoinVertical(lipgloss.Left,
		gradientRibbon(b.bg, b.width),
		frame.Render(body),
	)
}

// innerWidth is the usable width inside the page frame.
func (b *ViewBuilder) innerWidth() int {
	return max(b.width-4, 10)
}

func (b *ViewBuilder) heading(title string) string {
	return b.st.title.Render(title)
}

func (b *ViewBuilder) hint(parts ...string) string {
	return b.st.subtle.Render(strings.Join(parts, " · "))
}

// formatHoursShort renders 7 as "7h" and 7.5 as "7.5h".
func formatHoursShort(h float64) string {
	if h == float64(int(h)) {
		return fmt.Sprintf("%dh", int(h))
	}
	return fmt.Sprintf("%.1fh", h)
}

// Ensure ViewBuilder implements ports.Renderer.
var _ ports.Renderer = (*ViewBuilder)(nil)
