package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
)

// mindfulnessView returns the static head, the live widget and the hint
// line of the mindfulness page.
func (b *ViewBuilder) mindfulnessView(state *domain.AppState) (head, widget, tail string, err error) {
	tabs := make([]string, 0, len(domain.MindfulnessSections))
	for _, s := range domain.MindfulnessSections {
		if s == state.Nav.MindfulnessSection {
			tabs = append(tabs, b.st.tabOn.Render(s.Label()))
		} else {
			tabs = append(tabs, b.st.tab.Render(s.Label()))
		}
	}
	head = lipgloss.JoinVertical(lipgloss.Left,
		b.heading("Mindfulness"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
	)

	switch state.Nav.MindfulnessSection {
	case domain.SectionMeditation:
		widget = b.meditationWidget(state)
		tail = b.hint("[/] section", "←/→ preset", "enter start")
	case domain.SectionBreathing:
		widget = b.breathingWidget(state)
		tail = b.hint("[/] section", "enter begin")
	case domain.SectionEmergencyHelp:
		widget = b.emergencyView(state)
		tail = b.hint("[/] section")
	default:
		return "", "", "", fmt.Errorf("unknown mindfulness section %d", int(state.Nav.MindfulnessSection))
	}
	return head, widget, tail, nil
}

func (b *ViewBuilder) meditationWidget(state *domain.AppState) string {
	m := state.Meditation
	color := lipgloss.Color(b.st.theme.ColorAccent)
	if m.Display == domain.MeditationDoneText {
		color = lipgloss.Color(b.st.theme.ColorSuccess)
	}
	clock := renderBigClock(m.Display, color, b.innerWidth())

	presets := make([]string, 0, len(state.Presets))
	for i, p := range state.Presets {
		label := "[ " + p.Name + " ]"
		switch {
		case m.PresetDisabled(i):
			presets = append(presets, b.st.subtle.Render(label+" running"))
		case i == state.Selection.MeditationPreset:
			presets = append(presets, b.st.selected.Render(label))
		default:
			presets = append(presets, b.st.muted.Render(label))
		}
	}

	status := b.st.muted.Render("Choose a session length")
	if m.Running {
		status = b.st.info.Render("Breathe in, breathe out...")
	}

	return lipgloss.JoinVertical(lipgloss.Center,
		clock,
		"",
		status,
		lipgloss.JoinHorizontal(lipgloss.Top, joinSpaced(presets)...),
		"",
	)
}

func (b *ViewBuilder) breathingWidget(state *domain.AppState) string {
	br := state.Breathing
	v := br.Visual
	circle := renderCircle(v.ScaleAt(b.now()), v.Color, v.Opacity)
	status := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(br.StatusColor)).Render(br.Status)
	return lipgloss.JoinVertical(lipgloss.Center,
		circle,
		"",
		status,
		b.st.subtle.Render("4-7-8 breathing: inhale 4, hold 7, release 8"),
		"",
	)
}

func (b *ViewBuilder) emergencyView(state *domain.AppState) string {
	lines := []string{
		b.st.muted.Render("You are not alone. Reach out any time."),
		"",
	}
	for _, c := range state.Contacts {
		icon := "✉"
		if c.Kind == "phone" {
			icon = "☎"
		}
		lines = append(lines, b.st.card.Width(min(b.innerWidth(), 48)).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				b.st.title.Render(icon+" "+c.Name),
				b.st.accent.Render(c.Contact),
				b.st.subtle.Render(c.Description),
			)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func joinSpaced(items []string) []string {
	out := make([]string, 0, len(items)*2)
	for i, it := range items {
		if i > 0 {
			out = append(out, "  ")
		}
		out = append(out, it)
	}
	return out
}
