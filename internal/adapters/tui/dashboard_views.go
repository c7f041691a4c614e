package tui

import (
	"fmt"
	"math"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
)

const upNextCount = 3

func (b *ViewBuilder) dashboardView(state *domain.AppState) string {
	now := b.now()
	done, total, frac := domain.HabitProgress(state.Habits)

	greeting := b.heading(domain.Greeting(now.Hour()))
	date := b.st.muted.Render(now.Format("Monday, 02 January"))

	sleepCard := b.statCard("Sleep", formatHoursShort(state.Sleep.SleepHours), sleepWindow(state.Sleep))
	focusCard := b.statCard("Focus", fmt.Sprintf("%d%%", int(math.Round(frac*100))), "habits done")
	cards := lipgloss.JoinHorizontal(lipgloss.Top, sleepCard, " ", focusCard)

	bar := progress.New(
		progress.WithGradient(b.st.theme.ColorHighlight, b.st.theme.ColorAccent),
		progress.WithoutPercentage(),
	)
	bar.Width = b.innerWidth() - 2

	sections := []string{
		greeting,
		date,
		"",
		cards,
		"",
		b.st.subtitle.Render("Daily Progress"),
		bar.ViewAs(frac),
		b.st.muted.Render(fmt.Sprintf("%d of %d habits completed", done, total)),
		"",
		b.st.accent.Italic(true).Render(fmt.Sprintf("“%s”", state.Quote)),
		"",
		b.st.subtitle.Render("Up Next"),
	}

	next := domain.UpNext(state.Habits, upNextCount)
	if len(next) == 0 {
		sections = append(sections, b.st.success.Render("All caught up!"))
	}
	for _, h := range next {
		sections = append(sections, fmt.Sprintf("%s %s  %s",
			b.st.muted.Render("○"),
			b.st.text.Render(h.Label),
			b.st.subtle.Render(string(h.Category))))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *ViewBuilder) statCard(label, value, caption string) string {
	lines := []string{
		b.st.muted.Render(label),
		b.st.title.Render(value),
	}
	if caption != "" {
		lines = append(lines, b.st.subtle.Render(caption))
	}
	return b.st.card.Width(20).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}

// sleepWindow renders "(23:00 - 06:30)". A missing end shows "...".
func sleepWindow(s domain.SleepState) string {
	if s.Bedtime == nil && s.Wakeup == nil {
		return ""
	}
	return fmt.Sprintf("(%s - %s)",
		domain.FormatTimeOfDay(s.Bedtime, "..."),
		domain.FormatTimeOfDay(s.Wakeup, "..."))
}
