package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
)

const (
	sliderWidth      = 24
	weekChartHeight  = 8
	weekChartBarCell = "██"
)

func (b *ViewBuilder) sleepView(state *domain.AppState) string {
	s := state.Sleep
	focus := state.Selection.SleepField
	advice := domain.AdviseNap(s.NapHours)

	rows := []string{
		b.heading("Sleep Tracker"),
		"",
		b.sleepRow(focus == domain.FieldSleepHours, "Duration",
			b.slider(s.SleepHours/domain.MaxSleepHours)+"  "+b.st.title.Render(domain.FormatSleepHours(s.SleepHours))),
		b.sleepRow(focus == domain.FieldBedtime, "Bedtime", b.st.title.Render(domain.FormatTimeOfDay(s.Bedtime, "--:--"))),
		b.sleepRow(focus == domain.FieldWakeup, "Wake-up", b.st.title.Render(domain.FormatTimeOfDay(s.Wakeup, "--:--"))),
	}

	if adv, risky := domain.AdviseSchedule(s.Bedtime, s.Wakeup); risky {
		banner := b.st.card.BorderForeground(lipgloss.Color(b.st.theme.ColorWarning)).Render(
			lipgloss.JoinVertical(lipgloss.Left,
				b.st.warning.Bold(true).Render("⚠ "+adv.Title),
				b.st.text.Render(adv.Detail),
				b.st.muted.Render(adv.Tip),
			))
		rows = append(rows, banner)
	}

	quality := float64(s.SleepQuality-domain.MinSleepQuality) / float64(domain.MaxSleepQuality-domain.MinSleepQuality)
	rows = append(rows,
		b.sleepRow(focus == domain.FieldQuality, "Quality",
			b.slider(quality)+"  "+b.st.title.Render(domain.QualityLabel(s.SleepQuality))),
		"             "+b.st.muted.Render(domain.QualityDescription(s.SleepQuality)),
		b.sleepRow(focus == domain.FieldNap, "Nap",
			b.slider(s.NapHours/domain.MaxNapHours)+"  "+b.st.title.Render(advice.Label)),
	)
	if advice.Message != "" {
		rows = append(rows, "             "+b.st.severity(advice.Severity).Render(advice.Message))
	}

	rows = append(rows,
		"",
		b.st.accent.Italic(true).Render(state.SleepQuote),
		"",
		b.hint("↑/↓ field", "←/→ adjust", "l log night", "h history"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *ViewBuilder) sleepRow(focused bool, label, value string) string {
	cursor := "  "
	name := b.st.muted.Render(fmt.Sprintf("%-10s", label))
	if focused {
		cursor = b.st.selected.Render("> ")
		name = b.st.selected.Render(fmt.Sprintf("%-10s", label))
	}
	return cursor + name + " " + value
}

func (b *ViewBuilder) slider(frac float64) string {
	bar := progress.New(
		progress.WithSolidFill(b.st.theme.ColorAccent),
		progress.WithoutPercentage(),
	)
	bar.Width = sliderWidth
	return bar.ViewAs(min(max(frac, 0), 1))
}

func (b *ViewBuilder) historyView(state *domain.AppState) string {
	tabs := make([]string, 0, len(domain.HistoryRanges))
	for _, r := range domain.HistoryRanges {
		if r == state.Nav.HistoryRange {
			tabs = append(tabs, b.st.tabOn.Render(r.Label()))
		} else {
			tabs = append(tabs, b.st.tab.Render(r.Label()))
		}
	}

	var body string
	switch state.Nav.HistoryRange {
	case domain.HistoryWeek:
		body = b.weekChart(domain.LastNights(state.History, 7))
	case domain.HistoryMonth:
		body = b.monthSummary(domain.LastNights(state.History, 30))
	default:
		body = b.recentNights(domain.LastNights(state.History, 2))
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		b.heading("Sleep History"),
		lipgloss.JoinHorizontal(lipgloss.Top, tabs...),
		"",
		body,
		"",
		b.hint("←/→ range", "h back"),
	)
}

func (b *ViewBuilder) recentNights(nights []domain.SleepEntry) string {
	if len(nights) == 0 {
		return b.st.subtle.Render("No nights logged yet.")
	}
	cards := make([]string, 0, len(nights))
	for i := len(nights) - 1; i >= 0; i-- {
		n := nights[i]
		lines := []string{
			b.st.muted.Render(n.Date.Format("Mon 02 Jan")),
			b.st.title.Render(formatHoursShort(n.Hours)),
			b.st.subtle.Render(fmt.Sprintf("%s - %s",
				domain.FormatTimeOfDay(n.Bedtime, "--:--"),
				domain.FormatTimeOfDay(n.Wakeup, "--:--"))),
			b.st.accent.Render(domain.QualityLabel(n.Quality)),
		}
		if n.NapMinutes > 0 {
			lines = append(lines, b.st.subtle.Render(fmt.Sprintf("Nap %d min", n.NapMinutes)))
		}
		cards = append(cards, b.st.card.Width(22).Render(lipgloss.JoinVertical(lipgloss.Left, lines...)), " ")
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cards...)
}

func (b *ViewBuilder) tierStyle(t domain.BarTier) lipgloss.Style {
	switch t {
	case domain.BarRested:
		return b.st.success
	case domain.BarShort:
		return b.st.danger
	default:
		return b.st.warning
	}
}

// weekChart draws one vertical bar per night, scaled to a 10 hour axis.
func (b *ViewBuilder) weekChart(nights []domain.SleepEntry) string {
	if len(nights) == 0 {
		return b.st.subtle.Render("No nights logged yet.")
	}
	heights := make([]int, len(nights))
	for i, n := range nights {
		heights[i] = int(domain.BarFraction(n.Hours)*weekChartHeight + 0.5)
	}

	var rows []string
	for level := weekChartHeight; level >= 1; level-- {
		var sb strings.Builder
		for i, n := range nights {
			if heights[i] >= level {
				sb.WriteString(b.tierStyle(domain.TierFor(n.Hours)).Render(weekChartBarCell))
			} else {
				sb.WriteString("  ")
			}
			sb.WriteString("  ")
		}
		rows = append(rows, sb.String())
	}

	var hours, days strings.Builder
	for _, n := range nights {
		hours.WriteString(fmt.Sprintf("%-4s", formatHoursShort(n.Hours)))
		days.WriteString(fmt.Sprintf("%-4s", n.Date.Format("Mon")[:2]))
	}
	rows = append(rows, b.st.muted.Render(hours.String()), b.st.subtle.Render(days.String()))
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (b *ViewBuilder) monthSummary(nights []domain.SleepEntry) string {
	stats := domain.Stats(nights)
	if stats.Nights == 0 {
		return b.st.subtle.Render("No nights logged yet.")
	}
	left := b.statCard("Avg Sleep", fmt.Sprintf("%.1f h", stats.AvgHours), fmt.Sprintf("%d nights", stats.Nights))
	right := b.statCard("Avg Quality", fmt.Sprintf("%.1f / %d", stats.AvgQuality, domain.MaxSleepQuality),
		domain.QualityLabel(int(stats.AvgQuality+0.5)))
	return lipgloss.JoinHorizontal(lipgloss.Top, left, " ", right)
}
