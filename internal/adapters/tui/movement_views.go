package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/services"
)

func (b *ViewBuilder) movementView(state *domain.AppState) string {
	visible := services.FilterHabits(state.Habits, state.Selection.HabitFilter)
	todo, done := domain.SplitByDone(visible)

	colWidth := max((b.innerWidth()-2)/2, 16)
	todoCol := b.habitColumn(fmt.Sprintf("To Do (%d)", len(todo)), todo, state.Selection.HabitID, colWidth)
	doneCol := b.habitColumn(fmt.Sprintf("Done (%d)", len(done)), done, state.Selection.HabitID, colWidth)

	sections := []string{b.heading("Habits & Movement")}
	if q := state.Selection.HabitFilter; q != "" {
		sections = append(sections, b.st.accent.Render("Filter: "+q))
	}
	sections = append(sections,
		"",
		lipgloss.JoinHorizontal(lipgloss.Top, todoCol, "  ", doneCol),
		"",
		b.hint("↑/↓ move", "space toggle", "a add", "d delete", "/ filter"),
	)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (b *ViewBuilder) habitColumn(title string, habits []*domain.Habit, selectedID string, width int) string {
	lines := []string{b.st.subtitle.Render(title)}
	if len(habits) == 0 {
		lines = append(lines, b.st.subtle.Render("Nothing here"))
	}
	for _, h := range habits {
		box := "[ ]"
		label := b.st.text.Render(h.Label)
		if h.Done {
			box = "[x]"
			label = b.st.muted.Strikethrough(true).Render(h.Label)
		}
		cursor := "  "
		if h.ID == selectedID {
			cursor = b.st.selected.Render("> ")
			box = b.st.selected.Render(box)
		}
		lines = append(lines,
			cursor+box+" "+label,
			"      "+b.st.subtle.Render(string(h.Category)),
		)
	}
	return lipgloss.NewStyle().Width(width).Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
