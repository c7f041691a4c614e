package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
)

// addDialog collects the label and category of a new habit.
type addDialog struct {
	input    textinput.Model
	category int
}

func newAddDialog() addDialog {
	ti := textinput.New()
	ti.Placeholder = "e.g. Evening walk"
	ti.CharLimit = 60
	ti.Width = 36
	ti.Prompt = "› "
	return addDialog{input: ti, category: len(domain.Categories) - 1}
}

// open resets the dialog and focuses the input.
func (d *addDialog) open() tea.Cmd {
	d.input.Reset()
	d.category = len(domain.Categories) - 1
	return d.input.Focus()
}

func (d *addDialog) close() {
	d.input.Blur()
}

func (d *addDialog) selectedCategory() domain.Category {
	return domain.Categories[d.category]
}

// cycleCategory moves the picker by delta, wrapping around.
func (d *addDialog) cycleCategory(delta int) {
	n := len(domain.Categories)
	d.category = ((d.category+delta)%n + n) % n
}

func (d *addDialog) label() string {
	return strings.TrimSpace(d.input.Value())
}

func (d addDialog) view(st styles) string {
	cats := make([]string, 0, len(domain.Categories))
	for i, c := range domain.Categories {
		if i == d.category {
			cats = append(cats, st.selected.Render(string(c)))
		} else {
			cats = append(cats, st.subtle.Render(string(c)))
		}
	}
	return st.card.BorderForeground(lipgloss.Color(st.theme.ColorAccent)).Render(
		lipgloss.JoinVertical(lipgloss.Left,
			st.subtitle.Render("Add Habit"),
			d.input.View(),
			"",
			st.muted.Render("Category: ")+strings.Join(cats, st.subtle.Render(" · ")),
			"",
			st.subtle.Render("enter save · ↑/↓ category · esc cancel"),
		))
}
