// Package tui provides the terminal user interface implementation
// using the Bubbletea framework.
package tui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/domain"
	"github.com/xvierd/zenith/internal/ports"
	"github.com/xvierd/zenith/internal/services"
)

const (
	railWidth     = 18
	chromeHeight  = 3
	frameInterval = 50 * time.Millisecond
)

// timerEventMsg carries a value from a background countdown.
type timerEventMsg struct {
	event domain.TimerEvent
}

// frameMsg drives the breathing circle animation.
type frameMsg time.Time

// Model represents the TUI state. All AppState changes go through ctrl.
type Model struct {
	ctx    context.Context
	ctrl   *services.Controller
	views  *ViewBuilder
	events <-chan domain.TimerEvent
	keys   keyMap
	help   help.Model

	dialog     addDialog
	dialogOpen bool
	filter     textinput.Model
	filtering  bool

	width     int
	height    int
	animating bool
	now       func() time.Time
}

// NewModel creates a new TUI model and renders the first page.
func NewModel(ctx context.Context, ctrl *services.Controller, views *ViewBuilder, events <-chan domain.TimerEvent) Model {
	filter := textinput.New()
	filter.Prompt = "/ "
	filter.Placeholder = "filter habits"
	filter.CharLimit = 40

	m := Model{
		ctx:    ctx,
		ctrl:   ctrl,
		views:  views,
		events: events,
		keys:   defaultKeyMap(),
		help:   help.New(),
		dialog: newAddDialog(),
		filter: filter,
		now:    time.Now,
	}
	ctrl.Refresh()
	return m
}

// Init initializes the TUI.
func (m Model) Init() tea.Cmd {
	return waitForTimerEvent(m.events)
}

// waitForTimerEvent blocks on the event channel. A closed channel ends the
// listener.
func waitForTimerEvent(events <-chan domain.TimerEvent) tea.Cmd {
	if events == nil {
		return nil
	}
	return func() tea.Msg {
		ev, ok := <-events
		if !ok {
			return nil
		}
		return timerEventMsg{event: ev}
	}
}

// frameCmd schedules the next animation frame.
func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}

// Update handles messages and updates the model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.help.Width = msg.Width
		m.views.SetSize(msg.Width-railWidth, msg.Height-chromeHeight)
		m.ctrl.Refresh()
		return m, nil

	case timerEventMsg:
		m.ctrl.ApplyTimerEvent(msg.event)
		cmds := []tea.Cmd{waitForTimerEvent(m.events)}
		if _, ok := msg.event.(domain.BreathFrame); ok && !m.animating && m.breathAnimating() {
			m.animating = true
			cmds = append(cmds, frameCmd())
		}
		return m, tea.Batch(cmds...)

	case frameMsg:
		state := m.ctrl.State()
		if state.Nav.Tab == domain.TabMindfulness {
			_ = m.views.RenderTarget(ports.TargetBreathingWidget, state)
		}
		if m.breathAnimating() {
			return m, frameCmd()
		}
		m.animating = false
		return m, nil

	case tea.KeyMsg:
		switch {
		case m.dialogOpen:
			return m.updateDialog(msg)
		case m.filtering:
			return m.updateFilter(msg)
		}
		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) breathAnimating() bool {
	return m.ctrl.State().Breathing.Visual.Animating(m.now())
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	case key.Matches(msg, m.keys.Dismiss):
		if state.Notice != "" {
			m.ctrl.DismissNotice()
		} else if state.Nav.ShowSleepHistory {
			m.ctrl.ToggleSleepHistory()
		}
		return m, nil
	case key.Matches(msg, m.keys.Dashboard):
		_ = m.ctrl.Navigate(domain.TabDashboard)
		return m, nil
	case key.Matches(msg, m.keys.Movement):
		_ = m.ctrl.Navigate(domain.TabMovement)
		return m, nil
	case key.Matches(msg, m.keys.Sleep):
		_ = m.ctrl.Navigate(domain.TabSleep)
		return m, nil
	case key.Matches(msg, m.keys.Mindfulness):
		_ = m.ctrl.Navigate(domain.TabMindfulness)
		return m, nil
	case key.Matches(msg, m.keys.NextTab):
		_ = m.ctrl.Navigate(cycleTab(state.Nav.Tab, 1))
		return m, nil
	case key.Matches(msg, m.keys.PrevTab):
		_ = m.ctrl.Navigate(cycleTab(state.Nav.Tab, -1))
		return m, nil
	}

	switch state.Nav.Tab {
	case domain.TabMovement:
		return m.handleMovementKey(msg)
	case domain.TabSleep:
		return m.handleSleepKey(msg)
	case domain.TabMindfulness:
		return m.handleMindfulnessKey(msg)
	}
	return m, nil
}

func (m Model) handleMovementKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.MoveHabitCursor(-1)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.MoveHabitCursor(1)
	case key.Matches(msg, m.keys.Toggle):
		if h := m.ctrl.SelectedHabit(); h != nil {
			_ = m.ctrl.ToggleHabit(h.ID, !h.Done)
		}
	case key.Matches(msg, m.keys.Delete):
		if h := m.ctrl.SelectedHabit(); h != nil {
			_ = m.ctrl.DeleteHabit(h.ID)
		}
	case key.Matches(msg, m.keys.Add):
		m.dialogOpen = true
		return m, m.dialog.open()
	case key.Matches(msg, m.keys.Filter):
		m.filtering = true
		m.filter.SetValue(m.ctrl.State().Selection.HabitFilter)
		return m, m.filter.Focus()
	}
	return m, nil
}

func (m Model) handleSleepKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()
	if state.Nav.ShowSleepHistory {
		switch {
		case key.Matches(msg, m.keys.Left):
			m.ctrl.SelectHistoryRange(cycleRange(state.Nav.HistoryRange, -1))
		case key.Matches(msg, m.keys.Right):
			m.ctrl.SelectHistoryRange(cycleRange(state.Nav.HistoryRange, 1))
		case key.Matches(msg, m.keys.History):
			m.ctrl.ToggleSleepHistory()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.Up):
		m.ctrl.FocusSleepField(-1)
	case key.Matches(msg, m.keys.Down):
		m.ctrl.FocusSleepField(1)
	case key.Matches(msg, m.keys.Left):
		m.ctrl.AdjustSleepField(-1)
	case key.Matches(msg, m.keys.Right):
		m.ctrl.AdjustSleepField(1)
	case key.Matches(msg, m.keys.History):
		m.ctrl.ToggleSleepHistory()
	case key.Matches(msg, m.keys.LogNight):
		m.ctrl.LogSleep(m.now())
	}
	return m, nil
}

func (m Model) handleMindfulnessKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	state := m.ctrl.State()
	switch {
	case key.Matches(msg, m.keys.PrevSection):
		m.ctrl.SelectMindfulnessSection(cycleSection(state.Nav.MindfulnessSection, -1))
		return m, nil
	case key.Matches(msg, m.keys.NextSection):
		m.ctrl.SelectMindfulnessSection(cycleSection(state.Nav.MindfulnessSection, 1))
		return m, nil
	}

	switch state.Nav.MindfulnessSection {
	case domain.SectionMeditation:
		switch {
		case key.Matches(msg, m.keys.Left):
			m.ctrl.SelectMeditationPreset(state.Selection.MeditationPreset - 1)
		case key.Matches(msg, m.keys.Right):
			m.ctrl.SelectMeditationPreset(state.Selection.MeditationPreset + 1)
		case key.Matches(msg, m.keys.Start):
			if err := m.ctrl.StartMeditation(m.ctx, state.Selection.MeditationPreset); err != nil {
				state.Notice = err.Error()
			}
		}
	case domain.SectionBreathing:
		if key.Matches(msg, m.keys.Start) {
			if err := m.ctrl.StartBreathing(m.ctx); err != nil {
				state.Notice = err.Error()
			}
		}
	}
	return m, nil
}

func (m Model) updateDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog.close()
		m.dialogOpen = false
		return m, nil
	case "enter":
		label := m.dialog.label()
		if label == "" {
			return m, nil
		}
		_, _ = m.ctrl.AddHabit(label, m.dialog.selectedCategory())
		m.dialog.close()
		m.dialogOpen = false
		return m, nil
	case "up":
		m.dialog.cycleCategory(-1)
		return m, nil
	case "down":
		m.dialog.cycleCategory(1)
		return m, nil
	}

	var cmd tea.Cmd
	m.dialog.input, cmd = m.dialog.input.Update(msg)
	return m, cmd
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.filter.Blur()
		m.filtering = false
		m.ctrl.SetHabitFilter("")
		return m, nil
	case "enter":
		m.filter.Blur()
		m.filtering = false
		return m, nil
	}

	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	if m.filter.Value() != m.ctrl.State().Selection.HabitFilter {
		m.ctrl.SetHabitFilter(m.filter.Value())
	}
	return m, cmd
}

// View renders the TUI.
func (m Model) View() string {
	state := m.ctrl.State()
	st := m.views.st

	main := m.views.Page()
	if m.dialogOpen {
		main = lipgloss.JoinVertical(lipgloss.Left, main, m.dialog.view(st))
	}
	if m.filtering {
		main = lipgloss.JoinVertical(lipgloss.Left, main, m.filter.View())
	}

	sections := []string{lipgloss.JoinHorizontal(lipgloss.Top, m.railView(state.Nav.Tab), main)}
	if state.Notice != "" {
		sections = append(sections, st.notice.Render(state.Notice))
	}
	sections = append(sections, m.help.View(m.keys.helpFor(state.Nav)))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) railView(active domain.Tab) string {
	st := m.views.st
	items := []string{st.subtitle.Render(" ☯ Zenith"), ""}
	for i, t := range domain.Tabs {
		label := string(rune('1'+i)) + " " + t.Label()
		if t == active {
			items = append(items, st.railOn.Width(railWidth-2).Render(label))
		} else {
			items = append(items, st.railItem.Width(railWidth-2).Render(label))
		}
	}
	return lipgloss.NewStyle().Width(railWidth).Render(lipgloss.JoinVertical(lipgloss.Left, items...))
}

func cycleTab(t domain.Tab, delta int) domain.Tab {
	n := len(domain.Tabs)
	return domain.Tabs[((int(t)+delta)%n+n)%n]
}

func cycleSection(s domain.MindfulnessSection, delta int) domain.MindfulnessSection {
	n := len(domain.MindfulnessSections)
	return domain.MindfulnessSections[((int(s)+delta)%n+n)%n]
}

func cycleRange(r domain.HistoryRange, delta int) domain.HistoryRange {
	n := len(domain.HistoryRanges)
	return domain.HistoryRanges[((int(r)+delta)%n+n)%n]
}
