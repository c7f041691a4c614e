package tui

import (
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"

	"github.com/xvierd/zenith/internal/domain"
)

// keyMap holds every binding of the app.
type keyMap struct {
	Dashboard   key.Binding
	Movement    key.Binding
	Sleep       key.Binding
	Mindfulness key.Binding
	NextTab     key.Binding
	PrevTab     key.Binding
	Quit        key.Binding
	Dismiss     key.Binding
	Help        key.Binding

	Up     key.Binding
	Down   key.Binding
	Left   key.Binding
	Right  key.Binding
	Toggle key.Binding
	Add    key.Binding
	Delete key.Binding
	Filter key.Binding

	History  key.Binding
	LogNight key.Binding

	PrevSection key.Binding
	NextSection key.Binding
	Start       key.Binding
}

func defaultKeyMap() keyMap {
	return keyMap{
		Dashboard:   key.NewBinding(key.WithKeys("1"), key.WithHelp("1", "dashboard")),
		Movement:    key.NewBinding(key.WithKeys("2"), key.WithHelp("2", "movement")),
		Sleep:       key.NewBinding(key.WithKeys("3"), key.WithHelp("3", "sleep")),
		Mindfulness: key.NewBinding(key.WithKeys("4"), key.WithHelp("4", "mindfulness")),
		NextTab:     key.NewBinding(key.WithKeys("tab"), key.WithHelp("tab", "next page")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab"), key.WithHelp("shift+tab", "prev page")),
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Dismiss:     key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "dismiss")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "more keys")),

		Up:     key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:   key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		Left:   key.NewBinding(key.WithKeys("left"), key.WithHelp("←", "less")),
		Right:  key.NewBinding(key.WithKeys("right"), key.WithHelp("→", "more")),
		Toggle: key.NewBinding(key.WithKeys(" ", "enter"), key.WithHelp("space", "toggle")),
		Add:    key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "add habit")),
		Delete: key.NewBinding(key.WithKeys("d", "x"), key.WithHelp("d", "delete")),
		Filter: key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter")),

		History:  key.NewBinding(key.WithKeys("h"), key.WithHelp("h", "history")),
		LogNight: key.NewBinding(key.WithKeys("l"), key.WithHelp("l", "log night")),

		PrevSection: key.NewBinding(key.WithKeys("["), key.WithHelp("[", "prev section")),
		NextSection: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "next section")),
		Start:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "start")),
	}
}

// pageHelp adapts the bindings of one page to help.KeyMap.
type pageHelp struct {
	page   []key.Binding
	global []key.Binding
}

var _ help.KeyMap = pageHelp{}

func (h pageHelp) ShortHelp() []key.Binding {
	return append(append([]key.Binding{}, h.page...), h.global[len(h.global)-2:]...)
}

func (h pageHelp) FullHelp() [][]key.Binding {
	return [][]key.Binding{h.page, h.global}
}

// helpFor returns the help entries for the visible page.
func (k keyMap) helpFor(nav domain.NavigationState) pageHelp {
	global := []key.Binding{k.Dashboard, k.Movement, k.Sleep, k.Mindfulness, k.NextTab, k.Dismiss, k.Help, k.Quit}

	var page []key.Binding
	switch nav.Tab {
	case domain.TabMovement:
		page = []key.Binding{k.Up, k.Down, k.Toggle, k.Add, k.Delete, k.Filter}
	case domain.TabSleep:
		if nav.ShowSleepHistory {
			page = []key.Binding{k.Left, k.Right, k.History}
		} else {
			page = []key.Binding{k.Up, k.Down, k.Left, k.Right, k.LogNight, k.History}
		}
	case domain.TabMindfulness:
		page = []key.Binding{k.PrevSection, k.NextSection, k.Left, k.Right, k.Start}
	}
	return pageHelp{page: page, global: global}
}
