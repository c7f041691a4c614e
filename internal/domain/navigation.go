package domain

import "fmt"

// Tab is one of the four pages reachable from the navigation rail.
type Tab int

const (
	TabDashboard Tab = iota
	TabMovement
	TabSleep
	TabMindfulness
)

// Tabs lists the rail entries in order.
var Tabs = []Tab{TabDashboard, TabMovement, TabSleep, TabMindfulness}

// Valid reports whether t is a known tab.
func (t Tab) Valid() bool {
	return t >= TabDashboard && t <= TabMindfulness
}

// Label returns the rail label.
func (t Tab) Label() string {
	switch t {
	case TabDashboard:
		return "Dashboard"
	case TabMovement:
		return "Movement"
	case TabSleep:
		return "Sleep"
	case TabMindfulness:
		return "Mindfulness"
	default:
		return "Unknown"
	}
}

// ValidateTab converts an index into a Tab.
func ValidateTab(i int) (Tab, error) {
	t := Tab(i)
	if !t.Valid() {
		return 0, fmt.Errorf("%w: %d", ErrInvalidTab, i)
	}
	return t, nil
}

// MindfulnessSection is a sub tab of the mindfulness page.
type MindfulnessSection int

const (
	SectionMeditation MindfulnessSection = iota
	SectionBreathing
	SectionEmergencyHelp
)

// MindfulnessSections lists the sub tabs in order.
var MindfulnessSections = []MindfulnessSection{SectionMeditation, SectionBreathing, SectionEmergencyHelp}

// Label returns the sub tab title.
func (s MindfulnessSection) Label() string {
	switch s {
	case SectionMeditation:
		return "Meditation"
	case SectionBreathing:
		return "Breathing Exercise"
	case SectionEmergencyHelp:
		return "Emergency Help"
	default:
		return "Unknown"
	}
}

// NavigationState tracks which page is visible.
type NavigationState struct {
	Tab                Tab
	ShowSleepHistory   bool
	HistoryRange       HistoryRange
	MindfulnessSection MindfulnessSection
}

// BackgroundKind says whether a page is painted with a gradient or a flat color.
type BackgroundKind string

const (
	BackgroundGradient BackgroundKind = "gradient"
	BackgroundSolid    BackgroundKind = "solid"
)

// Background describes the page treatment for a tab. Colors are hex strings,
// either #RRGGBB or #AARRGGBB.
type Background struct {
	Kind   BackgroundKind
	Colors []string
}

// BaseColor is the app background behind every page.
const BaseColor = "#121212"

// BackgroundFor returns the page treatment for a tab.
func BackgroundFor(t Tab) Background {
	switch t {
	case TabDashboard:
		return Background{Kind: BackgroundGradient, Colors: []string{"#191186B9", "#1F21AD86", "#090F7AA7"}}
	case TabMovement:
		return Background{Kind: BackgroundGradient, Colors: []string{"#FF00AA69", "#FF006970"}}
	case TabSleep:
		return Background{Kind: BackgroundGradient, Colors: []string{"#0f0c29", "#302b63", "#24243e"}}
	default:
		return Background{Kind: BackgroundSolid, Colors: []string{BaseColor}}
	}
}
