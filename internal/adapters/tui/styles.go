package tui

import (
	"reflect"

	"github.com/charmbracelet/lipgloss"

	"github.com/xvierd/zenith/internal/config"
	"github.com/xvierd/zenith/internal/domain"
)

// resolveTheme fills any empty string fields in the given ThemeConfig with defaults.
// If theme is nil, returns the full default theme.
func resolveTheme(theme *config.ThemeConfig) config.ThemeConfig {
	defaults := config.DefaultThemeConfig()
	if theme == nil {
		return defaults
	}
	resolved := *theme
	rv := reflect.ValueOf(&resolved).Elem()
	dv := reflect.ValueOf(defaults)
	for i := 0; i < rv.NumField(); i++ {
		f := rv.Field(i)
		if f.Kind() == reflect.String && f.String() == "" {
			f.SetString(dv.Field(i).String())
		}
	}
	return resolved
}

// styles are the lipgloss styles derived from a theme.
type styles struct {
	theme config.ThemeConfig

	title    lipgloss.Style
	subtitle lipgloss.Style
	text     lipgloss.Style
	muted    lipgloss.Style
	subtle   lipgloss.Style
	accent   lipgloss.Style
	success  lipgloss.Style
	warning  lipgloss.Style
	danger   lipgloss.Style
	info     lipgloss.Style
	card     lipgloss.Style
	selected lipgloss.Style
	notice   lipgloss.Style
	railItem lipgloss.Style
	railOn   lipgloss.Style
	tab      lipgloss.Style
	tabOn    lipgloss.Style
}

func newStyles(theme config.ThemeConfig) styles {
	c := func(s string) lipgloss.Color { return lipgloss.Color(s) }
	return styles{
		theme:    theme,
		title:    lipgloss.NewStyle().Bold(true).Foreground(c(theme.ColorText)),
		subtitle: lipgloss.NewStyle().Bold(true).Foreground(c(theme.ColorAccent)),
		text:     lipgloss.NewStyle().Foreground(c(theme.ColorText)),
		muted:    lipgloss.NewStyle().Foreground(c(theme.ColorMuted)),
		subtle:   lipgloss.NewStyle().Foreground(c(theme.ColorSubtle)),
		accent:   lipgloss.NewStyle().Foreground(c(theme.ColorAccent)),
		success:  lipgloss.NewStyle().Foreground(c(theme.ColorSuccess)),
		warning:  lipgloss.NewStyle().Foreground(c(theme.ColorWarning)),
		danger:   lipgloss.NewStyle().Foreground(c(theme.ColorDanger)),
		info:     lipgloss.NewStyle().Foreground(c(theme.ColorInfo)),
		card: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(c(theme.ColorSubtle)).
			Padding(0, 1),
		selected: lipgloss.NewStyle().Bold(true).Foreground(c(theme.ColorHighlight)),
		notice: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(theme.ColorText)).
			Background(c(theme.ColorDanger)).
			Padding(0, 1),
		railItem: lipgloss.NewStyle().Foreground(c(theme.ColorMuted)).Padding(0, 1),
		railOn: lipgloss.NewStyle().
			Bold(true).
			Foreground(c(theme.ColorText)).
			Background(c(theme.ColorHighlight)).
			Padding(0, 1),
		tab:   lipgloss.NewStyle().Foreground(c(theme.ColorMuted)).Padding(0, 1),
		tabOn: lipgloss.NewStyle().Bold(true).Underline(true).Foreground(c(theme.ColorAccent)).Padding(0, 1),
	}
}

// severity picks the advice color.
func (s styles) severity(sev domain.Severity) lipgloss.Style {
	switch sev {
	case domain.SeverityPositive:
		return s.success
	case domain.SeverityWarning:
		return s.warning
	default:
		return s.info
	}
}
