package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// glyphs maps the clock characters to 5-line block art. Digits are 4 cells
// wide; letters cover the completion text.
var glyphs = map[rune][5]string{
	'0': {
		"████",
		"█  █",
		"█  █",
		"█  █",
		"████",
	},
	'1': {
		" █ ",
		"██ ",
		" █ ",
		" █ ",
		"███",
	},
	'2': {
		"████",
		"   █",
		"████",
		"█   ",
		"████",
	},
	'3': {
		"████",
		"   █",
		"████",
		"   █",
		"████",
	},
	'4': {
		"█  █",
		"█  █",
		"████",
		"   █",
		"   █",
	},
	'5': {
		"████",
		"█   ",
		"████",
		"   █",
		"████",
	},
	'6': {
		"████",
		"█   ",
		"████",
		"█  █",
		"████",
	},
	'7': {
		"████",
		"   █",
		"  █ ",
		" █  ",
		" █  ",
	},
	'8': {
		"████",
		"█  █",
		"████",
		"█  █",
		"████",
	},
	'9': {
		"████",
		"█  █",
		"████",
		"   █",
		"████",
	},
	':': {
		" ",
		"█",
		" ",
		"█",
		" ",
	},
	'D': {
		"███ ",
		"█  █",
		"█  █",
		"█  █",
		"███ ",
	},
	'o': {
		"    ",
		"████",
		"█  █",
		"█  █",
		"████",
	},
	'n': {
		"    ",
		"███ ",
		"█  █",
		"█  █",
		"█  █",
	},
	'e': {
		"████",
		"█  █",
		"████",
		"█   ",
		"████",
	},
	'!': {
		"█",
		"█",
		"█",
		" ",
		"█",
	},
}

// minBigClockWidth is the narrowest page that gets block digits.
const minBigClockWidth = 40

// renderBigClock renders text such as "09:59" or "Done!" in block glyphs.
// Narrow pages and unknown characters fall back to a single bold line.
func renderBigClock(text string, color lipgloss.Color, width int) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(color)
	if width < minBigClockWidth {
		return style.Render(text)
	}

	var lines [5]string
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if !ok {
			return style.Render(text)
		}
		for i := range lines {
			if lines[i] != "" {
				lines[i] += " "
			}
			lines[i] += glyph[i]
		}
	}

	styled := make([]string, len(lines))
	for i, line := range lines {
		styled[i] = style.Render(line)
	}
	return strings.Join(styled, "\n")
}
