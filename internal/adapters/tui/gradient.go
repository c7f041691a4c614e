package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/xvierd/zenith/internal/domain"
)

// parseColor accepts #RRGGBB or #AARRGGBB. The alpha pair is blended over
// the app base color.
func parseColor(hex string) colorful.Color {
	base, _ := colorful.Hex(domain.BaseColor)
	if len(hex) == 9 && hex[0] == '#' {
		c, err := colorful.Hex("#" + hex[3:])
		if err != nil {
			return base
		}
		alpha, err := strconv.ParseUint(hex[1:3], 16, 8)
		if err != nil {
			return base
		}
		return base.BlendRgb(c, float64(alpha)/255)
	}
	c, err := colorful.Hex(hex)
	if err != nil {
		return base
	}
	return c
}

// blendStops returns the color at t in [0,1] along evenly spaced stops.
func blendStops(stops []colorful.Color, t float64) colorful.Color {
	switch len(stops) {
	case 0:
		c, _ := colorful.Hex(domain.BaseColor)
		return c
	case 1:
		return stops[0]
	}
	t = min(max(t, 0), 1)
	seg := t * float64(len(stops)-1)
	i := min(int(seg), len(stops)-2)
	return stops[i].BlendLab(stops[i+1], seg-float64(i)).Clamped()
}

// gradientRibbon paints a one line band across width cells.
func gradientRibbon(bg domain.Background, width int) string {
	if width <= 0 {
		return ""
	}
	stops := make([]colorful.Color, 0, len(bg.Colors))
	for _, h := range bg.Colors {
		stops = append(stops, parseColor(h))
	}

	var b strings.Builder
	for x := range width {
		t := 0.0
		if width > 1 {
			t = float64(x) / float64(width-1)
		}
		c := blendStops(stops, t)
		b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color(c.Hex())).Render("▀"))
	}
	return b.String()
}

// borderTint is the middle color of the page background.
func borderTint(bg domain.Background) lipgloss.Color {
	stops := make([]colorful.Color, 0, len(bg.Colors))
	for _, h := range bg.Colors {
		stops = append(stops, parseColor(h))
	}
	return lipgloss.Color(blendStops(stops, 0.5).Hex())
}

// fade dims hex toward the base color; opacity 1 keeps it unchanged.
func fade(hex string, opacity float64) lipgloss.Color {
	base := parseColor(domain.BaseColor)
	c := parseColor(hex)
	return lipgloss.Color(base.BlendRgb(c, min(max(opacity, 0), 1)).Hex())
}
