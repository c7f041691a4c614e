package tui

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"
	drawille "github.com/exrook/drawille-go"

	"github.com/xvierd/zenith/internal/domain"
)

const (
	// canvas size in braille dots (2 per column, 4 per row)
	circleDotsWidth  = 60
	circleDotsHeight = 60
)

// circleRadius maps a breathing scale onto a dot radius. ExpandedScale
// fills the canvas.
func circleRadius(scale float64) float64 {
	maxR := float64(circleDotsWidth)/2 - 1
	r := maxR * scale / domain.ExpandedScale
	return min(max(r, 1), maxR)
}

// renderCircle draws a filled disc whose outline is solid and whose inside
// is shaded by opacity.
func renderCircle(scale float64, color string, opacity float64) string {
	canvas := drawille.NewCanvas()
	var (
		cx = float64(circleDotsWidth) / 2
		cy = float64(circleDotsHeight) / 2
		r  = circleRadius(scale)
	)

	// outline
	steps := int(2 * math.Pi * r * 2)
	for i := range steps {
		a := 2 * math.Pi * float64(i) / float64(steps)
		canvas.Set(int(math.Round(cx+r*math.Cos(a))), int(math.Round(cy+r*math.Sin(a))))
	}
	outline := canvasString(&canvas, circleDotsWidth, circleDotsHeight)

	// fill density follows opacity
	canvas.Clear()
	stride := 4 - int(math.Round(opacity*3))
	stride = max(stride, 1)
	for y := 0; y < circleDotsHeight; y += stride {
		for x := 0; x < circleDotsWidth; x += stride {
			dx, dy := float64(x)-cx, float64(y)-cy
			if dx*dx+dy*dy < (r-1)*(r-1) {
				canvas.Set(x, y)
			}
		}
	}
	fill := canvasString(&canvas, circleDotsWidth, circleDotsHeight)

	return overlayBraille(fill, outline, fade(color, opacity), lipgloss.Color(color))
}

// canvasString extracts the canvas with fixed dimensions.
func canvasString(canvas *drawille.Canvas, width, height int) string {
	charWidth, charHeight := width/2, height/4
	rows := canvas.Rows(0, 0, width, height)

	lines := make([]string, charHeight)
	for i := range charHeight {
		line := ""
		if i < len(rows) {
			line = rows[i]
		}
		runes := []rune(line)
		if len(runes) > charWidth {
			runes = runes[:charWidth]
		}
		lines[i] = string(runes) + strings.Repeat(" ", charWidth-len(runes))
	}
	return strings.Join(lines, "\n")
}

const emptyBraille rune = '\u2800'

func isBraille(r rune) bool {
	return r >= 0x2800 && r <= 0x28FF
}

// overlayBraille ORs two plain braille layers cell by cell. Cells touched
// by the top layer take its color.
func overlayBraille(bottom, top string, bottomColor, topColor lipgloss.Color) string {
	var (
		bLines = strings.Split(bottom, "\n")
		tLines = strings.Split(top, "\n")
		out    = make([]string, len(bLines))
		bStyle = lipgloss.NewStyle().Foreground(bottomColor)
		tStyle = lipgloss.NewStyle().Foreground(topColor)
	)
	for i, line := range bLines {
		bRunes := []rune(line)
		var tRunes []rune
		if i < len(tLines) {
			tRunes = []rune(tLines[i])
		}
		var sb strings.Builder
		for j, br := range bRunes {
			tr := ' '
			if j < len(tRunes) {
				tr = tRunes[j]
			}
			topDots := isBraille(tr) && tr != emptyBraille
			bottomDots := isBraille(br) && br != emptyBraille
			switch {
			case topDots && bottomDots:
				sb.WriteString(tStyle.Render(string(emptyBraille + ((br - emptyBraille) | (tr - emptyBraille)))))
			case topDots:
				sb.WriteString(tStyle.Render(string(tr)))
			case bottomDots:
				sb.WriteString(bStyle.Render(string(br)))
			default:
				sb.WriteRune(' ')
			}
		}
		out[i] = sb.String()
	}
	return strings.Join(out, "\n")
}
