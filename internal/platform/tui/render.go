package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/rocket-arcade/internal/core"
)

// palette is indexed by core.Color. Unknown colours fall back to entry 0.
var palette = [...]lipgloss.Style{
	core.ColorDefault:     lipgloss.NewStyle(),
	core.ColorRed:         fg("1"),
	core.ColorYellow:      fg("3"),
	core.ColorBlue:        fg("4"),
	core.ColorCyan:        fg("6"),
	core.ColorWhite:       fg("7"),
	core.ColorBrightWhite: fg("15").Bold(true),
	core.ColorOrange:      fg("208"),
	core.ColorGray:        fg("245"),
}

var footerStyle = fg("241")

func fg(c string) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(c))
}

func styleFor(c core.Color) lipgloss.Style {
	if int(c) < len(palette) {
		return palette[c]
	}
	return palette[core.ColorDefault]
}

// RenderScreen turns the cell buffer into terminal text. Each run of
// same-coloured cells in a row is styled once.
func RenderScreen(s *core.Screen) string {
	w, h := s.Width(), s.Height()

	var out strings.Builder
	out.Grow(w*h*2 + h)
	span := make([]rune, 0, w)

	for y := range h {
		if y > 0 {
			out.WriteByte('\n')
		}

		for x := 0; x < w; {
			color := s.GetCell(x, y).Color
			span = span[:0]
			for ; x < w; x++ {
				cell := s.GetCell(x, y)
				if cell.Color != color {
					break
				}
				span = append(span, cell.Rune)
			}
			out.WriteString(styleFor(color).Render(string(span)))
		}
	}
	return out.String()
}
