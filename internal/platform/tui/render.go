package tui

import (
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pawn-arcade/internal/core"
)

// palette maps core.Color to ANSI 256-color codes. ColorDefault has no entry
// and leaves the terminal's own color in place.
var palette = map[core.Color]lipgloss.Color{
	core.ColorRed:           "1",
	core.ColorGreen:         "2",
	core.ColorYellow:        "3",
	core.ColorBlue:          "4",
	core.ColorMagenta:       "5",
	core.ColorCyan:          "6",
	core.ColorWhite:         "7",
	core.ColorBrightRed:     "9",
	core.ColorBrightGreen:   "10",
	core.ColorBrightYellow:  "11",
	core.ColorBrightBlue:    "12",
	core.ColorBrightMagenta: "13",
	core.ColorBrightCyan:    "14",
	core.ColorBrightWhite:   "15",
	core.ColorOrange:        "208",
	core.ColorGray:          "245",
	core.ColorBlack:         "0",
	core.ColorLightSquare:   "180",
	core.ColorDarkSquare:    "94",
	core.ColorHighlight:     "71",
	core.ColorHint:          "67",
}

type colorPair struct {
	fg, bg core.Color
}

// styles caches one lipgloss style per foreground/background pair.
// SSH sessions render concurrently, so access goes through stylesMu.
var (
	styles   = map[colorPair]lipgloss.Style{}
	stylesMu sync.Mutex
)

func styleFor(p colorPair) lipgloss.Style {
	stylesMu.Lock()
	defer stylesMu.Unlock()

	if s, ok := styles[p]; ok {
		return s
	}
	s := lipgloss.NewStyle()
	if c, ok := palette[p.fg]; ok {
		s = s.Foreground(c)
	}
	if c, ok := palette[p.bg]; ok {
		s = s.Background(c)
	}
	styles[p] = s
	return s
}

// RenderScreen converts a Screen buffer to a styled string for display.
// Groups adjacent cells with the same colors to minimize ANSI escape sequences.
func RenderScreen(s *core.Screen) string {
	var sb strings.Builder
	// Pre-allocate with extra space for ANSI codes
	sb.Grow(s.Width()*s.Height()*2 + s.Height())

	for y := range s.Height() {
		if y > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			cell := s.GetCell(x, y)
			pair := colorPair{cell.Color, cell.Bg}

			var run strings.Builder
			for x < s.Width() {
				cell = s.GetCell(x, y)
				if (colorPair{cell.Color, cell.Bg}) != pair {
					break
				}
				run.WriteRune(cell.Rune)
				x++
			}

			if pair == (colorPair{}) {
				sb.WriteString(run.String())
				continue
			}
			sb.WriteString(styleFor(pair).Render(run.String()))
		}
	}
	return sb.String()
}
