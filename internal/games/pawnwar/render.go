package pawnwar

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pawn-arcade/internal/core"
	"github.com/vovakirdan/pawn-arcade/internal/games/pawnwar/engine"
)

// Icon set names.
const (
	IconsStandard  = "standard"
	IconsGeometric = "geometric"
)

const (
	squareW         = 3 // cells per board square
	labelW          = 2 // row labels left of the board
	boardTop        = 4 // title, message, status, column labels
	setupOptionsTop = 7
	minScreenW      = 40
	minScreenH      = 18
)

// glyph returns the rune for a piece in the given icon set.
func glyph(set string, p engine.Piece) rune {
	white := p.Color == engine.White
	switch {
	case p.Kind == engine.Pawn && set == IconsGeometric:
		return pick(white, '△', '▲')
	case p.Kind == engine.Queen && set == IconsGeometric:
		return pick(white, '♔', '♚')
	case p.Kind == engine.Pawn:
		return pick(white, '♙', '♟')
	case p.Kind == engine.Queen:
		return pick(white, '♕', '♛')
	}
	return ' '
}

func pick(white bool, w, b rune) rune {
	if white {
		return w
	}
	return b
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColor(0, "P A W N   W A R", core.ColorBrightYellow)

	if g.session.Phase() == engine.SelectingSetup {
		g.renderSetup(dst)
		return
	}

	v := g.session.View()
	dst.DrawTextCentered(1, v.Message)
	if g.status != "" {
		dst.DrawTextCenteredColor(2, g.status, core.ColorCyan)
	}

	g.renderBoard(dst, v)
	g.renderHUD(dst, v)

	switch {
	case v.GameOver:
		title := "YOU WIN!"
		if v.Winner != v.PlayerColor {
			title = "YOU LOSE"
		}
		g.drawOverlay(dst, title, v.Message, "Press R to play again")
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

func (g *Game) options(step setupStep) []string {
	switch step {
	case stepColor:
		return []string{"White (moves first)", "Black"}
	case stepDifficulty:
		return []string{
			fmt.Sprintf("Easy    greedy AI, %d hints", g.cfg.Hints.Easy),
			fmt.Sprintf("Medium  cautious AI, %d hints", g.cfg.Hints.Medium),
			fmt.Sprintf("Hard    minimax AI, %d hints", g.cfg.Hints.Hard),
		}
	default:
		return []string{"Standard   ♙ ♟ ♕ ♛", "Geometric  △ ▲ ♔ ♚"}
	}
}

func (g *Game) optionY(i int) int {
	return setupOptionsTop + i
}

// renderSetup draws the current setup page.
func (g *Game) renderSetup(dst *core.Screen) {
	headings := [stepCount]string{"Choose your side", "Choose AI difficulty", "Choose piece icons"}
	dst.DrawTextCentered(2, fmt.Sprintf("Step %d/%d", g.step+1, stepCount))
	dst.DrawTextCentered(4, headings[g.step])

	opts := g.options(g.step)
	width := 0
	for _, o := range opts {
		width = max(width, utf8.RuneCountInString(o))
	}
	x := (dst.Width() - width - 2) / 2
	for i, o := range opts {
		if i == g.choices[g.step] {
			dst.DrawTextColor(x, g.optionY(i), "> "+o, core.ColorBrightYellow)
		} else {
			dst.DrawText(x+2, g.optionY(i), o)
		}
	}

	if g.status != "" {
		dst.DrawTextCenteredColor(g.optionY(len(opts))+1, g.status, core.ColorRed)
	}
	dst.DrawTextCenteredColor(dst.Height()-1, "Up/Down: Choose | Enter: Confirm | Esc: Back | Q: Quit", core.ColorGray)
}

// renderBoard draws labels, squares, pieces and highlights.
func (g *Game) renderBoard(dst *core.Screen, v engine.SessionView) {
	for c := range engine.Size {
		dst.DrawTextColor(g.boardX+c*squareW+1, g.boardY-1, fmt.Sprint(c), core.ColorGray)
	}

	targets := make(map[engine.Square]bool, len(v.Targets))
	for _, sq := range v.Targets {
		targets[sq] = true
	}

	for r := range engine.Size {
		y := g.boardY + r
		dst.DrawTextColor(g.boardX-labelW, y, fmt.Sprint(r), core.ColorGray)

		for c := range engine.Size {
			sq := engine.Sq(r, c)
			x := g.boardX + c*squareW

			bg := core.ColorDarkSquare
			if (r+c)%2 == 0 {
				bg = core.ColorLightSquare
			}
			switch {
			case v.Selected != nil && *v.Selected == sq, targets[sq]:
				bg = core.ColorHighlight
			case g.hint != nil && (g.hint.From == sq || g.hint.To == sq):
				bg = core.ColorHint
			}
			dst.FillRect(core.NewRect(x, y, squareW, 1), bg)

			p := v.Board.At(sq)
			switch {
			case !p.Empty():
				fg := core.ColorBlack
				if p.Color == engine.White {
					fg = core.ColorBrightWhite
				}
				dst.SetColor(x+1, y, glyph(v.IconSet, p), fg)
			case targets[sq]:
				dst.SetColor(x+1, y, '·', core.ColorBlack)
			}

			if sq == g.cursor && !v.GameOver {
				dst.SetColor(x, y, '[', core.ColorBrightYellow)
				dst.SetColor(x+squareW-1, y, ']', core.ColorBrightYellow)
			}
		}
	}
}

// renderHUD draws captures, hint budget and controls below the board.
func (g *Game) renderHUD(dst *core.Screen, v engine.SessionView) {
	y := g.boardY + engine.Size + 1
	dst.DrawText(g.boardX-labelW, y, "You captured: "+g.pieces(v.IconSet, v.CapturedByPlayer))
	dst.DrawText(g.boardX-labelW, y+1, "AI captured:  "+g.pieces(v.IconSet, v.CapturedByAI))

	undo := "no"
	if v.CanUndo {
		undo = "yes"
	}
	dst.DrawText(g.boardX-labelW, y+2, fmt.Sprintf("Hints: %d  Undo: %s", v.HintsLeft, undo))
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows+Enter/Click: Move | U: Undo | H: Hint | R: Restart | P: Pause", core.ColorGray)
}

func (g *Game) pieces(set string, ps []engine.Piece) string {
	if len(ps) == 0 {
		return "-"
	}
	parts := make([]string, len(ps))
	for i, p := range ps {
		parts[i] = string(glyph(set, p))
	}
	return strings.Join(parts, " ")
}

// drawOverlay draws a centered message box over the board.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	centerY := g.boardY + engine.Size/2
	box := core.NewRect((dst.Width()-boxW)/2, centerY-boxH/2, boxW, boxH)

	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
