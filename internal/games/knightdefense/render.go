package knightdefense

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/vovakirdan/pawn-arcade/internal/core"
)

// Visual characters for rendering
const (
	KnightChar  = '♘'
	PawnChar    = '♟'
	VeteranChar = '♜'
	WallChar    = '▀'
)

const (
	squareW    = 3
	boardTop   = 3 // title, HUD, message
	minScreenW = 32
	minScreenH = 16
)

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Window too small")
		dst.DrawTextCentered(dst.Height()/2+1, "Please resize terminal")
		return
	}

	dst.DrawTextCenteredColor(0, "K N I G H T   D E F E N S E", core.ColorBrightYellow)
	hud := fmt.Sprintf("Level %d/%d   Captured %d (next at %d)   Health %s",
		g.level, len(g.cfg.Levels), g.captures, g.nextLevelAt(), g.healthBar())
	dst.DrawTextCentered(1, hud)
	dst.DrawTextCenteredColor(2, g.message, core.ColorCyan)

	g.renderBoard(dst)

	wallY := g.boardY + Size
	dst.DrawTextColor(g.boardX, wallY, strings.Repeat(string(WallChar), Size*squareW), core.ColorOrange)
	dst.DrawTextCenteredColor(wallY+1, "F O R T R E S S", core.ColorOrange)
	dst.DrawTextCenteredColor(dst.Height()-1, "Arrows+Enter/Click: Select knight and jump | P: Pause | Q: Quit", core.ColorGray)

	switch {
	case g.won:
		g.drawOverlay(dst, "VICTORY!", fmt.Sprintf("%d pawns captured", g.captures), "Press R to play again")
	case g.gameOver:
		g.drawOverlay(dst, "GAME OVER", g.message, fmt.Sprintf("Level %d, %d captured", g.level, g.captures), "Press R to restart")
	case g.transition > 0:
		g.drawOverlay(dst, "LEVEL", fmt.Sprint(g.level))
	case g.paused:
		g.drawOverlay(dst, "PAUSED", "Press P to resume")
	}
}

// nextLevelAt returns the capture count that completes the current level.
func (g *Game) nextLevelAt() int {
	req := g.requirement()
	return (g.captures/req + 1) * req
}

func (g *Game) healthBar() string {
	return fmt.Sprintf("%s %d", strings.Repeat("♥", min(g.health, 15)), g.health)
}

func (g *Game) renderBoard(dst *core.Screen) {
	targets := map[Pos]bool{}
	if g.selected {
		for _, p := range knightTargets(g.knight) {
			targets[p] = true
		}
	}

	for r := range Size {
		y := g.boardY + r
		for c := range Size {
			p := Pos{r, c}
			x := g.boardX + c*squareW

			bg := core.ColorDarkSquare
			if (r+c)%2 == 0 {
				bg = core.ColorLightSquare
			}
			if (g.selected && p == g.knight) || targets[p] {
				bg = core.ColorHighlight
			}
			dst.FillRect(core.NewRect(x, y, squareW, 1), bg)

			switch u := g.unitAt(p); {
			case p == g.knight:
				dst.SetColor(x+1, y, KnightChar, core.ColorBrightWhite)
			case u != nil && u.Kind == KindVeteran:
				dst.SetColor(x+1, y, VeteranChar, core.ColorRed)
			case u != nil:
				dst.SetColor(x+1, y, PawnChar, core.ColorBlack)
			}

			if p == g.cursor && !g.gameOver {
				dst.SetColor(x, y, '[', core.ColorBrightYellow)
				dst.SetColor(x+squareW-1, y, ']', core.ColorBrightYellow)
			}
		}
	}
}

// drawOverlay draws a centered message box over the board.
func (g *Game) drawOverlay(dst *core.Screen, lines ...string) {
	maxLen := 0
	for _, line := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(line))
	}

	boxW := maxLen + 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, g.boardY+Size/2-boxH/2, boxW, boxH)

	dst.FillRect(box, core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, line := range lines {
		x := box.X + (boxW-utf8.RuneCountInString(line))/2
		dst.DrawTextColor(x, box.Y+1+i, line, core.ColorBrightWhite)
	}
}
