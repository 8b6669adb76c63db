package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/pawn-arcade/internal/core"
	"github.com/vovakirdan/pawn-arcade/internal/registry"
)

// fakeGame records what the platform asks of it.
type fakeGame struct {
	resets  int
	resized [2]int
	frames  []core.InputFrame
	state   core.GameState
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) { g.resets++; g.state = core.GameState{} }
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake board") }
func (g *fakeGame) State() core.GameState    { return g.state }
func (g *fakeGame) Controls() string         { return "Jump around" }
func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.frames = append(g.frames, in.Clone())
	return core.StepResult{State: g.state}
}

type resizableGame struct {
	fakeGame
}

func (g *resizableGame) Resize(w, h int) { g.resized = [2]int{w, h} }

func newTestModel(g registry.Game) Model {
	m := NewModel(g, core.RuntimeConfig{ScreenW: 40, ScreenH: 12, TickRate: 60, Seed: 1})
	m.Init()
	return m
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm
}

func TestModelForwardsInput(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	if g.resets != 1 {
		t.Fatalf("Init reset the game %d times", g.resets)
	}

	m = update(t, m, runeKey("u"))
	m = update(t, m, tea.MouseMsg{X: 3, Y: 4, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft})
	m = update(t, m, TickMsg{})

	if len(g.frames) != 1 {
		t.Fatalf("Step called %d times, expected 1", len(g.frames))
	}
	in := g.frames[0]
	if !in.Has(core.ActionUndo) {
		t.Error("undo was not forwarded")
	}
	if pt, ok := in.Click(); !ok || pt != (core.Point{X: 3, Y: 4}) {
		t.Errorf("click = %+v, %v", pt, ok)
	}

	update(t, m, TickMsg{})
	if g.frames[1].Has(core.ActionUndo) {
		t.Error("input was not cleared between ticks")
	}
}

func TestModelResize(t *testing.T) {
	t.Run("resizer keeps state", func(t *testing.T) {
		g := &resizableGame{}
		m := newTestModel(g)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
		if g.resized != [2]int{100, 30} || g.resets != 1 {
			t.Errorf("resized = %v, resets = %d", g.resized, g.resets)
		}
	})
	t.Run("plain game restarts", func(t *testing.T) {
		g := &fakeGame{}
		m := newTestModel(g)
		update(t, m, tea.WindowSizeMsg{Width: 100, Height: 30})
		if g.resets != 2 {
			t.Errorf("resets = %d, expected 2", g.resets)
		}
	})
}

func TestModelRestartOnlyWhenOver(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey("r"))
	m = update(t, m, TickMsg{})
	if g.resets != 1 || !g.frames[0].Has(core.ActionRestart) {
		t.Fatal("restart during play should reach the game")
	}

	g.state.GameOver = true
	m = update(t, m, TickMsg{})
	m = update(t, m, runeKey("r"))
	update(t, m, TickMsg{})
	if g.resets != 2 {
		t.Errorf("resets = %d, expected 2 after game over restart", g.resets)
	}
}

func TestModelHelpFreezesGame(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)

	m = update(t, m, runeKey("?"))
	if !strings.Contains(m.View(), "Jump around") {
		t.Error("help view should include the game controls")
	}
	m = update(t, m, TickMsg{})
	if len(g.frames) != 0 {
		t.Fatal("game stepped while help was open")
	}
	m = update(t, m, runeKey("u"))
	if m.showHelp {
		t.Fatal("any key should close help")
	}

	update(t, m, TickMsg{})
	if len(g.frames) != 1 || g.frames[0].Has(core.ActionUndo) {
		t.Error("key that closed help should not reach the game")
	}
}

func TestModelBackToMenu(t *testing.T) {
	g := &fakeGame{}
	m := newTestModel(g)
	m.canGoBack = true

	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Fatal("back while playing should stay in the game")
	}

	g.state.Paused = true
	m = update(t, m, TickMsg{})
	m = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back while paused should leave the game")
	}
}

func TestModelQuit(t *testing.T) {
	m := newTestModel(&fakeGame{})
	m = update(t, m, runeKey("q"))
	if !m.IsQuitting() || m.View() != "" {
		t.Error("q should quit and blank the view")
	}
}

func TestModelView(t *testing.T) {
	m := newTestModel(&fakeGame{})
	if !strings.Contains(m.View(), "fake board") {
		t.Error("view should render the game screen")
	}
}
