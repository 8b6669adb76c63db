package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/pawn-arcade/internal/core"
)

func TestPaletteCoversColors(t *testing.T) {
	if _, ok := palette[core.ColorDefault]; ok {
		t.Error("ColorDefault should have no palette entry")
	}
	for c := core.ColorRed; c <= core.ColorHint; c++ {
		if _, ok := palette[c]; !ok {
			t.Errorf("color %d has no palette entry", c)
		}
	}
}

func TestStyleForCaches(t *testing.T) {
	p := colorPair{core.ColorBlack, core.ColorLightSquare}
	styleFor(p)

	stylesMu.Lock()
	_, ok := styles[p]
	stylesMu.Unlock()
	if !ok {
		t.Fatal("style was not cached")
	}
	if got := styleFor(p).Render("x"); !strings.Contains(got, "x") {
		t.Errorf("Render lost the text: %q", got)
	}
}

func TestRenderScreen(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawText(0, 0, "plain")
	s.FillRect(core.NewRect(0, 1, 3, 1), core.ColorDarkSquare)
	s.SetColor(1, 1, '♟', core.ColorBlack)
	s.DrawTextColor(3, 1, "ok", core.ColorGreen)

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, expected 2", len(lines))
	}
	for i, line := range lines {
		if w := lipgloss.Width(line); w != 6 {
			t.Errorf("line %d width = %d, expected 6", i, w)
		}
	}
	if !strings.HasPrefix(lines[0], "plain") {
		t.Errorf("uncolored run should be written as is: %q", lines[0])
	}
	for _, want := range []string{"♟", "ok"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q", want)
		}
	}
}
