package registry

import (
	"testing"

	"github.com/vovakirdan/pawn-arcade/internal/core"
)

type stubGame struct {
	id, title string
}

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return g.title }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

type describedGame struct {
	stubGame
}

func (g *describedGame) Description() string { return "has a summary" }

func TestRegisterAndCreate(t *testing.T) {
	Register("zz_test_b", func() Game { return &stubGame{id: "zz_test_b", title: "B"} })
	Register("zz_test_a", func() Game { return &describedGame{stubGame{id: "zz_test_a", title: "A"}} })

	if !Exists("zz_test_a") || Exists("zz_missing") {
		t.Fatal("Exists reported the wrong result")
	}

	g, err := Create("zz_test_b")
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if g.Title() != "B" {
		t.Errorf("Title() = %q, expected B", g.Title())
	}

	if _, err := Create("zz_missing"); err == nil {
		t.Error("Create of an unknown game should fail")
	}

	a, b := -1, -1
	list := List()
	for i, info := range list {
		switch info.ID {
		case "zz_test_a":
			a = i
			if info.Description != "has a summary" {
				t.Errorf("Description = %q", info.Description)
			}
		case "zz_test_b":
			b = i
			if info.Description != "" {
				t.Errorf("undescribed game has Description %q", info.Description)
			}
		}
	}
	if a < 0 || b < 0 || a > b {
		t.Errorf("List() not sorted by ID: %+v", list)
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("zz_dup", func() Game { return &stubGame{id: "zz_dup"} })
}
