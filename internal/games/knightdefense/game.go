// Package knightdefense implements Knight Defense: a lone knight guards the
// bottom rank against waves of pawns marching down the board.
package knightdefense

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pawn-arcade/internal/config"
	"github.com/vovakirdan/pawn-arcade/internal/core"
	"github.com/vovakirdan/pawn-arcade/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.Difficulty

var gameLogger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	d, err := config.ParseDifficulty(preset)
	if err != nil || preset == "" {
		difficultyPreset = ""
		return
	}
	difficultyPreset = d
}

// SetLogger routes game logs for games created by the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// Option configures a Game.
type Option func(*Game)

// WithConfig uses cfg instead of loading one from disk.
func WithConfig(cfg config.KnightDefenseConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgLoaded = true
	}
}

// WithLogger sets the game logger.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game implements registry.Game for Knight Defense.
type Game struct {
	runtime   core.RuntimeConfig
	cfg       config.KnightDefenseConfig
	cfgLoaded bool
	curve     *config.LevelCurve
	rng       *rand.Rand
	log       *log.Logger

	units    [Size][Size]*Unit
	knight   Pos
	selected bool
	cursor   Pos

	health         int
	captures       int
	level          int
	awaitingOpener bool // level 1 waits for its single opener before timed waves

	moveTimer  ticker
	waveTimer  ticker
	transition int // ticks left in the level-up pause

	message  string
	gameOver bool
	won      bool
	paused   bool
	tooSmall bool

	boardX, boardY int
}

// New creates a Knight Defense game.
func New(opts ...Option) *Game {
	g := &Game{log: gameLogger}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("knightdefense", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "knightdefense"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Knight Defense"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Hold the bottom rank with a single knight against waves of pawns"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	if !g.cfgLoaded {
		cfg, err := config.LoadKnightDefense(configPath)
		if err != nil {
			g.log.Warn("using default knightdefense config", "err", err)
			cfg = config.DefaultKnightDefenseConfig()
		}
		if difficultyPreset != "" {
			config.ApplyKnightDefensePreset(&cfg, difficultyPreset)
		}
		g.cfg = cfg
		g.cfgLoaded = true
	}

	g.curve = config.NewLevelCurve(g.cfg)
	g.rng = rand.New(rand.NewSource(runtime.Seed))
	g.Resize(runtime.ScreenW, runtime.ScreenH)

	g.clearUnits()
	g.knight = Pos{g.cfg.Knight.StartRow, g.cfg.Knight.StartCol}
	g.cursor = g.knight
	g.selected = false
	g.health = g.cfg.Fortress.Health
	g.captures = 0
	g.level = 1
	g.transition = 0
	g.gameOver = false
	g.won = false
	g.paused = false
	g.message = "Select the knight and jump onto the pawns"

	g.applyLevel()
	g.spawnOpener()
	g.log.Info("game started", "health", g.health, "levels", len(g.cfg.Levels))
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.boardX = max(0, (w-Size*squareW)/2)
	g.boardY = boardTop
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall || g.gameOver {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if g.transition > 0 {
		g.transition--
		return core.StepResult{State: g.State()}
	}

	g.handleInput(in)
	if g.gameOver || g.transition > 0 {
		return core.StepResult{State: g.State()}
	}

	if g.moveTimer.Tick() {
		g.advanceUnits()
	}
	if !g.gameOver && !g.awaitingOpener && g.waveTimer.Tick() {
		g.spawnWave()
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) handleInput(in core.InputFrame) {
	switch {
	case in.Has(core.ActionUp):
		g.cursor.Row--
	case in.Has(core.ActionDown):
		g.cursor.Row++
	case in.Has(core.ActionLeft):
		g.cursor.Col--
	case in.Has(core.ActionRight):
		g.cursor.Col++
	}
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, Size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, Size-1)

	if in.Has(core.ActionConfirm) {
		g.clickSquare(g.cursor)
		return
	}
	if pt, ok := in.Click(); ok {
		if p, ok := g.squareAt(pt); ok {
			g.cursor = p
			g.clickSquare(p)
		}
	}
}

// squareAt maps a screen cell to a board square.
func (g *Game) squareAt(pt core.Point) (Pos, bool) {
	if pt.X < g.boardX || pt.Y < g.boardY {
		return Pos{}, false
	}
	p := Pos{pt.Y - g.boardY, (pt.X - g.boardX) / squareW}
	return p, p.InBounds()
}

// State returns the current game state. Score is the number of captures.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.captures,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused || g.tooSmall || g.transition > 0,
	}
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move cursor | Enter/Click: Select knight, jump | P: Pause | R: Restart | Q: Quit"
}
