// Package pawnwar implements Pawn War, a pawn-only chess variant played
// against an AI. Rules and AI live in the engine subpackage; this package
// adapts a session to the arcade platform's tick loop.
package pawnwar

import (
	"errors"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/pawn-arcade/internal/config"
	"github.com/vovakirdan/pawn-arcade/internal/core"
	"github.com/vovakirdan/pawn-arcade/internal/games/pawnwar/engine"
	"github.com/vovakirdan/pawn-arcade/internal/registry"
)

// setupStep is one page of the pre-game setup screen.
type setupStep int

const (
	stepColor setupStep = iota
	stepDifficulty
	stepIcons
	stepCount
)

var (
	setupColors  = []engine.Color{engine.White, engine.Black}
	setupLevels  = []engine.Difficulty{engine.Easy, engine.Medium, engine.Hard}
	setupIconSet = []string{IconsStandard, IconsGeometric}
)

// Package-level settings applied by the CLI before the registry creates a game.
var (
	configPath string
	cliSetup   *engine.Setup
	gameLogger = log.New(io.Discard)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetSetup preselects side, difficulty and icons so the next game created
// by the registry skips the setup screen.
func SetSetup(s engine.Setup) {
	cliSetup = &s
}

// SetLogger routes session logs for games created by the registry.
func SetLogger(l *log.Logger) {
	if l != nil {
		gameLogger = l
	}
}

// Option configures a Game.
type Option func(*Game)

// WithSetup starts the first game directly with s.
func WithSetup(s engine.Setup) Option {
	return func(g *Game) { g.preset = &s }
}

// WithConfig uses cfg instead of loading one from disk.
func WithConfig(cfg config.PawnWarConfig) Option {
	return func(g *Game) {
		g.cfg = cfg
		g.cfgLoaded = true
		g.choices[stepIcons] = iconIndex(cfg.Icons)
	}
}

// WithLogger sets the logger handed to the session.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) { g.log = l }
}

// Game implements registry.Game for Pawn War.
type Game struct {
	session *engine.Session
	runtime core.RuntimeConfig
	log     *log.Logger

	cfg        config.PawnWarConfig
	cfgLoaded  bool
	configPath string
	preset     *engine.Setup // consumed by the first Reset

	// Setup screen
	step    setupStep
	choices [stepCount]int

	cursor    engine.Square
	paused    bool
	tooSmall  bool
	aiWait    int // ticks until the AI replies, -1 when not armed
	aiStalled bool
	hint      *engine.Move
	hintTicks int
	status    string

	boardX, boardY int
}

// New creates a Pawn War game. CLI settings made with SetConfigPath, SetSetup
// and SetLogger are picked up first; options override them.
func New(opts ...Option) *Game {
	g := &Game{
		configPath: configPath,
		log:        gameLogger,
		aiWait:     -1,
	}
	if cliSetup != nil {
		s := *cliSetup
		g.preset = &s
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

func init() {
	registry.Register("pawnwar", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "pawnwar"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Pawn War"
}

// Description returns a one-line summary for menus.
func (g *Game) Description() string {
	return "Pawn-only chess against an AI, with undo and hints"
}

// Reset initializes the game. The first call honors a preselected setup;
// later calls return to the setup screen with the previous choices kept.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.runtime = cfg

	if !g.cfgLoaded {
		loaded, err := config.LoadPawnWar(g.configPath)
		if err != nil {
			g.log.Warn("using default pawnwar config", "err", err)
			loaded = config.DefaultPawnWarConfig()
		}
		g.cfg = loaded
		g.cfgLoaded = true
		g.choices[stepIcons] = iconIndex(g.cfg.Icons)
	}

	g.session = engine.NewSession(
		engine.WithLogger(g.log),
		engine.WithSeed(cfg.Seed),
		engine.WithSearchDepth(g.cfg.AI.MinimaxDepth),
		engine.WithHintBudget(engine.HintBudget{
			Easy:   g.cfg.Hints.Easy,
			Medium: g.cfg.Hints.Medium,
			Hard:   g.cfg.Hints.Hard,
		}),
	)
	g.paused = false
	g.Resize(cfg.ScreenW, cfg.ScreenH)

	if g.preset != nil {
		setup := *g.preset
		g.preset = nil
		g.rememberChoices(setup)
		if err := g.start(setup); err == nil {
			return
		}
	}
	g.enterSetup()
}

// Resize adapts the layout to a new terminal size without restarting.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW = w
	g.runtime.ScreenH = h
	g.tooSmall = w < minScreenW || h < minScreenH
	g.boardX = max(labelW, (w-engine.Size*squareW)/2)
	g.boardY = boardTop
}

func (g *Game) enterSetup() {
	g.session.Reset()
	g.step = stepColor
	g.clearTransient()
	g.status = ""
}

func (g *Game) start(setup engine.Setup) error {
	if setup.IconSet == "" {
		setup.IconSet = g.cfg.Icons
	}
	if err := g.session.Start(setup); err != nil {
		g.log.Error("cannot start game", "err", err)
		g.status = err.Error()
		return err
	}
	// Cursor on the middle of the human's pawn line
	g.cursor = engine.Sq(engine.HomeRank(setup.PlayerColor), 3)
	g.clearTransient()
	g.status = ""
	return nil
}

func (g *Game) clearTransient() {
	g.aiWait = -1
	g.aiStalled = false
	g.hint = nil
	g.hintTicks = 0
}

func (g *Game) rememberChoices(s engine.Setup) {
	for i, c := range setupColors {
		if c == s.PlayerColor {
			g.choices[stepColor] = i
		}
	}
	if s.Difficulty <= engine.Hard {
		g.choices[stepDifficulty] = int(s.Difficulty)
	}
	if s.IconSet != "" {
		g.choices[stepIcons] = iconIndex(s.IconSet)
	}
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	switch g.session.Phase() {
	case engine.SelectingSetup:
		g.stepSetup(in)
	case engine.InProgress:
		g.stepPlay(in)
	case engine.GameOver:
		if in.Has(core.ActionRestart) {
			g.enterSetup()
		}
	}
	return core.StepResult{State: g.State()}
}

// stepSetup drives the three setup pages: side, difficulty, icons.
func (g *Game) stepSetup(in core.InputFrame) {
	n := len(g.options(g.step))

	if p, ok := in.Click(); ok {
		for i := range n {
			if p.Y == g.optionY(i) {
				g.choices[g.step] = i
				g.confirmSetup()
				return
			}
		}
	}

	switch {
	case in.Has(core.ActionUp), in.Has(core.ActionLeft):
		g.choices[g.step] = (g.choices[g.step] + n - 1) % n
	case in.Has(core.ActionDown), in.Has(core.ActionRight):
		g.choices[g.step] = (g.choices[g.step] + 1) % n
	case in.Has(core.ActionConfirm):
		g.confirmSetup()
	case in.Has(core.ActionBack):
		if g.step > stepColor {
			g.step--
		}
	}
}

func (g *Game) confirmSetup() {
	if g.step < stepIcons {
		g.step++
		return
	}
	_ = g.start(engine.Setup{
		PlayerColor: setupColors[g.choices[stepColor]],
		Difficulty:  setupLevels[g.choices[stepDifficulty]],
		IconSet:     setupIconSet[g.choices[stepIcons]],
	})
}

// stepPlay handles one tick of an active game.
func (g *Game) stepPlay(in core.InputFrame) {
	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return
	}
	if in.Has(core.ActionRestart) {
		g.enterSetup()
		return
	}

	if g.hintTicks > 0 {
		g.hintTicks--
		if g.hintTicks == 0 {
			g.hint = nil
		}
	}

	g.moveCursor(in)

	if g.session.AITurn() {
		g.stepAI()
		return
	}

	switch {
	case in.Has(core.ActionUndo):
		g.undo()
	case in.Has(core.ActionHint):
		g.requestHint()
	case in.Has(core.ActionConfirm):
		g.click(g.cursor)
	default:
		if p, ok := in.Click(); ok {
			if sq, ok := g.squareAt(p); ok {
				g.cursor = sq
				g.click(sq)
			}
		}
	}
}

func (g *Game) moveCursor(in core.InputFrame) {
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
	g.cursor.Row = core.Clamp(g.cursor.Row, 0, engine.Size-1)
	g.cursor.Col = core.Clamp(g.cursor.Col, 0, engine.Size-1)
}

func (g *Game) click(sq engine.Square) {
	res := g.session.ClickSquare(sq)
	if res.Kind != engine.ClickMoved {
		return
	}
	g.hint = nil
	g.hintTicks = 0
	g.status = ""
}

// stepAI waits out the configured delay, then lets the AI move.
func (g *Game) stepAI() {
	if g.aiStalled {
		return
	}
	if g.aiWait < 0 {
		g.aiWait = g.runtime.TickMillis(g.cfg.AI.MoveDelayMS)
	}
	if g.aiWait > 0 {
		g.aiWait--
		return
	}
	g.aiWait = -1

	_, err := g.session.TriggerAIMove()
	switch {
	case errors.Is(err, engine.ErrNoMoves):
		g.aiStalled = true
		g.status = fmt.Sprintf("%s has no legal moves. Press R to restart", g.session.View().AIColor)
	case err != nil:
		g.status = err.Error()
	}
}

func (g *Game) undo() {
	switch err := g.session.Undo(); {
	case errors.Is(err, engine.ErrNoHistory):
		g.status = "Nothing to undo"
	case err != nil:
		g.status = err.Error()
	default:
		g.clearTransient()
		g.status = "Move taken back"
	}
}

func (g *Game) requestHint() {
	m, err := g.session.RequestHint()
	switch {
	case errors.Is(err, engine.ErrNoHints):
		g.status = "No hints remaining"
	case errors.Is(err, engine.ErrNoMoves):
		g.status = "No moves to suggest"
	case err != nil:
		g.status = err.Error()
	default:
		g.hint = &m
		g.hintTicks = g.runtime.TickMillis(g.cfg.Hints.DisplayMS)
		g.status = fmt.Sprintf("Hint: %s (%d left)", m, g.session.HintsLeft())
	}
}

// squareAt maps a screen cell to a board square.
func (g *Game) squareAt(p core.Point) (engine.Square, bool) {
	if p.X < g.boardX || p.Y < g.boardY {
		return engine.Square{}, false
	}
	sq := engine.Sq(p.Y-g.boardY, (p.X-g.boardX)/squareW)
	return sq, sq.InBounds()
}

// State returns the current game state. A human win scores 1.
func (g *Game) State() core.GameState {
	st := core.GameState{Paused: g.paused || g.tooSmall}
	if g.session == nil {
		return st
	}
	if w, over := g.session.Winner(); over {
		st.GameOver = true
		st.Won = w == g.session.Setup().PlayerColor
		if st.Won {
			st.Score = 1
		}
	}
	return st
}

// Controls returns the control hints for the game.
func (g *Game) Controls() string {
	return "Arrows: Move | Enter/Click: Select | U: Undo | H: Hint | R: Restart | P: Pause | Q: Quit"
}

func iconIndex(name string) int {
	for i, s := range setupIconSet {
		if s == name {
			return i
		}
	}
	return 0
}
