package engine

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// Session errors. Illegal moves and empty move lists are ordinary outcomes
// that the caller is expected to handle, not faults.
var (
	ErrNotStarted   = errors.New("pawnwar: game not started")
	ErrInvalidSetup = errors.New("pawnwar: invalid setup")
	ErrGameOver     = errors.New("pawnwar: game is over")
	ErrNotYourTurn  = errors.New("pawnwar: not your turn")
	ErrIllegalMove  = errors.New("pawnwar: illegal move")
	ErrNoMoves      = errors.New("pawnwar: no legal moves")
	ErrNoHistory    = errors.New("pawnwar: nothing to undo")
	ErrNoHints      = errors.New("pawnwar: no hints remaining")
)

// Phase is the session lifecycle state.
type Phase uint8

const (
	SelectingSetup Phase = iota
	InProgress
	GameOver
)

func (p Phase) String() string {
	switch p {
	case SelectingSetup:
		return "setup"
	case InProgress:
		return "in progress"
	case GameOver:
		return "game over"
	default:
		return "unknown"
	}
}

// Setup is chosen before a game starts. IconSet only affects rendering and
// is carried here so the view can read it back.
type Setup struct {
	PlayerColor Color
	Difficulty  Difficulty
	IconSet     string
}

// HintBudget is the number of hints granted per difficulty.
type HintBudget struct {
	Easy, Medium, Hard int
}

// DefaultHintBudget grants 5, 3 and 0 hints.
var DefaultHintBudget = HintBudget{Easy: 5, Medium: 3, Hard: 0}

// For returns the budget for d.
func (h HintBudget) For(d Difficulty) int {
	switch d {
	case Easy:
		return h.Easy
	case Medium:
		return h.Medium
	default:
		return h.Hard
	}
}

// Option configures a Session.
type Option func(*Session)

// WithLogger routes session events to l.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.log = l
		}
	}
}

// WithRand sets the random source used by Greedy, ShallowSafety and hints.
func WithRand(rng *rand.Rand) Option {
	return func(s *Session) {
		if rng != nil {
			s.rng = rng
		}
	}
}

// WithSeed is WithRand over a new source seeded with seed.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithSearchDepth sets the Minimax depth.
func WithSearchDepth(depth int) Option {
	return func(s *Session) {
		if depth > 0 {
			s.depth = depth
		}
	}
}

// WithHintBudget overrides the hints granted per difficulty.
func WithHintBudget(h HintBudget) Option {
	return func(s *Session) { s.hintBudget = h }
}

// Session owns one Pawn War match: the board, turn state, en passant usage,
// captured pieces and undo history. It is not safe for concurrent use; run
// one Session per player.
type Session struct {
	phase    Phase
	setup    Setup
	aiColor  Color
	strategy Strategy

	board            Board
	turn             TurnState
	used             EnPassantUsage
	capturedByPlayer []Piece // opponent pieces taken by the human
	capturedByAI     []Piece // human pieces taken by the AI
	winner           Color

	history   []snapshot
	hintsLeft int

	selected *Square
	targets  []Move

	hintBudget HintBudget
	depth      int
	rng        *rand.Rand
	log        *log.Logger
}

// NewSession returns a session waiting for Start.
func NewSession(opts ...Option) *Session {
	s := &Session{
		hintBudget: DefaultHintBudget,
		depth:      DefaultDepth,
		rng:        rand.New(rand.NewSource(time.Now().UnixNano())),
		log:        log.New(io.Discard),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Start validates setup and begins a game. White always moves first, so an
// AI playing White has its turn pending immediately.
func (s *Session) Start(setup Setup) error {
	if setup.PlayerColor != White && setup.PlayerColor != Black {
		return fmt.Errorf("%w: player color %v", ErrInvalidSetup, setup.PlayerColor)
	}
	if setup.Difficulty > Hard {
		return fmt.Errorf("%w: difficulty %v", ErrInvalidSetup, setup.Difficulty)
	}

	s.setup = setup
	s.aiColor = setup.PlayerColor.Opponent()
	s.strategy = StrategyFor(setup.Difficulty, s.rng, s.depth)

	s.board = NewBoard()
	s.turn = TurnState{Current: White}
	s.used = EnPassantUsage{}
	s.capturedByPlayer = nil
	s.capturedByAI = nil
	s.winner = NoColor
	s.history = nil
	s.hintsLeft = s.hintBudget.For(setup.Difficulty)
	s.clearSelection()
	s.phase = InProgress

	s.log.Info("game started",
		"player", setup.PlayerColor,
		"difficulty", setup.Difficulty,
		"strategy", s.strategy.Name(),
		"hints", s.hintsLeft,
	)
	return nil
}

// Reset abandons the current game and returns to setup selection.
func (s *Session) Reset() {
	s.phase = SelectingSetup
	s.history = nil
	s.clearSelection()
}

// Phase reports the lifecycle state.
func (s *Session) Phase() Phase { return s.phase }

// Setup returns the active setup.
func (s *Session) Setup() Setup { return s.setup }

// HumanTurn reports whether the game is waiting for the human.
func (s *Session) HumanTurn() bool {
	return s.phase == InProgress && s.turn.Current == s.setup.PlayerColor
}

// AITurn reports whether the game is waiting for the AI.
func (s *Session) AITurn() bool {
	return s.phase == InProgress && s.turn.Current == s.aiColor
}

// HintsLeft returns the remaining hint budget.
func (s *Session) HintsLeft() int { return s.hintsLeft }

// CanUndo reports whether Undo would succeed.
func (s *Session) CanUndo() bool {
	return s.HumanTurn() && len(s.history) > 0
}

// Winner returns the winning color once the game is over.
func (s *Session) Winner() (Color, bool) {
	return s.winner, s.phase == GameOver
}

// Board returns a copy of the live board.
func (s *Session) Board() Board { return s.board }

// Turn returns a copy of the turn state.
func (s *Session) Turn() TurnState { return s.turn.clone() }

func (s *Session) checkHumanTurn() error {
	switch {
	case s.phase == SelectingSetup:
		return ErrNotStarted
	case s.phase == GameOver:
		return ErrGameOver
	case s.turn.Current != s.setup.PlayerColor:
		return ErrNotYourTurn
	}
	return nil
}

// AttemptHumanMove plays from -> to for the human. On success the previous
// position is pushed onto the undo history.
func (s *Session) AttemptHumanMove(from, to Square) (Move, error) {
	if err := s.checkHumanTurn(); err != nil {
		return Move{}, err
	}

	m, ok := Validate(&s.board, s.turn, s.used, s.setup.PlayerColor, from, to)
	if !ok {
		s.log.Debug("illegal move rejected", "from", from, "to", to)
		return Move{}, fmt.Errorf("%w: %s->%s", ErrIllegalMove, from, to)
	}

	s.history = append(s.history, s.takeSnapshot())
	s.apply(m)
	s.log.Info("player moved", "move", m, "color", s.setup.PlayerColor)
	return m, nil
}

// TriggerAIMove lets the configured strategy play for the AI. AI moves are
// not recorded in the undo history.
func (s *Session) TriggerAIMove() (Move, error) {
	switch {
	case s.phase == SelectingSetup:
		return Move{}, ErrNotStarted
	case s.phase == GameOver:
		return Move{}, ErrGameOver
	case s.turn.Current != s.aiColor:
		return Move{}, ErrNotYourTurn
	}

	moves := CollectMoves(&s.board, s.turn, s.used, s.aiColor)
	if len(moves) == 0 {
		s.log.Warn("ai has no legal moves", "color", s.aiColor)
		return Move{}, ErrNoMoves
	}

	start := time.Now()
	m, ok := s.strategy.Choose(moves, &s.board, s.aiColor, s.setup.PlayerColor)
	if !ok {
		return Move{}, ErrNoMoves
	}
	s.log.Info("ai moved",
		"move", m,
		"strategy", s.strategy.Name(),
		"candidates", len(moves),
		"elapsed", time.Since(start),
	)

	s.apply(m)
	return m, nil
}

// apply executes m for the side to move, records captures, applies promotion
// and passes the turn unless the game has ended.
func (s *Session) apply(m Move) {
	mover := s.turn.Current
	if m.Kind == EnPassant {
		s.used.Add(m.From)
	}

	out := Execute(&s.board, m)
	if !out.Captured.Empty() {
		if mover == s.setup.PlayerColor {
			s.capturedByPlayer = append(s.capturedByPlayer, out.Captured)
		} else {
			s.capturedByAI = append(s.capturedByAI, out.Captured)
		}
	}
	rec := out.Record
	s.turn.LastMove = &rec
	s.clearSelection()

	if w, ok := s.board.Winner(); ok {
		s.board.Promote(w)
		s.winner = w
		s.phase = GameOver
		s.log.Info("game over", "winner", w, "moves", len(s.history))
		return
	}
	s.turn.Current = mover.Opponent()
}

// Undo rewinds the last human move together with the AI reply that followed.
func (s *Session) Undo() error {
	if err := s.checkHumanTurn(); err != nil {
		return err
	}
	if len(s.history) == 0 {
		return ErrNoHistory
	}

	last := len(s.history) - 1
	s.restore(s.history[last])
	s.history = s.history[:last]
	s.clearSelection()
	s.log.Info("undo", "remaining", len(s.history))
	return nil
}

// RequestHint suggests a move for the human without touching the board.
// The budget is only spent when a move is found.
func (s *Session) RequestHint() (Move, error) {
	if err := s.checkHumanTurn(); err != nil {
		return Move{}, err
	}
	if s.hintsLeft <= 0 {
		return Move{}, ErrNoHints
	}

	m, ok := Suggest(&s.board, s.turn, s.used, s.setup.PlayerColor, s.aiColor, s.rng)
	if !ok {
		return Move{}, ErrNoMoves
	}
	s.hintsLeft--
	s.log.Info("hint", "move", m, "remaining", s.hintsLeft)
	return m, nil
}

// ClickKind describes what a square click did.
type ClickKind uint8

const (
	ClickIgnored ClickKind = iota
	ClickSelected
	ClickDeselected
	ClickMoved
)

// ClickResult is returned by ClickSquare. Move is set for ClickMoved.
type ClickResult struct {
	Kind ClickKind
	Move Move
}

// ClickSquare drives selection the way a pointer does: with nothing
// selected, clicking one of the human's pawns selects it; with a pawn
// selected, clicking a legal target moves there and anything else clears the
// selection.
func (s *Session) ClickSquare(sq Square) ClickResult {
	if !s.HumanTurn() {
		return ClickResult{Kind: ClickIgnored}
	}

	if s.selected != nil {
		from := *s.selected
		m, err := s.AttemptHumanMove(from, sq)
		if err != nil {
			s.clearSelection()
			return ClickResult{Kind: ClickDeselected}
		}
		return ClickResult{Kind: ClickMoved, Move: m}
	}

	p := s.board.At(sq)
	if p.Kind != Pawn || p.Color != s.setup.PlayerColor {
		return ClickResult{Kind: ClickIgnored}
	}
	s.selected = &sq
	s.targets = TargetsFrom(&s.board, s.turn, s.used, s.setup.PlayerColor, sq)
	return ClickResult{Kind: ClickSelected}
}

// Selected returns the selected square, if any.
func (s *Session) Selected() (Square, bool) {
	if s.selected == nil {
		return Square{}, false
	}
	return *s.selected, true
}

func (s *Session) clearSelection() {
	s.selected = nil
	s.targets = nil
}

// SessionView is a read-only copy of the session for rendering.
type SessionView struct {
	Phase            Phase
	Board            Board
	Current          Color
	PlayerColor      Color
	AIColor          Color
	Difficulty       Difficulty
	IconSet          string
	GameOver         bool
	Winner           Color
	Message          string
	CapturedByPlayer []Piece
	CapturedByAI     []Piece
	Selected         *Square
	Targets          []Square
	HintsLeft        int
	CanUndo          bool
}

// View returns a snapshot of the session safe to keep after further moves.
func (s *Session) View() SessionView {
	v := SessionView{
		Phase:            s.phase,
		Board:            s.board,
		Current:          s.turn.Current,
		PlayerColor:      s.setup.PlayerColor,
		AIColor:          s.aiColor,
		Difficulty:       s.setup.Difficulty,
		IconSet:          s.setup.IconSet,
		GameOver:         s.phase == GameOver,
		Winner:           s.winner,
		CapturedByPlayer: append([]Piece(nil), s.capturedByPlayer...),
		CapturedByAI:     append([]Piece(nil), s.capturedByAI...),
		HintsLeft:        s.hintsLeft,
		CanUndo:          s.CanUndo(),
	}
	if s.selected != nil {
		sq := *s.selected
		v.Selected = &sq
	}
	for _, m := range s.targets {
		v.Targets = append(v.Targets, m.To)
	}

	switch s.phase {
	case SelectingSetup:
		v.Message = "Choose your side"
	case GameOver:
		v.Message = fmt.Sprintf("%s wins by promotion!", s.winner)
	default:
		v.Message = fmt.Sprintf("Current player: %s. AI difficulty: %s", s.turn.Current, s.setup.Difficulty)
	}
	return v
}
