package engine

import (
	"errors"
	"testing"
)

func newTestSession(t *testing.T, player Color, d Difficulty) *Session {
	t.Helper()
	s := NewSession(WithSeed(42), WithSearchDepth(2))
	if err := s.Start(Setup{PlayerColor: player, Difficulty: d, IconSet: "standard"}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	return s
}

func TestSessionStart(t *testing.T) {
	s := NewSession()
	if s.Phase() != SelectingSetup {
		t.Fatalf("Phase = %v, expected setup", s.Phase())
	}
	if _, err := s.AttemptHumanMove(Sq(6, 0), Sq(5, 0)); !errors.Is(err, ErrNotStarted) {
		t.Errorf("move before Start: err = %v, expected ErrNotStarted", err)
	}

	if err := s.Start(Setup{PlayerColor: NoColor}); !errors.Is(err, ErrInvalidSetup) {
		t.Errorf("Start(NoColor) err = %v, expected ErrInvalidSetup", err)
	}
	if err := s.Start(Setup{PlayerColor: White, Difficulty: Difficulty(9)}); !errors.Is(err, ErrInvalidSetup) {
		t.Errorf("Start(bad difficulty) err = %v, expected ErrInvalidSetup", err)
	}

	if err := s.Start(Setup{PlayerColor: White, Difficulty: Easy}); err != nil {
		t.Fatalf("Start: %v", err)
	}
	if !s.HumanTurn() || s.AITurn() {
		t.Error("white player should move first")
	}
	if s.Board() != NewBoard() {
		t.Error("Start should set up the initial board")
	}
}

func TestHintBudgetByDifficulty(t *testing.T) {
	tests := []struct {
		d    Difficulty
		want int
	}{
		{Easy, 5},
		{Medium, 3},
		{Hard, 0},
	}
	for _, tt := range tests {
		s := newTestSession(t, White, tt.d)
		if s.HintsLeft() != tt.want {
			t.Errorf("%v: HintsLeft = %d, expected %d", tt.d, s.HintsLeft(), tt.want)
		}
	}

	s := NewSession(WithHintBudget(HintBudget{Easy: 1, Medium: 2, Hard: 3}))
	if err := s.Start(Setup{PlayerColor: White, Difficulty: Hard}); err != nil {
		t.Fatal(err)
	}
	if s.HintsLeft() != 3 {
		t.Errorf("HintsLeft = %d, expected configured 3", s.HintsLeft())
	}
}

func TestAIPlaysWhiteFirst(t *testing.T) {
	s := newTestSession(t, Black, Medium)
	if !s.AITurn() {
		t.Fatal("AI playing white should have the first turn")
	}
	if _, err := s.AttemptHumanMove(Sq(1, 0), Sq(2, 0)); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("human move during AI turn: err = %v, expected ErrNotYourTurn", err)
	}
	if _, err := s.RequestHint(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("hint during AI turn: err = %v, expected ErrNotYourTurn", err)
	}

	m, err := s.TriggerAIMove()
	if err != nil {
		t.Fatalf("TriggerAIMove: %v", err)
	}
	b := s.Board()
	if p := b.At(m.To); p != wp {
		t.Errorf("square %s = %+v, expected the AI's white pawn", m.To, p)
	}
	if !s.HumanTurn() {
		t.Error("turn should pass to the human")
	}
	if s.CanUndo() {
		t.Error("AI moves must not be undoable on their own")
	}
}

func TestTriggerAIMoveOutOfTurn(t *testing.T) {
	s := newTestSession(t, White, Easy)
	if _, err := s.TriggerAIMove(); !errors.Is(err, ErrNotYourTurn) {
		t.Errorf("err = %v, expected ErrNotYourTurn", err)
	}
}

func TestIllegalHumanMove(t *testing.T) {
	s := newTestSession(t, White, Easy)
	before := s.Board()

	_, err := s.AttemptHumanMove(Sq(6, 0), Sq(3, 0))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("err = %v, expected ErrIllegalMove", err)
	}
	if s.Board() != before {
		t.Error("illegal move changed the board")
	}
	if s.CanUndo() {
		t.Error("illegal move pushed history")
	}
	if !s.HumanTurn() {
		t.Error("turn should stay with the human")
	}
}

func TestPromotionEndsGame(t *testing.T) {
	s := newTestSession(t, White, Easy)
	s.board = boardWith(map[Square]Piece{Sq(1, 0): wp, Sq(6, 7): bp})

	if _, err := s.AttemptHumanMove(Sq(1, 0), Sq(0, 0)); err != nil {
		t.Fatalf("AttemptHumanMove: %v", err)
	}

	if s.Phase() != GameOver {
		t.Fatalf("Phase = %v, expected game over", s.Phase())
	}
	if w, over := s.Winner(); !over || w != White {
		t.Errorf("Winner = (%v, %v), expected White", w, over)
	}
	b := s.Board()
	if b[0][0] != (Piece{Kind: Queen, Color: White}) {
		t.Errorf("b[0][0] = %+v, expected white queen", b[0][0])
	}

	if _, err := s.TriggerAIMove(); !errors.Is(err, ErrGameOver) {
		t.Errorf("AI move after game over: err = %v, expected ErrGameOver", err)
	}
	if _, err := s.AttemptHumanMove(Sq(6, 7), Sq(7, 7)); !errors.Is(err, ErrGameOver) {
		t.Errorf("move after game over: err = %v, expected ErrGameOver", err)
	}
	if err := s.Undo(); !errors.Is(err, ErrGameOver) {
		t.Errorf("Undo after game over: err = %v, expected ErrGameOver", err)
	}

	v := s.View()
	if !v.GameOver || v.Message != "White wins by promotion!" {
		t.Errorf("View = %+v", v)
	}
}

func TestAIPromotionEndsGame(t *testing.T) {
	s := newTestSession(t, White, Hard)
	s.board = boardWith(map[Square]Piece{Sq(4, 0): wp, Sq(6, 7): bp})
	s.turn.Current = Black

	m, err := s.TriggerAIMove()
	if err != nil {
		t.Fatalf("TriggerAIMove: %v", err)
	}
	if m.To != Sq(7, 7) {
		t.Fatalf("AI chose %s, expected promotion on 7-7", m)
	}
	if w, over := s.Winner(); !over || w != Black {
		t.Errorf("Winner = (%v, %v), expected Black", w, over)
	}
	if s.Turn().Current != Black {
		t.Error("turn should not pass once the game is over")
	}
}

func TestAINoMoves(t *testing.T) {
	s := newTestSession(t, White, Easy)
	s.board = boardWith(map[Square]Piece{Sq(4, 0): wp, Sq(3, 0): bp})
	s.turn.Current = Black

	if _, err := s.TriggerAIMove(); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("err = %v, expected ErrNoMoves", err)
	}
	if s.Phase() != InProgress {
		t.Error("a side without moves must not end the game")
	}
}

func TestUndoRoundTrip(t *testing.T) {
	s := newTestSession(t, White, Easy)
	initBoard := s.Board()
	initTurn := s.Turn()

	human := [][2]Square{
		{Sq(6, 0), Sq(5, 0)},
		{Sq(6, 1), Sq(5, 1)},
		{Sq(6, 2), Sq(5, 2)},
	}
	for i, mv := range human {
		if _, err := s.AttemptHumanMove(mv[0], mv[1]); err != nil {
			t.Fatalf("move %d: %v", i, err)
		}
		if _, err := s.TriggerAIMove(); err != nil {
			t.Fatalf("AI reply %d: %v", i, err)
		}
	}
	if s.Board() == initBoard {
		t.Fatal("board should have changed")
	}

	for i := range human {
		if err := s.Undo(); err != nil {
			t.Fatalf("undo %d: %v", i, err)
		}
	}

	if s.Board() != initBoard {
		t.Error("board not restored")
	}
	turn := s.Turn()
	if turn.Current != initTurn.Current || turn.LastMove != nil {
		t.Errorf("turn = %+v, expected %+v", turn, initTurn)
	}
	v := s.View()
	if len(v.CapturedByPlayer) != 0 || len(v.CapturedByAI) != 0 {
		t.Errorf("captures not restored: %v / %v", v.CapturedByPlayer, v.CapturedByAI)
	}
	if len(s.used) != 0 {
		t.Errorf("en passant usage not restored: %v", s.used)
	}
	if err := s.Undo(); !errors.Is(err, ErrNoHistory) {
		t.Errorf("extra undo: err = %v, expected ErrNoHistory", err)
	}
}

func TestUndoRestoresEnPassant(t *testing.T) {
	s := newTestSession(t, White, Easy)
	s.board = boardWith(map[Square]Piece{Sq(3, 4): wp, Sq(3, 5): bp, Sq(1, 0): bp})
	s.turn = TurnState{
		Current:  White,
		LastMove: &MoveRecord{Color: Black, From: Sq(1, 5), To: Sq(3, 5), DoubleStep: true},
	}
	before := s.Board()

	m, err := s.AttemptHumanMove(Sq(3, 4), Sq(2, 5))
	if err != nil {
		t.Fatalf("AttemptHumanMove: %v", err)
	}
	if m.Kind != EnPassant {
		t.Fatalf("Kind = %v, expected en passant", m.Kind)
	}
	if !s.used.Has(Sq(3, 4)) {
		t.Error("identity 3-4 should be marked used")
	}
	if v := s.View(); len(v.CapturedByPlayer) != 1 || v.CapturedByPlayer[0] != bp {
		t.Errorf("CapturedByPlayer = %v, expected one black pawn", v.CapturedByPlayer)
	}

	if _, err := s.TriggerAIMove(); err != nil {
		t.Fatalf("TriggerAIMove: %v", err)
	}
	if err := s.Undo(); err != nil {
		t.Fatalf("Undo: %v", err)
	}

	if s.Board() != before {
		t.Error("board not restored")
	}
	if s.used.Has(Sq(3, 4)) {
		t.Error("en passant usage not restored")
	}
	if lm := s.Turn().LastMove; lm == nil || !lm.DoubleStep || lm.To != Sq(3, 5) {
		t.Errorf("LastMove = %+v, expected the black double step", lm)
	}
}

func TestSnapshotsAreIndependent(t *testing.T) {
	s := newTestSession(t, White, Easy)
	snap := s.takeSnapshot()

	if _, err := s.AttemptHumanMove(Sq(6, 3), Sq(4, 3)); err != nil {
		t.Fatal(err)
	}
	s.used.Add(Sq(3, 3))
	s.capturedByPlayer = append(s.capturedByPlayer, bp)

	if snap.board != NewBoard() {
		t.Error("snapshot board changed")
	}
	if len(snap.used) != 0 || len(snap.capturedByPlayer) != 0 || snap.turn.LastMove != nil {
		t.Errorf("snapshot observed live mutation: %+v", snap)
	}
}

func TestRequestHint(t *testing.T) {
	s := newTestSession(t, White, Medium)
	before := s.Board()

	m, err := s.RequestHint()
	if err != nil {
		t.Fatalf("RequestHint: %v", err)
	}
	b := s.Board()
	if _, ok := Validate(&b, s.Turn(), s.used, White, m.From, m.To); !ok {
		t.Errorf("hint %s is not a legal move", m)
	}
	if s.Board() != before {
		t.Error("hint changed the board")
	}
	if s.HintsLeft() != 2 {
		t.Errorf("HintsLeft = %d, expected 2", s.HintsLeft())
	}
	if !s.HumanTurn() {
		t.Error("hint should not change whose turn it is")
	}

	for range 2 {
		if _, err := s.RequestHint(); err != nil {
			t.Fatal(err)
		}
	}
	if _, err := s.RequestHint(); !errors.Is(err, ErrNoHints) {
		t.Errorf("err = %v, expected ErrNoHints", err)
	}
}

func TestHintWithoutMovesKeepsBudget(t *testing.T) {
	s := newTestSession(t, White, Easy)
	s.board = boardWith(map[Square]Piece{Sq(4, 0): wp, Sq(3, 0): bp})

	if _, err := s.RequestHint(); !errors.Is(err, ErrNoMoves) {
		t.Fatalf("err = %v, expected ErrNoMoves", err)
	}
	if s.HintsLeft() != 5 {
		t.Errorf("HintsLeft = %d, expected 5", s.HintsLeft())
	}
}

func TestClickSquare(t *testing.T) {
	s := newTestSession(t, White, Easy)

	if r := s.ClickSquare(Sq(1, 0)); r.Kind != ClickIgnored {
		t.Errorf("clicking an AI pawn: %v, expected ignored", r.Kind)
	}

	if r := s.ClickSquare(Sq(6, 4)); r.Kind != ClickSelected {
		t.Fatalf("clicking own pawn: %v, expected selected", r.Kind)
	}
	v := s.View()
	if v.Selected == nil || *v.Selected != Sq(6, 4) {
		t.Fatalf("Selected = %v, expected 6-4", v.Selected)
	}
	if len(v.Targets) != 2 {
		t.Errorf("Targets = %v, expected 5-4 and 4-4", v.Targets)
	}

	if r := s.ClickSquare(Sq(3, 4)); r.Kind != ClickDeselected {
		t.Fatalf("clicking an illegal target: %v, expected deselected", r.Kind)
	}
	if _, ok := s.Selected(); ok {
		t.Error("selection should be cleared")
	}

	s.ClickSquare(Sq(6, 4))
	r := s.ClickSquare(Sq(4, 4))
	if r.Kind != ClickMoved || r.Move.To != Sq(4, 4) {
		t.Fatalf("ClickSquare = %+v, expected move to 4-4", r)
	}
	if !s.AITurn() {
		t.Error("AI should be on move")
	}
	if r := s.ClickSquare(Sq(6, 3)); r.Kind != ClickIgnored {
		t.Errorf("click during AI turn: %v, expected ignored", r.Kind)
	}
}

func TestResetReturnsToSetup(t *testing.T) {
	s := newTestSession(t, White, Easy)
	if _, err := s.AttemptHumanMove(Sq(6, 0), Sq(5, 0)); err != nil {
		t.Fatal(err)
	}
	s.Reset()
	if s.Phase() != SelectingSetup {
		t.Errorf("Phase = %v, expected setup", s.Phase())
	}
	if s.CanUndo() {
		t.Error("history should be cleared")
	}
}
