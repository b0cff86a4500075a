package domain

import (
	"strings"
	"testing"
)

func mustMove(t *testing.T, s string) Move {
	t.Helper()
	m, err := ParseMove(s)
	if err != nil {
		t.Fatalf("ParseMove(%q): %v", s, err)
	}
	return m
}

// position builds a board from square/piece pairs, everything else empty.
func position(t *testing.T, turn Piece, pieces map[string]Piece) *Board {
	t.Helper()
	var contents [BoardSize][BoardSize]Piece
	for sq, p := range pieces {
		parsed, err := ParseSquare(sq)
		if err != nil {
			t.Fatalf("bad square %q: %v", sq, err)
		}
		contents[parsed.Row()][parsed.Col()] = p
	}
	return NewBoardFrom(contents, turn)
}

func TestNewBoardInitialPosition(t *testing.T) {
	b := NewBoard()
	if b.Turn() != Black {
		t.Errorf("first mover = %v, want Black", b.Turn())
	}
	if b.Get(Sq(1, 0)) != Black || b.Get(Sq(6, 7)) != Black {
		t.Error("black back ranks not populated")
	}
	if b.Get(Sq(0, 1)) != White || b.Get(Sq(7, 6)) != White {
		t.Error("white flanks not populated")
	}
	for _, corner := range []Square{Sq(0, 0), Sq(7, 0), Sq(0, 7), Sq(7, 7)} {
		if b.Get(corner) != Empty {
			t.Errorf("corner %s not empty", corner)
		}
	}
	if b.MovesMade() != 0 {
		t.Errorf("MovesMade = %d, want 0", b.MovesMade())
	}
}

func TestInitialLegalMoves(t *testing.T) {
	b := NewBoard()
	moves := b.LegalMoves()

	// Regression baseline for the standard position.
	if len(moves) != 36 {
		t.Errorf("initial position has %d legal moves, want 36", len(moves))
	}
	if !moves[0].Same(mustMove(t, "b1b3")) {
		t.Errorf("first enumerated move = %s, want b1b3", moves[0])
	}

	for _, m := range moves {
		if !b.IsLegal(m.From, m.To) {
			t.Errorf("enumerated move %s fails IsLegal", m)
		}
		if b.Get(m.From) != Black {
			t.Errorf("move %s does not start on a black piece", m)
		}
	}
}

func TestIsLegalRules(t *testing.T) {
	b := NewBoard()

	if b.IsLegal(Sq(1, 0), Sq(2, 0)) {
		t.Error("b1c1: landing on own piece must be illegal")
	}
	if b.IsLegal(Sq(1, 0), Sq(1, 1)) {
		t.Error("b1b2: distance must equal the line-of-action count")
	}
	if !b.IsLegal(Sq(1, 0), Sq(7, 0)) {
		t.Error("b1h1: passing over own pieces at full line count must be legal")
	}
	if !b.IsLegal(Sq(2, 0), Sq(0, 2)) {
		t.Error("c1a3: capture landing on an opposing piece must be legal")
	}
}

func TestIsLegalNotColinearFailsClosed(t *testing.T) {
	// Squares that share no ray fail closed.
	b := NewBoard()
	if b.IsLegal(Sq(1, 0), Sq(2, 3)) {
		t.Error("b1c4: non-colinear squares must not be legal")
	}
}

func TestIsLegalBlockedByOpponent(t *testing.T) {
	b := position(t, White, map[string]Piece{
		"a1": White,
		"b1": Black,
		"g5": Black, // keeps black in two clusters
	})
	// Two pieces on the first rank, so a1 moves exactly two squares; the
	// opposing piece on b1 blocks the path.
	if b.IsLegal(Sq(0, 0), Sq(2, 0)) {
		t.Error("a1c1: an opposing piece in the path must block the move")
	}

	friendly := position(t, White, map[string]Piece{
		"a1": White,
		"b1": White,
		"g5": Black,
		"g7": Black,
	})
	if !friendly.IsLegal(Sq(0, 0), Sq(2, 0)) {
		t.Error("a1c1: passing over a friendly piece must be legal")
	}
}

func TestCountLineOfAction(t *testing.T) {
	b := NewBoard()
	if got := b.CountLineOfAction(Sq(1, 0), Sq(7, 0)); got != 6 {
		t.Errorf("b1 along rank 1 counts %d, want 6", got)
	}
	if got := b.CountLineOfAction(Sq(1, 0), Sq(1, 2)); got != 2 {
		t.Errorf("b1 along file b counts %d, want 2", got)
	}
	if got := b.CountLineOfAction(Sq(2, 0), Sq(0, 2)); got != 2 {
		t.Errorf("c1 along the a3 diagonal counts %d, want 2", got)
	}
}

func TestMakeMoveAndRetract(t *testing.T) {
	b := NewBoard()
	b.MakeMove(mustMove(t, "b1b3"))

	if b.Get(Sq(1, 0)) != Empty || b.Get(Sq(1, 2)) != Black {
		t.Error("b1b3 not applied")
	}
	if b.Turn() != White {
		t.Error("turn did not flip to white")
	}
	if b.MovesMade() != 1 {
		t.Errorf("MovesMade = %d, want 1", b.MovesMade())
	}

	b.Retract()
	if !b.Equal(NewBoard()) {
		t.Error("retract did not restore the initial position")
	}
	if b.MovesMade() != 0 {
		t.Errorf("MovesMade after retract = %d, want 0", b.MovesMade())
	}
}

func TestRetractCaptureRestoresCapturedPiece(t *testing.T) {
	// The history entry records the captured piece, so capture
	// retraction is lossless.
	b := NewBoard()
	b.MakeMove(mustMove(t, "c1a3"))

	if b.Get(Sq(0, 2)) != Black {
		t.Fatal("c1a3 did not capture a3")
	}
	if got := b.Moves(); !got[0].Capture {
		t.Error("capture move not recorded as capture")
	}

	b.Retract()
	if b.Get(Sq(0, 2)) != White {
		t.Error("captured white piece not restored on a3")
	}
	if !b.Equal(NewBoard()) {
		t.Error("retract did not restore the pre-capture position")
	}
}

func TestMakeMoveIllegalPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("MakeMove on an illegal move must panic")
		}
	}()
	NewBoard().MakeMove(mustMove(t, "b1b2"))
}

func TestRetractWithoutMovesPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("Retract with no moves made must panic")
		}
	}()
	NewBoard().Retract()
}

func TestSetMoveLimit(t *testing.T) {
	b := NewBoard()
	if err := b.SetMoveLimit(0); err != ErrMoveLimitTooSmall {
		t.Errorf("SetMoveLimit(0) err = %v, want ErrMoveLimitTooSmall", err)
	}
	b.MakeMove(mustMove(t, "b1b3"))
	b.MakeMove(mustMove(t, "a2c2"))
	if err := b.SetMoveLimit(1); err != ErrMoveLimitTooSmall {
		t.Errorf("SetMoveLimit(1) after 2 moves err = %v, want ErrMoveLimitTooSmall", err)
	}
	if err := b.SetMoveLimit(2); err != nil {
		t.Errorf("SetMoveLimit(2) err = %v", err)
	}
}

func TestMoveLimitForcesTie(t *testing.T) {
	b := NewBoard()
	if err := b.SetMoveLimit(1); err != nil {
		t.Fatalf("SetMoveLimit(1): %v", err)
	}

	b.MakeMove(mustMove(t, "b1b3"))
	if b.GameOver() {
		t.Fatal("game over after one move of two allowed")
	}
	b.MakeMove(mustMove(t, "a2c2"))

	winner, over := b.Winner()
	if !over || winner != Empty {
		t.Errorf("Winner = %v,%v, want tie (Empty,true)", winner, over)
	}
	if !b.GameOver() {
		t.Error("GameOver must agree with Winner")
	}
}

func TestWinnerSingleContiguousSide(t *testing.T) {
	b := position(t, Black, map[string]Piece{
		"a1": White, "a2": White,
		"b4": Black, "b6": Black, "h8": Black,
	})
	winner, over := b.Winner()
	if !over || winner != White {
		t.Errorf("Winner = %v,%v, want White", winner, over)
	}
}

func TestWinnerBothContiguousFavorsNonMover(t *testing.T) {
	b := position(t, White, map[string]Piece{
		"a1": White,
		"h7": Black, "h8": Black,
	})
	winner, over := b.Winner()
	if !over || winner != Black {
		t.Errorf("Winner = %v,%v, want the side not on move (Black)", winner, over)
	}
}

func TestWinnerGameInProgress(t *testing.T) {
	b := NewBoard()
	if winner, over := b.Winner(); over {
		t.Errorf("initial position reported winner %v", winner)
	}
	if b.GameOver() {
		t.Error("GameOver must agree with Winner")
	}
}

func TestSetInvalidatesWinnerCache(t *testing.T) {
	b := position(t, Black, map[string]Piece{
		"a1": White, "a2": White,
		"b4": Black, "b6": Black, "h8": Black,
	})
	if winner, over := b.Winner(); !over || winner != White {
		t.Fatalf("Winner = %v,%v, want White", winner, over)
	}

	// Scattering white reopens the game; the cached result must not stick.
	b.Set(Sq(4, 4), White)
	if winner, over := b.Winner(); over {
		t.Errorf("Winner after Set = %v, want game in progress", winner)
	}
}

func TestEqualityIgnoresHistory(t *testing.T) {
	played := NewBoard()
	played.MakeMove(mustMove(t, "b1b3"))
	fresh := NewBoard()
	if played.Equal(fresh) || played.Key() == fresh.Key() {
		t.Error("different positions compared equal")
	}

	played.Retract()
	if !played.Equal(fresh) {
		t.Error("equality must depend on position and turn only")
	}
	if played.Key() != fresh.Key() {
		t.Error("keys of equal boards differ")
	}
}

func TestCopyIsDeep(t *testing.T) {
	b := NewBoard()
	snapshot := b.Copy()

	snapshot.MakeMove(mustMove(t, "b1b3"))
	if !b.Equal(NewBoard()) || b.MovesMade() != 0 {
		t.Error("mutating a copy leaked into the original")
	}

	b.MakeMove(mustMove(t, "c1a3"))
	if snapshot.Get(Sq(0, 2)) != White {
		t.Error("mutating the original leaked into the copy")
	}
}

func TestBoardString(t *testing.T) {
	want := "===\n" +
		"    - b b b b b b -\n" +
		"    w - - - - - - w\n" +
		"    w - - - - - - w\n" +
		"    w - - - - - - w\n" +
		"    w - - - - - - w\n" +
		"    w - - - - - - w\n" +
		"    w - - - - - - w\n" +
		"    - b b b b b b -\n" +
		"Next move: black\n==="
	if got := NewBoard().String(); got != want {
		t.Errorf("board dump mismatch:\n%s\nwant:\n%s", got, want)
	}
	if !strings.Contains(NewBoard().String(), "Next move: black") {
		t.Error("dump must name the side to move")
	}
}
