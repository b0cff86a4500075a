package domain

import (
	"fmt"
	"hash/fnv"
	"strings"
)

// InitialPieces is the standard starting position, bottom row first.
var InitialPieces = [BoardSize][BoardSize]Piece{
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{White, Empty, Empty, Empty, Empty, Empty, Empty, White},
	{Empty, Black, Black, Black, Black, Black, Black, Empty},
}

// one history entry; the captured piece is kept so Retract can restore it
type moveRecord struct {
	move     Move
	captured Piece
}

// Board holds the full state of one game: cell contents, move history,
// side to move, the tie move limit, and the cached winner and region
// partitions. It is mutated only through MakeMove, Retract and Set, each
// of which invalidates both caches.
type Board struct {
	cells     [BoardSize * BoardSize]Piece
	moves     []moveRecord
	turn      Piece
	moveLimit int

	winnerKnown bool
	winner      Piece

	regionsValid bool
	whiteRegions []int
	blackRegions []int
}

// NewBoard returns a board in the standard initial position with Black
// to move.
func NewBoard() *Board {
	return NewBoardFrom(InitialPieces, Black)
}

// NewBoardFrom builds a board from contents given bottom row first, with
// turn to move.
func NewBoardFrom(contents [BoardSize][BoardSize]Piece, turn Piece) *Board {
	b := &Board{}
	for r := 0; r < BoardSize; r++ {
		for c := 0; c < BoardSize; c++ {
			b.cells[Sq(c, r)] = contents[r][c]
		}
	}
	b.turn = turn
	b.moveLimit = DefaultMoveLimit
	return b
}

// Copy returns a deep snapshot: cells, history, caches. Nothing is
// aliased between the two boards.
func (b *Board) Copy() *Board {
	nb := &Board{
		cells:        b.cells,
		moves:        append([]moveRecord(nil), b.moves...),
		turn:         b.turn,
		moveLimit:    b.moveLimit,
		winnerKnown:  b.winnerKnown,
		winner:       b.winner,
		regionsValid: b.regionsValid,
		whiteRegions: append([]int(nil), b.whiteRegions...),
		blackRegions: append([]int(nil), b.blackRegions...),
	}
	return nb
}

// Get returns the contents of sq.
func (b *Board) Get(sq Square) Piece {
	return b.cells[sq]
}

// Set places v on sq without touching the side to move.
func (b *Board) Set(sq Square, v Piece) {
	b.cells[sq] = v
	b.invalidate()
}

func (b *Board) invalidate() {
	b.winnerKnown = false
	b.winner = Empty
	b.regionsValid = false
}

// Turn returns the side to move.
func (b *Board) Turn() Piece {
	return b.turn
}

// MovesMade counts the moves made and not retracted, both sides combined.
func (b *Board) MovesMade() int {
	return len(b.moves)
}

// Moves returns the unretracted move history in order.
func (b *Board) Moves() []Move {
	ms := make([]Move, len(b.moves))
	for i, rec := range b.moves {
		ms[i] = rec.move
	}
	return ms
}

// SetMoveLimit caps the game at 2*limit combined moves before a tie is
// declared. The limit must leave room for the moves already made.
func (b *Board) SetMoveLimit(limit int) error {
	if 2*limit <= b.MovesMade() {
		return ErrMoveLimitTooSmall
	}
	b.moveLimit = 2 * limit
	return nil
}

// IsLegal reports whether moving from from to to is legal for the piece
// on from. A move is legal when the squares share a ray, the destination
// does not hold the mover's own color, the distance equals the number of
// pieces anywhere on the line of action, and no opposing piece sits
// strictly between origin and destination. Squares that share no ray are
// not legal.
func (b *Board) IsLegal(from, to Square) bool {
	_, ok := from.DirectionTo(to)
	if !ok {
		return false
	}
	if b.Get(from) == b.Get(to) {
		return false
	}
	if from.Distance(to) != b.CountLineOfAction(from, to) {
		return false
	}
	if b.blocked(from, to) {
		return false
	}
	return true
}

// IsLegalMove is IsLegal on the move's squares; the capture flag is
// ignored.
func (b *Board) IsLegalMove(m Move) bool {
	return b.IsLegal(m.From, m.To)
}

// CountLineOfAction counts the pieces of either color on the full line
// through from in the direction of to, from itself included.
func (b *Board) CountLineOfAction(from, to Square) int {
	dir, ok := from.DirectionTo(to)
	if !ok {
		return 0
	}
	opp := dir.Opposite()
	count := 1
	for i := 1; i < BoardSize; i++ {
		if sq := from.MoveDest(dir, i); sq != NoSquare && b.cells[sq] != Empty {
			count++
		}
		if sq := from.MoveDest(opp, i); sq != NoSquare && b.cells[sq] != Empty {
			count++
		}
	}
	return count
}

// blocked reports whether an opposing piece sits strictly between from
// and to. Friendly pieces may be passed over.
func (b *Board) blocked(from, to Square) bool {
	dir, _ := from.DirectionTo(to)
	distance := from.Distance(to)
	mover := b.Get(from)
	for i := 1; i < distance; i++ {
		sq := from.MoveDest(dir, i)
		if sq != NoSquare && b.cells[sq] != Empty && b.cells[sq] != mover {
			return true
		}
	}
	return false
}

// MakeMove applies m. The move must be legal; callers check IsLegalMove
// first. Landing on an opposing piece records a capture.
func (b *Board) MakeMove(m Move) {
	if !b.IsLegalMove(m) {
		panic(fmt.Sprintf("illegal move %s", m))
	}
	captured := b.cells[m.To]
	if captured != Empty {
		m.Capture = true
	}
	b.cells[m.To] = b.cells[m.From]
	b.cells[m.From] = Empty
	b.moves = append(b.moves, moveRecord{move: m, captured: captured})
	b.turn = b.turn.Opposite()
	b.invalidate()
}

// Retract unmakes the last move, restoring the cell contents and turn
// from immediately before it. Captured pieces are restored from the
// history record. Requires MovesMade() > 0.
func (b *Board) Retract() {
	if len(b.moves) == 0 {
		panic("retract with no moves made")
	}
	rec := b.moves[len(b.moves)-1]
	b.moves = b.moves[:len(b.moves)-1]
	b.cells[rec.move.From] = b.cells[rec.move.To]
	b.cells[rec.move.To] = rec.captured
	b.turn = b.turn.Opposite()
	b.invalidate()
}

// LegalMoves enumerates every legal move for the side to move, scanning
// squares column-major, directions 0..7, destinations by increasing
// distance. The order is stable; the search relies on it.
func (b *Board) LegalMoves() []Move {
	return b.LegalMovesFor(b.turn)
}

// LegalMovesFor enumerates legal moves for side in the same order.
func (b *Board) LegalMovesFor(side Piece) []Move {
	var moves []Move
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			from := Sq(c, r)
			if b.cells[from] != side {
				continue
			}
			for dir := Direction(0); dir < 8; dir++ {
				for to := from.MoveDest(dir, 1); to != NoSquare; to = to.MoveDest(dir, 1) {
					if !b.IsLegal(from, to) {
						continue
					}
					m := Move{From: from, To: to}
					if b.cells[to] != Empty && b.cells[to] != side {
						m.Capture = true
					}
					moves = append(moves, m)
				}
			}
		}
	}
	return moves
}

// Winner returns the winning side once the game is over. The second
// result is false while the game is in progress. Empty with true means a
// tie. When both sides end up contiguous at once, the side that did not
// make the last move wins. Reaching the move limit without a winner
// forces a tie, re-checked on every call since the move counter can
// advance a still-open position into one.
func (b *Board) Winner() (Piece, bool) {
	if !b.winnerKnown {
		turnContig := b.PiecesContiguous(b.turn)
		oppContig := b.PiecesContiguous(b.turn.Opposite())
		switch {
		case turnContig && oppContig:
			b.winner, b.winnerKnown = b.turn.Opposite(), true
		case turnContig:
			b.winner, b.winnerKnown = b.turn, true
		case oppContig:
			b.winner, b.winnerKnown = b.turn.Opposite(), true
		}
	}
	if !b.winnerKnown && b.MovesMade() == b.moveLimit {
		b.winner, b.winnerKnown = Empty, true
	}
	if !b.winnerKnown {
		return Empty, false
	}
	return b.winner, true
}

// GameOver reports whether either side has won or the game is tied.
func (b *Board) GameOver() bool {
	_, over := b.Winner()
	return over
}

// Equal compares position and side to move; history and move limit do
// not participate.
func (b *Board) Equal(o *Board) bool {
	return b.cells == o.cells && b.turn == o.turn
}

// Key is a position hash over the same state Equal compares.
func (b *Board) Key() uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, len(b.cells)+1)
	for _, p := range b.cells {
		buf = append(buf, byte(p))
	}
	buf = append(buf, byte(b.turn))
	h.Write(buf)
	return h.Sum64()
}

func (b *Board) String() string {
	var sb strings.Builder
	sb.WriteString("===\n")
	for r := BoardSize - 1; r >= 0; r-- {
		sb.WriteString("   ")
		for c := 0; c < BoardSize; c++ {
			sb.WriteString(" " + b.Get(Sq(c, r)).Abbrev())
		}
		sb.WriteString("\n")
	}
	fmt.Fprintf(&sb, "Next move: %s\n===", b.turn.FullName())
	return sb.String()
}
