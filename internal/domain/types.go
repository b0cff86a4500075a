package domain

// Piece is the content of one board cell. Empty doubles as the "tie"
// result when returned as a winner.
type Piece int

const (
	Empty Piece = 0
	Black Piece = 1
	White Piece = 2
)

// Opposite is defined for Black and White only.
func (p Piece) Opposite() Piece {
	switch p {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (p Piece) Abbrev() string {
	switch p {
	case Black:
		return "b"
	case White:
		return "w"
	}
	return "-"
}

func (p Piece) FullName() string {
	switch p {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

const (
	BoardSize = 8

	// DefaultMoveLimit caps the combined moves of both sides before the
	// game is declared a tie.
	DefaultMoveLimit = 60
)

// basic errors that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrBadSquare         Error = "invalid square designation"
	ErrBadMove           Error = "invalid move designation"
	ErrIllegalMove       Error = "illegal move"
	ErrMoveLimitTooSmall Error = "move limit too small"
)
