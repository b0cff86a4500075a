package domain

// Move pairs an origin and a destination square. Capture is derived from
// the board the move was generated on, so two moves are considered the
// same whenever From and To match; compare with Same, not ==.
type Move struct {
	From    Square
	To      Square
	Capture bool
}

// ParseMove converts the concatenated two-square notation, e.g. "c4d5".
func ParseMove(s string) (Move, error) {
	if len(s) != 4 {
		return Move{}, ErrBadMove
	}
	from, err := ParseSquare(s[:2])
	if err != nil {
		return Move{}, ErrBadMove
	}
	to, err := ParseSquare(s[2:])
	if err != nil {
		return Move{}, ErrBadMove
	}
	return Move{From: from, To: to}, nil
}

func (m Move) String() string {
	return m.From.String() + m.To.String()
}

// Same reports whether both moves name the same from/to pair, ignoring
// the capture flag.
func (m Move) Same(o Move) bool {
	return m.From == o.From && m.To == o.To
}
