package domain

// Square identifies one of the 64 cells by its linear index row*8+col.
// NoSquare is the off-board sentinel returned by MoveDest.
type Square int

const NoSquare Square = -1

// Direction is a compass index 0..7. The opposite of d is (d+4)%8.
type Direction int

const (
	North Direction = iota
	NorthEast
	East
	SouthEast
	South
	SouthWest
	West
	NorthWest
)

// column/row deltas per direction, indexed by Direction
var (
	dirCols = [8]int{0, 1, 1, 1, 0, -1, -1, -1}
	dirRows = [8]int{1, 1, 0, -1, -1, -1, 0, 1}
)

func (d Direction) Opposite() Direction {
	return (d + 4) % 8
}

// Sq returns the square at (col, row), each in [0,8).
func Sq(col, row int) Square {
	return Square(row*BoardSize + col)
}

func (sq Square) Col() int {
	return int(sq) % BoardSize
}

func (sq Square) Row() int {
	return int(sq) / BoardSize
}

// ParseSquare converts a designation of the exact form [a-h][1-8],
// e.g. "c4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 || s[0] < 'a' || s[0] > 'h' || s[1] < '1' || s[1] > '8' {
		return NoSquare, ErrBadSquare
	}
	return Sq(int(s[0]-'a'), int(s[1]-'1')), nil
}

func (sq Square) String() string {
	return string([]byte{byte('a' + sq.Col()), byte('1' + sq.Row())})
}

// DirectionTo returns the compass direction of the ray from sq through to.
// It is defined only when the two squares are distinct and share a row,
// column, or diagonal.
func (sq Square) DirectionTo(to Square) (Direction, bool) {
	dc := to.Col() - sq.Col()
	dr := to.Row() - sq.Row()
	if dc == 0 && dr == 0 {
		return 0, false
	}
	if dc != 0 && dr != 0 && dc != dr && dc != -dr {
		return 0, false
	}
	for d := Direction(0); d < 8; d++ {
		if sign(dc) == dirCols[d] && sign(dr) == dirRows[d] {
			return d, true
		}
	}
	return 0, false
}

// Distance is the number of single steps along the connecting ray,
// i.e. the Chebyshev distance.
func (sq Square) Distance(to Square) int {
	dc := abs(to.Col() - sq.Col())
	dr := abs(to.Row() - sq.Row())
	if dc > dr {
		return dc
	}
	return dr
}

// MoveDest returns the square reached by walking steps unit steps in dir,
// or NoSquare if that leaves the board.
func (sq Square) MoveDest(dir Direction, steps int) Square {
	c := sq.Col() + dirCols[dir]*steps
	r := sq.Row() + dirRows[dir]*steps
	if c < 0 || c >= BoardSize || r < 0 || r >= BoardSize {
		return NoSquare
	}
	return Sq(c, r)
}

// Adjacent returns the on-board orthogonal and diagonal neighbors of sq.
func (sq Square) Adjacent() []Square {
	adj := make([]Square, 0, 8)
	for d := Direction(0); d < 8; d++ {
		if n := sq.MoveDest(d, 1); n != NoSquare {
			adj = append(adj, n)
		}
	}
	return adj
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	}
	return 0
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
