package bot

import (
	"math/rand"

	"github.com/tdle/lines-of-action/internal/domain"
)

// CalculateBestMoveEasy grabs an immediately winning move if one exists
// and otherwise plays a uniformly random legal move.
func CalculateBestMoveEasy(b *domain.Board) (domain.Move, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return domain.Move{}, false
	}

	side := b.Turn()
	work := b.Copy()
	for _, move := range moves {
		work.MakeMove(move)
		winner, over := work.Winner()
		work.Retract()
		if over && winner == side {
			return move, true
		}
	}

	return moves[rand.Intn(len(moves))], true
}
