package bot

import (
	"github.com/tdle/lines-of-action/internal/domain"
)

// CalculateBestMoveMedium is a one-ply greedy player: it applies each
// legal move, scores the result statically, and keeps the best for its
// side. Ties resolve to the last move in enumeration order, matching the
// full search.
func CalculateBestMoveMedium(b *domain.Board) (domain.Move, bool) {
	moves := b.LegalMoves()
	if len(moves) == 0 {
		return domain.Move{}, false
	}

	sense := -1
	if b.Turn() == domain.White {
		sense = 1
	}

	work := b.Copy()
	best := moves[0]
	bestScore := -INFTY
	if sense == -1 {
		bestScore = INFTY
	}

	for _, move := range moves {
		work.MakeMove(move)
		score := evaluateBoard(work)
		work.Retract()

		if sense == 1 && score >= bestScore {
			bestScore, best = score, move
		} else if sense == -1 && score <= bestScore {
			bestScore, best = score, move
		}
	}
	return best, true
}
