package bot

import (
	"github.com/tdle/lines-of-action/internal/domain"
)

const (
	// REGION_WEIGHT scales the cluster-count disparity between the
	// colors. Fewer clusters is better; the exact weight is tuning, not
	// contract.
	REGION_WEIGHT = 12
)

// evaluateBoard is the static estimate of a position. A side that has
// gathered its pieces into a single cluster on its own turn scores an
// immediate WINNING_VALUE (positive for White, negative for Black).
// Otherwise the score leans toward the side to move when it holds fewer
// clusters than the opponent.
func evaluateBoard(b *domain.Board) int {
	regWhite := len(b.RegionSizes(domain.White))
	regBlack := len(b.RegionSizes(domain.Black))

	if regWhite == 1 && b.Turn() == domain.White {
		return WINNING_VALUE
	}
	if regBlack == 1 && b.Turn() == domain.Black {
		return -WINNING_VALUE
	}

	score := 1
	if regBlack > regWhite && b.Turn() == domain.White {
		score += regWhite * REGION_WEIGHT
	} else if regWhite > regBlack && b.Turn() == domain.Black {
		score -= regBlack * REGION_WEIGHT
	}
	return score
}
