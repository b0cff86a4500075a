package bot

import (
	"github.com/tdle/lines-of-action/internal/domain"
)

const (
	// MINIMAX_DEPTH is the fixed search depth; there is no iterative
	// deepening or time cutoff.
	MINIMAX_DEPTH = 2

	// WINNING_VALUE marks a decided position: positive for White,
	// negative for Black. It stays far below INFTY so window updates
	// cannot overflow.
	WINNING_VALUE = 1 << 20
	INFTY         = 1 << 30
)

// Difficulty display names, as shown to the opposing player.
var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// CalculateBestMove selects a move for the side on turn based on
// difficulty. The second result is false when there is no legal move.
func CalculateBestMove(b *domain.Board, difficulty string) (domain.Move, bool) {
	switch difficulty {
	case "easy":
		return CalculateBestMoveEasy(b)
	case "medium":
		return CalculateBestMoveMedium(b)
	case "hard":
		return CalculateBestMoveMinimax(b)
	default:
		return CalculateBestMoveMedium(b)
	}
}

// CalculateBestMoveMinimax implements hard difficulty: a depth-limited
// minimax search with alpha-beta pruning. The caller's board is copied
// once; the search walks the tree by making and retracting moves on that
// single working copy.
func CalculateBestMoveMinimax(b *domain.Board) (domain.Move, bool) {
	work := b.Copy()
	sense := -1
	if work.Turn() == domain.White {
		sense = 1
	}
	var found domain.Move
	var have bool
	findMove(work, MINIMAX_DEPTH, true, sense, -INFTY, INFTY, &found, &have)
	return found, have
}

// findMove returns the value of the position to sense's side, searching
// depth plies. The chosen move is stored through found only when
// saveMove is set, i.e. at the top level. A child that ties the running
// best overwrites the recorded move, so of equal moves the last one in
// enumeration order wins; tests depend on that.
func findMove(b *domain.Board, depth int, saveMove bool, sense, alpha, beta int, found *domain.Move, have *bool) int {
	if depth == 0 {
		return evaluateBoard(b)
	}

	bestScore := -WINNING_VALUE
	if sense == -1 {
		bestScore = WINNING_VALUE
	}

	for _, move := range b.LegalMoves() {
		b.MakeMove(move)
		score := findMove(b, depth-1, false, sense, alpha, beta, found, have)
		b.Retract()

		if sense == 1 {
			if score > bestScore {
				bestScore = score
			}
			if score > alpha {
				alpha = score
			}
		} else {
			if score < bestScore {
				bestScore = score
			}
			if score < beta {
				beta = score
			}
		}

		if saveMove && bestScore == score {
			*found = move
			*have = true
		}

		if alpha >= beta {
			break
		}
	}
	return bestScore
}
