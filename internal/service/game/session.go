package game

import (
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tdle/lines-of-action/internal/domain"
	"github.com/tdle/lines-of-action/internal/service/bot"
)

const (
	ErrNoSource domain.Error = "no move source for side"
	ErrNoMove   domain.Error = "no legal moves available"
)

// MoveSource supplies the next move for one side. Implementations must
// not mutate the board they are given.
type MoveSource interface {
	NextMove(b *domain.Board) (domain.Move, error)
}

// Session drives one game between two move sources.
type Session struct {
	GameID    string
	CreatedAt time.Time

	board   *domain.Board
	sources map[domain.Piece]MoveSource
	log     *zap.SugaredLogger
}

// NewSession starts a fresh game. moveLimit caps each side's moves
// before a tie; 0 keeps the default.
func NewSession(white, black MoveSource, moveLimit int, log *zap.SugaredLogger) (*Session, error) {
	board := domain.NewBoard()
	if moveLimit > 0 {
		if err := board.SetMoveLimit(moveLimit); err != nil {
			return nil, err
		}
	}
	return &Session{
		GameID:    uuid.NewString(),
		CreatedAt: time.Now(),
		board:     board,
		sources:   map[domain.Piece]MoveSource{domain.White: white, domain.Black: black},
		log:       log,
	}, nil
}

// Board exposes the live board for display and queries.
func (s *Session) Board() *domain.Board {
	return s.board
}

// Run plays the game out and returns the winner; Empty means a tie.
// A source returning an illegal move aborts the session with
// ErrIllegalMove rather than panicking the board.
func (s *Session) Run() (domain.Piece, error) {
	s.log.Infow("game started", "game_id", s.GameID)

	for !s.board.GameOver() {
		side := s.board.Turn()
		source, ok := s.sources[side]
		if !ok || source == nil {
			return domain.Empty, ErrNoSource
		}

		move, err := source.NextMove(s.board)
		if err != nil {
			return domain.Empty, err
		}
		// IsLegal alone does not bind the move to the side on turn, so
		// check ownership of the origin piece here.
		if s.board.Get(move.From) != side || !s.board.IsLegalMove(move) {
			s.log.Errorw("illegal move rejected",
				"game_id", s.GameID, "side", side.FullName(), "move", move.String())
			return domain.Empty, domain.ErrIllegalMove
		}

		s.board.MakeMove(move)
		made := s.board.Moves()[s.board.MovesMade()-1]
		s.log.Infow("move made",
			"game_id", s.GameID,
			"side", side.FullName(),
			"move", made.String(),
			"capture", made.Capture,
			"moves_made", s.board.MovesMade())
	}

	winner, _ := s.board.Winner()
	s.log.Infow("game over",
		"game_id", s.GameID,
		"winner", winner.FullName(),
		"moves_made", s.board.MovesMade())
	return winner, nil
}

// BotSource adapts the bot package as a MoveSource.
type BotSource struct {
	Difficulty string
}

func (bs BotSource) NextMove(b *domain.Board) (domain.Move, error) {
	move, ok := bot.CalculateBestMove(b, bs.Difficulty)
	if !ok {
		return domain.Move{}, ErrNoMove
	}
	return move, nil
}
