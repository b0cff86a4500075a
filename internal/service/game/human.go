package game

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/tdle/lines-of-action/internal/domain"
)

// HumanSource reads moves in two-square notation ("c4d5") from an input
// stream, re-prompting on malformed or illegal input.
type HumanSource struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewHumanSource(in io.Reader, out io.Writer) *HumanSource {
	return &HumanSource{in: bufio.NewScanner(in), out: out}
}

func (h *HumanSource) NextMove(b *domain.Board) (domain.Move, error) {
	for {
		fmt.Fprintf(h.out, "%s\n%s> ", b, b.Turn().FullName())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return domain.Move{}, err
			}
			return domain.Move{}, io.EOF
		}

		text := strings.TrimSpace(h.in.Text())
		move, err := domain.ParseMove(text)
		if err != nil {
			fmt.Fprintln(h.out, err)
			continue
		}
		if b.Get(move.From) != b.Turn() || !b.IsLegalMove(move) {
			fmt.Fprintln(h.out, domain.ErrIllegalMove)
			continue
		}
		return move, nil
	}
}
