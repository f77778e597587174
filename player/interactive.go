package player

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"perfectplay/game"
	"perfectplay/searcher"
)

// Interactive asks a person for moves, prompting on out and reading one move per line from in.
type Interactive struct {
	name string
	in   *bufio.Scanner
	out  io.Writer
}

var _ searcher.Strategy = (*Interactive)(nil)

func NewInteractive(name string, in io.Reader, out io.Writer) *Interactive {
	return NewSharedInteractive(name, bufio.NewScanner(in), out)
}

// NewSharedInteractive reads from a scanner that other players may share, so that people
// taking turns at one console never lose each other's buffered lines.
func NewSharedInteractive(name string, in *bufio.Scanner, out io.Writer) *Interactive {
	return &Interactive{name: name, in: in, out: out}
}

// FindMove prompts until it reads a legal move. It returns io.EOF once the input is exhausted.
func (h *Interactive) FindMove(g *game.Game) (game.Move, error) {
	state := g.State()
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.ErrGameOver
	}

	fmt.Fprintf(h.out, "%s\n", state)
	for {
		fmt.Fprintf(h.out, "%s (%s), enter a move: ", h.name, state.Player())
		if !h.in.Scan() {
			if err := h.in.Err(); err != nil {
				return nil, err
			}
			return nil, io.EOF
		}

		text := strings.TrimSpace(h.in.Text())
		if text == "" {
			continue
		}
		move, err := g.ParseMove(text)
		if err != nil {
			fmt.Fprintf(h.out, "%v\n", err)
			continue
		}
		if !state.IsValid(move) {
			fmt.Fprintf(h.out, "%s is not a legal move, choose one of %s\n", move, list(moves))
			continue
		}
		return move, nil
	}
}

func list(moves []game.Move) string {
	names := make([]string, len(moves))
	for i, move := range moves {
		names[i] = move.String()
	}
	return strings.Join(names, ", ")
}
