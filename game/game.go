package game

import (
	"fmt"
	"strings"
)

type Kind string

const (
	SubtractSquare Kind = "subtract-square"
	Chopsticks     Kind = "chopsticks"
	Stonehenge     Kind = "stonehenge"
)

var Kinds = []Kind{SubtractSquare, Chopsticks, Stonehenge}

func ParseKind(text string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(text)) {
	case "s", "subtract-square", "subtractsquare":
		return SubtractSquare, nil
	case "c", "chopsticks":
		return Chopsticks, nil
	case "h", "stonehenge":
		return Stonehenge, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownGame, text)
}

// Options configures the starting position of a new game.
type Options struct {
	StartNumber int // Subtract-Square
	BoardSize   int // Stonehenge
}

// Game is a two-player, sequential move, zero-sum, perfect-information game. It owns its
// current state, which is only replaced by playing a validated move.
type Game struct {
	kind           Kind
	startingPlayer Player
	state          State
	parse          func(string) (Move, error)
}

func New(kind Kind, first Player, opts Options) (*Game, error) {
	switch kind {
	case SubtractSquare:
		return NewSubtractSquare(first, opts.StartNumber)
	case Chopsticks:
		return NewChopsticks(first)
	case Stonehenge:
		return NewStonehenge(first, opts.BoardSize)
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownGame, kind)
}

func NewSubtractSquare(first Player, start int) (*Game, error) {
	state, err := NewSubtractSquareState(first, start)
	if err != nil {
		return nil, err
	}
	return &Game{kind: SubtractSquare, startingPlayer: first, state: state, parse: parseSubtraction}, nil
}

// NewChopsticks starts with one finger up on each hand of both players.
func NewChopsticks(first Player) (*Game, error) {
	state, err := NewChopsticksState(first, Hands{1, 1}, Hands{1, 1})
	if err != nil {
		return nil, err
	}
	return &Game{kind: Chopsticks, startingPlayer: first, state: state, parse: parseAttack}, nil
}

func NewStonehenge(first Player, size int) (*Game, error) {
	state, err := NewStonehengeState(first, size)
	if err != nil {
		return nil, err
	}
	return &Game{kind: Stonehenge, startingPlayer: first, state: state, parse: parseCell(state.board)}, nil
}

// FromState wraps an arbitrary position, e.g. one reached during analysis.
func FromState(kind Kind, state State) *Game {
	g := &Game{kind: kind, startingPlayer: state.Player(), state: state}
	switch s := state.(type) {
	case *SubtractSquareState:
		g.parse = parseSubtraction
	case *ChopsticksState:
		g.parse = parseAttack
	case *StonehengeState:
		g.parse = parseCell(s.board)
	}
	return g
}

func (g *Game) Kind() Kind {
	return g.kind
}

func (g *Game) StartingPlayer() Player {
	return g.startingPlayer
}

func (g *Game) State() State {
	return g.state
}

func (g *Game) IsOver(state State) bool {
	return len(state.LegalMoves()) == 0
}

// IsWinner reports whether player has won the game in its current state.
func (g *Game) IsWinner(player Player) bool {
	return g.IsOver(g.state) && g.state.Winner() == player
}

func (g *Game) ParseMove(text string) (Move, error) {
	if g.parse == nil {
		return nil, fmt.Errorf("%w: %s has no move syntax", ErrParseMove, g.kind)
	}
	return g.parse(text)
}

// Play applies move to the current state and makes the result current.
func (g *Game) Play(move Move) error {
	next, err := g.state.Play(move)
	if err != nil {
		return err
	}
	g.state = next
	return nil
}

func (g *Game) Instructions() string {
	switch g.kind {
	case SubtractSquare:
		return "Players take turns subtracting square numbers from the starting number. " +
			"The winner is the person who subtracts to 0."
	case Chopsticks:
		return "Players take turns adding the values of one of their hands to one of their " +
			"opponent's hands (modulo 5). A hand with a total of 5 (or 0) is dead. " +
			"The first player to have 2 dead hands is the loser."
	case Stonehenge:
		return "Players take turns claiming cells. When a player captures at least half of " +
			"the cells in a ley-line, the player captures that ley-line. The first player to " +
			"capture at least half of the ley-lines is the winner. A claimed ley-line cannot " +
			"be taken by the other player."
	}
	return ""
}

func (g *Game) Equal(other *Game) bool {
	return other != nil && g.kind == other.kind && g.state.Equal(other.state)
}

func (g *Game) String() string {
	switch s := g.state.(type) {
	case *StonehengeState:
		return fmt.Sprintf("Game %s with side length %d", g.kind, s.Size())
	}
	return fmt.Sprintf("Game %s: %s", g.kind, g.state)
}
