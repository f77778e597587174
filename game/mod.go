package game

import (
	"fmt"

	"golang.org/x/exp/slices"
)

type Player string

const (
	NoPlayer Player = ""
	P1       Player = "p1"
	P2       Player = "p2"
)

func (p Player) Opponent() Player {
	switch p {
	case P1:
		return P2
	case P2:
		return P1
	}
	return NoPlayer
}

// ParsePlayer accepts "p1", "p2", "1" or "2".
func ParsePlayer(text string) (Player, error) {
	switch text {
	case "p1", "1":
		return P1, nil
	case "p2", "2":
		return P2, nil
	}
	return NoPlayer, fmt.Errorf("unknown player %q", text)
}

// Move is a game specific, comparable value produced by State.LegalMoves
type Move interface {
	String() string
}

// State should be immutable - operations on State always return a new copy
type State interface {
	Player() Player
	LegalMoves() []Move
	IsValid(Move) bool
	Play(Move) (State, error)
	// Winner of a terminal state, NoPlayer while the game is running or on a draw
	Winner() Player
	Equal(State) bool
	String() string
}

func isValid(s State, move Move) bool {
	return move != nil && slices.Contains(s.LegalMoves(), move)
}

// lastMoverWins is the winning rule shared by games where the player left without a move loses.
func lastMoverWins(s State) Player {
	if len(s.LegalMoves()) > 0 {
		return NoPlayer
	}
	return s.Player().Opponent()
}
