package searcher

import (
	"errors"
	"fmt"

	"perfectplay/game"
)

// Scores from the perspective of the player to move
const (
	Win  = 1
	Draw = 0
	Loss = -1
)

var (
	ErrGameOver      = errors.New("cannot search a game that is already over")
	ErrDepthExceeded = errors.New("search exceeded the maximum depth")
)

// Strategy picks the next move for the player to move in a game. The caller validates the
// move before playing it.
type Strategy interface {
	FindMove(g *game.Game) (game.Move, error)
}

// terminalScore scores a finished game for the player who would move next.
func terminalScore(state game.State) int {
	switch state.Winner() {
	case state.Player():
		return Win
	case state.Player().Opponent():
		return Loss
	}
	return Draw
}

// play applies a move taken from state.LegalMoves(). A rejection is a bug in the state.
func play(state game.State, move game.Move) game.State {
	next, err := state.Play(move)
	if err != nil {
		panic(fmt.Sprintf("%T rejected its own legal move %v: %v", state, move, err))
	}
	return next
}
