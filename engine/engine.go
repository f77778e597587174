package engine

import (
	"errors"

	"perfectplay/experiments/metrics"
	"perfectplay/game"
	"perfectplay/searcher"

	"github.com/google/uuid"
)

const MaxTurns = 10000

var (
	ErrIllegalMove = errors.New("strategy chose an illegal move")
	ErrTurnLimit   = errors.New("game did not finish within the turn limit")
)

type Engine interface {
	// Run plays the game until it is over or the turn limit is reached
	Run() (Result, error)
}

type Result struct {
	ID     uuid.UUID
	Winner game.Player // NoPlayer on a draw or an unfinished game
	Turns  int
	Game   metrics.GameMetric
	Moves  []metrics.MoveMetric
}

// Reporter is implemented by strategies that can describe the search behind their last move.
type Reporter interface {
	LastSearch() searcher.SearchMetric
}

// Observer is told about every move once it has been played.
type Observer func(step int, player game.Player, move game.Move, state game.State)
