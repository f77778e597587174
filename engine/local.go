package engine

import (
	"fmt"
	"time"

	"perfectplay/experiments/metrics"
	"perfectplay/game"
	"perfectplay/searcher"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

type Option func(l *Local)

// Local runs a game in-process, asking each player's strategy for its moves in turn.
type Local struct {
	id         uuid.UUID
	game       *game.Game
	strategies map[game.Player]searcher.Strategy
	maxTurns   int
	observer   Observer
}

var _ Engine = (*Local)(nil)

func WithMaxTurns(turns int) Option {
	return func(l *Local) {
		if turns > 0 {
			l.maxTurns = turns
		}
	}
}

func WithObserver(observer Observer) Option {
	return func(l *Local) {
		l.observer = observer
	}
}

func WithID(id uuid.UUID) Option {
	return func(l *Local) {
		l.id = id
	}
}

func NewLocal(g *game.Game, p1, p2 searcher.Strategy, options ...Option) *Local {
	if p1 == nil || p2 == nil {
		panic("both players need a strategy")
	}
	l := &Local{ // Default values
		id:         uuid.New(),
		game:       g,
		strategies: map[game.Player]searcher.Strategy{game.P1: p1, game.P2: p2},
		maxTurns:   MaxTurns,
	}
	for _, option := range options {
		option(l)
	}
	return l
}

func (l *Local) ID() uuid.UUID {
	return l.id
}

// Run executes the game loop. A strategy error or an illegal move stops the game; the
// partial result is returned alongside the error.
func (l *Local) Run() (Result, error) {
	logger := log.With().Str("run", l.id.String()).Str("game", string(l.game.Kind())).Logger()
	start := time.Now()
	result := Result{
		ID: l.id,
		Game: metrics.GameMetric{
			RunID:          l.id,
			StartingPlayer: l.game.State().Player(),
			StartTime:      start,
		},
	}
	finish := func() Result {
		result.Winner = l.game.State().Winner()
		result.Game.Winner = result.Winner
		result.Game.EndTime = time.Now()
		result.Game.Duration = result.Game.EndTime.Sub(start)
		result.Game.TotalMoves = result.Turns
		return result
	}

	logger.Info().Str("player", string(result.Game.StartingPlayer)).Msg("game started")

	for !l.game.IsOver(l.game.State()) {
		if result.Turns >= l.maxTurns {
			return finish(), fmt.Errorf("%w: stopped after %d turns", ErrTurnLimit, l.maxTurns)
		}

		state := l.game.State()
		player := state.Player()
		strategy := l.strategies[player]

		moveStart := time.Now()
		move, err := strategy.FindMove(l.game)
		if err != nil {
			return finish(), fmt.Errorf("%s could not choose a move: %w", player, err)
		}
		elapsed := time.Since(moveStart)
		if !state.IsValid(move) {
			return finish(), fmt.Errorf("%w: %s played %v in %s", ErrIllegalMove, player, move, state)
		}
		if err := l.game.Play(move); err != nil {
			return finish(), err
		}

		result.Turns++
		metric := metrics.MoveMetric{
			Step:     result.Turns,
			Player:   player,
			Move:     move.String(),
			Duration: elapsed,
		}
		if reporter, ok := strategy.(Reporter); ok {
			metric.Search = reporter.LastSearch()
		}
		result.Moves = append(result.Moves, metric)

		logger.Debug().Int("step", result.Turns).Str("player", string(player)).Str("move", move.String()).Dur("duration", elapsed).Msg("move played")
		if l.observer != nil {
			l.observer(result.Turns, player, move, l.game.State())
		}
	}

	result = finish()
	logger.Info().Str("winner", string(result.Winner)).Int("turns", result.Turns).Dur("duration", result.Game.Duration).Msg("game over")
	return result, nil
}
