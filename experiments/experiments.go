package experiments

import (
	"errors"
	"fmt"

	"perfectplay/engine"
	"perfectplay/experiments/metrics"
	"perfectplay/game"
	"perfectplay/player"
	"perfectplay/searcher"

	"github.com/rs/zerolog/log"
)

const (
	Recursive = "recursive"
	Iterative = "iterative"
	Random    = "random"
)

var ErrUnknownEngine = errors.New("unknown engine")

// GameFactory creates a fresh game for every game of an experiment.
type GameFactory func() (*game.Game, error)

// MatchUp pairs two agents. Games of a match-up alternate which agent plays p1.
type MatchUp [2]metrics.AgentConfig

type Experiment struct {
	Name     string
	NewGame  GameFactory
	Configs  []metrics.AgentConfig
	MatchUps []MatchUp
	Games    int // Per match up
	MaxTurns int
}

// EngineComparison pits both minimax engines against a random player and against each other.
func EngineComparison(newGame GameFactory, games int, seed uint64) Experiment {
	configs := []metrics.AgentConfig{
		{ID: 1, Engine: Recursive, Seed: seed, Goroutines: 1},
		{ID: 2, Engine: Iterative, Seed: seed + 1},
		{ID: 3, Engine: Random, Seed: seed + 2},
	}
	return Experiment{
		Name:    "engine_comparison",
		NewGame: newGame,
		Configs: configs,
		MatchUps: []MatchUp{
			{configs[0], configs[2]},
			{configs[1], configs[2]},
			{configs[0], configs[1]},
		},
		Games: games,
	}
}

// Parallelism plays recursive agents with increasing root goroutines against themselves,
// recording how search time scales.
func Parallelism(newGame GameFactory, games int, seed uint64) Experiment {
	configs := []metrics.AgentConfig{}
	matchUps := []MatchUp{}
	for i, goroutines := range []int{1, 2, 4, 8} {
		config := metrics.AgentConfig{ID: i + 1, Engine: Recursive, Seed: seed + uint64(i), Goroutines: goroutines}
		configs = append(configs, config)
		// Same config for both players for the same playing strength
		matchUps = append(matchUps, MatchUp{config, config})
	}
	return Experiment{
		Name:     "parallelism",
		NewGame:  newGame,
		Configs:  configs,
		MatchUps: matchUps,
		Games:    games,
	}
}

// LimitDepth sets the search depth limit of every agent, needed for games that can cycle.
func (e *Experiment) LimitDepth(depth int) {
	for i := range e.Configs {
		e.Configs[i].MaxDepth = depth
	}
	for i := range e.MatchUps {
		e.MatchUps[i][0].MaxDepth = depth
		e.MatchUps[i][1].MaxDepth = depth
	}
}

// Run plays every match-up and returns the records of all games.
func (e Experiment) Run() (*metrics.Collector, error) {
	collector := metrics.NewCollector()
	log.Info().Str("experiment", e.Name).Msg("starting experiment")

	for mi, matchUp := range e.MatchUps {
		log.Info().Msgf("starting matchup %d of %d between agent %d (%s) and agent %d (%s)",
			mi+1, len(e.MatchUps), matchUp[0].ID, matchUp[0].Engine, matchUp[1].ID, matchUp[1].Engine)

		for i := 0; i < e.Games; i++ {
			first, second := matchUp[0], matchUp[1]
			if i%2 == 1 {
				first, second = second, first
			}
			result, err := e.runGame(first, second)
			if err != nil {
				return collector, fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			collector.Add(first.ID, second.ID, result.Game, result.Moves)
			log.Info().Msgf("completed matchup %d of %d game %d with winner: %s", mi+1, len(e.MatchUps), i+1, winnerName(result.Winner))
		}
	}

	log.Info().Str("experiment", e.Name).Interface("wins", collector.Wins()).Msg("completed experiment")
	return collector, nil
}

// Store writes the agent configs and the collected records to w.
func (e Experiment) Store(w *metrics.Writer, collector *metrics.Collector) error {
	if err := w.WriteAgentConfigs(e.Configs); err != nil {
		return fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := w.WriteGameRecords(collector.GameRecords()); err != nil {
		return fmt.Errorf("failed to write game records: %w", err)
	}
	if err := w.WriteMoveRecords(collector.MoveRecords()); err != nil {
		return fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Str("dir", w.Dir()).Msg("stored experiment records")
	return nil
}

func (e Experiment) runGame(p1, p2 metrics.AgentConfig) (engine.Result, error) {
	g, err := e.NewGame()
	if err != nil {
		return engine.Result{}, err
	}
	s1, err := NewStrategy(p1)
	if err != nil {
		return engine.Result{}, err
	}
	s2, err := NewStrategy(p2)
	if err != nil {
		return engine.Result{}, err
	}

	options := []engine.Option{}
	if e.MaxTurns > 0 {
		options = append(options, engine.WithMaxTurns(e.MaxTurns))
	}
	return engine.NewLocal(g, s1, s2, options...).Run()
}

// NewStrategy builds the agent described by config. Minimax agents report their search metrics.
func NewStrategy(config metrics.AgentConfig) (searcher.Strategy, error) {
	options := []searcher.Option{
		searcher.WithSeed(config.Seed),
		searcher.WithMetrics(searcher.NewMetricsCollector()),
	}
	if config.Goroutines > 0 {
		options = append(options, searcher.WithGoroutines(config.Goroutines))
	}
	if config.MaxDepth > 0 {
		options = append(options, searcher.WithMaxDepth(config.MaxDepth))
	}

	switch config.Engine {
	case Recursive:
		return searcher.NewRecursive(options...), nil
	case Iterative:
		return searcher.NewIterative(options...), nil
	case Random:
		return player.NewSeededRandom(config.Seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEngine, config.Engine)
}

func winnerName(winner game.Player) string {
	if winner == game.NoPlayer {
		return "draw"
	}
	return string(winner)
}
