package cmd

import (
	"bufio"
	"fmt"
	"io"
	"time"

	"perfectplay/config"
	"perfectplay/engine"
	"perfectplay/game"
	"perfectplay/player"
	"perfectplay/searcher"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/briandowns/spinner"
	"github.com/spf13/cobra"
)

func (a *app) play() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play a game between people and computer players",
		Long: heredoc.Doc(`play runs a single game. Each side is controlled by a
			person typing moves (human), exhaustive minimax search
			(recursive or iterative) or a random mover (random).

			Chopsticks positions can repeat forever, so exhaustive search
			never finishes from the opening. A minimax player in Chopsticks
			requires --max-depth, and its search then stops with a
			"search exceeded the maximum depth" error. This is a known
			limitation, not a crash: play Chopsticks with human and random
			players.`),
		Example: heredoc.Doc(`
			$ perfectplay play --game subtract-square --start-number 30
			$ perfectplay play -g stonehenge --board-size 3 --p1 random --p2 iterative`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runPlay(cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	flags := cmd.Flags()
	flags.String("p1", config.Human, "Controller of p1: human, recursive, iterative or random")
	flags.String("p2", config.Recursive, "Controller of p2: human, recursive, iterative or random")
	flags.Int("max-turns", engine.MaxTurns, "Stop the game after this many moves")
	a.bind(flags, map[string]string{
		"player1":   "p1",
		"player2":   "p2",
		"max_turns": "max-turns",
	})
	return cmd
}

func (a *app) runPlay(in io.Reader, out io.Writer) error {
	if a.cfg.HasMinimaxPlayer() {
		if err := a.cfg.CheckSearchable(); err != nil {
			return err
		}
	}
	g, err := a.cfg.NewGame()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s\n%s\n\n", g, g.Instructions())

	seed := a.seed()
	// Only show search progress when a person is waiting for the reply
	watched := a.cfg.Player1 == config.Human || a.cfg.Player2 == config.Human
	// One scanner for both sides so neither buffers the other's moves
	lines := bufio.NewScanner(in)
	p1, err := a.strategy(a.cfg.Player1, "Player 1", seed, watched, lines, out)
	if err != nil {
		return err
	}
	p2, err := a.strategy(a.cfg.Player2, "Player 2", seed+1, watched, lines, out)
	if err != nil {
		return err
	}

	e := engine.NewLocal(g, p1, p2,
		engine.WithMaxTurns(a.cfg.MaxTurns),
		engine.WithObserver(func(step int, p game.Player, move game.Move, state game.State) {
			fmt.Fprintf(out, "%d. %s plays %s\n", step, p, move)
		}),
	)
	result, err := e.Run()
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%s\n", g.State())
	if result.Winner == game.NoPlayer {
		fmt.Fprintf(out, "Draw after %d moves.\n", result.Turns)
	} else {
		fmt.Fprintf(out, "%s wins after %d moves.\n", result.Winner, result.Turns)
	}
	return nil
}

func (a *app) seed() uint64 {
	if a.cfg.Seed != 0 {
		return a.cfg.Seed
	}
	return uint64(time.Now().UnixNano())
}

func (a *app) searchOptions(seed uint64) []searcher.Option {
	return []searcher.Option{
		searcher.WithSeed(seed),
		searcher.WithMaxDepth(a.cfg.MaxDepth),
		searcher.WithGoroutines(a.cfg.Goroutines),
	}
}

func (a *app) strategy(kind, name string, seed uint64, watched bool, in *bufio.Scanner, out io.Writer) (searcher.Strategy, error) {
	var strategy searcher.Strategy
	switch kind {
	case config.Human:
		return player.NewSharedInteractive(name, in, out), nil
	case config.Random:
		return player.NewSeededRandom(seed), nil
	case config.Recursive:
		strategy = searcher.NewRecursive(a.searchOptions(seed)...)
	case config.Iterative:
		strategy = searcher.NewIterative(a.searchOptions(seed)...)
	default:
		return nil, fmt.Errorf("%w: unknown player %q", config.ErrInvalidConfig, kind)
	}
	if watched {
		return withSpinner(strategy, out), nil
	}
	return strategy, nil
}

// spinning shows a spinner on out while the wrapped strategy searches.
type spinning struct {
	searcher.Strategy
	s *spinner.Spinner
}

func withSpinner(strategy searcher.Strategy, out io.Writer) searcher.Strategy {
	s := spinner.New(spinner.CharSets[14], 100*time.Millisecond, spinner.WithWriter(out))
	s.Suffix = " searching..."
	return &spinning{Strategy: strategy, s: s}
}

func (s *spinning) FindMove(g *game.Game) (game.Move, error) {
	s.s.Start()
	defer s.s.Stop()
	return s.Strategy.FindMove(g)
}
