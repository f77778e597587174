package cmd

import (
	"fmt"
	"io"

	"perfectplay/game"
	"perfectplay/searcher"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
)

func (a *app) solve() *cobra.Command {
	var engineName string
	var showMetrics bool
	cmd := &cobra.Command{
		Use:   "solve",
		Short: "Score the starting position and list its optimal moves",
		Long: heredoc.Doc(`solve searches the whole game tree of the configured starting
			position and prints, for every legal move, the result the player
			to move can force after making it.`),
		Example: heredoc.Doc(`
			$ perfectplay solve --start-number 23
			$ perfectplay solve -g stonehenge --board-size 2 --engine iterative --metrics`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runSolve(engineName, showMetrics, cmd.OutOrStdout())
		},
	}
	cmd.Flags().StringVar(&engineName, "engine", "recursive", "Search engine: recursive or iterative")
	cmd.Flags().BoolVar(&showMetrics, "metrics", false, "Print search counters after solving")
	return cmd
}

type scorer interface {
	Score(state game.State) (int, error)
}

func (a *app) runSolve(engineName string, showMetrics bool, out io.Writer) error {
	if err := a.cfg.CheckSearchable(); err != nil {
		return err
	}
	g, err := a.cfg.NewGame()
	if err != nil {
		return err
	}
	state := g.State()
	fmt.Fprintf(out, "%s\n", state)
	if g.IsOver(state) {
		fmt.Fprintf(out, "Game is over, winner: %s\n", outcomeWinner(state.Winner()))
		return nil
	}

	reg := prometheus.NewRegistry()
	options := append(a.searchOptions(a.seed()), searcher.WithMetrics(searcher.NewPrometheusCollector(reg)))
	var engine scorer
	switch engineName {
	case "recursive":
		engine = searcher.NewRecursive(options...)
	case "iterative":
		engine = searcher.NewIterative(options...)
	default:
		return fmt.Errorf("unknown engine %q, expected recursive or iterative", engineName)
	}

	score, err := engine.Score(state)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s to move can force a %s\n", state.Player(), outcome(score))
	for _, move := range state.LegalMoves() {
		next, err := state.Play(move)
		if err != nil {
			return err
		}
		childScore, err := engine.Score(next)
		if err != nil {
			return err
		}
		marker := " "
		if -childScore == score {
			marker = "*"
		}
		fmt.Fprintf(out, "%s %-4s %s\n", marker, move, outcome(-childScore))
	}

	if showMetrics {
		families, err := reg.Gather()
		if err != nil {
			return err
		}
		for _, family := range families {
			for _, metric := range family.GetMetric() {
				if counter := metric.GetCounter(); counter != nil {
					fmt.Fprintf(out, "%s{engine=%q} %.0f\n", family.GetName(), engineName, counter.GetValue())
				}
			}
		}
	}
	return nil
}

func outcome(score int) string {
	switch score {
	case searcher.Win:
		return "win"
	case searcher.Loss:
		return "loss"
	}
	return "draw"
}

func outcomeWinner(winner game.Player) string {
	if winner == game.NoPlayer {
		return "none (draw)"
	}
	return string(winner)
}
