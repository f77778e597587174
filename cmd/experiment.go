package cmd

import (
	"fmt"

	"perfectplay/experiments"
	"perfectplay/experiments/metrics"
	"perfectplay/game"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
)

func (a *app) experiment() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "experiment",
		Short: "Play match-ups between computer players and record the results",
		Long: heredoc.Doc(`experiment plays a series of games between computer players and
			writes agent_configs.csv, game_records.csv and move_records.csv
			to a new directory under the output directory.

			engine_comparison matches both minimax engines against a random
			player and against each other. parallelism plays recursive
			searchers with 1, 2, 4 and 8 root goroutines against themselves.`),
		Example: heredoc.Doc(`
			$ perfectplay experiment --name engine_comparison -g stonehenge --board-size 2 --games 20`),
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runExperiment()
		},
	}

	flags := cmd.Flags()
	flags.String("name", "engine_comparison", "Experiment: engine_comparison or parallelism")
	flags.Int("games", 10, "Games per match-up")
	flags.String("output-dir", "experiments", "Directory receiving the experiment records")
	a.bind(flags, map[string]string{
		"experiment.name":       "name",
		"experiment.games":      "games",
		"experiment.output_dir": "output-dir",
	})
	return cmd
}

func (a *app) runExperiment() error {
	if err := a.cfg.CheckSearchable(); err != nil {
		return err
	}
	newGame := func() (*game.Game, error) {
		return a.cfg.NewGame()
	}
	settings := a.cfg.Experiment

	var e experiments.Experiment
	switch settings.Name {
	case "engine_comparison":
		e = experiments.EngineComparison(newGame, settings.Games, a.seed())
	case "parallelism":
		e = experiments.Parallelism(newGame, settings.Games, a.seed())
	default:
		return fmt.Errorf("unknown experiment %q, expected engine_comparison or parallelism", settings.Name)
	}
	e.MaxTurns = a.cfg.MaxTurns
	e.LimitDepth(a.cfg.MaxDepth)

	collector, err := e.Run()
	if err != nil {
		return err
	}
	w, err := metrics.NewWriter(settings.OutputDir, e.Name)
	if err != nil {
		return err
	}
	return e.Store(w, collector)
}
