package cmd

import (
	"fmt"
	"os"

	"perfectplay/config"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// app carries the configuration shared by every subcommand.
type app struct {
	v   *viper.Viper
	cfg *config.Config
}

func Root() *cobra.Command {
	a := &app{v: viper.New()}
	root := &cobra.Command{
		Use:   "perfectplay",
		Short: "Play and solve two-player games with perfect information",
		Long: heredoc.Doc(`perfectplay plays Subtract-Square, Chopsticks and Stonehenge
			against people or against exhaustive minimax search, which
			always finds a move that guarantees the best possible result.

			Settings come from flags, PERFECTPLAY_* environment variables
			and an optional YAML config file, in that order of priority.`),
		Args: cobra.NoArgs,

		SilenceErrors: true,
		SilenceUsage:  true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("config")
			cfg, err := config.Load(a.v, path)
			if err != nil {
				return err
			}
			a.cfg = cfg
			zerolog.SetGlobalLevel(cfg.Level())
			log.Debug().Interface("config", cfg).Msg("loaded configuration")
			return nil
		},
	}

	// global flags
	flags := root.PersistentFlags()
	flags.String("config", "", "Path to a YAML config file")
	flags.String("log-level", "info", "Log level: trace, debug, info, warn or error")
	flags.Uint64("seed", 0, "Seed for tie-breaking and random players, 0 uses the clock")
	flags.Int("max-depth", 0, "Fail searches deeper than this many moves, 0 for no limit")
	flags.Int("goroutines", 1, "Goroutines scoring the root moves of a recursive search")
	flags.StringP("game", "g", "subtract-square", "Game: subtract-square, chopsticks or stonehenge")
	flags.Int("start-number", 20, "Starting number for Subtract-Square")
	flags.Int("board-size", 2, "Side length of the Stonehenge board, 1 to 5")
	flags.String("first", "p1", "Player to move first: p1 or p2")
	a.bind(flags, map[string]string{
		"log_level":    "log-level",
		"seed":         "seed",
		"max_depth":    "max-depth",
		"goroutines":   "goroutines",
		"game":         "game",
		"start_number": "start-number",
		"board_size":   "board-size",
		"first_player": "first",
	})

	root.AddCommand(a.play())
	root.AddCommand(a.solve())
	root.AddCommand(a.experiment())
	return root
}

// bind maps config keys to flag names so that set flags override every other source.
func (a *app) bind(flags *pflag.FlagSet, keys map[string]string) {
	for key, name := range keys {
		if err := a.v.BindPFlag(key, flags.Lookup(name)); err != nil {
			panic(fmt.Sprintf("flag %s is not defined: %v", name, err))
		}
	}
}

func Execute() error {
	root := Root()
	root.SetArgs(os.Args[1:])
	return root.Execute()
}
