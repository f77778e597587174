package cmd

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"perfectplay/config"
	"perfectplay/searcher"

	"github.com/stretchr/testify/require"
)

func run(t *testing.T, input string, args ...string) (string, error) {
	t.Helper()
	root := Root()
	var out bytes.Buffer
	root.SetIn(strings.NewReader(input))
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestSolve(t *testing.T) {
	t.Run("subtract-square with two winning moves", func(t *testing.T) {
		out, err := run(t, "", "solve", "--start-number", "23", "--seed", "1")
		require.NoError(t, err)

		require.Contains(t, out, "The current value is: 23")
		require.Contains(t, out, "p1 to move can force a win")
		require.Contains(t, out, "* 1    win")
		require.Contains(t, out, "* 16   win")
		require.Contains(t, out, "  4    loss")
	})

	t.Run("iterative engine with metrics", func(t *testing.T) {
		out, err := run(t, "", "solve", "-g", "stonehenge", "--board-size", "1", "--engine", "iterative", "--metrics")
		require.NoError(t, err)

		require.Contains(t, out, "p1 to move can force a win")
		require.Contains(t, out, `searcher_nodes_total{engine="iterative"}`)
	})

	t.Run("chopsticks without a depth limit", func(t *testing.T) {
		_, err := run(t, "", "solve", "-g", "chopsticks")
		require.ErrorIs(t, err, config.ErrUnboundedSearch)
	})

	t.Run("finished game", func(t *testing.T) {
		out, err := run(t, "", "solve", "--start-number", "0")
		require.NoError(t, err)
		require.Contains(t, out, "Game is over, winner: p2")
	})

	t.Run("unknown engine", func(t *testing.T) {
		_, err := run(t, "", "solve", "--engine", "oracle")
		require.Error(t, err)
	})
}

func TestPlay(t *testing.T) {
	t.Run("minimax against random", func(t *testing.T) {
		out, err := run(t, "", "play", "--start-number", "8", "--p1", "recursive", "--p2", "random", "--seed", "3")
		require.NoError(t, err)

		require.Contains(t, out, "1. p1 plays 1")
		require.Contains(t, out, "p1 wins after")
	})

	t.Run("human input", func(t *testing.T) {
		out, err := run(t, "one\n1\n", "play", "--start-number", "2", "--p1", "human", "--p2", "random", "--seed", "1")
		require.NoError(t, err)

		require.Contains(t, out, "Player 1 (p1), enter a move")
		require.Contains(t, out, "1. p1 plays 1")
		require.Contains(t, out, "2. p2 plays 1")
		require.Contains(t, out, "p2 wins after 2 moves.")
	})

	t.Run("input ends", func(t *testing.T) {
		_, err := run(t, "", "play", "--start-number", "5")
		require.Error(t, err)
	})

	t.Run("invalid player", func(t *testing.T) {
		_, err := run(t, "", "play", "--p2", "oracle")
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("two people sharing one input", func(t *testing.T) {
		out, err := run(t, "1\n1\n", "play", "--start-number", "2", "--p1", "human", "--p2", "human")
		require.NoError(t, err)

		require.Contains(t, out, "Player 2 (p2), enter a move")
		require.Contains(t, out, "2. p2 plays 1")
		require.Contains(t, out, "p2 wins after 2 moves.")
	})

	t.Run("chopsticks minimax without a depth limit", func(t *testing.T) {
		_, err := run(t, "", "play", "-g", "chopsticks", "--p1", "iterative", "--p2", "random")
		require.ErrorIs(t, err, config.ErrUnboundedSearch)
	})

	t.Run("chopsticks minimax reaching the depth limit", func(t *testing.T) {
		_, err := run(t, "", "play", "-g", "chopsticks", "--p1", "iterative", "--p2", "random", "--max-depth", "4")
		require.ErrorIs(t, err, searcher.ErrDepthExceeded)
	})

	t.Run("chopsticks between people needs no limit", func(t *testing.T) {
		_, err := run(t, "LL\n", "play", "-g", "chopsticks", "--p1", "human", "--p2", "random", "--seed", "2")
		require.ErrorIs(t, err, io.EOF, "Game should start and stop only when input runs out")
	})
}

func TestExperiment(t *testing.T) {
	dir := t.TempDir()
	_, err := run(t, "", "experiment", "-g", "stonehenge", "--board-size", "1", "--games", "2", "--output-dir", dir, "--seed", "5")
	require.NoError(t, err)

	runs, err := filepath.Glob(filepath.Join(dir, "engine_comparison", "*"))
	require.NoError(t, err)
	require.Len(t, runs, 1)
	for _, name := range []string{"agent_configs.csv", "game_records.csv", "move_records.csv"} {
		_, err := os.Stat(filepath.Join(runs[0], name))
		require.NoError(t, err, name)
	}
}
