package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("creating every kind of game", func(t *testing.T) {
		for _, kind := range Kinds {
			g, err := New(kind, P2, Options{StartNumber: 10, BoardSize: 2})

			require.NoError(t, err, "kind %s", kind)
			require.Equal(t, kind, g.Kind())
			require.Equal(t, P2, g.StartingPlayer())
			require.Equal(t, P2, g.State().Player())
			require.NotEmpty(t, g.Instructions())
			require.False(t, g.IsOver(g.State()))
		}
	})

	t.Run("rejecting an unknown kind", func(t *testing.T) {
		_, err := New(Kind("go"), P1, Options{})
		require.ErrorIs(t, err, ErrUnknownGame)
	})

	t.Run("rejecting a bad starting position", func(t *testing.T) {
		_, err := New(Stonehenge, P1, Options{BoardSize: 9})
		require.ErrorIs(t, err, ErrBoardSize)

		_, err = New(SubtractSquare, P1, Options{StartNumber: -3})
		require.ErrorIs(t, err, ErrStartNumber)
	})
}

func TestParseKind(t *testing.T) {
	for text, expected := range map[string]Kind{
		"s":          SubtractSquare,
		"Chopsticks": Chopsticks,
		"h":          Stonehenge,
	} {
		kind, err := ParseKind(text)
		require.NoError(t, err)
		require.Equal(t, expected, kind)
	}

	_, err := ParseKind("tic-tac-toe")
	require.ErrorIs(t, err, ErrUnknownGame)
}

func TestParsePlayer(t *testing.T) {
	p, err := ParsePlayer("2")
	require.NoError(t, err)
	require.Equal(t, P2, p)
	require.Equal(t, P1, p.Opponent())
	require.Equal(t, NoPlayer, NoPlayer.Opponent())

	_, err = ParsePlayer("p3")
	require.Error(t, err)
}

func TestGamePlay(t *testing.T) {
	t.Run("replacing the current state", func(t *testing.T) {
		g, _ := NewSubtractSquare(P1, 2)

		require.NoError(t, g.Play(Subtraction(1)))

		require.Equal(t, 1, g.State().(*SubtractSquareState).Remaining())
		require.Equal(t, P2, g.State().Player())
	})

	t.Run("keeping the current state on an invalid move", func(t *testing.T) {
		g, _ := NewChopsticks(P1)
		before := g.State()

		err := g.Play(Attack("xx"))

		require.ErrorIs(t, err, ErrInvalidMove)
		require.Same(t, before, g.State())
	})

	t.Run("declaring the player who made the last move the winner", func(t *testing.T) {
		g, _ := NewSubtractSquare(P1, 4)

		require.NoError(t, g.Play(Subtraction(4)))

		require.True(t, g.IsOver(g.State()))
		require.True(t, g.IsWinner(P1))
		require.False(t, g.IsWinner(P2))
	})

	t.Run("nobody wins a running game", func(t *testing.T) {
		g, _ := NewChopsticks(P1)

		require.False(t, g.IsWinner(P1))
		require.False(t, g.IsWinner(P2))
	})
}

func TestGameParseMove(t *testing.T) {
	t.Run("round tripping every legal move", func(t *testing.T) {
		for _, kind := range Kinds {
			g, _ := New(kind, P1, Options{StartNumber: 20, BoardSize: 3})
			for _, move := range g.State().LegalMoves() {
				parsed, err := g.ParseMove(move.String())

				require.NoError(t, err)
				require.Equal(t, move, parsed)
				require.True(t, g.State().IsValid(parsed))
			}
		}
	})

	t.Run("reporting unrecognised text as an error", func(t *testing.T) {
		for _, kind := range Kinds {
			g, _ := New(kind, P1, Options{StartNumber: 20, BoardSize: 3})

			_, err := g.ParseMove("?!")

			require.ErrorIs(t, err, ErrParseMove)
		}
	})
}

func TestFromState(t *testing.T) {
	state, _ := NewChopsticksState(P2, Hands{0, 1}, Hands{2, 2})
	g := FromState(Chopsticks, state)

	require.Equal(t, P2, g.StartingPlayer())
	move, err := g.ParseMove("lr")
	require.NoError(t, err)
	require.True(t, g.State().IsValid(move))

	other := FromState(Chopsticks, state)
	require.True(t, g.Equal(other))
	require.Equal(t, "Game chopsticks: Player 1: 0 - 1; Player 2: 2 - 2", g.String())
}
