package game

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func cells(labels string) []int {
	out := []int{}
	for _, r := range labels {
		out = append(out, int(r-'A'))
	}
	return out
}

func TestStonehengeBoard(t *testing.T) {
	t.Run("size one", func(t *testing.T) {
		b := newBoard(1)

		require.Equal(t, 3, b.cellCount())
		require.Equal(t, 6, b.lineCount(), "Each of the 3 families should hold size+1 ley-lines")
		require.Equal(t, [][]int{cells("AB"), cells("C")}, b.lines[Row])
		require.Equal(t, [][]int{cells("AC"), cells("B")}, b.lines[DiagonalRight])
		require.Equal(t, [][]int{cells("A"), cells("BC")}, b.lines[DiagonalLeft])
	})

	t.Run("size three", func(t *testing.T) {
		b := newBoard(3)

		require.Equal(t, 12, b.cellCount())
		require.Equal(t, [][]int{cells("AB"), cells("CDE"), cells("FGHI"), cells("JKL")}, b.lines[Row])
		require.Equal(t, [][]int{cells("FJ"), cells("CGK"), cells("ADHL"), cells("BEI")}, b.lines[DiagonalRight])
		require.Equal(t, [][]int{cells("ACF"), cells("BDGJ"), cells("EHK"), cells("IL")}, b.lines[DiagonalLeft])
	})

	t.Run("every cell lies on exactly one line per family", func(t *testing.T) {
		for size := MinBoardSize; size <= MaxBoardSize; size++ {
			b := newBoard(size)
			for f := 0; f < families; f++ {
				seen := make([]int, b.cellCount())
				for i, line := range b.lines[f] {
					for _, c := range line {
						seen[c]++
						require.Equal(t, i, b.through[c][f])
					}
				}
				for c, n := range seen {
					require.Equal(t, 1, n, "size %d family %d cell %d", size, f, c)
				}
			}
		}
	})

	t.Run("largest board uses 25 labels", func(t *testing.T) {
		b := newBoard(MaxBoardSize)

		require.Equal(t, 25, b.cellCount())
		require.Equal(t, Cell("Y"), b.label(24))
	})
}

func TestNewStonehengeState(t *testing.T) {
	t.Run("empty board", func(t *testing.T) {
		state, err := NewStonehengeState(P1, 2)
		require.NoError(t, err)

		require.Len(t, state.LegalMoves(), 7)
		require.Equal(t, 9, state.LineCount())
		require.Zero(t, state.ClaimedLines(P1))
		require.Equal(t, NoPlayer, state.Winner())
	})

	t.Run("rejecting unsupported sizes", func(t *testing.T) {
		_, err := NewStonehengeState(P1, 0)
		require.ErrorIs(t, err, ErrBoardSize)

		_, err = NewStonehengeState(P1, MaxBoardSize+1)
		require.ErrorIs(t, err, ErrBoardSize)
	})
}

func TestStonehengePlay(t *testing.T) {
	t.Run("claiming half of a two cell ley-line claims it", func(t *testing.T) {
		state, _ := NewStonehengeState(P1, 1)

		next, err := state.Play(Cell("A"))

		require.NoError(t, err)
		sh := next.(*StonehengeState)
		markers := sh.Markers()
		require.Equal(t, P1, markers[Row][0], "{A, B} should be claimed")
		require.Equal(t, P1, markers[DiagonalRight][0], "{A, C} should be claimed")
		require.Equal(t, P1, markers[DiagonalLeft][0], "{A} should be claimed")
		require.Equal(t, NoPlayer, markers[Row][1])
		require.Equal(t, 3, sh.ClaimedLines(P1))
	})

	t.Run("holding half the ley-lines ends the game", func(t *testing.T) {
		g, _ := NewStonehenge(P1, 1)

		require.NoError(t, g.Play(Cell("C")))

		require.True(t, g.IsOver(g.State()))
		require.True(t, g.IsWinner(P1))
		require.False(t, g.IsWinner(P2))
	})

	t.Run("a longer ley-line needs half of its cells", func(t *testing.T) {
		state, _ := NewStonehengeState(P1, 3)
		var s State = state
		for _, move := range []string{"F", "A", "G"} {
			var err error
			s, err = s.Play(Cell(move))
			require.NoError(t, err)
		}

		markers := s.(*StonehengeState).Markers()
		require.Equal(t, P1, markers[Row][2], "2 of 4 cells in {F, G, H, I} should claim it")
		require.Equal(t, P1, markers[DiagonalRight][0], "F alone should claim {F, J}")
		require.Equal(t, P2, markers[Row][0], "A alone should claim {A, B}")
		require.Equal(t, NoPlayer, markers[DiagonalLeft][0], "One cell each of {A, C, F} should leave it unclaimed")
		require.Equal(t, NoPlayer, markers[DiagonalRight][2], "1 of 4 cells in {A, D, H, L} should not claim it")
	})

	t.Run("claimed ley-lines never change owner", func(t *testing.T) {
		state, _ := NewStonehengeState(P1, 2)
		var s State = state
		// p1 claims row {A, B} with A, p2 then takes B
		for _, move := range []string{"A", "B"} {
			var err error
			s, err = s.Play(Cell(move))
			require.NoError(t, err)
		}

		require.Equal(t, P1, s.(*StonehengeState).Markers()[Row][0])
	})

	t.Run("rejecting a claimed cell", func(t *testing.T) {
		state, _ := NewStonehengeState(P1, 2)
		next, _ := state.Play(Cell("D"))

		_, err := next.Play(Cell("D"))

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("rejecting a cell outside the board", func(t *testing.T) {
		state, _ := NewStonehengeState(P1, 1)

		_, err := state.Play(Cell("D"))

		require.ErrorIs(t, err, ErrInvalidMove)
	})

	t.Run("leaving the receiver untouched", func(t *testing.T) {
		state, _ := NewStonehengeState(P2, 2)
		same, _ := NewStonehengeState(P2, 2)

		_, err := state.Play(Cell("A"))

		require.NoError(t, err)
		require.True(t, state.Equal(same))
		require.Equal(t, same.Markers(), state.Markers())
	})
}

func TestStonehengeMarkersAreMonotonic(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	for size := 2; size <= 4; size++ {
		for game := 0; game < 50; game++ {
			state, _ := NewStonehengeState(P1, size)
			var s State = state
			for len(s.LegalMoves()) > 0 {
				before := s.(*StonehengeState)
				moves := s.LegalMoves()
				next, err := s.Play(moves[rng.Intn(len(moves))])
				require.NoError(t, err)
				after := next.(*StonehengeState)

				for f, group := range before.markers {
					for i, owner := range group {
						if owner != NoPlayer {
							require.Equal(t, owner, after.markers[f][i], "Claimed marker should never change")
						}
					}
				}
				for c, owner := range before.cells {
					if owner != NoPlayer {
						require.Equal(t, owner, after.cells[c], "Claimed cell should never change")
					}
				}
				s = next
			}
			require.NotEqual(t, NoPlayer, s.Winner(), "Stonehenge always ends with a player holding half the ley-lines")
			require.Equal(t, s.Player().Opponent(), s.Winner(), "The last mover should be the winner")
		}
	}
}

func TestStonehengeWinner(t *testing.T) {
	full := func(markers [families][]Player) *StonehengeState {
		s, _ := NewStonehengeState(P1, 1)
		s.cells = []Player{P1, P2, P1}
		s.markers = markers
		return s
	}

	t.Run("majority of ley-lines once the board is full", func(t *testing.T) {
		s := full([families][]Player{{P1, P2}, {P1, NoPlayer}, {NoPlayer, NoPlayer}})

		require.Empty(t, s.LegalMoves())
		require.Equal(t, P1, s.Winner())
	})

	t.Run("draw on equal ley-lines once the board is full", func(t *testing.T) {
		s := full([families][]Player{{P1, P2}, {P2, P1}, {NoPlayer, NoPlayer}})

		require.Empty(t, s.LegalMoves())
		require.Equal(t, NoPlayer, s.Winner())
	})
}

func TestStonehengeString(t *testing.T) {
	s, _ := NewStonehengeState(P1, 3)
	labels := "11211 22H2J2L"
	owners := map[rune]Player{'1': P1, '2': P2}
	i := 0
	for _, r := range labels {
		if r == ' ' {
			continue
		}
		s.cells[i] = owners[r]
		i++
	}
	s.markers = [families][]Player{
		{P1, P1, P2, NoPlayer},
		{P2, P2, P1, P1},
		{P2, P1, NoPlayer, P2},
	}

	expected := `          2   1
         /   /
    1 - 1 - 1   @
       / \ / \ /
  1 - 2 - 1 - 1   2
     / \ / \ / \ /
2 - 2 - 2 - H - 2
     \ / \ / \ / \
  @ - J - 2 - L   1
       \   \   \
        2   2   1
`
	require.Equal(t, expected, s.String())
}

func TestParseCell(t *testing.T) {
	parse := parseCell(newBoard(2))

	move, err := parse(" g ")
	require.NoError(t, err)
	require.Equal(t, Cell("G"), move)

	_, err = parse("H")
	require.ErrorIs(t, err, ErrParseMove, "H is not a cell of a size 2 board")

	_, err = parse("AB")
	require.ErrorIs(t, err, ErrParseMove)
}
