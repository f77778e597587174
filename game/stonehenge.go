package game

import (
	"fmt"
	"strings"

	"golang.org/x/exp/slices"
)

// Cell is the letter labelling a Stonehenge cell.
type Cell string

func (c Cell) String() string {
	return string(c)
}

// StonehengeState is a position on a triangular Stonehenge board. Claimed cells and claimed
// ley-line markers never change owner.
type StonehengeState struct {
	player  Player
	board   *board   // Reference to the static board geometry
	cells   []Player // Owner per cell, NoPlayer while unclaimed
	markers [families][]Player
}

func NewStonehengeState(player Player, size int) (*StonehengeState, error) {
	if size < MinBoardSize || size > MaxBoardSize {
		return nil, fmt.Errorf("%w: %d is outside [%d, %d]", ErrBoardSize, size, MinBoardSize, MaxBoardSize)
	}
	b := boardOf(size)
	s := &StonehengeState{
		player: player,
		board:  b,
		cells:  make([]Player, b.cellCount()),
	}
	for f := range s.markers {
		s.markers[f] = make([]Player, size+1)
	}
	return s, nil
}

func (s *StonehengeState) Player() Player {
	return s.player
}

func (s *StonehengeState) Size() int {
	return s.board.size
}

// Cells returns the owner of every cell in label order.
func (s *StonehengeState) Cells() []Player {
	return append([]Player(nil), s.cells...)
}

// Markers returns the owner of every ley-line marker, grouped by family.
func (s *StonehengeState) Markers() [families][]Player {
	var markers [families][]Player
	for f := range s.markers {
		markers[f] = append([]Player(nil), s.markers[f]...)
	}
	return markers
}

func (s *StonehengeState) LineCount() int {
	return s.board.lineCount()
}

// ClaimedLines counts the ley-lines claimed by p.
func (s *StonehengeState) ClaimedLines(p Player) int {
	count := 0
	for _, group := range s.markers {
		for _, owner := range group {
			if owner == p {
				count++
			}
		}
	}
	return count
}

func (s *StonehengeState) holdsHalf(p Player) bool {
	return 2*s.ClaimedLines(p) >= s.LineCount()
}

func (s *StonehengeState) LegalMoves() []Move {
	moves := []Move{}
	if s.holdsHalf(P1) || s.holdsHalf(P2) {
		return moves
	}
	for i, owner := range s.cells {
		if owner == NoPlayer {
			moves = append(moves, s.board.label(i))
		}
	}
	return moves
}

func (s *StonehengeState) IsValid(move Move) bool {
	return isValid(s, move)
}

// Play claims a cell for the mover, then claims each still unclaimed ley-line through that
// cell in which the mover now owns at least half of the cells.
func (s *StonehengeState) Play(move Move) (State, error) {
	if !s.IsValid(move) {
		return nil, fmt.Errorf("%w: cell %v cannot be claimed", ErrInvalidMove, move)
	}
	cell, _ := s.board.index(move.(Cell))

	next := &StonehengeState{
		player:  s.player.Opponent(),
		board:   s.board,
		cells:   append([]Player(nil), s.cells...),
		markers: s.markers,
	}
	next.cells[cell] = s.player

	for f := 0; f < families; f++ {
		i := s.board.through[cell][f]
		if next.markers[f][i] != NoPlayer {
			continue
		}
		line := s.board.lines[f][i]
		owned := 0
		for _, c := range line {
			if next.cells[c] == s.player {
				owned++
			}
		}
		if 2*owned >= len(line) {
			next.markers[f] = append([]Player(nil), s.markers[f]...)
			next.markers[f][i] = s.player
		}
	}
	return next, nil
}

// Winner is the player holding at least half of the ley-lines. Once every cell is claimed
// without that happening, the player with more ley-lines wins and equal counts are a draw.
func (s *StonehengeState) Winner() Player {
	switch {
	case s.holdsHalf(P1):
		return P1
	case s.holdsHalf(P2):
		return P2
	case len(s.LegalMoves()) > 0:
		return NoPlayer
	}
	p1, p2 := s.ClaimedLines(P1), s.ClaimedLines(P2)
	switch {
	case p1 > p2:
		return P1
	case p2 > p1:
		return P2
	}
	return NoPlayer
}

func (s *StonehengeState) Equal(other State) bool {
	o, ok := other.(*StonehengeState)
	if !ok || s.player != o.player || s.board.size != o.board.size {
		return false
	}
	if !slices.Equal(s.cells, o.cells) {
		return false
	}
	for f := range s.markers {
		if !slices.Equal(s.markers[f], o.markers[f]) {
			return false
		}
	}
	return true
}

func parseCell(b *board) func(string) (Move, error) {
	return func(text string) (Move, error) {
		c := Cell(strings.ToUpper(strings.TrimSpace(text)))
		if _, ok := b.index(c); !ok {
			return nil, fmt.Errorf("%w: %q is not a cell of this board", ErrParseMove, text)
		}
		return c, nil
	}
}
