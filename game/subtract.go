package game

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Subtraction is the perfect square a player takes away from the remaining number.
type Subtraction int

func (s Subtraction) String() string {
	return strconv.Itoa(int(s))
}

type SubtractSquareState struct {
	player    Player
	remaining int
}

func NewSubtractSquareState(player Player, remaining int) (*SubtractSquareState, error) {
	if remaining < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrStartNumber, remaining)
	}
	return &SubtractSquareState{player: player, remaining: remaining}, nil
}

func (s *SubtractSquareState) Player() Player {
	return s.player
}

func (s *SubtractSquareState) Remaining() int {
	return s.remaining
}

// LegalMoves lists every perfect square not greater than the remaining number, smallest first.
func (s *SubtractSquareState) LegalMoves() []Move {
	moves := []Move{}
	for k := 1; k <= isqrt(s.remaining); k++ {
		moves = append(moves, Subtraction(k*k))
	}
	return moves
}

// isqrt is the largest k with k*k <= n. Comparisons divide instead of squaring so that n
// close to math.MaxInt cannot overflow.
func isqrt(n int) int {
	k := int(math.Sqrt(float64(n)))
	for k > 0 && k > n/k {
		k--
	}
	for k+1 <= n/(k+1) {
		k++
	}
	return k
}

func (s *SubtractSquareState) IsValid(move Move) bool {
	return isValid(s, move)
}

func (s *SubtractSquareState) Play(move Move) (State, error) {
	if !s.IsValid(move) {
		return nil, fmt.Errorf("%w: cannot subtract %v from %d", ErrInvalidMove, move, s.remaining)
	}
	return &SubtractSquareState{
		player:    s.player.Opponent(),
		remaining: s.remaining - int(move.(Subtraction)),
	}, nil
}

func (s *SubtractSquareState) Winner() Player {
	return lastMoverWins(s)
}

func (s *SubtractSquareState) Equal(other State) bool {
	o, ok := other.(*SubtractSquareState)
	return ok && *s == *o
}

func (s *SubtractSquareState) String() string {
	return fmt.Sprintf("The current value is: %d", s.remaining)
}

func parseSubtraction(text string) (Move, error) {
	n, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return nil, fmt.Errorf("%w: %q is not a number", ErrParseMove, text)
	}
	return Subtraction(n), nil
}
