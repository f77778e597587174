package game

import (
	"fmt"
	"strings"
)

// Attack names the attacker's hand followed by the defender's hand, e.g. "lr" adds the
// attacker's left hand to the defender's right hand.
type Attack string

const (
	LeftLeft   Attack = "ll"
	LeftRight  Attack = "lr"
	RightLeft  Attack = "rl"
	RightRight Attack = "rr"
)

var attacks = []Attack{LeftLeft, LeftRight, RightLeft, RightRight}

func (a Attack) String() string {
	return string(a)
}

func (a Attack) hands() (from, to int) {
	if a[0] == 'r' {
		from = 1
	}
	if a[1] == 'r' {
		to = 1
	}
	return from, to
}

const fingers = 5

// Hands holds the finger counts of the left and right hand. A hand with 0 fingers is dead.
type Hands [2]int

func (h Hands) dead() bool {
	return h[0] == 0 && h[1] == 0
}

type ChopsticksState struct {
	player Player
	p1     Hands
	p2     Hands
}

func NewChopsticksState(player Player, p1, p2 Hands) (*ChopsticksState, error) {
	for _, v := range []int{p1[0], p1[1], p2[0], p2[1]} {
		if v < 0 || v >= fingers {
			return nil, fmt.Errorf("%w: got %v and %v", ErrHands, p1, p2)
		}
	}
	return &ChopsticksState{player: player, p1: p1, p2: p2}, nil
}

func (s *ChopsticksState) Player() Player {
	return s.player
}

func (s *ChopsticksState) Hands(p Player) Hands {
	if p == P2 {
		return s.p2
	}
	return s.p1
}

func (s *ChopsticksState) sides() (attacker, defender Hands) {
	if s.player == P1 {
		return s.p1, s.p2
	}
	return s.p2, s.p1
}

func (s *ChopsticksState) LegalMoves() []Move {
	moves := []Move{}
	if s.p1.dead() || s.p2.dead() {
		return moves
	}
	attacker, defender := s.sides()
	for _, a := range attacks {
		from, to := a.hands()
		if attacker[from] != 0 && defender[to] != 0 {
			moves = append(moves, a)
		}
	}
	return moves
}

func (s *ChopsticksState) IsValid(move Move) bool {
	return isValid(s, move)
}

func (s *ChopsticksState) Play(move Move) (State, error) {
	if !s.IsValid(move) {
		return nil, fmt.Errorf("%w: %v is not playable by %s", ErrInvalidMove, move, s.player)
	}
	attacker, defender := s.sides()
	from, to := move.(Attack).hands()
	defender[to] = (defender[to] + attacker[from]) % fingers

	next := &ChopsticksState{player: s.player.Opponent(), p1: s.p1, p2: s.p2}
	if s.player == P1 {
		next.p2 = defender
	} else {
		next.p1 = defender
	}
	return next, nil
}

// Winner is the player with a live hand once the other has lost both.
func (s *ChopsticksState) Winner() Player {
	switch {
	case s.p1.dead() && !s.p2.dead():
		return P2
	case s.p2.dead() && !s.p1.dead():
		return P1
	}
	return NoPlayer
}

func (s *ChopsticksState) Equal(other State) bool {
	o, ok := other.(*ChopsticksState)
	return ok && *s == *o
}

func (s *ChopsticksState) String() string {
	return fmt.Sprintf("Player 1: %d - %d; Player 2: %d - %d", s.p1[0], s.p1[1], s.p2[0], s.p2[1])
}

func parseAttack(text string) (Move, error) {
	a := Attack(strings.ToLower(strings.TrimSpace(text)))
	for _, known := range attacks {
		if a == known {
			return a, nil
		}
	}
	return nil, fmt.Errorf("%w: %q is not one of ll, lr, rl, rr", ErrParseMove, text)
}
