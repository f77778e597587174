package searcher

import (
	"fmt"

	"perfectplay/game"
)

type mockMove string

func (m mockMove) String() string {
	return string(m)
}

// mockState is a hand-built game tree. A state without moves is terminal.
type mockState struct {
	player   game.Player
	moves    []game.Move
	children map[game.Move]*mockState
	winner   game.Player
	broken   bool // Play rejects every move
}

func leaf(player, winner game.Player) *mockState {
	return &mockState{player: player, winner: winner}
}

func branch(player game.Player, children ...any) *mockState {
	s := &mockState{player: player, children: map[game.Move]*mockState{}}
	for i := 0; i+1 < len(children); i += 2 {
		move := mockMove(children[i].(string))
		s.moves = append(s.moves, move)
		s.children[move] = children[i+1].(*mockState)
	}
	return s
}

func (s *mockState) Player() game.Player {
	return s.player
}

func (s *mockState) LegalMoves() []game.Move {
	return s.moves
}

func (s *mockState) IsValid(move game.Move) bool {
	_, ok := s.children[move]
	return ok
}

func (s *mockState) Play(move game.Move) (game.State, error) {
	if s.broken || !s.IsValid(move) {
		return nil, fmt.Errorf("%w: %v", game.ErrInvalidMove, move)
	}
	return s.children[move], nil
}

func (s *mockState) Winner() game.Player {
	return s.winner
}

func (s *mockState) Equal(other game.State) bool {
	return s == other
}

func (s *mockState) String() string {
	return fmt.Sprintf("mock %s to move, moves %v", s.player, s.moves)
}

func mockGame(s *mockState) *game.Game {
	return game.FromState(game.Kind("mock"), s)
}
