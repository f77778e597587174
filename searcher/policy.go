package searcher

import (
	"perfectplay/game"

	"golang.org/x/exp/rand"
)

// bestScore is the score of a position whose children have the given scores.
func bestScore(childScores []int) int {
	best := Loss
	for _, s := range childScores {
		if -s > best {
			best = -s
		}
	}
	return best
}

// optimalMoves lists the moves that guarantee the best score for the player to move.
func optimalMoves(moves []game.Move, childScores []int) []game.Move {
	best := bestScore(childScores)
	optimal := []game.Move{}
	for i, s := range childScores {
		if -s == best {
			optimal = append(optimal, moves[i])
		}
	}
	return optimal
}

// pickOptimal chooses uniformly at random among the optimal moves.
func pickOptimal(rng *rand.Rand, moves []game.Move, childScores []int) game.Move {
	optimal := optimalMoves(moves, childScores)
	return optimal[rng.Intn(len(optimal))]
}
