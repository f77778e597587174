package searcher

import (
	"fmt"

	"perfectplay/game"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

const recursiveEngine = "recursive"

// Recursive scores positions with depth-first negamax on the call stack.
type Recursive struct {
	config
}

func NewRecursive(options ...Option) *Recursive {
	return &Recursive{config: newConfig(options)}
}

// FindMove returns a move that achieves the best guaranteed score for the player to move.
// Equally good moves are chosen between at random.
func (r *Recursive) FindMove(g *game.Game) (game.Move, error) {
	state := g.State()
	moves := state.LegalMoves()
	if len(moves) == 0 {
		return nil, ErrGameOver
	}

	r.metrics.Start(recursiveEngine)
	r.metrics.AddNode(false)
	scores, err := r.scoreChildren(state, moves)
	metric := r.metrics.Complete()
	r.last = metric
	if err != nil {
		return nil, err
	}

	move := pickOptimal(r.rng, moves, scores)
	log.Debug().
		Str("engine", recursiveEngine).
		Str("move", move.String()).
		Int("score", bestScore(scores)).
		Int64("nodes", metric.Nodes).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return move, nil
}

// Score returns the value of state for the player to move: Win, Draw or Loss.
func (r *Recursive) Score(state game.State) (int, error) {
	r.metrics.Start(recursiveEngine)
	score, err := r.score(state, 0)
	r.last = r.metrics.Complete()
	return score, err
}

func (r *Recursive) scoreChildren(state game.State, moves []game.Move) ([]int, error) {
	scores := make([]int, len(moves))
	if r.goroutines <= 1 {
		for i, move := range moves {
			s, err := r.score(play(state, move), 1)
			if err != nil {
				return nil, err
			}
			scores[i] = s
		}
		return scores, nil
	}

	var eg errgroup.Group
	eg.SetLimit(r.goroutines)
	for i, move := range moves {
		i, move := i, move
		eg.Go(func() error {
			s, err := r.score(play(state, move), 1)
			scores[i] = s
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return scores, nil
}

func (r *Recursive) score(state game.State, depth int) (int, error) {
	if r.tooDeep(depth) {
		return 0, fmt.Errorf("%w: limit is %d moves", ErrDepthExceeded, r.maxDepth)
	}
	moves := state.LegalMoves()
	r.metrics.AddNode(len(moves) == 0)
	if len(moves) == 0 {
		return terminalScore(state), nil
	}

	best := Loss
	for _, move := range moves {
		s, err := r.score(play(state, move), depth+1)
		if err != nil {
			return 0, err
		}
		if -s > best {
			best = -s
		}
	}
	return best, nil
}
