package searcher

import (
	"fmt"

	"perfectplay/game"

	"github.com/rs/zerolog/log"
)

const iterativeEngine = "iterative"

// Iterative scores positions by building the whole game tree with an explicit stack, so
// search depth is not bounded by the goroutine stack.
type Iterative struct {
	config
}

func NewIterative(options ...Option) *Iterative {
	return &Iterative{config: newConfig(options)}
}

func (it *Iterative) FindMove(g *game.Game) (game.Move, error) {
	state := g.State()
	if len(state.LegalMoves()) == 0 {
		return nil, ErrGameOver
	}

	it.metrics.Start(iterativeEngine)
	tree, err := it.build(state)
	metric := it.metrics.Complete()
	it.last = metric
	if err != nil {
		return nil, err
	}

	root := tree.Root()
	children := tree.Children(root)
	moves := make([]game.Move, len(children))
	for i, child := range children {
		moves[i] = tree.Move(child)
	}
	move := pickOptimal(it.rng, moves, tree.childScores(root))
	log.Debug().
		Str("engine", iterativeEngine).
		Str("move", move.String()).
		Int("score", tree.Score(root)).
		Int("nodes", tree.Len()).
		Dur("duration", metric.Duration).
		Msg("search complete")
	return move, nil
}

func (it *Iterative) Score(state game.State) (int, error) {
	tree, err := it.BuildTree(state)
	if err != nil {
		return 0, err
	}
	return tree.Score(tree.Root()), nil
}

// BuildTree expands every position reachable from state and scores it bottom-up.
func (it *Iterative) BuildTree(state game.State) (*Tree, error) {
	it.metrics.Start(iterativeEngine)
	tree, err := it.build(state)
	it.last = it.metrics.Complete()
	return tree, err
}

func (it *Iterative) build(state game.State) (*Tree, error) {
	tree := newTree(state)
	stack := []int{tree.Root()}
	for len(stack) > 0 {
		i := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Second visit: every child has been scored
		if len(tree.nodes[i].Children) > 0 {
			tree.setScore(i, bestScore(tree.childScores(i)))
			continue
		}

		if it.tooDeep(tree.nodes[i].Depth) {
			return nil, fmt.Errorf("%w: limit is %d moves", ErrDepthExceeded, it.maxDepth)
		}
		moves := tree.nodes[i].State.LegalMoves()
		it.metrics.AddNode(len(moves) == 0)
		if len(moves) == 0 {
			tree.setScore(i, terminalScore(tree.nodes[i].State))
			continue
		}

		stack = append(stack, i)
		for _, move := range moves {
			stack = append(stack, tree.add(i, move))
		}
	}
	return tree, nil
}
