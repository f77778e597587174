package player

import (
	"time"

	"perfectplay/game"
	"perfectplay/searcher"

	"golang.org/x/exp/rand"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

var _ searcher.Strategy = (*Random)(nil)

func NewRandom(rng *rand.Rand) *Random {
	if rng == nil {
		rng = rand.New(rand.NewSource(uint64(time.Now().UnixNano())))
	}
	return &Random{rng: rng}
}

func NewSeededRandom(seed uint64) *Random {
	return NewRandom(rand.New(rand.NewSource(seed)))
}

func (r *Random) FindMove(g *game.Game) (game.Move, error) {
	moves := g.State().LegalMoves()
	if len(moves) == 0 {
		return nil, searcher.ErrGameOver
	}
	return moves[r.rng.Intn(len(moves))], nil
}
