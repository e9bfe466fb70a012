package strategy

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Random plays a uniformly random legal move.
type Random struct {
	rng *rand.Rand
}

// NewRandom creates a Random strategy.
func NewRandom(rng *rand.Rand) *Random {
	return &Random{rng: rng}
}

// ChooseMove implements Strategy.
func (r *Random) ChooseMove(v View) (chess.Move, bool) {
	moves := candidates(v)
	if len(moves) == 0 {
		return chess.Move{}, false
	}
	return pick(r.rng, moves), true
}

// Name implements Strategy.
func (r *Random) Name() string {
	return "random"
}
