package strategy

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Capture plays a random capture when one exists, otherwise a random move.
// En passant is not seen as a capture since its target square is empty.
type Capture struct {
	rng *rand.Rand
}

// NewCapture creates a Capture strategy.
func NewCapture(rng *rand.Rand) *Capture {
	return &Capture{rng: rng}
}

// ChooseMove implements Strategy.
func (c *Capture) ChooseMove(v View) (chess.Move, bool) {
	moves := candidates(v)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	board := v.Board()
	colour := v.ToMove()
	var captures []chess.Move
	for _, m := range moves {
		if isCapture(&board, m, colour) {
			captures = append(captures, m)
		}
	}
	if len(captures) > 0 {
		return pick(c.rng, captures), true
	}
	return pick(c.rng, moves), true
}

// Name implements Strategy.
func (c *Capture) Name() string {
	return "capture"
}
