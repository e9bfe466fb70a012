package strategy

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// captureBonus is added to the score of a move that takes a piece.
const captureBonus = 3

// centre rows and columns: d4, e4, d5 and e5.
const (
	centreLow  = 3
	centreHigh = 4
)

// CenterControl scores each move by how close it lands to the four centre
// squares, plus a bonus for captures, and plays a best-scoring move.
// Ties are broken at random.
type CenterControl struct {
	rng *rand.Rand
}

// NewCenterControl creates a CenterControl strategy.
func NewCenterControl(rng *rand.Rand) *CenterControl {
	return &CenterControl{rng: rng}
}

// ChooseMove implements Strategy.
func (c *CenterControl) ChooseMove(v View) (chess.Move, bool) {
	moves := candidates(v)
	if len(moves) == 0 {
		return chess.Move{}, false
	}

	board := v.Board()
	colour := v.ToMove()
	var best []chess.Move
	bestScore := 0
	for i, m := range moves {
		score := -CentreDistance(m.To)
		if isCapture(&board, m, colour) {
			score += captureBonus
		}
		switch {
		case i == 0 || score > bestScore:
			bestScore = score
			best = append(best[:0], m)
		case score == bestScore:
			best = append(best, m)
		}
	}
	return pick(c.rng, best), true
}

// Name implements Strategy.
func (c *CenterControl) Name() string {
	return "center"
}

// CentreDistance returns the Manhattan distance from sq to the nearest of
// d4, e4, d5 and e5.
func CentreDistance(sq chess.Square) int {
	return axisDistance(sq.Row) + axisDistance(sq.Col)
}

func axisDistance(n int) int {
	switch {
	case n < centreLow:
		return centreLow - n
	case n > centreHigh:
		return n - centreHigh
	}
	return 0
}
