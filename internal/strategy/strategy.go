// Package strategy provides move-selection policies. A strategy only ever
// picks from the legal moves its View reports, so its moves are legal by
// construction.
package strategy

import (
	"fmt"
	"math/rand"
	"strings"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// View is the read-only part of a game a strategy may consult.
// *engine.Game satisfies it.
type View interface {
	Board() chess.Board
	ToMove() chess.Colour
	LegalMoves(colour chess.Colour) []chess.Move
}

// Strategy chooses a move for the side to move.
type Strategy interface {
	// ChooseMove returns a legal move of the side to move, or false when
	// that side has none. The promotion piece is left Empty (a queen).
	ChooseMove(v View) (chess.Move, bool)

	// Name returns the name ByName accepts for this strategy.
	Name() string
}

// constructors maps strategy names to their constructors.
var constructors = map[string]func(rng *rand.Rand) Strategy{
	"random":  func(rng *rand.Rand) Strategy { return NewRandom(rng) },
	"capture": func(rng *rand.Rand) Strategy { return NewCapture(rng) },
	"center":  func(rng *rand.Rand) Strategy { return NewCenterControl(rng) },
}

// ByName builds the named strategy drawing randomness from rng.
// Names are case-insensitive.
func ByName(name string, rng *rand.Rand) (Strategy, error) {
	ctor, ok := constructors[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown strategy %q (want one of %s): %w",
			name, strings.Join(Names(), ", "), errors.ErrInvalidConfig)
	}
	return ctor(rng), nil
}

// Names returns the accepted strategy names, sorted.
func Names() []string {
	names := maps.Keys(constructors)
	slices.Sort(names)
	return names
}

// candidates returns the legal moves of the side to move, dropping any
// move that would leave a piece where it stands.
func candidates(v View) []chess.Move {
	legal := v.LegalMoves(v.ToMove())
	moves := make([]chess.Move, 0, len(legal))
	for _, m := range legal {
		if m.From != m.To {
			moves = append(moves, m)
		}
	}
	return moves
}

// isCapture reports whether m lands on an opponent's piece.
func isCapture(board *chess.Board, m chess.Move, colour chess.Colour) bool {
	target := board.Get(m.To)
	return target != chess.Empty && chess.ExtractColour(target) != colour
}

// pick returns a uniformly random element of moves, which must be non-empty.
func pick(rng *rand.Rand, moves []chess.Move) chess.Move {
	return moves[rng.Intn(len(moves))]
}
