package engine

import (
	"golang.org/x/exp/constraints"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Step offsets as {row, col} pairs.
var (
	knightOffsets  = [][2]int{{-2, -1}, {-2, 1}, {-1, -2}, {-1, 2}, {1, -2}, {1, 2}, {2, -1}, {2, 1}}
	kingOffsets    = [][2]int{{-1, -1}, {-1, 0}, {-1, 1}, {0, -1}, {0, 1}, {1, -1}, {1, 0}, {1, 1}}
	diagonalDirs   = [][2]int{{-1, -1}, {-1, 1}, {1, -1}, {1, 1}}
	straightDirs   = [][2]int{{-1, 0}, {1, 0}, {0, -1}, {0, 1}}
	allSlidingDirs = append(append([][2]int{}, diagonalDirs...), straightDirs...)
)

// abs returns the absolute value of x.
func abs[T constraints.Signed](x T) T {
	if x < 0 {
		return -x
	}
	return x
}

// isOwnPiece reports whether the square holds a piece of the given colour.
func isOwnPiece(piece chess.Piece, colour chess.Colour) bool {
	return piece != chess.Empty && chess.ExtractColour(piece) == colour
}

// isEnemyPiece reports whether the square holds a piece of the other colour.
func isEnemyPiece(piece chess.Piece, colour chess.Colour) bool {
	return piece != chess.Empty && chess.ExtractColour(piece) != colour
}
