package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// HasInsufficientMaterial returns true if exactly two pieces remain (the bare
// kings), or exactly three remain and the third is a bishop or knight.
//
// Other dead positions, such as bishops of the same square colour on both
// sides, are deliberately not recognised.
func HasInsufficientMaterial(board *chess.Board) bool {
	var pieces []chess.Piece
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if piece := board.Squares[row][col]; piece != chess.Empty {
				pieces = append(pieces, chess.ExtractPiece(piece))
				if len(pieces) > 3 {
					return false
				}
			}
		}
	}

	switch len(pieces) {
	case 2:
		return true
	case 3:
		for _, p := range pieces {
			if p == chess.Bishop || p == chess.Knight {
				return true
			}
		}
	}
	return false
}
