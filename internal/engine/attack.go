package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsSquareAttacked returns true if the square is attacked by the given colour.
// This is a raw threat map: pins and the safety of the attacker's own king
// are ignored.
func IsSquareAttacked(board *chess.Board, sq chess.Square, byColour chess.Colour) bool {
	// Pawns attack diagonally forward, so look one row behind the target
	// from the attacker's point of view.
	pawn := chess.MakeColouredPiece(byColour, chess.Pawn)
	pawnRow := sq.Row - chess.ColourOffset(byColour)
	for _, dc := range []int{-1, 1} {
		if from, ok := chess.SquareAt(pawnRow, sq.Col+dc); ok && board.Get(from) == pawn {
			return true
		}
	}

	knight := chess.MakeColouredPiece(byColour, chess.Knight)
	for _, off := range knightOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.Get(from) == knight {
			return true
		}
	}

	king := chess.MakeColouredPiece(byColour, chess.King)
	for _, off := range kingOffsets {
		if from, ok := sq.Offset(off[0], off[1]); ok && board.Get(from) == king {
			return true
		}
	}

	queen := chess.MakeColouredPiece(byColour, chess.Queen)
	if slidingAttack(board, sq, diagonalDirs, chess.MakeColouredPiece(byColour, chess.Bishop), queen) {
		return true
	}
	return slidingAttack(board, sq, straightDirs, chess.MakeColouredPiece(byColour, chess.Rook), queen)
}

// slidingAttack walks each direction from sq and reports whether the first
// occupied square holds one of the two given attackers.
func slidingAttack(board *chess.Board, sq chess.Square, dirs [][2]int, slider, queen chess.Piece) bool {
	for _, dir := range dirs {
		cur, ok := sq.Offset(dir[0], dir[1])
		for ok {
			piece := board.Get(cur)
			if piece != chess.Empty {
				if piece == slider || piece == queen {
					return true
				}
				break // Blocked
			}
			cur, ok = cur.Offset(dir[0], dir[1])
		}
	}
	return false
}
