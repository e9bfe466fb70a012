package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// IsInCheck returns true if the side to move's king is attacked.
// A side without a king is never in check.
func IsInCheck(pos *chess.Position) bool {
	return isColourInCheck(&pos.Board, pos.ToMove)
}

// isColourInCheck returns true if the given colour's king is attacked.
func isColourInCheck(board *chess.Board, colour chess.Colour) bool {
	king, ok := board.FindKing(colour)
	if !ok {
		return false
	}
	return IsSquareAttacked(board, king, colour.Opposite())
}

// IsCheckmate returns true if the position is checkmate for the side to move.
func IsCheckmate(pos *chess.Position) bool {
	return IsInCheck(pos) && !HasLegalMoves(pos, pos.ToMove)
}

// IsStalemate returns true if the position is stalemate for the side to move.
func IsStalemate(pos *chess.Position) bool {
	return !IsInCheck(pos) && !HasLegalMoves(pos, pos.ToMove)
}

// IsGameOver returns true on checkmate, stalemate or insufficient material.
func IsGameOver(pos *chess.Position) bool {
	return Result(pos) != chess.NoTermination
}

// Result reports how the game has ended, checking checkmate, stalemate and
// insufficient material in that order.
func Result(pos *chess.Position) chess.Termination {
	inCheck := IsInCheck(pos)
	noMoves := !HasLegalMoves(pos, pos.ToMove)
	switch {
	case inCheck && noMoves:
		return chess.Checkmate
	case noMoves:
		return chess.Stalemate
	case HasInsufficientMaterial(&pos.Board):
		return chess.InsufficientMaterial
	}
	return chess.NoTermination
}
