package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// LegalDestinations narrows PseudoLegalDestinations to the moves that do not
// leave the mover's own king attacked. Each candidate is tried on a copy of
// the board; the position itself is never modified.
func LegalDestinations(pos *chess.Position, sq chess.Square) []chess.Square {
	piece := pos.Get(sq)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var legal []chess.Square
	for _, to := range PseudoLegalDestinations(pos, sq) {
		if tryMove(pos, sq, to, colour) {
			legal = append(legal, to)
		}
	}
	return legal
}

// LegalMoves returns every legal move for the pieces of the given colour,
// enumerated in board scan order (row 0 to 7, column 0 to 7). Promotions
// appear once, with Promotion left Empty.
func LegalMoves(pos *chess.Position, colour chess.Colour) []chess.Move {
	var moves []chess.Move
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Square{Row: row, Col: col}
			if !isOwnPiece(pos.Get(from), colour) {
				continue
			}
			for _, to := range LegalDestinations(pos, from) {
				moves = append(moves, chess.Move{From: from, To: to})
			}
		}
	}
	return moves
}

// HasLegalMoves returns true if the given colour has at least one legal move.
func HasLegalMoves(pos *chess.Position, colour chess.Colour) bool {
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			from := chess.Square{Row: row, Col: col}
			if !isOwnPiece(pos.Get(from), colour) {
				continue
			}
			for _, to := range PseudoLegalDestinations(pos, from) {
				if tryMove(pos, from, to, colour) {
					return true
				}
			}
		}
	}
	return false
}

// tryMove makes a move on a copied board and checks if it leaves the king in check.
func tryMove(pos *chess.Position, from, to chess.Square, colour chess.Colour) bool {
	testBoard := pos.Board
	playOnBoard(&testBoard, from, to, chess.Queen, pos.EnPassant, pos.EPSquare)

	king, ok := testBoard.FindKing(colour)
	if !ok {
		return true // No king to expose
	}
	return !IsSquareAttacked(&testBoard, king, colour.Opposite())
}

// playOnBoard moves the piece on from to to, removing a pawn taken en
// passant, relocating the rook of a castling king and promoting a pawn that
// reaches the last row. It reports whether anything was captured.
func playOnBoard(board *chess.Board, from, to chess.Square, promotion chess.Piece, enPassant bool, epSquare chess.Square) bool {
	piece := board.Get(from)
	colour := chess.ExtractColour(piece)
	pieceType := chess.ExtractPiece(piece)
	captured := board.Get(to) != chess.Empty

	if isEnPassantCapture(board, piece, from, to, enPassant, epSquare) {
		// The captured pawn sits behind the destination.
		board.Set(chess.Square{Row: to.Row - chess.ColourOffset(colour), Col: to.Col}, chess.Empty)
		captured = true
	}

	if isCastlingMove(piece, from, to) {
		relocateCastlingRook(board, to)
	}

	board.Set(from, chess.Empty)
	if pieceType == chess.Pawn && to.Row == promotionRow(colour) {
		piece = chess.MakeColouredPiece(colour, promotion)
	}
	board.Set(to, piece)

	return captured
}

// isEnPassantCapture reports whether a pawn moves diagonally onto the
// en-passant target with nothing standing on it.
func isEnPassantCapture(board *chess.Board, piece chess.Piece, from, to chess.Square, enPassant bool, epSquare chess.Square) bool {
	return enPassant &&
		chess.ExtractPiece(piece) == chess.Pawn &&
		to == epSquare &&
		from.Col != to.Col &&
		board.Get(to) == chess.Empty
}
