package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// castleSide describes the fixed squares involved in one castling option.
type castleSide struct {
	kingside  bool
	rookFrom  int   // Column of the rook before castling
	rookTo    int   // Column of the rook after castling
	kingTo    int   // Column of the king after castling
	between   []int // Columns that must be empty
	kingsPath []int // Columns the king stands on or crosses, which must not be attacked
}

var castleSides = []castleSide{
	{
		kingside:  true,
		rookFrom:  chess.KingsideRookCol,
		rookTo:    5,
		kingTo:    6,
		between:   []int{5, 6},
		kingsPath: []int{4, 5, 6},
	},
	{
		kingside:  false,
		rookFrom:  chess.QueensideRookCol,
		rookTo:    3,
		kingTo:    2,
		between:   []int{1, 2, 3},
		kingsPath: []int{4, 3, 2},
	},
}

// castlingDestinations returns the king destinations of every castling
// option currently available to the king on sq.
func castlingDestinations(pos *chess.Position, sq chess.Square, colour chess.Colour) []chess.Square {
	row := chess.HomeRow(colour)
	if sq.Row != row || sq.Col != chess.KingHomeCol {
		return nil
	}

	var dests []chess.Square
	for _, side := range castleSides {
		if canCastle(pos, colour, row, side) {
			dests = append(dests, chess.Square{Row: row, Col: side.kingTo})
		}
	}
	return dests
}

// canCastle checks the right, the rook, empty squares between king and
// rook, and that the king never stands on or crosses an attacked square.
func canCastle(pos *chess.Position, colour chess.Colour, row int, side castleSide) bool {
	if !pos.HasCastlingRight(colour, side.kingside) {
		return false
	}
	rook := chess.MakeColouredPiece(colour, chess.Rook)
	if pos.Get(chess.Square{Row: row, Col: side.rookFrom}) != rook {
		return false
	}
	for _, col := range side.between {
		if pos.Get(chess.Square{Row: row, Col: col}) != chess.Empty {
			return false
		}
	}
	opponent := colour.Opposite()
	for _, col := range side.kingsPath {
		if IsSquareAttacked(&pos.Board, chess.Square{Row: row, Col: col}, opponent) {
			return false
		}
	}
	return true
}

// isCastlingMove reports whether moving piece from -> to is a castle.
func isCastlingMove(piece chess.Piece, from, to chess.Square) bool {
	return chess.ExtractPiece(piece) == chess.King && from.Row == to.Row && abs(to.Col-from.Col) == 2
}

// relocateCastlingRook moves the rook that accompanies a castling king
// landing on kingTo.
func relocateCastlingRook(board *chess.Board, kingTo chess.Square) {
	for _, side := range castleSides {
		if kingTo.Col != side.kingTo {
			continue
		}
		from := chess.Square{Row: kingTo.Row, Col: side.rookFrom}
		board.Set(chess.Square{Row: kingTo.Row, Col: side.rookTo}, board.Get(from))
		board.Set(from, chess.Empty)
		return
	}
}

// updateCastlingRights removes rights lost by moving piece from -> to:
// a king move loses both, a rook leaving its corner loses that side, and
// landing on an opponent's rook corner removes the opponent's right.
func updateCastlingRights(pos *chess.Position, piece chess.Piece, from, to chess.Square) {
	colour := chess.ExtractColour(piece)
	switch chess.ExtractPiece(piece) {
	case chess.King:
		pos.ClearCastlingRight(colour, true)
		pos.ClearCastlingRight(colour, false)
	case chess.Rook:
		clearRookCornerRight(pos, colour, from)
	}
	clearRookCornerRight(pos, colour.Opposite(), to)
}

// clearRookCornerRight clears the right tied to the rook corner at sq, if any.
func clearRookCornerRight(pos *chess.Position, colour chess.Colour, sq chess.Square) {
	if sq.Row != chess.HomeRow(colour) {
		return
	}
	switch sq.Col {
	case chess.KingsideRookCol:
		pos.ClearCastlingRight(colour, true)
	case chess.QueensideRookCol:
		pos.ClearCastlingRight(colour, false)
	}
}
