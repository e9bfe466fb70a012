package engine

import "github.com/lgbarn/chessrules-go/internal/chess"

// PseudoLegalDestinations returns the squares the piece on sq may move to by
// its movement pattern and board occupancy, in board scan order. The result
// does not guarantee the mover's king is safe afterwards. An empty square
// yields no destinations.
func PseudoLegalDestinations(pos *chess.Position, sq chess.Square) []chess.Square {
	piece := pos.Get(sq)
	if piece == chess.Empty {
		return nil
	}
	colour := chess.ExtractColour(piece)

	var dests []chess.Square
	switch chess.ExtractPiece(piece) {
	case chess.Pawn:
		dests = pawnDestinations(pos, sq, colour)
	case chess.Knight:
		dests = stepDestinations(&pos.Board, sq, colour, knightOffsets)
	case chess.Bishop:
		dests = slidingDestinations(&pos.Board, sq, colour, diagonalDirs)
	case chess.Rook:
		dests = slidingDestinations(&pos.Board, sq, colour, straightDirs)
	case chess.Queen:
		dests = slidingDestinations(&pos.Board, sq, colour, allSlidingDirs)
	case chess.King:
		dests = stepDestinations(&pos.Board, sq, colour, kingOffsets)
		dests = append(dests, castlingDestinations(pos, sq, colour)...)
	}
	sortScanOrder(dests)
	return dests
}

// pawnDestinations generates pushes, the double push from the starting row,
// and captures including en passant.
func pawnDestinations(pos *chess.Position, sq chess.Square, colour chess.Colour) []chess.Square {
	var dests []chess.Square
	dir := chess.ColourOffset(colour)

	if one, ok := sq.Offset(dir, 0); ok && pos.Get(one) == chess.Empty {
		dests = append(dests, one)
		if sq.Row == pawnStartRow(colour) {
			if two, ok := sq.Offset(2*dir, 0); ok && pos.Get(two) == chess.Empty {
				dests = append(dests, two)
			}
		}
	}

	for _, dc := range []int{-1, 1} {
		to, ok := sq.Offset(dir, dc)
		if !ok {
			continue
		}
		if isEnemyPiece(pos.Get(to), colour) || (pos.EnPassant && to == pos.EPSquare) {
			dests = append(dests, to)
		}
	}
	return dests
}

// pawnStartRow returns the row a pawn of the given colour starts on.
func pawnStartRow(colour chess.Colour) int {
	return chess.HomeRow(colour) + chess.ColourOffset(colour)
}

// promotionRow returns the row on which a pawn of the given colour promotes.
func promotionRow(colour chess.Colour) int {
	return chess.HomeRow(colour.Opposite())
}

// stepDestinations handles knights and the non-castling king moves.
func stepDestinations(board *chess.Board, sq chess.Square, colour chess.Colour, offsets [][2]int) []chess.Square {
	var dests []chess.Square
	for _, off := range offsets {
		to, ok := sq.Offset(off[0], off[1])
		if ok && !isOwnPiece(board.Get(to), colour) {
			dests = append(dests, to)
		}
	}
	return dests
}

// slidingDestinations walks each direction until the board edge, stopping
// before an own piece or on the first enemy piece.
func slidingDestinations(board *chess.Board, sq chess.Square, colour chess.Colour, dirs [][2]int) []chess.Square {
	var dests []chess.Square
	for _, dir := range dirs {
		to, ok := sq.Offset(dir[0], dir[1])
		for ok {
			target := board.Get(to)
			if isOwnPiece(target, colour) {
				break
			}
			dests = append(dests, to)
			if target != chess.Empty {
				break // Capture ends the ray
			}
			to, ok = to.Offset(dir[0], dir[1])
		}
	}
	return dests
}

// sortScanOrder orders squares row-major, row 0 first. Lists are tiny, so
// insertion sort is enough.
func sortScanOrder(squares []chess.Square) {
	for i := 1; i < len(squares); i++ {
		for j := i; j > 0 && scanIndex(squares[j]) < scanIndex(squares[j-1]); j-- {
			squares[j], squares[j-1] = squares[j-1], squares[j]
		}
	}
}

func scanIndex(sq chess.Square) int {
	return sq.Row*chess.BoardSize + sq.Col
}
