package chess

// Board is an 8x8 grid of coloured pieces indexed [row][col].
// It is a value type: assigning a Board copies every square.
type Board struct {
	Squares [BoardSize][BoardSize]Piece
}

// Get returns the piece at the given square, or Empty if the square is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.Squares[sq.Row][sq.Col]
}

// Set places a piece at the given square. Off-board squares are ignored.
func (b *Board) Set(sq Square, piece Piece) {
	if sq.Valid() {
		b.Squares[sq.Row][sq.Col] = piece
	}
}

// Clear empties every square.
func (b *Board) Clear() {
	b.Squares = [BoardSize][BoardSize]Piece{}
}

// FindKing returns the square of the given colour's king.
// It returns false if that king is not on the board.
func (b *Board) FindKing(colour Colour) (Square, bool) {
	king := MakeColouredPiece(colour, King)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] == king {
				return Square{Row: row, Col: col}, true
			}
		}
	}
	return Square{}, false
}

// CountPieces returns the number of occupied squares.
func (b *Board) CountPieces() int {
	n := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Squares[row][col] != Empty {
				n++
			}
		}
	}
	return n
}

// SetupInitialPosition sets up the standard chess starting position.
func (b *Board) SetupInitialPosition() {
	b.Clear()

	backRank := []Piece{Rook, Knight, Bishop, Queen, King, Bishop, Knight, Rook}
	for col := 0; col < BoardSize; col++ {
		b.Squares[0][col] = B(backRank[col])
		b.Squares[1][col] = B(Pawn)
		b.Squares[6][col] = W(Pawn)
		b.Squares[7][col] = W(backRank[col])
	}
}
