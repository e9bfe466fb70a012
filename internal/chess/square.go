package chess

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase = '1'
	ColBase  = 'a'
)

// Square is a board coordinate. Row 0 is rank 8 and row 7 is rank 1;
// Col 0 is the a-file.
type Square struct {
	Row int
	Col int
}

// SquareAt returns the square at the given row and column.
// It returns false if either coordinate is outside 0-7.
func SquareAt(row, col int) (Square, bool) {
	if row < 0 || row >= BoardSize || col < 0 || col >= BoardSize {
		return Square{}, false
	}
	return Square{Row: row, Col: col}, true
}

// ParseSquare converts algebraic notation ("e4") to a square.
// It returns false for anything that is not a file letter followed by a rank digit.
func ParseSquare(s string) (Square, bool) {
	if len(s) != 2 {
		return Square{}, false
	}
	return SquareAt(BoardSize-int(s[1]-RankBase)-1, int(s[0])-ColBase)
}

// MustParseSquare is like ParseSquare but panics on bad input.
// It is intended for constants and tests.
func MustParseSquare(s string) Square {
	sq, ok := ParseSquare(s)
	if !ok {
		panic("chess: invalid square " + s)
	}
	return sq
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Row >= 0 && s.Row < BoardSize && s.Col >= 0 && s.Col < BoardSize
}

// Offset returns the square shifted by the given row and column deltas,
// and whether it is still on the board.
func (s Square) Offset(dRow, dCol int) (Square, bool) {
	return SquareAt(s.Row+dRow, s.Col+dCol)
}

// Rank returns the rank digit of the square ('1'-'8').
func (s Square) Rank() byte {
	return byte(RankBase + BoardSize - 1 - s.Row)
}

// File returns the file letter of the square ('a'-'h').
func (s Square) File() byte {
	return byte(ColBase + s.Col)
}

// IsLight reports whether the square is a light square.
func (s Square) IsLight() bool {
	return (s.Row+s.Col)%2 == 0
}

// String returns the algebraic form of the square, or "-" if it is off the board.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{s.File(), s.Rank()})
}
