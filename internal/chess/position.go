package chess

// Position is a board together with all state needed to continue the game.
// Position is comparable with == and copying it copies the board.
type Position struct {
	Board Board

	// Who has the next move.
	ToMove Colour

	// Castling availability. Rights only ever go from true to false
	// during play.
	WKingCastle  bool
	WQueenCastle bool
	BKingCastle  bool
	BQueenCastle bool

	// Is EnPassant capture possible? If so then EPSquare is the square
	// the capturing pawn moves to; otherwise EPSquare is the zero Square.
	EnPassant bool
	EPSquare  Square

	// The half-move clock since the last pawn move or capture.
	HalfmoveClock uint

	// The current move number, starting at 1.
	MoveNumber uint
}

// NewInitialPosition returns the standard starting position.
func NewInitialPosition() *Position {
	p := &Position{
		ToMove:       White,
		WKingCastle:  true,
		WQueenCastle: true,
		BKingCastle:  true,
		BQueenCastle: true,
		MoveNumber:   1,
	}
	p.Board.SetupInitialPosition()
	return p
}

// Copy returns a deep copy of the position.
func (p *Position) Copy() *Position {
	newPos := &Position{}
	*newPos = *p
	return newPos
}

// Get returns the piece at the given square.
func (p *Position) Get(sq Square) Piece {
	return p.Board.Get(sq)
}

// HasCastlingRight reports whether the colour may still castle on the given side.
func (p *Position) HasCastlingRight(colour Colour, kingside bool) bool {
	switch {
	case colour == White && kingside:
		return p.WKingCastle
	case colour == White:
		return p.WQueenCastle
	case kingside:
		return p.BKingCastle
	default:
		return p.BQueenCastle
	}
}

// ClearCastlingRight removes one castling right.
func (p *Position) ClearCastlingRight(colour Colour, kingside bool) {
	switch {
	case colour == White && kingside:
		p.WKingCastle = false
	case colour == White:
		p.WQueenCastle = false
	case kingside:
		p.BKingCastle = false
	default:
		p.BQueenCastle = false
	}
}

// HomeRow returns the back row of the given colour (7 for White, 0 for Black).
func HomeRow(colour Colour) int {
	if colour == White {
		return BoardSize - 1
	}
	return 0
}

// Castling geometry for the standard starting array.
const (
	KingHomeCol      = 4
	KingsideRookCol  = 7
	QueensideRookCol = 0
)
