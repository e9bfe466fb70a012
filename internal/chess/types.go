// Package chess provides core chess types and operations.
package chess

// Colour represents the colour of a piece or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Piece represents a piece type, or a coloured piece built with
// MakeColouredPiece. The zero value is Empty.
type Piece int

const (
	Empty Piece = iota // Empty square
	Pawn
	Knight
	Bishop
	Rook
	Queen
	King
	NumPieceValues
)

// String returns the string representation of a piece type.
func (p Piece) String() string {
	names := []string{"Empty", "Pawn", "Knight", "Bishop", "Rook", "Queen", "King"}
	if p >= 0 && int(p) < len(names) {
		return names[p]
	}
	return "Unknown"
}

// Letter returns the single letter representation of a piece type (uppercase).
func (p Piece) Letter() byte {
	letters := []byte{' ', 'P', 'N', 'B', 'R', 'Q', 'K'}
	if p >= 0 && int(p) < len(letters) {
		return letters[p]
	}
	return '?'
}

// PieceShift is used for encoding coloured pieces.
const PieceShift = 3

// MakeColouredPiece creates a coloured piece value.
func MakeColouredPiece(colour Colour, piece Piece) Piece {
	return Piece((int(piece) << PieceShift) | int(colour))
}

// W creates a white piece.
func W(piece Piece) Piece {
	return MakeColouredPiece(White, piece)
}

// B creates a black piece.
func B(piece Piece) Piece {
	return MakeColouredPiece(Black, piece)
}

// ExtractColour extracts the colour from a coloured piece.
// The result is meaningless for Empty.
func ExtractColour(colouredPiece Piece) Colour {
	return Colour(colouredPiece & 0x01)
}

// ExtractPiece extracts the piece type from a coloured piece.
func ExtractPiece(colouredPiece Piece) Piece {
	return Piece(colouredPiece >> PieceShift)
}

// IsPromotionPiece reports whether a pawn may promote to the piece type.
func IsPromotionPiece(piece Piece) bool {
	switch piece {
	case Knight, Bishop, Rook, Queen:
		return true
	}
	return false
}

// FENLetter returns the FEN letter for a coloured piece:
// uppercase for white, lowercase for black.
func FENLetter(colouredPiece Piece) byte {
	letter := ExtractPiece(colouredPiece).Letter()
	if ExtractColour(colouredPiece) == Black {
		letter += 'a' - 'A'
	}
	return letter
}

// PieceFromFENLetter converts a FEN letter to a coloured piece.
// It returns false for any other character.
func PieceFromFENLetter(c byte) (Piece, bool) {
	colour := White
	if c >= 'a' && c <= 'z' {
		colour = Black
		c -= 'a' - 'A'
	}
	var piece Piece
	switch c {
	case 'P':
		piece = Pawn
	case 'N':
		piece = Knight
	case 'B':
		piece = Bishop
	case 'R':
		piece = Rook
	case 'Q':
		piece = Queen
	case 'K':
		piece = King
	default:
		return Empty, false
	}
	return MakeColouredPiece(colour, piece), true
}

// ColourOffset returns the row step of a pawn advance: -1 for White
// (towards row 0, rank 8), +1 for Black.
func ColourOffset(colour Colour) int {
	if colour == White {
		return -1
	}
	return 1
}

// Termination is the reason a game has ended.
type Termination int

const (
	NoTermination Termination = iota
	Checkmate
	Stalemate
	InsufficientMaterial
)

// String returns the result text for a termination, empty for NoTermination.
func (t Termination) String() string {
	switch t {
	case Checkmate:
		return "checkmate"
	case Stalemate:
		return "stalemate"
	case InsufficientMaterial:
		return "insufficient material"
	}
	return ""
}
