package chess

// Move is a source-destination square pair with an optional promotion
// piece type (Empty when the move is not a promotion or should default to Queen).
type Move struct {
	From      Square
	To        Square
	Promotion Piece
}

// String returns the move in long algebraic notation, e.g. "e2e4" or "e7e8q".
func (m Move) String() string {
	s := m.From.String() + m.To.String()
	if m.Promotion != Empty {
		s += string(rune(m.Promotion.Letter() + 'a' - 'A'))
	}
	return s
}

// ParseMove parses long algebraic notation ("e2e4", "e7e8q").
// It returns false if either square is off the board or the promotion
// letter is not one of n, b, r, q.
func ParseMove(s string) (Move, bool) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, false
	}
	from, ok := ParseSquare(s[0:2])
	if !ok {
		return Move{}, false
	}
	to, ok := ParseSquare(s[2:4])
	if !ok {
		return Move{}, false
	}
	m := Move{From: from, To: to}
	if len(s) == 5 {
		piece, ok := PieceFromFENLetter(s[4])
		if !ok || !IsPromotionPiece(ExtractPiece(piece)) {
			return Move{}, false
		}
		m.Promotion = ExtractPiece(piece)
	}
	return m, true
}
