package chess

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSetupInitialPosition(t *testing.T) {
	pos := NewInitialPosition()

	tests := []struct {
		name  string
		sq    string
		piece Piece
	}{
		{"white rook a1", "a1", W(Rook)},
		{"white knight b1", "b1", W(Knight)},
		{"white queen d1", "d1", W(Queen)},
		{"white king e1", "e1", W(King)},
		{"white pawn e2", "e2", W(Pawn)},
		{"black pawn e7", "e7", B(Pawn)},
		{"black queen d8", "d8", B(Queen)},
		{"black king e8", "e8", B(King)},
		{"black rook h8", "h8", B(Rook)},
		{"empty e4", "e4", Empty},
		{"empty d5", "d5", Empty},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := pos.Get(MustParseSquare(tt.sq)); got != tt.piece {
				t.Errorf("Get(%s) = %v; want %v", tt.sq, got, tt.piece)
			}
		})
	}

	t.Run("state", func(t *testing.T) {
		if pos.ToMove != White || pos.MoveNumber != 1 || pos.HalfmoveClock != 0 || pos.EnPassant {
			t.Errorf("unexpected initial state: %+v", *pos)
		}
		if !pos.WKingCastle || !pos.WQueenCastle || !pos.BKingCastle || !pos.BQueenCastle {
			t.Error("all castling rights should be set")
		}
		if n := pos.Board.CountPieces(); n != 32 {
			t.Errorf("CountPieces() = %d; want 32", n)
		}
	})
}

func TestBoardGetSet(t *testing.T) {
	var b Board
	e4 := MustParseSquare("e4")
	b.Set(e4, W(Knight))
	if got := b.Get(e4); got != W(Knight) {
		t.Errorf("Get(e4) = %v; want white knight", got)
	}

	b.Set(Square{Row: 8, Col: 0}, W(Queen))
	if got := b.Get(Square{Row: 8, Col: 0}); got != Empty {
		t.Errorf("Get(off board) = %v; want Empty", got)
	}
	if n := b.CountPieces(); n != 1 {
		t.Errorf("CountPieces() = %d; want 1", n)
	}
}

func TestBoardIsValueType(t *testing.T) {
	pos := NewInitialPosition()
	clone := pos.Board
	clone.Set(MustParseSquare("e2"), Empty)

	if pos.Get(MustParseSquare("e2")) != W(Pawn) {
		t.Error("modifying a copied board changed the original")
	}

	cp := pos.Copy()
	cp.ToMove = Black
	cp.Board.Clear()
	if diff := cmp.Diff(*NewInitialPosition(), *pos); diff != "" {
		t.Errorf("Copy() aliased the original (-want +got):\n%s", diff)
	}
}

func TestFindKing(t *testing.T) {
	pos := NewInitialPosition()
	if sq, ok := pos.Board.FindKing(White); !ok || sq.String() != "e1" {
		t.Errorf("FindKing(White) = %v, %v; want e1", sq, ok)
	}
	if sq, ok := pos.Board.FindKing(Black); !ok || sq.String() != "e8" {
		t.Errorf("FindKing(Black) = %v, %v; want e8", sq, ok)
	}

	var empty Board
	if _, ok := empty.FindKing(White); ok {
		t.Error("FindKing on empty board should fail")
	}
}

func TestCastlingRightAccessors(t *testing.T) {
	pos := NewInitialPosition()
	pos.ClearCastlingRight(White, true)
	pos.ClearCastlingRight(Black, false)

	want := map[[2]bool]bool{
		{true, true}:   false, // white kingside
		{true, false}:  true,  // white queenside
		{false, true}:  true,  // black kingside
		{false, false}: false, // black queenside
	}
	for key, w := range want {
		colour := Black
		if key[0] {
			colour = White
		}
		if got := pos.HasCastlingRight(colour, key[1]); got != w {
			t.Errorf("HasCastlingRight(%v, kingside=%v) = %v; want %v", colour, key[1], got, w)
		}
	}
}
