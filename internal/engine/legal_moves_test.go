package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestLegalDestinations(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		sq   string
		want []string
	}{
		{"pinned bishop cannot move", "4r1k1/8/8/8/8/8/4B3/4K3 w - - 0 1", "e2", nil},
		{"pinned rook slides along the pin", "4r1k1/8/8/8/8/8/4R3/4K3 w - - 0 1", "e2",
			[]string{"e3", "e4", "e5", "e6", "e7", "e8"}},
		{"en passant exposing the king is illegal", testutil.PinnedEPFEN, "b5", []string{"b6"}},
		{"en passant capture is legal", testutil.EnPassantFEN, "e5", []string{"e6", "f6"}},
		{"king steps out of check or captures", "4k3/8/8/8/8/8/3q4/4K3 w - - 0 1", "e1", []string{"d2", "f1"}},
		{"king may not step next to the other king", "8/8/8/3k4/8/3K4/8/8 w - - 0 1", "d3",
			[]string{"c2", "c3", "d2", "e2", "e3"}},
		{"only blocking moves when in check", "4r1k1/8/8/8/8/8/3N4/4K3 w - - 0 1", "d2", []string{"e4"}},
		{"empty square", InitialFEN, "e4", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			got := LegalDestinations(pos, chess.MustParseSquare(tt.sq))
			want := tt.want
			if want == nil {
				want = []string{}
			}
			testutil.AssertEqual(t, testutil.SquareNames(got), want)
		})
	}
}

func TestLegalDestinations_DoesNotModifyPosition(t *testing.T) {
	pos := mustPosition(t, testutil.KiwipeteFEN)
	before := *pos
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			LegalDestinations(pos, chess.Square{Row: row, Col: col})
		}
	}
	testutil.AssertEqual(t, *pos, before)
}

func TestLegalMoves_InitialPosition(t *testing.T) {
	pos := chess.NewInitialPosition()

	white := LegalMoves(pos, chess.White)
	if len(white) != 20 {
		t.Fatalf("white has %d moves, want 20", len(white))
	}
	// Scan order: a2 pawn first (a4 lies on an earlier row than a3), g1 knight last.
	if got := white[0].String(); got != "a2a4" {
		t.Errorf("first move = %s, want a2a4", got)
	}
	if got := white[len(white)-1].String(); got != "g1h3" {
		t.Errorf("last move = %s, want g1h3", got)
	}

	black := LegalMoves(pos, chess.Black)
	if len(black) != 20 {
		t.Errorf("black has %d moves, want 20", len(black))
	}
	for _, m := range black {
		if chess.ExtractColour(pos.Get(m.From)) != chess.Black {
			t.Errorf("move %s does not start from a black piece", m)
		}
	}
}

func TestLegalMoves_PromotionListedOnce(t *testing.T) {
	pos := mustPosition(t, testutil.PromotionFEN)
	count := 0
	for _, m := range LegalMoves(pos, chess.White) {
		if m.From == chess.MustParseSquare("a7") {
			count++
			if m.Promotion != chess.Empty {
				t.Errorf("promotion move carries %v, want Empty", m.Promotion)
			}
		}
	}
	if count != 1 {
		t.Errorf("a7 pawn has %d moves, want 1", count)
	}
}

func TestLegalMoves_SubsetOfPseudoLegal(t *testing.T) {
	fens := []string{
		InitialFEN,
		testutil.KiwipeteFEN,
		testutil.CastlingFEN,
		testutil.EnPassantFEN,
		testutil.PinnedEPFEN,
		testutil.MidgameFEN,
		testutil.PerftPos3FEN,
		testutil.PerftPos4FEN,
		testutil.PerftPos5FEN,
	}
	for _, fen := range fens {
		pos := mustPosition(t, fen)
		for _, colour := range []chess.Colour{chess.White, chess.Black} {
			for _, m := range LegalMoves(pos, colour) {
				if m.From == m.To {
					t.Errorf("%s: move %s has from == to", fen, m)
				}
				pseudo := PseudoLegalDestinations(pos, m.From)
				found := false
				for _, sq := range pseudo {
					if sq == m.To {
						found = true
						break
					}
				}
				if !found {
					t.Errorf("%s: legal move %s is not pseudo-legal", fen, m)
				}
			}
		}
	}
}

func TestHasLegalMoves(t *testing.T) {
	tests := []struct {
		name   string
		fen    string
		colour chess.Colour
		want   bool
	}{
		{"initial white", InitialFEN, chess.White, true},
		{"initial black", InitialFEN, chess.Black, true},
		{"stalemated black", testutil.StalemateFEN, chess.Black, false},
		{"checkmated white", testutil.FoolsMateFEN, chess.White, false},
		{"bare kings", testutil.BareKingsFEN, chess.White, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := HasLegalMoves(pos, tt.colour); got != tt.want {
				t.Errorf("HasLegalMoves() = %v, want %v", got, tt.want)
			}
			if got := len(LegalMoves(pos, tt.colour)) > 0; got != tt.want {
				t.Errorf("len(LegalMoves()) > 0 = %v, want %v", got, tt.want)
			}
		})
	}
}
