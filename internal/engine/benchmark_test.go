package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

var benchFENs = map[string]string{
	"Initial":   InitialFEN,
	"Midgame":   testutil.MidgameFEN,
	"Endgame":   "8/5k2/8/8/8/8/5K2/4R3 w - - 0 1",
	"Complex":   testutil.KiwipeteFEN,
	"EnPassant": "rnbqkbnr/pppp1ppp/8/4pP2/8/8/PPPPP1PP/RNBQKBNR w KQkq e6 0 3",
	"Castling":  testutil.CastlingFEN,
}

func BenchmarkNewPositionFromFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				NewPositionFromFEN(fen)
			}
		})
	}
}

func BenchmarkPositionToFEN(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				PositionToFEN(pos)
			}
		})
	}
}

func BenchmarkLegalMoves(b *testing.B) {
	for name, fen := range benchFENs {
		b.Run(name, func(b *testing.B) {
			pos, _ := NewPositionFromFEN(fen)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				LegalMoves(pos, pos.ToMove)
			}
		})
	}
}

func BenchmarkApplyUndo(b *testing.B) {
	cases := []struct {
		name string
		fen  string
		move string
	}{
		{"PawnMove", benchFENs["Initial"], "e2e4"},
		{"PieceMove", benchFENs["Initial"], "g1f3"},
		{"KingsideCastle", benchFENs["Castling"], "e1g1"},
		{"QueensideCastle", benchFENs["Castling"], "e1c1"},
		{"EnPassant", benchFENs["EnPassant"], "f5e6"},
		{"Promotion", testutil.PromotionFEN, "a7a8q"},
	}

	for _, tc := range cases {
		b.Run(tc.name, func(b *testing.B) {
			g, _ := NewGameFromFEN(tc.fen)
			m, _ := chess.ParseMove(tc.move)
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				g.ApplyMove(m.From, m.To, m.Promotion)
				g.UndoMove()
			}
		})
	}
}

func BenchmarkIsSquareAttacked(b *testing.B) {
	pos, _ := NewPositionFromFEN(benchFENs["Complex"])
	sq := chess.MustParseSquare("e1")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		IsSquareAttacked(&pos.Board, sq, chess.Black)
	}
}

func BenchmarkPerft3(b *testing.B) {
	for i := 0; i < b.N; i++ {
		perft(NewGame(), 3)
	}
}
