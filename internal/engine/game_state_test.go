package engine

import (
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

func TestResult(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		inCheck   bool
		checkmate bool
		stalemate bool
		want      chess.Termination
	}{
		{"initial position", InitialFEN, false, false, false, chess.NoTermination},
		{"fool's mate", testutil.FoolsMateFEN, true, true, false, chess.Checkmate},
		{"check with an escape", "4k3/8/8/8/8/8/8/4RK2 b - - 0 1", true, false, false, chess.NoTermination},
		{"stalemate", testutil.StalemateFEN, false, false, true, chess.Stalemate},
		{"bare kings", testutil.BareKingsFEN, false, false, false, chess.InsufficientMaterial},
		{"king and knight", "4k3/8/8/8/8/8/8/3NK3 w - - 0 1", false, false, false, chess.InsufficientMaterial},
		{"king and bishop", "4k3/8/8/8/8/8/8/2B1K3 b - - 0 1", false, false, false, chess.InsufficientMaterial},
		{"stalemate outranks insufficient material", "7k/5K2/8/6N1/8/8/8/8 b - - 0 1", false, false, true, chess.Stalemate},
		{"king and rook can still mate", "4k3/8/8/8/8/8/8/R3K3 w - - 0 1", false, false, false, chess.NoTermination},
		{"two knights are not recognised", "4k3/8/8/8/8/8/8/1N1NK3 w - - 0 1", false, false, false, chess.NoTermination},
		{"opposing bishops are not recognised", "2b1k3/8/8/8/8/8/8/2B1K3 w - - 0 1", false, false, false, chess.NoTermination},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := mustGame(t, tt.fen)
			if got := g.IsInCheck(); got != tt.inCheck {
				t.Errorf("IsInCheck() = %v, want %v", got, tt.inCheck)
			}
			if got := g.IsCheckmate(); got != tt.checkmate {
				t.Errorf("IsCheckmate() = %v, want %v", got, tt.checkmate)
			}
			if got := g.IsStalemate(); got != tt.stalemate {
				t.Errorf("IsStalemate() = %v, want %v", got, tt.stalemate)
			}
			if got := g.Result(); got != tt.want {
				t.Errorf("Result() = %q, want %q", got, tt.want)
			}
			if got, want := g.IsGameOver(), tt.want != chess.NoTermination; got != want {
				t.Errorf("IsGameOver() = %v, want %v", got, want)
			}
		})
	}
}

func TestHasInsufficientMaterial(t *testing.T) {
	tests := []struct {
		name string
		fen  string
		want bool
	}{
		{"bare kings", testutil.BareKingsFEN, true},
		{"king and knight", "4k3/8/8/8/8/8/8/3NK3 w - - 0 1", true},
		{"king and black bishop", "4kb2/8/8/8/8/8/8/4K3 w - - 0 1", true},
		{"king and pawn", "4k3/8/8/8/8/8/4P3/4K3 w - - 0 1", false},
		{"king and queen", "4k3/8/8/8/8/8/8/3QK3 w - - 0 1", false},
		{"initial position", InitialFEN, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pos := mustPosition(t, tt.fen)
			if got := HasInsufficientMaterial(&pos.Board); got != tt.want {
				t.Errorf("HasInsufficientMaterial() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsInCheck_NoKing(t *testing.T) {
	pos := mustPosition(t, "8/8/8/8/8/8/8/R7 w - - 0 1")
	if IsInCheck(pos) {
		t.Error("a side without a king reported in check")
	}
}

func TestResult_AfterMating(t *testing.T) {
	g := NewGame()
	for _, move := range []string{"f2f3", "e7e5", "g2g4", "d8h4"} {
		if !g.ApplyUCI(move) {
			t.Fatalf("%s rejected", move)
		}
	}
	testutil.AssertEqual(t, g.FEN(), testutil.FoolsMateFEN)
	testutil.AssertEqual(t, g.Result(), chess.Checkmate)
	testutil.AssertEqual(t, len(g.LegalMoves(chess.White)), 0)
}
