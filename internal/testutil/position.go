package testutil

import (
	"sort"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Positions shared by tests across packages.
const (
	KiwipeteFEN  = "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1"
	CastlingFEN  = "r3k2r/pppppppp/8/8/8/8/PPPPPPPP/R3K2R w KQkq - 0 1"
	BareKingsFEN = "4k3/8/8/8/8/8/8/4K3 w - - 0 1"
	FoolsMateFEN = "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3"
	StalemateFEN = "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1"
	PromotionFEN = "8/P6k/8/8/8/8/6Kp/8 w - - 0 1"
	EnPassantFEN = "rnbqkbnr/ppp1p1pp/8/3pPp2/8/8/PPPP1PPP/RNBQKBNR w KQkq f6 0 3"
	PinnedEPFEN  = "8/8/8/KPp4r/8/8/8/6k1 w - c6 0 2"
	MidgameFEN   = "r1bqkb1r/pppp1ppp/2n2n2/4p3/2B1P3/5N2/PPPP1PPP/RNBQK2R w KQkq - 4 4"
	PerftPos3FEN = "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1"
	PerftPos4FEN = "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1"
	PerftPos5FEN = "rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8"
)

// Squares parses algebraic squares, failing the test on bad input.
func Squares(t *testing.T, names ...string) []chess.Square {
	t.Helper()
	squares := make([]chess.Square, 0, len(names))
	for _, name := range names {
		sq, ok := chess.ParseSquare(name)
		if !ok {
			t.Fatalf("bad square %q", name)
		}
		squares = append(squares, sq)
	}
	return squares
}

// SquareNames renders squares as sorted algebraic names, so that sets of
// squares compare independently of generation order.
func SquareNames(squares []chess.Square) []string {
	names := make([]string, 0, len(squares))
	for _, sq := range squares {
		names = append(names, sq.String())
	}
	sort.Strings(names)
	return names
}

// MoveNames renders moves as sorted long algebraic strings.
func MoveNames(moves []chess.Move) []string {
	names := make([]string, 0, len(moves))
	for _, m := range moves {
		names = append(names, m.String())
	}
	sort.Strings(names)
	return names
}
