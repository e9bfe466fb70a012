package replay

import (
	"strings"
	"testing"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

const twoGamesPGN = `[Event "Casual"]
[White "Fool"]
[Black "Wit"]
[Result "0-1"]

1. f3 e5 2. g4 Qh4# 0-1

[Event "Casual"]
[White "Alice"]
[Black "Bob"]
[Result "1/2-1/2"]

1. e4 e5 2. Nf3 Nc6 3. Bb5 a6 1/2-1/2
`

func TestReadPGN(t *testing.T) {
	records, err := ReadPGN(strings.NewReader(twoGamesPGN))
	testutil.AssertNoError(t, err)
	if len(records) != 2 {
		t.Fatalf("read %d games, want 2", len(records))
	}

	first := records[0]
	testutil.AssertEqual(t, first.Number, 1)
	testutil.AssertEqual(t, first.White, "Fool")
	testutil.AssertEqual(t, first.Black, "Wit")
	testutil.AssertEqual(t, first.StartFEN, engine.InitialFEN)
	testutil.AssertEqual(t, first.Result, chess.BlackWins)
	testutil.AssertEqual(t, moveStrings(first.Moves), []string{"f2f3", "e7e5", "g2g4", "d8h4"})

	second := records[1]
	testutil.AssertEqual(t, second.Number, 2)
	testutil.AssertEqual(t, second.White, "Alice")
	testutil.AssertEqual(t, second.Result, chess.Draw)
	testutil.AssertEqual(t, moveStrings(second.Moves), []string{"e2e4", "e7e5", "g1f3", "b8c6", "f1b5", "a7a6"})
}

func TestReadPGN_BlankInput(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  int
	}{
		{"empty", "", 0},
		{"blank lines only", "\n\n   \n", 0},
		{"game followed by blank lines", "[Event \"x\"]\n\n1. e4 e5 *\n\n\n", 1},
		{"two games with trailing blank line", twoGamesPGN + "\n", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			records, err := ReadPGN(strings.NewReader(tt.input))
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, len(records), tt.want)
			for i, rec := range records {
				testutil.AssertEqual(t, rec.Number, i+1)
			}
		})
	}
}

func TestPromotionPiece(t *testing.T) {
	tests := []struct {
		in   notnil.PieceType
		want chess.Piece
	}{
		{notnil.Queen, chess.Queen},
		{notnil.Rook, chess.Rook},
		{notnil.Bishop, chess.Bishop},
		{notnil.Knight, chess.Knight},
		{notnil.NoPieceType, chess.Empty},
		{notnil.King, chess.Empty},
		{notnil.Pawn, chess.Empty},
	}

	for _, tt := range tests {
		t.Run(tt.in.String(), func(t *testing.T) {
			testutil.AssertEqual(t, promotionPiece(tt.in), tt.want)
		})
	}
}
