package selfplay

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// CheckPly verifies that m, just applied to g, took the game from before to
// a consistent position. Returned errors wrap errors.ErrInvariant.
// The undo check undoes m and plays it again, so g ends where it started.
func CheckPly(g *engine.Game, before *chess.Position, m chess.Move) error {
	after := g.Position()
	mover := before.ToMove

	piece := before.Get(m.From)
	if piece == chess.Empty || chess.ExtractColour(piece) != mover {
		return violation("%s moved a piece %s does not own", m, mover)
	}
	if m.From == m.To {
		return violation("%s leaves the piece where it stands", m)
	}
	if after.ToMove != mover.Opposite() {
		return violation("side to move is still %s", after.ToMove)
	}

	// The mover may not leave its own king attacked.
	own := after
	own.ToMove = mover
	if engine.IsInCheck(&own) {
		return violation("%s left the %s king in check", m, mover)
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		for _, kingside := range []bool{true, false} {
			if after.HasCastlingRight(colour, kingside) && !before.HasCastlingRight(colour, kingside) {
				return violation("%s regained a castling right", colour)
			}
		}
		if n := countKings(&after.Board, colour); n > 1 || n < countKings(&before.Board, colour) {
			return violation("%s has %d kings", colour, n)
		}
	}

	if after.HalfmoveClock != 0 && after.HalfmoveClock != before.HalfmoveClock+1 {
		return violation("halfmove clock went from %d to %d", before.HalfmoveClock, after.HalfmoveClock)
	}
	wantMove := before.MoveNumber
	if mover == chess.Black {
		wantMove++
	}
	if after.MoveNumber != wantMove {
		return violation("move number is %d, want %d", after.MoveNumber, wantMove)
	}

	if after.EnPassant {
		double := chess.ExtractPiece(piece) == chess.Pawn && abs(m.To.Row-m.From.Row) == 2
		mid := chess.Square{Row: (m.From.Row + m.To.Row) / 2, Col: m.From.Col}
		if !double || after.EPSquare != mid {
			return violation("en passant target %s after %s", after.EPSquare, m)
		}
	}

	fen := g.FEN()
	decoded, err := engine.NewPositionFromFEN(fen)
	if err != nil {
		return violation("FEN %q does not parse: %v", fen, err)
	}
	if *decoded != after {
		return violation("FEN %q does not round-trip", fen)
	}

	if !g.UndoMove() {
		return violation("nothing to undo after %s", m)
	}
	if undone := g.Position(); undone != *before {
		return violation("undoing %s gave %s", m, engine.PositionToFEN(&undone))
	}
	if !g.ApplyMove(m.From, m.To, m.Promotion) {
		return violation("%s rejected after undo", m)
	}
	return nil
}

func violation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), errors.ErrInvariant)
}

func countKings(board *chess.Board, colour chess.Colour) int {
	king := chess.MakeColouredPiece(colour, chess.King)
	n := 0
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			if board.Get(chess.Square{Row: row, Col: col}) == king {
				n++
			}
		}
	}
	return n
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
