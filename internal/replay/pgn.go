package replay

import (
	"io"

	notnil "github.com/notnil/chess"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ReadPGN decodes every game in r. Each record starts from the game's
// first position (the FEN tag when present) and carries its moves as
// from/to/promotion triples.
func ReadPGN(r io.Reader) ([]chess.GameRecord, error) {
	scanner := notnil.NewScanner(r)
	var records []chess.GameRecord
	for scanner.Scan() {
		game := scanner.Next()
		if isEmptyGame(game) {
			continue
		}
		rec, err := recordFromPGN(game, len(records)+1)
		if err != nil {
			return records, err
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil && err != io.EOF {
		return records, &errors.ParseError{
			Err:      errors.Wrap(errors.ErrParseFailure, err.Error()),
			Expected: "PGN game",
		}
	}
	return records, nil
}

// isEmptyGame reports a scanned game with neither tags nor moves, which
// the scanner yields for blank input.
func isEmptyGame(game *notnil.Game) bool {
	return len(game.Moves()) == 0 && len(game.TagPairs()) == 0
}

func recordFromPGN(game *notnil.Game, number int) (chess.GameRecord, error) {
	rec := chess.GameRecord{
		Number: number,
		White:  tagValue(game, "White"),
		Black:  tagValue(game, "Black"),
		Result: game.Outcome().String(),
	}
	if positions := game.Positions(); len(positions) > 0 {
		rec.StartFEN = positions[0].String()
	}
	for _, m := range game.Moves() {
		from, ok := chess.ParseSquare(m.S1().String())
		if !ok {
			return rec, pgnMoveError(number, m)
		}
		to, ok := chess.ParseSquare(m.S2().String())
		if !ok {
			return rec, pgnMoveError(number, m)
		}
		rec.Moves = append(rec.Moves, chess.Move{From: from, To: to, Promotion: promotionPiece(m.Promo())})
	}
	return rec, nil
}

func pgnMoveError(number int, m *notnil.Move) error {
	return &errors.GameError{Err: errors.ErrParseFailure, GameNum: number, MoveText: m.String()}
}

func tagValue(game *notnil.Game, key string) string {
	if tp := game.GetTagPair(key); tp != nil {
		return tp.Value
	}
	return ""
}

// promotionPiece maps a decoded promotion to a piece type; Empty means
// no promotion.
func promotionPiece(pt notnil.PieceType) chess.Piece {
	switch pt {
	case notnil.Queen:
		return chess.Queen
	case notnil.Rook:
		return chess.Rook
	case notnil.Bishop:
		return chess.Bishop
	case notnil.Knight:
		return chess.Knight
	}
	return chess.Empty
}
