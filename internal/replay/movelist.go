package replay

import (
	"fmt"
	"io"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// ParseMoveList decodes whitespace-separated long algebraic moves such as
// "e2e4 e7e5 e7e8q". Move numbers ("1.", "12...") and result tokens are
// skipped. Errors are *errors.ParseError values wrapping
// errors.ErrParseFailure, with Column set to the 1-based token index; a
// move naming a square off the board also wraps errors.ErrOutOfRange.
func ParseMoveList(text string) ([]chess.Move, error) {
	var moves []chess.Move
	for i, tok := range strings.Fields(text) {
		if isMoveNumber(tok) || isResult(tok) {
			continue
		}
		m, ok := chess.ParseMove(strings.ToLower(tok))
		if !ok {
			err := errors.ErrParseFailure
			if isOffBoard(strings.ToLower(tok)) {
				err = fmt.Errorf("%w: %w", errors.ErrParseFailure, errors.ErrOutOfRange)
			}
			return nil, &errors.ParseError{
				Err:      err,
				Column:   i + 1,
				Expected: "long algebraic move",
				Got:      tok,
			}
		}
		moves = append(moves, m)
	}
	return moves, nil
}

// ReadMoveList reads a move list from r as a single game from the
// standard starting position. source names r in errors.
func ReadMoveList(r io.Reader, source string) (*chess.GameRecord, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "reading %s", source)
	}
	moves, err := ParseMoveList(string(data))
	if err != nil {
		var perr *errors.ParseError
		if errors.As(err, &perr) {
			perr.Source = source
		}
		return nil, err
	}
	return &chess.GameRecord{
		Number:   1,
		StartFEN: engine.InitialFEN,
		Moves:    moves,
		Result:   chess.Unfinished,
	}, nil
}

// isMoveNumber matches "1." and "1...".
func isMoveNumber(tok string) bool {
	digits := strings.TrimRight(tok, ".")
	if digits == tok || digits == "" {
		return false
	}
	for _, c := range digits {
		if c < '0' || c > '9' {
			return false
		}
	}
	return true
}

func isResult(tok string) bool {
	switch tok {
	case chess.WhiteWins, chess.BlackWins, chess.Draw, chess.Unfinished:
		return true
	}
	return false
}

// isOffBoard matches coordinate-shaped moves such as "e7e9" or "i2i4q"
// whose squares fall outside a-h, 1-8.
func isOffBoard(tok string) bool {
	if len(tok) != 4 && len(tok) != 5 {
		return false
	}
	for i := 0; i < 4; i += 2 {
		if tok[i] < 'a' || tok[i] > 'z' || tok[i+1] < '0' || tok[i+1] > '9' {
			return false
		}
	}
	_, fromOK := chess.ParseSquare(tok[0:2])
	_, toOK := chess.ParseSquare(tok[2:4])
	return !fromOK || !toOK
}
