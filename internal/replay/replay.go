// Package replay checks recorded games against the rules engine.
package replay

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Replay plays moves on g in order. At the first move g rejects it stops
// and returns a *errors.GameError wrapping errors.ErrIllegalMove whose
// PlyNum counts from 1; g is left after the last accepted move.
func Replay(g *engine.Game, moves []chess.Move) error {
	for i, m := range moves {
		fen := g.FEN()
		if !g.ApplyMove(m.From, m.To, m.Promotion) {
			return &errors.GameError{
				Err:      errors.ErrIllegalMove,
				PlyNum:   i + 1,
				MoveText: m.String(),
				FEN:      fen,
			}
		}
	}
	return nil
}

// Replayer replays game records and reports how each one ends.
type Replayer struct {
	Log zerolog.Logger
}

// NewReplayer creates a Replayer logging to log.
func NewReplayer(log zerolog.Logger) *Replayer {
	return &Replayer{Log: log}
}

// Play replays rec from its start position, an empty StartFEN meaning the
// standard one, and fills in FinalFEN, Termination and Result. A record
// whose moves stop before the game is decided keeps the result it came
// with. Errors carry rec.Number as the game number.
func (r *Replayer) Play(rec *chess.GameRecord) error {
	start := rec.StartFEN
	if start == "" {
		start = engine.InitialFEN
	}
	g, err := engine.NewGameFromFEN(start)
	if err != nil {
		return &errors.GameError{Err: err, GameNum: rec.Number, FEN: start}
	}

	if err := Replay(g, rec.Moves); err != nil {
		var gameErr *errors.GameError
		if errors.As(err, &gameErr) {
			gameErr.GameNum = rec.Number
		}
		r.Log.Warn().Err(err).Int("game", rec.Number).Msg("replay failed")
		return err
	}

	rec.FinalFEN = g.FEN()
	rec.Termination = g.Result()
	if rec.Termination != chess.NoTermination || rec.Result == "" {
		rec.Result = chess.Outcome(rec.Termination, g.ToMove())
	}
	r.Log.Info().
		Int("game", rec.Number).
		Int("plies", rec.Plies()).
		Str("termination", rec.Termination.String()).
		Str("result", rec.Result).
		Msg("game replayed")
	return nil
}

// ReadFile decodes the records in path: PGN for a .pgn file, otherwise a
// single long algebraic move list.
func (r *Replayer) ReadFile(path string) ([]chess.GameRecord, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if strings.EqualFold(filepath.Ext(path), ".pgn") {
		records, err := ReadPGN(f)
		if err != nil {
			return records, errors.Wrapf(err, "reading %s", path)
		}
		r.Log.Debug().Str("file", path).Int("games", len(records)).Msg("read PGN")
		return records, nil
	}

	rec, err := ReadMoveList(f, path)
	if err != nil {
		return nil, err
	}
	return []chess.GameRecord{*rec}, nil
}
