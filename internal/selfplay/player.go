// Package selfplay plays games between two strategies on the rules engine.
package selfplay

import (
	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/strategy"
)

// DefaultMaxPly is the ply limit used when none is given.
const DefaultMaxPly = 200

// Player drives one game at a time between White and Black.
// A Player is not safe for concurrent use: its strategies hold their own
// random sources.
type Player struct {
	White strategy.Strategy
	Black strategy.Strategy

	// MaxPly stops a game that has not ended after this many plies.
	MaxPly int

	// CheckInvariants verifies the position after every ply and fails the
	// game on the first violation.
	CheckInvariants bool

	Log zerolog.Logger
}

// NewPlayer creates a Player with the default ply limit and no logging.
func NewPlayer(white, black strategy.Strategy) *Player {
	return &Player{
		White:  white,
		Black:  black,
		MaxPly: DefaultMaxPly,
		Log:    zerolog.Nop(),
	}
}

// Play plays g until it ends, a strategy has no move, or MaxPly plies have
// been made. number labels the game in the record and in errors.
// On error the record holds the moves made up to the failure.
func (p *Player) Play(g *engine.Game, number int) (*chess.GameRecord, error) {
	rec := &chess.GameRecord{
		Number:   number,
		White:    p.White.Name(),
		Black:    p.Black.Name(),
		StartFEN: g.FEN(),
	}
	log := p.Log.With().Int("game", number).Logger()

	for ply := 1; ply <= p.MaxPly && !g.IsGameOver(); ply++ {
		s := p.strategyFor(g.ToMove())
		m, ok := s.ChooseMove(g)
		if !ok {
			break
		}

		before := g.Position()
		if !g.ApplyMove(m.From, m.To, m.Promotion) {
			return p.finish(g, rec), &errors.GameError{
				Err:      errors.ErrIllegalMove,
				GameNum:  number,
				PlyNum:   ply,
				MoveText: m.String(),
				FEN:      engine.PositionToFEN(&before),
			}
		}
		rec.Moves = append(rec.Moves, m)
		log.Debug().Int("ply", ply).Str("strategy", s.Name()).Str("move", m.String()).Msg("move")

		if p.CheckInvariants {
			if err := CheckPly(g, &before, m); err != nil {
				return p.finish(g, rec), &errors.GameError{
					Err:      err,
					GameNum:  number,
					PlyNum:   ply,
					MoveText: m.String(),
					FEN:      engine.PositionToFEN(&before),
				}
			}
		}
	}

	p.finish(g, rec)
	log.Info().
		Int("plies", rec.Plies()).
		Str("termination", rec.Termination.String()).
		Str("result", rec.Result).
		Msg("game finished")
	return rec, nil
}

// finish fills in how the game stands now.
func (p *Player) finish(g *engine.Game, rec *chess.GameRecord) *chess.GameRecord {
	rec.FinalFEN = g.FEN()
	rec.Termination = g.Result()
	rec.Result = chess.Outcome(rec.Termination, g.ToMove())
	return rec
}

func (p *Player) strategyFor(colour chess.Colour) strategy.Strategy {
	if colour == chess.White {
		return p.White
	}
	return p.Black
}
