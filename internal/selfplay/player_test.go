package selfplay

import (
	"math/rand"
	"testing"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/strategy"
	"github.com/lgbarn/chessrules-go/internal/testutil"
)

// scripted plays its moves in order, cycling when it runs out.
type scripted struct {
	name  string
	moves []string
	next  int
}

func (s *scripted) ChooseMove(v strategy.View) (chess.Move, bool) {
	if len(s.moves) == 0 {
		return chess.Move{}, false
	}
	m, _ := chess.ParseMove(s.moves[s.next%len(s.moves)])
	s.next++
	return m, true
}

func (s *scripted) Name() string {
	return s.name
}

func script(moves ...string) *scripted {
	return &scripted{name: "scripted", moves: moves}
}

func mustGame(t *testing.T, fen string) *engine.Game {
	t.Helper()
	g, err := engine.NewGameFromFEN(fen)
	if err != nil {
		t.Fatalf("NewGameFromFEN(%q): %v", fen, err)
	}
	return g
}

func TestPlay_Checkmate(t *testing.T) {
	p := NewPlayer(script("f2f3", "g2g4"), script("e7e5", "d8h4"))
	p.CheckInvariants = true

	rec, err := p.Play(engine.NewGame(), 7)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.Number, 7)
	testutil.AssertEqual(t, rec.StartFEN, engine.InitialFEN)
	var moves []string
	for _, m := range rec.Moves {
		moves = append(moves, m.String())
	}
	testutil.AssertEqual(t, moves, []string{"f2f3", "e7e5", "g2g4", "d8h4"})
	testutil.AssertEqual(t, rec.FinalFEN, testutil.FoolsMateFEN)
	testutil.AssertEqual(t, rec.Termination, chess.Checkmate)
	testutil.AssertEqual(t, rec.Result, chess.BlackWins)
}

func TestPlay_StopsAtMaxPly(t *testing.T) {
	p := NewPlayer(script("g1f3", "f3g1"), script("g8f6", "f6g8"))
	p.MaxPly = 10

	rec, err := p.Play(engine.NewGame(), 1)
	testutil.AssertNoError(t, err)

	testutil.AssertEqual(t, rec.Plies(), 10)
	testutil.AssertEqual(t, rec.FinalFEN, "rnbqkb1r/pppppppp/5n2/8/8/5N2/PPPPPPPP/RNBQKB1R w KQkq - 10 6")
	testutil.AssertEqual(t, rec.Termination, chess.NoTermination)
	testutil.AssertEqual(t, rec.Result, chess.Unfinished)
}

func TestPlay_GameAlreadyOver(t *testing.T) {
	tests := []struct {
		name        string
		fen         string
		termination chess.Termination
		result      string
	}{
		{"stalemate", testutil.StalemateFEN, chess.Stalemate, chess.Draw},
		{"checkmate", testutil.FoolsMateFEN, chess.Checkmate, chess.BlackWins},
		{"bare kings", testutil.BareKingsFEN, chess.InsufficientMaterial, chess.Draw},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := NewPlayer(script("a2a3"), script("a7a6"))
			rec, err := p.Play(mustGame(t, tt.fen), 1)
			testutil.AssertNoError(t, err)
			testutil.AssertEqual(t, rec.Plies(), 0)
			testutil.AssertEqual(t, rec.FinalFEN, tt.fen)
			testutil.AssertEqual(t, rec.Termination, tt.termination)
			testutil.AssertEqual(t, rec.Result, tt.result)
		})
	}
}

func TestPlay_StrategyWithoutMove(t *testing.T) {
	p := NewPlayer(script("e2e4"), script())
	rec, err := p.Play(engine.NewGame(), 1)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, rec.Plies(), 1)
	testutil.AssertEqual(t, rec.Result, chess.Unfinished)
}

func TestPlay_IllegalMove(t *testing.T) {
	p := NewPlayer(script("e2e4", "e4e6"), script("e7e5"))
	rec, err := p.Play(engine.NewGame(), 3)

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	var gameErr *errors.GameError
	if !errors.As(err, &gameErr) {
		t.Fatalf("error %v is not a GameError", err)
	}
	testutil.AssertEqual(t, gameErr.GameNum, 3)
	testutil.AssertEqual(t, gameErr.PlyNum, 3)
	testutil.AssertEqual(t, gameErr.MoveText, "e4e6")
	testutil.AssertEqual(t, gameErr.FEN, rec.FinalFEN)
	testutil.AssertEqual(t, rec.Plies(), 2)
}

func TestPlay_StrategiesKeepInvariants(t *testing.T) {
	games := 3
	if testing.Short() {
		games = 1
	}
	names := strategy.Names()
	for _, white := range names {
		for _, black := range names {
			t.Run(white+"_"+black, func(t *testing.T) {
				for n := 1; n <= games; n++ {
					rng := rand.New(rand.NewSource(int64(n)))
					ws, err := strategy.ByName(white, rng)
					testutil.AssertNoError(t, err)
					bs, err := strategy.ByName(black, rng)
					testutil.AssertNoError(t, err)

					p := NewPlayer(ws, bs)
					p.MaxPly = 150
					p.CheckInvariants = true

					g := engine.NewGame()
					rec, err := p.Play(g, n)
					testutil.AssertNoError(t, err, "game %d", n)
					testutil.AssertEqual(t, rec.FinalFEN, g.FEN())
					testutil.AssertEqual(t, g.HistoryLen(), rec.Plies())
					if rec.Termination == chess.NoTermination && rec.Plies() != p.MaxPly {
						t.Errorf("game %d stopped after %d plies without ending", n, rec.Plies())
					}
				}
			})
		}
	}
}
