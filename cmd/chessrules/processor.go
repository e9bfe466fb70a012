// processor.go - Game playing, replaying and output
package main

import (
	"fmt"
	"io"
	"math/rand"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/hashing"
	"github.com/lgbarn/chessrules-go/internal/output"
	"github.com/lgbarn/chessrules-go/internal/render"
	"github.com/lgbarn/chessrules-go/internal/replay"
	"github.com/lgbarn/chessrules-go/internal/selfplay"
	"github.com/lgbarn/chessrules-go/internal/strategy"
	"github.com/lgbarn/chessrules-go/internal/worker"
)

// Summary counts how the games of a run ended.
type Summary struct {
	Games                int
	Checkmates           int
	Stalemates           int
	InsufficientMaterial int
	Unfinished           int
	Duplicates           int
	Failed               int
}

// Add counts one finished record.
func (s *Summary) Add(rec *chess.GameRecord) {
	s.Games++
	switch rec.Termination {
	case chess.Checkmate:
		s.Checkmates++
	case chess.Stalemate:
		s.Stalemates++
	case chess.InsufficientMaterial:
		s.InsufficientMaterial++
	default:
		s.Unfinished++
	}
}

// Processor plays or replays games as configured and writes the records.
type Processor struct {
	cfg      *config.Config
	log      zerolog.Logger
	writer   output.GameWriter
	detector *hashing.DuplicateDetector
	last     *chess.GameRecord
}

// NewProcessor creates a Processor writing to cfg.OutputFile.
func NewProcessor(cfg *config.Config) *Processor {
	out := cfg.OutputFile
	if out == nil {
		out = io.Discard
	}
	p := &Processor{
		cfg:    cfg,
		log:    cfg.Logger(),
		writer: output.NewWriter(out, &cfg.Output),
	}
	if cfg.Duplicate.Suppress {
		p.detector = hashing.NewDuplicateDetector(cfg.Duplicate.ExactMatch)
	}
	return p
}

// Run replays cfg.ReplayFile when set and plays self-play games otherwise.
// Games that fail are logged, counted and left out of the output; the
// first failure is returned after the rest have been written.
func (p *Processor) Run() (Summary, error) {
	var summary Summary
	var err error
	if p.cfg.ReplayFile != "" {
		err = p.replayAll(&summary)
	} else {
		err = p.playAll(&summary)
	}

	if cerr := p.writer.Close(); cerr != nil && err == nil {
		err = cerr
	}
	if p.cfg.Output.PNGFile != "" && p.last != nil {
		if perr := writePNG(p.cfg.Output.PNGFile, p.last, p.cfg.Output.ImageSize); perr != nil && err == nil {
			err = perr
		}
	}

	p.log.Info().
		Int("games", summary.Games).
		Int("checkmates", summary.Checkmates).
		Int("stalemates", summary.Stalemates).
		Int("duplicates", summary.Duplicates).
		Int("failed", summary.Failed).
		Msg("run finished")
	return summary, err
}

// playAll runs the configured number of self-play games on the worker pool.
func (p *Processor) playAll(summary *Summary) error {
	opts := []worker.Option{worker.WithWorkers(p.cfg.Play.Workers)}
	if p.cfg.Play.CheckInvariants {
		opts = append(opts, worker.WithStopOnError())
	}
	pool := worker.NewPool(p.playOne, opts...)

	p.log.Debug().
		Int("games", p.cfg.Play.Games).
		Int("workers", pool.NumWorkers()).
		Str("white", p.cfg.Play.White).
		Str("black", p.cfg.Play.Black).
		Msg("starting self-play")

	var firstErr error
	for _, out := range pool.Run(worker.Jobs(p.cfg.Play.Games, p.cfg.Play.Seed)) {
		if out.Err != nil {
			summary.Failed++
			p.log.Error().Err(out.Err).Int("game", out.Number).Msg("game failed")
			if firstErr == nil {
				firstErr = out.Err
			}
			continue
		}
		if err := p.emit(out.Record, summary); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// playOne plays a single game; it runs on a worker goroutine.
func (p *Processor) playOne(job worker.Job) worker.Outcome {
	rng := rand.New(rand.NewSource(job.Seed))
	white, err := strategy.ByName(p.cfg.Play.White, rng)
	if err != nil {
		return worker.Outcome{Number: job.Number, Err: err}
	}
	black, err := strategy.ByName(p.cfg.Play.Black, rng)
	if err != nil {
		return worker.Outcome{Number: job.Number, Err: err}
	}
	g, err := engine.NewGameFromFEN(p.cfg.StartFEN())
	if err != nil {
		return worker.Outcome{Number: job.Number, Err: err}
	}

	player := selfplay.NewPlayer(white, black)
	player.MaxPly = p.cfg.Play.MaxPly
	player.CheckInvariants = p.cfg.Play.CheckInvariants
	player.Log = p.log

	rec, err := player.Play(g, job.Number)
	return worker.Outcome{Number: job.Number, Record: rec, Err: err}
}

// replayAll replays every record in the replay file.
func (p *Processor) replayAll(summary *Summary) error {
	replayer := replay.NewReplayer(p.log)
	records, err := replayer.ReadFile(p.cfg.ReplayFile)
	if err != nil {
		return err
	}

	var firstErr error
	for i := range records {
		rec := &records[i]
		if err := replayer.Play(rec); err != nil {
			summary.Failed++
			if firstErr == nil {
				firstErr = err
			}
			continue
		}
		if err := p.emit(rec, summary); err != nil && firstErr == nil {
			firstErr = err
		}
	}
	return firstErr
}

// emit writes a finished record and counts it. With duplicate
// suppression, a game that repeats an earlier one is only counted as a
// duplicate.
func (p *Processor) emit(rec *chess.GameRecord, summary *Summary) error {
	if p.detector != nil {
		dup, err := p.detector.CheckAndAdd(rec)
		if err != nil {
			return err
		}
		if dup {
			summary.Duplicates++
			p.log.Debug().Int("game", rec.Number).Msg("duplicate game suppressed")
			return nil
		}
	}
	summary.Add(rec)
	p.last = rec
	return p.writer.WriteGame(rec)
}

// writePNG renders the final position of rec to path.
func writePNG(path string, rec *chess.GameRecord, size int) error {
	pos, err := engine.NewPositionFromFEN(rec.FinalFEN)
	if err != nil {
		return err
	}
	f, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return err
	}
	if err := render.WritePNG(f, &pos.Board, size); err != nil {
		f.Close() //nolint:errcheck,gosec // G104: already failing
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}

// reportStatistics prints the final statistics.
func reportStatistics(w io.Writer, s Summary) {
	fmt.Fprintf(w, "%d game(s): %d checkmate(s), %d stalemate(s), %d insufficient material, %d unfinished",
		s.Games, s.Checkmates, s.Stalemates, s.InsufficientMaterial, s.Unfinished)
	if s.Duplicates > 0 {
		fmt.Fprintf(w, ", %d duplicate(s)", s.Duplicates)
	}
	if s.Failed > 0 {
		fmt.Fprintf(w, ", %d failed", s.Failed)
	}
	fmt.Fprintln(w, ".")
}
