package config

import (
	"fmt"
	"math/rand"
	"runtime"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
	"github.com/lgbarn/chessrules-go/internal/strategy"
)

// PlayConfig holds settings for self-play games.
type PlayConfig struct {
	// Games is the number of games to play.
	Games int

	// Workers is the number of games played at once.
	Workers int

	// MaxPly stops a game that has not ended after this many plies.
	MaxPly int

	// Seed seeds the strategies. Game n uses Seed+n, so runs repeat.
	Seed int64

	// White and Black name the strategy for each side.
	White string
	Black string

	// StartFEN is the position every game starts from; empty means the
	// standard starting position.
	StartFEN string

	// CheckInvariants verifies position invariants after every ply.
	CheckInvariants bool
}

// NewPlayConfig creates a PlayConfig with default values.
func NewPlayConfig() *PlayConfig {
	return &PlayConfig{
		Games:   1,
		Workers: runtime.NumCPU(),
		MaxPly:  200,
		Seed:    1,
		White:   "random",
		Black:   "random",
	}
}

// Validate checks that the play configuration is usable.
func (p *PlayConfig) Validate() error {
	if p.Games < 0 {
		return fmt.Errorf("games (%d) must not be negative: %w", p.Games, errors.ErrInvalidConfig)
	}
	if p.Workers < 1 {
		return fmt.Errorf("workers (%d) must be at least 1: %w", p.Workers, errors.ErrInvalidConfig)
	}
	if p.MaxPly < 1 {
		return fmt.Errorf("max ply (%d) must be at least 1: %w", p.MaxPly, errors.ErrInvalidConfig)
	}
	for _, name := range []string{p.White, p.Black} {
		if _, err := strategy.ByName(name, rand.New(rand.NewSource(p.Seed))); err != nil {
			return err
		}
	}
	if p.StartFEN != "" {
		if _, err := engine.NewPositionFromFEN(p.StartFEN); err != nil {
			return fmt.Errorf("start position: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	return nil
}
