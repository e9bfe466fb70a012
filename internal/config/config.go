// Package config provides configuration for chessrules.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Verbosity selects the log level: 0 warnings, 1 info, 2 and up debug.
	Verbosity int

	// Self-play settings
	Play PlayConfig

	// Output settings
	Output OutputConfig

	// Duplicate detection settings
	Duplicate DuplicateConfig

	// ReplayFile, when set, is a game record to replay instead of playing.
	// A .pgn suffix selects PGN; anything else is read as long algebraic.
	ReplayFile string

	// Output streams
	OutputFile io.Writer
	LogFile    io.Writer
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Play:       *NewPlayConfig(),
		Output:     *NewOutputConfig(),
		Duplicate:  *NewDuplicateConfig(),
		OutputFile: os.Stdout,
		LogFile:    os.Stderr,
	}
}

// Validate checks every section of the configuration.
func (c *Config) Validate() error {
	if c.Verbosity < 0 {
		return fmt.Errorf("verbosity (%d) must not be negative: %w", c.Verbosity, errors.ErrInvalidConfig)
	}
	if err := c.Play.Validate(); err != nil {
		return err
	}
	if err := c.Output.Validate(); err != nil {
		return err
	}
	return nil
}

// StartFEN returns the configured start position, or the standard one.
func (c *Config) StartFEN() string {
	if c.Play.StartFEN == "" {
		return engine.InitialFEN
	}
	return c.Play.StartFEN
}
