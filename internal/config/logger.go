package config

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// LogLevel maps Verbosity to a zerolog level.
func (c *Config) LogLevel() zerolog.Level {
	switch {
	case c.Verbosity <= 0:
		return zerolog.WarnLevel
	case c.Verbosity == 1:
		return zerolog.InfoLevel
	default:
		return zerolog.DebugLevel
	}
}

// Logger builds the program logger, writing human-readable lines to
// LogFile at the level chosen by Verbosity.
func (c *Config) Logger() zerolog.Logger {
	var out io.Writer = io.Discard
	if c.LogFile != nil {
		out = zerolog.ConsoleWriter{Out: c.LogFile, NoColor: true, TimeFormat: time.TimeOnly}
	}
	return zerolog.New(out).Level(c.LogLevel()).With().Timestamp().Logger()
}
