package config

import "io"

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithGames sets the number of self-play games.
func (b *ConfigBuilder) WithGames(n int) *ConfigBuilder {
	b.cfg.Play.Games = n
	return b
}

// WithWorkers sets the number of concurrent games.
func (b *ConfigBuilder) WithWorkers(n int) *ConfigBuilder {
	b.cfg.Play.Workers = n
	return b
}

// WithMaxPly sets the ply limit per game.
func (b *ConfigBuilder) WithMaxPly(n int) *ConfigBuilder {
	b.cfg.Play.MaxPly = n
	return b
}

// WithSeed sets the base random seed.
func (b *ConfigBuilder) WithSeed(seed int64) *ConfigBuilder {
	b.cfg.Play.Seed = seed
	return b
}

// WithStrategies sets the strategy for each side.
func (b *ConfigBuilder) WithStrategies(white, black string) *ConfigBuilder {
	b.cfg.Play.White = white
	b.cfg.Play.Black = black
	return b
}

// WithStartFEN sets the start position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.Play.StartFEN = fen
	return b
}

// WithInvariantChecks enables the per-ply invariant checks.
func (b *ConfigBuilder) WithInvariantChecks(enabled bool) *ConfigBuilder {
	b.cfg.Play.CheckInvariants = enabled
	return b
}

// WithReplayFile sets the game record to replay.
func (b *ConfigBuilder) WithReplayFile(path string) *ConfigBuilder {
	b.cfg.ReplayFile = path
	return b
}

// WithJSONOutput enables JSON output.
func (b *ConfigBuilder) WithJSONOutput(enabled bool) *ConfigBuilder {
	b.cfg.Output.JSONFormat = enabled
	return b
}

// WithBoard enables final position diagrams.
func (b *ConfigBuilder) WithBoard(enabled bool) *ConfigBuilder {
	b.cfg.Output.ShowBoard = enabled
	return b
}

// WithPNG sets the image file and its size.
func (b *ConfigBuilder) WithPNG(path string, size int) *ConfigBuilder {
	b.cfg.Output.PNGFile = path
	b.cfg.Output.ImageSize = size
	return b
}

// WithDuplicateSuppression leaves repeated games out of the output.
func (b *ConfigBuilder) WithDuplicateSuppression(enabled, exactMatch bool) *ConfigBuilder {
	b.cfg.Duplicate.Suppress = enabled
	b.cfg.Duplicate.ExactMatch = exactMatch
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer.
func (b *ConfigBuilder) WithLog(w io.Writer) *ConfigBuilder {
	b.cfg.LogFile = w
	return b
}

// WithVerbosity sets the verbosity level.
func (b *ConfigBuilder) WithVerbosity(level int) *ConfigBuilder {
	b.cfg.Verbosity = level
	return b
}
