// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/config"
	"github.com/lgbarn/chessrules-go/internal/selfplay"
	"github.com/lgbarn/chessrules-go/internal/strategy"
)

var strategyHelp = " (" + strings.Join(strategy.Names(), ", ") + ")"

var (
	// Self-play options
	startFEN        = flag.String("fen", "", "Start position as FEN (default: standard starting position)")
	numGames        = flag.Int("games", 1, "Number of self-play games")
	workers         = flag.Int("workers", 0, "Number of games played at once (0 = auto-detect based on CPU cores)")
	maxPly          = flag.Int("maxply", selfplay.DefaultMaxPly, "Stop a game after N plies")
	seed            = flag.Int64("seed", 1, "Random seed; game n uses seed+n")
	whiteStrategy   = flag.String("white", "random", "Strategy for White"+strategyHelp)
	blackStrategy   = flag.String("black", "random", "Strategy for Black"+strategyHelp)
	checkInvariants = flag.Bool("check", false, "Verify position invariants after every ply")

	// Replay
	replayFile = flag.String("replay", "", "Replay a game file (.pgn, or long algebraic moves) instead of playing")

	// Duplicate detection
	suppressDuplicates = flag.Bool("D", false, "Suppress duplicate games")
	exactDuplicates    = flag.Bool("exact", false, "With -D, only games with identical moves are duplicates")

	// Output options
	outputFile = flag.String("o", "", "Output file (default: stdout)")
	jsonOutput = flag.Bool("J", false, "Output in JSON format")
	showBoard  = flag.Bool("board", false, "Show a diagram of each final position (FEN after each move with -J)")
	pngFile    = flag.String("png", "", "Write the final position of the last game as a PNG image")
	imageSize  = flag.Int("size", config.DefaultImageSize, "PNG width and height in pixels")

	// Logging
	logFile   = flag.String("l", "", "Write diagnostics to log file")
	verbosity = flag.Int("v", 0, "Log verbosity: 0 warnings, 1 info, 2 debug")

	// Other options
	help    = flag.Bool("h", false, "Show help")
	version = flag.Bool("version", false, "Show version")
)

// applyFlags applies command-line flags to the configuration.
func applyFlags(cfg *config.Config) {
	applyPlayFlags(cfg)
	applyOutputFlags(cfg)
	applyDuplicateFlags(cfg)

	cfg.ReplayFile = *replayFile
	cfg.Verbosity = *verbosity
}

// applyPlayFlags configures self-play settings.
func applyPlayFlags(cfg *config.Config) {
	cfg.Play.StartFEN = *startFEN
	cfg.Play.Games = *numGames
	if *workers > 0 {
		cfg.Play.Workers = *workers
	}
	cfg.Play.MaxPly = *maxPly
	cfg.Play.Seed = *seed
	cfg.Play.White = *whiteStrategy
	cfg.Play.Black = *blackStrategy
	cfg.Play.CheckInvariants = *checkInvariants
}

// applyOutputFlags configures output settings.
func applyOutputFlags(cfg *config.Config) {
	cfg.Output.JSONFormat = *jsonOutput
	cfg.Output.ShowBoard = *showBoard
	cfg.Output.PNGFile = *pngFile
	cfg.Output.ImageSize = *imageSize
	cfg.Output.OutputFilename = *outputFile
}

// applyDuplicateFlags configures duplicate detection settings.
func applyDuplicateFlags(cfg *config.Config) {
	cfg.Duplicate.Suppress = *suppressDuplicates
	cfg.Duplicate.ExactMatch = *exactDuplicates
}
