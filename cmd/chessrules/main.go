// chessrules plays and replays chess games on a rules engine, checking
// every move for legality.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/chessrules-go/internal/config"
)

const programVersion = "0.1.0"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("chessrules version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(2)
	}

	// Set up logging and output files
	setupLogFile(cfg)
	setupOutputFile(cfg)

	summary, err := NewProcessor(cfg).Run()
	closeFile(cfg.OutputFile)

	if cfg.Verbosity > 0 {
		reportStatistics(os.Stderr, summary)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeFile(cfg.LogFile)
		os.Exit(1)
	}
	closeFile(cfg.LogFile)
}

// setupLogFile configures the log file based on command-line flags.
func setupLogFile(cfg *config.Config) {
	if *logFile == "" {
		return
	}
	file, err := os.Create(*logFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
}

// setupOutputFile configures the output file based on command-line flags.
func setupOutputFile(cfg *config.Config) {
	if cfg.Output.OutputFilename == "" {
		return
	}
	file, err := os.Create(cfg.Output.OutputFilename)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating output file %s: %v\n", cfg.Output.OutputFilename, err)
		os.Exit(1)
	}
	cfg.OutputFile = file
}

// closeFile closes w if it is a file other than stdout or stderr.
func closeFile(w io.Writer) {
	if f, ok := w.(*os.File); ok && f != os.Stdout && f != os.Stderr {
		f.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: chessrules [options]\n\n")
	fmt.Fprintf(os.Stderr, "Plays self-play games between move-selection strategies, or replays\n")
	fmt.Fprintf(os.Stderr, "recorded games, enforcing the rules of chess.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
	fmt.Fprintf(os.Stderr, "\nReplay formats (-replay):\n")
	fmt.Fprintf(os.Stderr, "  .pgn   PGN games in standard algebraic notation\n")
	fmt.Fprintf(os.Stderr, "  other  Long algebraic moves (e2e4 e7e5 e7e8q), move numbers allowed\n")
}
