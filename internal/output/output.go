// Package output writes game records as text or JSON.
package output

import (
	"fmt"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/render"
)

// DefaultLineLength is the width move text is wrapped at.
const DefaultLineLength = 80

// OutputWriter handles formatted output with line length control.
type OutputWriter struct {
	w             io.Writer
	lineLength    int
	maxLineLength int
	needsSpace    bool
}

// NewOutputWriter creates a new output writer.
func NewOutputWriter(w io.Writer, maxLineLength int) *OutputWriter {
	if maxLineLength <= 0 {
		maxLineLength = DefaultLineLength
	}
	return &OutputWriter{
		w:             w,
		maxLineLength: maxLineLength,
	}
}

// Write writes a string, adding a space separator if needed.
func (o *OutputWriter) Write(s string) {
	if o.needsSpace && len(s) > 0 {
		// Check if we need a new line
		if o.lineLength+1+len(s) > o.maxLineLength {
			fmt.Fprintln(o.w)
			o.lineLength = 0
			o.needsSpace = false
		} else {
			fmt.Fprint(o.w, " ")
			o.lineLength++
		}
	}

	fmt.Fprint(o.w, s)
	o.lineLength += len(s)
	o.needsSpace = true
}

// NewLine starts a new line.
func (o *OutputWriter) NewLine() {
	fmt.Fprintln(o.w)
	o.lineLength = 0
	o.needsSpace = false
}

// TextOptions controls OutputGame.
type TextOptions struct {
	LineLength int  // Width to wrap move text at
	ShowBoard  bool // Append a diagram of the final position
}

// OutputGame writes a game record as a header line, the numbered move
// text ending in the result, and a summary of how the game stands.
func OutputGame(w io.Writer, rec *chess.GameRecord, opts TextOptions) {
	fmt.Fprintf(w, "Game %d", rec.Number)
	if rec.White != "" || rec.Black != "" {
		fmt.Fprintf(w, ": %s vs %s", orUnknown(rec.White), orUnknown(rec.Black))
	}
	fmt.Fprintln(w)

	start := rec.StartFEN
	if start != "" && start != engine.InitialFEN {
		fmt.Fprintf(w, "Start: %s\n", start)
	}

	outputMoves(w, rec, opts.LineLength)

	fmt.Fprintf(w, "Termination: %s after %d plies\n", terminationText(rec.Termination), rec.Plies())
	if rec.FinalFEN != "" {
		fmt.Fprintf(w, "FEN: %s\n", rec.FinalFEN)
		if opts.ShowBoard {
			if pos, err := engine.NewPositionFromFEN(rec.FinalFEN); err == nil {
				fmt.Fprint(w, render.Diagram(&pos.Board))
			}
		}
	}

	// Blank line between games
	fmt.Fprintln(w)
}

// outputMoves writes the move text with move numbers, starting from the
// side and move number of the start position.
func outputMoves(w io.Writer, rec *chess.GameRecord, lineLength int) {
	ow := NewOutputWriter(w, lineLength)

	moveNum := uint(1)
	isWhite := true
	if rec.StartFEN != "" {
		if pos, err := engine.NewPositionFromFEN(rec.StartFEN); err == nil {
			moveNum = pos.MoveNumber
			isWhite = pos.ToMove == chess.White
		}
	}

	for i, m := range rec.Moves {
		if isWhite {
			ow.Write(fmt.Sprintf("%d.", moveNum))
		} else if i == 0 {
			// Black to move at start
			ow.Write(fmt.Sprintf("%d...", moveNum))
		}
		ow.Write(m.String())

		if !isWhite {
			moveNum++
		}
		isWhite = !isWhite
	}

	result := rec.Result
	if result == "" {
		result = chess.Unfinished
	}
	ow.Write(result)
	ow.NewLine()
}

func terminationText(t chess.Termination) string {
	if t == chess.NoTermination {
		return "unfinished"
	}
	return t.String()
}

func orUnknown(name string) string {
	if name == "" {
		return "?"
	}
	return name
}
