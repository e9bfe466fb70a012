package output

import (
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/config"
)

// GameWriter is the interface for writing game records to output.
type GameWriter interface {
	// WriteGame writes a single game to the output.
	WriteGame(rec *chess.GameRecord) error

	// Flush flushes any buffered data to the underlying writer.
	Flush() error

	// Close closes the writer and releases any resources.
	// For batch writers (like JSON), this also writes any pending output.
	Close() error
}

// NewWriter returns the writer selected by cfg: JSON when JSONFormat is
// set, text otherwise.
func NewWriter(w io.Writer, cfg *config.OutputConfig) GameWriter {
	if cfg.JSONFormat {
		return NewJSONWriter(w, cfg.ShowBoard)
	}
	return NewTextWriter(w, TextOptions{ShowBoard: cfg.ShowBoard})
}

// TextWriter writes games as plain text.
type TextWriter struct {
	w    io.Writer
	opts TextOptions
}

// NewTextWriter creates a new text writer.
func NewTextWriter(w io.Writer, opts TextOptions) *TextWriter {
	return &TextWriter{w: w, opts: opts}
}

// WriteGame writes a game as text.
func (tw *TextWriter) WriteGame(rec *chess.GameRecord) error {
	OutputGame(tw.w, rec, tw.opts)
	return nil
}

// Flush flushes the text writer (no-op as it writes immediately).
func (tw *TextWriter) Flush() error {
	return nil
}

// Close closes the text writer.
func (tw *TextWriter) Close() error {
	return nil
}

// JSONWriter writes games in JSON format.
// It buffers games and writes them as a JSON array on Close or Flush.
type JSONWriter struct {
	w       io.Writer
	withFEN bool
	games   []*JSONGame
}

// NewJSONWriter creates a new JSON writer. With withFEN set every move
// carries the FEN of the position after it.
func NewJSONWriter(w io.Writer, withFEN bool) *JSONWriter {
	return &JSONWriter{
		w:       w,
		withFEN: withFEN,
		games:   make([]*JSONGame, 0),
	}
}

// WriteGame converts a game and buffers it for output.
func (jw *JSONWriter) WriteGame(rec *chess.GameRecord) error {
	jg, err := GameToJSON(rec, jw.withFEN)
	if err != nil {
		return err
	}
	jw.games = append(jw.games, jg)
	return nil
}

// Flush writes all buffered games as a JSON array.
func (jw *JSONWriter) Flush() error {
	if len(jw.games) == 0 {
		return nil
	}
	err := writeJSON(jw.w, &JSONOutput{Games: jw.games})

	// Clear buffer after writing
	jw.games = jw.games[:0]

	return err
}

// Close flushes and closes the JSON writer.
func (jw *JSONWriter) Close() error {
	return jw.Flush()
}
