package output

import (
	"encoding/json"
	"io"

	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
	"github.com/lgbarn/chessrules-go/internal/errors"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	Number      int        `json:"number"`
	White       string     `json:"white,omitempty"`
	Black       string     `json:"black,omitempty"`
	StartFEN    string     `json:"startFEN"`
	Moves       []JSONMove `json:"moves"`
	PlyCount    int        `json:"plyCount"`
	FinalFEN    string     `json:"finalFEN,omitempty"`
	Termination string     `json:"termination"`
	Result      string     `json:"result"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	MoveNumber int    `json:"moveNumber,omitempty"`
	Color      string `json:"color"` // "white" or "black"
	UCI        string `json:"uci"`
	From       string `json:"from"`
	To         string `json:"to"`
	Piece      string `json:"piece"`
	Captured   string `json:"captured,omitempty"`
	Promotion  string `json:"promotion,omitempty"`
	FEN        string `json:"fen,omitempty"`
}

// JSONOutput holds multiple games for array output.
type JSONOutput struct {
	Games []*JSONGame `json:"games"`
}

// GameToJSON converts a game record to JSON form, replaying its moves from
// StartFEN to name the pieces involved. With withFEN set each move carries
// the position after it.
func GameToJSON(rec *chess.GameRecord, withFEN bool) (*JSONGame, error) {
	start := rec.StartFEN
	if start == "" {
		start = engine.InitialFEN
	}
	g, err := engine.NewGameFromFEN(start)
	if err != nil {
		return nil, &errors.GameError{Err: err, GameNum: rec.Number}
	}

	jg := &JSONGame{
		Number:      rec.Number,
		White:       rec.White,
		Black:       rec.Black,
		StartFEN:    start,
		Moves:       make([]JSONMove, 0, len(rec.Moves)),
		PlyCount:    rec.Plies(),
		FinalFEN:    rec.FinalFEN,
		Termination: terminationText(rec.Termination),
		Result:      rec.Result,
	}
	if jg.Result == "" {
		jg.Result = chess.Unfinished
	}

	for i, m := range rec.Moves {
		jm, err := convertMove(g, m)
		if err != nil {
			return nil, &errors.GameError{Err: err, GameNum: rec.Number, PlyNum: i + 1, MoveText: m.String()}
		}
		if withFEN {
			jm.FEN = g.FEN()
		}
		jg.Moves = append(jg.Moves, jm)
	}
	return jg, nil
}

// convertMove describes m in the current position of g and then plays it.
func convertMove(g *engine.Game, m chess.Move) (JSONMove, error) {
	pos := g.Position()
	piece := pos.Get(m.From)
	jm := JSONMove{
		Color: colorName(pos.ToMove),
		UCI:   m.String(),
		From:  m.From.String(),
		To:    m.To.String(),
		Piece: pieceTypeName(chess.ExtractPiece(piece)),
	}
	if pos.ToMove == chess.White {
		jm.MoveNumber = int(pos.MoveNumber)
	}

	if captured := pos.Get(m.To); captured != chess.Empty {
		jm.Captured = pieceTypeName(chess.ExtractPiece(captured))
	} else if chess.ExtractPiece(piece) == chess.Pawn && pos.EnPassant && m.To == pos.EPSquare {
		jm.Captured = "pawn"
	}

	if chess.ExtractPiece(piece) == chess.Pawn && (m.To.Row == 0 || m.To.Row == chess.BoardSize-1) {
		promoted := m.Promotion
		if promoted == chess.Empty {
			promoted = chess.Queen
		}
		jm.Promotion = pieceTypeName(promoted)
	}

	if !g.ApplyMove(m.From, m.To, m.Promotion) {
		return jm, errors.ErrIllegalMove
	}
	return jm, nil
}

// writeJSON encodes v as indented JSON.
func writeJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// colorName returns "white" or "black".
func colorName(c chess.Colour) string {
	if c == chess.White {
		return "white"
	}
	return "black"
}

// pieceTypeName returns the piece type as a string.
func pieceTypeName(p chess.Piece) string {
	switch p {
	case chess.Pawn:
		return "pawn"
	case chess.Knight:
		return "knight"
	case chess.Bishop:
		return "bishop"
	case chess.Rook:
		return "rook"
	case chess.Queen:
		return "queen"
	case chess.King:
		return "king"
	default:
		return ""
	}
}
