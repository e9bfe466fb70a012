package render

import (
	"fmt"
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Board colours.
const (
	LightSquare = "#f0d9b5"
	DarkSquare  = "#b58863"
	WhitePiece  = "#ffffff"
	BlackPiece  = "#303030"
	Outline     = "#000000"
)

// pieceOutlines are piece silhouettes as polygons in a unit square,
// y growing downwards.
var pieceOutlines = map[chess.Piece][][2]float64{
	chess.Pawn: {
		{0.35, 0.85}, {0.65, 0.85}, {0.6, 0.7}, {0.55, 0.55}, {0.6, 0.45},
		{0.5, 0.3}, {0.4, 0.45}, {0.45, 0.55}, {0.4, 0.7},
	},
	chess.Knight: {
		{0.28, 0.85}, {0.75, 0.85}, {0.7, 0.55}, {0.62, 0.3}, {0.5, 0.18},
		{0.42, 0.2}, {0.25, 0.4}, {0.28, 0.48}, {0.45, 0.42}, {0.35, 0.65},
	},
	chess.Bishop: {
		{0.3, 0.85}, {0.7, 0.85}, {0.62, 0.72}, {0.66, 0.5}, {0.5, 0.18},
		{0.34, 0.5}, {0.38, 0.72},
	},
	chess.Rook: {
		{0.25, 0.85}, {0.75, 0.85}, {0.7, 0.75}, {0.65, 0.35}, {0.72, 0.3},
		{0.72, 0.18}, {0.62, 0.18}, {0.62, 0.24}, {0.55, 0.24}, {0.55, 0.18},
		{0.45, 0.18}, {0.45, 0.24}, {0.38, 0.24}, {0.38, 0.18}, {0.28, 0.18},
		{0.28, 0.3}, {0.35, 0.35}, {0.3, 0.75},
	},
	chess.Queen: {
		{0.25, 0.85}, {0.75, 0.85}, {0.72, 0.7}, {0.82, 0.3}, {0.64, 0.55},
		{0.6, 0.2}, {0.5, 0.5}, {0.4, 0.2}, {0.36, 0.55}, {0.18, 0.3},
		{0.28, 0.7},
	},
	chess.King: {
		{0.28, 0.85}, {0.72, 0.85}, {0.68, 0.55}, {0.56, 0.45}, {0.56, 0.32},
		{0.64, 0.32}, {0.64, 0.24}, {0.56, 0.24}, {0.56, 0.14}, {0.44, 0.14},
		{0.44, 0.24}, {0.36, 0.24}, {0.36, 0.32}, {0.44, 0.32}, {0.44, 0.45},
		{0.32, 0.55},
	},
}

// SVG returns the board as a size x size pixel SVG document, rank 8 at
// the top.
func SVG(board *chess.Board, size int) string {
	sq := float64(size) / chess.BoardSize
	stroke := sq / 40

	var sb strings.Builder
	fmt.Fprintf(&sb, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`+"\n",
		size, size, size, size)
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			square := chess.Square{Row: row, Col: col}
			fill := DarkSquare
			if square.IsLight() {
				fill = LightSquare
			}
			x, y := float64(col)*sq, float64(row)*sq
			fmt.Fprintf(&sb, `<rect x="%s" y="%s" width="%s" height="%s" fill="%s"/>`+"\n",
				num(x), num(y), num(sq), num(sq), fill)

			piece := board.Get(square)
			if piece == chess.Empty {
				continue
			}
			outline, ok := pieceOutlines[chess.ExtractPiece(piece)]
			if !ok {
				continue
			}
			fill = BlackPiece
			if chess.ExtractColour(piece) == chess.White {
				fill = WhitePiece
			}
			points := make([]string, len(outline))
			for i, p := range outline {
				points[i] = num(x+p[0]*sq) + "," + num(y+p[1]*sq)
			}
			fmt.Fprintf(&sb, `<polygon points="%s" fill="%s" stroke="%s" stroke-width="%s"/>`+"\n",
				strings.Join(points, " "), fill, Outline, num(stroke))
		}
	}
	sb.WriteString("</svg>\n")
	return sb.String()
}

// num formats a coordinate with at most two decimals.
func num(f float64) string {
	s := fmt.Sprintf("%.2f", f)
	s = strings.TrimRight(s, "0")
	return strings.TrimSuffix(s, ".")
}
