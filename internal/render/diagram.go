// Package render draws positions as text diagrams, SVG and PNG images.
package render

import (
	"strings"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

const (
	fileLabels = "   a  b  c  d  e  f  g  h"
	rule       = "  -------------------------"
)

// Diagram returns the board as text, rank 8 first. White pieces are
// uppercase, black lowercase and empty squares dots.
func Diagram(board *chess.Board) string {
	var sb strings.Builder
	sb.WriteString(fileLabels + "\n")
	sb.WriteString(rule + "\n")
	for row := 0; row < chess.BoardSize; row++ {
		rank := chess.Square{Row: row}.Rank()
		sb.WriteByte(rank)
		sb.WriteString(" |")
		for col := 0; col < chess.BoardSize; col++ {
			letter := byte('.')
			if piece := board.Get(chess.Square{Row: row, Col: col}); piece != chess.Empty {
				letter = chess.FENLetter(piece)
			}
			sb.WriteByte(' ')
			sb.WriteByte(letter)
			sb.WriteByte(' ')
		}
		sb.WriteString("| ")
		sb.WriteByte(rank)
		sb.WriteByte('\n')
	}
	sb.WriteString(rule + "\n")
	sb.WriteString(fileLabels + "\n")
	return sb.String()
}
