package hashing

import (
	"math/rand"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// zobristSeed fixes the key tables so hashes are stable between runs.
const zobristSeed = 0x5eed

var (
	pieceKeys     [chess.NumPieceValues][2][chess.BoardSize][chess.BoardSize]uint64
	blackToMove   uint64
	castlingKeys  [4]uint64
	enPassantKeys [chess.BoardSize]uint64
)

func init() {
	rng := rand.New(rand.NewSource(zobristSeed)) //nolint:gosec // G404: hash keys, not secrets
	for piece := range pieceKeys {
		for colour := range pieceKeys[piece] {
			for row := range pieceKeys[piece][colour] {
				for col := range pieceKeys[piece][colour][row] {
					pieceKeys[piece][colour][row][col] = rng.Uint64()
				}
			}
		}
	}
	blackToMove = rng.Uint64()
	for i := range castlingKeys {
		castlingKeys[i] = rng.Uint64()
	}
	for i := range enPassantKeys {
		enPassantKeys[i] = rng.Uint64()
	}
}

// GenerateZobristHash hashes everything about a position except the
// clocks: pieces, side to move, castling rights and the en passant file.
func GenerateZobristHash(pos *chess.Position) uint64 {
	var hash uint64
	for row := 0; row < chess.BoardSize; row++ {
		for col := 0; col < chess.BoardSize; col++ {
			p := pos.Board.Squares[row][col]
			if p == chess.Empty {
				continue
			}
			hash ^= pieceKeys[chess.ExtractPiece(p)][chess.ExtractColour(p)][row][col]
		}
	}

	if pos.ToMove == chess.Black {
		hash ^= blackToMove
	}
	for i, right := range []bool{pos.WKingCastle, pos.WQueenCastle, pos.BKingCastle, pos.BQueenCastle} {
		if right {
			hash ^= castlingKeys[i]
		}
	}
	if pos.EnPassant {
		hash ^= enPassantKeys[pos.EPSquare.Col]
	}
	return hash
}

// MoveSequenceHash hashes the moves of a game in order.
func MoveSequenceHash(moves []chess.Move) uint64 {
	var hash uint64
	multiplier := uint64(31)

	for _, m := range moves {
		for _, c := range m.String() {
			hash = hash*multiplier + uint64(c)
		}
		hash = hash*multiplier + ' '
	}
	return hash
}
