package engine

import (
	"golang.org/x/exp/slices"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Game owns a live position and the stack of snapshots used for undo.
// A Game is not safe for concurrent use; concurrent games each need
// their own Game.
type Game struct {
	pos     chess.Position
	history []chess.Position
}

// NewGame creates a game at the standard starting position.
func NewGame() *Game {
	return &Game{pos: *chess.NewInitialPosition()}
}

// NewGameFromFEN creates a game from a FEN string.
func NewGameFromFEN(fen string) (*Game, error) {
	pos, err := NewPositionFromFEN(fen)
	if err != nil {
		return nil, err
	}
	return &Game{pos: *pos}, nil
}

// Position returns a copy of the live position.
func (g *Game) Position() chess.Position {
	return g.pos
}

// Board returns a copy of the live board.
func (g *Game) Board() chess.Board {
	return g.pos.Board
}

// ToMove returns the side to move.
func (g *Game) ToMove() chess.Colour {
	return g.pos.ToMove
}

// HistoryLen returns the number of moves that can be undone.
func (g *Game) HistoryLen() int {
	return len(g.history)
}

// FEN returns the live position as a FEN string.
func (g *Game) FEN() string {
	return PositionToFEN(&g.pos)
}

// ApplyMove plays from -> to for the side to move. A promotion of Empty
// means Queen. It returns false, leaving the game untouched, when there is no
// piece on from, the piece belongs to the other side, the destination is not
// legal, or a pawn reaching the last row would promote to anything but a
// knight, bishop, rook or queen. The promotion of any other move is ignored.
func (g *Game) ApplyMove(from, to chess.Square, promotion chess.Piece) bool {
	piece := g.pos.Get(from)
	if piece == chess.Empty || chess.ExtractColour(piece) != g.pos.ToMove {
		return false
	}
	if promotion == chess.Empty {
		promotion = chess.Queen
	}
	if chess.ExtractPiece(piece) == chess.Pawn && to.Row == promotionRow(g.pos.ToMove) &&
		!chess.IsPromotionPiece(promotion) {
		return false
	}
	if !slices.Contains(LegalDestinations(&g.pos, from), to) {
		return false
	}

	g.history = append(g.history, g.pos)

	colour := g.pos.ToMove
	pieceType := chess.ExtractPiece(piece)
	captured := playOnBoard(&g.pos.Board, from, to, promotion, g.pos.EnPassant, g.pos.EPSquare)

	updateCastlingRights(&g.pos, piece, from, to)

	g.pos.EnPassant = false
	g.pos.EPSquare = chess.Square{}
	if pieceType == chess.Pawn && abs(to.Row-from.Row) == 2 {
		g.pos.EnPassant = true
		g.pos.EPSquare = chess.Square{Row: (from.Row + to.Row) / 2, Col: from.Col}
	}

	if pieceType == chess.Pawn || captured {
		g.pos.HalfmoveClock = 0
	} else {
		g.pos.HalfmoveClock++
	}
	if colour == chess.Black {
		g.pos.MoveNumber++
	}
	g.pos.ToMove = colour.Opposite()

	return true
}

// ApplyMoveText is ApplyMove with algebraic squares ("e2", "e4") and a
// queen promotion. Squares off the board make it return false.
func (g *Game) ApplyMoveText(from, to string) bool {
	fromSq, ok := chess.ParseSquare(from)
	if !ok {
		return false
	}
	toSq, ok := chess.ParseSquare(to)
	if !ok {
		return false
	}
	return g.ApplyMove(fromSq, toSq, chess.Queen)
}

// ApplyUCI plays a move written in long algebraic notation ("e2e4", "e7e8n").
func (g *Game) ApplyUCI(text string) bool {
	m, ok := chess.ParseMove(text)
	if !ok {
		return false
	}
	return g.ApplyMove(m.From, m.To, m.Promotion)
}

// UndoMove restores the position from before the last applied move.
// It returns false if there is nothing to undo.
func (g *Game) UndoMove() bool {
	n := len(g.history)
	if n == 0 {
		return false
	}
	g.pos = g.history[n-1]
	g.history = g.history[:n-1]
	return true
}

// LegalMoves returns the legal moves of the given colour.
func (g *Game) LegalMoves(colour chess.Colour) []chess.Move {
	return LegalMoves(&g.pos, colour)
}

// LegalDestinations returns the legal destinations of the piece on sq.
func (g *Game) LegalDestinations(sq chess.Square) []chess.Square {
	return LegalDestinations(&g.pos, sq)
}

// PseudoLegalDestinations returns the pseudo-legal destinations of the piece on sq.
func (g *Game) PseudoLegalDestinations(sq chess.Square) []chess.Square {
	return PseudoLegalDestinations(&g.pos, sq)
}

// IsInCheck reports whether the side to move is in check.
func (g *Game) IsInCheck() bool {
	return IsInCheck(&g.pos)
}

// IsCheckmate reports whether the side to move is checkmated.
func (g *Game) IsCheckmate() bool {
	return IsCheckmate(&g.pos)
}

// IsStalemate reports whether the side to move is stalemated.
func (g *Game) IsStalemate() bool {
	return IsStalemate(&g.pos)
}

// IsInsufficientMaterial reports whether neither side can mate.
func (g *Game) IsInsufficientMaterial() bool {
	return HasInsufficientMaterial(&g.pos.Board)
}

// IsGameOver reports whether the game has ended.
func (g *Game) IsGameOver() bool {
	return IsGameOver(&g.pos)
}

// Result reports how the game ended, or chess.NoTermination.
func (g *Game) Result() chess.Termination {
	return Result(&g.pos)
}
