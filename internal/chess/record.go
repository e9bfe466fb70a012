package chess

// PGN result strings.
const (
	WhiteWins  = "1-0"
	BlackWins  = "0-1"
	Draw       = "1/2-1/2"
	Unfinished = "*"
)

// GameRecord is a game as played or replayed: where it started, the moves
// made and how it ended.
type GameRecord struct {
	// Number is the 1-based position of the game in its run or file.
	Number int

	// White and Black name the players: strategies in self-play, the PGN
	// tags when replaying.
	White string
	Black string

	StartFEN string
	Moves    []Move
	FinalFEN string

	// Termination is NoTermination when the game stopped for another
	// reason, such as a ply limit or the end of a record.
	Termination Termination

	// Result is the PGN result string.
	Result string
}

// Plies returns the number of half-moves in the record.
func (r *GameRecord) Plies() int {
	return len(r.Moves)
}

// Outcome returns the PGN result of a game that ended with t while
// toMove was to move.
func Outcome(t Termination, toMove Colour) string {
	switch t {
	case Checkmate:
		if toMove == White {
			return BlackWins
		}
		return WhiteWins
	case Stalemate, InsufficientMaterial:
		return Draw
	}
	return Unfinished
}
