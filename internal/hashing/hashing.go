// Package hashing provides duplicate detection for chess games.
package hashing

import (
	"github.com/lgbarn/chessrules-go/internal/chess"
	"github.com/lgbarn/chessrules-go/internal/engine"
)

// DuplicateDetector tracks the games seen so far in a run.
type DuplicateDetector struct {
	// hashTable maps final position hashes to the games that reached them
	hashTable map[uint64][]GameSignature
	// useExactMatch also requires the same move sequence
	useExactMatch  bool
	duplicateCount int
}

// GameSignature stores identifying information about a game.
type GameSignature struct {
	// Hash is the Zobrist hash of the final position
	Hash uint64
	// PlyCount is the number of half-moves in the game
	PlyCount int
	// MoveHash hashes the move sequence
	MoveHash uint64
}

// NewDuplicateDetector creates a new duplicate detector. Without
// exactMatch, two games are duplicates when they reach the same final
// position in the same number of plies.
func NewDuplicateDetector(exactMatch bool) *DuplicateDetector {
	return &DuplicateDetector{
		hashTable:     make(map[uint64][]GameSignature),
		useExactMatch: exactMatch,
	}
}

// Signature computes the signature of a finished record.
func Signature(rec *chess.GameRecord) (GameSignature, error) {
	pos, err := engine.NewPositionFromFEN(rec.FinalFEN)
	if err != nil {
		return GameSignature{}, err
	}
	return GameSignature{
		Hash:     GenerateZobristHash(pos),
		PlyCount: rec.Plies(),
		MoveHash: MoveSequenceHash(rec.Moves),
	}, nil
}

// CheckAndAdd checks if a game is a duplicate and adds it to the hash table.
// Returns true if the game is a duplicate.
func (d *DuplicateDetector) CheckAndAdd(rec *chess.GameRecord) (bool, error) {
	sig, err := Signature(rec)
	if err != nil {
		return false, err
	}

	for _, existing := range d.hashTable[sig.Hash] {
		if d.signaturesMatch(sig, existing) {
			d.duplicateCount++
			return true, nil
		}
	}

	d.hashTable[sig.Hash] = append(d.hashTable[sig.Hash], sig)
	return false, nil
}

// signaturesMatch checks if two game signatures match.
func (d *DuplicateDetector) signaturesMatch(a, b GameSignature) bool {
	if a.Hash != b.Hash || a.PlyCount != b.PlyCount {
		return false
	}
	if d.useExactMatch && a.MoveHash != b.MoveHash {
		return false
	}
	return true
}

// DuplicateCount returns the number of duplicates detected.
func (d *DuplicateDetector) DuplicateCount() int {
	return d.duplicateCount
}

// UniqueCount returns the number of unique games.
func (d *DuplicateDetector) UniqueCount() int {
	count := 0
	for _, sigs := range d.hashTable {
		count += len(sigs)
	}
	return count
}

// Reset clears the hash table.
func (d *DuplicateDetector) Reset() {
	d.hashTable = make(map[uint64][]GameSignature)
	d.duplicateCount = 0
}
