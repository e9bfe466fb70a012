package config

// DuplicateConfig holds settings for duplicate game detection.
type DuplicateConfig struct {
	// Suppress leaves games that repeat an earlier one out of the output
	Suppress bool

	// ExactMatch only treats games with identical move sequences as
	// duplicates; otherwise reaching the same final position in the same
	// number of plies is enough
	ExactMatch bool
}

// NewDuplicateConfig creates a DuplicateConfig with default values.
func NewDuplicateConfig() *DuplicateConfig {
	return &DuplicateConfig{}
}
