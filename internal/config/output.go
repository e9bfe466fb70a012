package config

import (
	"fmt"

	"github.com/lgbarn/chessrules-go/internal/errors"
)

// Bounds on the size of a rendered board image, in pixels.
const (
	MinImageSize     = 64
	MaxImageSize     = 4096
	DefaultImageSize = 480
)

// OutputConfig holds settings related to output formatting.
type OutputConfig struct {
	// JSONFormat enables JSON output instead of text
	JSONFormat bool

	// ShowBoard prints a diagram of each final position
	ShowBoard bool

	// PNGFile receives an image of the last game's final position
	PNGFile string

	// ImageSize is the width and height of the PNG image
	ImageSize int

	// OutputFilename is the file results are written to; empty means stdout
	OutputFilename string
}

// NewOutputConfig creates an OutputConfig with default values.
func NewOutputConfig() *OutputConfig {
	return &OutputConfig{
		ImageSize: DefaultImageSize,
	}
}

// Validate checks that the output configuration is usable.
func (o *OutputConfig) Validate() error {
	if o.ImageSize < MinImageSize || o.ImageSize > MaxImageSize {
		return fmt.Errorf("image size (%d) outside %d..%d: %w",
			o.ImageSize, MinImageSize, MaxImageSize, errors.ErrInvalidConfig)
	}
	return nil
}
