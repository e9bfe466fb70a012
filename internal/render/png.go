package render

import (
	"fmt"
	"image"
	"image/png"
	"io"
	"strings"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"

	"github.com/lgbarn/chessrules-go/internal/chess"
)

// Image rasterises the board into a size x size RGBA image.
func Image(board *chess.Board, size int) (*image.RGBA, error) {
	if size < 1 {
		return nil, fmt.Errorf("image size %d must be positive", size)
	}
	icon, err := oksvg.ReadIconStream(strings.NewReader(SVG(board, size)))
	if err != nil {
		return nil, fmt.Errorf("parsing board SVG: %w", err)
	}
	icon.SetTarget(0, 0, float64(size), float64(size))

	rgba := image.NewRGBA(image.Rect(0, 0, size, size))
	scanner := rasterx.NewScannerGV(size, size, rgba, rgba.Bounds())
	raster := rasterx.NewDasher(size, size, scanner)
	icon.Draw(raster, 1.0)
	return rgba, nil
}

// WritePNG writes the board to w as a size x size PNG.
func WritePNG(w io.Writer, board *chess.Board, size int) error {
	rgba, err := Image(board, size)
	if err != nil {
		return err
	}
	return png.Encode(w, rgba)
}
