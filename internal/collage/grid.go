package collage

import (
	"errors"
	"fmt"
	"image"

	"github.com/ironsheep/imgtools/internal/imaging"
)

// ErrInsufficientImages is returned when a grid needs more images than given.
var ErrInsufficientImages = errors.New("insufficient images")

// InsufficientImagesError reports how many images a grid had and needed.
// It matches ErrInsufficientImages with errors.Is.
type InsufficientImagesError struct {
	Have int
	Need int
}

func (e *InsufficientImagesError) Error() string {
	return fmt.Sprintf("insufficient images: %d of %d", e.Have, e.Need)
}

func (e *InsufficientImagesError) Unwrap() error {
	return ErrInsufficientImages
}

// GridOptions configures Grid.
type GridOptions struct {
	Rows int
	Cols int

	// ThumbnailSize bounds both dimensions of every image before tiling.
	ThumbnailSize int

	// Background fills cells not covered by a smaller image.
	Background imaging.Color
}

// DefaultGridOptions returns a 2x2 grid of 400px thumbnails on white.
func DefaultGridOptions() GridOptions {
	return GridOptions{
		Rows:          2,
		Cols:          2,
		ThumbnailSize: 400,
		Background:    imaging.White,
	}
}

// Grid tiles images into a Rows x Cols collage.
//
// Every image is thumbnailed to fit within ThumbnailSize on both axes. The cell
// size is the size of the first thumbnail, for all cells; the image at index
// i*Cols+j is pasted at (j*cellWidth, i*cellHeight), and images beyond
// Rows*Cols are ignored. A thumbnail larger than its cell spills into the
// next cells (which are pasted later, over it) or off the canvas edge; one
// smaller leaves Background showing.
//
// The canvas is exactly (Cols*cellWidth, Rows*cellHeight) and opaque.
func Grid(images []image.Image, opts GridOptions) (*image.NRGBA, error) {
	if opts.Rows <= 0 || opts.Cols <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d: rows and cols must be positive", opts.Rows, opts.Cols)
	}
	if opts.ThumbnailSize <= 0 {
		return nil, fmt.Errorf("invalid thumbnail size %d", opts.ThumbnailSize)
	}

	need := opts.Rows * opts.Cols
	if len(images) < need {
		return nil, &InsufficientImagesError{Have: len(images), Need: need}
	}

	thumbs := make([]*image.NRGBA, need)
	for i := range thumbs {
		thumbs[i] = imaging.Thumbnail(images[i], opts.ThumbnailSize, opts.ThumbnailSize)
	}

	cell := thumbs[0].Bounds().Size()
	canvas := imaging.NewCanvas(opts.Cols*cell.X, opts.Rows*cell.Y, opts.Background)

	for i := 0; i < opts.Rows; i++ {
		for j := 0; j < opts.Cols; j++ {
			at := image.Pt(j*cell.X, i*cell.Y)
			canvas = imaging.Paste(canvas, thumbs[i*opts.Cols+j], at)
		}
	}

	return imaging.Flatten(canvas, opts.Background), nil
}
