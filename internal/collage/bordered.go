package collage

import (
	"image"

	"github.com/ironsheep/imgtools/internal/imaging"
)

// BorderedOptions configures Bordered and Layout.
type BorderedOptions struct {
	CanvasWidth  int
	CanvasHeight int

	// Margin is the distance from the canvas edges to the first row and
	// column, and the right-hand limit used for wrapping.
	Margin int

	// Gap separates neighbouring frames, horizontally and between rows.
	Gap int

	// Padding is the frame width added on every side of a thumbnail.
	Padding int

	// ThumbnailSize bounds both dimensions of every image before framing.
	ThumbnailSize int

	FrameColor imaging.Color
	Top        imaging.Color
	Bottom     imaging.Color
}

// DefaultBorderedOptions returns a 1200x800 canvas with 300px thumbnails in
// 5px white frames.
func DefaultBorderedOptions() BorderedOptions {
	return BorderedOptions{
		CanvasWidth:   1200,
		CanvasHeight:  800,
		Margin:        50,
		Gap:           20,
		Padding:       5,
		ThumbnailSize: 300,
		FrameColor:    imaging.White,
		Top:           imaging.RGB(240, 240, 255),
		Bottom:        imaging.RGB(200, 200, 255),
	}
}

// Layout computes the top-left position of each framed item of the given sizes.
//
// The cursor starts at (Margin, Margin). Before placing an item of width w, if
// x+w would exceed CanvasWidth-Margin the cursor moves to the start of a new
// row: x returns to Margin and y advances by the tallest item of the current
// row plus Gap. After placing, x advances by w+Gap.
//
// The rule is applied even to the first item of a row, so an item wider than
// the usable width starts a fresh row and overflows the right margin.
func Layout(sizes []image.Point, opts BorderedOptions) []image.Point {
	positions := make([]image.Point, len(sizes))

	x, y := opts.Margin, opts.Margin
	rowHeight := 0
	limit := opts.CanvasWidth - opts.Margin

	for i, size := range sizes {
		if x+size.X > limit {
			x = opts.Margin
			y += rowHeight + opts.Gap
			rowHeight = 0
		}
		positions[i] = image.Pt(x, y)
		x += size.X + opts.Gap
		rowHeight = max(rowHeight, size.Y)
	}
	return positions
}

// Frame surrounds img with a border of the given width and color.
func Frame(img image.Image, padding int, c imaging.Color) *image.NRGBA {
	size := img.Bounds().Size()
	frame := imaging.NewCanvas(size.X+2*padding, size.Y+2*padding, c)
	return imaging.Paste(frame, img, image.Pt(padding, padding))
}

// Bordered lays out images as framed thumbnails over a vertical gradient.
//
// Each image is thumbnailed to ThumbnailSize, framed with Padding and placed at
// the position Layout computes from the framed sizes. Frames falling partly or
// wholly outside the canvas are clipped. The result is opaque.
func Bordered(images []image.Image, opts BorderedOptions) *image.NRGBA {
	canvas := imaging.VerticalBlend(opts.CanvasWidth, opts.CanvasHeight, opts.Top, opts.Bottom)

	frames := make([]*image.NRGBA, len(images))
	sizes := make([]image.Point, len(images))
	for i, img := range images {
		thumb := imaging.Thumbnail(img, opts.ThumbnailSize, opts.ThumbnailSize)
		frames[i] = Frame(thumb, opts.Padding, opts.FrameColor)
		sizes[i] = frames[i].Bounds().Size()
	}

	for i, at := range Layout(sizes, opts) {
		canvas = imaging.Paste(canvas, frames[i], at)
	}

	return imaging.Flatten(canvas, opts.Top)
}
