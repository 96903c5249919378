package imaging

import (
	"fmt"
	"image"

	"github.com/disintegration/imaging"
)

// Crop extracts a rectangular region from an image
func Crop(img image.Image, r image.Rectangle) (*image.NRGBA, error) {
	bounds := img.Bounds()

	// Validate coordinates
	if !r.In(bounds) {
		return nil, fmt.Errorf("crop region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
			r.Min.X, r.Min.Y, r.Max.X, r.Max.Y, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
	}
	if r.Min.X >= r.Max.X || r.Min.Y >= r.Max.Y {
		return nil, fmt.Errorf("invalid crop region: x1 must be < x2, y1 must be < y2")
	}

	return imaging.Crop(img, r), nil
}

// CenterCrop extracts a side x side square from the middle of img.
// The top-left corner is ((w-side)/2, (h-side)/2), rounded down.
func CenterCrop(img image.Image, side int) (*image.NRGBA, error) {
	if side <= 0 {
		return nil, fmt.Errorf("invalid crop size %d: must be positive", side)
	}
	b := img.Bounds()
	left := b.Min.X + (b.Dx()-side)/2
	top := b.Min.Y + (b.Dy()-side)/2
	return Crop(img, image.Rect(left, top, left+side, top+side))
}

// CenterSquare crops the centered square whose side is the shorter image
// dimension divided by divisor.
func CenterSquare(img image.Image, divisor int) (*image.NRGBA, error) {
	if divisor <= 0 {
		return nil, fmt.Errorf("invalid crop divisor %d: must be positive", divisor)
	}
	b := img.Bounds()
	side := min(b.Dx(), b.Dy()) / divisor
	return CenterCrop(img, side)
}
