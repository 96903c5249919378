package imaging

import (
	"image"
	"image/draw"

	"github.com/anthonynsimon/bild/effect"
	"github.com/disintegration/imaging"
)

// ResizeToWidth scales img to the given width, keeping the aspect ratio.
// The new height is h*width/w rounded down, and at least 1.
func ResizeToWidth(img image.Image, width int) *image.NRGBA {
	b := img.Bounds()
	height := b.Dy() * width / b.Dx()
	if height < 1 {
		height = 1
	}
	return imaging.Resize(img, width, height, imaging.Lanczos)
}

// ShrinkToWidth scales img down to maxWidth when it is wider, and otherwise
// returns an unscaled copy.
func ShrinkToWidth(img image.Image, maxWidth int) *image.NRGBA {
	if img.Bounds().Dx() > maxWidth {
		return ResizeToWidth(img, maxWidth)
	}
	return imaging.Clone(img)
}

// Thumbnail downscales img to fit within maxWidth x maxHeight, preserving the
// aspect ratio. Images that already fit are copied unchanged; nothing is ever
// upscaled.
func Thumbnail(img image.Image, maxWidth, maxHeight int) *image.NRGBA {
	return imaging.Fit(img, maxWidth, maxHeight, imaging.Lanczos)
}

// Rotate rotates img counter-clockwise by angle degrees. The output bounds grow
// to hold the whole rotated image; uncovered corners are filled with bg.
func Rotate(img image.Image, angle float64, bg Color) *image.NRGBA {
	return imaging.Rotate(img, angle, bg)
}

// Grayscale returns a single-channel luminance copy of img, weighting the
// channels 0.3 R, 0.6 G and 0.1 B.
func Grayscale(img image.Image) *image.Gray {
	lum := effect.Grayscale(img)
	gray := image.NewGray(lum.Bounds())
	draw.Draw(gray, gray.Bounds(), lum, lum.Bounds().Min, draw.Src)
	return gray
}

// Clone returns an NRGBA copy of img with bounds starting at (0,0).
func Clone(img image.Image) *image.NRGBA {
	return imaging.Clone(img)
}
