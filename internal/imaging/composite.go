package imaging

import (
	"image"

	"github.com/disintegration/imaging"
)

// NewCanvas returns a width x height image filled with c.
func NewCanvas(width, height int, c Color) *image.NRGBA {
	return imaging.New(width, height, c.NRGBA())
}

// Composite blends src over dst with its top-left corner at the given point,
// using straight alpha: out = src*a + dst*(1-a) per channel, where a is the
// source pixel's alpha. Parts of src outside dst are clipped. A fully
// transparent source leaves dst unchanged; a fully opaque one replaces it.
//
// dst is not modified; the result is a new image.
func Composite(dst, src image.Image, at image.Point) *image.NRGBA {
	return imaging.Overlay(dst, src, at, 1.0)
}

// Paste copies src onto dst at the given point, replacing the covered pixels
// including their alpha. dst is not modified; the result is a new image.
func Paste(dst, src image.Image, at image.Point) *image.NRGBA {
	return imaging.Paste(dst, src, at)
}

// Flatten composites img over an opaque bg, yielding an image whose every
// pixel is fully opaque.
func Flatten(img image.Image, bg Color) *image.NRGBA {
	bg.A = 255
	b := img.Bounds()
	return Composite(NewCanvas(b.Dx(), b.Dy(), bg), img, image.Point{})
}
