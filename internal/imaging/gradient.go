package imaging

import (
	"image"
	"math"
)

// LinearGradient renders a width x height image blending from start at the
// top-left corner to end at the bottom-right corner.
//
// The blend weight for pixel (x, y) is the mean of its normalized horizontal
// and vertical positions:
//
//	px = x/(W-1)  (0 when W == 1)
//	py = y/(H-1)  (0 when H == 1)
//	p  = (px + py) / 2
//
// and every RGB channel is interpolated as start + (end-start)*p, rounded and
// clamped to [0, 255]. The output is opaque. Pixels are written straight into
// the Pix buffer.
func LinearGradient(width, height int, start, end Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))

	for y := 0; y < height; y++ {
		py := 0.0
		if height > 1 {
			py = float64(y) / float64(height-1)
		}
		row := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for x := 0; x < width; x++ {
			px := 0.0
			if width > 1 {
				px = float64(x) / float64(width-1)
			}
			p := (px + py) / 2

			i := x * 4
			row[i+0] = lerpChannel(start.R, end.R, p)
			row[i+1] = lerpChannel(start.G, end.G, p)
			row[i+2] = lerpChannel(start.B, end.B, p)
			row[i+3] = 255
		}
	}
	return img
}

// VerticalBlend renders a two-tone background that blends from top at row 0
// towards bottom, with weight y/height on row y.
func VerticalBlend(width, height int, top, bottom Color) *image.NRGBA {
	return RowGradient(width, height, func(y int) Color {
		return blend(top, bottom, float64(y)/float64(height))
	})
}

// RowGradient renders an image whose every row is filled with the color
// returned by row for that row index.
func RowGradient(width, height int, row func(y int) Color) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		c := row(y)
		line := img.Pix[y*img.Stride : y*img.Stride+width*4]
		for i := 0; i < len(line); i += 4 {
			line[i+0] = c.R
			line[i+1] = c.G
			line[i+2] = c.B
			line[i+3] = c.A
		}
	}
	return img
}

func lerpChannel(from, to uint8, p float64) uint8 {
	v := float64(from) + (float64(to)-float64(from))*p
	return uint8(clamp(int(math.Round(v)), 0, 255))
}

// clamp constrains an integer value to the range [min, max].
func clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
