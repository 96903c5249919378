package imaging

import (
	"fmt"
	"image"
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an 8-bit straight-alpha color.
//
// The alpha component represents opacity:
//   - 0 = fully transparent
//   - 255 = fully opaque
//
// Color implements color.Color.
type Color struct {
	R uint8 `json:"r"` // Red component (0-255)
	G uint8 `json:"g"` // Green component (0-255)
	B uint8 `json:"b"` // Blue component (0-255)
	A uint8 `json:"a"` // Alpha/opacity component (0-255)
}

// Common colors.
var (
	White = RGB(255, 255, 255)
	Black = RGB(0, 0, 0)
)

// RGB returns an opaque Color.
func RGB(r, g, b uint8) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA implements color.Color, returning alpha-premultiplied 16-bit values.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

// NRGBA converts c to the standard library's straight-alpha color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Hex formats c as "#RRGGBB", or "#RRGGBBAA" when c is not opaque.
func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02X%02X%02X", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// String implements fmt.Stringer.
func (c Color) String() string {
	return c.Hex()
}

// ParseColor parses a hex color string like "#FF0000" or "#FF000080".
// The leading '#' is optional.
func ParseColor(hex string) (Color, error) {
	hex = strings.TrimPrefix(strings.TrimSpace(hex), "#")
	if len(hex) == 0 {
		return Color{}, fmt.Errorf("empty color string")
	}

	var alpha uint8 = 255
	switch len(hex) {
	case 6:
	case 8:
		a, err := strconv.ParseUint(hex[6:], 16, 8)
		if err != nil {
			return Color{}, fmt.Errorf("invalid alpha in color %q: %w", hex, err)
		}
		alpha = uint8(a)
		hex = hex[:6]
	default:
		return Color{}, fmt.Errorf("invalid hex color length")
	}

	c, err := colorful.Hex("#" + hex)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", hex, err)
	}
	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: alpha}, nil
}

// SampleColor extracts the straight-alpha color at a pixel coordinate.
//
// Coordinates are 0-based with origin at the image's top-left corner. Values
// from 16-bit images are scaled down to 8 bits.
func SampleColor(img image.Image, x, y int) (Color, error) {
	bounds := img.Bounds()
	x += bounds.Min.X
	y += bounds.Min.Y
	if x < bounds.Min.X || x >= bounds.Max.X || y < bounds.Min.Y || y >= bounds.Max.Y {
		return Color{}, fmt.Errorf("coordinates (%d,%d) outside image bounds", x-bounds.Min.X, y-bounds.Min.Y)
	}

	c := color.NRGBAModel.Convert(img.At(x, y)).(color.NRGBA)
	return Color{R: c.R, G: c.G, B: c.B, A: c.A}, nil
}

// blend linearly interpolates from a to b in RGB space; t is clamped to [0,1].
// Alpha is taken from a.
func blend(a, b Color, t float64) Color {
	t = max(0, min(1, t))
	ca := colorful.Color{R: float64(a.R) / 255, G: float64(a.G) / 255, B: float64(a.B) / 255}
	cb := colorful.Color{R: float64(b.R) / 255, G: float64(b.G) / 255, B: float64(b.B) / 255}
	r, g, bl := ca.BlendRgb(cb, t).RGB255()
	return Color{R: r, G: g, B: bl, A: a.A}
}
