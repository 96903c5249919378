// Package generative synthesizes abstract raster art.
//
// A composition is built in four layers: a trigonometric vertical gradient,
// semi-transparent circles, opaque line segments and semi-transparent
// triangles. Every random choice is drawn from the *rand.Rand the Composer was
// created with, so a fixed seed reproduces the same image.
package generative

import (
	"fmt"
	"image"
	"math"
	"math/rand/v2"

	"github.com/fogleman/gg"

	"github.com/ironsheep/imgtools/internal/imaging"
)

// Range is an inclusive integer interval.
type Range struct {
	Min int `toml:"min" yaml:"min"`
	Max int `toml:"max" yaml:"max"`
}

// Options controls the number and appearance of shapes.
type Options struct {
	Circles   int
	Lines     int
	Triangles int

	Radius      Range // circle radius
	CircleColor Range // each RGB channel of a circle
	CircleAlpha Range
	LineColor   Range // each RGB channel of a line
	LineWidth   Range
	TriColor    Range // each RGB channel of a triangle
	TriAlpha    Range
}

// DefaultOptions returns 30 circles, 15 lines and 10 triangles.
func DefaultOptions() Options {
	return Options{
		Circles:     30,
		Lines:       15,
		Triangles:   10,
		Radius:      Range{20, 150},
		CircleColor: Range{100, 255},
		CircleAlpha: Range{50, 150},
		LineColor:   Range{200, 255},
		LineWidth:   Range{1, 4},
		TriColor:    Range{0, 255},
		TriAlpha:    Range{100, 200},
	}
}

// Composer draws compositions from an explicit random source.
type Composer struct {
	rng  *rand.Rand
	opts Options
}

// New returns a Composer drawing all randomness from rng.
func New(rng *rand.Rand, opts Options) *Composer {
	return &Composer{rng: rng, opts: opts}
}

// NewSeeded returns a Composer whose output depends only on seed and opts.
func NewSeeded(seed uint64, opts Options) *Composer {
	return New(rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15)), opts)
}

// Intn returns a uniform integer in r, inclusive at both ends.
func (c *Composer) Intn(r Range) int {
	if r.Max <= r.Min {
		return r.Min
	}
	return r.Min + c.rng.IntN(r.Max-r.Min+1)
}

// Compose renders a width x height composition. The result is opaque.
func (c *Composer) Compose(width, height int) (*image.NRGBA, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}

	canvas := Background(width, height)

	for i := 0; i < c.opts.Circles; i++ {
		cx := c.Intn(Range{0, width})
		cy := c.Intn(Range{0, height})
		radius := c.Intn(c.opts.Radius)
		if radius <= 0 {
			continue
		}
		circle := c.circle(radius, imaging.Color{
			R: c.channel(c.opts.CircleColor),
			G: c.channel(c.opts.CircleColor),
			B: c.channel(c.opts.CircleColor),
			A: c.channel(c.opts.CircleAlpha),
		})
		canvas = imaging.Composite(canvas, circle, image.Pt(cx-radius, cy-radius))
	}

	canvas = c.lines(canvas)

	for i := 0; i < c.opts.Triangles; i++ {
		var pts [3]image.Point
		for k := range pts {
			pts[k] = image.Pt(c.Intn(Range{0, width}), c.Intn(Range{0, height}))
		}
		col := imaging.Color{
			R: c.channel(c.opts.TriColor),
			G: c.channel(c.opts.TriColor),
			B: c.channel(c.opts.TriColor),
			A: c.channel(c.opts.TriAlpha),
		}
		canvas = imaging.Composite(canvas, triangle(width, height, pts, col), image.Point{})
	}

	return imaging.Flatten(canvas, imaging.Black), nil
}

// Background renders the base layer: every row y gets
//
//	r = 50 + 50*sin(t*pi)
//	g = 50 + 50*sin(t*2pi)
//	b = 150 + 50*cos(t*pi)
//
// with t = y/height, truncated to integers.
func Background(width, height int) *image.NRGBA {
	return imaging.RowGradient(width, height, func(y int) imaging.Color {
		t := float64(y) / float64(height)
		return imaging.RGB(
			uint8(50+50*math.Sin(t*math.Pi)),
			uint8(50+50*math.Sin(t*math.Pi*2)),
			uint8(150+50*math.Cos(t*math.Pi)),
		)
	})
}

func (c *Composer) channel(r Range) uint8 {
	return uint8(max(0, min(255, c.Intn(r))))
}

// circle draws a filled disc on its own transparent 2r x 2r buffer.
func (c *Composer) circle(radius int, col imaging.Color) image.Image {
	dc := gg.NewContext(radius*2, radius*2)
	dc.SetColor(col)
	r := float64(radius)
	dc.DrawCircle(r, r, r)
	dc.Fill()
	return dc.Image()
}

// lines strokes the opaque segments directly onto the canvas.
func (c *Composer) lines(canvas *image.NRGBA) *image.NRGBA {
	if c.opts.Lines <= 0 {
		return canvas
	}
	b := canvas.Bounds()
	dc := gg.NewContextForImage(canvas)
	dc.SetLineCapButt()
	for i := 0; i < c.opts.Lines; i++ {
		x1, y1 := c.Intn(Range{0, b.Dx()}), c.Intn(Range{0, b.Dy()})
		x2, y2 := c.Intn(Range{0, b.Dx()}), c.Intn(Range{0, b.Dy()})
		dc.SetColor(imaging.RGB(
			c.channel(c.opts.LineColor),
			c.channel(c.opts.LineColor),
			c.channel(c.opts.LineColor),
		))
		dc.SetLineWidth(float64(c.Intn(c.opts.LineWidth)))
		dc.DrawLine(float64(x1), float64(y1), float64(x2), float64(y2))
		dc.Stroke()
	}
	return imaging.Clone(dc.Image())
}

// triangle fills a polygon on a transparent full-canvas buffer.
func triangle(width, height int, pts [3]image.Point, col imaging.Color) image.Image {
	dc := gg.NewContext(width, height)
	dc.SetColor(col)
	dc.MoveTo(float64(pts[0].X), float64(pts[0].Y))
	dc.LineTo(float64(pts[1].X), float64(pts[1].Y))
	dc.LineTo(float64(pts[2].X), float64(pts[2].Y))
	dc.ClosePath()
	dc.Fill()
	return dc.Image()
}
