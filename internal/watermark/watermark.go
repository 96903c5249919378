// Package watermark burns a line of text into the bottom-right corner of an
// image.
//
// The text is drawn four times in the outline color at the diagonal one-pixel
// offsets and once more in the fill color at the true position, which gives a
// readable pseudo-outline on any background. The font comes from an ordered
// chain of providers ending in a built-in bitmap face, so applying a watermark
// never fails for lack of fonts.
package watermark

import (
	"image"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"

	"github.com/ironsheep/imgtools/internal/imaging"
)

// outlineOffsets are the diagonal positions of the outline passes.
var outlineOffsets = []image.Point{{-1, -1}, {1, -1}, {-1, 1}, {1, 1}}

// Watermark describes the text and how to render it.
type Watermark struct {
	Text    string
	Size    float64 // font size in pixels
	Margin  int     // distance of the text's ink box from the right and bottom edges
	Fill    imaging.Color
	Outline imaging.Color

	// Providers are tried in order; the built-in face is appended implicitly.
	Providers []FaceProvider
}

// Default returns a white-on-black 20px watermark with a 10px margin that
// looks for Arial, then DejaVu Sans, then the embedded Go Regular.
func Default(text string) Watermark {
	return Watermark{
		Text:      text,
		Size:      20,
		Margin:    10,
		Fill:      imaging.White,
		Outline:   imaging.Black,
		Providers: FontChain("arial.ttf", "DejaVuSans.ttf"),
	}
}

// Renderer is a Watermark with its face resolved, reusable across images.
type Renderer struct {
	wm       Watermark
	face     font.Face
	faceName string
	ink      image.Rectangle
}

// Resolve selects the font face once. The same face is used to measure and to
// draw the text.
func (w Watermark) Resolve() *Renderer {
	face, name := ResolveFace(w.Size, w.Providers...)
	return &Renderer{
		wm:       w,
		face:     face,
		faceName: name,
		ink:      Measure(face, w.Text),
	}
}

// FaceName reports which provider supplied the face.
func (r *Renderer) FaceName() string {
	return r.faceName
}

// Ink returns the text's ink box relative to the drawing origin (the dot on
// the baseline).
func (r *Renderer) Ink() image.Rectangle {
	return r.ink
}

// Apply returns a copy of img with the watermark drawn on it. Empty text
// yields an unmodified copy.
func (r *Renderer) Apply(img image.Image) *image.NRGBA {
	dst := imaging.Clone(img)
	if r.wm.Text == "" {
		return dst
	}

	dot := Anchor(dst.Bounds().Size(), r.ink, r.wm.Margin)
	for _, off := range outlineOffsets {
		r.draw(dst, dot.Add(off), r.wm.Outline)
	}
	r.draw(dst, dot, r.wm.Fill)
	return dst
}

func (r *Renderer) draw(dst draw.Image, dot image.Point, c imaging.Color) {
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(c),
		Face: r.face,
		Dot:  fixed.P(dot.X, dot.Y),
	}
	d.DrawString(r.wm.Text)
}

// Apply resolves the face and draws the watermark on a copy of img.
func (w Watermark) Apply(img image.Image) *image.NRGBA {
	return w.Resolve().Apply(img)
}

// Measure returns the ink bounds of text drawn with face from origin (0,0),
// rounded outwards to whole pixels.
func Measure(face font.Face, text string) image.Rectangle {
	b, _ := font.BoundString(face, text)
	return image.Rect(b.Min.X.Floor(), b.Min.Y.Floor(), b.Max.X.Ceil(), b.Max.Y.Ceil())
}

// Anchor returns the drawing origin that puts the bottom-right of the ink box
// at (width-margin, height-margin) of an image of the given size.
func Anchor(size image.Point, ink image.Rectangle, margin int) image.Point {
	left := size.X - ink.Dx() - margin
	top := size.Y - ink.Dy() - margin
	return image.Pt(left-ink.Min.X, top-ink.Min.Y)
}
