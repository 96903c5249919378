package watermark

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/ironsheep/imgtools/internal/imaging"
)

// failingFont is a provider that is never available.
type failingFont string

func (f failingFont) Name() string { return string(f) }

func (f failingFont) Face(float64) (font.Face, error) {
	return nil, errors.New("unavailable")
}

func gray(w, h int) *image.NRGBA {
	return imaging.NewCanvas(w, h, imaging.RGB(128, 128, 128))
}

func TestResolveFace_FallbackChain(t *testing.T) {
	tests := []struct {
		name      string
		providers []FaceProvider
		want      string
	}{
		{"no providers", nil, "basicfont 7x13"},
		{"all fail", []FaceProvider{failingFont("a"), failingFont("b")}, "basicfont 7x13"},
		{"missing file", []FaceProvider{FileFont("/nonexistent/font.ttf")}, "basicfont 7x13"},
		{"bad data", []FaceProvider{EmbeddedFont("junk", []byte("not a font"))}, "basicfont 7x13"},
		{"first available wins", []FaceProvider{failingFont("a"), EmbeddedFont("go", goregular.TTF), failingFont("b")}, "go"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			face, name := ResolveFace(20, tt.providers...)
			if face == nil {
				t.Fatal("ResolveFace returned nil face")
			}
			if name != tt.want {
				t.Errorf("provider: got %s, want %s", name, tt.want)
			}
		})
	}
}

func TestResolveFace_DoesNotModifyProviders(t *testing.T) {
	providers := make([]FaceProvider, 1, 4)
	providers[0] = failingFont("a")

	ResolveFace(12, providers...)
	if got := providers[:2][1]; got != nil {
		t.Errorf("ResolveFace wrote past the caller's slice: %v", got)
	}
}

func TestFontChain_FallsBackToGoRegular(t *testing.T) {
	chain := FontChain("no-such-font-imgtools.ttf")
	if len(chain) != 2 {
		t.Fatalf("chain length: got %d, want 2", len(chain))
	}
	if chain[len(chain)-1].Name() != "Go Regular" {
		t.Errorf("last provider: got %s, want Go Regular", chain[len(chain)-1].Name())
	}

	face, name := ResolveFace(20, chain...)
	if face == nil || name != "Go Regular" {
		t.Errorf("got face %v from %s, want Go Regular", face, name)
	}
}

func TestDefault_UsesScalableFace(t *testing.T) {
	r := Default("Hello").Resolve()
	if r.FaceName() == BasicFont().Name() {
		t.Error("default watermark should never need the bitmap face")
	}
}

func TestEmbeddedFont_Size(t *testing.T) {
	small, err := EmbeddedFont("go", goregular.TTF).Face(10)
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}
	large, err := EmbeddedFont("go", goregular.TTF).Face(40)
	if err != nil {
		t.Fatalf("Face failed: %v", err)
	}
	if Measure(large, "Hello").Dx() <= Measure(small, "Hello").Dx() {
		t.Error("larger size should measure wider")
	}
}

func TestAnchor(t *testing.T) {
	tests := []struct {
		name   string
		size   image.Point
		ink    image.Rectangle
		margin int
		want   image.Point
	}{
		{"baseline ink", image.Pt(200, 100), image.Rect(0, -10, 50, 3), 10, image.Pt(140, 87)},
		{"offset ink", image.Pt(200, 100), image.Rect(2, -10, 52, 0), 10, image.Pt(138, 90)},
		{"no margin", image.Pt(100, 50), image.Rect(0, -13, 20, 0), 0, image.Pt(80, 50)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Anchor(tt.size, tt.ink, tt.margin)
			if got != tt.want {
				t.Errorf("got %v, want %v", got, tt.want)
			}
			// Bottom-right of the ink lands on the margin corner.
			br := got.Add(tt.ink.Max)
			if br != tt.size.Sub(image.Pt(tt.margin, tt.margin)) {
				t.Errorf("ink bottom-right at %v, want %v", br, tt.size.Sub(image.Pt(tt.margin, tt.margin)))
			}
		})
	}
}

func TestApply_BottomRight(t *testing.T) {
	wm := Default("Hello")
	wm.Providers = nil // deterministic built-in face

	src := gray(200, 100)
	r := wm.Resolve()
	out := r.Apply(src)

	ink := r.Ink()
	// Outline passes reach one pixel past the ink box.
	box := image.Rect(200-10-ink.Dx()-1, 100-10-ink.Dy()-1, 200-10+1, 100-10+1)

	var sawFill, sawOutline bool
	for y := 0; y < 100; y++ {
		for x := 0; x < 200; x++ {
			before, _ := imaging.SampleColor(src, x, y)
			after, _ := imaging.SampleColor(out, x, y)
			if before == after {
				continue
			}
			if !image.Pt(x, y).In(box) {
				t.Fatalf("pixel (%d,%d) changed outside the watermark box %v", x, y, box)
			}
			sawFill = sawFill || after == imaging.White
			sawOutline = sawOutline || after == imaging.Black
		}
	}
	if !sawFill || !sawOutline {
		t.Errorf("expected white fill and black outline pixels, got fill=%v outline=%v", sawFill, sawOutline)
	}
}

func TestApply_EmptyText(t *testing.T) {
	src := gray(50, 50)
	out := Default("").Apply(src)

	if out == src {
		t.Fatal("Apply should return a copy")
	}
	for i := range src.Pix {
		if src.Pix[i] != out.Pix[i] {
			t.Fatal("empty text should leave the image unchanged")
		}
	}
}

func TestApply_DoesNotModifySource(t *testing.T) {
	src := gray(120, 60)
	wm := Default("Hi")
	wm.Providers = nil

	wm.Apply(src)
	for i := 0; i < len(src.Pix); i += 4 {
		if src.Pix[i] != 128 {
			t.Fatal("Apply modified the source image")
		}
	}
}

func TestApply_SameFaceMeasuresAndDraws(t *testing.T) {
	wm := Default("Watermark")
	wm.Size = 24
	wm.Providers = []FaceProvider{EmbeddedFont("go", goregular.TTF)}

	r := wm.Resolve()
	if r.FaceName() != "go" {
		t.Fatalf("face: got %s, want go", r.FaceName())
	}

	face, _ := EmbeddedFont("go", goregular.TTF).Face(24)
	if r.Ink() != Measure(face, "Watermark") {
		t.Errorf("ink %v should match a measurement with the selected face %v", r.Ink(), Measure(face, "Watermark"))
	}

	out := r.Apply(gray(300, 100))
	// Rightmost changed column must sit at or just inside the margin.
	right := -1
	for x := 299; x >= 0 && right < 0; x-- {
		for y := 0; y < 100; y++ {
			if c := out.NRGBAAt(x, y); c != (color.NRGBA{128, 128, 128, 255}) {
				right = x
				break
			}
		}
	}
	if right < 300-10-3 || right > 300-10 {
		t.Errorf("rightmost ink column %d, want near %d", right, 300-10)
	}
}
