package generative

import (
	"bytes"
	"math/rand/v2"
	"testing"

	"github.com/ironsheep/imgtools/internal/imaging"
)

func TestCompose_Deterministic(t *testing.T) {
	a, err := NewSeeded(42, DefaultOptions()).Compose(200, 150)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	b, err := NewSeeded(42, DefaultOptions()).Compose(200, 150)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("same seed should produce identical pixels")
	}

	c, err := NewSeeded(43, DefaultOptions()).Compose(200, 150)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("different seeds should produce different pixels")
	}
}

func TestCompose_SizeAndOpacity(t *testing.T) {
	img, err := NewSeeded(1, DefaultOptions()).Compose(321, 123)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if b := img.Bounds(); b.Dx() != 321 || b.Dy() != 123 {
		t.Fatalf("dimensions: got %dx%d, want 321x123", b.Dx(), b.Dy())
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
}

func TestCompose_InvalidSize(t *testing.T) {
	c := NewSeeded(1, DefaultOptions())
	for _, size := range [][2]int{{0, 10}, {10, 0}, {-1, -1}} {
		if _, err := c.Compose(size[0], size[1]); err == nil {
			t.Errorf("Compose(%d, %d) should fail", size[0], size[1])
		}
	}
}

func TestCompose_NoShapesIsBackground(t *testing.T) {
	opts := DefaultOptions()
	opts.Circles, opts.Lines, opts.Triangles = 0, 0, 0

	img, err := NewSeeded(9, opts).Compose(40, 60)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if !bytes.Equal(img.Pix, Background(40, 60).Pix) {
		t.Error("composition without shapes should equal the background")
	}
}

func TestCompose_ShapesChangeBackground(t *testing.T) {
	img, err := NewSeeded(5, DefaultOptions()).Compose(300, 300)
	if err != nil {
		t.Fatalf("Compose failed: %v", err)
	}
	if bytes.Equal(img.Pix, Background(300, 300).Pix) {
		t.Error("shapes should alter the background")
	}
}

func TestBackground(t *testing.T) {
	bg := Background(10, 100)

	tests := []struct {
		y    int
		want imaging.Color
	}{
		{0, imaging.RGB(50, 50, 200)},
		{50, imaging.RGB(100, 50, 150)}, // sin(pi/2)=1, sin(pi)~0, cos(pi/2)~0
	}

	for _, tt := range tests {
		got, _ := imaging.SampleColor(bg, 3, tt.y)
		if got != tt.want {
			t.Errorf("row %d: got %s, want %s", tt.y, got, tt.want)
		}
	}
}

func TestIntn(t *testing.T) {
	c := New(rand.New(rand.NewPCG(1, 2)), DefaultOptions())
	r := Range{Min: 3, Max: 6}

	seen := map[int]bool{}
	for i := 0; i < 1000; i++ {
		v := c.Intn(r)
		if v < r.Min || v > r.Max {
			t.Fatalf("Intn(%v) = %d out of range", r, v)
		}
		seen[v] = true
	}
	if len(seen) != 4 {
		t.Errorf("Intn should reach both ends of the range, saw %v", seen)
	}

	if got := c.Intn(Range{Min: 7, Max: 7}); got != 7 {
		t.Errorf("degenerate range: got %d, want 7", got)
	}
}
