package collage

import (
	"errors"
	"image"
	"image/color"
	"testing"

	"github.com/ironsheep/imgtools/internal/imaging"
)

func solid(w, h int, c imaging.Color) image.Image {
	return imaging.NewCanvas(w, h, c)
}

func TestGrid_CanvasSize(t *testing.T) {
	tests := []struct {
		name         string
		sizes        []image.Point
		opts         GridOptions
		wantW, wantH int
	}{
		{
			name:  "uniform landscape",
			sizes: []image.Point{{800, 600}, {800, 600}, {800, 600}, {800, 600}},
			opts:  DefaultGridOptions(),
			wantW: 800, wantH: 600,
		},
		{
			name:  "cell from first image only",
			sizes: []image.Point{{100, 50}, {400, 400}, {400, 400}, {400, 400}},
			opts:  DefaultGridOptions(),
			wantW: 200, wantH: 100,
		},
		{
			name:  "extra images ignored",
			sizes: []image.Point{{40, 40}, {40, 40}, {40, 40}, {40, 40}, {40, 40}, {40, 40}},
			opts:  GridOptions{Rows: 1, Cols: 3, ThumbnailSize: 400, Background: imaging.White},
			wantW: 120, wantH: 40,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			images := make([]image.Image, len(tt.sizes))
			for i, s := range tt.sizes {
				images[i] = solid(s.X, s.Y, imaging.Black)
			}

			canvas, err := Grid(images, tt.opts)
			if err != nil {
				t.Fatalf("Grid failed: %v", err)
			}
			if b := canvas.Bounds(); b.Dx() != tt.wantW || b.Dy() != tt.wantH {
				t.Errorf("canvas: got %dx%d, want %dx%d", b.Dx(), b.Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestGrid_Placement(t *testing.T) {
	colors := []imaging.Color{
		imaging.RGB(255, 0, 0),
		imaging.RGB(0, 255, 0),
		imaging.RGB(0, 0, 255),
		imaging.RGB(255, 255, 0),
	}
	images := make([]image.Image, len(colors))
	for i, c := range colors {
		images[i] = solid(50, 30, c)
	}

	canvas, err := Grid(images, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}

	// index i*cols+j sits at (j*50, i*30)
	for i := 0; i < 2; i++ {
		for j := 0; j < 2; j++ {
			got, _ := imaging.SampleColor(canvas, j*50+25, i*30+15)
			if want := colors[i*2+j]; got != want {
				t.Errorf("cell (%d,%d): got %s, want %s", i, j, got, want)
			}
		}
	}
}

func TestGrid_SmallerImageShowsBackground(t *testing.T) {
	images := []image.Image{
		solid(100, 100, imaging.Black),
		solid(40, 40, imaging.Black),
		solid(100, 100, imaging.Black),
		solid(100, 100, imaging.Black),
	}

	canvas, err := Grid(images, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	if got, _ := imaging.SampleColor(canvas, 100+70, 70); got != imaging.White {
		t.Errorf("uncovered part of cell 1: got %s, want background", got)
	}
}

func TestGrid_Opaque(t *testing.T) {
	transparent := image.NewNRGBA(image.Rect(0, 0, 20, 20))
	transparent.SetNRGBA(5, 5, color.NRGBA{255, 0, 0, 255})
	images := []image.Image{transparent, transparent, transparent, transparent}

	canvas, err := Grid(images, DefaultGridOptions())
	if err != nil {
		t.Fatalf("Grid failed: %v", err)
	}
	for i := 3; i < len(canvas.Pix); i += 4 {
		if canvas.Pix[i] != 255 {
			t.Fatalf("pixel %d not opaque", i/4)
		}
	}
	if got, _ := imaging.SampleColor(canvas, 0, 0); got != imaging.White {
		t.Errorf("transparent area: got %s, want white", got)
	}
}

func TestGrid_InsufficientImages(t *testing.T) {
	images := []image.Image{solid(10, 10, imaging.White), solid(10, 10, imaging.White), solid(10, 10, imaging.White)}

	canvas, err := Grid(images, DefaultGridOptions())
	if canvas != nil {
		t.Error("Grid should not return a canvas")
	}
	if !errors.Is(err, ErrInsufficientImages) {
		t.Fatalf("error %v should match ErrInsufficientImages", err)
	}

	var ie *InsufficientImagesError
	if !errors.As(err, &ie) {
		t.Fatalf("error %v should be an InsufficientImagesError", err)
	}
	if ie.Have != 3 || ie.Need != 4 {
		t.Errorf("got have=%d need=%d, want 3 and 4", ie.Have, ie.Need)
	}
}

func TestGrid_InvalidOptions(t *testing.T) {
	images := []image.Image{solid(10, 10, imaging.White)}

	tests := []struct {
		name string
		opts GridOptions
	}{
		{"zero rows", GridOptions{Rows: 0, Cols: 1, ThumbnailSize: 10}},
		{"negative cols", GridOptions{Rows: 1, Cols: -1, ThumbnailSize: 10}},
		{"zero thumbnail", GridOptions{Rows: 1, Cols: 1, ThumbnailSize: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := Grid(images, tt.opts); err == nil {
				t.Error("Grid should fail")
			}
		})
	}
}
