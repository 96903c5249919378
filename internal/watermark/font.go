package watermark

import (
	"fmt"
	"os"

	"github.com/flopp/go-findfont"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/gofont/goregular"
)

// FaceProvider is one candidate source of a font face.
type FaceProvider interface {
	// Name identifies the provider in logs.
	Name() string

	// Face returns a face at the given pixel size, or an error when the
	// underlying font is unavailable.
	Face(size float64) (font.Face, error)
}

// SystemFont looks name (e.g. "DejaVuSans.ttf") up in the platform's font
// directories.
func SystemFont(name string) FaceProvider {
	return systemFont{name: name}
}

type systemFont struct {
	name string
}

func (s systemFont) Name() string { return s.name }

func (s systemFont) Face(size float64) (font.Face, error) {
	path, err := findfont.Find(s.name)
	if err != nil {
		return nil, fmt.Errorf("font %s not found: %w", s.name, err)
	}
	return FileFont(path).Face(size)
}

// FileFont loads a TrueType font from an explicit path.
func FileFont(path string) FaceProvider {
	return fileFont{path: path}
}

type fileFont struct {
	path string
}

func (f fileFont) Name() string { return f.path }

func (f fileFont) Face(size float64) (font.Face, error) {
	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read font file: %w", err)
	}
	return parseFace(data, size)
}

// EmbeddedFont parses TrueType data already held in memory.
func EmbeddedFont(name string, data []byte) FaceProvider {
	return embeddedFont{name: name, data: data}
}

type embeddedFont struct {
	name string
	data []byte
}

func (e embeddedFont) Name() string { return e.name }

func (e embeddedFont) Face(size float64) (font.Face, error) {
	return parseFace(e.data, size)
}

func parseFace(data []byte, size float64) (font.Face, error) {
	f, err := truetype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{Size: size, DPI: 72}), nil
}

// BasicFont is the terminal provider: a built-in 7x13 bitmap face that
// ignores the requested size and never fails.
func BasicFont() FaceProvider {
	return basicFont{}
}

type basicFont struct{}

func (basicFont) Name() string { return "basicfont 7x13" }

func (basicFont) Face(float64) (font.Face, error) {
	return basicfont.Face7x13, nil
}

// ResolveFace tries providers in order and returns the first face that loads,
// with the name of the provider that supplied it. BasicFont is always tried
// last, so ResolveFace cannot fail.
func ResolveFace(size float64, providers ...FaceProvider) (font.Face, string) {
	for _, p := range providers {
		face, err := p.Face(size)
		if err == nil && face != nil {
			return face, p.Name()
		}
	}
	terminal := BasicFont()
	face, _ := terminal.Face(size)
	return face, terminal.Name()
}

// GoRegular is the Go Regular TrueType font compiled into the binary.
func GoRegular() FaceProvider {
	return EmbeddedFont("Go Regular", goregular.TTF)
}

// SystemFonts builds a provider chain from font file names.
func SystemFonts(names ...string) []FaceProvider {
	providers := make([]FaceProvider, len(names))
	for i, name := range names {
		providers[i] = SystemFont(name)
	}
	return providers
}

// FontChain is SystemFonts(names...) followed by GoRegular, so a scalable
// face is used even on hosts without any of the named fonts. ResolveFace
// still ends with the bitmap face.
func FontChain(names ...string) []FaceProvider {
	return append(SystemFonts(names...), GoRegular())
}
