package imaging

import (
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/anthonynsimon/bild/imgio"
)

// ErrUnsupportedFormat is returned when an output extension has no encoder.
var ErrUnsupportedFormat = errors.New("unsupported image format")

// Format identifies an output encoding.
type Format int

const (
	// PNG is lossless; used for format conversion and generative art.
	PNG Format = iota
	// JPEG is lossy; used for photos and collages.
	JPEG
	// BMP is uncompressed.
	BMP
)

func (f Format) String() string {
	switch f {
	case PNG:
		return "png"
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	default:
		return "unknown"
	}
}

// FormatFromPath maps an output file extension to a Format.
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, filepath.Ext(path))
	}
}

// Encoder returns the encoder for f. Quality applies to JPEG only and must be
// within 1..100.
func Encoder(f Format, quality int) (imgio.Encoder, error) {
	switch f {
	case PNG:
		return imgio.PNGEncoder(), nil
	case JPEG:
		if quality < 1 || quality > 100 {
			return nil, fmt.Errorf("invalid JPEG quality %d: must be 1-100", quality)
		}
		return imgio.JPEGEncoder(quality), nil
	case BMP:
		return imgio.BMPEncoder(), nil
	default:
		return nil, ErrUnsupportedFormat
	}
}

// Encode writes img to w in format f.
func Encode(w io.Writer, img image.Image, f Format, quality int) error {
	enc, err := Encoder(f, quality)
	if err != nil {
		return err
	}
	if err := enc(w, img); err != nil {
		return fmt.Errorf("failed to encode %s image: %w", f, err)
	}
	return nil
}

// Save encodes img to path, choosing the format from the extension.
//
// The file is created (or truncated) and closed before Save returns. A close
// error is reported when encoding itself succeeded.
func Save(path string, img image.Image, quality int) (err error) {
	f, err := FormatFromPath(path)
	if err != nil {
		return err
	}
	if _, err := Encoder(f, quality); err != nil {
		return err
	}

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() {
		if cErr := out.Close(); cErr != nil && err == nil {
			err = fmt.Errorf("failed to close output file: %w", cErr)
		}
	}()

	return Encode(out, img, f, quality)
}
