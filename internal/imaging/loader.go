package imaging

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"path/filepath"
	"strings"

	_ "golang.org/x/image/bmp"  // Register BMP format decoder
	_ "golang.org/x/image/tiff" // Register TIFF format decoder
	_ "golang.org/x/image/webp" // Register WebP format decoder
)

// Load opens and decodes the image at path.
//
// Returns:
//   - image.Image: The decoded image. The concrete type depends on the image format
//     and color model (e.g., *image.YCbCr for JPEG, *image.NRGBA for PNG).
//   - string: The format name registered by the decoder ("jpeg", "png", "gif",
//     "webp", "bmp", "tiff").
//   - error: Non-nil if the file cannot be opened or decoded.
//
// The file is closed before Load returns, whether decoding succeeds or not.
// Decoded pixels are held in memory and are independent of the file.
func Load(path string) (image.Image, string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, "", fmt.Errorf("failed to decode image %s: %w", filepath.Base(path), err)
	}

	return img, format, nil
}

// Info contains metadata about a decoded image file.
type Info struct {
	// Width is the image width in pixels.
	Width int `json:"width"`

	// Height is the image height in pixels.
	Height int `json:"height"`

	// Format is the format name reported by the decoder: "jpeg", "png", "gif",
	// "webp", "bmp" or "tiff".
	Format string `json:"format"`

	// Mode names the channel layout: "RGB", "RGBA", "L", "LA", "P", "CMYK" or "A".
	Mode string `json:"mode"`

	// ColorDepth indicates the bit depth per channel: "8-bit" or "16-bit".
	ColorDepth string `json:"color_depth"`

	// HasAlpha indicates whether the image carries a transparency channel.
	HasAlpha bool `json:"has_alpha"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// Inspect builds an Info for an image already decoded from path.
//
// The format is the one returned by Load; the file is only stat'd for its size.
//
// # Mode Detection
//
// Mode is derived from the Go image type:
//   - *image.Gray, *image.Gray16 -> "L"
//   - *image.Paletted -> "P"
//   - *image.CMYK -> "CMYK"
//   - *image.Alpha, *image.Alpha16 -> "A"
//   - *image.RGBA, *image.NRGBA, their 16-bit forms, *image.NYCbCrA -> "RGBA"
//   - *image.YCbCr and everything else -> "RGB"
func Inspect(path string, img image.Image, format string) (*Info, error) {
	stat, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}

	bounds := img.Bounds()
	mode := ChannelMode(img)

	colorDepth := "8-bit"
	switch img.(type) {
	case *image.RGBA64, *image.NRGBA64, *image.Gray16, *image.Alpha16:
		colorDepth = "16-bit"
	}

	return &Info{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        format,
		Mode:          mode,
		ColorDepth:    colorDepth,
		HasAlpha:      mode == "RGBA" || mode == "A" || hasPaletteAlpha(img),
		FileSizeBytes: stat.Size(),
	}, nil
}

// ChannelMode returns the channel layout name for img. See Inspect.
func ChannelMode(img image.Image) string {
	switch img.(type) {
	case *image.Gray, *image.Gray16:
		return "L"
	case *image.Paletted:
		return "P"
	case *image.CMYK:
		return "CMYK"
	case *image.Alpha, *image.Alpha16:
		return "A"
	case *image.RGBA, *image.NRGBA, *image.RGBA64, *image.NRGBA64, *image.NYCbCrA:
		return "RGBA"
	default:
		return "RGB"
	}
}

func hasPaletteAlpha(img image.Image) bool {
	p, ok := img.(*image.Paletted)
	if !ok {
		return false
	}
	for _, c := range p.Palette {
		if _, _, _, a := c.RGBA(); a != 0xffff {
			return true
		}
	}
	return false
}

// ListFiles returns the paths of regular files in dir whose names satisfy match,
// sorted by file name. Subdirectories are skipped.
func ListFiles(dir string, match func(name string) bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory: %w", err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if match == nil || match(e.Name()) {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	return paths, nil
}

// MatchExtensions returns a matcher accepting file names that end with any of
// exts, compared case-insensitively. Extensions include the leading dot.
func MatchExtensions(exts ...string) func(name string) bool {
	lowered := make([]string, len(exts))
	for i, ext := range exts {
		lowered[i] = strings.ToLower(ext)
	}
	return func(name string) bool {
		ext := strings.ToLower(filepath.Ext(name))
		for _, want := range lowered {
			if ext == want {
				return true
			}
		}
		return false
	}
}

// MatchSuffix returns a matcher accepting file names ending with suffix.
func MatchSuffix(suffix string) func(name string) bool {
	return func(name string) bool {
		return strings.HasSuffix(name, suffix)
	}
}
