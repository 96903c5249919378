// Package imaging provides the core image operations used by the imgtools
// subcommands.
//
// This package wraps decoding, encoding, resizing, cropping, colour handling,
// gradient rendering and alpha compositing behind a small set of functions that
// operate on standard Go image.Image values. Mutable buffers produced here are
// always *image.NRGBA (straight, non-premultiplied alpha, 8 bits per channel).
//
// # Coordinate System
//
// All pixel coordinates in this package are 0-based:
//   - X: horizontal position (0 = leftmost pixel)
//   - Y: vertical position (0 = topmost pixel)
//   - For regions, Min is inclusive (top-left) and Max is exclusive (bottom-right)
//
// # Resource Lifetime
//
// Load opens a file, decodes it and closes the file before returning, on every
// exit path. Callers never hold an open handle, so folder-wide loops cannot leak
// descriptors. Every transform returns a new buffer and leaves its input intact.
//
// # Color Representation
//
// Colors are represented by the Color type: four 8-bit channels with straight
// alpha. Color implements color.Color, so it can be passed anywhere the standard
// library or the imaging libraries accept one. Colors can be parsed from
// "#RRGGBB" or "#RRGGBBAA" strings with ParseColor.
//
// # Formats
//
// Decoding supports JPEG, PNG, GIF, WebP, BMP and TIFF. Encoding supports PNG
// (lossless) and JPEG (lossy, with a quality setting), selected by file
// extension.
//
// # Error Handling
//
// Functions return errors for invalid inputs such as:
//   - Regions outside image bounds or with zero area
//   - File I/O errors during loading or saving
//   - Unsupported output extensions (ErrUnsupportedFormat)
//   - Encoding errors during image output
package imaging
