package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/imgtools/internal/config"
	"github.com/ironsheep/imgtools/internal/imaging"
)

// Step records one output written by a pipeline.
type Step struct {
	Name string
	Path string
}

// BasicResult describes a run of the basic pipeline.
type BasicResult struct {
	Info  *imaging.Info
	Steps []Step
}

type basicOp struct {
	name   string
	suffix string
	apply  func(image.Image) (image.Image, error)
}

// Basic loads the configured source photo, reports its metadata, and writes
// five derived files next to each other in the output directory:
//
//	<stem>_basic.png    lossless copy
//	<stem>_resized.jpg  scaled to ResizeWidth, aspect preserved
//	<stem>_rotated.jpg  rotated counter-clockwise with expanded bounds
//	<stem>_bw.jpg       grayscale
//	<stem>_cropped.jpg  centered square, side min(w,h)/CropDivisor
//
// A load failure aborts before anything is written. A failing step, or a
// cancelled ctx, aborts the remaining ones; the steps completed so far are
// returned with the error.
func Basic(ctx context.Context, cfg *config.Config, logger *log.Logger) (*BasicResult, error) {
	logger = orDefault(logger)

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	src := cfg.InputPath(cfg.Basic.Source)
	img, format, err := imaging.Load(src)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", src, err)
	}

	info, err := imaging.Inspect(src, img, format)
	if err != nil {
		return nil, err
	}
	logger.Info("image info",
		"format", info.Format,
		"size", fmt.Sprintf("%dx%d", info.Width, info.Height),
		"mode", info.Mode,
	)

	bc := cfg.Basic
	ops := []basicOp{
		{"converted to PNG", "_basic.png", func(img image.Image) (image.Image, error) {
			return img, nil
		}},
		{"resized", "_resized.jpg", func(img image.Image) (image.Image, error) {
			return imaging.ResizeToWidth(img, bc.ResizeWidth), nil
		}},
		{"rotated", "_rotated.jpg", func(img image.Image) (image.Image, error) {
			return imaging.Rotate(img, bc.RotateDegrees, imaging.Black), nil
		}},
		{"converted to grayscale", "_bw.jpg", func(img image.Image) (image.Image, error) {
			return imaging.Grayscale(img), nil
		}},
		{"cropped", "_cropped.jpg", func(img image.Image) (image.Image, error) {
			return imaging.CenterSquare(img, bc.CropDivisor)
		}},
	}

	result := &BasicResult{Info: info}
	name := stem(src)
	for _, op := range ops {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		out, err := op.apply(img)
		if err != nil {
			return result, fmt.Errorf("%s: %w", op.name, err)
		}
		path := cfg.OutputPath(name + op.suffix)
		if err := imaging.Save(path, out, bc.Quality); err != nil {
			return result, fmt.Errorf("%s: %w", op.name, err)
		}
		logger.Debug("wrote", "step", op.name, "path", path)
		result.Steps = append(result.Steps, Step{Name: op.name, Path: path})
	}
	return result, nil
}

// stem returns the file name of path without directory or extension.
func stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func orDefault(logger *log.Logger) *log.Logger {
	if logger == nil {
		return log.Default()
	}
	return logger
}
