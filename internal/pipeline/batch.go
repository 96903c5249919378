package pipeline

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/imgtools/internal/config"
	"github.com/ironsheep/imgtools/internal/imaging"
	"github.com/ironsheep/imgtools/internal/watermark"
)

// ErrInputDirMissing is returned when the input directory does not exist.
var ErrInputDirMissing = errors.New("input directory does not exist")

// FileOutcome is the result of processing one file in a batch.
type FileOutcome struct {
	Name   string // source file name
	Output string // written path, empty on failure
	Err    error
}

// BatchResult summarizes a batch run.
type BatchResult struct {
	Files     []FileOutcome
	Processed int
	Failed    int
	FontFace  string
}

// Total is the number of files attempted.
func (r *BatchResult) Total() int {
	return r.Processed + r.Failed
}

// NewWatermark builds the batch watermark from configuration.
func NewWatermark(wc config.Watermark) watermark.Watermark {
	return watermark.Watermark{
		Text:      wc.Text,
		Size:      wc.FontSize,
		Margin:    wc.Margin,
		Fill:      config.Color(wc.Fill),
		Outline:   config.Color(wc.Outline),
		Providers: watermark.FontChain(wc.Fonts...),
	}
}

// Batch watermarks every supported image in the input directory.
//
// Each file is shrunk to MaxWidth when wider, watermarked, and saved as
// <stem><Suffix>.jpg. A file that fails is recorded and the batch moves on;
// only a missing input directory or an unwritable output directory fail the
// whole run.
//
// ctx is checked before each file. On cancellation the files finished so far
// are returned together with ctx.Err().
func Batch(ctx context.Context, cfg *config.Config, logger *log.Logger) (*BatchResult, error) {
	logger = orDefault(logger)

	if st, err := os.Stat(cfg.InputDir); err != nil || !st.IsDir() {
		return nil, fmt.Errorf("%w: %s", ErrInputDirMissing, cfg.InputDir)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	bc := cfg.Batch
	paths, err := imaging.ListFiles(cfg.InputDir, imaging.MatchExtensions(bc.Extensions...))
	if err != nil {
		return nil, err
	}

	wm := NewWatermark(bc.Watermark).Resolve()
	logger.Debug("watermark font", "face", wm.FaceName())

	result := &BatchResult{FontFace: wm.FaceName()}
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			logger.Warn("batch interrupted", "processed", result.Processed, "remaining", len(paths)-result.Total())
			return result, err
		}
		name := filepath.Base(path)
		out := cfg.OutputPath(stem(path) + bc.Suffix + ".jpg")

		if err := ProcessImage(path, out, bc.MaxWidth, bc.Quality, wm); err != nil {
			logger.Error("failed to process", "file", name, "err", err)
			result.Files = append(result.Files, FileOutcome{Name: name, Err: err})
			result.Failed++
			continue
		}
		logger.Debug("processed", "file", name, "output", out)
		result.Files = append(result.Files, FileOutcome{Name: name, Output: out})
		result.Processed++
	}
	return result, nil
}

// ProcessImage shrinks, watermarks and saves a single image.
func ProcessImage(in, out string, maxWidth, quality int, wm *watermark.Renderer) error {
	img, _, err := imaging.Load(in)
	if err != nil {
		return err
	}
	working := imaging.ShrinkToWidth(img, maxWidth)
	marked := imaging.Flatten(wm.Apply(working), imaging.White)
	return imaging.Save(out, marked, quality)
}
