package pipeline

import (
	"context"
	"fmt"
	"image"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/imgtools/internal/collage"
	"github.com/ironsheep/imgtools/internal/config"
	"github.com/ironsheep/imgtools/internal/imaging"
)

// GridCollage tiles the input directory's images (those with the configured
// extension, in name order) into a Rows x Cols grid and saves it. The
// extension match is case-sensitive, so ".jpg" does not pick up "photo.JPG".
//
// Unreadable images are skipped. If fewer than Rows*Cols remain, the error
// wraps collage.ErrInsufficientImages and no file is written.
func GridCollage(ctx context.Context, cfg *config.Config, logger *log.Logger) (string, error) {
	logger = orDefault(logger)
	gc := cfg.Grid

	paths, err := imaging.ListFiles(cfg.InputDir, imaging.MatchSuffix(gc.Extension))
	if err != nil {
		return "", err
	}
	images, err := loadImages(ctx, paths, logger)
	if err != nil {
		return "", err
	}

	canvas, err := collage.Grid(images, collage.GridOptions{
		Rows:          gc.Rows,
		Cols:          gc.Cols,
		ThumbnailSize: gc.Thumbnail,
		Background:    imaging.White,
	})
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	out := cfg.OutputPath(gc.Output)
	if err := imaging.Save(out, canvas, gc.Quality); err != nil {
		return "", err
	}
	logger.Debug("grid collage", "size", canvas.Bounds().Size(), "images", len(images))
	return out, nil
}

// Gradient renders the configured two-axis test gradient and saves it.
func Gradient(cfg *config.Config, logger *log.Logger) (string, error) {
	logger = orDefault(logger)
	gc := cfg.Grid.Gradient

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create output directory: %w", err)
	}
	img := imaging.LinearGradient(gc.Width, gc.Height, config.Color(gc.Start), config.Color(gc.End))
	out := cfg.OutputPath(gc.Output)
	if err := imaging.Save(out, img, gc.Quality); err != nil {
		return "", err
	}
	logger.Debug("gradient", "start", gc.Start, "end", gc.End, "path", out)
	return out, nil
}

// BorderedCollage gathers the first MaxImages files in the output directory
// whose names end with SourceSuffix and lays them out as a bordered collage.
//
// It returns an empty path, without error, when no candidates exist. Files
// that fail to load are skipped and the collage is built from the rest.
func BorderedCollage(ctx context.Context, cfg *config.Config, logger *log.Logger) (string, error) {
	logger = orDefault(logger)
	cc := cfg.Generative.Collage

	paths, err := imaging.ListFiles(cfg.OutputDir, imaging.MatchSuffix(cc.SourceSuffix))
	if err != nil {
		return "", err
	}
	if len(paths) == 0 {
		logger.Warn("no images for collage", "dir", cfg.OutputDir, "suffix", cc.SourceSuffix)
		return "", nil
	}
	if len(paths) > cc.MaxImages {
		paths = paths[:cc.MaxImages]
	}

	images, err := loadImages(ctx, paths, logger)
	if err != nil {
		return "", err
	}

	canvas := collage.Bordered(images, collage.BorderedOptions{
		CanvasWidth:   cc.Width,
		CanvasHeight:  cc.Height,
		Margin:        cc.Margin,
		Gap:           cc.Gap,
		Padding:       cc.Padding,
		ThumbnailSize: cc.Thumbnail,
		FrameColor:    imaging.White,
		Top:           config.Color(cc.Top),
		Bottom:        config.Color(cc.Bottom),
	})

	out := cfg.OutputPath(cc.Output)
	if err := imaging.Save(out, canvas, cc.Quality); err != nil {
		return "", err
	}
	return out, nil
}

// loadImages decodes paths in order, logging and skipping any that fail.
// It stops with ctx.Err() once ctx is done.
func loadImages(ctx context.Context, paths []string, logger *log.Logger) ([]image.Image, error) {
	images := make([]image.Image, 0, len(paths))
	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		img, _, err := imaging.Load(path)
		if err != nil {
			logger.Warn("skipping image", "file", filepath.Base(path), "err", err)
			continue
		}
		images = append(images, img)
	}
	return images, nil
}
