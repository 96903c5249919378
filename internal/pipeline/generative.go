package pipeline

import (
	"context"
	"fmt"
	"os"

	"github.com/charmbracelet/log"

	"github.com/ironsheep/imgtools/internal/config"
	"github.com/ironsheep/imgtools/internal/generative"
	"github.com/ironsheep/imgtools/internal/imaging"
)

// GenerativeResult lists what a generative run wrote.
type GenerativeResult struct {
	Seed     uint64
	Artworks []string
	Collage  string // empty when there was nothing to collage
}

// Generative renders Count artworks of random size as
// generative_art_<n>.png, then builds the bordered collage.
//
// All randomness, canvas sizes included, comes from seed. A collage failure is
// logged and does not fail the run; cancellation of ctx does.
func Generative(ctx context.Context, cfg *config.Config, seed uint64, logger *log.Logger) (*GenerativeResult, error) {
	logger = orDefault(logger)
	gc := cfg.Generative

	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	opts := generative.DefaultOptions()
	opts.Circles = gc.Circles
	opts.Lines = gc.Lines
	opts.Triangles = gc.Triangles
	composer := generative.NewSeeded(seed, opts)

	result := &GenerativeResult{Seed: seed}
	for i := 1; i <= gc.Count; i++ {
		if err := ctx.Err(); err != nil {
			return result, err
		}
		w, h := composer.Intn(gc.Width), composer.Intn(gc.Height)
		img, err := composer.Compose(w, h)
		if err != nil {
			return result, err
		}
		out := cfg.OutputPath(fmt.Sprintf("generative_art_%d.png", i))
		if err := imaging.Save(out, img, 0); err != nil {
			return result, err
		}
		logger.Debug("artwork", "path", out, "size", fmt.Sprintf("%dx%d", w, h))
		result.Artworks = append(result.Artworks, out)
	}

	path, err := BorderedCollage(ctx, cfg, logger)
	if ctx.Err() != nil {
		return result, ctx.Err()
	}
	if err != nil {
		logger.Error("failed to build collage", "err", err)
	}
	result.Collage = path
	return result, nil
}
