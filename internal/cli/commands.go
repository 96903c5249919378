package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/ironsheep/imgtools/internal/pipeline"
)

func (a *app) basicCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "basic",
		Short: "Inspect a photo and write resized, rotated, grayscale and cropped copies",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			res, err := pipeline.Basic(cmd.Context(), a.cfg, logger)
			if res != nil && res.Info != nil {
				printTitle(out, a.cfg.Basic.Source)
				printKeyValue(out, "format", res.Info.Format)
				printKeyValue(out, "size", fmt.Sprintf("%dx%d", res.Info.Width, res.Info.Height))
				printKeyValue(out, "mode", res.Info.Mode)
			}
			if res != nil {
				for _, step := range res.Steps {
					printSuccess(out, "%s", step.Name)
					printFile(out, step.Path)
				}
			}
			return err
		},
	}
}

func (a *app) batchCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "batch",
		Short: "Shrink and watermark every image in the input directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()
			prog := newProgress(logger)

			res, err := pipeline.Batch(cmd.Context(), a.cfg, logger)
			if res == nil {
				return err
			}

			for _, f := range res.Files {
				if f.Err != nil {
					printError(out, "%s: %v", f.Name, f.Err)
					continue
				}
				printSuccess(out, "%s", f.Name)
				printFile(out, f.Output)
			}
			if res.Total() == 0 && err == nil {
				printWarning(out, "no images found in %s", a.cfg.InputDir)
			}
			printCounts(out, res.Processed, res.Failed, res.Total())
			if err != nil {
				return err
			}
			prog.done("Batch finished")
			return nil
		},
	}
}

func (a *app) generateCommand() *cobra.Command {
	var seed uint64

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Render generative artworks and a bordered collage of processed photos",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			if !cmd.Flags().Changed("seed") {
				seed = uint64(time.Now().UnixNano())
			}
			logger.Info("generating", "seed", seed, "count", a.cfg.Generative.Count)

			res, err := pipeline.Generative(cmd.Context(), a.cfg, seed, logger)
			if res != nil {
				for _, path := range res.Artworks {
					printSuccess(out, "artwork")
					printFile(out, path)
				}
			}
			if err != nil {
				return err
			}
			if res.Collage == "" {
				printWarning(out, "no %s images for the collage", a.cfg.Generative.Collage.SourceSuffix)
				return nil
			}
			printSuccess(out, "collage")
			printFile(out, res.Collage)
			return nil
		},
	}

	cmd.Flags().Uint64Var(&seed, "seed", 0, "random seed for reproducible output (default: time-based)")
	return cmd
}

func (a *app) gridCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "grid",
		Short: "Render the test gradient and a grid collage of input JPEGs",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())
			out := cmd.OutOrStdout()

			path, err := pipeline.Gradient(a.cfg, logger)
			if err != nil {
				return err
			}
			printSuccess(out, "gradient")
			printFile(out, path)

			path, err = pipeline.GridCollage(cmd.Context(), a.cfg, logger)
			if err != nil {
				return err
			}
			printSuccess(out, "grid collage")
			printFile(out, path)
			return nil
		},
	}
}
