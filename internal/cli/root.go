package cli

import (
	"context"
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/ironsheep/imgtools/internal/config"
)

var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// SetVersion sets the version information displayed by --version. The main
// package calls it with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// app holds state shared by all subcommands of one invocation.
type app struct {
	configPath string
	verbose    bool
	cfg        *config.Config
}

// Execute runs the imgtools CLI.
//
// Logging goes to stderr at info level, or debug with --verbose. The logger
// is attached to the command context and read back with loggerFromContext.
// A failing command is reported on stderr with an error mark and its error
// returned.
func Execute(ctx context.Context) error {
	root := newRootCmd()
	err := root.ExecuteContext(ctx)
	if err != nil {
		printError(root.ErrOrStderr(), "%v", err)
	}
	return err
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "imgtools",
		Short: "imgtools runs batch image transforms, watermarking and collages",
		Long: `imgtools bundles a few single-shot image programs: a basic transform
pipeline, a folder watermarker, a generative art renderer with a bordered
collage, and a grid collage with a test gradient.

Images are read from the input directory (./input) and written to the output
directory (./output). Every parameter has a built-in default; use --config to
override any of them from a TOML or YAML file.`,
		Version:           version,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
	}

	root.SetVersionTemplate(fmt.Sprintf("imgtools %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().StringVarP(&a.configPath, "config", "c", "", "TOML or YAML config file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(a.basicCommand())
	root.AddCommand(a.batchCommand())
	root.AddCommand(a.generateCommand())
	root.AddCommand(a.gridCommand())

	return root
}

// setup installs the logger and loads configuration before any subcommand.
func (a *app) setup(cmd *cobra.Command, args []string) error {
	level := charmlog.InfoLevel
	if a.verbose {
		level = charmlog.DebugLevel
	}
	logger := newLogger(cmd.ErrOrStderr(), level)
	cmd.SetContext(withLogger(cmd.Context(), logger))

	cfg, err := config.Load(a.configPath)
	if err != nil {
		return err
	}
	if a.configPath != "" {
		logger.Debug("loaded config", "path", a.configPath)
	}
	a.cfg = cfg
	return nil
}
