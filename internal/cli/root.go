package cli

import (
	"context"
	"fmt"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	version string // semantic version (e.g., "v1.2.3")
	commit  string // git commit SHA
	date    string // build timestamp
)

// SetVersion sets the version information displayed by --version. The
// main package calls this with values injected via ldflags.
func SetVersion(v, c, d string) {
	version = v
	commit = c
	date = d
}

// Execute runs the tform CLI and returns an error if any command
// fails. The root command wires the eval and render subcommands and
// attaches a logger to the context; --verbose switches it to debug
// level.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "tform",
		Short:        "tform composes and previews 2D transform expressions",
		Long:         `tform parses transform expressions such as "R(30)*T(0.5,0)*S(2,1)" into a single affine matrix and can rasterize shapes through the result for a quick visual check.`,
		Version:      version,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := charmlog.InfoLevel
			if verbose {
				level = charmlog.DebugLevel
			}
			ctx := withLogger(cmd.Context(), newLogger(os.Stderr, level))
			cmd.SetContext(ctx)
		},
	}

	root.SetVersionTemplate(fmt.Sprintf("tform %s\ncommit: %s\nbuilt: %s\n", version, commit, date))
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")

	root.AddCommand(newEvalCmd())
	root.AddCommand(newRenderCmd())

	return root.ExecuteContext(context.Background())
}
