// Package cli implements the sketch command-line interface.
//
// The CLI exposes the library's layered hand-drawn rendering for quick
// experiments and scripting: the render command sketches raw path data
// into an SVG or PNG file, the pie command draws a pie chart from plain
// numeric values. It is built using cobra with verbose logging via the
// charmbracelet/log library.
//
// # Example
//
//	import "github.com/gogpu/sketch/internal/cli"
//
//	func main() {
//	    if err := cli.Execute(); err != nil {
//	        os.Exit(1)
//	    }
//	}
package cli

import (
	"log/slog"
	"os"

	charmlog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
)

// Execute runs the sketch CLI and returns an error if any command
// fails.
//
// Logging goes to stderr at info level; --verbose (-v) raises it to
// debug and also forwards the library's internal slog output through
// the same charmbracelet logger.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:          "sketch",
		Short:        "sketch renders vector paths with a hand-drawn look",
		Long:         `sketch normalizes SVG path data to cubic Bezier form and draws it as several randomly perturbed layers, producing a hand-drawn rendering as SVG or PNG.`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger := charmlog.NewWithOptions(os.Stderr, charmlog.Options{
				ReportTimestamp: true,
				TimeFormat:      "15:04:05.00",
				Level:           charmlog.InfoLevel,
			})
			if verbose {
				logger.SetLevel(charmlog.DebugLevel)
				sketch.SetLogger(slog.New(logger))
			}
			cmd.SetContext(withLogger(cmd.Context(), logger))
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	root.AddCommand(newRenderCmd())
	root.AddCommand(newPieCmd())

	return root.Execute()
}
