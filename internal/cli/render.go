package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/raster"
	"github.com/gogpu/sketch/svg"
)

// newRenderCmd builds the render command: path data in, sketched
// SVG/PNG out.
func newRenderCmd() *cobra.Command {
	var (
		input     string
		output    string
		width     float64
		height    float64
		stylePath string
	)

	cmd := &cobra.Command{
		Use:   "render [path data]",
		Short: "Render SVG path data with a hand-drawn look",
		Long: `Render normalizes the given SVG path data to cubic Bezier form, applies
the configured jitter over several passes, and writes the layered result.
The output format follows the file extension: .svg or .png.`,
		Example: `  sketch render "M10,10 L90,10 L50,90 Z" -o triangle.svg
  sketch render --input path.txt --style sketchy.toml -o out.png`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			pathData, err := readPathData(args, input)
			if err != nil {
				return err
			}

			st, err := loadStyle(stylePath)
			if err != nil {
				return err
			}
			sketcher := sketch.NewSketcher(st.options()...)

			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				doc := svg.NewDocument(width, height)
				if err := sketcher.Sketch(pathData, st.attrs(), doc); err != nil {
					return err
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if _, err := doc.WriteTo(f); err != nil {
					return err
				}
			case ".png":
				img := raster.New(int(width), int(height))
				if bg := st.Background; bg != "" {
					if err := img.Clear(bg); err != nil {
						return err
					}
				}
				if err := sketcher.Sketch(pathData, st.attrs(), img); err != nil {
					return err
				}
				f, err := os.Create(output)
				if err != nil {
					return err
				}
				defer f.Close()
				if err := img.EncodePNG(f); err != nil {
					return err
				}
			default:
				return fmt.Errorf("unsupported output format %q (want .svg or .png)", output)
			}

			logger.Info("Rendered sketch", "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "read path data from file instead of the argument")
	cmd.Flags().StringVarP(&output, "out", "o", "sketch.svg", "output file (.svg or .png)")
	cmd.Flags().Float64VarP(&width, "width", "W", 256, "output width")
	cmd.Flags().Float64VarP(&height, "height", "H", 256, "output height")
	cmd.Flags().StringVar(&stylePath, "style", "", "TOML style file (jitter, repeats, colors)")

	return cmd
}

// readPathData resolves the path data from the positional argument or
// the --input file.
func readPathData(args []string, input string) (string, error) {
	switch {
	case input != "":
		data, err := os.ReadFile(input)
		if err != nil {
			return "", fmt.Errorf("reading path data: %w", err)
		}
		return strings.TrimSpace(string(data)), nil
	case len(args) == 1 && strings.TrimSpace(args[0]) != "":
		return args[0], nil
	}
	return "", fmt.Errorf("no path data: pass it as an argument or via --input")
}
