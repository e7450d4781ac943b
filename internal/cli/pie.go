package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gogpu/sketch"
	"github.com/gogpu/sketch/piechart"
	"github.com/gogpu/sketch/raster"
	"github.com/gogpu/sketch/svg"
)

// newPieCmd builds the pie command: numeric values in, sketched pie
// chart out.
func newPieCmd() *cobra.Command {
	var (
		output    string
		size      float64
		colors    []string
		stylePath string
	)

	cmd := &cobra.Command{
		Use:   "pie <values>",
		Short: "Draw a hand-drawn pie chart from comma-separated values",
		Example: `  sketch pie 3,1,4,1,5 -o pie.svg
  sketch pie 40,25,35 --colors "#e64980,#4dabf7,#51cf66" -o pie.png`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := loggerFromContext(cmd.Context())

			values, err := parseValues(args[0])
			if err != nil {
				return err
			}
			slices := make([]piechart.Slice, len(values))
			for i, v := range values {
				slices[i].Value = v
				if i < len(colors) {
					slices[i].Color = colors[i]
				}
			}

			st, err := loadStyle(stylePath)
			if err != nil {
				return err
			}
			chart := piechart.New(size/2, size/2, size*0.4,
				piechart.WithSketcher(sketch.NewSketcher(st.options()...)))

			switch strings.ToLower(filepath.Ext(output)) {
			case ".svg":
				doc := svg.NewDocument(size, size)
				if err := chart.Render(slices, doc); err != nil {
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
				img := raster.New(int(size), int(size))
				if bg := st.Background; bg != "" {
					if err := img.Clear(bg); err != nil {
						return err
					}
				}
				if err := chart.Render(slices, img); err != nil {
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

			logger.Info("Rendered pie chart", "slices", len(slices), "output", output)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "out", "o", "pie.svg", "output file (.svg or .png)")
	cmd.Flags().Float64VarP(&size, "size", "s", 256, "chart width and height")
	cmd.Flags().StringSliceVar(&colors, "colors", nil, "per-slice colors, in value order")
	cmd.Flags().StringVar(&stylePath, "style", "", "TOML style file (jitter, repeats)")

	return cmd
}

// parseValues parses a comma-separated list of numbers.
func parseValues(s string) ([]float64, error) {
	parts := strings.Split(s, ",")
	values := make([]float64, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		v, err := strconv.ParseFloat(p, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", p, err)
		}
		values = append(values, v)
	}
	if len(values) == 0 {
		return nil, fmt.Errorf("no values given")
	}
	return values, nil
}
