package cli

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/gogpu/sketch"
)

// style is the TOML style-file surface. Jitter and Repeats are
// pointers so an explicit zero can be told apart from an absent key.
//
// Example style file:
//
//	jitter = 2.5
//	repeats = 4
//	fill = "#fde8d0"
//	stroke = "#4a3f35"
//	stroke-width = 1.5
//	background = "white"
type style struct {
	Jitter      *float64 `toml:"jitter"`
	Repeats     *int     `toml:"repeats"`
	Fill        string   `toml:"fill"`
	Stroke      string   `toml:"stroke"`
	StrokeWidth float64  `toml:"stroke-width"`
	Background  string   `toml:"background"`
}

// loadStyle reads a style file. An empty path yields the zero style.
func loadStyle(path string) (style, error) {
	var st style
	if path == "" {
		return st, nil
	}
	meta, err := toml.DecodeFile(path, &st)
	if err != nil {
		return st, fmt.Errorf("loading style %s: %w", path, err)
	}
	if undecoded := meta.Undecoded(); len(undecoded) > 0 {
		return st, fmt.Errorf("loading style %s: unknown key %q", path, undecoded[0].String())
	}
	return st, nil
}

// options converts the style into sketcher options.
func (st style) options() []sketch.Option {
	var opts []sketch.Option
	if st.Jitter != nil {
		opts = append(opts, sketch.WithJitter(*st.Jitter))
	}
	if st.Repeats != nil {
		opts = append(opts, sketch.WithRepeats(*st.Repeats))
	}
	return opts
}

// attrs converts the style's presentation keys into layer attributes.
func (st style) attrs() sketch.Attrs {
	attrs := sketch.Attrs{}
	if st.Fill != "" {
		attrs["fill"] = st.Fill
	}
	if st.Stroke != "" {
		attrs["stroke"] = st.Stroke
	}
	if st.StrokeWidth > 0 {
		attrs["stroke-width"] = fmt.Sprintf("%g", st.StrokeWidth)
	}
	return attrs
}
