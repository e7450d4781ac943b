package raster

import "image/color"

// named covers the colors the CLI and tests actually use; everything
// else goes through hex notation.
var named = map[string]color.RGBA{
	"black":       {0x00, 0x00, 0x00, 0xff},
	"white":       {0xff, 0xff, 0xff, 0xff},
	"red":         {0xff, 0x00, 0x00, 0xff},
	"green":       {0x00, 0x80, 0x00, 0xff},
	"blue":        {0x00, 0x00, 0xff, 0xff},
	"gray":        {0x80, 0x80, 0x80, 0xff},
	"grey":        {0x80, 0x80, 0x80, 0xff},
	"yellow":      {0xff, 0xff, 0x00, 0xff},
	"orange":      {0xff, 0xa5, 0x00, 0xff},
	"purple":      {0x80, 0x00, 0x80, 0xff},
	"transparent": {0x00, 0x00, 0x00, 0x00},
}

// parseColor resolves a CSS-style color value: #rgb, #rrggbb,
// #rrggbbaa, or one of the supported names.
func parseColor(s string) (color.RGBA, bool) {
	if c, ok := named[s]; ok {
		return c, true
	}
	if len(s) == 0 || s[0] != '#' {
		return color.RGBA{}, false
	}

	hex := s[1:]
	switch len(hex) {
	case 3:
		r, okR := hexNibble(hex[0])
		g, okG := hexNibble(hex[1])
		b, okB := hexNibble(hex[2])
		if !okR || !okG || !okB {
			return color.RGBA{}, false
		}
		return color.RGBA{r * 17, g * 17, b * 17, 0xff}, true
	case 6, 8:
		var v [4]uint8
		v[3] = 0xff
		for i := 0; i*2 < len(hex); i++ {
			hi, okH := hexNibble(hex[i*2])
			lo, okL := hexNibble(hex[i*2+1])
			if !okH || !okL {
				return color.RGBA{}, false
			}
			v[i] = hi<<4 | lo
		}
		return color.RGBA{v[0], v[1], v[2], v[3]}, true
	}
	return color.RGBA{}, false
}

func hexNibble(c byte) (uint8, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	}
	return 0, false
}
