// Package colorutil provides shared color utilities for the microfluidic designer.
package colorutil

import (
	"fmt"
	"image/color"
	"strings"

	"golang.org/x/image/colornames"
)

// Default display colors for the standard layer types.
var (
	FlowBlue   = color.RGBA{R: 0x36, G: 0x74, B: 0xd9, A: 255}
	ControlRed = color.RGBA{R: 0xd9, G: 0x36, B: 0x36, A: 255}
	White      = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black      = color.RGBA{R: 0, G: 0, B: 0, A: 255}
)

// ParseColor parses a display color string. Accepted forms are "#rgb",
// "#rrggbb", and SVG 1.1 color names ("steelblue", "Coral", ...).
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return color.RGBA{}, fmt.Errorf("empty color")
	}

	if s[0] == '#' {
		return parseHex(s[1:])
	}

	if c, ok := colornames.Map[strings.ToLower(s)]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("unknown color %q", s)
}

// FormatColor renders a color as a lowercase "#rrggbb" string, the form
// stored in layer display colors and design files.
func FormatColor(c color.RGBA) string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func parseHex(hex string) (color.RGBA, error) {
	var r, g, b uint8
	switch len(hex) {
	case 3:
		n, err := fmt.Sscanf(hex, "%1x%1x%1x", &r, &g, &b)
		if err != nil || n != 3 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
		// Expand each nibble, e.g. #f80 -> #ff8800
		r, g, b = r*17, g*17, b*17
	case 6:
		n, err := fmt.Sscanf(hex, "%02x%02x%02x", &r, &g, &b)
		if err != nil || n != 3 {
			return color.RGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
		}
	default:
		return color.RGBA{}, fmt.Errorf("invalid hex color %q", "#"+hex)
	}
	return color.RGBA{R: r, G: g, B: b, A: 255}, nil
}
