package render

import (
	"sort"

	"github.com/wcharczuk/go-chart/v2/drawing"
)

// Named palettes. Known labels get a fixed color independent of which other
// categories appear in a given call, so the color scale stays identical
// across animation frames even when a category is temporarily absent.
// Unknown labels fall back to positional assignment in sorted order.
var labelColors = map[string]map[string]drawing.Color{
	// region colors for the development bubble charts
	"regions": {
		"africa":   drawing.ColorFromHex("00d5e9"),
		"americas": drawing.ColorFromHex("7feb00"),
		"asia":     drawing.ColorFromHex("ff5872"),
		"europe":   drawing.ColorFromHex("ffe700"),
	},
	// scenario colors for the climate simulation charts
	"scenarios": {
		"human":   drawing.ColorFromHex("d62728"),
		"natural": drawing.ColorFromHex("1f77b4"),
	},
	// single-series line charts
	"observed": {
		"observed": drawing.ColorFromHex("e4572e"),
	},
}

var defaultPalette = []drawing.Color{
	drawing.ColorFromHex("1f77b4"),
	drawing.ColorFromHex("ff7f0e"),
	drawing.ColorFromHex("2ca02c"),
	drawing.ColorFromHex("d62728"),
	drawing.ColorFromHex("9467bd"),
	drawing.ColorFromHex("8c564b"),
}

// CategoryColors maps each category label to its palette color. The input
// order is irrelevant; unmatched labels are sorted before positional
// fallback assignment.
func CategoryColors(palette string, categories []string) map[string]drawing.Color {
	fixed := labelColors[palette]
	out := make(map[string]drawing.Color, len(categories))
	rest := []string{}
	for _, c := range categories {
		if col, ok := fixed[c]; ok {
			out[c] = col
		} else {
			rest = append(rest, c)
		}
	}
	sort.Strings(rest)
	for i, c := range rest {
		out[c] = defaultPalette[i%len(defaultPalette)]
	}
	return out
}
