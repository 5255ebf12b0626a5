// Package render turns typed rows into raster chart images with
// go-chart. A ChartSpec enumerates every visual encoding the tutorial uses;
// nothing is resolved dynamically at render time.
package render

// ChartSpec is the full set of encoding choices for one chart. When the
// axis limits (and the size domain for bubbles) are populated they are used
// verbatim on every call, which is what keeps animation frames comparable.
type ChartSpec struct {
	Title  string
	XTitle string
	YTitle string

	// Fixed axis limits. Used only when Max > Min; otherwise nice bounds
	// are derived from the data.
	XMin, XMax float64
	YMin, YMax float64

	// LogX plots x on a base-10 logarithmic scale with power-of-ten ticks.
	LogX bool

	Width  int
	Height int

	// Palette names the categorical color scale (see palette.go).
	Palette string

	// Bubble size encoding: raw size values are mapped from
	// [SizeMin,SizeMax] onto dot widths [MinDot,MaxDot] on a square-root
	// scale. With SizeMax <= SizeMin the domain is taken from the data of
	// the current call, which breaks across-frame comparability and is
	// only appropriate for single static charts.
	SizeMin, SizeMax float64
	MinDot, MaxDot   float64

	// DotWidth is the fixed dot size used when a point carries no size
	// value.
	DotWidth float64

	// Label is drawn bottom-left onto the finished image (the current
	// year or state of an animation frame).
	Label string
}

// Point is one mark on a chart. Category selects the palette color, Label
// is the mark's identity across animation frames (e.g. the country name),
// and Alpha in (0,1) fades the mark; zero means fully opaque.
type Point struct {
	X, Y     float64
	Size     float64
	Category string
	Label    string
	Alpha    float64
}

const (
	defaultWidth  = 1000
	defaultHeight = 600
)

func (s ChartSpec) width() int {
	if s.Width > 0 {
		return s.Width
	}
	return defaultWidth
}

func (s ChartSpec) height() int {
	if s.Height > 0 {
		return s.Height
	}
	return defaultHeight
}

func (s ChartSpec) fixedX() bool { return s.XMax > s.XMin }
func (s ChartSpec) fixedY() bool { return s.YMax > s.YMin }
