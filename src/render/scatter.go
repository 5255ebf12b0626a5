package render

import (
	"bytes"
	"image"
	"image/png"
	"math"
	"sort"

	"github.com/pkg/errors"
	chart "github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"
)

const (
	defaultDotWidth = 5.0
	defaultMinDot   = 3.0
	defaultMaxDot   = 26.0
)

// Scatter renders a (bubble) scatter chart. Point positions come from X/Y,
// dot size from Size via a square-root scale, and color from Category via
// the spec's palette. Alpha in (0,1) on a point fades it, which is how
// animation frames fade entering and exiting marks.
func Scatter(spec ChartSpec, pts []Point) (image.Image, error) {
	if len(pts) == 0 {
		return drawLabel(blank(spec.width(), spec.height()), spec.Label), nil
	}

	pts, err := transformX(spec, pts)
	if err != nil {
		return nil, err
	}

	cats := categoriesOf(pts)
	colors := CategoryColors(spec.Palette, cats)
	sized := false
	for _, p := range pts {
		if p.Size > 0 {
			sized = true
			break
		}
	}
	sizeDot := sizeScale(spec, pts)

	series := make([]chart.Series, 0, len(cats))
	for _, cat := range cats {
		catPts := pointsIn(pts, cat)
		xs := make([]float64, len(catPts))
		ys := make([]float64, len(catPts))
		for i, p := range catPts {
			xs[i] = p.X
			ys[i] = p.Y
		}
		col := colors[cat]
		st := chart.Style{
			StrokeWidth: 0,
			DotWidth:    dotWidth(spec),
			DotColor:    col,
		}
		local := catPts
		if sized {
			st.DotWidthProvider = func(xr, yr chart.Range, index int, x, y float64) float64 {
				if index < 0 || index >= len(local) {
					return dotWidth(spec)
				}
				return sizeDot(local[index].Size)
			}
		}
		st.DotColorProvider = func(xr, yr chart.Range, index int, x, y float64) drawing.Color {
			if index < 0 || index >= len(local) {
				return col
			}
			return col.WithAlpha(alphaByte(local[index].Alpha))
		}
		series = append(series, chart.ContinuousSeries{
			Name:    cat,
			XValues: xs,
			YValues: ys,
			Style:   st,
		})
	}

	return renderChart(spec, pts, series, len(cats) > 1)
}

// transformX applies the log-x scale in data space: x values (and the fixed
// limits, handled in axisRanges) are plotted as log10(x).
func transformX(spec ChartSpec, pts []Point) ([]Point, error) {
	if !spec.LogX {
		return pts, nil
	}
	out := make([]Point, len(pts))
	for i, p := range pts {
		if p.X <= 0 {
			return nil, errors.Errorf("point %q: non-positive x %.3f on log scale", p.Label, p.X)
		}
		p.X = math.Log10(p.X)
		out[i] = p
	}
	return out, nil
}

// sizeScale returns the raw-size -> dot-width mapping. The domain comes
// from the spec when fixed (required for comparable animation frames), else
// from the data of this call.
func sizeScale(spec ChartSpec, pts []Point) func(float64) float64 {
	minDot, maxDot := spec.MinDot, spec.MaxDot
	if maxDot <= minDot {
		minDot, maxDot = defaultMinDot, defaultMaxDot
	}
	lo, hi := spec.SizeMin, spec.SizeMax
	if hi <= lo {
		lo, hi = math.MaxFloat64, -math.MaxFloat64
		for _, p := range pts {
			if p.Size <= 0 {
				continue
			}
			if p.Size < lo {
				lo = p.Size
			}
			if p.Size > hi {
				hi = p.Size
			}
		}
		if hi <= lo {
			return func(float64) float64 { return dotWidth(spec) }
		}
	}
	sqLo, sqHi := math.Sqrt(lo), math.Sqrt(hi)
	return func(v float64) float64 {
		if v <= 0 {
			return dotWidth(spec)
		}
		u := (math.Sqrt(v) - sqLo) / (sqHi - sqLo)
		if u < 0 {
			u = 0
		}
		if u > 1 {
			u = 1
		}
		return minDot + u*(maxDot-minDot)
	}
}

func dotWidth(spec ChartSpec) float64 {
	if spec.DotWidth > 0 {
		return spec.DotWidth
	}
	return defaultDotWidth
}

func alphaByte(a float64) uint8 {
	if a <= 0 || a >= 1 {
		return 255
	}
	return uint8(math.Round(a * 255))
}

func categoriesOf(pts []Point) []string {
	seen := map[string]bool{}
	for _, p := range pts {
		seen[p.Category] = true
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

func pointsIn(pts []Point, cat string) []Point {
	out := []Point{}
	for _, p := range pts {
		if p.Category == cat {
			out = append(out, p)
		}
	}
	return out
}

// axisRanges resolves the chart ranges and ticks from the spec, falling
// back to nice bounds around the data when no fixed limits are set.
func axisRanges(spec ChartSpec, pts []Point) (xr, yr *chart.ContinuousRange, xTicks, yTicks []chart.Tick) {
	var xMin, xMax, yMin, yMax float64
	if spec.fixedX() {
		xMin, xMax = spec.XMin, spec.XMax
		if spec.LogX {
			xMin, xMax = math.Log10(xMin), math.Log10(xMax)
		}
	} else {
		lo, hi := math.MaxFloat64, -math.MaxFloat64
		for _, p := range pts {
			if p.X < lo {
				lo = p.X
			}
			if p.X > hi {
				hi = p.X
			}
		}
		xMin, xMax = niceAxisBounds(lo, hi)
	}
	if spec.fixedY() {
		yMin, yMax = spec.YMin, spec.YMax
	} else {
		lo, hi := math.MaxFloat64, -math.MaxFloat64
		for _, p := range pts {
			if p.Y < lo {
				lo = p.Y
			}
			if p.Y > hi {
				hi = p.Y
			}
		}
		yMin, yMax = niceAxisBounds(lo, hi)
	}
	if spec.LogX {
		xTicks = logTicks(xMin, xMax)
	} else {
		xTicks = niceTicks(xMin, xMax, 7)
	}
	yTicks = niceTicks(yMin, yMax, 6)
	return &chart.ContinuousRange{Min: xMin, Max: xMax}, &chart.ContinuousRange{Min: yMin, Max: yMax}, xTicks, yTicks
}

// renderChart assembles the chart object, renders it to PNG and stamps the
// frame label.
func renderChart(spec ChartSpec, pts []Point, series []chart.Series, legend bool) (image.Image, error) {
	xr, yr, xTicks, yTicks := axisRanges(spec, pts)
	padBottom := 24
	if legend {
		padBottom = 48
	}
	ch := chart.Chart{
		Title:      spec.Title,
		Width:      spec.width(),
		Height:     spec.height(),
		Background: chart.Style{Padding: chart.Box{Top: 14, Left: 16, Right: 12, Bottom: padBottom}},
		XAxis:      chart.XAxis{Name: spec.XTitle, Range: xr, Ticks: xTicks},
		YAxis:      chart.YAxis{Name: spec.YTitle, Range: yr, Ticks: yTicks},
		Series:     series,
	}
	if legend {
		ch.Elements = []chart.Renderable{chart.Legend(&ch)}
	}
	var buf bytes.Buffer
	if err := ch.Render(chart.PNG, &buf); err != nil {
		return nil, errors.Wrap(err, "rendering chart")
	}
	img, err := png.Decode(&buf)
	if err != nil {
		return nil, errors.Wrap(err, "decoding rendered chart")
	}
	return drawLabel(img, spec.Label), nil
}
