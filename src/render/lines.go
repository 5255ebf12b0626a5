package render

import (
	"image"
	"sort"

	chart "github.com/wcharczuk/go-chart/v2"
)

// LineSeries is one polyline on a line chart. Name selects the palette
// color and appears in the legend when more than one series is drawn.
type LineSeries struct {
	Name   string
	Points []Point
	// MarkLast draws a dot on the final point, marking the head of a
	// growing line in cumulative animations.
	MarkLast bool
	// Alpha in (0,1) fades the whole series; zero means opaque.
	Alpha float64
}

// Lines renders one or more line series with the spec's axes and palette.
func Lines(spec ChartSpec, series []LineSeries) (image.Image, error) {
	all := []Point{}
	for _, s := range series {
		all = append(all, s.Points...)
	}
	if len(all) == 0 {
		return drawLabel(blank(spec.width(), spec.height()), spec.Label), nil
	}

	names := make([]string, 0, len(series))
	for _, s := range series {
		names = append(names, s.Name)
	}
	colors := CategoryColors(spec.Palette, names)

	chSeries := make([]chart.Series, 0, len(series)*2)
	for _, s := range series {
		if len(s.Points) == 0 {
			continue
		}
		pts := append([]Point(nil), s.Points...)
		sort.Slice(pts, func(i, j int) bool { return pts[i].X < pts[j].X })
		xs := make([]float64, len(pts))
		ys := make([]float64, len(pts))
		for i, p := range pts {
			xs[i] = p.X
			ys[i] = p.Y
		}
		col := colors[s.Name].WithAlpha(alphaByte(s.Alpha))
		chSeries = append(chSeries, chart.ContinuousSeries{
			Name:    s.Name,
			XValues: xs,
			YValues: ys,
			Style:   chart.Style{StrokeWidth: 2.2, StrokeColor: col},
		})
		// The head marker is an unnamed series, so it is suppressed when a
		// legend will be drawn (unnamed entries would show up blank there).
		if s.MarkLast && len(series) == 1 {
			last := pts[len(pts)-1]
			chSeries = append(chSeries, chart.ContinuousSeries{
				XValues: []float64{last.X},
				YValues: []float64{last.Y},
				Style:   chart.Style{StrokeWidth: 0, DotWidth: 5, DotColor: col},
			})
		}
	}

	return renderChart(spec, all, chSeries, len(series) > 1)
}
