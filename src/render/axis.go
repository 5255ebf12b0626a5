package render

import (
	"fmt"
	"math"

	chart "github.com/wcharczuk/go-chart/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var groupedPrinter = message.NewPrinter(language.English)

// FormatCount renders an integer with thousands separators.
func FormatCount(n int64) string {
	return groupedPrinter.Sprintf("%d", n)
}

// niceAxisBounds pads [min,max] by 5% and rounds outward to increments
// matching the span's order of magnitude.
func niceAxisBounds(min, max float64) (float64, float64) {
	if math.IsNaN(min) || math.IsNaN(max) {
		return min, max
	}
	if max <= min {
		max = min + 1
	}
	span := max - min
	pad := span * 0.05
	if pad <= 0 {
		pad = 1
	}
	a := min - pad
	b := max + pad
	mag := math.Pow(10, math.Floor(math.Log10(span)))
	if !math.IsInf(mag, 0) && mag > 0 {
		a = math.Floor(a/mag) * mag
		b = math.Ceil(b/mag) * mag
	}
	return a, b
}

// niceTicks generates around n tick marks between [min,max] using steps of
// 1, 2, 2.5 or 5 times a power of ten.
func niceTicks(min, max float64, n int) []chart.Tick {
	if n < 2 || math.IsNaN(min) || math.IsNaN(max) {
		return nil
	}
	if max <= min {
		max = min + 1
	}
	mag := math.Pow(10, math.Floor(math.Log10((max-min)/float64(n-1))))
	candidates := []float64{1, 2, 2.5, 5, 10}
	bestStep := mag
	bestScore := math.MaxFloat64
	for _, c := range candidates {
		step := c * mag
		count := math.Ceil((max - min) / step)
		if count < 2 {
			count = 2
		}
		score := math.Abs(count - float64(n))
		if score < bestScore {
			bestScore = score
			bestStep = step
		}
	}
	start := math.Floor(min/bestStep) * bestStep
	end := math.Ceil(max/bestStep) * bestStep
	ticks := []chart.Tick{}
	for v := start; v <= end+bestStep/2; v += bestStep {
		ticks = append(ticks, chart.Tick{Value: v, Label: formatTick(v)})
		if len(ticks) > n+2 {
			break
		}
	}
	return ticks
}

func formatTick(v float64) string {
	if v == 0 {
		return "0"
	}
	av := math.Abs(v)
	switch {
	case av >= 1000:
		return fmt.Sprintf("%.0f", v)
	case av >= 100:
		return fmt.Sprintf("%.0f", v)
	case av >= 10:
		return fmt.Sprintf("%.1f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}

// logTicks places ticks at every power of ten covering [min,max] on the
// already log10-transformed axis, labelled with the untransformed value.
func logTicks(logMin, logMax float64) []chart.Tick {
	start := math.Floor(logMin)
	end := math.Ceil(logMax)
	ticks := []chart.Tick{}
	for e := start; e <= end; e++ {
		ticks = append(ticks, chart.Tick{
			Value: e,
			Label: FormatCount(int64(math.Round(math.Pow(10, e)))),
		})
	}
	return ticks
}
