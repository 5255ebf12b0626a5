// Package showcase wires the tutorial's four renders together: each scene
// is a Main struct carrying its configuration (filled from flags by the
// chartanim command) with a Run method that loads the tables, builds the
// chart configuration and writes the output files.
package showcase

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// ensureDirAndWritePNG creates the parent directory if needed and writes
// the image as PNG.
func ensureDirAndWritePNG(path string, img image.Image) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating output dir")
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating output file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}

// Input file names expected under the data directory.
const (
	GapminderFile   = "gapminder.csv"
	TemperatureFile = "temperature.csv"
	SimulationsFile = "simulations.csv"
)

// indicatorPoints converts indicator rows into scatter marks: position from
// income and life expectancy, size from population, color from region, and
// the country name as the cross-frame identity.
func indicatorPoints(rows dataset.Indicators) []render.Point {
	pts := make([]render.Point, len(rows))
	for i, r := range rows {
		pts[i] = render.Point{
			X:        r.Income,
			Y:        r.LifeExp,
			Size:     r.Population,
			Category: r.Region,
			Label:    r.Country,
		}
	}
	return pts
}

func anomalyPoints(rows dataset.Anomalies) []render.Point {
	pts := make([]render.Point, len(rows))
	for i, r := range rows {
		pts[i] = render.Point{X: float64(r.Year), Y: r.Value, Label: fmt.Sprintf("%d", r.Year)}
	}
	return pts
}

func simulationPoints(rows dataset.Simulations) []render.Point {
	pts := make([]render.Point, len(rows))
	for i, r := range rows {
		pts[i] = render.Point{
			X:        float64(r.Year),
			Y:        r.Value,
			Category: r.Scenario,
			Label:    fmt.Sprintf("%d", r.Year),
		}
	}
	return pts
}

// bubbleSpec builds the bubble-chart configuration with axis limits and
// size domain fixed from the full table, the precondition for directly
// comparable animation frames.
func bubbleSpec(all dataset.Indicators, width, height int) render.ChartSpec {
	spec := render.ChartSpec{
		Title:   "Income vs life expectancy",
		XTitle:  "Income per person",
		YTitle:  "Life expectancy (years)",
		LogX:    true,
		Width:   width,
		Height:  height,
		Palette: "regions",
		MinDot:  4,
		MaxDot:  30,
	}
	if len(all) == 0 {
		return spec
	}
	first := all[0]
	spec.XMin, spec.XMax = first.Income, first.Income
	spec.YMin, spec.YMax = first.LifeExp, first.LifeExp
	spec.SizeMin, spec.SizeMax = first.Population, first.Population
	for _, r := range all[1:] {
		if r.Income < spec.XMin {
			spec.XMin = r.Income
		}
		if r.Income > spec.XMax {
			spec.XMax = r.Income
		}
		if r.LifeExp < spec.YMin {
			spec.YMin = r.LifeExp
		}
		if r.LifeExp > spec.YMax {
			spec.YMax = r.LifeExp
		}
		if r.Population < spec.SizeMin {
			spec.SizeMin = r.Population
		}
		if r.Population > spec.SizeMax {
			spec.SizeMax = r.Population
		}
	}
	// breathing room so extreme marks are not clipped at the border
	spec.YMin -= 2
	spec.YMax += 2
	spec.XMin *= 0.9
	spec.XMax *= 1.1
	return spec
}
