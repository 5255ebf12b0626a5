package showcase

import (
	"fmt"
	"image"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/animate"
	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// TemperatureMain runs the cumulative export loop over the temperature
// anomaly table: one PNG per year showing every observation up to that
// year, plus the assembled GIF.
type TemperatureMain struct {
	DataDir  string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
	OutDir   string `flag:"out-dir" help:"Directory where rendered files are written."`
	Width    int    `help:"Chart width in pixels."`
	Height   int    `help:"Chart height in pixels."`
	FPS      int    `flag:"fps" help:"Animation frames per second."`
	Parallel int    `help:"Concurrent frame renders; 1 keeps the loop sequential."`
}

// NewTemperatureMain returns a TemperatureMain with the default
// configuration.
func NewTemperatureMain() *TemperatureMain {
	return &TemperatureMain{
		DataDir:  "data",
		OutDir:   "out",
		Width:    900,
		Height:   520,
		FPS:      25,
		Parallel: 1,
	}
}

// Run writes out/temperature/<year>.png for every year and
// out/temperature.gif.
func (m *TemperatureMain) Run() error {
	rows, err := dataset.LoadAnomalies(filepath.Join(m.DataDir, TemperatureFile))
	if err != nil {
		return errors.Wrap(err, "loading temperature table")
	}
	from, to, ok := rows.Span()
	if !ok {
		return errors.New("temperature table is empty")
	}
	spec := temperatureSpec(rows, m.Width, m.Height)

	frameDir := filepath.Join(m.OutDir, "temperature")
	renderFrame := func(step int) (image.Image, error) {
		frameSpec := spec
		frameSpec.Label = fmt.Sprintf("%d", step)
		return render.Lines(frameSpec, []render.LineSeries{{
			Name:     "observed",
			Points:   anomalyPoints(rows.UpTo(step)),
			MarkLast: true,
		}})
	}
	paths, images, err := animate.ExportCumulativeFrames(frameDir,
		animate.CumulativeConfig{From: from, To: to, Parallel: m.Parallel}, renderFrame)
	if err != nil {
		return err
	}
	logging.Infof("wrote %d frames under %s", len(paths), frameDir)

	out := filepath.Join(m.OutDir, "temperature.gif")
	return animate.WriteGIF(out, images, animate.GIFConfig{
		DelayCS:      animate.DelayForFPS(m.FPS),
		FinalDelayCS: 200,
	})
}

// temperatureSpec fixes the axes from the full table so every frame of the
// loop is directly comparable.
func temperatureSpec(rows dataset.Anomalies, width, height int) render.ChartSpec {
	spec := render.ChartSpec{
		Title:   "Global temperature anomaly",
		XTitle:  "Year",
		YTitle:  "Deviation from 1951-1980 mean (°C)",
		Width:   width,
		Height:  height,
		Palette: "observed",
	}
	minYear, maxYear, ok := rows.Span()
	if !ok {
		return spec
	}
	lo, hi, _ := rows.ValueRange()
	spec.XMin, spec.XMax = float64(minYear), float64(maxYear)
	spec.YMin, spec.YMax = lo-0.1, hi+0.1
	return spec
}
