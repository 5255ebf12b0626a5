package showcase

import (
	"image"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/animate"
	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// SimulationMain renders the discrete state-transition animation between
// the simulated scenarios (natural-only vs human-driven forcings).
type SimulationMain struct {
	DataDir          string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
	OutDir           string `flag:"out-dir" help:"Directory where rendered files are written."`
	Width            int    `help:"Chart width in pixels."`
	Height           int    `help:"Chart height in pixels."`
	FPS              int    `flag:"fps" help:"Animation frames per second."`
	HoldFrames       int    `flag:"hold-frames" help:"Frames each state is held before transitioning."`
	TransitionFrames int    `flag:"transition-frames" help:"Frames spent transitioning between states."`
	Ease             string `help:"Easing curve for the transition."`
	Wrap             bool   `help:"Transition from the last state back to the first for a seamless loop."`
}

// NewSimulationMain returns a SimulationMain with the default
// configuration: a second of hold, a second of cubic transition at 25 fps.
func NewSimulationMain() *SimulationMain {
	return &SimulationMain{
		DataDir:          "data",
		OutDir:           "out",
		Width:            900,
		Height:           520,
		FPS:              25,
		HoldFrames:       25,
		TransitionFrames: 25,
		Ease:             "cubic-in-out",
		Wrap:             true,
	}
}

// Run writes out/simulation.gif.
func (m *SimulationMain) Run() error {
	rows, err := dataset.LoadSimulations(filepath.Join(m.DataDir, SimulationsFile))
	if err != nil {
		return errors.Wrap(err, "loading simulations table")
	}
	scenarios := rows.Scenarios()
	if len(scenarios) == 0 {
		return errors.New("simulations table is empty")
	}
	ease, err := animate.EasingByName(m.Ease)
	if err != nil {
		return err
	}

	groups := rows.ByScenario()
	states := make([]animate.State, 0, len(scenarios))
	for _, name := range scenarios {
		states = append(states, animate.State{Name: name, Points: simulationPoints(groups[name])})
	}
	frames := animate.States(states, animate.StateConfig{
		HoldFrames:       m.HoldFrames,
		TransitionFrames: m.TransitionFrames,
		Easing:           ease,
		Wrap:             m.Wrap,
	})

	spec := simulationSpec(rows, m.Width, m.Height)
	gifFrames := make([]image.Image, 0, len(frames))
	for i, fr := range frames {
		frameSpec := spec
		frameSpec.Label = fr.Label
		img, err := render.Lines(frameSpec, []render.LineSeries{{
			Name:   fr.Label,
			Points: fr.Points,
		}})
		if err != nil {
			return errors.Wrapf(err, "rendering frame %d (%s)", i, fr.Label)
		}
		gifFrames = append(gifFrames, img)
	}

	out := filepath.Join(m.OutDir, "simulation.gif")
	return animate.WriteGIF(out, gifFrames, animate.GIFConfig{DelayCS: animate.DelayForFPS(m.FPS)})
}

// simulationSpec fixes the axes from all scenarios so the morphing line
// never rescales the chart.
func simulationSpec(rows dataset.Simulations, width, height int) render.ChartSpec {
	spec := render.ChartSpec{
		Title:   "Simulated global temperature, natural vs human forcings",
		XTitle:  "Year",
		YTitle:  "Simulated anomaly (°C)",
		Width:   width,
		Height:  height,
		Palette: "scenarios",
	}
	if len(rows) == 0 {
		return spec
	}
	minYear, maxYear := rows[0].Year, rows[0].Year
	for _, r := range rows[1:] {
		if r.Year < minYear {
			minYear = r.Year
		}
		if r.Year > maxYear {
			maxYear = r.Year
		}
	}
	lo, hi, _ := rows.ValueRange()
	spec.XMin, spec.XMax = float64(minYear), float64(maxYear)
	spec.YMin, spec.YMax = lo-0.1, hi+0.1
	return spec
}
