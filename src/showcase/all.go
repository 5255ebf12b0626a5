package showcase

import "github.com/pkg/errors"

// AllMain runs the whole tutorial: the static bubble chart, the gapminder
// animation, the cumulative temperature loop and the simulation
// state-transition, each with its own defaults.
type AllMain struct {
	DataDir string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
	OutDir  string `flag:"out-dir" help:"Directory where rendered files are written."`
}

// NewAllMain returns an AllMain with the default configuration.
func NewAllMain() *AllMain {
	return &AllMain{DataDir: "data", OutDir: "out"}
}

// Run executes the four renders in sequence, stopping on the first error.
func (m *AllMain) Run() error {
	bubble := NewBubbleMain()
	bubble.DataDir, bubble.OutDir = m.DataDir, m.OutDir
	if err := bubble.Run(); err != nil {
		return errors.Wrap(err, "bubble")
	}
	gap := NewGapminderMain()
	gap.DataDir, gap.OutDir = m.DataDir, m.OutDir
	if err := gap.Run(); err != nil {
		return errors.Wrap(err, "gapminder")
	}
	temp := NewTemperatureMain()
	temp.DataDir, temp.OutDir = m.DataDir, m.OutDir
	if err := temp.Run(); err != nil {
		return errors.Wrap(err, "temperature")
	}
	sim := NewSimulationMain()
	sim.DataDir, sim.OutDir = m.DataDir, m.OutDir
	if err := sim.Run(); err != nil {
		return errors.Wrap(err, "simulation")
	}
	return nil
}
