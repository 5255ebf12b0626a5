package showcase

import (
	"path/filepath"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// TablesMain loads the three tables and logs a summary of each, a quick
// sanity check of the data directory before rendering anything.
type TablesMain struct {
	DataDir string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
}

// NewTablesMain returns a TablesMain with the default configuration.
func NewTablesMain() *TablesMain {
	return &TablesMain{DataDir: "data"}
}

// Run logs row counts and year spans for all three tables.
func (m *TablesMain) Run() error {
	ind, err := dataset.LoadIndicators(filepath.Join(m.DataDir, GapminderFile))
	if err != nil {
		return errors.Wrap(err, "loading development table")
	}
	minY, maxY, _ := ind.Span()
	logging.Infof("development: %s rows, years %d-%d, regions %v",
		render.FormatCount(int64(len(ind))), minY, maxY, ind.Regions())

	anom, err := dataset.LoadAnomalies(filepath.Join(m.DataDir, TemperatureFile))
	if err != nil {
		return errors.Wrap(err, "loading temperature table")
	}
	minY, maxY, _ = anom.Span()
	logging.Infof("temperature: %s rows, years %d-%d",
		render.FormatCount(int64(len(anom))), minY, maxY)

	sims, err := dataset.LoadSimulations(filepath.Join(m.DataDir, SimulationsFile))
	if err != nil {
		return errors.Wrap(err, "loading simulations table")
	}
	logging.Infof("simulations: %s rows, scenarios %v",
		render.FormatCount(int64(len(sims))), sims.Scenarios())

	if logging.GetLevel() <= logging.LevelDebug {
		n := 3
		if len(ind) < n {
			n = len(ind)
		}
		logging.Debugf("first development rows:\n%s", spew.Sdump(ind[:n]))
	}
	return nil
}
