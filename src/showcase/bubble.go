package showcase

import (
	"fmt"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// BubbleMain renders the static bubble chart of one exact year.
type BubbleMain struct {
	DataDir string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
	OutDir  string `flag:"out-dir" help:"Directory where rendered files are written."`
	Year    int    `help:"Year to plot."`
	Width   int    `help:"Chart width in pixels."`
	Height  int    `help:"Chart height in pixels."`
}

// NewBubbleMain returns a BubbleMain with the default configuration.
func NewBubbleMain() *BubbleMain {
	return &BubbleMain{
		DataDir: "data",
		OutDir:  "out",
		Year:    2016,
		Width:   1000,
		Height:  600,
	}
}

// Run loads the development table filtered to the configured year and
// writes out/bubble_<year>.png.
func (m *BubbleMain) Run() error {
	path := filepath.Join(m.DataDir, GapminderFile)
	rows, err := dataset.LoadIndicatorsYear(path, m.Year)
	if err != nil {
		return errors.Wrap(err, "loading development table")
	}
	if len(rows) == 0 {
		return errors.Errorf("%s has no rows for year %d", path, m.Year)
	}

	spec := bubbleSpec(rows, m.Width, m.Height)
	spec.Title = fmt.Sprintf("Income vs life expectancy, %d", m.Year)
	img, err := render.Scatter(spec, indicatorPoints(rows))
	if err != nil {
		return errors.Wrap(err, "rendering bubble chart")
	}

	out := filepath.Join(m.OutDir, fmt.Sprintf("bubble_%d.png", m.Year))
	if err := ensureDirAndWritePNG(out, img); err != nil {
		return err
	}
	var totalPop float64
	for _, r := range rows {
		totalPop += r.Population
	}
	logging.Infof("wrote %s (%d countries, total population %s)",
		out, len(rows), render.FormatCount(int64(totalPop)))
	return nil
}
