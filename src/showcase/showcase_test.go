package showcase

import (
	"fmt"
	"image/gif"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
)

func writeDataDir(t *testing.T, files map[string]string) string {
	t.Helper()
	dir := t.TempDir()
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

// End-to-end cumulative loop: a 3-row table over {2016,2017,2018} must
// yield exactly three frames named for the years, drawn from cumulative
// subsets of size 1, 2 and 3.
func TestTemperatureEndToEnd(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{
		TemperatureFile: "year,value\n2016,0.1\n2017,0.2\n2018,0.3\n",
	})
	outDir := filepath.Join(t.TempDir(), "out")

	m := NewTemperatureMain()
	m.DataDir = dataDir
	m.OutDir = outDir
	m.Width, m.Height = 400, 300
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}

	frameDir := filepath.Join(outDir, "temperature")
	entries, err := os.ReadDir(frameDir)
	if err != nil {
		t.Fatalf("read frame dir: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected exactly 3 frame files, got %d", len(entries))
	}
	for _, year := range []int{2016, 2017, 2018} {
		path := filepath.Join(frameDir, fmt.Sprintf("%d.png", year))
		f, err := os.Open(path)
		if err != nil {
			t.Fatalf("missing frame for %d: %v", year, err)
		}
		if _, err := png.Decode(f); err != nil {
			t.Fatalf("frame %d not a valid png: %v", year, err)
		}
		f.Close()
	}

	gf, err := os.Open(filepath.Join(outDir, "temperature.gif"))
	if err != nil {
		t.Fatalf("missing gif: %v", err)
	}
	defer gf.Close()
	g, err := gif.DecodeAll(gf)
	if err != nil {
		t.Fatalf("decode gif: %v", err)
	}
	if len(g.Image) != 3 {
		t.Fatalf("gif should hold one frame per year, got %d", len(g.Image))
	}

	// row-count property of the cumulative subsets
	rows, err := dataset.LoadAnomalies(filepath.Join(dataDir, TemperatureFile))
	if err != nil {
		t.Fatalf("reload: %v", err)
	}
	for i, year := range []int{2016, 2017, 2018} {
		if got := len(rows.UpTo(year)); got != i+1 {
			t.Fatalf("cutoff %d: expected %d rows got %d", year, i+1, got)
		}
	}
}

func TestTemperatureRerunSameNames(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{
		TemperatureFile: "year,value\n2016,0.1\n2017,0.2\n",
	})
	outDir := filepath.Join(t.TempDir(), "out")
	m := NewTemperatureMain()
	m.DataDir = dataDir
	m.OutDir = outDir
	m.Width, m.Height = 300, 200

	names := func() []string {
		entries, err := os.ReadDir(filepath.Join(outDir, "temperature"))
		if err != nil {
			t.Fatalf("read frame dir: %v", err)
		}
		out := []string{}
		for _, e := range entries {
			out = append(out, e.Name())
		}
		return out
	}
	if err := m.Run(); err != nil {
		t.Fatalf("first run: %v", err)
	}
	first := names()
	if err := m.Run(); err != nil {
		t.Fatalf("second run: %v", err)
	}
	second := names()
	if len(first) != len(second) {
		t.Fatalf("file sets differ: %v vs %v", first, second)
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("file name changed between runs: %q vs %q", first[i], second[i])
		}
	}
}

const tinyGapminder = `country,region,year,income,life_exp,population
sweden,europe,2016,45300,82.3,9900000
kenya,africa,2016,2900,66.1,48000000
sweden,europe,2017,46000,82.4,10000000
kenya,africa,2017,3000,66.4,49700000
`

func TestBubbleWritesPNG(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{GapminderFile: tinyGapminder})
	outDir := filepath.Join(t.TempDir(), "out")
	m := NewBubbleMain()
	m.DataDir = dataDir
	m.OutDir = outDir
	m.Width, m.Height = 400, 300
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(filepath.Join(outDir, "bubble_2016.png"))
	if err != nil {
		t.Fatalf("missing output: %v", err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestBubbleMissingYear(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{GapminderFile: tinyGapminder})
	m := NewBubbleMain()
	m.DataDir = dataDir
	m.OutDir = t.TempDir()
	m.Year = 1999
	if err := m.Run(); err == nil {
		t.Fatal("expected error for a year absent from the table")
	}
}

func TestGapminderAnimation(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{GapminderFile: tinyGapminder})
	outDir := filepath.Join(t.TempDir(), "out")
	m := NewGapminderMain()
	m.DataDir = dataDir
	m.OutDir = outDir
	m.Width, m.Height = 300, 200
	m.StepFrames = 2
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(filepath.Join(outDir, "gapminder.gif"))
	if err != nil {
		t.Fatalf("missing gif: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 2 years, 2 frames per step: (2-1)*2+1
	if len(g.Image) != 3 {
		t.Fatalf("expected 3 frames got %d", len(g.Image))
	}
}

func TestSimulationAnimation(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{
		SimulationsFile: `year,value,type
1880,-0.1,natural
1881,-0.15,natural
1880,0.2,human
1881,0.3,human
`,
	})
	outDir := filepath.Join(t.TempDir(), "out")
	m := NewSimulationMain()
	m.DataDir = dataDir
	m.OutDir = outDir
	m.Width, m.Height = 300, 200
	m.HoldFrames = 2
	m.TransitionFrames = 2
	m.Wrap = true
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
	f, err := os.Open(filepath.Join(outDir, "simulation.gif"))
	if err != nil {
		t.Fatalf("missing gif: %v", err)
	}
	defer f.Close()
	g, err := gif.DecodeAll(f)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	// 2 states held 2 frames each, 2 transition frames between and wrapping
	if len(g.Image) != 2*2+2*2 {
		t.Fatalf("expected 8 frames got %d", len(g.Image))
	}
}

func TestTablesSummary(t *testing.T) {
	dataDir := writeDataDir(t, map[string]string{
		GapminderFile:   tinyGapminder,
		TemperatureFile: "year,value\n2016,0.1\n",
		SimulationsFile: "year,value,type\n1880,-0.1,natural\n",
	})
	m := NewTablesMain()
	m.DataDir = dataDir
	if err := m.Run(); err != nil {
		t.Fatalf("run: %v", err)
	}
}
