package animate

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
)

// FrameRenderer renders the chart for one time step. For cumulative
// animations it is expected to draw every row whose time field is <= step.
type FrameRenderer func(step int) (image.Image, error)

// CumulativeConfig controls the per-step export loop.
type CumulativeConfig struct {
	// From..To is the inclusive, contiguous range of time steps.
	From, To int
	// Parallel is the number of concurrent renders; values below 2 keep
	// the loop sequential. Output names and contents do not depend on it.
	Parallel int
}

// ExportCumulativeFrames renders one image per time step and writes it to
// <dir>/<step>.png. It returns the written paths and the rendered images in
// step order, so callers can assemble a GIF without rendering twice.
// Re-running with identical input yields the identical set of file names.
func ExportCumulativeFrames(dir string, cfg CumulativeConfig, renderFrame FrameRenderer) ([]string, []image.Image, error) {
	if cfg.To < cfg.From {
		return nil, nil, errors.Errorf("invalid step range [%d,%d]", cfg.From, cfg.To)
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, errors.Wrap(err, "creating frame dir")
	}
	defer logging.TimeTrack(time.Now(), fmt.Sprintf("export frames [%d,%d]", cfg.From, cfg.To))

	n := cfg.To - cfg.From + 1
	paths := make([]string, n)
	images := make([]image.Image, n)
	errs := make([]error, n)

	renderOne := func(i int) {
		step := cfg.From + i
		img, err := renderFrame(step)
		if err != nil {
			errs[i] = errors.Wrapf(err, "rendering step %d", step)
			return
		}
		path := filepath.Join(dir, fmt.Sprintf("%d.png", step))
		if err := writePNG(path, img); err != nil {
			errs[i] = err
			return
		}
		logging.Debugf("wrote frame %s", path)
		paths[i] = path
		images[i] = img
	}

	if cfg.Parallel > 1 {
		sem := make(chan struct{}, cfg.Parallel)
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			sem <- struct{}{}
			go func(i int) {
				defer wg.Done()
				defer func() { <-sem }()
				renderOne(i)
			}(i)
		}
		wg.Wait()
	} else {
		for i := 0; i < n; i++ {
			renderOne(i)
		}
	}

	for _, err := range errs {
		if err != nil {
			return nil, nil, err
		}
	}
	return paths, images, nil
}

func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating frame file")
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	return errors.Wrapf(f.Close(), "closing %s", path)
}
