package animate

import (
	"image"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"math"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
)

// GIFConfig controls GIF timing. Delays are in GIF ticks (hundredths of a
// second), the encoder's native unit.
type GIFConfig struct {
	// DelayCS is the per-frame delay; values below 1 default to 10 (10
	// frames per second).
	DelayCS int
	// FinalDelayCS, when positive, holds the last frame longer before the
	// animation loops.
	FinalDelayCS int
}

// DelayForFPS converts frames-per-second into the nearest GIF tick delay.
func DelayForFPS(fps int) int {
	if fps < 1 {
		fps = 10
	}
	d := int(math.Round(100 / float64(fps)))
	if d < 1 {
		d = 1
	}
	return d
}

// WriteGIF quantizes the frames and writes a looping GIF. Charts are flat
// color so the stock web-safe palette with error diffusion reproduces them
// faithfully.
func WriteGIF(path string, frames []image.Image, cfg GIFConfig) error {
	if len(frames) == 0 {
		return errors.New("no frames to encode")
	}
	delay := cfg.DelayCS
	if delay < 1 {
		delay = 10
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return errors.Wrap(err, "creating output dir")
	}
	defer logging.TimeTrack(time.Now(), "encode gif")

	out := &gif.GIF{LoopCount: 0}
	for i, frame := range frames {
		b := frame.Bounds()
		pal := image.NewPaletted(image.Rect(0, 0, b.Dx(), b.Dy()), palette.WebSafe)
		draw.FloydSteinberg.Draw(pal, pal.Bounds(), frame, b.Min)
		d := delay
		if i == len(frames)-1 && cfg.FinalDelayCS > 0 {
			d = cfg.FinalDelayCS
		}
		out.Image = append(out.Image, pal)
		out.Delay = append(out.Delay, d)
	}

	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "creating gif file")
	}
	if err := gif.EncodeAll(f, out); err != nil {
		f.Close()
		return errors.Wrapf(err, "encoding %s", path)
	}
	logging.Infof("wrote %s (%d frames)", path, len(frames))
	return errors.Wrapf(f.Close(), "closing %s", path)
}
