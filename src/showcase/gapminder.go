package showcase

import (
	"image"
	"path/filepath"
	"time"

	"github.com/pkg/errors"

	"github.com/NickKoleits/gg-animate-tutorial/src/animate"
	"github.com/NickKoleits/gg-animate-tutorial/src/dataset"
	"github.com/NickKoleits/gg-animate-tutorial/src/logging"
	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// GapminderMain renders the continuous bubble-chart animation across all
// years of the development table.
type GapminderMain struct {
	DataDir    string `flag:"data-dir" help:"Directory holding the tutorial CSV tables."`
	OutDir     string `flag:"out-dir" help:"Directory where rendered files are written."`
	Width      int    `help:"Chart width in pixels."`
	Height     int    `help:"Chart height in pixels."`
	FPS        int    `flag:"fps" help:"Animation frames per second."`
	StepFrames int    `flag:"step-frames" help:"Interpolated frames between adjacent years."`
	Ease       string `help:"Easing curve: linear, quad-in-out, cubic-in-out or sine-in-out."`
}

// NewGapminderMain returns a GapminderMain with the default configuration.
// The original animation uses linear easing with fade in/out of countries
// entering or leaving the table.
func NewGapminderMain() *GapminderMain {
	return &GapminderMain{
		DataDir:    "data",
		OutDir:     "out",
		Width:      1000,
		Height:     600,
		FPS:        20,
		StepFrames: 6,
		Ease:       "linear",
	}
}

// Run writes out/gapminder.gif.
func (m *GapminderMain) Run() error {
	defer logging.TimeTrack(time.Now(), "gapminder animation")
	all, err := dataset.LoadIndicators(filepath.Join(m.DataDir, GapminderFile))
	if err != nil {
		return errors.Wrap(err, "loading development table")
	}
	years := all.Years()
	if len(years) == 0 {
		return errors.New("development table is empty")
	}

	ease, err := animate.EasingByName(m.Ease)
	if err != nil {
		return err
	}
	keys := make([]animate.Keyframe, len(years))
	for i, y := range years {
		keys[i] = animate.Keyframe{T: y, Points: indicatorPoints(all.YearIs(y))}
	}
	frames := animate.Tween(keys, animate.TweenConfig{
		FramesPerStep: m.StepFrames,
		Easing:        ease,
		FadeIn:        true,
		FadeOut:       true,
	})

	spec := bubbleSpec(all, m.Width, m.Height)
	gifFrames := make([]image.Image, 0, len(frames))
	for i, fr := range frames {
		frameSpec := spec
		frameSpec.Label = fr.Label
		img, err := render.Scatter(frameSpec, fr.Points)
		if err != nil {
			return errors.Wrapf(err, "rendering frame %d (%s)", i, fr.Label)
		}
		gifFrames = append(gifFrames, img)
	}

	out := filepath.Join(m.OutDir, "gapminder.gif")
	return animate.WriteGIF(out, gifFrames, animate.GIFConfig{
		DelayCS:      animate.DelayForFPS(m.FPS),
		FinalDelayCS: 150,
	})
}
