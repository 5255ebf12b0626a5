package animate

import (
	"fmt"

	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

// Frame is one resolved animation frame: a label (shown on the image) and
// the marks to draw.
type Frame struct {
	Label  string
	Points []render.Point
}

// Keyframe is the complete point set at one value of the numeric time
// field, e.g. all countries in one year. Points are matched across
// keyframes by their Label.
type Keyframe struct {
	T      int
	Points []render.Point
}

// TweenConfig controls the continuous animation mode.
type TweenConfig struct {
	// FramesPerStep is the number of frames emitted per adjacent keyframe
	// pair; values below 1 are treated as 1 (no interpolation).
	FramesPerStep int
	// Easing shapes the progress within each step; nil means linear.
	Easing Easing
	// FadeIn/FadeOut ramp the alpha of points that exist on only one side
	// of a step. When false such points appear/disappear abruptly.
	FadeIn  bool
	FadeOut bool
}

// Tween interpolates between consecutive keyframes. For k keyframes it
// emits (k-1)*FramesPerStep+1 frames: every step contributes FramesPerStep
// frames and the final keyframe is appended exactly. Point positions and
// sizes interpolate linearly under the easing curve; points present only in
// the earlier keyframe fade out, points present only in the later one fade
// in.
func Tween(keys []Keyframe, cfg TweenConfig) []Frame {
	if len(keys) == 0 {
		return nil
	}
	steps := cfg.FramesPerStep
	if steps < 1 {
		steps = 1
	}
	ease := cfg.Easing
	if ease == nil {
		ease = Linear
	}

	frames := make([]Frame, 0, (len(keys)-1)*steps+1)
	for i := 0; i+1 < len(keys); i++ {
		a, b := keys[i], keys[i+1]
		bByLabel := make(map[string]render.Point, len(b.Points))
		for _, p := range b.Points {
			bByLabel[p.Label] = p
		}
		aLabels := make(map[string]bool, len(a.Points))
		for _, p := range a.Points {
			aLabels[p.Label] = true
		}
		for s := 0; s < steps; s++ {
			u := ease(float64(s) / float64(steps))
			pts := make([]render.Point, 0, len(a.Points))
			for _, p := range a.Points {
				if q, ok := bByLabel[p.Label]; ok {
					pts = append(pts, lerpPoint(p, q, u))
					continue
				}
				// exiting
				if cfg.FadeOut {
					p.Alpha = 1 - u
					if p.Alpha <= 0 {
						continue
					}
				}
				pts = append(pts, p)
			}
			for _, q := range b.Points {
				if aLabels[q.Label] {
					continue
				}
				// entering
				if cfg.FadeIn {
					if u <= 0 {
						continue
					}
					q.Alpha = u
					pts = append(pts, q)
				}
			}
			frames = append(frames, Frame{Label: fmt.Sprintf("%d", a.T), Points: pts})
		}
	}
	last := keys[len(keys)-1]
	frames = append(frames, Frame{
		Label:  fmt.Sprintf("%d", last.T),
		Points: append([]render.Point(nil), last.Points...),
	})
	return frames
}

func lerpPoint(a, b render.Point, u float64) render.Point {
	out := a
	out.X = a.X + (b.X-a.X)*u
	out.Y = a.Y + (b.Y-a.Y)*u
	out.Size = a.Size + (b.Size-a.Size)*u
	return out
}
