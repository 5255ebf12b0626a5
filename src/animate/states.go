package animate

import "github.com/NickKoleits/gg-animate-tutorial/src/render"

// State is one categorical grouping of the data, e.g. all simulated values
// of the "natural" scenario. Points are matched across states by Label.
type State struct {
	Name   string
	Points []render.Point
}

// StateConfig controls the discrete state-transition mode.
type StateConfig struct {
	// HoldFrames frames are emitted per state before transitioning.
	HoldFrames int
	// TransitionFrames frames interpolate between consecutive states.
	TransitionFrames int
	// Easing shapes the transition; nil means linear.
	Easing Easing
	// Wrap adds a transition from the last state back to the first so the
	// looping GIF is seamless.
	Wrap bool
}

// States emits hold frames for each state and eased interpolation frames
// between consecutive states. Frame counts: n*HoldFrames plus
// TransitionFrames per transition (n-1 transitions, n with Wrap).
func States(states []State, cfg StateConfig) []Frame {
	if len(states) == 0 {
		return nil
	}
	hold := cfg.HoldFrames
	if hold < 1 {
		hold = 1
	}
	trans := cfg.TransitionFrames
	if trans < 0 {
		trans = 0
	}
	ease := cfg.Easing
	if ease == nil {
		ease = Linear
	}

	frames := []Frame{}
	emitHold := func(s State) {
		for i := 0; i < hold; i++ {
			frames = append(frames, Frame{Label: s.Name, Points: append([]render.Point(nil), s.Points...)})
		}
	}
	emitTransition := func(a, b State) {
		bByLabel := make(map[string]render.Point, len(b.Points))
		for _, p := range b.Points {
			bByLabel[p.Label] = p
		}
		for s := 1; s <= trans; s++ {
			u := ease(float64(s) / float64(trans+1))
			pts := make([]render.Point, 0, len(a.Points))
			for _, p := range a.Points {
				q, ok := bByLabel[p.Label]
				if !ok {
					continue
				}
				pts = append(pts, lerpPoint(p, q, u))
			}
			// label switches at the halfway mark
			label := a.Name
			if u >= 0.5 {
				label = b.Name
			}
			frames = append(frames, Frame{Label: label, Points: pts})
		}
	}

	for i, s := range states {
		emitHold(s)
		if i+1 < len(states) {
			emitTransition(s, states[i+1])
		}
	}
	if cfg.Wrap && len(states) > 1 {
		emitTransition(states[len(states)-1], states[0])
	}
	return frames
}
