package animate

import (
	"math"
	"testing"

	"github.com/NickKoleits/gg-animate-tutorial/src/render"
)

func twoStates() []State {
	return []State{
		{Name: "natural", Points: []render.Point{
			{X: 1880, Y: -0.1, Label: "1880"},
			{X: 1881, Y: -0.2, Label: "1881"},
		}},
		{Name: "human", Points: []render.Point{
			{X: 1880, Y: 0.3, Label: "1880"},
			{X: 1881, Y: 0.4, Label: "1881"},
		}},
	}
}

func TestStatesFrameCounts(t *testing.T) {
	frames := States(twoStates(), StateConfig{HoldFrames: 3, TransitionFrames: 2})
	if want := 2*3 + 2; len(frames) != want {
		t.Fatalf("expected %d frames got %d", want, len(frames))
	}
	wrapped := States(twoStates(), StateConfig{HoldFrames: 3, TransitionFrames: 2, Wrap: true})
	if want := 2*3 + 2*2; len(wrapped) != want {
		t.Fatalf("expected %d frames with wrap got %d", want, len(wrapped))
	}
}

func TestStatesHoldFramesAreExact(t *testing.T) {
	frames := States(twoStates(), StateConfig{HoldFrames: 2, TransitionFrames: 1})
	for i := 0; i < 2; i++ {
		if frames[i].Label != "natural" {
			t.Fatalf("frame %d label %q, want natural", i, frames[i].Label)
		}
		if frames[i].Points[0].Y != -0.1 {
			t.Fatalf("hold frame mutated: %+v", frames[i].Points[0])
		}
	}
	last := frames[len(frames)-1]
	if last.Label != "human" || last.Points[1].Y != 0.4 {
		t.Fatalf("unexpected final hold frame: %+v", last)
	}
}

func TestStatesTransitionInterpolates(t *testing.T) {
	// single transition frame lands at u = 0.5 with linear easing
	frames := States(twoStates(), StateConfig{HoldFrames: 1, TransitionFrames: 1})
	trans := frames[1]
	if got, want := trans.Points[0].Y, 0.1; math.Abs(got-want) > eps {
		t.Fatalf("transition y: got %v want %v", got, want)
	}
	// label has switched at the halfway mark
	if trans.Label != "human" {
		t.Fatalf("transition label: %q", trans.Label)
	}
}

func TestStatesEasedTransition(t *testing.T) {
	// three transition frames, cubic easing: first frame is below linear
	frames := States(twoStates(), StateConfig{HoldFrames: 1, TransitionFrames: 3, Easing: CubicInOut})
	first := frames[1].Points[0].Y
	linear := -0.1 + 0.4*0.25
	if first >= linear {
		t.Fatalf("cubic ease-in should lag linear: got %v, linear %v", first, linear)
	}
}

func TestStatesEmpty(t *testing.T) {
	if frames := States(nil, StateConfig{}); frames != nil {
		t.Fatalf("expected nil frames, got %d", len(frames))
	}
	one := States(twoStates()[:1], StateConfig{HoldFrames: 2, TransitionFrames: 5, Wrap: true})
	if len(one) != 2 {
		t.Fatalf("single state should only hold, got %d frames", len(one))
	}
}
