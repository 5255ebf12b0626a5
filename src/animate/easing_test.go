package animate

import (
	"math"
	"testing"
)

const eps = 1e-9

func TestEasingEndpoints(t *testing.T) {
	for name, fn := range easings {
		if got := fn(0); math.Abs(got) > eps {
			t.Fatalf("%s(0) = %v, want 0", name, got)
		}
		if got := fn(1); math.Abs(got-1) > eps {
			t.Fatalf("%s(1) = %v, want 1", name, got)
		}
		mid := fn(0.5)
		if mid < 0 || mid > 1 {
			t.Fatalf("%s(0.5) = %v out of [0,1]", name, mid)
		}
	}
}

func TestEasingMonotonic(t *testing.T) {
	for name, fn := range easings {
		prev := fn(0)
		for i := 1; i <= 100; i++ {
			v := fn(float64(i) / 100)
			if v < prev-eps {
				t.Fatalf("%s not monotonic at %d: %v < %v", name, i, v, prev)
			}
			prev = v
		}
	}
}

func TestEasingByName(t *testing.T) {
	e, err := EasingByName("Cubic-In-Out")
	if err != nil {
		t.Fatalf("lookup: %v", err)
	}
	if got := e(1); math.Abs(got-1) > eps {
		t.Fatalf("resolved easing broken: %v", got)
	}
	if _, err := EasingByName("bounce"); err == nil {
		t.Fatal("expected error for unknown easing")
	}
}
