package render

import (
	"math"
	"testing"
)

func TestNiceAxisBoundsContainData(t *testing.T) {
	cases := [][2]float64{
		{0, 100},
		{-0.3, 1.2},
		{55, 85},
		{1000, 120000},
	}
	for _, c := range cases {
		lo, hi := niceAxisBounds(c[0], c[1])
		if lo > c[0] || hi < c[1] {
			t.Fatalf("bounds [%v,%v] do not contain data [%v,%v]", lo, hi, c[0], c[1])
		}
	}
}

func TestNiceAxisBoundsDegenerate(t *testing.T) {
	lo, hi := niceAxisBounds(5, 5)
	if hi <= lo {
		t.Fatalf("expected widened range, got [%v,%v]", lo, hi)
	}
}

func TestNiceTicksCoverRange(t *testing.T) {
	ticks := niceTicks(0, 100, 6)
	if len(ticks) < 3 {
		t.Fatalf("too few ticks: %d", len(ticks))
	}
	if ticks[0].Value > 0 || ticks[len(ticks)-1].Value < 100 {
		t.Fatalf("ticks do not cover range: first=%v last=%v", ticks[0].Value, ticks[len(ticks)-1].Value)
	}
	for i := 1; i < len(ticks); i++ {
		if ticks[i].Value <= ticks[i-1].Value {
			t.Fatalf("ticks not increasing at %d: %v", i, ticks)
		}
	}
}

func TestLogTicksLabels(t *testing.T) {
	ticks := logTicks(math.Log10(500), math.Log10(60000))
	if len(ticks) == 0 {
		t.Fatal("no ticks")
	}
	var labels []string
	for _, tk := range ticks {
		labels = append(labels, tk.Label)
	}
	found := false
	for _, l := range labels {
		if l == "10,000" {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a grouped 10,000 label, got %v", labels)
	}
}

func TestFormatCount(t *testing.T) {
	if got := FormatCount(1234567); got != "1,234,567" {
		t.Fatalf("unexpected formatting: %q", got)
	}
}

func TestFormatTick(t *testing.T) {
	if got := formatTick(0); got != "0" {
		t.Fatalf("zero: %q", got)
	}
	if got := formatTick(2500); got != "2500" {
		t.Fatalf("large: %q", got)
	}
	if got := formatTick(0.25); got != "0.25" {
		t.Fatalf("small: %q", got)
	}
}
