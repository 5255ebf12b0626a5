package render

import (
	"math"
	"testing"
)

func samplePoints() []Point {
	return []Point{
		{X: 1000, Y: 55, Size: 2e6, Category: "africa", Label: "a"},
		{X: 12000, Y: 74, Size: 40e6, Category: "asia", Label: "b"},
		{X: 45000, Y: 82, Size: 9e6, Category: "europe", Label: "c"},
	}
}

func fixedSpec() ChartSpec {
	return ChartSpec{
		XMin: 500, XMax: 60000,
		YMin: 50, YMax: 90,
		SizeMin: 1e6, SizeMax: 50e6,
		LogX:    true,
		Width:   400,
		Height:  300,
		Palette: "regions",
	}
}

// Axis ranges derived from a fixed spec must not depend on the points of
// the current frame; this is the precondition for stable animation.
func TestAxisRangesStableAcrossFrames(t *testing.T) {
	spec := fixedSpec()
	pts1, err := transformX(spec, samplePoints())
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	pts2, err := transformX(spec, samplePoints()[:1])
	if err != nil {
		t.Fatalf("transform: %v", err)
	}
	xr1, yr1, _, _ := axisRanges(spec, pts1)
	xr2, yr2, _, _ := axisRanges(spec, pts2)
	if xr1.Min != xr2.Min || xr1.Max != xr2.Max {
		t.Fatalf("x range varies with data: [%v,%v] vs [%v,%v]", xr1.Min, xr1.Max, xr2.Min, xr2.Max)
	}
	if yr1.Min != yr2.Min || yr1.Max != yr2.Max {
		t.Fatalf("y range varies with data: [%v,%v] vs [%v,%v]", yr1.Min, yr1.Max, yr2.Min, yr2.Max)
	}
	if got, want := xr1.Min, math.Log10(500); math.Abs(got-want) > 1e-9 {
		t.Fatalf("log x min: got %v want %v", got, want)
	}
	if yr1.Min != 50 || yr1.Max != 90 {
		t.Fatalf("y range not taken from spec: [%v,%v]", yr1.Min, yr1.Max)
	}
}

func TestScatterRendersRequestedSize(t *testing.T) {
	spec := fixedSpec()
	spec.Label = "2016"
	img, err := Scatter(spec, samplePoints())
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 400 || b.Dy() != 300 {
		t.Fatalf("unexpected image size %dx%d", b.Dx(), b.Dy())
	}
}

func TestScatterEmptyPoints(t *testing.T) {
	spec := ChartSpec{Width: 120, Height: 80}
	img, err := Scatter(spec, nil)
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	b := img.Bounds()
	if b.Dx() != 120 || b.Dy() != 80 {
		t.Fatalf("unexpected blank size %dx%d", b.Dx(), b.Dy())
	}
}

func TestScatterRejectsNonPositiveLogX(t *testing.T) {
	spec := fixedSpec()
	_, err := Scatter(spec, []Point{{X: 0, Y: 1, Category: "asia", Label: "zero"}})
	if err == nil {
		t.Fatal("expected error for x=0 on log scale")
	}
}

func TestLinesRendersAndMarksHead(t *testing.T) {
	spec := ChartSpec{
		XMin: 1880, XMax: 2016,
		YMin: -1, YMax: 1.5,
		Width: 400, Height: 300,
		Palette: "observed",
	}
	img, err := Lines(spec, []LineSeries{{
		Name:     "observed",
		Points:   []Point{{X: 1880, Y: -0.2}, {X: 1881, Y: -0.1}, {X: 1882, Y: 0.0}},
		MarkLast: true,
	}})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if img.Bounds().Dx() != 400 {
		t.Fatalf("unexpected width %d", img.Bounds().Dx())
	}
}

func TestSizeScaleFixedDomain(t *testing.T) {
	spec := ChartSpec{SizeMin: 1e6, SizeMax: 100e6, MinDot: 4, MaxDot: 30}
	scale := sizeScale(spec, nil)
	if got := scale(1e6); math.Abs(got-4) > 1e-9 {
		t.Fatalf("min size: got %v want 4", got)
	}
	if got := scale(100e6); math.Abs(got-30) > 1e-9 {
		t.Fatalf("max size: got %v want 30", got)
	}
	mid := scale(25e6)
	if mid <= 4 || mid >= 30 {
		t.Fatalf("mid size out of range: %v", mid)
	}
	// values beyond the domain clamp rather than extrapolate
	if got := scale(500e6); got != 30 {
		t.Fatalf("expected clamp to 30, got %v", got)
	}
}

func TestCategoryColorsStableAcrossSubsets(t *testing.T) {
	full := CategoryColors("regions", []string{"africa", "americas", "asia", "europe"})
	sub := CategoryColors("regions", []string{"asia", "europe"})
	if full["asia"] != sub["asia"] || full["europe"] != sub["europe"] {
		t.Fatal("palette colors change when the category subset changes")
	}
}

func TestCategoryColorsFallback(t *testing.T) {
	got := CategoryColors("regions", []string{"oceania", "antarctica"})
	if len(got) != 2 {
		t.Fatalf("expected 2 colors, got %d", len(got))
	}
	if got["oceania"] == got["antarctica"] {
		t.Fatal("fallback colors should differ")
	}
}
