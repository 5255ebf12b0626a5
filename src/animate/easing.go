// Package animate produces animation frames from chart data: continuous
// tweens keyed by a numeric time field, discrete state transitions keyed by
// a categorical field, a cumulative per-step frame export loop, and GIF
// assembly of the resulting images.
package animate

import (
	"math"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// Easing maps linear progress t in [0,1] to visual progress in [0,1].
type Easing func(t float64) float64

func Linear(t float64) float64 { return t }

func QuadInOut(t float64) float64 {
	if t < 0.5 {
		return 2 * t * t
	}
	return 1 - math.Pow(-2*t+2, 2)/2
}

func CubicInOut(t float64) float64 {
	if t < 0.5 {
		return 4 * t * t * t
	}
	return 1 - math.Pow(-2*t+2, 3)/2
}

func SineInOut(t float64) float64 {
	return -(math.Cos(math.Pi*t) - 1) / 2
}

var easings = map[string]Easing{
	"linear":       Linear,
	"quad-in-out":  QuadInOut,
	"cubic-in-out": CubicInOut,
	"sine-in-out":  SineInOut,
}

// EasingByName resolves a named easing curve. The error lists the valid
// names so it can surface directly as a flag error.
func EasingByName(name string) (Easing, error) {
	e, ok := easings[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		names := make([]string, 0, len(easings))
		for n := range easings {
			names = append(names, n)
		}
		sort.Strings(names)
		return nil, errors.Errorf("unknown easing %q (valid: %s)", name, strings.Join(names, ", "))
	}
	return e, nil
}
