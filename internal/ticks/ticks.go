// Package ticks lays out the graduation marks of a gauge scale.
package ticks

import (
	"errors"
	"fmt"
	"math"
	"strconv"

	"weather-gauges.klederson.com/internal/scale"
)

// ErrSpacing is returned when the label spacing is not a whole multiple of
// the tick step.
var ErrSpacing = errors.New("ticks: value spacing must be a positive integer multiple of tick step")

const eps = 1e-9

// Tick is one graduation mark. Major ticks carry a label.
type Tick struct {
	Value float64
	Angle float64 // Degrees, 0=up, clockwise
	Label string
	Major bool
}

// LabelFunc produces the label of a major tick.
type LabelFunc func(v float64) string

// Numeric labels a tick with its value, without trailing zeros.
func Numeric(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// Layout produces the ordered ticks from the scale's domain minimum to its
// maximum inclusive, stepped by tickStep. A tick is major iff its value is a
// multiple of valueSpacing. A nil label uses Numeric.
//
// When the scale sweeps a full circle the closing tick lands on the first one
// and is left out.
func Layout(s scale.Linear, tickStep, valueSpacing float64, label LabelFunc) ([]Tick, error) {
	if err := CheckSpacing(tickStep, valueSpacing); err != nil {
		return nil, err
	}
	if label == nil {
		label = Numeric
	}

	lo, hi := s.DomainMin, s.DomainMax
	dir := 1.0
	if hi < lo {
		dir = -1
	}
	n := int(math.Floor(math.Abs(hi-lo)/tickStep + eps))

	fullCircle := math.Abs(math.Abs(s.Sweep())-360) < eps
	if fullCircle && math.Abs(float64(n)*tickStep-math.Abs(hi-lo)) < eps {
		n--
	}

	out := make([]Tick, 0, n+1)
	for i := 0; i <= n; i++ {
		v := round(lo + dir*float64(i)*tickStep)
		t := Tick{Value: v, Angle: s.ToRange(v)}
		if isMultiple(v, valueSpacing) {
			t.Major = true
			t.Label = label(v)
		}
		out = append(out, t)
	}
	return out, nil
}

// CheckSpacing validates a tick step and label spacing pair.
func CheckSpacing(tickStep, valueSpacing float64) error {
	if !(tickStep > 0) || !(valueSpacing > 0) {
		return fmt.Errorf("%w: step=%g spacing=%g", ErrSpacing, tickStep, valueSpacing)
	}
	ratio := valueSpacing / tickStep
	if math.Abs(ratio-math.Round(ratio)) > eps*math.Max(1, ratio) {
		return fmt.Errorf("%w: step=%g spacing=%g", ErrSpacing, tickStep, valueSpacing)
	}
	return nil
}

func isMultiple(v, m float64) bool {
	r := math.Abs(math.Mod(v, m))
	tol := eps * math.Max(1, m)
	return r < tol || math.Abs(r-m) < tol
}

// round trims accumulated float error from stepped values.
func round(v float64) float64 {
	v = math.Round(v*1e9) / 1e9
	if v == 0 {
		return 0
	}
	return v
}
