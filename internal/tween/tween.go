// Package tween interpolates animated values over time.
package tween

import (
	"math"
	"time"
)

// Kind selects how intermediate values are produced.
type Kind int

const (
	// Continuous interpolates in real-number space.
	Continuous Kind = iota
	// Rounded interpolates linearly, then rounds every sample to the
	// nearest integer so a readout only steps through adjacent digits.
	Rounded
	// Angular interpolates an angle in degrees without wraparound, so
	// 350 to 10 turns the long way round.
	Angular
)

func (k Kind) String() string {
	switch k {
	case Rounded:
		return "rounded"
	case Angular:
		return "angular"
	default:
		return "continuous"
	}
}

// Apply shapes a raw interpolated value according to the kind.
func (k Kind) Apply(v float64) float64 {
	if k == Rounded {
		return math.Round(v)
	}
	return v
}

// Tween is a single interpolation between two values.
type Tween struct {
	From     float64
	To       float64
	Duration time.Duration
	Kind     Kind
}

// Raw returns the unshaped value at the given fraction of the duration.
// Fractions at or past 1 return To exactly.
func (tw Tween) Raw(frac float64) float64 {
	if frac >= 1 {
		return tw.To
	}
	if frac <= 0 {
		return tw.From
	}
	return tw.From + (tw.To-tw.From)*frac
}

// Sample returns the displayed value at the given fraction.
func (tw Tween) Sample(frac float64) float64 {
	return tw.Kind.Apply(tw.Raw(frac))
}

// Fraction returns how far through the tween elapsed is, clamped to [0, 1].
func (tw Tween) Fraction(elapsed time.Duration) float64 {
	if tw.Duration <= 0 || elapsed >= tw.Duration {
		return 1
	}
	if elapsed <= 0 {
		return 0
	}
	return float64(elapsed) / float64(tw.Duration)
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
