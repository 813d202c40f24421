// Package scale maps gauge readings onto needle angles.
package scale

import (
	"errors"
	"fmt"
	"math"
)

// ErrZeroDomain is returned for a domain whose bounds coincide or are not finite.
var ErrZeroDomain = errors.New("scale: domain has zero width")

// Linear is an affine map from [DomainMin, DomainMax] onto
// [RangeMin, RangeMax]. Values outside the domain extrapolate.
type Linear struct {
	DomainMin float64
	DomainMax float64
	RangeMin  float64
	RangeMax  float64
}

// New creates a Linear scale. The domain must have a non-zero width.
func New(domainMin, domainMax, rangeMin, rangeMax float64) (Linear, error) {
	for _, v := range []float64{domainMin, domainMax, rangeMin, rangeMax} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return Linear{}, fmt.Errorf("%w: non-finite bound %v", ErrZeroDomain, v)
		}
	}
	if domainMin == domainMax {
		return Linear{}, fmt.Errorf("%w: [%g, %g]", ErrZeroDomain, domainMin, domainMax)
	}
	return Linear{
		DomainMin: domainMin,
		DomainMax: domainMax,
		RangeMin:  rangeMin,
		RangeMax:  rangeMax,
	}, nil
}

// ToRange maps a domain value to the range.
func (s Linear) ToRange(v float64) float64 {
	return s.RangeMin + (v-s.DomainMin)/(s.DomainMax-s.DomainMin)*(s.RangeMax-s.RangeMin)
}

// Invert maps a range value back to the domain. A scale with a zero-width
// range maps everything to DomainMin.
func (s Linear) Invert(r float64) float64 {
	if s.RangeMax == s.RangeMin {
		return s.DomainMin
	}
	return s.DomainMin + (r-s.RangeMin)/(s.RangeMax-s.RangeMin)*(s.DomainMax-s.DomainMin)
}

// Sweep returns the signed angular extent of the range.
func (s Linear) Sweep() float64 {
	return s.RangeMax - s.RangeMin
}

// InRange reports whether x lies between lo and hi. The bounds may be given
// in either order.
func InRange(x, lo, hi float64, inclusive bool) bool {
	if lo > hi {
		lo, hi = hi, lo
	}
	if inclusive {
		return x >= lo && x <= hi
	}
	return x > lo && x < hi
}
