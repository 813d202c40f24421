// Package wind holds the pure conversions shown by the wind gauge.
package wind

import (
	"fmt"
	"math"
	"strconv"

	"weather-gauges.klederson.com/internal/scale"
)

// 1 knot = 1852 m/h = .51444 m/s = 1.852 km/h
const (
	metersPerNauticalMile = 1852.0
	secondsPerHour        = 3600.0
)

// MetersPerSecond converts knots to m/s.
func MetersPerSecond(knots float64) float64 {
	return knots * metersPerNauticalMile / secondsPerHour
}

// KilometersPerHour converts knots to km/h.
func KilometersPerHour(knots float64) float64 {
	return knots * 1.852
}

// Knots is the identity, for symmetry with the other conversions.
func Knots(knots float64) float64 {
	return knots
}

// FormatMetersPerSecond shows m/s with one decimal.
func FormatMetersPerSecond(v float64) string {
	return strconv.FormatFloat(v, 'f', 1, 64)
}

// FormatKnots shows whole knots.
func FormatKnots(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// FormatKilometersPerHour shows whole km/h.
func FormatKilometersPerHour(v float64) string {
	return strconv.FormatFloat(v, 'f', 0, 64)
}

// Opposite returns the direction the wind blows toward. No normalization is
// applied so the "to" arrow tweens in step with the "from" arrow.
func Opposite(direction float64) float64 {
	return direction + 180
}

// Band is an inclusive range of whole knots with its description.
type Band struct {
	Min, Max    float64
	Description string
}

// Bands is the ordered description table. The last band is open-ended.
var Bands = []Band{
	{0, 0, "Stille vind"},
	{1, 3, "Flau vind"},
	{4, 6, "Svak vind"},
	{7, 10, "Lett bris"},
	{11, 15, "Laber bris"},
	{16, 21, "Frisk bris"},
	{22, 27, "Liten kuling"},
	{28, 33, "Stiv kuling"},
	{34, 40, "Sterk kuling"},
	{41, 47, "Liten storm"},
	{48, 55, "Full storm"},
	{56, 63, "Sterk storm"},
	{64, math.Inf(1), "Orkan"},
}

// Description names the wind speed. The speed is rounded to whole knots
// first; negative speeds read as calm.
func Description(knots float64) string {
	k := math.Round(knots)
	if k < 0 || math.IsNaN(k) {
		k = 0
	}
	for _, b := range Bands {
		if scale.InRange(k, b.Min, b.Max, true) {
			return b.Description
		}
	}
	return Bands[len(Bands)-1].Description
}

// IconKey returns the two-digit wind-barb icon bucket for a speed:
// ceil(knots/5), never below 1. Whether an icon exists for the key is up to
// the asset resolver.
func IconKey(knots float64) string {
	b := math.Ceil(knots / 5)
	if b < 1 || math.IsNaN(b) {
		b = 1
	}
	return fmt.Sprintf("%02d", int(b))
}
