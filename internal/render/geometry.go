package render

import (
	"math"

	"weather-gauges.klederson.com/internal/gauge"
)

// Angles are degrees, 0=up, increasing clockwise, matching SVG rotate().

// Polar returns the point at radius and angle from c.
func Polar(c gauge.Point, radius, deg float64) gauge.Point {
	rad := deg * math.Pi / 180
	return gauge.Point{
		X: c.X + radius*math.Sin(rad),
		Y: c.Y - radius*math.Cos(rad),
	}
}

// NormalizeDegrees wraps an angle to [0, 360).
func NormalizeDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a < 0 {
		a += 360
	}
	return a
}

// sector returns which of the 8 compass sectors an angle falls in.
func sector(deg float64) int {
	return int(math.Round(NormalizeDegrees(deg)/45)) % 8
}

// ringChar returns the outline character for a point on a circle at the
// given angle.
func ringChar(deg float64) rune {
	switch sector(deg) {
	case 0, 4:
		return '-'
	case 1, 5:
		return '\\'
	case 2, 6:
		return '|'
	default:
		return '/'
	}
}

// shaftChar returns the line character for a needle pointing at deg.
func shaftChar(deg float64) rune {
	switch sector(deg) {
	case 0, 4: // N, S
		return '|'
	case 2, 6: // E, W
		return '-'
	case 1, 5: // NE, SW
		return '/'
	default: // SE, NW
		return '\\'
	}
}

// arrowTip returns the arrowhead character for a needle pointing at deg.
func arrowTip(deg float64) rune {
	switch sector(deg) {
	case 0:
		return '^'
	case 2:
		return '>'
	case 4:
		return 'v'
	case 6:
		return '<'
	default:
		return shaftChar(deg)
	}
}
