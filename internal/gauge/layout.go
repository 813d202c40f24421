package gauge

import (
	"fmt"
	"math"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/scale"
	"weather-gauges.klederson.com/internal/ticks"
)

// Variant-specific element identifiers.
const (
	DewNeedleID   = "dew-needle"
	DewValueID    = "dew-value"
	ArrowToID     = "arrow-to"
	SpeedMSID     = "speed-ms"
	SpeedKtID     = "speed-kt"
	SpeedKmhID    = "speed-kmh"
	DescriptionID = "description"
	IconID        = "icon"
)

// Point is a position in view box units.
type Point struct{ X, Y float64 }

// Shape names the outline of a needle.
type Shape int

const (
	BigHand Shape = iota // filled tapered polygon
	Hand                 // thin line
	Arrow                // short triangle near the rim
	Tail                 // hollow triangle near the rim
)

// NeedleShape is a needle drawn pointing up; it is rotated about the centre
// by the series' current angle.
type NeedleShape struct {
	ID     string
	Shape  Shape
	Points []Point
	Stroke string
	Fill   string
}

// Caption is static text.
type Caption struct {
	At   Point
	Size float64
	Text string
}

// Box is a rounded value background.
type Box struct {
	X, Y, W, H float64
}

// Slot is where an animated or recomputed text is drawn.
type Slot struct {
	ID   string
	At   Point
	Size float64
}

// Arc is a filled ring segment between two angles.
type Arc struct {
	Inner, Outer float64
	Start, End   float64
	Fill         string
}

// Icon is the placement of the externally resolved wind-speed symbol.
type Icon struct {
	ID string
	Box
}

// Geometry is the static drawing of a gauge, built once at construction.
type Geometry struct {
	Center   Point
	Radius   float64
	Ticks    []ticks.Tick
	Arcs     []Arc
	Boxes    []Box
	Captions []Caption
	Slots    []Slot
	Needles  []NeedleShape
	Icons    []Icon
	Button   bool
}

// Needle returns the shape for a needle id.
func (g *Geometry) Needle(id string) (NeedleShape, bool) {
	for _, n := range g.Needles {
		if n.ID == id {
			return n, true
		}
	}
	return NeedleShape{}, false
}

// Slot returns the text slot for an id.
func (g *Geometry) Slot(id string) (Slot, bool) {
	for _, s := range g.Slots {
		if s.ID == id {
			return s, true
		}
	}
	return Slot{}, false
}

type layoutFunc func(v Variant, s scale.Linear) (Geometry, error)

var layouts = map[Kind]layoutFunc{
	Round:    sweepLayout,
	Pressure: sweepLayout,
	TempDew:  tempDewLayout,
	Wind:     compassLayout,
}

func baseGeometry() Geometry {
	return Geometry{
		Center: Point{config.CenterX, config.CenterY},
		Radius: config.OutlineRadius,
	}
}

func bigHand() NeedleShape {
	return NeedleShape{
		ID:     NeedleID,
		Shape:  BigHand,
		Points: []Point{{96, 120}, {104, 120}, {100, 10}},
		Stroke: "black",
		Fill:   "red",
	}
}

// sweepLayout draws the partial-sweep dial with one needle and one value box.
func sweepLayout(v Variant, s scale.Linear) (Geometry, error) {
	g := baseGeometry()
	ts, err := ticks.Layout(s, v.TickStep, v.ValueSpacing, nil)
	if err != nil {
		return g, err
	}
	g.Ticks = ts

	const width = 65.0
	g.Boxes = append(g.Boxes, Box{X: config.CenterX - width/2, Y: 145, W: width, H: 25})
	g.Captions = append(g.Captions,
		Caption{At: Point{config.CenterX, 140}, Size: 12, Text: v.ScaleType},
		Caption{At: Point{config.CenterX, 183}, Size: 12, Text: v.Unit},
	)
	g.Slots = append(g.Slots, Slot{ID: ValueID, At: Point{config.CenterX, 165}, Size: 20})
	g.Needles = append(g.Needles, bigHand())
	g.Button = true
	return g, nil
}

// tempDewLayout adds the cold arc below freezing, a thin dew-point hand and
// two small displays.
func tempDewLayout(v Variant, s scale.Linear) (Geometry, error) {
	g := baseGeometry()
	ts, err := ticks.Layout(s, v.TickStep, v.ValueSpacing, nil)
	if err != nil {
		return g, err
	}
	g.Ticks = ts

	lo, hi := math.Min(v.MinValue, v.MaxValue), math.Max(v.MinValue, v.MaxValue)
	if lo < 0 {
		g.Arcs = append(g.Arcs, Arc{
			Inner: 73,
			Outer: 79,
			Start: s.ToRange(lo),
			End:   s.ToRange(math.Min(0, hi)),
			Fill:  "#03A9F4",
		})
	}

	const width = 35.0
	displays := []struct {
		id, caption string
		x           float64
	}{
		{ValueID, "Temp", 65},
		{DewValueID, "Dew", 105},
	}
	for _, d := range displays {
		mid := d.x + width/2
		g.Boxes = append(g.Boxes, Box{X: d.x, Y: 145, W: width, H: 23})
		g.Captions = append(g.Captions,
			Caption{At: Point{mid, 140}, Size: 12, Text: d.caption},
			Caption{At: Point{mid, 181}, Size: 12, Text: v.Unit},
		)
		g.Slots = append(g.Slots, Slot{ID: d.id, At: Point{mid, 162}, Size: 16})
	}

	g.Needles = append(g.Needles,
		NeedleShape{
			ID:     DewNeedleID,
			Shape:  Hand,
			Points: []Point{{config.CenterX, config.CenterY}, {100, 10}},
			Stroke: "rgba(255, 255, 255, .87)",
		},
		bigHand(),
	)
	g.Button = true
	return g, nil
}

var headings = []string{"N", "NE", "E", "SE", "S", "SW", "W", "NW"}

func headingLabel(v float64) string {
	i := int(math.Round(v/45)) % len(headings)
	if i < 0 {
		i += len(headings)
	}
	return headings[i]
}

// compassLayout draws a full compass rose with opposed arrows, three speed
// displays, the direction display, a description line and the wind icon.
func compassLayout(v Variant, s scale.Linear) (Geometry, error) {
	g := baseGeometry()
	if math.Abs(s.Sweep()) != 360 {
		return g, fmt.Errorf("compass needs a full 360 degree sweep, got %g", s.Sweep())
	}
	ts, err := ticks.Layout(s, v.TickStep, v.ValueSpacing, headingLabel)
	if err != nil {
		return g, err
	}
	g.Ticks = ts

	g.Captions = append(g.Captions, Caption{At: Point{config.CenterX, 60}, Size: 12, Text: v.ScaleType})
	g.Slots = append(g.Slots, Slot{ID: DescriptionID, At: Point{config.CenterX, 73}, Size: 10})

	const y = 90
	speeds := []struct {
		id, unit string
		x        float64
	}{
		{SpeedMSID, "m/s", 50},
		{SpeedKtID, v.Unit, 85},
		{SpeedKmhID, "km/h", 120},
	}
	for _, sp := range speeds {
		g.Boxes = append(g.Boxes, Box{X: sp.x, Y: y, W: 30, H: 20})
		g.Captions = append(g.Captions, Caption{At: Point{sp.x + 15, y - 5}, Size: 10, Text: sp.unit})
		g.Slots = append(g.Slots, Slot{ID: sp.id, At: Point{sp.x + 15, y + 14}, Size: 12})
	}

	g.Captions = append(g.Captions, Caption{At: Point{config.CenterX, 125}, Size: 10, Text: "Direction"})
	g.Boxes = append(g.Boxes, Box{X: 80, Y: 130, W: 40, H: 20})
	g.Slots = append(g.Slots, Slot{ID: ValueID, At: Point{config.CenterX, 144}, Size: 12})

	g.Icons = append(g.Icons, Icon{ID: IconID, Box: Box{X: 88, Y: 154, W: 24, H: 24}})

	g.Needles = append(g.Needles,
		NeedleShape{
			ID:     ArrowToID,
			Shape:  Tail,
			Points: []Point{{100, 15}, {106, 26}, {94, 26}},
			Stroke: "black",
			Fill:   "none",
		},
		NeedleShape{
			ID:     NeedleID,
			Shape:  Arrow,
			Points: []Point{{100, 15}, {110, 30}, {90, 30}},
			Stroke: "black",
			Fill:   "red",
		},
	)
	return g, nil
}
