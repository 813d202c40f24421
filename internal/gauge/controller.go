// Package gauge builds circular instrument gauges from declarative variants
// and animates them between readings.
package gauge

import (
	"fmt"
	"math/rand"

	"weather-gauges.klederson.com/internal/scale"
	"weather-gauges.klederson.com/internal/tween"
)

type series struct {
	Series
	state *tween.State
}

type readout struct {
	Readout
	text string
}

// Controller owns the live state of one on-screen gauge. Update is the only
// mutation path; the shared scheduler applies the visual change afterwards.
type Controller struct {
	variant  Variant
	scale    scale.Linear
	geometry Geometry
	sched    *tween.Scheduler

	series   []*series
	byID     map[string]*series
	readouts []*readout
}

// New validates v, computes its scale and static geometry once and puts
// every element at rest at the variant's start value. Animations run on
// sched.
func New(v Variant, sched *tween.Scheduler) (*Controller, error) {
	if err := v.Validate(); err != nil {
		return nil, err
	}
	s, err := v.Scale()
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrVariant, err)
	}
	g, err := layouts[v.Kind](v, s)
	if err != nil {
		return nil, fmt.Errorf("%w: %s layout: %w", ErrVariant, v.Kind, err)
	}

	c := &Controller{
		variant:  v,
		scale:    s,
		geometry: g,
		sched:    sched,
		byID:     make(map[string]*series),
	}

	for _, sr := range v.Series() {
		switch sr.Role {
		case Needle:
			if _, ok := g.Needle(sr.ID); !ok {
				return nil, fmt.Errorf("%w: %s layout has no needle %q", ErrVariant, v.Kind, sr.ID)
			}
		case Display:
			if _, ok := g.Slot(sr.ID); !ok {
				return nil, fmt.Errorf("%w: %s layout has no display %q", ErrVariant, v.Kind, sr.ID)
			}
		}
		st := &series{Series: sr}
		st.state = tween.NewState(sr.ID, sr.Interp, v.TransitionDuration, c.target(sr, v.StartValue))
		c.series = append(c.series, st)
		c.byID[sr.ID] = st
	}

	for _, r := range v.Readouts {
		_, slot := g.Slot(r.ID)
		if !slot && !g.hasIcon(r.ID) {
			return nil, fmt.Errorf("%w: %s layout has nowhere to show %q", ErrVariant, v.Kind, r.ID)
		}
		c.readouts = append(c.readouts, &readout{Readout: r, text: r.Text(v.StartValue)})
	}
	return c, nil
}

func (g *Geometry) hasIcon(id string) bool {
	for _, ic := range g.Icons {
		if ic.ID == id {
			return true
		}
	}
	return false
}

// target is the value a series tweens toward for an input: derived, then
// mapped to an angle for needles.
func (c *Controller) target(sr Series, in float64) float64 {
	v := in
	if sr.Derive != nil {
		v = sr.Derive(v)
	}
	if sr.Role == Needle {
		v = c.scale.ToRange(v)
	}
	return v
}

// Update starts a tween on every series fed by the given values. Series
// whose input is missing are left alone. Values outside the domain are
// accepted and extrapolate past the printed scale.
func (c *Controller) Update(values ...float64) {
	for _, sr := range c.series {
		if sr.Input >= len(values) {
			continue
		}
		c.sched.Start(sr.state, c.target(sr.Series, values[sr.Input]))
	}
	for _, r := range c.readouts {
		if r.Input >= len(values) {
			continue
		}
		r.text = r.Text(values[r.Input])
	}
}

// Close stops every animation owned by the gauge.
func (c *Controller) Close() {
	for _, sr := range c.series {
		c.sched.Cancel(sr.state)
	}
}

// RandomSample draws a value uniformly from the gauge's domain.
func (c *Controller) RandomSample(r *rand.Rand) float64 {
	return c.variant.RandomSample(r)
}

// SampleReading draws a reading shaped for this gauge's Update.
func (c *Controller) SampleReading(r *rand.Rand) []float64 {
	return c.variant.SampleReading(r)
}

// Kind returns the variant tag.
func (c *Controller) Kind() Kind {
	return c.variant.Kind
}

// Variant returns the configuration the gauge was built from.
func (c *Controller) Variant() Variant {
	return c.variant
}

// ScaleOf returns the gauge's value-to-angle mapping.
func (c *Controller) ScaleOf() scale.Linear {
	return c.scale
}

// Geometry returns the static drawing. Callers must not modify it.
func (c *Controller) Geometry() *Geometry {
	return &c.geometry
}

// Needle returns the current angle of a needle.
func (c *Controller) Needle(id string) (float64, bool) {
	sr, ok := c.byID[id]
	if !ok || sr.Role != Needle {
		return 0, false
	}
	return sr.state.Displayed(), true
}

// Text returns the current text of a display or readout.
func (c *Controller) Text(id string) (string, bool) {
	if sr, ok := c.byID[id]; ok && sr.Role == Display {
		return sr.format(), true
	}
	for _, r := range c.readouts {
		if r.ID == id {
			return r.text, true
		}
	}
	return "", false
}

// Animating reports whether any element of the gauge is in flight.
func (c *Controller) Animating() bool {
	for _, sr := range c.series {
		if sr.state.Animating() {
			return true
		}
	}
	return false
}

func (s *series) format() string {
	v := s.state.Displayed()
	if s.Format != nil {
		return s.Format(v)
	}
	return wholeNumber(v)
}

// Frame is a read-only snapshot of a gauge for renderers.
type Frame struct {
	Kind     Kind
	Geometry *Geometry
	Needles  map[string]float64 // angle in degrees by needle id
	Texts    map[string]string  // text by slot or icon id
}

// Frame captures the gauge's current visual state.
func (c *Controller) Frame() Frame {
	f := Frame{
		Kind:     c.variant.Kind,
		Geometry: &c.geometry,
		Needles:  make(map[string]float64),
		Texts:    make(map[string]string),
	}
	for _, sr := range c.series {
		switch sr.Role {
		case Needle:
			f.Needles[sr.ID] = sr.state.Displayed()
		case Display:
			f.Texts[sr.ID] = sr.format()
		}
	}
	for _, r := range c.readouts {
		f.Texts[r.ID] = r.text
	}
	return f
}
