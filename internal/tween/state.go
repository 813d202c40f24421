package tween

import "time"

// State is the live value behind one animated element. At rest Current
// equals Target.
type State struct {
	ID       string
	Kind     Kind
	Duration time.Duration

	Current float64
	Target  float64

	tween   Tween
	start   time.Time
	pending bool // started but not yet anchored to a clock tick
	active  bool
}

// NewState creates a state at rest at v.
func NewState(id string, kind Kind, duration time.Duration, v float64) *State {
	return &State{
		ID:       id,
		Kind:     kind,
		Duration: duration,
		Current:  v,
		Target:   v,
	}
}

// Displayed returns the current value shaped by the state's kind.
func (s *State) Displayed() float64 {
	return s.Kind.Apply(s.Current)
}

// Animating reports whether a tween is in flight.
func (s *State) Animating() bool {
	return s.active
}

// retarget replaces any in-flight tween with one from the current value.
func (s *State) retarget(to float64) {
	s.tween = Tween{From: s.Current, To: to, Duration: s.Duration, Kind: s.Kind}
	s.Target = to
	s.pending = true
	s.active = true
}

// advance moves the state to its value at now and reports whether it is
// still animating.
func (s *State) advance(now time.Time) bool {
	if !s.active {
		return false
	}
	if s.pending {
		s.start = now
		s.pending = false
	}
	frac := s.tween.Fraction(now.Sub(s.start))
	s.Current = s.tween.Raw(frac)
	if frac >= 1 {
		s.Current = s.Target
		s.active = false
	}
	return s.active
}

func (s *State) settle() {
	s.Target = s.Current
	s.pending = false
	s.active = false
}
