package gauge

import (
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"time"

	"weather-gauges.klederson.com/internal/config"
	"weather-gauges.klederson.com/internal/scale"
	"weather-gauges.klederson.com/internal/ticks"
	"weather-gauges.klederson.com/internal/tween"
	"weather-gauges.klederson.com/internal/wind"
)

// ErrVariant is returned for a malformed variant.
var ErrVariant = errors.New("gauge: invalid variant")

// Element identifiers shared by every gauge.
const (
	NeedleID = "needle"
	ValueID  = "value"
)

// Role says how a series is drawn.
type Role int

const (
	Needle Role = iota
	Display
)

func (r Role) String() string {
	if r == Display {
		return "display"
	}
	return "needle"
}

// MarshalText encodes the role by name.
func (r Role) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// Series is one animated element driven by an Update argument.
type Series struct {
	ID     string     `yaml:"id"`
	Role   Role       `yaml:"role"`
	Input  int        `yaml:"input"`
	Interp tween.Kind `yaml:"interp"`

	// Derive turns the input into the series' own quantity. Nil is identity.
	Derive func(float64) float64 `yaml:"-"`
	// Format renders a display series. Nil shows a whole number.
	Format func(float64) string `yaml:"-"`
}

// Readout is a text recomputed on every update without animation.
type Readout struct {
	ID    string               `yaml:"id"`
	Input int                  `yaml:"input"`
	Text  func(float64) string `yaml:"-"`
}

// SampleFunc produces a random variant-shaped reading for demo mode.
type SampleFunc func(v Variant, r *rand.Rand) []float64

// Variant configures a generic gauge. Behavioural differences between gauge
// kinds live entirely in these values and the layout selected by Kind.
type Variant struct {
	Kind               Kind          `yaml:"kind"`
	MinValue           float64       `yaml:"min_value"`
	MaxValue           float64       `yaml:"max_value"`
	StartValue         float64       `yaml:"start_value"`
	ValueSpacing       float64       `yaml:"value_spacing"`
	TickStep           float64       `yaml:"tick_step"`
	Unit               string        `yaml:"unit"`
	ScaleType          string        `yaml:"scale_type"`
	StartAngle         float64       `yaml:"start_angle"`
	EndAngle           float64       `yaml:"end_angle"`
	TransitionDuration time.Duration `yaml:"-"`

	Auxiliary []Series   `yaml:"auxiliary,omitempty"`
	Readouts  []Readout  `yaml:"readouts,omitempty"`
	Sample    SampleFunc `yaml:"-"`
}

// Base returns the generic round gauge configuration.
func Base() Variant {
	return Variant{
		Kind:               Round,
		MinValue:           900,
		MaxValue:           1100,
		StartValue:         1000,
		ValueSpacing:       20,
		TickStep:           5,
		StartAngle:         -120,
		EndAngle:           120,
		TransitionDuration: config.TransitionDuration,
	}
}

// Defaults returns the built-in variant for a kind.
func Defaults(k Kind) Variant {
	v := Base()
	v.Kind = k

	switch k {
	case Pressure:
		v.Unit = "hPa"
		v.ScaleType = "Pressure"

	case TempDew:
		v.MinValue = -30
		v.MaxValue = 50
		v.StartValue = 0
		v.ValueSpacing = 10
		v.TickStep = 2
		v.Unit = "°C"
		v.ScaleType = "Temperature"
		v.Auxiliary = []Series{
			{ID: DewNeedleID, Role: Needle, Input: 1, Interp: tween.Angular},
			{ID: DewValueID, Role: Display, Input: 1, Interp: tween.Rounded},
		}
		v.Sample = sampleTempDew

	case Wind:
		v.MinValue = 0
		v.MaxValue = 360
		v.StartValue = 0
		v.ValueSpacing = 45
		v.TickStep = 5
		v.Unit = "kt"
		v.ScaleType = "Wind"
		v.StartAngle = 0
		v.EndAngle = 360
		v.Auxiliary = []Series{
			{ID: ArrowToID, Role: Needle, Input: 0, Interp: tween.Angular, Derive: wind.Opposite},
			{ID: SpeedMSID, Role: Display, Input: 1, Interp: tween.Continuous,
				Derive: wind.MetersPerSecond, Format: wind.FormatMetersPerSecond},
			{ID: SpeedKtID, Role: Display, Input: 1, Interp: tween.Rounded,
				Derive: wind.Knots, Format: wind.FormatKnots},
			{ID: SpeedKmhID, Role: Display, Input: 1, Interp: tween.Continuous,
				Derive: wind.KilometersPerHour, Format: wind.FormatKilometersPerHour},
		}
		v.Readouts = []Readout{
			{ID: DescriptionID, Input: 1, Text: wind.Description},
			{ID: IconID, Input: 1, Text: wind.IconKey},
		}
		v.Sample = sampleWind
	}
	return v
}

// MarshalYAML writes the variant with its duration in Go syntax.
func (v Variant) MarshalYAML() (interface{}, error) {
	type Plain Variant
	return struct {
		Plain              `yaml:",inline"`
		TransitionDuration string `yaml:"transition_duration"`
	}{Plain(v), v.TransitionDuration.String()}, nil
}

// Series returns the primary needle and display followed by the
// auxiliary series.
func (v Variant) Series() []Series {
	out := make([]Series, 0, 2+len(v.Auxiliary))
	out = append(out,
		Series{ID: NeedleID, Role: Needle, Input: 0, Interp: tween.Angular},
		Series{ID: ValueID, Role: Display, Input: 0, Interp: tween.Rounded},
	)
	return append(out, v.Auxiliary...)
}

// Inputs returns how many Update arguments the variant consumes.
func (v Variant) Inputs() int {
	n := 0
	for _, s := range v.Series() {
		n = max(n, s.Input+1)
	}
	for _, r := range v.Readouts {
		n = max(n, r.Input+1)
	}
	return n
}

// Scale returns the value-to-angle mapping of the variant.
func (v Variant) Scale() (scale.Linear, error) {
	return scale.New(v.MinValue, v.MaxValue, v.StartAngle, v.EndAngle)
}

// Validate checks everything construction depends on.
func (v Variant) Validate() error {
	if _, ok := layouts[v.Kind]; !ok {
		return fmt.Errorf("%w: no layout for kind %d", ErrVariant, int(v.Kind))
	}
	if _, err := v.Scale(); err != nil {
		return fmt.Errorf("%w: %w", ErrVariant, err)
	}
	if v.StartAngle == v.EndAngle {
		return fmt.Errorf("%w: empty angular sweep at %g", ErrVariant, v.StartAngle)
	}
	if err := ticks.CheckSpacing(v.TickStep, v.ValueSpacing); err != nil {
		return fmt.Errorf("%w: %w", ErrVariant, err)
	}
	if math.IsNaN(v.StartValue) || math.IsInf(v.StartValue, 0) {
		return fmt.Errorf("%w: start value %g", ErrVariant, v.StartValue)
	}
	if v.TransitionDuration < 0 {
		return fmt.Errorf("%w: negative transition duration %s", ErrVariant, v.TransitionDuration)
	}

	seen := make(map[string]bool)
	check := func(id string, input int) error {
		if id == "" {
			return fmt.Errorf("%w: element without id", ErrVariant)
		}
		if seen[id] {
			return fmt.Errorf("%w: duplicate element %q", ErrVariant, id)
		}
		if input < 0 {
			return fmt.Errorf("%w: element %q has negative input %d", ErrVariant, id, input)
		}
		seen[id] = true
		return nil
	}
	for _, s := range v.Series() {
		if err := check(s.ID, s.Input); err != nil {
			return err
		}
		if s.Role != Needle && s.Role != Display {
			return fmt.Errorf("%w: element %q has unknown role %d", ErrVariant, s.ID, int(s.Role))
		}
	}
	for _, r := range v.Readouts {
		if err := check(r.ID, r.Input); err != nil {
			return err
		}
		if r.Text == nil {
			return fmt.Errorf("%w: readout %q has no text function", ErrVariant, r.ID)
		}
	}
	return nil
}

// Apply returns a copy of v with the override's non-nil fields replaced.
func (v Variant) Apply(o config.GaugeOverride) Variant {
	if o.MinValue != nil {
		v.MinValue = *o.MinValue
	}
	if o.MaxValue != nil {
		v.MaxValue = *o.MaxValue
	}
	if o.StartValue != nil {
		v.StartValue = *o.StartValue
	}
	if o.ValueSpacing != nil {
		v.ValueSpacing = *o.ValueSpacing
	}
	if o.TickStep != nil {
		v.TickStep = *o.TickStep
	}
	if o.Unit != nil {
		v.Unit = *o.Unit
	}
	if o.ScaleType != nil {
		v.ScaleType = *o.ScaleType
	}
	if o.TransitionDuration != nil {
		v.TransitionDuration = *o.TransitionDuration
	}
	return v
}

// RandomSample draws a whole value uniformly from the domain.
func (v Variant) RandomSample(r *rand.Rand) float64 {
	return math.Trunc(r.Float64()*(v.MaxValue-v.MinValue) + v.MinValue)
}

// SampleReading draws a full reading, one value per input.
func (v Variant) SampleReading(r *rand.Rand) []float64 {
	if v.Sample != nil {
		return v.Sample(v, r)
	}
	return []float64{v.RandomSample(r)}
}

// The dew point never exceeds the air temperature.
func sampleTempDew(v Variant, r *rand.Rand) []float64 {
	temp := v.RandomSample(r)
	return []float64{temp, temp - math.Round(r.Float64()*10)}
}

func sampleWind(_ Variant, r *rand.Rand) []float64 {
	return []float64{float64(r.Intn(360)), float64(r.Intn(70))}
}

func wholeNumber(v float64) string {
	if v == 0 {
		v = 0
	}
	return strconv.FormatFloat(v, 'f', 0, 64)
}
