package gauge

import "fmt"

// Kind tags a gauge variant.
type Kind int

const (
	Round Kind = iota
	TempDew
	Wind
	Pressure
)

// Kinds lists every variant tag in display order.
var Kinds = []Kind{Wind, TempDew, Pressure, Round}

func (k Kind) String() string {
	switch k {
	case Round:
		return "round"
	case TempDew:
		return "tempdew"
	case Wind:
		return "wind"
	case Pressure:
		return "pressure"
	default:
		return "unknown"
	}
}

// MarshalText encodes the kind by name.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// ParseKind returns the kind with the given name. "temperature" is accepted
// for TempDew.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "round":
		return Round, nil
	case "tempdew", "temperature", "temp":
		return TempDew, nil
	case "wind":
		return Wind, nil
	case "pressure":
		return Pressure, nil
	}
	return 0, fmt.Errorf("%w: unknown gauge kind %q", ErrVariant, s)
}
