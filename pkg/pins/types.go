package pins

import "fmt"

// SignalType is the signal type token of a pin. Tokens are compared
// case-sensitively and unknown tokens are kept as-is.
type SignalType string

// Known signal types.
const (
	Digital SignalType = "DIGITAL"
	Analog  SignalType = "ANALOG"
)

// IsKnown indicates the token is one of the supported signal types.
func (t SignalType) IsKnown() bool {
	return t == Digital || t == Analog
}

// Range is the declared valid value range of a pin.
type Range struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

// Contains checks if v is within [Min, Max].
func (r Range) Contains(v float64) bool {
	return v >= r.Min && v <= r.Max
}

// String implements fmt.Stringer.
func (r Range) String() string {
	return fmt.Sprintf("[%g, %g]", r.Min, r.Max)
}

// Descriptor describes the physical channel behind a pin name.
type Descriptor struct {
	Name      string     `json:"name"`
	Address   byte       `json:"address"`
	Type      SignalType `json:"type"`
	Simulator string     `json:"simulator,omitempty"`
	Range     Range      `json:"range"`
}
