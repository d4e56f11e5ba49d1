package wire

import (
	"fmt"

	"github.com/robotalks/hitl.go/pkg/pins"
)

// UnsupportedSignalTypeError indicates the pin carries a signal type token
// the protocol doesn't know how to encode.
type UnsupportedSignalTypeError struct {
	Type pins.SignalType
}

// Error implements error.
func (e *UnsupportedSignalTypeError) Error() string {
	return fmt.Sprintf("wire: unsupported signal type: %q", string(e.Type))
}

// InvalidDigitalValueError indicates a digital value other than 0 or 1.
type InvalidDigitalValueError struct {
	Pin   string
	Value float64
}

// Error implements error.
func (e *InvalidDigitalValueError) Error() string {
	return fmt.Sprintf("wire: %s: invalid digital value %g, expect 0 or 1", e.Pin, e.Value)
}

// AnalogRangeError indicates the voltage can't be represented in 5.3 fixed point.
type AnalogRangeError struct {
	Pin   string
	Value float64
}

// Error implements error.
func (e *AnalogRangeError) Error() string {
	return fmt.Sprintf("wire: %s: analog value %gV out of range [0, %g]", e.Pin, e.Value, AnalogMax)
}

// AddressMismatchError indicates a frame is decoded with the descriptor of
// another channel.
type AddressMismatchError struct {
	Pin     string
	Expect  byte
	Address byte
}

// Error implements error.
func (e *AddressMismatchError) Error() string {
	return fmt.Sprintf("wire: %s: frame address %d, expect %d", e.Pin, e.Address, e.Expect)
}
