package wire

import (
	"math"

	"github.com/robotalks/hitl.go/pkg/pins"
)

// Analog fixed point parameters.
const (
	// AnalogScale is 2^3 for the 3 fractional bits.
	AnalogScale = 8
	// AnalogResolution is the voltage of one LSB.
	AnalogResolution = 1.0 / AnalogScale
	// AnalogMax is the largest encodable voltage.
	AnalogMax = 255.0 / AnalogScale
	// AnalogUsableMax is the largest voltage the board is wired for.
	AnalogUsableMax = 16.875
)

// Encode builds the frame setting the channel of d to value.
func Encode(d pins.Descriptor, value float64) (Frame, error) {
	b, err := encodeValue(d, value)
	if err != nil {
		return Frame{}, err
	}
	return NewFrame(d.Address, b), nil
}

func encodeValue(d pins.Descriptor, value float64) (byte, error) {
	switch d.Type {
	case pins.Digital:
		if value != 0 && value != 1 {
			return 0, &InvalidDigitalValueError{Pin: d.Name, Value: value}
		}
		return byte(value), nil
	case pins.Analog:
		// NaN fails every comparison, so check the valid domain positively.
		if !(value >= 0) {
			return 0, &AnalogRangeError{Pin: d.Name, Value: value}
		}
		scaled := math.Round(value * AnalogScale)
		if scaled > math.MaxUint8 {
			return 0, &AnalogRangeError{Pin: d.Name, Value: value}
		}
		return byte(scaled), nil
	default:
		return 0, &UnsupportedSignalTypeError{Type: d.Type}
	}
}

// Decode converts a frame back to the value, the inverse of Encode.
func Decode(d pins.Descriptor, f Frame) (float64, error) {
	if f.Address() != d.Address {
		return 0, &AddressMismatchError{Pin: d.Name, Expect: d.Address, Address: f.Address()}
	}
	switch d.Type {
	case pins.Digital:
		if b := f.Value(); b > 1 {
			return 0, &InvalidDigitalValueError{Pin: d.Name, Value: float64(b)}
		}
		return float64(f.Value()), nil
	case pins.Analog:
		return float64(f.Value()) / AnalogScale, nil
	default:
		return 0, &UnsupportedSignalTypeError{Type: d.Type}
	}
}

// Quantize returns the voltage actually produced on an analog channel for
// the requested value.
func Quantize(value float64) float64 {
	return math.Round(value*AnalogScale) / AnalogScale
}
