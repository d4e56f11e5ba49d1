package hitl

import (
	"errors"
	"fmt"
)

var (
	// ErrClosed indicates the controller is closed.
	ErrClosed = errors.New("hitl: controller closed")
	// ErrNoPort indicates the controller was opened without a serial device.
	ErrNoPort = errors.New("hitl: no serial port")
)

// TransportError wraps a failure from the byte stream.
type TransportError struct {
	Op  string
	Err error
}

// Error implements error.
func (e *TransportError) Error() string {
	return fmt.Sprintf("hitl: %s: %v", e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *TransportError) Unwrap() error {
	return e.Err
}

// OutOfRangeError indicates the value is outside the declared range of the
// pin, reported only when range enforcement is enabled.
type OutOfRangeError struct {
	Pin   string
	Value float64
	Min   float64
	Max   float64
}

// Error implements error.
func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("hitl: %s: value %g out of range [%g, %g]", e.Pin, e.Value, e.Min, e.Max)
}

// UnknownAddressError indicates a frame is received for an address not in
// the registry.
type UnknownAddressError struct {
	Address byte
}

// Error implements error.
func (e *UnknownAddressError) Error() string {
	return fmt.Sprintf("hitl: unknown address %d", e.Address)
}
