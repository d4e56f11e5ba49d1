package mqtt

import "errors"

var (
	// ErrTimeout indicates the broker didn't respond in time.
	ErrTimeout = errors.New("mqtt: timeout")
)
