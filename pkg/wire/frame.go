package wire

import (
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"strings"
)

// FrameSize is the size of a frame in bytes.
const FrameSize = 2

var (
	// ErrShortFrame indicates the stream ended in the middle of a frame.
	ErrShortFrame = errors.New("wire: short frame")
)

// Frame is one pin update on the wire.
type Frame [FrameSize]byte

// NewFrame creates a Frame.
func NewFrame(addr, value byte) Frame {
	return Frame{addr, value}
}

// Address returns the channel address.
func (f Frame) Address() byte {
	return f[0]
}

// Value returns the encoded value byte.
func (f Frame) Value() byte {
	return f[1]
}

// Bytes returns encoded bytes for sending.
func (f Frame) Bytes() []byte {
	return []byte{f[0], f[1]}
}

// WriteTo writes the frame in a single Write call.
func (f Frame) WriteTo(w io.Writer) (int64, error) {
	n, err := w.Write(f.Bytes())
	if err == nil && n < FrameSize {
		err = io.ErrShortWrite
	}
	return int64(n), err
}

// String implements fmt.Stringer.
func (f Frame) String() string {
	return fmt.Sprintf("%02x:%02x", f[0], f[1])
}

// ReadFrame reads exactly one frame.
func ReadFrame(r io.Reader) (f Frame, err error) {
	_, err = io.ReadFull(r, f[:])
	if err == io.ErrUnexpectedEOF {
		err = ErrShortFrame
	}
	return
}

// ParseFrame parses the text form produced by String, e.g. "0c:28".
// Separators are optional, so "0c28" is accepted too.
func ParseFrame(s string) (f Frame, err error) {
	b, err := hex.DecodeString(strings.Replace(strings.TrimSpace(s), ":", "", -1))
	if err != nil || len(b) != FrameSize {
		return f, fmt.Errorf("wire: invalid frame %q", s)
	}
	copy(f[:], b)
	return f, nil
}
