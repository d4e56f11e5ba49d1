// Package serial opens the serial link to the IO controller board.
package serial

import (
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	goserial "github.com/jacobsa/go-serial/serial"
)

// DefaultBaud is the baud rate the board firmware uses.
const DefaultBaud = 115200

var (
	// ErrWriteTimeout indicates a write didn't complete in time. The port is
	// closed when this happens as the link can no longer be trusted.
	ErrWriteTimeout = errors.New("serial: write timeout")
	// ErrClosed indicates the port is already closed.
	ErrClosed = errors.New("serial: port closed")
)

// Config is the serial port configuration.
type Config struct {
	// Device path, e.g. /dev/ttyACM0.
	Device string
	Baud   uint
	// WriteTimeout bounds a single Write, 0 means no timeout.
	WriteTimeout time.Duration
}

// DefaultConfig returns the configuration for the device with default settings.
func DefaultConfig(device string) *Config {
	return &Config{Device: device, Baud: DefaultBaud}
}

// Port wraps an opened stream with an optional write timeout.
type Port struct {
	WriteTimeout time.Duration

	rw        io.ReadWriteCloser
	closed    bool
	closeErr  error
	closeLock sync.Mutex
}

// Open opens the serial device in 8N1 mode.
func Open(conf *Config) (*Port, error) {
	baud := conf.Baud
	if baud == 0 {
		baud = DefaultBaud
	}
	rw, err := goserial.Open(goserial.OpenOptions{
		PortName:        conf.Device,
		BaudRate:        baud,
		DataBits:        8,
		StopBits:        1,
		ParityMode:      goserial.PARITY_NONE,
		MinimumReadSize: 1,
	})
	if err != nil {
		return nil, fmt.Errorf("open serial %q: %w", conf.Device, err)
	}
	return NewPort(rw, conf.WriteTimeout), nil
}

// NewPort wraps an existing stream.
func NewPort(rw io.ReadWriteCloser, writeTimeout time.Duration) *Port {
	return &Port{WriteTimeout: writeTimeout, rw: rw}
}

// Read implements io.Reader.
func (p *Port) Read(b []byte) (int, error) {
	return p.rw.Read(b)
}

// Write implements io.Writer.
func (p *Port) Write(b []byte) (int, error) {
	if p.isClosed() {
		return 0, ErrClosed
	}
	if p.WriteTimeout <= 0 {
		return p.rw.Write(b)
	}
	type result struct {
		n   int
		err error
	}
	resultCh := make(chan result, 1)
	go func() {
		n, err := p.rw.Write(b)
		resultCh <- result{n: n, err: err}
	}()
	timer := time.NewTimer(p.WriteTimeout)
	defer timer.Stop()
	select {
	case r := <-resultCh:
		return r.n, r.err
	case <-timer.C:
		p.Close()
		return 0, ErrWriteTimeout
	}
}

// Close implements io.Closer. Only the first call closes the stream.
func (p *Port) Close() error {
	p.closeLock.Lock()
	defer p.closeLock.Unlock()
	if !p.closed {
		p.closed = true
		p.closeErr = p.rw.Close()
	}
	return p.closeErr
}

func (p *Port) isClosed() bool {
	p.closeLock.Lock()
	defer p.closeLock.Unlock()
	return p.closed
}
