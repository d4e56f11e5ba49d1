// Package hitl drives the IO controller board of a hardware-in-the-loop
// setup by pin name.
package hitl

import (
	"io"
	"sync"
	"sync/atomic"

	"github.com/golang/glog"

	"github.com/robotalks/hitl.go/pkg/pins"
	"github.com/robotalks/hitl.go/pkg/wire"
)

// Port is the byte stream to the board.
type Port interface {
	io.ReadWriteCloser
}

// Controller sets pin values on the board.
// It's safe for concurrent use; frames are never interleaved on the wire.
type Controller struct {
	// EnforceRange rejects values outside the declared range of a pin.
	EnforceRange bool

	registry *pins.Registry
	port     Port

	closed    int32
	closeOnce sync.Once
	closeErr  error
	writeLock sync.Mutex
	readLock  sync.Mutex
}

// New creates a Controller which owns port. port can be nil, in which case
// only Encode works.
func New(reg *pins.Registry, port Port) *Controller {
	return &Controller{registry: reg, port: port}
}

// Registry returns the pin registry.
func (c *Controller) Registry() *pins.Registry {
	return c.registry
}

// Encode resolves the pin and builds the frame without sending it.
func (c *Controller) Encode(name string, value float64) (wire.Frame, error) {
	d, err := c.registry.Lookup(name)
	if err != nil {
		return wire.Frame{}, err
	}
	if c.EnforceRange && !d.Range.Contains(value) {
		return wire.Frame{}, &OutOfRangeError{Pin: name, Value: value, Min: d.Range.Min, Max: d.Range.Max}
	}
	return wire.Encode(d, value)
}

// SetValue sets the pin to value. Digital pins take 0 or 1, analog pins
// take volts. Nothing is written if the pin or value is invalid.
func (c *Controller) SetValue(name string, value float64) error {
	c.writeLock.Lock()
	defer c.writeLock.Unlock()
	if atomic.LoadInt32(&c.closed) != 0 {
		return ErrClosed
	}
	f, err := c.Encode(name, value)
	if err != nil {
		return err
	}
	if c.port == nil {
		return ErrNoPort
	}
	if _, err = f.WriteTo(c.port); err != nil {
		return &TransportError{Op: "write", Err: err}
	}
	glog.V(2).Infof("TX %s %s=%g", f, name, value)
	return nil
}

// ReadUpdate reads one frame from the board and decodes it.
func (c *Controller) ReadUpdate() (pins.Descriptor, float64, error) {
	c.readLock.Lock()
	defer c.readLock.Unlock()
	if atomic.LoadInt32(&c.closed) != 0 {
		return pins.Descriptor{}, 0, ErrClosed
	}
	if c.port == nil {
		return pins.Descriptor{}, 0, ErrNoPort
	}
	f, err := wire.ReadFrame(c.port)
	if err == io.EOF {
		return pins.Descriptor{}, 0, err
	}
	if err != nil {
		return pins.Descriptor{}, 0, &TransportError{Op: "read", Err: err}
	}
	glog.V(2).Infof("RX %s", f)
	d, ok := c.registry.ByAddress(f.Address())
	if !ok {
		return pins.Descriptor{}, 0, &UnknownAddressError{Address: f.Address()}
	}
	value, err := wire.Decode(d, f)
	return d, value, err
}

// Close releases the port. It's safe to call more than once.
func (c *Controller) Close() error {
	c.closeOnce.Do(func() {
		atomic.StoreInt32(&c.closed, 1)
		if c.port != nil {
			c.closeErr = c.port.Close()
		}
	})
	return c.closeErr
}
