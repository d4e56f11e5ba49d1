package hitl

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/golang/glog"

	"github.com/robotalks/hitl.go/pkg/pins"
	"github.com/robotalks/hitl.go/pkg/serial"
)

// Config defines how to build a Controller.
type Config struct {
	// PinsFile is the path to the pin definition CSV.
	PinsFile string
	// SerialDevice is the serial device connected to the board.
	// Empty means no device, frames can only be encoded.
	SerialDevice string
	Baud         uint
	WriteTimeout time.Duration
	EnforceRange bool
	StrictPins   bool
}

var defaultConfig = Config{
	PinsFile: "pins.csv",
	Baud:     serial.DefaultBaud,
}

func init() {
	if val := os.Getenv("HITL_PINS"); val != "" {
		defaultConfig.PinsFile = val
	}
	if val := os.Getenv("HITL_SERIAL"); val != "" {
		defaultConfig.SerialDevice = val
	}
}

// SetupFlags sets command line flags.
func SetupFlags() {
	flag.StringVar(&defaultConfig.PinsFile, "pins", defaultConfig.PinsFile, "Pin definition CSV file.")
	flag.StringVar(&defaultConfig.SerialDevice, "serial", defaultConfig.SerialDevice, "Serial device of the IO controller board.")
	flag.UintVar(&defaultConfig.Baud, "baud", defaultConfig.Baud, "Serial baud rate.")
	flag.DurationVar(&defaultConfig.WriteTimeout, "write-timeout", defaultConfig.WriteTimeout, "Serial write timeout, 0 to disable.")
	flag.BoolVar(&defaultConfig.EnforceRange, "enforce-range", defaultConfig.EnforceRange, "Reject values outside the declared pin range.")
	flag.BoolVar(&defaultConfig.StrictPins, "strict-pins", defaultConfig.StrictPins, "Reject duplicate pin names and addresses.")
}

// Default gets default config.
func Default() *Config {
	return &defaultConfig
}

// NewConfig creates a config with defaults.
func NewConfig() *Config {
	conf := defaultConfig
	return &conf
}

// Open loads the pins and opens the serial device. When it fails, nothing
// is left open.
func (c *Config) Open() (*Controller, error) {
	loader := pins.Loader{Strict: c.StrictPins}
	reg, err := loader.LoadFile(c.PinsFile)
	if err != nil {
		return nil, fmt.Errorf("load pins %q: %w", c.PinsFile, err)
	}
	var port Port
	if c.SerialDevice != "" {
		p, err := serial.Open(&serial.Config{
			Device:       c.SerialDevice,
			Baud:         c.Baud,
			WriteTimeout: c.WriteTimeout,
		})
		if err != nil {
			return nil, err
		}
		port = p
		glog.Infof("serial %s opened at %d baud", c.SerialDevice, c.Baud)
	}
	glog.Infof("%d pins loaded from %s", reg.Len(), c.PinsFile)
	ctl := New(reg, port)
	ctl.EnforceRange = c.EnforceRange
	return ctl, nil
}
