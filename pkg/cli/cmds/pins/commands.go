// Package pins exposes pin registry and I/O commands to the shell.
package pins

import (
	"fmt"
	"strconv"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/hitl.go/pkg/cli/sh"
	"github.com/robotalks/hitl.go/pkg/hitl"
	"github.com/robotalks/hitl.go/pkg/pins"
	"github.com/robotalks/hitl.go/pkg/wire"
)

// FrameResult is the output of encode and decode.
type FrameResult struct {
	Pin   string  `json:"pin"`
	Value float64 `json:"value"`
	Frame string  `json:"frame"`
}

func (r *FrameResult) String() string {
	return fmt.Sprintf("%s %g %s", r.Pin, r.Value, r.Frame)
}

// Describe formats a pin for display.
func Describe(d pins.Descriptor) string {
	return fmt.Sprintf("%s addr=%d %s %s %s", d.Name, d.Address, d.Type, d.Range, d.Simulator)
}

// ParseValue parses a pin value from a command argument.
func ParseValue(str string) (float64, error) {
	val, err := strconv.ParseFloat(str, 64)
	if err != nil {
		return 0, fmt.Errorf("Invalid VALUE: %v", err)
	}
	return val, nil
}

// EncodePin encodes a value without writing it.
func EncodePin(ctl *hitl.Controller, name, value string) (*FrameResult, error) {
	val, err := ParseValue(value)
	if err != nil {
		return nil, err
	}
	f, err := ctl.Encode(name, val)
	if err != nil {
		return nil, err
	}
	return &FrameResult{Pin: name, Value: val, Frame: f.String()}, nil
}

// DecodePin decodes a hex frame for the named pin.
func DecodePin(reg *pins.Registry, name, frame string) (*FrameResult, error) {
	d, err := reg.Lookup(name)
	if err != nil {
		return nil, err
	}
	f, err := wire.ParseFrame(frame)
	if err != nil {
		return nil, err
	}
	val, err := wire.Decode(d, f)
	if err != nil {
		return nil, err
	}
	return &FrameResult{Pin: name, Value: val, Frame: f.String()}, nil
}

func requireArgs(c *ishell.Context, names ...string) bool {
	if len(c.Args) < len(names) {
		c.Err(fmt.Errorf("%s required", names[len(c.Args)]))
		return false
	}
	return true
}

var (
	// PinsCmd lists all pins.
	PinsCmd = ishell.Cmd{
		Name:    "pins",
		Aliases: []string{"ls"},
		Help:    "",
		Func: func(c *ishell.Context) {
			reg := sh.ShellFrom(c).Controller.Registry()
			list := make([]pins.Descriptor, 0, reg.Len())
			for _, name := range reg.Names() {
				d, _ := reg.Lookup(name)
				list = append(list, d)
			}
			if sh.ShellFrom(c).OutputJSON {
				sh.Output(c, list, "")
				return
			}
			for _, d := range list {
				c.Println(Describe(d))
			}
		},
	}

	// InfoCmd shows a single pin.
	InfoCmd = ishell.Cmd{
		Name:    "info",
		Aliases: []string{"i"},
		Help:    "NAME",
		Func: func(c *ishell.Context) {
			if !requireArgs(c, "NAME") {
				return
			}
			d, err := sh.ShellFrom(c).Controller.Registry().Lookup(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, d, Describe(d))
		},
	}

	// SetCmd writes a value to the serial port.
	SetCmd = ishell.Cmd{
		Name:    "set",
		Aliases: []string{"s"},
		Help:    "NAME VALUE",
		Func: func(c *ishell.Context) {
			if !requireArgs(c, "NAME", "VALUE") {
				return
			}
			val, err := ParseValue(c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			if err = sh.ShellFrom(c).Controller.SetValue(c.Args[0], val); err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, map[string]bool{"ok": true}, "OK")
		},
	}

	// EncodeCmd shows the frame for a value.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "NAME VALUE",
		Func: func(c *ishell.Context) {
			if !requireArgs(c, "NAME", "VALUE") {
				return
			}
			res, err := EncodePin(sh.ShellFrom(c).Controller, c.Args[0], c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, res, res.String())
		},
	}

	// DecodeCmd shows the value carried by a frame.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "NAME HEX",
		Func: func(c *ishell.Context) {
			if !requireArgs(c, "NAME", "HEX") {
				return
			}
			res, err := DecodePin(sh.ShellFrom(c).Controller.Registry(), c.Args[0], c.Args[1])
			if err != nil {
				c.Err(err)
				return
			}
			sh.Output(c, res, res.String())
		},
	}
)

func init() {
	sh.AddCmds(
		&PinsCmd,
		&InfoCmd,
		&SetCmd,
		&EncodeCmd,
		&DecodeCmd,
	)
}
