package pins

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

const testPins = `address,simulator,signal_name,signal_type,min,max
12,SimX,THROTTLE_PEDAL_1,ANALOG,0.0,5.0
13,SimX,THROTTLE_PEDAL_2,ANALOG,0.0,5.0
20,SimY,BRAKE_SWITCH,DIGITAL,0,1
`

func TestLoad(t *testing.T) {
	reg, err := Load(strings.NewReader(testPins))
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())
	require.Equal(t, []string{"BRAKE_SWITCH", "THROTTLE_PEDAL_1", "THROTTLE_PEDAL_2"}, reg.Names())

	d, err := reg.Lookup("THROTTLE_PEDAL_1")
	require.NoError(t, err)
	require.Equal(t, Descriptor{
		Name:      "THROTTLE_PEDAL_1",
		Address:   12,
		Type:      Analog,
		Simulator: "SimX",
		Range:     Range{Min: 0, Max: 5},
	}, d)

	d, ok := reg.ByAddress(20)
	require.True(t, ok)
	require.Equal(t, "BRAKE_SWITCH", d.Name)
	require.Equal(t, Digital, d.Type)
	_, ok = reg.ByAddress(99)
	require.False(t, ok)
}

func TestLoadHeaderNotValidated(t *testing.T) {
	reg, err := Load(strings.NewReader("whatever\n1,S,P,DIGITAL,0,1\n"))
	require.NoError(t, err)
	_, err = reg.Lookup("P")
	require.NoError(t, err)
}

func TestLoadEmpty(t *testing.T) {
	reg, err := Load(strings.NewReader(""))
	require.NoError(t, err)
	require.Zero(t, reg.Len())
}

func TestLoadTolerance(t *testing.T) {
	testCases := []struct {
		name string
		data string
	}{
		{"crlf", "h\r\n1,S,P,ANALOG,0.0,5.0\r\n"},
		{"spaces", "h\n 1 , S , P , ANALOG , 0.0 , 5.0 \n"},
		{"blank lines", "h\n\n1,S,P,ANALOG,0.0,5.0\n\n"},
		{"no trailing newline", "h\n1,S,P,ANALOG,0.0,5.0"},
		{"extra fields", "h\n1,S,P,ANALOG,0.0,5.0,comment\n"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := Load(strings.NewReader(tc.data))
			require.NoError(t, err)
			d, err := reg.Lookup("P")
			require.NoError(t, err)
			require.Equal(t, byte(1), d.Address)
			require.Equal(t, Analog, d.Type)
			require.Equal(t, Range{Min: 0, Max: 5}, d.Range)
		})
	}
}

func TestLoadKeepsUnknownType(t *testing.T) {
	reg, err := Load(strings.NewReader("h\n1,S,P,digital,0,1\n"))
	require.NoError(t, err)
	d, err := reg.Lookup("P")
	require.NoError(t, err)
	require.Equal(t, SignalType("digital"), d.Type)
	require.False(t, d.Type.IsKnown())
}

func TestLoadErrors(t *testing.T) {
	testCases := []struct {
		name  string
		data  string
		row   int
		field string
	}{
		{"short row", "h\n1,S,P,ANALOG,0.0,5.0\n2,S,Q,ANALOG\n", 3, ""},
		{"bad address", "h\nx,S,P,ANALOG,0.0,5.0\n", 2, "address"},
		{"negative address", "h\n-1,S,P,ANALOG,0.0,5.0\n", 2, "address"},
		{"address too large", "h\n256,S,P,ANALOG,0.0,5.0\n", 2, "address"},
		{"bad min", "h\n1,S,P,ANALOG,low,5.0\n", 2, "min"},
		{"bad max", "h\n1,S,P,ANALOG,0.0,\n", 2, "max"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			reg, err := Load(strings.NewReader(tc.data))
			require.Error(t, err)
			require.Nil(t, reg)
			if tc.field == "" {
				var merr *MalformedRowError
				require.True(t, errors.As(err, &merr), "%v", err)
				require.Equal(t, tc.row, merr.Row)
				return
			}
			var perr *ParseError
			require.True(t, errors.As(err, &perr), "%v", err)
			require.Equal(t, tc.row, perr.Row)
			require.Equal(t, tc.field, perr.Field)
		})
	}
}

func TestLoadDuplicates(t *testing.T) {
	data := "h\n1,S,P,ANALOG,0,5\n2,S,P,DIGITAL,0,1\n2,S,Q,DIGITAL,0,1\n"

	reg, err := Load(strings.NewReader(data))
	require.NoError(t, err)
	d, err := reg.Lookup("P")
	require.NoError(t, err)
	require.Equal(t, byte(2), d.Address)
	require.Equal(t, Digital, d.Type)
	_, ok := reg.ByAddress(1)
	require.False(t, ok)
	d, ok = reg.ByAddress(2)
	require.True(t, ok)
	require.Equal(t, "Q", d.Name)

	_, err = Loader{Strict: true}.Load(strings.NewReader(data))
	var derr *DuplicateError
	require.True(t, errors.As(err, &derr), "%v", err)
	require.Equal(t, 3, derr.Row)
	require.Equal(t, "name", derr.Kind)

	_, err = Loader{Strict: true}.Load(strings.NewReader("h\n1,S,P,ANALOG,0,5\n1,S,Q,ANALOG,0,5\n"))
	require.True(t, errors.As(err, &derr), "%v", err)
	require.Equal(t, "address", derr.Kind)
}

func TestLookupUnknown(t *testing.T) {
	reg, err := Load(strings.NewReader(testPins))
	require.NoError(t, err)
	_, err = reg.Lookup("THROTTLE_PEDAL")
	var uerr *UnknownPinError
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, "THROTTLE_PEDAL", uerr.Name)
}

func TestLoadFile(t *testing.T) {
	dir, err := os.MkdirTemp("", "pins")
	require.NoError(t, err)
	defer os.RemoveAll(dir)
	fn := filepath.Join(dir, "pins.csv")
	require.NoError(t, os.WriteFile(fn, []byte(testPins), 0644))

	reg, err := LoadFile(fn)
	require.NoError(t, err)
	require.Equal(t, 3, reg.Len())

	_, err = LoadFile(filepath.Join(dir, "missing.csv"))
	require.True(t, os.IsNotExist(err))
}

func TestRange(t *testing.T) {
	r := Range{Min: 0, Max: 5}
	require.True(t, r.Contains(0))
	require.True(t, r.Contains(5))
	require.False(t, r.Contains(5.01))
	require.False(t, r.Contains(-0.1))
	require.Equal(t, "[0, 5]", r.String())
}
