package wire

import (
	"bytes"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/robotalks/hitl.go/pkg/pins"
)

var (
	analogPin  = pins.Descriptor{Name: "THROTTLE_PEDAL_1", Address: 12, Type: pins.Analog, Range: pins.Range{Max: 5}}
	digitalPin = pins.Descriptor{Name: "BRAKE_SWITCH", Address: 20, Type: pins.Digital, Range: pins.Range{Max: 1}}
)

func TestEncode(t *testing.T) {
	testCases := []struct {
		name   string
		pin    pins.Descriptor
		value  float64
		expect Frame
	}{
		{"digital 0", digitalPin, 0, Frame{20, 0}},
		{"digital 1", digitalPin, 1, Frame{20, 1}},
		{"analog 5V", analogPin, 5, Frame{12, 0x28}},
		{"analog 2.5V", analogPin, 2.5, Frame{12, 0x14}},
		{"analog 0V", analogPin, 0, Frame{12, 0}},
		{"analog usable max", analogPin, AnalogUsableMax, Frame{12, 135}},
		{"analog max", analogPin, AnalogMax, Frame{12, 0xff}},
		{"analog round down", analogPin, 1.06, Frame{12, 8}},
		{"analog round up", analogPin, 1.07, Frame{12, 9}},
		{"analog half rounds away", analogPin, 0.0625, Frame{12, 1}},
		{"analog 31.9 rounds to max", analogPin, 31.9, Frame{12, 0xff}},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			f, err := Encode(tc.pin, tc.value)
			require.NoError(t, err)
			require.Equal(t, tc.expect, f)
			require.Equal(t, tc.pin.Address, f.Address())
		})
	}
}

func TestEncodeErrors(t *testing.T) {
	var (
		digitalErr *InvalidDigitalValueError
		analogErr  *AnalogRangeError
		typeErr    *UnsupportedSignalTypeError
	)
	testCases := []struct {
		name   string
		pin    pins.Descriptor
		value  float64
		target interface{}
	}{
		{"digital 2", digitalPin, 2, &digitalErr},
		{"digital -1", digitalPin, -1, &digitalErr},
		{"digital 0.5", digitalPin, 0.5, &digitalErr},
		{"digital 256", digitalPin, 256, &digitalErr},
		{"digital NaN", digitalPin, math.NaN(), &digitalErr},
		{"analog negative", analogPin, -0.01, &analogErr},
		{"analog too large", analogPin, 31.95, &analogErr},
		{"analog 32V", analogPin, 32, &analogErr},
		{"analog NaN", analogPin, math.NaN(), &analogErr},
		{"analog Inf", analogPin, math.Inf(1), &analogErr},
		{"lower case type", pins.Descriptor{Address: 1, Type: "analog"}, 1, &typeErr},
		{"unknown type", pins.Descriptor{Address: 1, Type: "PWM"}, 1, &typeErr},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Encode(tc.pin, tc.value)
			require.Error(t, err)
			require.True(t, errors.As(err, tc.target), "unexpected error %T: %v", err, err)
		})
	}
	_, err := Encode(pins.Descriptor{Type: "PWM"}, 1)
	require.Contains(t, err.Error(), "PWM")
}

func TestDigitalRoundTrip(t *testing.T) {
	for _, v := range []float64{0, 1} {
		f, err := Encode(digitalPin, v)
		require.NoError(t, err)
		decoded, err := Decode(digitalPin, f)
		require.NoError(t, err)
		require.Equal(t, v, decoded)
	}
}

func TestAnalogRoundTrip(t *testing.T) {
	for v := 0.0; v <= AnalogMax; v += 0.01 {
		f, err := Encode(analogPin, v)
		require.NoError(t, err)
		decoded, err := Decode(analogPin, f)
		require.NoError(t, err)
		require.Equal(t, math.Round(v*8)/8.0, decoded, "value %g", v)
		require.Equal(t, Quantize(v), decoded)
		require.InDelta(t, v, decoded, AnalogResolution/2+1e-9)
	}
	for b := 0; b <= 0xff; b++ {
		decoded, err := Decode(analogPin, Frame{12, byte(b)})
		require.NoError(t, err)
		f, err := Encode(analogPin, decoded)
		require.NoError(t, err)
		require.Equal(t, byte(b), f.Value())
	}
}

func TestDecodeErrors(t *testing.T) {
	_, err := Decode(digitalPin, Frame{20, 2})
	var digitalErr *InvalidDigitalValueError
	require.True(t, errors.As(err, &digitalErr))

	_, err = Decode(analogPin, Frame{13, 0x28})
	var addrErr *AddressMismatchError
	require.True(t, errors.As(err, &addrErr))
	require.Equal(t, byte(12), addrErr.Expect)
	require.Equal(t, byte(13), addrErr.Address)

	_, err = Decode(pins.Descriptor{Address: 1, Type: "PWM"}, Frame{1, 0})
	var typeErr *UnsupportedSignalTypeError
	require.True(t, errors.As(err, &typeErr))
}

func TestFrame(t *testing.T) {
	f := NewFrame(12, 0x28)
	require.Equal(t, []byte{12, 0x28}, f.Bytes())
	require.Equal(t, "0c:28", f.String())

	var buf bytes.Buffer
	n, err := f.WriteTo(&buf)
	require.NoError(t, err)
	require.Equal(t, int64(2), n)
	require.Equal(t, []byte{12, 0x28}, buf.Bytes())

	read, err := ReadFrame(&buf)
	require.NoError(t, err)
	require.Equal(t, f, read)

	_, err = ReadFrame(bytes.NewReader([]byte{1}))
	require.Equal(t, ErrShortFrame, err)
}

func TestParseFrame(t *testing.T) {
	testCases := []struct {
		text   string
		expect Frame
		valid  bool
	}{
		{"0c:28", Frame{12, 0x28}, true},
		{"0C28", Frame{12, 0x28}, true},
		{" ff:00 ", Frame{0xff, 0}, true},
		{"0c", Frame{}, false},
		{"0c:28:00", Frame{}, false},
		{"zz:00", Frame{}, false},
	}
	for _, tc := range testCases {
		t.Run(tc.text, func(t *testing.T) {
			f, err := ParseFrame(tc.text)
			if !tc.valid {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expect, f)
		})
	}
}
