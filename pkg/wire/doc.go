// Package wire implements the two-byte frame protocol spoken with the IO
// controller board.
package wire

// Each pin update is exactly two bytes, with no delimiter or checksum:
//
//	byte 0: channel address (0-255)
//	byte 1: encoded value
//
// Digital values are sent as 0 or 1. Analog values are volts in unsigned
// 5.3 fixed point, so 5V is 0x28 and 2.5V is 0x14. The board only uses
// 0-16.875V by convention, but the full byte range is encodable.
//
// There is no reply from the board; the link is assumed reliable.
