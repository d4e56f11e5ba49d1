// Package pins maps the symbolic pin names used by a simulation to the
// physical channels of the IO controller board.
package pins

// Pin definitions come from a comma separated table with one header row:
//
//	address,simulator,signal_name,signal_type,min,max
//	12,SimX,THROTTLE_PEDAL_1,ANALOG,0.0,5.0
//
// The registry is built once and never mutated, so concurrent lookups are
// safe without locking.
