package pins

import "fmt"

// MalformedRowError indicates a row doesn't have the expected shape.
type MalformedRowError struct {
	Row    int
	Fields int
	Err    error
}

// Error implements error.
func (e *MalformedRowError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("pins: row %d malformed: %v", e.Row, e.Err)
	}
	return fmt.Sprintf("pins: row %d malformed: %d fields, expect %d", e.Row, e.Fields, numFields)
}

// Unwrap returns the underlying error if any.
func (e *MalformedRowError) Unwrap() error {
	return e.Err
}

// ParseError indicates a field of a row can't be parsed.
type ParseError struct {
	Row   int
	Field string
	Value string
	Err   error
}

// Error implements error.
func (e *ParseError) Error() string {
	return fmt.Sprintf("pins: row %d: invalid %s %q: %v", e.Row, e.Field, e.Value, e.Err)
}

// Unwrap returns the underlying error.
func (e *ParseError) Unwrap() error {
	return e.Err
}

// DuplicateError is reported by a strict Loader when a pin name or address
// appears more than once.
type DuplicateError struct {
	Row  int
	Kind string // "name" or "address"
	Key  string
}

// Error implements error.
func (e *DuplicateError) Error() string {
	return fmt.Sprintf("pins: row %d: duplicate %s %s", e.Row, e.Kind, e.Key)
}

// UnknownPinError indicates the pin name is not in the registry.
type UnknownPinError struct {
	Name string
}

// Error implements error.
func (e *UnknownPinError) Error() string {
	return fmt.Sprintf("pins: unknown pin %q", e.Name)
}
