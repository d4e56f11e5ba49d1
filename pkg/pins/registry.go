package pins

import (
	"encoding/csv"
	"errors"
	"io"
	"os"
	"sort"
	"strconv"
	"strings"
)

// Field positions in a pin definition row.
const (
	fieldAddress = iota
	fieldSimulator
	fieldName
	fieldType
	fieldMin
	fieldMax

	numFields
)

// Registry is the immutable mapping from pin name to Descriptor.
type Registry struct {
	pins      map[string]Descriptor
	addresses map[byte]string
}

// Loader loads pin definitions.
type Loader struct {
	// Strict rejects duplicate pin names and addresses instead of letting
	// the last row win.
	Strict bool
}

// Load parses pin definitions using the default (non-strict) Loader.
func Load(r io.Reader) (*Registry, error) {
	var l Loader
	return l.Load(r)
}

// LoadFile loads pin definitions from a file using the default Loader.
func LoadFile(path string) (*Registry, error) {
	var l Loader
	return l.LoadFile(path)
}

// LoadFile loads pin definitions from a file.
func (l Loader) LoadFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return l.Load(f)
}

// Load parses pin definitions. The first row is the header and is skipped.
// Either the whole source loads or an error is returned.
func (l Loader) Load(r io.Reader) (*Registry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	reg := &Registry{
		pins:      make(map[string]Descriptor),
		addresses: make(map[byte]string),
	}
	for first := true; ; first = false {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				return nil, &MalformedRowError{Row: perr.StartLine, Err: perr.Err}
			}
			return nil, err
		}
		if first {
			continue
		}
		row, _ := reader.FieldPos(0)
		d, err := parseRow(row, record)
		if err != nil {
			return nil, err
		}
		if err = reg.add(row, d, l.Strict); err != nil {
			return nil, err
		}
	}
	return reg, nil
}

func parseRow(row int, record []string) (d Descriptor, err error) {
	if len(record) < numFields {
		return d, &MalformedRowError{Row: row, Fields: len(record)}
	}
	for n := range record {
		record[n] = strings.TrimSpace(record[n])
	}
	addr, err := strconv.ParseUint(record[fieldAddress], 10, 8)
	if err != nil {
		return d, &ParseError{Row: row, Field: "address", Value: record[fieldAddress], Err: err}
	}
	if d.Range.Min, err = strconv.ParseFloat(record[fieldMin], 64); err != nil {
		return d, &ParseError{Row: row, Field: "min", Value: record[fieldMin], Err: err}
	}
	if d.Range.Max, err = strconv.ParseFloat(record[fieldMax], 64); err != nil {
		return d, &ParseError{Row: row, Field: "max", Value: record[fieldMax], Err: err}
	}
	d.Address = byte(addr)
	d.Simulator = record[fieldSimulator]
	d.Name = record[fieldName]
	d.Type = SignalType(record[fieldType])
	return d, nil
}

func (r *Registry) add(row int, d Descriptor, strict bool) error {
	if strict {
		if _, exist := r.pins[d.Name]; exist {
			return &DuplicateError{Row: row, Kind: "name", Key: strconv.Quote(d.Name)}
		}
		if _, exist := r.addresses[d.Address]; exist {
			return &DuplicateError{Row: row, Kind: "address", Key: strconv.Itoa(int(d.Address))}
		}
	}
	if prev, exist := r.pins[d.Name]; exist && r.addresses[prev.Address] == d.Name {
		delete(r.addresses, prev.Address)
	}
	r.pins[d.Name] = d
	r.addresses[d.Address] = d.Name
	return nil
}

// Lookup finds the Descriptor by exact pin name.
func (r *Registry) Lookup(name string) (Descriptor, error) {
	if d, ok := r.pins[name]; ok {
		return d, nil
	}
	return Descriptor{}, &UnknownPinError{Name: name}
}

// ByAddress finds the Descriptor by wire address. If several pins share the
// address, the one defined last wins.
func (r *Registry) ByAddress(addr byte) (Descriptor, bool) {
	name, ok := r.addresses[addr]
	if !ok {
		return Descriptor{}, false
	}
	return r.pins[name], true
}

// Names returns all pin names, sorted.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.pins))
	for name := range r.pins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of pins.
func (r *Registry) Len() int {
	return len(r.pins)
}
