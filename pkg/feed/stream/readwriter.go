// Package stream carries packets over a byte stream, e.g. stdin/stdout or a
// TCP connection.
package stream

import (
	"encoding/binary"
	"errors"
	"io"
)

// MaxPacketSize limits the size of a single packet.
const MaxPacketSize = 64 * 1024

// ErrPacketTooLarge indicates the length prefix exceeds MaxPacketSize.
var ErrPacketTooLarge = errors.New("stream: packet too large")

// ReadWriter implements PacketReadWriter.
// Each packet is prefixed by 4-byte (little-endian) indicate the length.
type ReadWriter struct {
	io.Reader
	io.Writer
}

// New creates a ReadWriter with io.ReadWriter.
func New(s io.ReadWriter) *ReadWriter {
	return &ReadWriter{Reader: s, Writer: s}
}

// NewPair creates a ReadWriter reading from r and writing to w.
func NewPair(r io.Reader, w io.Writer) *ReadWriter {
	return &ReadWriter{Reader: r, Writer: w}
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	var size uint32
	if err := binary.Read(p.Reader, binary.LittleEndian, &size); err != nil {
		return nil, err
	}
	if size > MaxPacketSize {
		return nil, ErrPacketTooLarge
	}
	pkt := make([]byte, size)
	if _, err := io.ReadFull(p.Reader, pkt); err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, err
	}
	return pkt, nil
}

// WritePacket implements PacketWriter. The length prefix and the packet are
// written in one call.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	if len(pkt) > MaxPacketSize {
		return ErrPacketTooLarge
	}
	buf := make([]byte, 4+len(pkt))
	binary.LittleEndian.PutUint32(buf, uint32(len(pkt)))
	copy(buf[4:], pkt)
	_, err := p.Writer.Write(buf)
	return err
}

// Close closes the reader and writer if they are closers.
func (p *ReadWriter) Close() error {
	var err error
	if c, ok := p.Reader.(io.Closer); ok {
		err = c.Close()
	}
	if c, ok := p.Writer.(io.Closer); ok && interface{}(p.Writer) != interface{}(p.Reader) {
		if werr := c.Close(); err == nil {
			err = werr
		}
	}
	return err
}
