package mqtt

import (
	"io"
	"sync"
)

// ReadWriter implements PacketReadWriter on a pair of topics.
type ReadWriter struct {
	Queue    *Queue
	SubTopic string
	PubTopic string

	sub       *Subscription
	packetCh  chan []byte
	doneCh    chan struct{}
	closeOnce sync.Once
}

// NewPacketReadWriter creates the ReadWriter and subscribes sub.
func NewPacketReadWriter(q *Queue, sub, pub string) *ReadWriter {
	p := &ReadWriter{
		Queue:    q,
		SubTopic: sub,
		PubTopic: pub,
		packetCh: make(chan []byte, 16),
		doneCh:   make(chan struct{}),
	}
	p.sub = q.Sub(sub, p.handleMsg)
	return p
}

// ForBridge uses the topic convention of a bridge:
// SubTopic = id/set
// PubTopic = id/result
func ForBridge(q *Queue, id string) *ReadWriter {
	return NewPacketReadWriter(q, id+"/set", id+"/result")
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() ([]byte, error) {
	select {
	case pkt := <-p.packetCh:
		return pkt, nil
	case <-p.doneCh:
		return nil, io.EOF
	}
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return p.Queue.Pub(p.PubTopic, pkt, 0, false)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() (err error) {
	p.closeOnce.Do(func() {
		close(p.doneCh)
		err = p.sub.Close()
	})
	return
}

func (p *ReadWriter) handleMsg(_ string, payload []byte) {
	select {
	case p.packetCh <- payload:
	case <-p.doneCh:
	}
}
