// Package websocket carries packets as binary websocket messages.
package websocket

import (
	"github.com/golang/glog"
	"golang.org/x/net/websocket"

	"github.com/robotalks/hitl.go/pkg/feed"
)

// ReadWriter implements PacketReadWriter.
type ReadWriter websocket.Conn

// New wraps websocket.Conn.
func New(conn *websocket.Conn) *ReadWriter {
	return (*ReadWriter)(conn)
}

// ReadPacket implements PacketReader.
func (p *ReadWriter) ReadPacket() (pkt []byte, err error) {
	err = websocket.Message.Receive((*websocket.Conn)(p), &pkt)
	return
}

// WritePacket implements PacketWriter.
func (p *ReadWriter) WritePacket(pkt []byte) error {
	return websocket.Message.Send((*websocket.Conn)(p), pkt)
}

// Close implements io.Closer.
func (p *ReadWriter) Close() error {
	return (*websocket.Conn)(p).Close()
}

// Handler serves one Feed per websocket connection.
func Handler(setter feed.Setter) websocket.Handler {
	return func(conn *websocket.Conn) {
		name := "ws:" + conn.Request().RemoteAddr
		glog.Infof("%s connected", name)
		err := feed.New(name, New(conn), setter).Run(conn.Request().Context())
		if err != nil {
			glog.Warningf("%s: %v", name, err)
		}
		glog.Infof("%s disconnected", name)
	}
}
