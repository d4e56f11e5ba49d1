// Package feed receives pin updates from remote simulators and applies
// them to the board.
package feed

import (
	"context"
	"io"
	"sync"

	"github.com/golang/glog"
	"github.com/golang/protobuf/proto"

	fx "github.com/robotalks/hitl.go/pkg/framework"
	"github.com/robotalks/hitl.go/pkg/feed/msgs"
)

// Feed applies PinUpdate packets from ReadWriter and replies PinResult.
type Feed struct {
	FeedName   string
	ReadWriter PacketReadWriter
	Setter     Setter

	sendLock sync.Mutex
}

// New creates a Feed.
func New(name string, rw PacketReadWriter, setter Setter) *Feed {
	return &Feed{FeedName: name, ReadWriter: rw, Setter: setter}
}

// Name implements Named.
func (f *Feed) Name() string {
	return f.FeedName
}

// Run implements Runnable. It returns nil when the peer closes the stream.
func (f *Feed) Run(ctx context.Context) error {
	if closer, ok := f.ReadWriter.(io.Closer); ok {
		return fx.RunWithContextCloser(ctx, closer, f.process)
	}
	return f.process()
}

func (f *Feed) process() error {
	for {
		pkt, err := f.ReadWriter.ReadPacket()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		var upd msgs.PinUpdate
		if err = proto.Unmarshal(pkt, &upd); err != nil {
			glog.Warningf("%s: bad packet: %v", f.FeedName, err)
			continue
		}
		res := &msgs.PinResult{Seq: upd.Seq}
		if err = f.Setter.SetValue(upd.Pin, upd.Value); err != nil {
			glog.Warningf("%s: set %s=%g: %v", f.FeedName, upd.Pin, upd.Value, err)
			res.Error = err.Error()
		}
		if err = f.Send(res); err != nil {
			return err
		}
	}
}

// Send writes a message to the peer.
func (f *Feed) Send(msg proto.Message) error {
	pkt, err := proto.Marshal(msg)
	if err != nil {
		return err
	}
	f.sendLock.Lock()
	defer f.sendLock.Unlock()
	return f.ReadWriter.WritePacket(pkt)
}
