package mqtt

import (
	"context"
	"encoding/json"

	"github.com/golang/glog"

	"github.com/robotalks/hitl.go/pkg/feed"
	fx "github.com/robotalks/hitl.go/pkg/framework"
	"github.com/robotalks/hitl.go/pkg/pins"
)

// Meta is published (retained) at ID/meta while the bridge is online.
type Meta struct {
	ID   string            `json:"id"`
	Pins []pins.Descriptor `json:"pins"`
}

// Bridge exposes a Setter through MQTT topics under ID:
// ID/set receives PinUpdate, ID/result publishes PinResult.
type Bridge struct {
	Queue  *Queue
	ID     string
	Setter feed.Setter

	metaJSON []byte
}

// NewMeta builds Meta from a registry.
func NewMeta(id string, reg *pins.Registry) *Meta {
	meta := &Meta{ID: id, Pins: make([]pins.Descriptor, 0, reg.Len())}
	for _, name := range reg.Names() {
		d, _ := reg.Lookup(name)
		meta.Pins = append(meta.Pins, d)
	}
	return meta
}

// NewBridge creates a Bridge.
func NewBridge(brokerURL, id string, reg *pins.Registry, setter feed.Setter) (*Bridge, error) {
	metaJSON, err := json.Marshal(NewMeta(id, reg))
	if err != nil {
		return nil, err
	}
	opts, topicPrefix, err := ClientOptionsFromURL(brokerURL)
	if err != nil {
		return nil, err
	}
	opts.SetBinaryWill(topicPrefix+id+"/meta", nil, 1, true)
	if opts.ClientID == "" {
		opts.SetClientID("hitl:" + id)
	}
	b := &Bridge{
		Queue:    NewQueue(opts, topicPrefix),
		ID:       id,
		Setter:   setter,
		metaJSON: metaJSON,
	}
	b.Queue.OnConnect = b.onConnected
	return b, nil
}

// Name implements Named.
func (b *Bridge) Name() string {
	return "mqtt:" + b.ID
}

// Run implements Runnable.
func (b *Bridge) Run(ctx context.Context) error {
	rw := ForBridge(b.Queue, b.ID)
	if err := b.Queue.Connect(); err != nil {
		rw.Close()
		return err
	}
	defer fx.CloseAll(b.Queue, rw)
	err := feed.New(b.Name(), rw, b.Setter).Run(ctx)
	if perr := b.Queue.Pub(b.ID+"/meta", nil, 1, true); perr != nil {
		glog.Warningf("%s: clear meta: %v", b.Name(), perr)
	}
	return err
}

func (b *Bridge) onConnected(q *Queue) {
	// Called from the client goroutine, must not wait for the token.
	q.Client.Publish(q.TopicPrefix+b.ID+"/meta", 1, true, b.metaJSON)
}
