// Package msgs defines the messages simulators exchange with the bridge.
package msgs

import (
	"github.com/golang/protobuf/proto"
)

// PinUpdate requests a pin to be set.
type PinUpdate struct {
	Seq   uint32  `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Pin   string  `protobuf:"bytes,2,opt,name=pin,proto3" json:"pin,omitempty"`
	Value float64 `protobuf:"fixed64,3,opt,name=value,proto3" json:"value"`
}

// ProtoMessage implements proto.Message.
func (m *PinUpdate) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PinUpdate) Reset() { *m = PinUpdate{} }

// String implements proto.Message.
func (m *PinUpdate) String() string { return proto.CompactTextString(m) }

// PinResult is the reply of PinUpdate with the same Seq.
// Error is empty when the update was written to the board.
type PinResult struct {
	Seq   uint32 `protobuf:"varint,1,opt,name=seq,proto3" json:"seq,omitempty"`
	Error string `protobuf:"bytes,2,opt,name=error,proto3" json:"error,omitempty"`
}

// ProtoMessage implements proto.Message.
func (m *PinResult) ProtoMessage() {}

// Reset implements proto.Message.
func (m *PinResult) Reset() { *m = PinResult{} }

// String implements proto.Message.
func (m *PinResult) String() string { return proto.CompactTextString(m) }

// OK indicates the update succeeded.
func (m *PinResult) OK() bool { return m.Error == "" }
