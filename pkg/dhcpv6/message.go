package dhcpv6

import (
	"net"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// V6Message is implemented by both Message and RelayMessage, the two
// envelopes a RelayMsg option payload may recursively nest.
type V6Message interface {
	Encode() []byte
}

// Message is a non-relay DHCPv6 message (RFC 8415 §7.3): a 1-byte
// msg_type, a 24-bit transaction id, and an option stream running to the
// end of the buffer.
type Message struct {
	MsgType MessageType
	XID     uint32 // only the low 24 bits are meaningful on the wire
	Options *DhcpOptions
}

// NewMessage returns an empty Message with an initialized option
// container.
func NewMessage(msgType MessageType) *Message {
	return &Message{MsgType: msgType, Options: NewDhcpOptions()}
}

// Decode parses a top-level DHCPv6 buffer, dispatching to the
// RelayMessage envelope when msg_type is Relay-Forward/Relay-Reply.
func Decode(data []byte) (V6Message, error) {
	return decodeAt(data, 0)
}

func decodeAt(data []byte, depth int) (V6Message, error) {
	if len(data) < 1 {
		return nil, &dhcpwire.NotEnoughBytes{Need: 1, Have: 0}
	}
	if MessageType(data[0]).IsRelay() {
		return decodeRelayMessageAt(data, depth)
	}
	return decodeMessageAt(data, depth)
}

func decodeMessageAt(data []byte, depth int) (*Message, error) {
	c := dhcpwire.NewCursor(data)
	msgType, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	xidBytes, err := c.ReadBytes(3)
	if err != nil {
		return nil, err
	}
	xid := uint32(xidBytes[0])<<16 | uint32(xidBytes[1])<<8 | uint32(xidBytes[2])

	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &Message{MsgType: MessageType(msgType), XID: xid, Options: opts}, nil
}

// Encode renders m to its wire form.
func (m *Message) Encode() []byte {
	w := dhcpwire.NewWriter()
	w.WriteU8(byte(m.MsgType))
	w.WriteU8(byte(m.XID >> 16))
	w.WriteU8(byte(m.XID >> 8))
	w.WriteU8(byte(m.XID))
	if m.Options != nil {
		m.Options.Encode(w)
	}
	return w.Bytes()
}

// RelayMessage is the envelope used to carry a relayed message between a
// relay agent and a server (RFC 8415 §7.3, §9).
type RelayMessage struct {
	MsgType     MessageType
	HopCount    byte
	LinkAddress net.IP
	PeerAddress net.IP
	Options     *DhcpOptions
}

// NewRelayMessage returns an empty RelayMessage with an initialized
// option container.
func NewRelayMessage(msgType MessageType) *RelayMessage {
	return &RelayMessage{MsgType: msgType, Options: NewDhcpOptions()}
}

func decodeRelayMessageAt(data []byte, depth int) (*RelayMessage, error) {
	if depth >= dhcpwire.MaxRelayDepth {
		return nil, &dhcpwire.RelayTooDeep{Depth: depth}
	}
	c := dhcpwire.NewCursor(data)
	msgType, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	hopCount, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	linkAddr, err := c.ReadIPv6()
	if err != nil {
		return nil, err
	}
	peerAddr, err := c.ReadIPv6()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth+1)
	if err != nil {
		return nil, err
	}
	return &RelayMessage{
		MsgType:     MessageType(msgType),
		HopCount:    hopCount,
		LinkAddress: linkAddr,
		PeerAddress: peerAddr,
		Options:     opts,
	}, nil
}

// Encode renders r to its wire form.
func (r *RelayMessage) Encode() []byte {
	w := dhcpwire.NewWriter()
	w.WriteU8(byte(r.MsgType))
	w.WriteU8(r.HopCount)
	w.WriteIPv6(r.LinkAddress)
	w.WriteIPv6(r.PeerAddress)
	if r.Options != nil {
		r.Options.Encode(w)
	}
	return w.Bytes()
}
