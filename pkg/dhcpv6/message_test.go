package dhcpv6

import (
	"bytes"
	"net"
	"testing"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// TestClientIdDUIDLLTExactBytes verifies a Solicit carrying a single
// ClientId/DUID-LLT option encodes to the documented byte sequence:
// msg_type SOLICIT, a 3-byte xid, then opt 1 wrapping a 14-byte DUID-LLT
// (type 1, hwtype 1, time 0, a 6-byte MAC).
func TestClientIdDUIDLLTExactBytes(t *testing.T) {
	msg := NewMessage(MessageTypeSolicit)
	msg.XID = 0x010203
	msg.Options.Insert(&ClientIdOption{
		DUID: NewDUIDLLT(1, 0, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}),
	})

	got := msg.Encode()
	want := []byte{
		0x01,             // SOLICIT
		0x01, 0x02, 0x03, // xid
		0x00, 0x01, // opt code 1 (ClientId)
		0x00, 0x0E, // opt len 14
		0x00, 0x01, // DUID type 1 (LLT)
		0x00, 0x01, // hardware type 1
		0x00, 0x00, 0x00, 0x00, // time
		0x01, 0x02, 0x03, 0x04, 0x05, 0x06, // link-layer addr
	}
	if !bytes.Equal(got, want) {
		t.Fatalf("Encode() = % X, want % X", got, want)
	}

	decoded, err := Decode(got)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	m, ok := decoded.(*Message)
	if !ok {
		t.Fatalf("Decode() returned %T, want *Message", decoded)
	}
	if m.MsgType != MessageTypeSolicit || m.XID != 0x010203 {
		t.Fatalf("unexpected header: %+v", m)
	}
	opt, ok := m.Options.Get(OptionClientId)
	if !ok {
		t.Fatal("missing ClientId option")
	}
	cid := opt.(*ClientIdOption)
	if cid.DUID.Type != DUIDTypeLLT || cid.DUID.HardwareType != 1 {
		t.Fatalf("unexpected DUID: %+v", cid.DUID)
	}
	if !bytes.Equal(cid.DUID.LinkLayerAddr, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06}) {
		t.Fatalf("unexpected link-layer addr: %x", cid.DUID.LinkLayerAddr)
	}
}

// TestRelayNestingRoundTrip builds a RelayMessage wrapping an inner
// Message via a RelayMsgOption and checks it survives encode/decode.
func TestRelayNestingRoundTrip(t *testing.T) {
	inner := NewMessage(MessageTypeRequest)
	inner.XID = 0x0A0B0C
	inner.Options.Insert(&ElapsedTimeOption{Value: 42})

	relay := NewRelayMessage(MessageTypeRelayForward)
	relay.HopCount = 1
	relay.LinkAddress = net.ParseIP("2001:db8::1")
	relay.PeerAddress = net.ParseIP("2001:db8::2")
	relay.Options.Insert(&RelayMsgOption{Inner: inner})

	wire := relay.Encode()
	decoded, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	outer, ok := decoded.(*RelayMessage)
	if !ok {
		t.Fatalf("Decode() returned %T, want *RelayMessage", decoded)
	}
	opt, ok := outer.Options.Get(OptionRelayMessage)
	if !ok {
		t.Fatal("missing RelayMessage option")
	}
	innerMsg, ok := opt.(*RelayMsgOption).Inner.(*Message)
	if !ok {
		t.Fatalf("inner message is %T, want *Message", opt.(*RelayMsgOption).Inner)
	}
	if innerMsg.XID != 0x0A0B0C {
		t.Fatalf("inner xid = %x, want 0x0A0B0C", innerMsg.XID)
	}
}

// TestRelayNestingTooDeep confirms that exceeding MaxRelayDepth levels of
// RelayMsg nesting fails decode with RelayTooDeep rather than overflowing
// the stack or silently truncating.
func TestRelayNestingTooDeep(t *testing.T) {
	// Build the innermost plain message first, then wrap it in
	// MaxRelayDepth+1 RelayMessage envelopes so depth reaches
	// MaxRelayDepth on the innermost envelope's decode.
	var wire []byte
	inner := NewMessage(MessageTypeRequest)
	wire = inner.Encode()

	for i := 0; i <= dhcpwire.MaxRelayDepth; i++ {
		relay := NewRelayMessage(MessageTypeRelayForward)
		relay.LinkAddress = net.IPv6zero
		relay.PeerAddress = net.IPv6zero
		relay.Options.Insert(&RelayMsgOption{Inner: rawMessage{wire}})
		wire = relay.Encode()
	}

	_, err := Decode(wire)
	if err == nil {
		t.Fatal("expected RelayTooDeep error, got nil")
	}
	if _, ok := err.(*dhcpwire.RelayTooDeep); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.RelayTooDeep", err, err)
	}
}

// rawMessage lets the too-deep test splice pre-encoded bytes into a
// RelayMsgOption without re-decoding them at each nesting level.
type rawMessage struct{ wire []byte }

func (r rawMessage) Encode() []byte { return r.wire }

func TestDecodeRejectsEmptyBuffer(t *testing.T) {
	_, err := Decode(nil)
	if err == nil {
		t.Fatal("expected error decoding empty buffer")
	}
	if _, ok := err.(*dhcpwire.NotEnoughBytes); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.NotEnoughBytes", err, err)
	}
}

func TestDecodeOptionsTruncatedFirstOption(t *testing.T) {
	// code=1, length=10, but only 2 bytes of payload follow.
	data := []byte{0x00, 0x01, 0x00, 0x0A, 0xAA, 0xBB}
	_, err := DecodeOptions(data, 0)
	if err == nil {
		t.Fatal("expected error on truncated option")
	}
	if _, ok := err.(*dhcpwire.NotEnoughBytes); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.NotEnoughBytes", err, err)
	}
}

func TestMessageRoundTrip(t *testing.T) {
	msg := NewMessage(MessageTypeReply)
	msg.XID = 0xABCDEF
	msg.Options.Insert(&ServerIdOption{DUID: NewDUIDEN(32473, []byte("unit-test"))})
	msg.Options.Insert(&StatusCodeOption{Status: StatusSuccess, Message: "ok"})
	msg.Options.Insert(RapidCommitOption())

	wire := msg.Encode()
	decoded, err := Decode(wire)
	if err != nil {
		t.Fatalf("Decode() error: %v", err)
	}
	got, ok := decoded.(*Message)
	if !ok {
		t.Fatalf("Decode() returned %T, want *Message", decoded)
	}
	if got.XID != msg.XID || got.MsgType != msg.MsgType {
		t.Fatalf("header mismatch: got %+v, want %+v", got, msg)
	}
	if got.Options.Len() != 3 {
		t.Fatalf("Options.Len() = %d, want 3", got.Options.Len())
	}
	sOpt, ok := got.Options.Get(OptionStatusCode)
	if !ok || sOpt.(*StatusCodeOption).Message != "ok" {
		t.Fatalf("unexpected StatusCode option: %+v", sOpt)
	}
}
