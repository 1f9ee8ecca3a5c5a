package dhcpv4

import (
	"bytes"
	"net"
	"testing"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

func buildDiscover() *Message {
	m := NewMessage()
	m.XID = 0xDEADBEEF
	m.HType = HardwareTypeEthernet
	_ = m.SetCHAddr(net.HardwareAddr{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	m.CIAddr = net.IPv4zero
	m.YIAddr = net.IPv4zero
	m.SIAddr = net.IPv4zero
	m.GIAddr = net.IPv4zero
	m.Options.Insert(&MessageTypeOption{Type: MessageTypeDiscover})
	m.Options.Insert(&ParameterRequestListOption{
		Codes: []OptionCode{OptionSubnetMask, OptionRouter, OptionDomainNameServer, OptionDomainName},
	})
	return m
}

// A standard DHCPDISCOVER with xid=0xDEADBEEF, htype=1, hlen=6,
// chaddr=01:02:03:04:05:06, opt 53=Discover, opt 55=[1,3,6,15] —
// 240-byte header + opt53 (3 bytes) + opt55 (6 bytes) + End (1 byte) =
// 250 bytes total.
func TestDiscoverExactBytes(t *testing.T) {
	m := buildDiscover()
	got := m.Encode()

	if len(got) != 250 {
		t.Fatalf("encoded length = %d, want 250", len(got))
	}

	want := make([]byte, 0, 250)
	want = append(want, byte(OpCodeBootRequest), byte(HardwareTypeEthernet), 6, 0)
	want = append(want, 0xDE, 0xAD, 0xBE, 0xEF) // xid
	want = append(want, 0, 0)                   // secs
	want = append(want, 0, 0)                   // flags
	want = append(want, 0, 0, 0, 0)              // ciaddr
	want = append(want, 0, 0, 0, 0)              // yiaddr
	want = append(want, 0, 0, 0, 0)              // siaddr
	want = append(want, 0, 0, 0, 0)              // giaddr
	chaddr := make([]byte, 16)
	copy(chaddr, []byte{1, 2, 3, 4, 5, 6})
	want = append(want, chaddr...)
	want = append(want, make([]byte, 64)...)  // sname
	want = append(want, make([]byte, 128)...) // file
	want = append(want, MagicCookie[:]...)
	want = append(want, byte(OptionDHCPMessageType), 1, byte(MessageTypeDiscover))
	want = append(want, byte(OptionParameterRequestList), 4, 1, 3, 6, 15)
	want = append(want, byte(OptionEnd))

	if !bytes.Equal(got, want) {
		t.Errorf("encoded mismatch:\ngot:  %x\nwant: %x", got, want)
	}

	decoded, err := DecodePacket(got)
	if err != nil {
		t.Fatalf("DecodePacket: %v", err)
	}
	if decoded.XID != 0xDEADBEEF {
		t.Errorf("XID = %#x, want 0xDEADBEEF", decoded.XID)
	}
	if decoded.MessageType() != MessageTypeDiscover {
		t.Errorf("MessageType = %v, want Discover", decoded.MessageType())
	}
	if decoded.HLen() != 6 {
		t.Errorf("HLen = %d, want 6", decoded.HLen())
	}
	if decoded.CHAddr().String() != "01:02:03:04:05:06" {
		t.Errorf("CHAddr = %s, want 01:02:03:04:05:06", decoded.CHAddr())
	}
}

// Setting chaddr to a 6-byte address updates hlen to 6 and leaves the
// trailing 10 bytes of the 16-byte field zeroed.
func TestSetCHAddrUpdatesHLen(t *testing.T) {
	m := NewMessage()
	if err := m.SetCHAddr(net.HardwareAddr{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}); err != nil {
		t.Fatalf("SetCHAddr: %v", err)
	}
	if m.HLen() != 6 {
		t.Fatalf("HLen = %d, want 6", m.HLen())
	}
	if !bytes.Equal(m.chaddr[6:], make([]byte, 10)) {
		t.Errorf("trailing chaddr bytes not zeroed: %v", m.chaddr[6:])
	}
	if got := m.CHAddr(); !bytes.Equal(got, []byte{0xaa, 0xbb, 0xcc, 0xdd, 0xee, 0xff}) {
		t.Errorf("CHAddr = %v, want aa:bb:cc:dd:ee:ff", got)
	}
}

func TestSetCHAddrTooLong(t *testing.T) {
	m := NewMessage()
	if err := m.SetCHAddr(make(net.HardwareAddr, 17)); err == nil {
		t.Error("expected error for chaddr longer than 16 bytes")
	}
}

func TestDecodePacketInvalidMagic(t *testing.T) {
	m := buildDiscover()
	buf := m.Encode()
	buf[239] = 0 // corrupt the magic cookie's last byte
	_, err := DecodePacket(buf)
	if _, ok := err.(*dhcpwire.InvalidMagic); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.InvalidMagic", err, err)
	}
}

func TestDecodePacketTruncatedHeader(t *testing.T) {
	m := buildDiscover()
	buf := m.Encode()
	_, err := DecodePacket(buf[:100])
	if _, ok := err.(*dhcpwire.NotEnoughBytes); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.NotEnoughBytes", err, err)
	}
}

func TestServerNameAndBootFileAccessors(t *testing.T) {
	m := NewMessage()
	if err := m.SetServerName("server.example.com"); err != nil {
		t.Fatalf("SetServerName: %v", err)
	}
	if got := m.ServerName(); got != "server.example.com" {
		t.Errorf("ServerName = %q, want %q", got, "server.example.com")
	}
	if err := m.SetBootFileName("pxelinux.0"); err != nil {
		t.Fatalf("SetBootFileName: %v", err)
	}
	if got := m.BootFileName(); got != "pxelinux.0" {
		t.Errorf("BootFileName = %q, want %q", got, "pxelinux.0")
	}
}

// opt 82 (RelayAgentInformation) is always placed immediately before
// the End marker, regardless of its numeric rank relative to other
// stored options.
func TestEncodeOrdersRelayAgentInfoBeforeEnd(t *testing.T) {
	m := NewMessage()
	m.Options.Insert(&Uint32Option{code: OptionAddressLeaseTime, Value: 3600})
	m.Options.Insert(&RelayAgentInformationOption{
		SubOptions: []RelaySubOption{&RelayCircuitID{Value: []byte{1, 2, 3}}},
	})
	buf := m.Encode()

	leaseIdx := bytes.Index(buf, []byte{byte(OptionAddressLeaseTime)})
	relayIdx := bytes.Index(buf, []byte{byte(OptionRelayAgentInformation)})
	if leaseIdx < 0 || relayIdx < 0 {
		t.Fatalf("options not found in encoded buffer")
	}
	if relayIdx <= leaseIdx {
		t.Errorf("relay agent info (at %d) should come after address lease time (at %d)", relayIdx, leaseIdx)
	}
	if buf[len(buf)-1] != byte(OptionEnd) {
		t.Fatalf("last byte = %#x, want End (255)", buf[len(buf)-1])
	}
	// the relay option's TLV must sit directly before End: code, len,
	// sub-option bytes (2 + 3 = 5 bytes), then End.
	if buf[len(buf)-1-2-5] != byte(OptionRelayAgentInformation) {
		t.Errorf("relay agent info option is not immediately before End")
	}
}

func TestMessageRoundTrip(t *testing.T) {
	m := buildDiscover()
	buf := m.Encode()
	decoded, err := DecodePacket(buf)
	if err != nil {
		t.Fatalf("DecodePacket: %v", err)
	}
	buf2 := decoded.Encode()
	if !bytes.Equal(buf, buf2) {
		t.Errorf("round-trip mismatch:\nfirst:  %x\nsecond: %x", buf, buf2)
	}
}

func TestValidateStrictAcceptsKnownType(t *testing.T) {
	m := buildDiscover()
	if err := m.ValidateStrict(); err != nil {
		t.Fatalf("ValidateStrict() = %v, want nil", err)
	}
}

func TestValidateStrictRejectsUnknownType(t *testing.T) {
	m := NewMessage()
	m.Options.Insert(&MessageTypeOption{Type: MessageType(200)})
	err := m.ValidateStrict()
	if err == nil {
		t.Fatal("expected error for out-of-range message type")
	}
	if _, ok := err.(*dhcpwire.InvalidMessageType); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.InvalidMessageType", err, err)
	}
}
