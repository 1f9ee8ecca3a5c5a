package dhcpv4

import (
	"net"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// Message is a decoded DHCPv4 message (RFC 2131 §2): the fixed 236-byte
// header, the 4-byte magic cookie, and the option area.
type Message struct {
	Op     OpCode
	HType  HardwareType
	hlen   byte
	Hops   byte
	XID    uint32
	Secs   uint16
	Flags  uint16
	CIAddr net.IP
	YIAddr net.IP
	SIAddr net.IP
	GIAddr net.IP
	chaddr [16]byte
	SName  [64]byte
	File   [128]byte

	Options *DhcpOptions
}

// NewMessage returns an empty Message with an initialized option
// container and BOOTREQUEST header defaults.
func NewMessage() *Message {
	return &Message{
		Op:      OpCodeBootRequest,
		HType:   HardwareTypeEthernet,
		Options: NewDhcpOptions(),
	}
}

// HLen returns the hardware address length, which SetCHAddr keeps
// consistent with the stored address.
func (m *Message) HLen() byte { return m.hlen }

// CHAddr returns the client hardware address, truncated to HLen bytes.
func (m *Message) CHAddr() net.HardwareAddr {
	n := int(m.hlen)
	if n > 16 {
		n = 16
	}
	return net.HardwareAddr(append([]byte(nil), m.chaddr[:n]...))
}

// SetCHAddr stores addr as the client hardware address and updates HLen
// to match its length, rejecting anything over 16 bytes.
func (m *Message) SetCHAddr(addr net.HardwareAddr) error {
	if len(addr) > 16 {
		return &dhcpwire.InvalidPayload{Reason: "chaddr exceeds 16 bytes"}
	}
	m.chaddr = [16]byte{}
	copy(m.chaddr[:], addr)
	m.hlen = byte(len(addr))
	return nil
}

// ServerName returns the server host name field up to its first NUL byte.
func (m *Message) ServerName() string {
	return nulString(m.SName[:])
}

// SetServerName stores s as the server host name, NUL-padded to 64 bytes.
func (m *Message) SetServerName(s string) error {
	return setNulField(m.SName[:], s)
}

// BootFileName returns the boot file name field up to its first NUL byte.
func (m *Message) BootFileName() string {
	return nulString(m.File[:])
}

// SetBootFileName stores s as the boot file name, NUL-padded to 128 bytes.
func (m *Message) SetBootFileName(s string) error {
	return setNulField(m.File[:], s)
}

func nulString(b []byte) string {
	for i, v := range b {
		if v == 0 {
			return string(b[:i])
		}
	}
	return string(b)
}

func setNulField(dst []byte, s string) error {
	if len(s) > len(dst) {
		return &dhcpwire.InvalidPayload{Reason: "string exceeds field width"}
	}
	for i := range dst {
		dst[i] = 0
	}
	copy(dst, s)
	return nil
}

// MessageType returns the value of option 53, or 0 if absent.
func (m *Message) MessageType() MessageType {
	if opt, ok := m.Options.Get(OptionDHCPMessageType); ok {
		if mt, ok := opt.(*MessageTypeOption); ok {
			return mt.Type
		}
	}
	return 0
}

// IsBroadcast reports whether the broadcast flag (bit 15 of Flags) is set.
func (m *Message) IsBroadcast() bool {
	return m.Flags&0x8000 != 0
}

// IsRelayed reports whether the message passed through a relay agent
// (GIAddr is set and non-zero).
func (m *Message) IsRelayed() bool {
	return m.GIAddr != nil && !m.GIAddr.Equal(net.IPv4zero)
}

// ValidateStrict rejects a decoded message whose opt 53 MessageType falls
// outside the documented DHCPDISCOVER..DHCPLEASEACTIVE range. DecodePacket
// itself is always permissive and stores an out-of-range value as-is;
// callers that want the rejecting behavior call this afterward.
func (m *Message) ValidateStrict() error {
	if mt := m.MessageType(); !mt.IsKnown() {
		return &dhcpwire.InvalidMessageType{Got: byte(mt)}
	}
	return nil
}

// DecodePacket parses a raw DHCPv4 message.
func DecodePacket(data []byte) (*Message, error) {
	c := dhcpwire.NewCursor(data)
	m := &Message{Options: NewDhcpOptions()}

	op, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	m.Op = OpCode(op)

	htype, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	m.HType = HardwareType(htype)

	hlen, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	m.hlen = hlen

	hops, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	m.Hops = hops

	if m.XID, err = c.ReadU32(); err != nil {
		return nil, err
	}
	if m.Secs, err = c.ReadU16(); err != nil {
		return nil, err
	}
	if m.Flags, err = c.ReadU16(); err != nil {
		return nil, err
	}
	if m.CIAddr, err = c.ReadIPv4(); err != nil {
		return nil, err
	}
	if m.YIAddr, err = c.ReadIPv4(); err != nil {
		return nil, err
	}
	if m.SIAddr, err = c.ReadIPv4(); err != nil {
		return nil, err
	}
	if m.GIAddr, err = c.ReadIPv4(); err != nil {
		return nil, err
	}
	if err := c.ReadFixed(m.chaddr[:]); err != nil {
		return nil, err
	}
	if err := c.ReadFixed(m.SName[:]); err != nil {
		return nil, err
	}
	if err := c.ReadFixed(m.File[:]); err != nil {
		return nil, err
	}

	cookie, err := c.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	if cookie[0] != MagicCookie[0] || cookie[1] != MagicCookie[1] ||
		cookie[2] != MagicCookie[2] || cookie[3] != MagicCookie[3] {
		return nil, &dhcpwire.InvalidMagic{Got: cookie}
	}

	opts, err := DecodeOptions(c.Remaining())
	if err != nil {
		return nil, err
	}
	m.Options = opts

	return m, nil
}

// Encode serializes m to its wire form: fixed header, magic cookie, then
// the option area terminated by the implicit End marker.
func (m *Message) Encode() []byte {
	w := dhcpwire.NewWriter()
	w.WriteU8(byte(m.Op))
	w.WriteU8(byte(m.HType))
	w.WriteU8(m.hlen)
	w.WriteU8(m.Hops)
	w.WriteU32(m.XID)
	w.WriteU16(m.Secs)
	w.WriteU16(m.Flags)
	w.WriteIPv4(m.CIAddr)
	w.WriteIPv4(m.YIAddr)
	w.WriteIPv4(m.SIAddr)
	w.WriteIPv4(m.GIAddr)
	w.WriteBytes(m.chaddr[:])
	w.WriteBytes(m.SName[:])
	w.WriteBytes(m.File[:])
	w.WriteBytes(MagicCookie[:])

	if m.Options != nil {
		m.Options.Encode(w)
	} else {
		w.WriteU8(byte(OptionEnd))
	}

	return w.Bytes()
}
