package dhcpwire

import (
	"bytes"
	"encoding/binary"
	"net"
)

// Cursor reads big-endian primitives from a byte slice, tracking a
// monotonically advancing read position. All reads are bounds-checked
// before any access; callers get a *NotEnoughBytes instead of a panic.
type Cursor struct {
	buf []byte
	pos int
}

// NewCursor wraps buf for sequential reading.
func NewCursor(buf []byte) *Cursor {
	return &Cursor{buf: buf}
}

// Pos returns the current read offset.
func (c *Cursor) Pos() int {
	return c.pos
}

// Len returns the number of unread bytes remaining.
func (c *Cursor) Len() int {
	return len(c.buf) - c.pos
}

// Remaining returns the unread tail of the buffer, zero-copy.
func (c *Cursor) Remaining() []byte {
	return c.buf[c.pos:]
}

func (c *Cursor) require(n int) error {
	if n > c.Len() {
		return &NotEnoughBytes{Need: n, Have: c.Len()}
	}
	return nil
}

// Seek repositions the cursor to an absolute offset within the buffer.
func (c *Cursor) Seek(pos int) error {
	if pos < 0 || pos > len(c.buf) {
		return &NotEnoughBytes{Need: pos, Have: len(c.buf)}
	}
	c.pos = pos
	return nil
}

// PeekU8 returns the next byte without advancing the cursor.
func (c *Cursor) PeekU8() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	return c.buf[c.pos], nil
}

// ReadU8 reads one byte.
func (c *Cursor) ReadU8() (byte, error) {
	if err := c.require(1); err != nil {
		return 0, err
	}
	b := c.buf[c.pos]
	c.pos++
	return b, nil
}

// ReadU16 reads a big-endian uint16.
func (c *Cursor) ReadU16() (uint16, error) {
	if err := c.require(2); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint16(c.buf[c.pos:])
	c.pos += 2
	return v, nil
}

// ReadU32 reads a big-endian uint32.
func (c *Cursor) ReadU32() (uint32, error) {
	if err := c.require(4); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint32(c.buf[c.pos:])
	c.pos += 4
	return v, nil
}

// ReadU64 reads a big-endian uint64.
func (c *Cursor) ReadU64() (uint64, error) {
	if err := c.require(8); err != nil {
		return 0, err
	}
	v := binary.BigEndian.Uint64(c.buf[c.pos:])
	c.pos += 8
	return v, nil
}

// ReadU128 reads a 16-byte big-endian value.
func (c *Cursor) ReadU128() ([16]byte, error) {
	var out [16]byte
	if err := c.require(16); err != nil {
		return out, err
	}
	copy(out[:], c.buf[c.pos:c.pos+16])
	c.pos += 16
	return out, nil
}

// Slice returns a zero-copy view of the next n bytes and advances past
// them.
func (c *Cursor) Slice(n int) ([]byte, error) {
	if err := c.require(n); err != nil {
		return nil, err
	}
	s := c.buf[c.pos : c.pos+n]
	c.pos += n
	return s, nil
}

// ReadBytes returns an owned copy of the next n bytes.
func (c *Cursor) ReadBytes(n int) ([]byte, error) {
	s, err := c.Slice(n)
	if err != nil {
		return nil, err
	}
	out := make([]byte, n)
	copy(out, s)
	return out, nil
}

// ReadFixed copies exactly n bytes into dst, which must have length n.
func (c *Cursor) ReadFixed(dst []byte) error {
	s, err := c.Slice(len(dst))
	if err != nil {
		return err
	}
	copy(dst, s)
	return nil
}

// ReadIPv4 reads a 4-byte IPv4 address.
func (c *Cursor) ReadIPv4() (net.IP, error) {
	b, err := c.ReadBytes(4)
	if err != nil {
		return nil, err
	}
	return net.IPv4(b[0], b[1], b[2], b[3]).To4(), nil
}

// ReadIPv4List reads length bytes as a list of IPv4 addresses; length must
// be a multiple of 4.
func (c *Cursor) ReadIPv4List(length int) ([]net.IP, error) {
	if length%4 != 0 {
		return nil, &InvalidPayload{Reason: "IPv4 list length not a multiple of 4"}
	}
	b, err := c.Slice(length)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, 0, length/4)
	for i := 0; i < length; i += 4 {
		ips = append(ips, net.IPv4(b[i], b[i+1], b[i+2], b[i+3]).To4())
	}
	return ips, nil
}

// ReadIPv4Pairs reads length bytes as pairs of IPv4 addresses (RFC 2132
// §3.7/§3.20 policy filter / static route style options); length must be a
// multiple of 8.
func (c *Cursor) ReadIPv4Pairs(length int) ([][2]net.IP, error) {
	if length%8 != 0 {
		return nil, &InvalidPayload{Reason: "IPv4 pair list length not a multiple of 8"}
	}
	b, err := c.Slice(length)
	if err != nil {
		return nil, err
	}
	pairs := make([][2]net.IP, 0, length/8)
	for i := 0; i < length; i += 8 {
		a := net.IPv4(b[i], b[i+1], b[i+2], b[i+3]).To4()
		g := net.IPv4(b[i+4], b[i+5], b[i+6], b[i+7]).To4()
		pairs = append(pairs, [2]net.IP{a, g})
	}
	return pairs, nil
}

// ReadIPv6 reads a 16-byte IPv6 address.
func (c *Cursor) ReadIPv6() (net.IP, error) {
	b, err := c.ReadBytes(16)
	if err != nil {
		return nil, err
	}
	return net.IP(b), nil
}

// ReadIPv6List reads length bytes as a list of IPv6 addresses; length must
// be a multiple of 16.
func (c *Cursor) ReadIPv6List(length int) ([]net.IP, error) {
	if length%16 != 0 {
		return nil, &InvalidPayload{Reason: "IPv6 list length not a multiple of 16"}
	}
	b, err := c.Slice(length)
	if err != nil {
		return nil, err
	}
	ips := make([]net.IP, 0, length/16)
	for i := 0; i < length; i += 16 {
		addr := make(net.IP, 16)
		copy(addr, b[i:i+16])
		ips = append(ips, addr)
	}
	return ips, nil
}

// ReadString reads n bytes and returns them as a string without any UTF-8
// validation (used by option payloads whose text is caller-interpreted).
func (c *Cursor) ReadString(n int) (string, error) {
	b, err := c.Slice(n)
	if err != nil {
		return "", err
	}
	return string(b), nil
}

// ReadNulString reads exactly n bytes and interprets them as a
// NUL-terminated string, the format used by the v4 sname/file header
// fields: the substring up to (not including) the first NUL byte, or the
// empty string if the field starts with NUL.
func (c *Cursor) ReadNulString(n int) (string, error) {
	b, err := c.Slice(n)
	if err != nil {
		return "", err
	}
	if idx := bytes.IndexByte(b, 0); idx >= 0 {
		return string(b[:idx]), nil
	}
	return string(b), nil
}
