package dhcpwire

import (
	"encoding/binary"
	"net"
)

// Writer is an append-only big-endian byte sink. Writes never fail on
// their own; encoding is infallible for well-formed in-memory values (spec
// §7). Reserve/Patch support emitting a length prefix before its payload
// is known.
type Writer struct {
	buf []byte
}

// NewWriter returns a Writer appending to an empty buffer.
func NewWriter() *Writer {
	return &Writer{}
}

// Bytes returns the accumulated output.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// Len returns the number of bytes written so far.
func (w *Writer) Len() int {
	return len(w.buf)
}

// WriteU8 appends a single byte.
func (w *Writer) WriteU8(v byte) {
	w.buf = append(w.buf, v)
}

// WriteU16 appends a big-endian uint16.
func (w *Writer) WriteU16(v uint16) {
	w.buf = binary.BigEndian.AppendUint16(w.buf, v)
}

// WriteU32 appends a big-endian uint32.
func (w *Writer) WriteU32(v uint32) {
	w.buf = binary.BigEndian.AppendUint32(w.buf, v)
}

// WriteU64 appends a big-endian uint64.
func (w *Writer) WriteU64(v uint64) {
	w.buf = binary.BigEndian.AppendUint64(w.buf, v)
}

// WriteBytes appends raw bytes.
func (w *Writer) WriteBytes(b []byte) {
	w.buf = append(w.buf, b...)
}

// WriteFill appends n copies of byte.
func (w *Writer) WriteFill(n int, b byte) {
	for i := 0; i < n; i++ {
		w.buf = append(w.buf, b)
	}
}

// WriteIPv4 appends the 4-byte form of ip, or four zero bytes if ip is nil
// or not a valid IPv4 address.
func (w *Writer) WriteIPv4(ip net.IP) {
	v4 := ip.To4()
	if v4 == nil {
		w.WriteFill(4, 0)
		return
	}
	w.WriteBytes(v4)
}

// WriteIPv6 appends the 16-byte form of ip, or sixteen zero bytes if ip is
// nil or not a valid IPv6 address.
func (w *Writer) WriteIPv6(ip net.IP) {
	v6 := ip.To16()
	if v6 == nil {
		w.WriteFill(16, 0)
		return
	}
	w.WriteBytes(v6)
}

// Reserve appends n zero bytes and returns the offset at which they start,
// to be filled in later with PatchU16 once a length is known.
func (w *Writer) Reserve(n int) int {
	pos := len(w.buf)
	w.WriteFill(n, 0)
	return pos
}

// PatchU16 overwrites the 2 bytes at pos with the big-endian encoding of v.
// Used to backfill a length prefix written earlier via Reserve.
func (w *Writer) PatchU16(pos int, v uint16) {
	binary.BigEndian.PutUint16(w.buf[pos:pos+2], v)
}

// PatchU8 overwrites the byte at pos with v.
func (w *Writer) PatchU8(pos int, v byte) {
	w.buf[pos] = v
}
