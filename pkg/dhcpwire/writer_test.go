package dhcpwire

import (
	"net"
	"testing"
)

func TestWriterPrimitivesRoundTrip(t *testing.T) {
	w := NewWriter()
	w.WriteU8(0x01)
	w.WriteU16(0x0203)
	w.WriteU32(4)
	w.WriteIPv4(net.IPv4(10, 0, 0, 1))

	c := NewCursor(w.Bytes())
	if b, _ := c.ReadU8(); b != 0x01 {
		t.Errorf("byte = %x", b)
	}
	if v, _ := c.ReadU16(); v != 0x0203 {
		t.Errorf("u16 = %x", v)
	}
	if v, _ := c.ReadU32(); v != 4 {
		t.Errorf("u32 = %d", v)
	}
	ip, _ := c.ReadIPv4()
	if ip.String() != "10.0.0.1" {
		t.Errorf("ip = %v", ip)
	}
}

func TestWriterReserveAndPatch(t *testing.T) {
	w := NewWriter()
	pos := w.Reserve(2)
	w.WriteBytes([]byte("hello"))
	w.PatchU16(pos, uint16(len("hello")))

	c := NewCursor(w.Bytes())
	n, _ := c.ReadU16()
	if n != 5 {
		t.Fatalf("patched length = %d, want 5", n)
	}
	s, _ := c.ReadString(int(n))
	if s != "hello" {
		t.Errorf("s = %q", s)
	}
}

func TestWriterWriteFill(t *testing.T) {
	w := NewWriter()
	w.WriteFill(4, 0xFF)
	want := []byte{0xFF, 0xFF, 0xFF, 0xFF}
	if string(w.Bytes()) != string(want) {
		t.Errorf("WriteFill = %v, want %v", w.Bytes(), want)
	}
}
