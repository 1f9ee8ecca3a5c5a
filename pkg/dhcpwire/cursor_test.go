package dhcpwire

import (
	"errors"
	"testing"
)

func TestCursorPrimitives(t *testing.T) {
	buf := []byte{0x01, 0x02, 0x03, 0x00, 0x00, 0x00, 0x04, 0xAA, 0xBB}
	c := NewCursor(buf)

	b, err := c.ReadU8()
	if err != nil || b != 0x01 {
		t.Fatalf("ReadU8() = %v, %v; want 0x01, nil", b, err)
	}

	u16, err := c.ReadU16()
	if err != nil || u16 != 0x0203 {
		t.Fatalf("ReadU16() = %v, %v; want 0x0203, nil", u16, err)
	}

	u32, err := c.ReadU32()
	if err != nil || u32 != 4 {
		t.Fatalf("ReadU32() = %v, %v; want 4, nil", u32, err)
	}

	rest, err := c.Slice(2)
	if err != nil || len(rest) != 2 || rest[0] != 0xAA || rest[1] != 0xBB {
		t.Fatalf("Slice(2) = %v, %v", rest, err)
	}

	if c.Len() != 0 {
		t.Fatalf("Len() = %d, want 0", c.Len())
	}
}

func TestCursorNotEnoughBytes(t *testing.T) {
	c := NewCursor([]byte{0x01, 0x02})
	_, err := c.ReadU32()
	var nb *NotEnoughBytes
	if !errors.As(err, &nb) {
		t.Fatalf("ReadU32() err = %v, want *NotEnoughBytes", err)
	}
	if nb.Need != 4 || nb.Have != 2 {
		t.Errorf("NotEnoughBytes = %+v, want {Need:4 Have:2}", nb)
	}
}

func TestCursorTruncationNeverPanics(t *testing.T) {
	full := []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}
	for k := 0; k <= len(full); k++ {
		c := NewCursor(full[:k])
		for {
			if _, err := c.ReadU8(); err != nil {
				break
			}
		}
	}
}

func TestCursorReadIPv4List(t *testing.T) {
	buf := []byte{10, 0, 0, 1, 10, 0, 0, 2}
	c := NewCursor(buf)
	ips, err := c.ReadIPv4List(8)
	if err != nil {
		t.Fatalf("ReadIPv4List: %v", err)
	}
	if len(ips) != 2 || ips[0].String() != "10.0.0.1" || ips[1].String() != "10.0.0.2" {
		t.Errorf("ips = %v", ips)
	}
}

func TestCursorReadIPv4ListBadLength(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3})
	if _, err := c.ReadIPv4List(3); err == nil {
		t.Fatal("expected error for non-multiple-of-4 length")
	}
}

func TestCursorReadNulString(t *testing.T) {
	buf := make([]byte, 16)
	copy(buf, "boot.example")
	c := NewCursor(buf)
	s, err := c.ReadNulString(16)
	if err != nil {
		t.Fatalf("ReadNulString: %v", err)
	}
	if s != "boot.example" {
		t.Errorf("s = %q, want %q", s, "boot.example")
	}
}

func TestCursorSeekAndPeek(t *testing.T) {
	c := NewCursor([]byte{1, 2, 3, 4})
	if err := c.Seek(2); err != nil {
		t.Fatalf("Seek: %v", err)
	}
	b, err := c.PeekU8()
	if err != nil || b != 3 {
		t.Fatalf("PeekU8() = %v, %v; want 3, nil", b, err)
	}
	if c.Pos() != 2 {
		t.Errorf("Pos() = %d, want 2 (Peek must not advance)", c.Pos())
	}
}
