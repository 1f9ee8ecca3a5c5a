package dhcpv6

import (
	"bytes"
	"testing"

	"github.com/google/uuid"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

func encodeDUID(t *testing.T, d *DUID) []byte {
	t.Helper()
	w := dhcpwire.NewWriter()
	d.Encode(w)
	return w.Bytes()
}

func TestDUIDLLTRoundTrip(t *testing.T) {
	d := NewDUIDLLT(1, 0x5F5E1000, []byte{0xDE, 0xAD, 0xBE, 0xEF, 0x00, 0x01})
	wire := encodeDUID(t, d)
	got, err := DecodeDUID(wire)
	if err != nil {
		t.Fatalf("DecodeDUID() error: %v", err)
	}
	if got.Type != DUIDTypeLLT || got.HardwareType != 1 || got.Time != 0x5F5E1000 {
		t.Fatalf("unexpected DUID: %+v", got)
	}
	if !bytes.Equal(got.LinkLayerAddr, d.LinkLayerAddr) {
		t.Fatalf("LinkLayerAddr = %x, want %x", got.LinkLayerAddr, d.LinkLayerAddr)
	}
}

func TestDUIDENRoundTrip(t *testing.T) {
	d := NewDUIDEN(32473, []byte("identifier-bytes"))
	got, err := DecodeDUID(encodeDUID(t, d))
	if err != nil {
		t.Fatalf("DecodeDUID() error: %v", err)
	}
	if got.Type != DUIDTypeEN || got.EnterpriseNumber != 32473 {
		t.Fatalf("unexpected DUID: %+v", got)
	}
	if !bytes.Equal(got.Identifier, d.Identifier) {
		t.Fatalf("Identifier = %q, want %q", got.Identifier, d.Identifier)
	}
}

func TestDUIDLLRoundTrip(t *testing.T) {
	d := NewDUIDLL(1, []byte{0x01, 0x02, 0x03, 0x04, 0x05, 0x06})
	got, err := DecodeDUID(encodeDUID(t, d))
	if err != nil {
		t.Fatalf("DecodeDUID() error: %v", err)
	}
	if got.Type != DUIDTypeLL || got.HardwareType != 1 {
		t.Fatalf("unexpected DUID: %+v", got)
	}
}

func TestDUIDUUIDRoundTrip(t *testing.T) {
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")
	d := NewDUIDUUID(id)
	got, err := DecodeDUID(encodeDUID(t, d))
	if err != nil {
		t.Fatalf("DecodeDUID() error: %v", err)
	}
	if got.Type != DUIDTypeUUID || got.UUID != id {
		t.Fatalf("unexpected DUID: %+v", got)
	}
}

func TestDUIDUUIDWrongLength(t *testing.T) {
	payload := []byte{0x00, 0x04, 0x01, 0x02, 0x03}
	_, err := DecodeDUID(payload)
	if err == nil {
		t.Fatal("expected error decoding short DUID-UUID")
	}
	if _, ok := err.(*dhcpwire.InvalidPayload); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.InvalidPayload", err, err)
	}
}

func TestDUIDUnknownTypePreserved(t *testing.T) {
	payload := []byte{0x00, 0x63, 0xAA, 0xBB, 0xCC}
	d, err := DecodeDUID(payload)
	if err != nil {
		t.Fatalf("DecodeDUID() error: %v", err)
	}
	if d.Type != DUIDType(0x63) {
		t.Fatalf("Type = %d, want 0x63", d.Type)
	}
	if !bytes.Equal(d.Unknown, []byte{0xAA, 0xBB, 0xCC}) {
		t.Fatalf("Unknown = %x", d.Unknown)
	}
	wire := encodeDUID(t, d)
	if !bytes.Equal(wire, payload) {
		t.Fatalf("re-encode = %x, want %x", wire, payload)
	}
}

func TestDecodeDUIDTooShort(t *testing.T) {
	_, err := DecodeDUID([]byte{0x00})
	if err == nil {
		t.Fatal("expected error decoding 1-byte DUID")
	}
	if _, ok := err.(*dhcpwire.NotEnoughBytes); !ok {
		t.Fatalf("error = %v (%T), want *dhcpwire.NotEnoughBytes", err, err)
	}
}
