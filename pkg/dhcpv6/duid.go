package dhcpv6

import (
	"encoding/binary"

	"github.com/google/uuid"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DUID is the tagged-variant identifier carried by ClientId/ServerId
// (RFC 8415 §11). Exactly one of the typed fields is meaningful,
// determined by Type; Unknown preserves anything this library does not
// otherwise interpret.
type DUID struct {
	Type DUIDType

	// DUID-LLT (Type == DUIDTypeLLT)
	HardwareType  uint16
	Time          uint32
	LinkLayerAddr []byte

	// DUID-EN (Type == DUIDTypeEN)
	EnterpriseNumber uint32
	Identifier       []byte

	// DUID-UUID (Type == DUIDTypeUUID)
	UUID uuid.UUID

	// Unknown (any other Type)
	Unknown []byte
}

// NewDUIDLLT builds a DUID-LLT variant (RFC 8415 §11.2).
func NewDUIDLLT(hwType uint16, t uint32, linkLayerAddr []byte) *DUID {
	return &DUID{Type: DUIDTypeLLT, HardwareType: hwType, Time: t, LinkLayerAddr: linkLayerAddr}
}

// NewDUIDEN builds a DUID-EN variant (RFC 8415 §11.3).
func NewDUIDEN(enterprise uint32, identifier []byte) *DUID {
	return &DUID{Type: DUIDTypeEN, EnterpriseNumber: enterprise, Identifier: identifier}
}

// NewDUIDLL builds a DUID-LL variant (RFC 8415 §11.4).
func NewDUIDLL(hwType uint16, linkLayerAddr []byte) *DUID {
	return &DUID{Type: DUIDTypeLL, HardwareType: hwType, LinkLayerAddr: linkLayerAddr}
}

// NewDUIDUUID builds a DUID-UUID variant (RFC 6355).
func NewDUIDUUID(id uuid.UUID) *DUID {
	return &DUID{Type: DUIDTypeUUID, UUID: id}
}

// Encode appends d's wire encoding (2-byte type selector plus
// variant-specific fields) to w.
func (d *DUID) Encode(w *dhcpwire.Writer) {
	w.WriteU16(uint16(d.Type))
	switch d.Type {
	case DUIDTypeLLT:
		w.WriteU16(d.HardwareType)
		w.WriteU32(d.Time)
		w.WriteBytes(d.LinkLayerAddr)
	case DUIDTypeEN:
		w.WriteU32(d.EnterpriseNumber)
		w.WriteBytes(d.Identifier)
	case DUIDTypeLL:
		w.WriteU16(d.HardwareType)
		w.WriteBytes(d.LinkLayerAddr)
	case DUIDTypeUUID:
		w.WriteBytes(d.UUID[:])
	default:
		w.WriteBytes(d.Unknown)
	}

	if w.Len() > MaxDUIDLength {
		dhcpwire.Warn("DUID exceeds RFC 8415 recommended maximum length", "length", w.Len(), "max", MaxDUIDLength)
	}
}

// DecodeDUID parses a DUID from payload, which must contain exactly the
// DUID's bytes (the enclosing option supplies the length).
func DecodeDUID(payload []byte) (*DUID, error) {
	if len(payload) > MaxDUIDLength {
		dhcpwire.Warn("decoded DUID exceeds RFC 8415 recommended maximum length", "length", len(payload), "max", MaxDUIDLength)
	}
	if len(payload) < 2 {
		return nil, &dhcpwire.NotEnoughBytes{Need: 2, Have: len(payload)}
	}
	typ := DUIDType(binary.BigEndian.Uint16(payload[:2]))
	rest := payload[2:]

	switch typ {
	case DUIDTypeLLT:
		if len(rest) < 6 {
			return nil, &dhcpwire.NotEnoughBytes{Need: 6, Have: len(rest)}
		}
		return &DUID{
			Type:          DUIDTypeLLT,
			HardwareType:  binary.BigEndian.Uint16(rest[:2]),
			Time:          binary.BigEndian.Uint32(rest[2:6]),
			LinkLayerAddr: append([]byte(nil), rest[6:]...),
		}, nil
	case DUIDTypeEN:
		if len(rest) < 4 {
			return nil, &dhcpwire.NotEnoughBytes{Need: 4, Have: len(rest)}
		}
		return &DUID{
			Type:             DUIDTypeEN,
			EnterpriseNumber: binary.BigEndian.Uint32(rest[:4]),
			Identifier:       append([]byte(nil), rest[4:]...),
		}, nil
	case DUIDTypeLL:
		if len(rest) < 2 {
			return nil, &dhcpwire.NotEnoughBytes{Need: 2, Have: len(rest)}
		}
		return &DUID{
			Type:          DUIDTypeLL,
			HardwareType:  binary.BigEndian.Uint16(rest[:2]),
			LinkLayerAddr: append([]byte(nil), rest[2:]...),
		}, nil
	case DUIDTypeUUID:
		if len(rest) != 16 {
			return nil, &dhcpwire.InvalidPayload{Reason: "DUID-UUID must be exactly 16 bytes"}
		}
		id, err := uuid.FromBytes(rest)
		if err != nil {
			return nil, &dhcpwire.InvalidPayload{Reason: err.Error()}
		}
		return &DUID{Type: DUIDTypeUUID, UUID: id}, nil
	default:
		return &DUID{Type: typ, Unknown: append([]byte(nil), rest...)}, nil
	}
}
