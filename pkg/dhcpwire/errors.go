// Package dhcpwire provides the primitives shared by the DHCPv4 and DHCPv6
// codecs: a bounds-checked byte cursor, an append-only writer, the RFC 1035
// domain-name codec capability, and the error taxonomy both families return.
package dhcpwire

import "fmt"

// NotEnoughBytes is returned whenever a read would run past the end of the
// input buffer. It is also used by callers that want to distinguish a
// truncated message from a structurally invalid one.
type NotEnoughBytes struct {
	Need int
	Have int
}

func (e *NotEnoughBytes) Error() string {
	return fmt.Sprintf("not enough bytes: need %d, have %d", e.Need, e.Have)
}

// InvalidMagic is returned when a DHCPv4 header's magic cookie does not
// match 0x63825363 (RFC 2131 §3).
type InvalidMagic struct {
	Got []byte
}

func (e *InvalidMagic) Error() string {
	return fmt.Sprintf("invalid DHCP magic cookie: %v", e.Got)
}

// InvalidMessageType is returned in strict mode when a v4 option 53 value
// falls outside the documented DHCPDISCOVER..DHCPLEASEACTIVE range.
type InvalidMessageType struct {
	Got byte
}

func (e *InvalidMessageType) Error() string {
	return fmt.Sprintf("invalid DHCP message type: %d", e.Got)
}

// InvalidPayload is returned when a well-known option's payload fails a
// structural check (wrong length, bad sub-option framing, etc).
type InvalidPayload struct {
	Code   int
	Reason string
}

func (e *InvalidPayload) Error() string {
	return fmt.Sprintf("invalid payload for option %d: %s", e.Code, e.Reason)
}

// InvalidUTF8 is returned when a status message or URL-typed option payload
// is not valid UTF-8.
type InvalidUTF8 struct {
	Code int
}

func (e *InvalidUTF8) Error() string {
	return fmt.Sprintf("invalid utf-8 in option %d", e.Code)
}

// BadDomainName is returned when the NameCodec fails to decode or encode a
// domain name.
type BadDomainName struct {
	Reason string
}

func (e *BadDomainName) Error() string {
	return fmt.Sprintf("bad domain name: %s", e.Reason)
}

// RelayTooDeep is returned when a DHCPv6 RelayMessage nests a RelayMsg
// option more than MaxRelayDepth levels deep.
type RelayTooDeep struct {
	Depth int
}

func (e *RelayTooDeep) Error() string {
	return fmt.Sprintf("relay message nesting exceeds maximum depth (%d)", e.Depth)
}

// Io wraps an error reported by an external sink during Encode. Nothing in
// this module returns it: Writer appends to an in-memory buffer and has no
// external sink that could fail.
type Io struct {
	Err error
}

func (e *Io) Error() string {
	return fmt.Sprintf("io error: %v", e.Err)
}

func (e *Io) Unwrap() error {
	return e.Err
}

// MaxRelayDepth is the maximum nesting depth a DHCPv6 RelayMessage may
// decode to before decoding fails with RelayTooDeep.
const MaxRelayDepth = 32
