package dhcpv4

import (
	"net"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// Relay Agent Information (v4 opt 82) sub-option codes: RFC 3046 §2.1
// defines 1 and 2; RFC 3527 §3 adds 5; RFC 3993 §2 adds 6; RFC 5107 §4
// adds 11.
const (
	RelaySubOptionCircuitID                byte = 1
	RelaySubOptionRemoteID                 byte = 2
	RelaySubOptionLinkSelection             byte = 5
	RelaySubOptionSubscriberID              byte = 6
	RelaySubOptionServerIdentifierOverride  byte = 11
)

// RelaySubOption is one TLV entry inside a RelayAgentInformationOption
// payload.
type RelaySubOption interface {
	SubCode() byte
	encodeSubPayload(w *dhcpwire.Writer)
}

// RelayCircuitID carries sub-option 1: an opaque circuit identifier
// assigned by the relay agent.
type RelayCircuitID struct{ Value []byte }

func (s *RelayCircuitID) SubCode() byte { return RelaySubOptionCircuitID }
func (s *RelayCircuitID) encodeSubPayload(w *dhcpwire.Writer) { w.WriteBytes(s.Value) }

// RelayRemoteID carries sub-option 2: an opaque identifier for the remote
// host end of the circuit.
type RelayRemoteID struct{ Value []byte }

func (s *RelayRemoteID) SubCode() byte { return RelaySubOptionRemoteID }
func (s *RelayRemoteID) encodeSubPayload(w *dhcpwire.Writer) { w.WriteBytes(s.Value) }

// RelayLinkSelection carries sub-option 5 (RFC 3527 §3): the subnet the
// relay wants an address selected from, as an IPv4 address.
type RelayLinkSelection struct{ IP net.IP }

func (s *RelayLinkSelection) SubCode() byte { return RelaySubOptionLinkSelection }
func (s *RelayLinkSelection) encodeSubPayload(w *dhcpwire.Writer) { w.WriteIPv4(s.IP) }

// RelaySubscriberID carries sub-option 6 (RFC 3993 §2): an operator-
// assigned subscriber identifier, stable across circuit changes.
type RelaySubscriberID struct{ Value []byte }

func (s *RelaySubscriberID) SubCode() byte { return RelaySubOptionSubscriberID }
func (s *RelaySubscriberID) encodeSubPayload(w *dhcpwire.Writer) { w.WriteBytes(s.Value) }

// RelayServerIdentifierOverride carries sub-option 11 (RFC 5107 §4): the
// address the relay wants the server to use as its own in replies to this
// client.
type RelayServerIdentifierOverride struct{ IP net.IP }

func (s *RelayServerIdentifierOverride) SubCode() byte { return RelaySubOptionServerIdentifierOverride }
func (s *RelayServerIdentifierOverride) encodeSubPayload(w *dhcpwire.Writer) { w.WriteIPv4(s.IP) }

// RelayUnknownSubOption preserves a sub-option this library does not
// otherwise interpret.
type RelayUnknownSubOption struct {
	subCode byte
	Value   []byte
}

func (s *RelayUnknownSubOption) SubCode() byte { return s.subCode }
func (s *RelayUnknownSubOption) encodeSubPayload(w *dhcpwire.Writer) { w.WriteBytes(s.Value) }

// RelayAgentInformationOption carries opt 82: a sequence of TLV
// sub-options appended by DHCP relay agents (RFC 3046 §2.1).
type RelayAgentInformationOption struct {
	SubOptions []RelaySubOption
}

func (o *RelayAgentInformationOption) Code() OptionCode { return OptionRelayAgentInformation }

func (o *RelayAgentInformationOption) encodePayload(w *dhcpwire.Writer) {
	for _, sub := range o.SubOptions {
		scratch := dhcpwire.NewWriter()
		sub.encodeSubPayload(scratch)
		payload := scratch.Bytes()
		w.WriteU8(sub.SubCode())
		w.WriteU8(byte(len(payload)))
		w.WriteBytes(payload)
	}
}

func decodeRelayAgentInformation(code OptionCode, payload []byte) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	var subs []RelaySubOption
	for c.Len() > 0 {
		subCode, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		subLen, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		subData, err := c.ReadBytes(int(subLen))
		if err != nil {
			return nil, err
		}

		switch subCode {
		case RelaySubOptionCircuitID:
			subs = append(subs, &RelayCircuitID{Value: subData})
		case RelaySubOptionRemoteID:
			subs = append(subs, &RelayRemoteID{Value: subData})
		case RelaySubOptionLinkSelection:
			if len(subData) != 4 {
				return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "link selection sub-option must be 4 bytes"}
			}
			subs = append(subs, &RelayLinkSelection{IP: BytesToIP(subData)})
		case RelaySubOptionSubscriberID:
			subs = append(subs, &RelaySubscriberID{Value: subData})
		case RelaySubOptionServerIdentifierOverride:
			if len(subData) != 4 {
				return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "server identifier override sub-option must be 4 bytes"}
			}
			subs = append(subs, &RelayServerIdentifierOverride{IP: BytesToIP(subData)})
		default:
			subs = append(subs, &RelayUnknownSubOption{subCode: subCode, Value: subData})
		}
	}
	return &RelayAgentInformationOption{SubOptions: subs}, nil
}

func init() {
	register(OptionRelayAgentInformation, decodeRelayAgentInformation)
}
