package dhcpv4

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// MessageTypeOption carries opt 53, the single byte that identifies a
// DHCP message as DISCOVER/OFFER/REQUEST/etc (RFC 2131 §9.6).
type MessageTypeOption struct {
	Type MessageType
}

func (o *MessageTypeOption) Code() OptionCode { return OptionDHCPMessageType }
func (o *MessageTypeOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(byte(o.Type))
}

func decodeMessageTypeOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 1 byte"}
	}
	return &MessageTypeOption{Type: MessageType(payload[0])}, nil
}

// ParameterRequestListOption carries opt 55: an ordered list of option
// codes the client wishes the server to return.
type ParameterRequestListOption struct {
	Codes []OptionCode
}

func (o *ParameterRequestListOption) Code() OptionCode { return OptionParameterRequestList }
func (o *ParameterRequestListOption) encodePayload(w *dhcpwire.Writer) {
	for _, c := range o.Codes {
		w.WriteU8(byte(c))
	}
}

func decodeParameterRequestList(code OptionCode, payload []byte) (DhcpOption, error) {
	codes := make([]OptionCode, len(payload))
	for i, b := range payload {
		codes[i] = OptionCode(b)
	}
	return &ParameterRequestListOption{Codes: codes}, nil
}

// ClientMachineIdentifierOption carries opt 97 (RFC 4578 §2.4): a 1-byte
// type tag followed by an opaque identifier.
type ClientMachineIdentifierOption struct {
	Type       byte
	Identifier []byte
}

func (o *ClientMachineIdentifierOption) Code() OptionCode { return OptionClientMachineIdentifier }
func (o *ClientMachineIdentifierOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(o.Type)
	w.WriteBytes(o.Identifier)
}

func decodeClientMachineIdentifier(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) < 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "missing type byte"}
	}
	return &ClientMachineIdentifierOption{
		Type:       payload[0],
		Identifier: append([]byte(nil), payload[1:]...),
	}, nil
}

func init() {
	register(OptionDHCPMessageType, decodeMessageTypeOption)
	register(OptionParameterRequestList, decodeParameterRequestList)
	register(OptionClientMachineIdentifier, decodeClientMachineIdentifier)
}
