package dhcpv6

import "github.com/bluecatengineering/dhcproto/pkg/dhcpwire"

// RelayMsgOption carries opt 9: the relayed message itself, recursively
// nested — either a plain Message or another RelayMessage. Decoding
// enforces the bounded nesting depth shared with RelayMessage's own
// envelope.
type RelayMsgOption struct {
	Inner V6Message
}

func (o *RelayMsgOption) Code() OptionCode { return OptionRelayMessage }
func (o *RelayMsgOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes(o.Inner.Encode())
}

func decodeRelayMsg(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	inner, err := decodeAt(payload, depth)
	if err != nil {
		return nil, err
	}
	return &RelayMsgOption{Inner: inner}, nil
}

func init() {
	register(OptionRelayMessage, decodeRelayMsg)
}
