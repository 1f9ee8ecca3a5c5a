package dhcpv4

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// ClientFQDNOption carries opt 81 (RFC 4702 §2.1): a flags byte, two
// RCODE compatibility bytes (historically echoed by old servers, now
// reserved), and the client's fully qualified domain name.
type ClientFQDNOption struct {
	Flags  byte
	RCODE1 byte
	RCODE2 byte
	Domain string
}

func (o *ClientFQDNOption) Code() OptionCode { return OptionClientFQDN }

func (o *ClientFQDNOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(o.Flags)
	w.WriteU8(o.RCODE1)
	w.WriteU8(o.RCODE2)
	buf, err := dhcpwire.DefaultNameCodec.EncodeName(nil, o.Domain, false, nil)
	if err != nil {
		return
	}
	w.WriteBytes(buf)
}

func decodeClientFQDN(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) < 3 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "too short for FQDN flags"}
	}
	name, _, err := dhcpwire.DefaultNameCodec.DecodeName(payload[3:], 0)
	if err != nil {
		return nil, &dhcpwire.BadDomainName{Reason: err.Error()}
	}
	return &ClientFQDNOption{
		Flags:  payload[0],
		RCODE1: payload[1],
		RCODE2: payload[2],
		Domain: name,
	}, nil
}

func init() {
	register(OptionClientFQDN, decodeClientFQDN)
}
