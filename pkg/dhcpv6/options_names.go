package dhcpv6

import (
	"net"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DNSServersOption carries opt 23: a list of IPv6 recursive DNS server
// addresses (RFC 3646 §3).
type DNSServersOption struct {
	Servers []net.IP
}

func (o *DNSServersOption) Code() OptionCode { return OptionDNSServers }
func (o *DNSServersOption) encodePayload(w *dhcpwire.Writer) {
	for _, ip := range o.Servers {
		w.WriteIPv6(ip)
	}
}

func decodeDNSServers(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	servers, err := c.ReadIPv6List(len(payload))
	if err != nil {
		return nil, err
	}
	return &DNSServersOption{Servers: servers}, nil
}

// DomainSearchListOption carries opt 24: an RFC 1035-encoded list of
// domain suffixes. DHCPv6 domain names are always encoded uncompressed
// (RFC 3315 §8), unlike their v4 opt 119 counterpart.
type DomainSearchListOption struct {
	Domains []string
}

func (o *DomainSearchListOption) Code() OptionCode { return OptionDomainSearchList }
func (o *DomainSearchListOption) encodePayload(w *dhcpwire.Writer) {
	var buf []byte
	for _, d := range o.Domains {
		var err error
		buf, err = dhcpwire.DefaultNameCodec.EncodeName(buf, d, false, nil)
		if err != nil {
			return
		}
	}
	w.WriteBytes(buf)
}

func decodeDomainSearchList(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	var domains []string
	offset := 0
	for offset < len(payload) {
		name, next, err := dhcpwire.DefaultNameCodec.DecodeName(payload, offset)
		if err != nil {
			return nil, &dhcpwire.BadDomainName{Reason: err.Error()}
		}
		domains = append(domains, name)
		if next <= offset {
			return nil, &dhcpwire.BadDomainName{Reason: "decoder made no progress"}
		}
		offset = next
	}
	return &DomainSearchListOption{Domains: domains}, nil
}

// ClientFQDNOption carries opt 39 (RFC 4704 §4): a flags byte followed by
// the client's fully qualified domain name.
type ClientFQDNOption struct {
	Flags  byte
	Domain string
}

func (o *ClientFQDNOption) Code() OptionCode { return OptionClientFQDN }
func (o *ClientFQDNOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(o.Flags)
	buf, err := dhcpwire.DefaultNameCodec.EncodeName(nil, o.Domain, false, nil)
	if err != nil {
		return
	}
	w.WriteBytes(buf)
}

func decodeClientFQDN(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) < 1 {
		return nil, &dhcpwire.InvalidPayload{Reason: "missing FQDN flags byte"}
	}
	name, _, err := dhcpwire.DefaultNameCodec.DecodeName(payload[1:], 0)
	if err != nil {
		return nil, &dhcpwire.BadDomainName{Reason: err.Error()}
	}
	return &ClientFQDNOption{Flags: payload[0], Domain: name}, nil
}

func init() {
	register(OptionDNSServers, decodeDNSServers)
	register(OptionDomainSearchList, decodeDomainSearchList)
	register(OptionClientFQDN, decodeClientFQDN)
}
