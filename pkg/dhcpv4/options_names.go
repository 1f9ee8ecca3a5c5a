package dhcpv4

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DomainSearchOption carries opt 119 (RFC 3397): an RFC 1035-compressed
// list of domain suffixes for the resolver search path. Compression
// pointers are scoped to this option's own payload, never the enclosing
// message.
type DomainSearchOption struct {
	Domains []string
}

func (o *DomainSearchOption) Code() OptionCode { return OptionDomainSearch }

func (o *DomainSearchOption) encodePayload(w *dhcpwire.Writer) {
	var buf []byte
	compression := map[string]int{}
	for _, d := range o.Domains {
		var err error
		buf, err = dhcpwire.DefaultNameCodec.EncodeName(buf, d, true, compression)
		if err != nil {
			return
		}
	}
	w.WriteBytes(buf)
}

func decodeDomainSearch(code OptionCode, payload []byte) (DhcpOption, error) {
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
	return &DomainSearchOption{Domains: domains}, nil
}

func init() {
	register(OptionDomainSearch, decodeDomainSearch)
}
