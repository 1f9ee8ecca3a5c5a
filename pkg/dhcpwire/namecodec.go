package dhcpwire

import (
	"strings"

	"github.com/miekg/dns"
)

// NameCodec is the external collaborator the option codec consumes for
// RFC 1035 domain names. It is not implemented by this package's callers
// at the option level — the codec just needs *a* capability that can
// encode a name into a growing output buffer and decode one back out of a
// byte slice at a given offset. DomainSearch (v4 opt 119) permits RFC 1035
// message compression; Client FQDN (v4 opt 81, RFC 4702; v6 opt 39, RFC
// 4704) and v6 in general, Domain Search List (v6 opt 24) included, never
// do (RFC 3315 §8 mandates uncompressed names on the wire).
type NameCodec interface {
	// EncodeName appends name's wire encoding to buf, returning the new
	// buffer. When compress is true, compression points into the
	// previously-written names tracked in the compression map (keyed by
	// fully-qualified, lowercased name, valued by the byte offset within
	// buf that the name's first label starts at).
	EncodeName(buf []byte, name string, compress bool, compression map[string]int) ([]byte, error)

	// DecodeName decodes one name starting at offset within buf, which
	// must contain the full option payload the name is embedded in (so
	// that a compression pointer can resolve against earlier names in
	// the same payload). It returns the name and the offset immediately
	// following it.
	DecodeName(buf []byte, offset int) (name string, next int, err error)
}

// DefaultNameCodec is the miekg/dns-backed NameCodec used by both v4 and
// v6 decoders/encoders unless a caller supplies its own.
var DefaultNameCodec NameCodec = dnsNameCodec{}

type dnsNameCodec struct{}

// scratchSlack is extra headroom appended to the growing buffer before
// handing it to dns.PackDomainName, which writes into a preallocated
// slice rather than growing one. A domain name's wire encoding can never
// exceed 255 bytes (RFC 1035 §3.1).
const scratchSlack = 256

func (dnsNameCodec) EncodeName(buf []byte, name string, compress bool, compression map[string]int) ([]byte, error) {
	off := len(buf)
	scratch := make([]byte, off+scratchSlack)
	copy(scratch, buf)

	newOff, err := dns.PackDomainName(dns.Fqdn(name), scratch, off, compression, compress)
	if err != nil {
		return nil, &BadDomainName{Reason: err.Error()}
	}
	return scratch[:newOff], nil
}

func (dnsNameCodec) DecodeName(buf []byte, offset int) (string, int, error) {
	name, next, err := dns.UnpackDomainName(buf, offset)
	if err != nil {
		return "", 0, &BadDomainName{Reason: err.Error()}
	}
	return strings.TrimSuffix(name, "."), next, nil
}
