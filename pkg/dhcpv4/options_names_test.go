package dhcpv4

import (
	"reflect"
	"testing"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

func TestDomainSearchRoundTrip(t *testing.T) {
	opt := &DomainSearchOption{Domains: []string{"eng.example.com", "corp.example.com"}}
	w := dhcpwire.NewWriter()
	opt.encodePayload(w)

	decoded, err := decodeDomainSearch(OptionDomainSearch, w.Bytes())
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	got := decoded.(*DomainSearchOption)
	if !reflect.DeepEqual(got.Domains, opt.Domains) {
		t.Errorf("Domains = %v, want %v", got.Domains, opt.Domains)
	}
}

func TestDomainSearchCompressesSharedSuffix(t *testing.T) {
	opt := &DomainSearchOption{Domains: []string{"a.example.com", "b.example.com"}}
	w := dhcpwire.NewWriter()
	opt.encodePayload(w)
	// both names fully spelled out would take more than 13+13=26 bytes of
	// labels; compression of the shared "example.com" suffix should keep
	// the payload well under that.
	if w.Len() >= len("a.example.com")+len("b.example.com") {
		t.Errorf("payload length %d shows no compression", w.Len())
	}
}
