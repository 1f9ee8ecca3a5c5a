package dhcpv4

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DhcpOption is a single decoded DHCPv4 option. Each implementing type
// is one option variant; Code returns its numeric discriminator and
// encodePayload appends its payload (without the code/length framing,
// which DhcpOptions supplies).
type DhcpOption interface {
	Code() OptionCode
	encodePayload(w *dhcpwire.Writer)
}

// decodeFunc decodes a single option's payload (after RFC 3396 fragment
// reassembly) into a typed DhcpOption.
type decodeFunc func(code OptionCode, payload []byte) (DhcpOption, error)

// registry maps every known option code to its decoder. Codes absent from
// this table decode to Unknown.
var registry = map[OptionCode]decodeFunc{}

func register(code OptionCode, fn decodeFunc) {
	registry[code] = fn
}

// Unknown carries the opaque payload of any option code not otherwise
// implemented.
type Unknown struct {
	code    OptionCode
	Payload []byte
}

func (o *Unknown) Code() OptionCode { return o.code }
func (o *Unknown) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes(o.Payload)
}

// decodeOption dispatches payload to the registered decoder for code, or
// wraps it as Unknown if no decoder is registered.
func decodeOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if fn, ok := registry[code]; ok {
		return fn(code, payload)
	}
	return &Unknown{code: code, Payload: append([]byte(nil), payload...)}, nil
}

// EncodeOption renders opt's code, length and payload as it would appear on
// the wire, splitting the payload into RFC 3396 fragments of at most 255
// bytes if it overruns a single TLV.
func EncodeOption(w *dhcpwire.Writer, opt DhcpOption) {
	scratch := dhcpwire.NewWriter()
	opt.encodePayload(scratch)
	payload := scratch.Bytes()
	code := opt.Code()

	if len(payload) == 0 {
		w.WriteU8(byte(code))
		w.WriteU8(0)
		return
	}
	for off := 0; off < len(payload); off += maxFragmentPayload {
		end := off + maxFragmentPayload
		if end > len(payload) {
			end = len(payload)
		}
		w.WriteU8(byte(code))
		w.WriteU8(byte(end - off))
		w.WriteBytes(payload[off:end])
	}
}
