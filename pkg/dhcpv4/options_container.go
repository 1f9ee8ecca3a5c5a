package dhcpv4

import (
	"sort"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DhcpOptions is the ordered, single-valued option container: at most
// one DhcpOption per code, with RFC 3396 fragment reassembly folded into
// decode and ascending-code ordering on encode except for the
// opt-82-before-End exception (RFC 3046 §2.1).
type DhcpOptions struct {
	m map[OptionCode]DhcpOption
}

// NewDhcpOptions returns an empty container.
func NewDhcpOptions() *DhcpOptions {
	return &DhcpOptions{m: make(map[OptionCode]DhcpOption)}
}

// Insert adds opt, replacing any existing entry with the same code.
func (o *DhcpOptions) Insert(opt DhcpOption) {
	o.m[opt.Code()] = opt
}

// Get returns the option stored under code, if any.
func (o *DhcpOptions) Get(code OptionCode) (DhcpOption, bool) {
	opt, ok := o.m[code]
	return opt, ok
}

// Remove deletes the option stored under code, if any.
func (o *DhcpOptions) Remove(code OptionCode) {
	delete(o.m, code)
}

// Len returns the number of stored options.
func (o *DhcpOptions) Len() int {
	return len(o.m)
}

// IsEmpty reports whether the container holds no options.
func (o *DhcpOptions) IsEmpty() bool {
	return len(o.m) == 0
}

// Clear removes every stored option.
func (o *DhcpOptions) Clear() {
	o.m = make(map[OptionCode]DhcpOption)
}

// Retain keeps only the options for which pred returns true.
func (o *DhcpOptions) Retain(pred func(DhcpOption) bool) {
	for code, opt := range o.m {
		if !pred(opt) {
			delete(o.m, code)
		}
	}
}

// Iter returns the stored options in canonical encode order: ascending
// numeric code, except RelayAgentInformation (opt 82) which is always
// moved to the end regardless of its numeric rank.
func (o *DhcpOptions) Iter() []DhcpOption {
	codes := make([]OptionCode, 0, len(o.m))
	_, hasRelay := o.m[OptionRelayAgentInformation]
	for c := range o.m {
		if c == OptionRelayAgentInformation {
			continue
		}
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })

	out := make([]DhcpOption, 0, len(o.m))
	for _, c := range codes {
		out = append(out, o.m[c])
	}
	if hasRelay {
		out = append(out, o.m[OptionRelayAgentInformation])
	}
	return out
}

// DecodeOptions parses a TLV option stream: Pad (0) is skipped and never
// stored, End (255) stops the scan, any other code reads a 1-byte length
// then that many payload bytes. Contiguous fragments of the same code are
// concatenated before dispatching to the variant decoder (RFC 3396).
func DecodeOptions(data []byte) (*DhcpOptions, error) {
	opts := NewDhcpOptions()
	c := dhcpwire.NewCursor(data)

	for c.Len() > 0 {
		code, err := c.ReadU8()
		if err != nil {
			return nil, err
		}
		switch OptionCode(code) {
		case OptionPad:
			continue
		case OptionEnd:
			return opts, nil
		}

		var payload []byte
		for {
			length, err := c.ReadU8()
			if err != nil {
				return nil, err
			}
			frag, err := c.ReadBytes(int(length))
			if err != nil {
				return nil, err
			}
			payload = append(payload, frag...)

			next, err := c.PeekU8()
			if err != nil || next != code {
				break
			}
			// contiguous fragment of the same code: consume it too.
			if _, err := c.ReadU8(); err != nil {
				return nil, err
			}
		}

		opt, err := decodeOption(OptionCode(code), payload)
		if err != nil {
			return nil, err
		}
		opts.Insert(opt)
	}
	// stream ended before End: treated as terminated (permissive decode).
	return opts, nil
}

// Encode renders the container's options in canonical order (Iter),
// splitting any oversize payload into RFC 3396 fragments, and terminates
// with the implicit End marker.
func (o *DhcpOptions) Encode(w *dhcpwire.Writer) {
	for _, opt := range o.Iter() {
		EncodeOption(w, opt)
	}
	w.WriteU8(byte(OptionEnd))
}
