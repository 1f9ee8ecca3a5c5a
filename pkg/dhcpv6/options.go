package dhcpv6

import (
	"sort"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// DhcpOption is a single decoded DHCPv6 option.
type DhcpOption interface {
	Code() OptionCode
	encodePayload(w *dhcpwire.Writer)
}

// decodeFunc decodes one option's payload into a typed DhcpOption.
// depth threads the current v6 RelayMessage nesting level through to
// RelayMessage's own decoder; the RelayMsg option is the only variant that
// nests a whole message.
type decodeFunc func(code OptionCode, payload []byte, depth int) (DhcpOption, error)

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

func decodeOption(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if fn, ok := registry[code]; ok {
		return fn(code, payload, depth)
	}
	return &Unknown{code: code, Payload: append([]byte(nil), payload...)}, nil
}

// EncodeOption renders opt's 2-byte code, 2-byte length and payload.
func EncodeOption(w *dhcpwire.Writer, opt DhcpOption) {
	scratch := dhcpwire.NewWriter()
	opt.encodePayload(scratch)
	payload := scratch.Bytes()

	w.WriteU16(uint16(opt.Code()))
	w.WriteU16(uint16(len(payload)))
	w.WriteBytes(payload)
}

// DhcpOptions is the v6 option container: a sorted multi-list permitting
// duplicate codes, since multiple IA_NA/IA_TA entries are legal within a
// single message.
type DhcpOptions struct {
	entries []DhcpOption
}

// NewDhcpOptions returns an empty container.
func NewDhcpOptions() *DhcpOptions {
	return &DhcpOptions{}
}

// Insert appends opt, keeping the container in ascending-code order.
func (o *DhcpOptions) Insert(opt DhcpOption) {
	o.entries = append(o.entries, opt)
	sort.SliceStable(o.entries, func(i, j int) bool { return o.entries[i].Code() < o.entries[j].Code() })
}

// Get returns the first stored option with the given code, if any.
func (o *DhcpOptions) Get(code OptionCode) (DhcpOption, bool) {
	for _, opt := range o.entries {
		if opt.Code() == code {
			return opt, true
		}
	}
	return nil, false
}

// GetAll returns every stored option with the given code, in stored order.
func (o *DhcpOptions) GetAll(code OptionCode) []DhcpOption {
	var out []DhcpOption
	for _, opt := range o.entries {
		if opt.Code() == code {
			out = append(out, opt)
		}
	}
	return out
}

// Remove deletes every stored option with the given code.
func (o *DhcpOptions) Remove(code OptionCode) {
	o.Retain(func(opt DhcpOption) bool { return opt.Code() != code })
}

// Len returns the number of stored options.
func (o *DhcpOptions) Len() int { return len(o.entries) }

// IsEmpty reports whether the container holds no options.
func (o *DhcpOptions) IsEmpty() bool { return len(o.entries) == 0 }

// Clear removes every stored option.
func (o *DhcpOptions) Clear() { o.entries = nil }

// Retain keeps only the options for which pred returns true.
func (o *DhcpOptions) Retain(pred func(DhcpOption) bool) {
	kept := o.entries[:0]
	for _, opt := range o.entries {
		if pred(opt) {
			kept = append(kept, opt)
		}
	}
	o.entries = kept
}

// Iter returns the stored options in canonical ascending-code order.
func (o *DhcpOptions) Iter() []DhcpOption {
	return append([]DhcpOption(nil), o.entries...)
}

// Encode renders the container's options in Iter order.
func (o *DhcpOptions) Encode(w *dhcpwire.Writer) {
	for _, opt := range o.entries {
		EncodeOption(w, opt)
	}
}

// DecodeOptions parses a v6 option stream: repeated 2-byte-code,
// 2-byte-length, payload segments to end of buffer. There is no End
// marker and no Pad.
func DecodeOptions(data []byte, depth int) (*DhcpOptions, error) {
	opts := NewDhcpOptions()
	c := dhcpwire.NewCursor(data)

	for c.Len() > 0 {
		code, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		length, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		payload, err := c.ReadBytes(int(length))
		if err != nil {
			return nil, err
		}
		opt, err := decodeOption(OptionCode(code), payload, depth)
		if err != nil {
			return nil, err
		}
		opts.Insert(opt)
	}
	return opts, nil
}
