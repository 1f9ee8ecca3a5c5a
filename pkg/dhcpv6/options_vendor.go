package dhcpv6

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// VendorClassOption carries opt 16 (RFC 8415 §21.16): an enterprise
// number followed by a sequence of length-prefixed opaque data items.
type VendorClassOption struct {
	EnterpriseNumber uint32
	Data             [][]byte
}

func (o *VendorClassOption) Code() OptionCode { return OptionVendorClass }
func (o *VendorClassOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.EnterpriseNumber)
	for _, d := range o.Data {
		w.WriteU16(uint16(len(d)))
		w.WriteBytes(d)
	}
}

func decodeVendorClass(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	enterprise, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	var items [][]byte
	for c.Len() > 0 {
		n, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		data, err := c.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		items = append(items, data)
	}
	return &VendorClassOption{EnterpriseNumber: enterprise, Data: items}, nil
}

// VendorOptsSubOption is one (sub-code u16, sub-len u16, data) entry of a
// VendorOptsOption.
type VendorOptsSubOption struct {
	Code uint16
	Data []byte
}

// VendorOptsOption carries opt 17 (RFC 8415 §21.17): an enterprise number
// followed by a sequence of (sub-code u16, sub-len u16, data) entries.
type VendorOptsOption struct {
	EnterpriseNumber uint32
	SubOptions       []VendorOptsSubOption
}

func (o *VendorOptsOption) Code() OptionCode { return OptionVendorOpts }
func (o *VendorOptsOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.EnterpriseNumber)
	for _, sub := range o.SubOptions {
		w.WriteU16(sub.Code)
		w.WriteU16(uint16(len(sub.Data)))
		w.WriteBytes(sub.Data)
	}
}

func decodeVendorOpts(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	enterprise, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	var subs []VendorOptsSubOption
	for c.Len() > 0 {
		subCode, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		n, err := c.ReadU16()
		if err != nil {
			return nil, err
		}
		data, err := c.ReadBytes(int(n))
		if err != nil {
			return nil, err
		}
		subs = append(subs, VendorOptsSubOption{Code: subCode, Data: data})
	}
	return &VendorOptsOption{EnterpriseNumber: enterprise, SubOptions: subs}, nil
}

func init() {
	register(OptionVendorClass, decodeVendorClass)
	register(OptionVendorOpts, decodeVendorOpts)
}
