package dhcpv6

import (
	"net"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// IANAOption carries opt 3 (RFC 8415 §21.4): a non-temporary address
// identity association. IAID identifies the association across renewals;
// T1/T2 are the client's renew/rebind timers in seconds; Options typically
// holds IAAddress and StatusCode entries.
type IANAOption struct {
	IAID    uint32
	T1      uint32
	T2      uint32
	Options *DhcpOptions
}

func (o *IANAOption) Code() OptionCode { return OptionIANA }
func (o *IANAOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.IAID)
	w.WriteU32(o.T1)
	w.WriteU32(o.T2)
	if o.Options != nil {
		o.Options.Encode(w)
	}
}

func decodeIANA(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	iaid, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	t1, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	t2, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &IANAOption{IAID: iaid, T1: t1, T2: t2, Options: opts}, nil
}

// IATAOption carries opt 4 (RFC 8415 §21.5): a temporary address identity
// association. Unlike IA_NA/IA_PD it carries no T1/T2 timers — temporary
// addresses are not renewed, only reacquired.
type IATAOption struct {
	IAID    uint32
	Options *DhcpOptions
}

func (o *IATAOption) Code() OptionCode { return OptionIATA }
func (o *IATAOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.IAID)
	if o.Options != nil {
		o.Options.Encode(w)
	}
}

func decodeIATA(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	iaid, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &IATAOption{IAID: iaid, Options: opts}, nil
}

// IAPDOption carries opt 25 (RFC 8415 §21.21): a prefix delegation
// identity association. Shaped like IA_NA but nests IAPrefix entries
// instead of IAAddress.
type IAPDOption struct {
	IAID    uint32
	T1      uint32
	T2      uint32
	Options *DhcpOptions
}

func (o *IAPDOption) Code() OptionCode { return OptionIAPD }
func (o *IAPDOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.IAID)
	w.WriteU32(o.T1)
	w.WriteU32(o.T2)
	if o.Options != nil {
		o.Options.Encode(w)
	}
}

func decodeIAPD(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	iaid, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	t1, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	t2, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &IAPDOption{IAID: iaid, T1: t1, T2: t2, Options: opts}, nil
}

// IAAddressOption carries opt 5 (RFC 8415 §21.6): an address leased under
// an IA_NA or IA_TA, with its preferred/valid lifetimes in seconds and any
// address-specific sub-options (e.g. StatusCode).
type IAAddressOption struct {
	Address   net.IP
	Preferred uint32
	Valid     uint32
	Options   *DhcpOptions
}

func (o *IAAddressOption) Code() OptionCode { return OptionIAAddress }
func (o *IAAddressOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteIPv6(o.Address)
	w.WriteU32(o.Preferred)
	w.WriteU32(o.Valid)
	if o.Options != nil {
		o.Options.Encode(w)
	}
}

func decodeIAAddress(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	addr, err := c.ReadIPv6()
	if err != nil {
		return nil, err
	}
	preferred, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	valid, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &IAAddressOption{Address: addr, Preferred: preferred, Valid: valid, Options: opts}, nil
}

// IAPrefixOption carries opt 26 (RFC 8415 §21.22): a delegated prefix
// leased under an IA_PD, with its lifetimes, prefix length, and the
// prefix itself.
type IAPrefixOption struct {
	Preferred  uint32
	Valid      uint32
	PrefixLen  byte
	Prefix     net.IP
	Options    *DhcpOptions
}

func (o *IAPrefixOption) Code() OptionCode { return OptionIAPrefix }
func (o *IAPrefixOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.Preferred)
	w.WriteU32(o.Valid)
	w.WriteU8(o.PrefixLen)
	w.WriteIPv6(o.Prefix)
	if o.Options != nil {
		o.Options.Encode(w)
	}
}

func decodeIAPrefix(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	preferred, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	valid, err := c.ReadU32()
	if err != nil {
		return nil, err
	}
	prefixLen, err := c.ReadU8()
	if err != nil {
		return nil, err
	}
	prefix, err := c.ReadIPv6()
	if err != nil {
		return nil, err
	}
	opts, err := DecodeOptions(c.Remaining(), depth)
	if err != nil {
		return nil, err
	}
	return &IAPrefixOption{Preferred: preferred, Valid: valid, PrefixLen: prefixLen, Prefix: prefix, Options: opts}, nil
}

func init() {
	register(OptionIANA, decodeIANA)
	register(OptionIATA, decodeIATA)
	register(OptionIAPD, decodeIAPD)
	register(OptionIAAddress, decodeIAAddress)
	register(OptionIAPrefix, decodeIAPrefix)
}
