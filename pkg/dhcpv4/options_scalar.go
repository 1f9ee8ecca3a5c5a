package dhcpv4

import (
	"encoding/binary"
	"net"
	"unicode/utf8"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// The scalar variant family covers every option whose payload is one of a
// small set of primitive shapes (single IPv4 address, IPv4 list, fixed-width
// integer, boolean flag, octet string, or raw bytes) — the bulk of the
// option table. Structurally richer options (Classless Static Routes,
// Relay Agent Information, Client FQDN, Domain Search, the Bulk Lease
// Query family) get their own dedicated types in sibling files.

// IPOption carries a single IPv4 address payload (e.g. SubnetMask,
// ServerIdentifier).
type IPOption struct {
	code OptionCode
	IP   net.IP
}

func (o *IPOption) Code() OptionCode { return o.code }
func (o *IPOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteIPv4(o.IP)
}

func decodeIPOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 4 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 4 bytes for IPv4 address"}
	}
	return &IPOption{code: code, IP: BytesToIP(payload)}, nil
}

// IPListOption carries a variable-length list of IPv4 addresses.
type IPListOption struct {
	code OptionCode
	IPs  []net.IP
}

func (o *IPListOption) Code() OptionCode { return o.code }
func (o *IPListOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes(IPListToBytes(o.IPs))
}

func decodeIPListOption(code OptionCode, payload []byte) (DhcpOption, error) {
	ips, err := BytesToIPList(payload)
	if err != nil {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: err.Error()}
	}
	return &IPListOption{code: code, IPs: ips}, nil
}

// IPPairsOption carries a list of (IPv4, IPv4) pairs, used by PolicyFilter
// and StaticRoutingTable.
type IPPairsOption struct {
	code  OptionCode
	Pairs [][2]net.IP
}

func (o *IPPairsOption) Code() OptionCode { return o.code }
func (o *IPPairsOption) encodePayload(w *dhcpwire.Writer) {
	for _, p := range o.Pairs {
		w.WriteIPv4(p[0])
		w.WriteIPv4(p[1])
	}
}

func decodeIPPairsOption(code OptionCode, payload []byte) (DhcpOption, error) {
	c := dhcpwire.NewCursor(payload)
	pairs, err := c.ReadIPv4Pairs(len(payload))
	if err != nil {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: err.Error()}
	}
	return &IPPairsOption{code: code, Pairs: pairs}, nil
}

// Uint8Option carries a single unsigned byte.
type Uint8Option struct {
	code  OptionCode
	Value byte
}

func (o *Uint8Option) Code() OptionCode { return o.code }
func (o *Uint8Option) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(o.Value)
}

func decodeUint8Option(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 1 byte"}
	}
	return &Uint8Option{code: code, Value: payload[0]}, nil
}

// Uint16Option carries a single big-endian uint16.
type Uint16Option struct {
	code  OptionCode
	Value uint16
}

func (o *Uint16Option) Code() OptionCode { return o.code }
func (o *Uint16Option) encodePayload(w *dhcpwire.Writer) {
	w.WriteU16(o.Value)
}

func decodeUint16Option(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 2 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 2 bytes"}
	}
	return &Uint16Option{code: code, Value: binary.BigEndian.Uint16(payload)}, nil
}

// Uint16ListOption carries a list of big-endian uint16 values (e.g.
// PathMTUPlateauTable, ClientSystemArchitecture).
type Uint16ListOption struct {
	code   OptionCode
	Values []uint16
}

func (o *Uint16ListOption) Code() OptionCode { return o.code }
func (o *Uint16ListOption) encodePayload(w *dhcpwire.Writer) {
	for _, v := range o.Values {
		w.WriteU16(v)
	}
}

func decodeUint16ListOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload)%2 != 0 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "length not a multiple of 2"}
	}
	values := make([]uint16, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		values = append(values, binary.BigEndian.Uint16(payload[i:i+2]))
	}
	return &Uint16ListOption{code: code, Values: values}, nil
}

// Uint32Option carries a single big-endian uint32 (lease/renewal/rebind
// timers, ARP cache timeout, etc).
type Uint32Option struct {
	code  OptionCode
	Value uint32
}

func (o *Uint32Option) Code() OptionCode { return o.code }
func (o *Uint32Option) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(o.Value)
}

func decodeUint32Option(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 4 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 4 bytes"}
	}
	return &Uint32Option{code: code, Value: binary.BigEndian.Uint32(payload)}, nil
}

// Int32Option carries a single big-endian signed int32 (TimeOffset).
type Int32Option struct {
	code  OptionCode
	Value int32
}

func (o *Int32Option) Code() OptionCode { return o.code }
func (o *Int32Option) encodePayload(w *dhcpwire.Writer) {
	w.WriteU32(uint32(o.Value))
}

func decodeInt32Option(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 4 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 4 bytes"}
	}
	return &Int32Option{code: code, Value: int32(binary.BigEndian.Uint32(payload))}, nil
}

// BoolOption carries a single 0x00/0x01 flag byte.
type BoolOption struct {
	code  OptionCode
	Value bool
}

func (o *BoolOption) Code() OptionCode { return o.code }
func (o *BoolOption) encodePayload(w *dhcpwire.Writer) {
	if o.Value {
		w.WriteU8(1)
	} else {
		w.WriteU8(0)
	}
}

func decodeBoolOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 1 byte"}
	}
	return &BoolOption{code: code, Value: payload[0] != 0}, nil
}

// StringOption carries an octet string interpreted as ASCII/UTF-8 text
// (hostnames, domain names, URLs).
type StringOption struct {
	code  OptionCode
	Value string
}

func (o *StringOption) Code() OptionCode { return o.code }
func (o *StringOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes([]byte(o.Value))
}

func decodeStringOption(code OptionCode, payload []byte) (DhcpOption, error) {
	if code == OptionCaptivePortal && !utf8.Valid(payload) {
		return nil, &dhcpwire.InvalidUTF8{Code: int(code)}
	}
	return &StringOption{code: code, Value: string(payload)}, nil
}

// BytesOption carries an opaque byte payload whose structure this library
// does not interpret further (vendor-specific info, client identifiers).
type BytesOption struct {
	code  OptionCode
	Value []byte
}

func (o *BytesOption) Code() OptionCode { return o.code }
func (o *BytesOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes(o.Value)
}

func decodeBytesOption(code OptionCode, payload []byte) (DhcpOption, error) {
	return &BytesOption{code: code, Value: append([]byte(nil), payload...)}, nil
}

func init() {
	for _, code := range []OptionCode{
		OptionSubnetMask, OptionSwapServer, OptionBroadcastAddr, OptionRouterSolicitAddr,
		OptionRequestedIpAddress, OptionServerIdentifier, OptionSubnetSelection,
	} {
		register(code, decodeIPOption)
	}

	for _, code := range []OptionCode{
		OptionRouter, OptionTimeServer, OptionNameServer, OptionDomainNameServer,
		OptionLogServer, OptionCookieServer, OptionLPRServer, OptionImpressServer,
		OptionResourceLocationServer, OptionNISServers, OptionNTPServers,
		OptionNetBIOSNameServer, OptionNetBIOSDatagramDist, OptionXWindowFontServer,
		OptionXWindowDisplayManager, OptionTFTPServerAddress,
	} {
		register(code, decodeIPListOption)
	}

	for _, code := range []OptionCode{OptionPolicyFilter, OptionStaticRoutingTable} {
		register(code, decodeIPPairsOption)
	}

	for _, code := range []OptionCode{
		OptionDefaultIPTTL, OptionNetBIOSNodeType, OptionTCPDefaultTTL, OptionOverload,
		OptionAutoConfigure,
	} {
		register(code, decodeUint8Option)
	}

	for _, code := range []OptionCode{
		OptionBootFileSize, OptionMaxDatagramReassembly, OptionInterfaceMTU,
		OptionMaxMessageSize,
	} {
		register(code, decodeUint16Option)
	}

	for _, code := range []OptionCode{OptionPathMTUPlateauTable, OptionClientSystemArchitecture} {
		register(code, decodeUint16ListOption)
	}

	for _, code := range []OptionCode{
		OptionPathMTUAgingTimeout, OptionARPCacheTimeout, OptionTCPKeepaliveInterval,
		OptionAddressLeaseTime, OptionRenewalTime, OptionRebindingTime,
	} {
		register(code, decodeUint32Option)
	}

	register(OptionTimeOffset, decodeInt32Option)

	for _, code := range []OptionCode{
		OptionIPForwarding, OptionNonLocalSourceRouting, OptionAllSubnetsLocal,
		OptionPerformMaskDiscovery, OptionMaskSupplier, OptionPerformRouterDiscovery,
		OptionTrailerEncapsulation, OptionEthernetEncapsulation, OptionTCPKeepaliveGarbage,
	} {
		register(code, decodeBoolOption)
	}

	for _, code := range []OptionCode{
		OptionHostname, OptionMeritDumpFile, OptionDomainName, OptionRootPath,
		OptionExtensionsPath, OptionNISDomain, OptionNetBIOSScope, OptionMessage,
		OptionNetWareIPDomain, OptionTFTPServerName, OptionBootfileName,
		OptionCaptivePortal,
	} {
		register(code, decodeStringOption)
	}

	for _, code := range []OptionCode{
		OptionVendorSpecific, OptionClassIdentifier, OptionClientIdentifier,
		OptionNetWareIPOption, OptionUserClass, OptionClientNetworkInterfaceID,
		OptionVIVendorClass, OptionVIVendorSpecific,
	} {
		register(code, decodeBytesOption)
	}
}
