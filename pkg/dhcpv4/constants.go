// Package dhcpv4 implements the DHCPv4 (RFC 2131, RFC 2132 and extensions)
// wire codec: the fixed message header, the magic-cookie-delimited option
// area, and the typed option variants that make up its payload.
package dhcpv4

import "net"

// OpCode is the DHCP message op code (RFC 2131 §2).
type OpCode byte

const (
	OpCodeBootRequest OpCode = 1 // BOOTREQUEST
	OpCodeBootReply   OpCode = 2 // BOOTREPLY
)

func (o OpCode) String() string {
	switch o {
	case OpCodeBootRequest:
		return "BOOTREQUEST"
	case OpCodeBootReply:
		return "BOOTREPLY"
	default:
		return "UNKNOWN"
	}
}

// HardwareType is the ARP hardware address type (RFC 1700), carried in the
// htype header field.
type HardwareType byte

const (
	HardwareTypeEthernet HardwareType = 1
)

// MessageType is the value carried in option 53 (RFC 2131 §9.6, plus the
// RFC 4388 Bulk Lease Query additions).
type MessageType byte

const (
	MessageTypeDiscover MessageType = 1
	MessageTypeOffer    MessageType = 2
	MessageTypeRequest  MessageType = 3
	MessageTypeDecline  MessageType = 4
	MessageTypeAck      MessageType = 5
	MessageTypeNak      MessageType = 6
	MessageTypeRelease  MessageType = 7
	MessageTypeInform   MessageType = 8
	// RFC 4388
	MessageTypeLeaseQuery      MessageType = 10
	MessageTypeLeaseUnassigned MessageType = 11
	MessageTypeLeaseUnknown    MessageType = 12
	MessageTypeLeaseActive     MessageType = 13
)

func (m MessageType) String() string {
	switch m {
	case MessageTypeDiscover:
		return "DHCPDISCOVER"
	case MessageTypeOffer:
		return "DHCPOFFER"
	case MessageTypeRequest:
		return "DHCPREQUEST"
	case MessageTypeDecline:
		return "DHCPDECLINE"
	case MessageTypeAck:
		return "DHCPACK"
	case MessageTypeNak:
		return "DHCPNAK"
	case MessageTypeRelease:
		return "DHCPRELEASE"
	case MessageTypeInform:
		return "DHCPINFORM"
	case MessageTypeLeaseQuery:
		return "DHCPLEASEQUERY"
	case MessageTypeLeaseUnassigned:
		return "DHCPLEASEUNASSIGNED"
	case MessageTypeLeaseUnknown:
		return "DHCPLEASEUNKNOWN"
	case MessageTypeLeaseActive:
		return "DHCPLEASEACTIVE"
	default:
		return "UNKNOWN"
	}
}

// IsKnown reports whether m falls within the documented message type
// range. Decoding never rejects an out-of-range value on its own — it is
// stored as-is — so callers that need to reject unknown message types
// check IsKnown() themselves after decode.
func (m MessageType) IsKnown() bool {
	switch m {
	case MessageTypeDiscover, MessageTypeOffer, MessageTypeRequest, MessageTypeDecline,
		MessageTypeAck, MessageTypeNak, MessageTypeRelease, MessageTypeInform,
		MessageTypeLeaseQuery, MessageTypeLeaseUnassigned, MessageTypeLeaseUnknown, MessageTypeLeaseActive:
		return true
	default:
		return false
	}
}

// OptionCode is a DHCPv4 option number (RFC 2132 §2: one octet).
type OptionCode byte

// Well-known DHCPv4 option codes: the core RFC 2132 set plus common
// extensions (RFCs 3011, 3046, 3203, 3232, 3396, 3397, 3442, 3925, 3993,
// 4039, 4280, 4388, 4578, 4702, 5107, 6926, 7724, 8910, 8925, 2563).
const (
	OptionPad                    OptionCode = 0
	OptionSubnetMask             OptionCode = 1
	OptionTimeOffset             OptionCode = 2
	OptionRouter                 OptionCode = 3
	OptionTimeServer             OptionCode = 4
	OptionNameServer             OptionCode = 5
	OptionDomainNameServer       OptionCode = 6
	OptionLogServer              OptionCode = 7
	OptionCookieServer           OptionCode = 8
	OptionLPRServer              OptionCode = 9
	OptionImpressServer          OptionCode = 10
	OptionResourceLocationServer OptionCode = 11
	OptionHostname               OptionCode = 12
	OptionBootFileSize           OptionCode = 13
	OptionMeritDumpFile          OptionCode = 14
	OptionDomainName             OptionCode = 15
	OptionSwapServer             OptionCode = 16
	OptionRootPath               OptionCode = 17
	OptionExtensionsPath         OptionCode = 18
	OptionIPForwarding           OptionCode = 19
	OptionNonLocalSourceRouting  OptionCode = 20
	OptionPolicyFilter           OptionCode = 21
	OptionMaxDatagramReassembly  OptionCode = 22
	OptionDefaultIPTTL           OptionCode = 23
	OptionPathMTUAgingTimeout    OptionCode = 24
	OptionPathMTUPlateauTable    OptionCode = 25
	OptionInterfaceMTU           OptionCode = 26
	OptionAllSubnetsLocal        OptionCode = 27
	OptionBroadcastAddr          OptionCode = 28
	OptionPerformMaskDiscovery   OptionCode = 29
	OptionMaskSupplier           OptionCode = 30
	OptionPerformRouterDiscovery OptionCode = 31
	OptionRouterSolicitAddr      OptionCode = 32
	OptionStaticRoutingTable     OptionCode = 33
	OptionTrailerEncapsulation   OptionCode = 34
	OptionARPCacheTimeout        OptionCode = 35
	OptionEthernetEncapsulation  OptionCode = 36
	OptionTCPDefaultTTL          OptionCode = 37
	OptionTCPKeepaliveInterval   OptionCode = 38
	OptionTCPKeepaliveGarbage    OptionCode = 39
	OptionNISDomain              OptionCode = 40
	OptionNISServers             OptionCode = 41
	OptionNTPServers             OptionCode = 42
	OptionVendorSpecific         OptionCode = 43
	OptionNetBIOSNameServer      OptionCode = 44
	OptionNetBIOSDatagramDist    OptionCode = 45
	OptionNetBIOSNodeType        OptionCode = 46
	OptionNetBIOSScope           OptionCode = 47
	OptionXWindowFontServer      OptionCode = 48
	OptionXWindowDisplayManager  OptionCode = 49
	OptionRequestedIpAddress     OptionCode = 50
	OptionAddressLeaseTime       OptionCode = 51
	OptionOverload               OptionCode = 52
	OptionDHCPMessageType        OptionCode = 53
	OptionServerIdentifier       OptionCode = 54
	OptionParameterRequestList   OptionCode = 55
	OptionMessage                OptionCode = 56
	OptionMaxMessageSize         OptionCode = 57
	OptionRenewalTime            OptionCode = 58
	OptionRebindingTime          OptionCode = 59
	OptionClassIdentifier        OptionCode = 60
	OptionClientIdentifier       OptionCode = 61
	OptionNetWareIPDomain        OptionCode = 62
	OptionNetWareIPOption        OptionCode = 63
	OptionTFTPServerName         OptionCode = 66
	OptionBootfileName           OptionCode = 67
	OptionUserClass              OptionCode = 77
	OptionClientFQDN             OptionCode = 81
	OptionRelayAgentInformation  OptionCode = 82
	OptionClientSystemArchitecture      OptionCode = 93
	OptionClientNetworkInterfaceID      OptionCode = 94
	OptionClientMachineIdentifier       OptionCode = 97
	OptionAutoConfigure                 OptionCode = 116
	OptionSubnetSelection               OptionCode = 118
	OptionDomainSearch                  OptionCode = 119
	OptionCaptivePortal                 OptionCode = 114
	OptionClasslessStaticRoute          OptionCode = 121
	OptionVIVendorClass                 OptionCode = 124
	OptionVIVendorSpecific              OptionCode = 125
	OptionTFTPServerAddress             OptionCode = 150
	OptionBulkLeaseQueryStatusCode      OptionCode = 151
	OptionBulkLeaseQueryBaseTime        OptionCode = 152
	OptionBulkLeaseQueryStartTimeOfState OptionCode = 153
	OptionBulkLeaseQueryQueryStartTime  OptionCode = 154
	OptionBulkLeaseQueryQueryEndTime    OptionCode = 155
	OptionBulkLeaseQueryDHCPState       OptionCode = 156
	OptionBulkLeaseQueryDataSource      OptionCode = 157
	OptionEnd                           OptionCode = 255
)

// DHCP packet size limits (RFC 2131 §2).
const (
	MinPacketSize     = 300
	MaxPacketSize     = 1500
	DefaultPacketSize = 576
)

// Well-known UDP ports (RFC 2131 §4).
const (
	ServerPort = 67
	ClientPort = 68
)

// MagicCookie is the 4-byte sentinel separating the fixed BOOTP header
// from the option area (RFC 2131 §3).
var MagicCookie = [4]byte{99, 130, 83, 99}

// Broadcast/zero sentinels used by header field defaults.
var (
	BroadcastMAC = net.HardwareAddr{0xff, 0xff, 0xff, 0xff, 0xff, 0xff}
	BroadcastIP  = net.IPv4(255, 255, 255, 255)
	ZeroIP       = net.IPv4(0, 0, 0, 0)
)

// fixedHeaderLen is the portion of the header preceding the magic cookie:
// op..giaddr (28 bytes) + chaddr (16) + sname (64) + file (128) = 236.
const fixedHeaderLen = 236

// maxFragmentPayload is the largest payload a single TLV segment can
// carry (RFC 3396 §2): the 1-byte length field caps it at 255.
const maxFragmentPayload = 255
