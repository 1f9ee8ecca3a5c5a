package dhcpv6

import (
	"encoding/binary"
	"unicode/utf8"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// StatusCodeValue is the status enumerated in RFC 8415 §21.13 / the
// extensions of RFCs 5007, 5460. Unknown is returned verbatim for any
// value outside the documented range.
type StatusCodeValue uint16

const (
	StatusSuccess                    StatusCodeValue = 0
	StatusUnspecFail                 StatusCodeValue = 1
	StatusNoAddrsAvail               StatusCodeValue = 2
	StatusNoBinding                  StatusCodeValue = 3
	StatusNotOnLink                  StatusCodeValue = 4
	StatusUseMulticast               StatusCodeValue = 5
	StatusNoPrefixAvail              StatusCodeValue = 6
	StatusUnknownQueryType           StatusCodeValue = 7
	StatusMalformedQuery             StatusCodeValue = 8
	StatusNotConfigured              StatusCodeValue = 9
	StatusNotAllowed                 StatusCodeValue = 10
	StatusQueryTerminated            StatusCodeValue = 11
	StatusDataMissing                StatusCodeValue = 12
	StatusCatchUpComplete            StatusCodeValue = 13
	StatusNotSupported               StatusCodeValue = 14
	StatusTLSConnectionRefused       StatusCodeValue = 15
	StatusAddressInUse               StatusCodeValue = 16
	StatusConfigurationConflict      StatusCodeValue = 17
	StatusMissingBindingInformation  StatusCodeValue = 18
	StatusOutdatedBindingInformation StatusCodeValue = 19
	StatusServerShuttingDown         StatusCodeValue = 20
	StatusDNSUpdateNotSupported      StatusCodeValue = 21
	StatusExcessiveTimeSkew          StatusCodeValue = 22
)

// StatusCodeOption carries opt 13 (RFC 8415 §21.13): a 2-byte status
// followed by a free-text UTF-8 message running to the end of the
// option's payload.
//
// The message read MUST be scoped to exactly payload_len-2 bytes taken
// from the bounds-checked option payload the container already sliced
// out — never re-derived from a length field read a second time. A past
// implementation that re-read an internal length byte and walked past the
// option boundary corrupted whatever option followed it; scoping the read
// to the payload slice we were handed makes that mistake structurally
// impossible here.
type StatusCodeOption struct {
	Status  StatusCodeValue
	Message string
}

func (o *StatusCodeOption) Code() OptionCode { return OptionStatusCode }
func (o *StatusCodeOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU16(uint16(o.Status))
	w.WriteBytes([]byte(o.Message))
}

func decodeStatusCode(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) < 2 {
		return nil, &dhcpwire.NotEnoughBytes{Need: 2, Have: len(payload)}
	}
	status := StatusCodeValue(binary.BigEndian.Uint16(payload[:2]))
	msg := payload[2:]
	if !utf8.Valid(msg) {
		return nil, &dhcpwire.InvalidUTF8{Code: int(code)}
	}
	return &StatusCodeOption{Status: status, Message: string(msg)}, nil
}

func init() {
	register(OptionStatusCode, decodeStatusCode)
}
