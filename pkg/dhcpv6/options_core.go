package dhcpv6

import (
	"encoding/binary"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// OptionRequestOption carries opt 6 (ORO): an ordered list of option
// codes the requester wants returned.
type OptionRequestOption struct {
	Codes []OptionCode
}

func (o *OptionRequestOption) Code() OptionCode { return OptionOptionRequest }
func (o *OptionRequestOption) encodePayload(w *dhcpwire.Writer) {
	for _, c := range o.Codes {
		w.WriteU16(uint16(c))
	}
}

func decodeOptionRequest(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload)%2 != 0 {
		return nil, &dhcpwire.InvalidPayload{Reason: "ORO length not a multiple of 2"}
	}
	codes := make([]OptionCode, 0, len(payload)/2)
	for i := 0; i < len(payload); i += 2 {
		codes = append(codes, OptionCode(binary.BigEndian.Uint16(payload[i:i+2])))
	}
	return &OptionRequestOption{Codes: codes}, nil
}

// ElapsedTimeOption carries opt 8: hundredths of a second since the
// client began its exchange.
type ElapsedTimeOption struct {
	Value uint16
}

func (o *ElapsedTimeOption) Code() OptionCode { return OptionElapsedTime }
func (o *ElapsedTimeOption) encodePayload(w *dhcpwire.Writer) { w.WriteU16(o.Value) }

func decodeElapsedTime(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 2 {
		return nil, &dhcpwire.InvalidPayload{Reason: "elapsed time must be 2 bytes"}
	}
	return &ElapsedTimeOption{Value: binary.BigEndian.Uint16(payload)}, nil
}

// emptyOption is the shared shape of the zero-payload flag options
// RapidCommit (14) and ReconfigureAccept (20).
type emptyOption struct{ code OptionCode }

func (o *emptyOption) Code() OptionCode                   { return o.code }
func (o *emptyOption) encodePayload(w *dhcpwire.Writer)   {}

// RapidCommitOption carries opt 14: an empty flag requesting the
// two-message exchange (RFC 8415 §21.14).
func RapidCommitOption() DhcpOption { return &emptyOption{code: OptionRapidCommit} }

// ReconfigureAcceptOption carries opt 20: an empty flag indicating the
// client will accept Reconfigure messages (RFC 8415 §21.20).
func ReconfigureAcceptOption() DhcpOption { return &emptyOption{code: OptionReconfigureAccept} }

func decodeEmptyOption(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 0 {
		return nil, &dhcpwire.InvalidPayload{Reason: "expected empty payload"}
	}
	return &emptyOption{code: code}, nil
}

// PreferenceOption carries opt 7: a server's self-reported preference
// value (RFC 8415 §21.8), higher preferred.
type PreferenceOption struct{ Value byte }

func (o *PreferenceOption) Code() OptionCode { return OptionPreference }
func (o *PreferenceOption) encodePayload(w *dhcpwire.Writer) { w.WriteU8(o.Value) }

func decodePreference(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Reason: "preference must be 1 byte"}
	}
	return &PreferenceOption{Value: payload[0]}, nil
}

// AuthOption carries opt 11: the opaque RFC 8415 §21.11 authentication
// record. Not interpreted further.
type AuthOption struct{ Value []byte }

func (o *AuthOption) Code() OptionCode { return OptionAuth }
func (o *AuthOption) encodePayload(w *dhcpwire.Writer) { w.WriteBytes(o.Value) }

func decodeAuth(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	return &AuthOption{Value: append([]byte(nil), payload...)}, nil
}

// UnicastOption carries opt 12: the server address a client may send
// unicast requests to (RFC 8415 §21.12).
type UnicastOption struct{ Addr [16]byte }

func (o *UnicastOption) Code() OptionCode { return OptionUnicast }
func (o *UnicastOption) encodePayload(w *dhcpwire.Writer) { w.WriteBytes(o.Addr[:]) }

func decodeUnicast(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 16 {
		return nil, &dhcpwire.InvalidPayload{Reason: "unicast address must be 16 bytes"}
	}
	var addr [16]byte
	copy(addr[:], payload)
	return &UnicastOption{Addr: addr}, nil
}

// ReconfigureMessageOption carries opt 19: the message type the server
// wants the client to use in its reply to a Reconfigure (RFC 8415
// §21.19).
type ReconfigureMessageOption struct{ MsgType MessageType }

func (o *ReconfigureMessageOption) Code() OptionCode { return OptionReconfigureMessage }
func (o *ReconfigureMessageOption) encodePayload(w *dhcpwire.Writer) { w.WriteU8(byte(o.MsgType)) }

func decodeReconfigureMessage(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Reason: "reconfigure message type must be 1 byte"}
	}
	return &ReconfigureMessageOption{MsgType: MessageType(payload[0])}, nil
}

// InterfaceIDOption carries opt 18: an opaque relay-assigned interface
// identifier (RFC 8415 §21.18).
type InterfaceIDOption struct{ Value []byte }

func (o *InterfaceIDOption) Code() OptionCode { return OptionInterfaceID }
func (o *InterfaceIDOption) encodePayload(w *dhcpwire.Writer) { w.WriteBytes(o.Value) }

func decodeInterfaceID(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	return &InterfaceIDOption{Value: append([]byte(nil), payload...)}, nil
}

// u32Option is the shared shape of the three plain-u32 timer options:
// InformationRefreshTime (32), SolMaxRt (82), InfMaxRt (83).
type u32Option struct {
	code  OptionCode
	Value uint32
}

func (o *u32Option) Code() OptionCode { return o.code }
func (o *u32Option) encodePayload(w *dhcpwire.Writer) { w.WriteU32(o.Value) }

func decodeU32Option(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	if len(payload) != 4 {
		return nil, &dhcpwire.InvalidPayload{Reason: "expected 4 bytes"}
	}
	return &u32Option{code: code, Value: binary.BigEndian.Uint32(payload)}, nil
}

func init() {
	register(OptionOptionRequest, decodeOptionRequest)
	register(OptionElapsedTime, decodeElapsedTime)
	register(OptionRapidCommit, decodeEmptyOption)
	register(OptionReconfigureAccept, decodeEmptyOption)
	register(OptionPreference, decodePreference)
	register(OptionAuth, decodeAuth)
	register(OptionUnicast, decodeUnicast)
	register(OptionReconfigureMessage, decodeReconfigureMessage)
	register(OptionInterfaceID, decodeInterfaceID)
	for _, code := range []OptionCode{OptionInformationRefreshTime, OptionSolMaxRt, OptionInfMaxRt} {
		register(code, decodeU32Option)
	}
}
