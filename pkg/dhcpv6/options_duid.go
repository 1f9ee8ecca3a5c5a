package dhcpv6

import "github.com/bluecatengineering/dhcproto/pkg/dhcpwire"

// ClientIdOption carries opt 1: the client's DUID.
type ClientIdOption struct{ DUID *DUID }

func (o *ClientIdOption) Code() OptionCode { return OptionClientId }
func (o *ClientIdOption) encodePayload(w *dhcpwire.Writer) { o.DUID.Encode(w) }

// ServerIdOption carries opt 2: the server's DUID.
type ServerIdOption struct{ DUID *DUID }

func (o *ServerIdOption) Code() OptionCode { return OptionServerId }
func (o *ServerIdOption) encodePayload(w *dhcpwire.Writer) { o.DUID.Encode(w) }

func decodeClientId(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	duid, err := DecodeDUID(payload)
	if err != nil {
		return nil, err
	}
	return &ClientIdOption{DUID: duid}, nil
}

func decodeServerId(code OptionCode, payload []byte, depth int) (DhcpOption, error) {
	duid, err := DecodeDUID(payload)
	if err != nil {
		return nil, err
	}
	return &ServerIdOption{DUID: duid}, nil
}

func init() {
	register(OptionClientId, decodeClientId)
	register(OptionServerId, decodeServerId)
}
