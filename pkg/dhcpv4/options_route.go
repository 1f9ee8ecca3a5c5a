package dhcpv4

import (
	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// ClasslessStaticRouteOption carries opt 121 (RFC 3442 §3): a repeated
// sequence of (mask_width, significant network octets, gateway) entries.
type ClasslessStaticRouteOption struct {
	Routes []CIDRRoute
}

func (o *ClasslessStaticRouteOption) Code() OptionCode { return OptionClasslessStaticRoute }
func (o *ClasslessStaticRouteOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteBytes(CIDRRoutesToBytes(o.Routes))
}

func decodeClasslessStaticRoute(code OptionCode, payload []byte) (DhcpOption, error) {
	routes, err := BytesToCIDRRoutes(payload)
	if err != nil {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: err.Error()}
	}
	return &ClasslessStaticRouteOption{Routes: routes}, nil
}

func init() {
	register(OptionClasslessStaticRoute, decodeClasslessStaticRoute)
}
