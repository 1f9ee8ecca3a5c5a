package dhcpv4

import (
	"encoding/binary"

	"github.com/bluecatengineering/dhcproto/pkg/dhcpwire"
)

// QueryStatusCode is the value carried by opt 151 (RFC 6926 §6.1):
// outcome of a Bulk Lease Query DHCPLEASEQUERYDONE/ACTIVE exchange.
type QueryStatusCode byte

const (
	QueryStatusSuccess         QueryStatusCode = 0
	QueryStatusUnspecFail      QueryStatusCode = 1
	QueryStatusQueryTerminated QueryStatusCode = 2
	QueryStatusMalformedQuery  QueryStatusCode = 3
	QueryStatusNotAllowed      QueryStatusCode = 4
)

// LeaseQueryState is the value carried by opt 156 (RFC 6926 §6.2): the
// state of a lease as understood by the responding server.
type LeaseQueryState byte

const (
	LeaseStateAvailable     LeaseQueryState = 1
	LeaseStateActive        LeaseQueryState = 2
	LeaseStateExpired       LeaseQueryState = 3
	LeaseStateReleased      LeaseQueryState = 4
	LeaseStateAbandoned     LeaseQueryState = 5
	LeaseStateReset         LeaseQueryState = 6
	LeaseStateRemote        LeaseQueryState = 7
	LeaseStateTransitioning LeaseQueryState = 8
)

// QueryStatusCodeOption carries opt 151: a 1-byte status code followed by
// an optional free-text message.
type QueryStatusCodeOption struct {
	Status  QueryStatusCode
	Message string
}

func (o *QueryStatusCodeOption) Code() OptionCode { return OptionBulkLeaseQueryStatusCode }
func (o *QueryStatusCodeOption) encodePayload(w *dhcpwire.Writer) {
	w.WriteU8(byte(o.Status))
	w.WriteBytes([]byte(o.Message))
}

func decodeQueryStatusCode(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) < 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "missing status byte"}
	}
	return &QueryStatusCodeOption{Status: QueryStatusCode(payload[0]), Message: string(payload[1:])}, nil
}

// bulkQueryTimeOption is the shared shape of opts 152-155: a single
// big-endian u32 timestamp, seconds since the Unix epoch.
type bulkQueryTimeOption struct {
	code  OptionCode
	Value uint32
}

func (o *bulkQueryTimeOption) Code() OptionCode { return o.code }
func (o *bulkQueryTimeOption) encodePayload(w *dhcpwire.Writer) { w.WriteU32(o.Value) }

func decodeBulkQueryTime(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 4 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 4 bytes"}
	}
	return &bulkQueryTimeOption{code: code, Value: binary.BigEndian.Uint32(payload)}, nil
}

// LeaseQueryStateOption carries opt 156: the lease state enumerated in
// RFC 6926 §6.2, with an Unknown escape for unrecognized values.
type LeaseQueryStateOption struct {
	State LeaseQueryState
}

func (o *LeaseQueryStateOption) Code() OptionCode { return OptionBulkLeaseQueryDHCPState }
func (o *LeaseQueryStateOption) encodePayload(w *dhcpwire.Writer) { w.WriteU8(byte(o.State)) }

func decodeLeaseQueryState(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 1 byte"}
	}
	return &LeaseQueryStateOption{State: LeaseQueryState(payload[0])}, nil
}

// DataSourceOption carries opt 157: a bitfield whose bit 0 ("remote")
// indicates the lease data originated from a failover peer (RFC 6926
// §6.3).
type DataSourceOption struct {
	Flags byte
}

func (o *DataSourceOption) Code() OptionCode { return OptionBulkLeaseQueryDataSource }
func (o *DataSourceOption) encodePayload(w *dhcpwire.Writer) { w.WriteU8(o.Flags) }

// Remote reports whether the "remote" bit of the data source bitfield is set.
func (o *DataSourceOption) Remote() bool { return o.Flags&0x01 != 0 }

func decodeDataSource(code OptionCode, payload []byte) (DhcpOption, error) {
	if len(payload) != 1 {
		return nil, &dhcpwire.InvalidPayload{Code: int(code), Reason: "expected 1 byte"}
	}
	return &DataSourceOption{Flags: payload[0]}, nil
}

func init() {
	register(OptionBulkLeaseQueryStatusCode, decodeQueryStatusCode)
	for _, code := range []OptionCode{
		OptionBulkLeaseQueryBaseTime, OptionBulkLeaseQueryStartTimeOfState,
		OptionBulkLeaseQueryQueryStartTime, OptionBulkLeaseQueryQueryEndTime,
	} {
		register(code, decodeBulkQueryTime)
	}
	register(OptionBulkLeaseQueryDHCPState, decodeLeaseQueryState)
	register(OptionBulkLeaseQueryDataSource, decodeDataSource)
}
