package binlog

import "fmt"

// https://dev.mysql.com/doc/internals/en/binlog-event-type.html
// https://dev.mysql.com/doc/internals/en/event-meanings.html

// Type codes as they appear on the wire. Only codes this package
// classifies are listed; everything else maps to KindUnknown.
const (
	QUERY_EVENT          = 0x02
	ROTATE_EVENT         = 0x04
	XID_EVENT            = 0x10
	TABLE_MAP_EVENT      = 0x13
	WRITE_ROWS_EVENTv2   = 0x1e
	UPDATE_ROWS_EVENTv2  = 0x1f
	DELETE_ROWS_EVENTv2  = 0x20
	GTID_EVENT           = 0x21
	XA_PREPARE_LOG_EVENT = 0x26
)

// EventKind classifies an event by its one-byte type code.
//
// KindWrite, KindUpdate and KindDelete are recognized but not decoded
// here; row-event bodies are the row-decoding layer's surface, which
// consumes the TableMapEvent this package produces.
type EventKind uint8

const (
	KindUnknown EventKind = iota
	KindQuery
	KindRotateLog
	KindTableMap
	KindGtid
	KindWrite
	KindUpdate
	KindDelete
	KindXid
	KindXAPrepareLog
)

func kindOf(typeCode byte) EventKind {
	switch typeCode {
	case QUERY_EVENT:
		return KindQuery
	case ROTATE_EVENT:
		return KindRotateLog
	case XID_EVENT:
		return KindXid
	case TABLE_MAP_EVENT:
		return KindTableMap
	case WRITE_ROWS_EVENTv2:
		return KindWrite
	case UPDATE_ROWS_EVENTv2:
		return KindUpdate
	case DELETE_ROWS_EVENTv2:
		return KindDelete
	case GTID_EVENT:
		return KindGtid
	case XA_PREPARE_LOG_EVENT:
		return KindXAPrepareLog
	default:
		return KindUnknown
	}
}

var eventKindNames = map[EventKind]string{
	KindUnknown:      "unknown",
	KindQuery:        "query",
	KindRotateLog:    "rotate",
	KindTableMap:     "tableMap",
	KindGtid:         "gtid",
	KindWrite:        "writeRows",
	KindUpdate:       "updateRows",
	KindDelete:       "deleteRows",
	KindXid:          "xid",
	KindXAPrepareLog: "xaPrepare",
}

func (k EventKind) String() string {
	if s, ok := eventKindNames[k]; ok {
		return s
	}
	return fmt.Sprintf("eventKind(%d)", uint8(k))
}

// https://dev.mysql.com/doc/internals/en/binlog-event-header.html
// https://dev.mysql.com/doc/internals/en/event-header-fields.html

// EventHeader is the fixed framing header common to all events.
// EventLength is the total size of the event including this header,
// so the body occupies EventLength-HeaderLength bytes. NextPos is the
// offset of the following event in the source log.
type EventHeader struct {
	Timestamp    uint32
	Kind         EventKind
	TypeCode     byte // raw type code, retained for diagnostics
	ServerID     uint32
	EventLength  uint32
	NextPos      uint32
	Flags        uint16
	HeaderLength uint8 // 19, or 20 when the session carries a marker byte
}

func (h *EventHeader) decode(r *reader, conf Config) error {
	h.HeaderLength = 19
	if conf.ConnType == ConnTypeRepl {
		// live replication streams prefix each event with one
		// marker byte
		r.skip(1)
		h.HeaderLength = 20
	}
	h.Timestamp = r.int4()
	h.TypeCode = r.int1()
	h.Kind = kindOf(h.TypeCode)
	h.ServerID = r.int4()
	h.EventLength = r.int4()
	h.NextPos = r.int4()
	h.Flags = r.int2()
	if r.err != nil {
		return r.err
	}
	// an event cannot be shorter than its own header; accepting one
	// would let body decoders read past the declared event end, and
	// position bookkeeping built on EventLength would stop advancing
	if h.EventLength < uint32(h.HeaderLength) {
		return ErrNegativeLength
	}
	return nil
}
