package binlog

import "github.com/google/uuid"

// XidEvent marks a transaction commit. Xid is the commit identifier.
//
// https://dev.mysql.com/doc/internals/en/xid-event.html
type XidEvent struct {
	Xid uint64
}

func (e *XidEvent) decode(r *reader) error {
	e.Xid = r.int8()
	return r.err
}

// RotateEvent is written when mysqld switches to a new binary log
// file, either on FLUSH LOGS or when the current file exceeds
// max_binlog_size. NextBinlog names the new log file.
//
// https://dev.mysql.com/doc/internals/en/rotate-event.html
type RotateEvent struct {
	NextBinlog string
}

func (e *RotateEvent) decode(r *reader, h *EventHeader) error {
	r.skip(8) // starting position in the new file
	n := int(h.EventLength) - int(h.HeaderLength) - 8
	if n < 0 {
		r.err = ErrNegativeLength
		return r.err
	}
	e.NextBinlog = text(r.bytes(n))
	return r.err
}

// GtidEvent carries the global transaction identifier of the
// transaction that follows it, plus its commit-ordering sequence
// numbers.
//
// 5.6-era servers wrote this event without the trailing
// last_committed/sequence_number pair. Such events decode with those
// fields zero and Truncated set; they are not an error.
//
// https://dev.mysql.com/doc/internals/en/gtid-event.html
type GtidEvent struct {
	Gtid           uuid.UUID
	GnoID          uint64
	LastCommitted  uint64
	SequenceNumber uint64
	Truncated      bool
}

func (e *GtidEvent) decode(r *reader, h *EventHeader) error {
	r.skip(1) // gtid flags, unused but must keep the cursor aligned
	sid := r.bytes(16)
	if r.err != nil {
		return r.err
	}
	copy(e.Gtid[:], sid)
	e.GnoID = r.int8()
	if r.err != nil {
		return r.err
	}
	if r.remainingWire(h) < 8 {
		e.Truncated = true
		return r.err
	}
	e.LastCommitted = r.int8()
	if r.err != nil {
		return r.err
	}
	if r.remainingWire(h) < 8 {
		e.Truncated = true
		return r.err
	}
	e.SequenceNumber = r.int8()
	return r.err
}
