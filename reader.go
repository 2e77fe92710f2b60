package binlog

import (
	"fmt"
	"io"
	"strings"
)

// Cursor is the byte source events are decoded from: sequential reads
// plus an absolute-position query. Only forward reads and position
// queries are ever used; full random-access seeking is not required.
type Cursor interface {
	io.Reader

	// Tell reports the current absolute offset without consuming
	// bytes or moving the position.
	Tell() (int64, error)
}

// NewCursor adapts any io.ReadSeeker (os.File, bytes.Reader, ...)
// to a Cursor.
func NewCursor(rs io.ReadSeeker) Cursor {
	return &seekCursor{rs: rs}
}

type seekCursor struct {
	rs io.ReadSeeker
}

func (c *seekCursor) Read(p []byte) (int, error) {
	return c.rs.Read(p)
}

func (c *seekCursor) Tell() (int64, error) {
	return c.rs.Seek(0, io.SeekCurrent)
}

// reader decodes primitive values from a Cursor. The first failure
// sticks in err; subsequent reads return zero values, so decoders can
// read a run of fields and check err once.
type reader struct {
	cur   Cursor
	err   error
	start int64 // absolute offset of the event start, marker byte included
	n     int   // bytes consumed since start
	trunc error // error recorded on short read: ErrTruncatedHeader or ErrTruncatedBody
	tmp   [8]byte
}

func newReader(c Cursor) (*reader, error) {
	start, err := c.Tell()
	if err != nil {
		return nil, fmt.Errorf("binlog: tell: %w", err)
	}
	return &reader{cur: c, start: start, trunc: ErrTruncatedHeader}, nil
}

func (r *reader) readFull(p []byte) {
	if r.err != nil {
		return
	}
	n, err := io.ReadFull(r.cur, p)
	r.n += n
	switch {
	case err == nil:
	case err == io.EOF && r.n == 0:
		// clean end of stream at an event boundary
		r.err = io.EOF
	case err == io.EOF || err == io.ErrUnexpectedEOF:
		r.err = r.trunc
	default:
		r.err = fmt.Errorf("binlog: read: %w", err)
	}
}

// tell reports the cursor's absolute offset.
func (r *reader) tell() int64 {
	if r.err != nil {
		return 0
	}
	off, err := r.cur.Tell()
	if err != nil {
		r.err = fmt.Errorf("binlog: tell: %w", err)
		return 0
	}
	return off
}

// remaining computes how many bytes of the event are left to consume,
// per the header's declared total length. Fields sized as "rest of
// the event" are bounded by this.
func (r *reader) remaining(h *EventHeader) int {
	off := r.tell()
	if r.err != nil {
		return 0
	}
	rem := int64(h.EventLength) - (off - r.start)
	if rem < 0 {
		r.err = ErrNegativeLength
		return 0
	}
	return int(rem)
}

// remainingWire reports how many event bytes are actually left on
// the wire. remaining counts the marker byte of a repl stream
// against the declared event length and so runs one short of the
// wire there; decoders that probe whether a trailing field is
// physically present must use this instead.
func (r *reader) remainingWire(h *EventHeader) int {
	off := r.tell()
	if r.err != nil {
		return 0
	}
	marker := int64(h.HeaderLength) - 19
	rem := int64(h.EventLength) - (off - r.start) + marker
	if rem < 0 {
		r.err = ErrNegativeLength
		return 0
	}
	return int(rem)
}

// int ---

func (r *reader) int1() byte {
	b := r.tmp[:1]
	r.readFull(b)
	if r.err != nil {
		return 0
	}
	return b[0]
}

func (r *reader) int2() uint16 {
	b := r.tmp[:2]
	r.readFull(b)
	if r.err != nil {
		return 0
	}
	return uint16(b[0]) | uint16(b[1])<<8
}

func (r *reader) int4() uint32 {
	b := r.tmp[:4]
	r.readFull(b)
	if r.err != nil {
		return 0
	}
	return uint32(b[0]) | uint32(b[1])<<8 | uint32(b[2])<<16 | uint32(b[3])<<24
}

func (r *reader) int8() uint64 {
	b := r.tmp[:8]
	r.readFull(b)
	if r.err != nil {
		return 0
	}
	return uint64(b[0]) | uint64(b[1])<<8 | uint64(b[2])<<16 | uint64(b[3])<<24 |
		uint64(b[4])<<32 | uint64(b[5])<<40 | uint64(b[6])<<48 | uint64(b[7])<<56
}

// bytes, strings ---

func (r *reader) bytes(n int) []byte {
	if r.err != nil {
		return nil
	}
	if n < 0 {
		r.err = ErrNegativeLength
		return nil
	}
	if n == 0 {
		return nil
	}
	v := make([]byte, n)
	r.readFull(v)
	if r.err != nil {
		return nil
	}
	return v
}

func (r *reader) string(n int) string {
	return string(r.bytes(n))
}

func (r *reader) skip(n int) {
	if r.err != nil || n == 0 {
		return
	}
	if n < 0 {
		r.err = ErrNegativeLength
		return
	}
	m, err := io.CopyN(io.Discard, r.cur, int64(n))
	r.n += int(m)
	switch {
	case err == nil:
	case err == io.EOF && r.n == 0:
		r.err = io.EOF
	case err == io.EOF:
		r.err = r.trunc
	default:
		r.err = fmt.Errorf("binlog: read: %w", err)
	}
}

// text decodes b permissively: invalid byte sequences become U+FFFD
// instead of failing the event. Statement text may arrive in a
// server-specific encoding.
func text(b []byte) string {
	return strings.ToValidUTF8(string(b), "�")
}
