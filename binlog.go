package binlog

// ConnTypeRepl marks a session whose byte stream was obtained by
// impersonating a live replication client. Such streams carry one
// extra marker byte before each event header.
const ConnTypeRepl = "repl"

// Config carries the per-session decoding options. ConnType "repl"
// selects the 20-byte header layout; any other value selects the
// standard on-disk 19-byte layout.
type Config struct {
	ConnType string
}

// Event is one decoded binlog event. Data holds the decoded body
// (QueryEvent, XidEvent, RotateEvent, GtidEvent or TableMapEvent),
// or nil for kinds whose bodies this package does not decode.
type Event struct {
	Header EventHeader
	Data   interface{}
}

// Decoder decodes events from a positioned cursor, one at a time.
// A Decoder holds no cross-event state; independent streams may be
// decoded concurrently with separate Decoders.
type Decoder struct {
	conf Config
}

func NewDecoder(conf Config) *Decoder {
	return &Decoder{conf: conf}
}

// DecodeEvent decodes the next event from c, which must be positioned
// at an event start. The header is decoded first and the body decoder
// selected by its kind; the body never consumes more than
// Header.EventLength bytes from the event start.
//
// Write/update/delete row events decode to Data == nil with no body
// bytes consumed: their bodies belong to the row-decoding layer. For
// KindUnknown and KindXAPrepareLog the error is ErrUnsupportedEvent
// and, again, no body bytes are consumed; the caller should skip
// EventLength-HeaderLength bytes and continue.
//
// io.EOF is returned unwrapped when the cursor is exhausted at an
// event boundary.
func (d *Decoder) DecodeEvent(c Cursor) (Event, error) {
	r, err := newReader(c)
	if err != nil {
		return Event{}, err
	}
	h := EventHeader{}
	if err := h.decode(r, d.conf); err != nil {
		return Event{}, err
	}
	r.trunc = ErrTruncatedBody

	switch h.Kind {
	case KindQuery:
		qe := QueryEvent{}
		err := qe.decode(r, &h)
		return Event{h, qe}, err
	case KindXid:
		xe := XidEvent{}
		err := xe.decode(r)
		return Event{h, xe}, err
	case KindRotateLog:
		re := RotateEvent{}
		err := re.decode(r, &h)
		return Event{h, re}, err
	case KindGtid:
		ge := GtidEvent{}
		err := ge.decode(r, &h)
		return Event{h, ge}, err
	case KindTableMap:
		tme := TableMapEvent{}
		err := tme.decode(r)
		return Event{h, tme}, err
	case KindWrite, KindUpdate, KindDelete:
		// recognized, reserved for the row-decoding layer
		return Event{h, nil}, nil
	default:
		return Event{h, nil}, ErrUnsupportedEvent
	}
}
