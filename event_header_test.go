package binlog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventHeader_Decode(t *testing.T) {
	raw := makeEvent(XID_EVENT, le8(42), false)
	ev, err := decodeOne(t, Config{}, raw)
	require.NoError(t, err)

	h := ev.Header
	assert.EqualValues(t, testTimestamp, h.Timestamp)
	assert.Equal(t, KindXid, h.Kind)
	assert.EqualValues(t, XID_EVENT, h.TypeCode)
	assert.EqualValues(t, testServerID, h.ServerID)
	assert.EqualValues(t, 27, h.EventLength)
	assert.EqualValues(t, testNextPos, h.NextPos)
	assert.EqualValues(t, testFlags, h.Flags)
	assert.EqualValues(t, 19, h.HeaderLength)
}

func TestEventHeader_ReplModeConsumesMarkerByte(t *testing.T) {
	body := le8(42)
	plain := makeEvent(XID_EVENT, body, false)
	marked := makeEvent(XID_EVENT, body, true)
	require.Equal(t, len(plain)+1, len(marked))
	require.Equal(t, plain, marked[1:], "repl framing differs only by the leading marker")

	evPlain, err := decodeOne(t, Config{}, plain)
	require.NoError(t, err)
	evMarked, err := decodeOne(t, Config{ConnType: ConnTypeRepl}, marked)
	require.NoError(t, err)

	assert.EqualValues(t, 19, evPlain.Header.HeaderLength)
	assert.EqualValues(t, 20, evMarked.Header.HeaderLength)
	evMarked.Header.HeaderLength = evPlain.Header.HeaderLength
	assert.Equal(t, evPlain.Header, evMarked.Header)
	assert.Equal(t, evPlain.Data, evMarked.Data)
}

func TestEventHeader_Classification(t *testing.T) {
	tests := []struct {
		typeCode byte
		want     EventKind
	}{
		{0x02, KindQuery},
		{0x04, KindRotateLog},
		{0x10, KindXid},
		{0x13, KindTableMap},
		{0x1e, KindWrite},
		{0x1f, KindUpdate},
		{0x20, KindDelete},
		{0x21, KindGtid},
		{0x26, KindXAPrepareLog},
		{0x00, KindUnknown},
		{0x0f, KindUnknown}, // format description: not decoded here
		{0xab, KindUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, kindOf(tt.typeCode), "typeCode 0x%02x", tt.typeCode)
	}
}

func TestEventHeader_EventLengthBelowHeaderLength(t *testing.T) {
	// a declared length shorter than the header itself must be
	// rejected, never decoded into fields
	for _, length := range []uint32{0, 1, 18} {
		raw := makeEvent(XID_EVENT, le8(42), false)
		copy(raw[9:13], le4(length))
		_, err := decodeOne(t, Config{}, raw)
		assert.ErrorIs(t, err, ErrNegativeLength, "EventLength %d", length)
	}

	// repl mode: the header occupies 20 bytes, so 19 is short there
	marked := makeEvent(XID_EVENT, le8(42), true)
	copy(marked[10:14], le4(19))
	_, err := decodeOne(t, Config{ConnType: ConnTypeRepl}, marked)
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestEventHeader_Truncated(t *testing.T) {
	full := makeEvent(XID_EVENT, nil, false)
	for n := 1; n < 19; n++ {
		_, err := decodeOne(t, Config{}, full[:n])
		assert.ErrorIs(t, err, ErrTruncatedHeader, "%d header bytes", n)
	}

	// repl mode: marker present but header cut short
	marked := makeEvent(XID_EVENT, nil, true)
	_, err := decodeOne(t, Config{ConnType: ConnTypeRepl}, marked[:10])
	assert.ErrorIs(t, err, ErrTruncatedHeader)
}
