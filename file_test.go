package binlog

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeBinlogFile(t *testing.T, events ...[]byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "binlog.000001")
	var buf []byte
	buf = append(buf, fileMagic...)
	for _, ev := range events {
		buf = append(buf, ev...)
	}
	require.NoError(t, os.WriteFile(path, buf, 0o644))
	return path
}

func TestFile_NextEvent(t *testing.T) {
	path := writeBinlogFile(t,
		makeEvent(QUERY_EVENT, makeQueryBody(7, 0, nil, "shop", "BEGIN"), false),
		makeEvent(XID_EVENT, le8(99), false),
	)
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	ev, err := f.NextEvent()
	require.NoError(t, err)
	require.IsType(t, QueryEvent{}, ev.Data)
	assert.Equal(t, "BEGIN", ev.Data.(QueryEvent).Command)

	ev, err = f.NextEvent()
	require.NoError(t, err)
	require.IsType(t, XidEvent{}, ev.Data)
	assert.EqualValues(t, 99, ev.Data.(XidEvent).Xid)

	_, err = f.NextEvent()
	assert.Equal(t, io.EOF, err)
}

func TestFile_SkipsUnsupportedEvents(t *testing.T) {
	path := writeBinlogFile(t,
		makeEvent(0x0f, make([]byte, 40), false), // format description, not decoded
		makeEvent(WRITE_ROWS_EVENTv2, make([]byte, 12), false),
		makeEvent(XID_EVENT, le8(7), false),
	)
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	ev, err := f.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, KindUnknown, ev.Header.Kind)
	assert.Nil(t, ev.Data)

	ev, err = f.NextEvent()
	require.NoError(t, err)
	assert.Equal(t, KindWrite, ev.Header.Kind)
	assert.Nil(t, ev.Data)

	// the stream stayed aligned across the skipped bodies
	ev, err = f.NextEvent()
	require.NoError(t, err)
	require.IsType(t, XidEvent{}, ev.Data)
	assert.EqualValues(t, 7, ev.Data.(XidEvent).Xid)
}

func TestFile_Position(t *testing.T) {
	path := writeBinlogFile(t, makeEvent(XID_EVENT, le8(1), false))
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	name, pos := f.Position()
	assert.Equal(t, path, name)
	assert.EqualValues(t, 4, pos, "fresh file points past the magic")

	_, err = f.NextEvent()
	require.NoError(t, err)
	_, pos = f.Position()
	assert.EqualValues(t, testNextPos, pos)
}

func TestFile_InvalidMagic(t *testing.T) {
	path := filepath.Join(t.TempDir(), "notbinlog")
	require.NoError(t, os.WriteFile(path, []byte("PK\x03\x04junk"), 0o644))
	_, err := OpenFile(path)
	assert.ErrorContains(t, err, "invalid file header")
}

func TestFile_Missing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "nope"))
	assert.Error(t, err)
}

func TestFile_MalformedEventLength(t *testing.T) {
	// an event declaring EventLength=0 must surface an error; were
	// it accepted, the next-event seek would land back on the same
	// event and a reader loop would never terminate
	raw := makeEvent(XID_EVENT, le8(42), false)
	copy(raw[9:13], le4(0))
	path := writeBinlogFile(t, raw)
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.NextEvent()
	assert.ErrorIs(t, err, ErrNegativeLength)
}

func TestFile_TruncatedEvent(t *testing.T) {
	full := makeEvent(XID_EVENT, le8(5), false)
	path := writeBinlogFile(t, full[:12])
	f, err := OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	_, err = f.NextEvent()
	assert.ErrorIs(t, err, ErrTruncatedHeader)
}
