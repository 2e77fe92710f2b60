package binlog

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
)

var fileMagic = []byte{0xfe, 'b', 'i', 'n'}

// File decodes events from an on-disk binary log, one NextEvent call
// per event. On-disk logs use the standard 19-byte header layout.
type File struct {
	f    *os.File
	cur  Cursor
	dec  *Decoder
	name string
	pos  uint32
}

// OpenFile opens a binary log file and validates its magic header.
func OpenFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	magic := make([]byte, 4)
	if _, err := io.ReadFull(f, magic); err != nil {
		f.Close()
		return nil, fmt.Errorf("binlog: reading magic of %s: %w", path, err)
	}
	if !bytes.Equal(magic, fileMagic) {
		f.Close()
		return nil, fmt.Errorf("binlog: %s has invalid file header", path)
	}
	return &File{
		f:    f,
		cur:  NewCursor(f),
		dec:  NewDecoder(Config{}),
		name: path,
		pos:  4,
	}, nil
}

// NextEvent decodes the next event. Events of kinds this package does
// not decode come back with Data == nil; their bodies are skipped
// using the header's declared length so the stream stays aligned.
// Returns io.EOF at the end of the log.
func (f *File) NextEvent() (Event, error) {
	start, err := f.cur.Tell()
	if err != nil {
		return Event{}, fmt.Errorf("binlog: tell: %w", err)
	}
	ev, err := f.dec.DecodeEvent(f.cur)
	switch {
	case err == nil:
	case errors.Is(err, ErrUnsupportedEvent):
		// not fatal to the stream, skip the body below
	default:
		return Event{}, err
	}

	// land on the next event boundary regardless of how much of the
	// body the decoder consumed (unsupported kinds, trailing checksum)
	next := start + int64(ev.Header.EventLength)
	if _, err := f.f.Seek(next, io.SeekStart); err != nil {
		return Event{}, fmt.Errorf("binlog: seek: %w", err)
	}
	if ev.Header.NextPos != 0 {
		f.pos = ev.Header.NextPos
	}
	return ev, nil
}

// Position reports the offset of the next event per the last decoded
// header, for resuming a stream.
func (f *File) Position() (file string, pos uint32) {
	return f.name, f.pos
}

func (f *File) Close() error {
	return f.f.Close()
}
