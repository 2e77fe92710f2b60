package binlog

import "errors"

// Decode errors. I/O failures from the underlying cursor are wrapped
// and propagated as-is; these sentinels classify structural problems
// in the event stream itself.
var (
	// ErrTruncatedHeader means the cursor ended before the fixed
	// event header could be fully read.
	ErrTruncatedHeader = errors.New("binlog: truncated event header")

	// ErrTruncatedBody means a fixed-size or length-prefixed field
	// in an event body could not be fully read.
	ErrTruncatedBody = errors.New("binlog: truncated event body")

	// ErrNegativeLength means a remaining-bytes computation
	// underflowed. Either the event is malformed or the cursor was
	// positioned incorrectly by the caller.
	ErrNegativeLength = errors.New("binlog: negative remaining length")

	// ErrUnsupportedEvent means the header classifies an event this
	// package does not decode. The caller should skip
	// EventLength-HeaderLength bytes and continue; it is not fatal
	// to the stream.
	ErrUnsupportedEvent = errors.New("binlog: unsupported event kind")
)
