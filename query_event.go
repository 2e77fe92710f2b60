package binlog

// QueryEvent is written when an updating statement is done. Command
// holds the SQL text of the statement; Database is the default
// database the statement ran against.
//
// https://dev.mysql.com/doc/internals/en/query-event.html
type QueryEvent struct {
	ThreadID       uint32
	ExecuteSeconds uint32
	Database       string
	Command        string
}

func (e *QueryEvent) decode(r *reader, h *EventHeader) error {
	e.ThreadID = r.int4()
	e.ExecuteSeconds = r.int4()
	dbLen := r.int1()
	_ = r.int2() // error code, reserved
	statusVarsLen := r.int2()
	if r.err != nil {
		return r.err
	}
	r.skip(int(statusVarsLen)) // session-variable annotations, not interpreted
	e.Database = text(r.bytes(int(dbLen)))
	r.skip(1) // NUL terminator
	if r.err != nil {
		return r.err
	}
	// the statement occupies whatever is left of the event
	n := r.remaining(h)
	e.Command = text(r.bytes(n))
	return r.err
}
