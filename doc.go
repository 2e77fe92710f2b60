/*
Package binlog decodes events from a MySQL binary replication log.

The package turns a positioned byte cursor into strongly-typed event
records: one DecodeEvent call consumes exactly one event (fixed header
plus type-specific body) and reports the new position implicitly via
bytes consumed. What to do with the decoded events -- building logical
SQL, forwarding, change-data-capture -- is the caller's business, as is
obtaining the byte stream in the first place.

to decode a binlog file:

	f, err := binlog.OpenFile("binlog.000001")
	if err != nil {
		return err
	}
	defer f.Close()
	for {
		ev, err := f.NextEvent()
		if err != nil {
			if err == io.EOF {
				break
			}
			return err
		}
		switch data := ev.Data.(type) {
		case binlog.QueryEvent:
			fmt.Printf("query %s: %s\n", data.Database, data.Command)
		case binlog.TableMapEvent:
			fmt.Printf("table %s.%s, %d columns\n", data.Database, data.Table, data.ColumnCount)
		}
	}

to decode a stream captured from a live replication session, use a
Decoder configured for the extra per-event marker byte:

	dec := binlog.NewDecoder(binlog.Config{ConnType: binlog.ConnTypeRepl})
	ev, err := dec.DecodeEvent(cursor)

Row events (write/update/delete) are recognized but their bodies are
not decoded here; the TableMapEvent output carries the per-column type
and metadata a row decoder needs to interpret them.
*/
package binlog
