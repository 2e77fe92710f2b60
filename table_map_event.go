package binlog

// MetaTypeMismatch is recorded as a column's only metadata value when
// a string/enum/set column's stored type code differs from its
// declared one. The row-decoding layer must consult the actual stored
// type to learn the storage width; this package passes the sentinel
// through uninterpreted.
const MetaTypeMismatch = 65535

// ColumnInfo describes one column of a mapped table: its semantic
// type plus the type-family-specific metadata the row-decoding layer
// needs to compute the column's per-row storage width (length-prefix
// width, fractional-seconds precision, decimal precision/scale, ...).
type ColumnInfo struct {
	Type ColumnType
	Meta []int
}

// TableMapEvent describes a table's columns. It precedes the row
// events that reference the same table id; a deployment decodes rows
// by caching the most recent TableMapEvent per table, which is the
// row-decoding layer's responsibility.
//
// https://dev.mysql.com/doc/internals/en/table-map-event.html
type TableMapEvent struct {
	Database    string
	Table       string
	ColumnCount uint8
	Columns     []ColumnInfo
}

func (e *TableMapEvent) decode(r *reader) error {
	r.skip(8) // table id (6) + reserved (2)
	dbLen := r.int1()
	if r.err != nil {
		return r.err
	}
	e.Database = text(r.bytes(int(dbLen)))
	r.skip(1)
	tblLen := r.int1()
	if r.err != nil {
		return r.err
	}
	e.Table = text(r.bytes(int(tblLen)))
	r.skip(1)

	e.ColumnCount = r.int1()
	if r.err != nil {
		return r.err
	}
	types := r.bytes(int(e.ColumnCount))
	// metadata block length byte; per-column sizes are derived from
	// the types instead, since some families omit it
	r.skip(1)
	if r.err != nil {
		return r.err
	}

	e.Columns = make([]ColumnInfo, 0, e.ColumnCount)
	for _, code := range types {
		meta := decodeColumnMeta(r, code)
		if r.err != nil {
			return r.err
		}
		e.Columns = append(e.Columns, ColumnInfo{Type: columnTypeOf(code), Meta: meta})
	}
	return r.err
}

// decodeColumnMeta consumes one column's metadata bytes. The shape
// depends on the column's type family; unrecognized types consume
// nothing and record [0] so the remaining columns still decode.
func decodeColumnMeta(r *reader, code byte) []int {
	switch columnTypeOf(code) {
	case TypeVarchar, TypeVarString:
		// per-row length prefix is 2 bytes when values can
		// exceed 255 bytes, else 1
		m := r.int2()
		if m > 255 {
			return []int{2}
		}
		return []int{1}
	case TypeBlob, TypeTinyBlob, TypeMediumBlob, TypeLongBlob,
		TypeJSON, TypeTimestamp2, TypeDatetime2, TypeTime2,
		TypeFloat, TypeDouble:
		// one byte, meaning is type-specific: length-prefix
		// width, fractional-seconds precision or IEEE width
		return []int{int(r.int1())}
	case TypeNewDecimal:
		precision := r.int1()
		scale := r.int1()
		return []int{int(precision), int(scale)}
	case TypeString:
		// stored type code + metadata byte; enum/set columns
		// declare MYSQL_TYPE_STRING but store a different code
		stored := r.int1()
		m := r.int1()
		if stored != code {
			return []int{MetaTypeMismatch}
		}
		return []int{int(m)}
	default:
		return []int{0}
	}
}
