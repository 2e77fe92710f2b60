package binlog

import "fmt"

// Column type codes as declared in table-metadata events.
//
// https://dev.mysql.com/doc/internals/en/table-map-event.html
const (
	MYSQL_TYPE_DECIMAL     = 0x00
	MYSQL_TYPE_TINY        = 0x01
	MYSQL_TYPE_SHORT       = 0x02
	MYSQL_TYPE_LONG        = 0x03
	MYSQL_TYPE_FLOAT       = 0x04
	MYSQL_TYPE_DOUBLE      = 0x05
	MYSQL_TYPE_NULL        = 0x06
	MYSQL_TYPE_TIMESTAMP   = 0x07
	MYSQL_TYPE_LONGLONG    = 0x08
	MYSQL_TYPE_INT24       = 0x09
	MYSQL_TYPE_DATE        = 0x0a
	MYSQL_TYPE_TIME        = 0x0b
	MYSQL_TYPE_DATETIME    = 0x0c
	MYSQL_TYPE_YEAR        = 0x0d
	MYSQL_TYPE_NEWDATE     = 0x0e
	MYSQL_TYPE_VARCHAR     = 0x0f
	MYSQL_TYPE_BIT         = 0x10
	MYSQL_TYPE_TIMESTAMP2  = 0x11
	MYSQL_TYPE_DATETIME2   = 0x12
	MYSQL_TYPE_TIME2       = 0x13
	MYSQL_TYPE_JSON        = 0xf5
	MYSQL_TYPE_NEWDECIMAL  = 0xf6
	MYSQL_TYPE_ENUM        = 0xf7
	MYSQL_TYPE_SET         = 0xf8
	MYSQL_TYPE_TINY_BLOB   = 0xf9
	MYSQL_TYPE_MEDIUM_BLOB = 0xfa
	MYSQL_TYPE_LONG_BLOB   = 0xfb
	MYSQL_TYPE_BLOB        = 0xfc
	MYSQL_TYPE_VAR_STRING  = 0xfd
	MYSQL_TYPE_STRING      = 0xfe
	MYSQL_TYPE_GEOMETRY    = 0xff
)

// ColumnType is the semantic column kind a type code maps to. The
// mapping is total: codes this package does not know map to
// TypeUnrecognized, never to an error, so table-metadata decoding
// can continue for the remaining columns.
type ColumnType int

const (
	TypeUnrecognized ColumnType = iota
	TypeDecimal
	TypeTiny
	TypeShort
	TypeLong
	TypeFloat
	TypeDouble
	TypeNull
	TypeTimestamp
	TypeLongLong
	TypeInt24
	TypeDate
	TypeTime
	TypeDatetime
	TypeYear
	TypeNewDate
	TypeVarchar
	TypeBit
	TypeTimestamp2
	TypeDatetime2
	TypeTime2
	TypeJSON
	TypeNewDecimal
	TypeEnum
	TypeSet
	TypeTinyBlob
	TypeMediumBlob
	TypeLongBlob
	TypeBlob
	TypeVarString
	TypeString
	TypeGeometry
)

var columnTypes = map[byte]ColumnType{
	MYSQL_TYPE_DECIMAL:     TypeDecimal,
	MYSQL_TYPE_TINY:        TypeTiny,
	MYSQL_TYPE_SHORT:       TypeShort,
	MYSQL_TYPE_LONG:        TypeLong,
	MYSQL_TYPE_FLOAT:       TypeFloat,
	MYSQL_TYPE_DOUBLE:      TypeDouble,
	MYSQL_TYPE_NULL:        TypeNull,
	MYSQL_TYPE_TIMESTAMP:   TypeTimestamp,
	MYSQL_TYPE_LONGLONG:    TypeLongLong,
	MYSQL_TYPE_INT24:       TypeInt24,
	MYSQL_TYPE_DATE:        TypeDate,
	MYSQL_TYPE_TIME:        TypeTime,
	MYSQL_TYPE_DATETIME:    TypeDatetime,
	MYSQL_TYPE_YEAR:        TypeYear,
	MYSQL_TYPE_NEWDATE:     TypeNewDate,
	MYSQL_TYPE_VARCHAR:     TypeVarchar,
	MYSQL_TYPE_BIT:         TypeBit,
	MYSQL_TYPE_TIMESTAMP2:  TypeTimestamp2,
	MYSQL_TYPE_DATETIME2:   TypeDatetime2,
	MYSQL_TYPE_TIME2:       TypeTime2,
	MYSQL_TYPE_JSON:        TypeJSON,
	MYSQL_TYPE_NEWDECIMAL:  TypeNewDecimal,
	MYSQL_TYPE_ENUM:        TypeEnum,
	MYSQL_TYPE_SET:         TypeSet,
	MYSQL_TYPE_TINY_BLOB:   TypeTinyBlob,
	MYSQL_TYPE_MEDIUM_BLOB: TypeMediumBlob,
	MYSQL_TYPE_LONG_BLOB:   TypeLongBlob,
	MYSQL_TYPE_BLOB:        TypeBlob,
	MYSQL_TYPE_VAR_STRING:  TypeVarString,
	MYSQL_TYPE_STRING:      TypeString,
	MYSQL_TYPE_GEOMETRY:    TypeGeometry,
}

func columnTypeOf(code byte) ColumnType {
	if t, ok := columnTypes[code]; ok {
		return t
	}
	return TypeUnrecognized
}

var columnTypeNames = map[ColumnType]string{
	TypeUnrecognized: "unrecognized",
	TypeDecimal:      "decimal",
	TypeTiny:         "tiny",
	TypeShort:        "short",
	TypeLong:         "long",
	TypeFloat:        "float",
	TypeDouble:       "double",
	TypeNull:         "null",
	TypeTimestamp:    "timestamp",
	TypeLongLong:     "longlong",
	TypeInt24:        "int24",
	TypeDate:         "date",
	TypeTime:         "time",
	TypeDatetime:     "datetime",
	TypeYear:         "year",
	TypeNewDate:      "newdate",
	TypeVarchar:      "varchar",
	TypeBit:          "bit",
	TypeTimestamp2:   "timestamp2",
	TypeDatetime2:    "datetime2",
	TypeTime2:        "time2",
	TypeJSON:         "json",
	TypeNewDecimal:   "newdecimal",
	TypeEnum:         "enum",
	TypeSet:          "set",
	TypeTinyBlob:     "tinyblob",
	TypeMediumBlob:   "mediumblob",
	TypeLongBlob:     "longblob",
	TypeBlob:         "blob",
	TypeVarString:    "varstring",
	TypeString:       "string",
	TypeGeometry:     "geometry",
}

func (t ColumnType) String() string {
	if s, ok := columnTypeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("columnType(%d)", int(t))
}
