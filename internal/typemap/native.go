// Package typemap converts native catalog type names and nullability markers
// into generated-language types.
package typemap

import (
	"regexp"
	"strings"

	"benritz/ormgen/internal/schema"
)

var (
	typeModifier = regexp.MustCompile(`\s*\([^)]*\)`)
	spaces       = regexp.MustCompile(`\s+`)
)

// Normalize upper-cases a native type name and strips length, precision and
// fractional-second modifiers, so "timestamp(6) with time zone" and
// "TIMESTAMP WITH TIME ZONE" compare equal.
func Normalize(native string) string {
	s := typeModifier.ReplaceAllString(native, "")
	s = spaces.ReplaceAllString(strings.TrimSpace(s), " ")
	return strings.ToUpper(s)
}

// ToDataType resolves a native type name against the closed native type
// table. Names without an entry resolve to KindUnknown.
func ToDataType(native string) schema.DataType {
	raw := Normalize(native)
	dt := schema.DataType{Kind: schema.KindUnknown, Raw: raw}
	switch raw {
	case "BOOL", "BOOLEAN", "BIT":
		dt.Kind = schema.KindBool
	case "SMALLINT", "INT2", "TINYINT", "YEAR":
		dt.Kind = schema.KindInt16
	case "INTEGER", "INT", "INT4", "MEDIUMINT", "SERIAL", "PLS_INTEGER", "BINARY_INTEGER":
		dt.Kind = schema.KindInt32
	case "BIGINT", "INT8", "BIGSERIAL":
		dt.Kind = schema.KindInt64
	case "REAL", "FLOAT4", "BINARY_FLOAT":
		dt.Kind = schema.KindFloat32
	case "NUMBER", "FLOAT", "FLOAT8", "DOUBLE", "DOUBLE PRECISION", "BINARY_DOUBLE":
		dt.Kind = schema.KindFloat64
	case "NUMERIC", "DECIMAL", "DEC":
		dt.Kind = schema.KindNumeric
	case "MONEY", "SMALLMONEY":
		dt.Kind = schema.KindMoney
	case "UUID", "UNIQUEIDENTIFIER":
		dt.Kind = schema.KindUUID
	case "VARCHAR2", "NVARCHAR2", "VARCHAR", "NVARCHAR", "CHARACTER VARYING",
		"CHAR", "NCHAR", "CHARACTER", "BPCHAR":
		dt.Kind = schema.KindVarChar
	case "TEXT", "NTEXT", "CLOB", "NCLOB", "LONG", "CITEXT", "TINYTEXT", "MEDIUMTEXT", "LONGTEXT",
		"JSON", "JSONB", "XML", "XMLTYPE":
		dt.Kind = schema.KindText
	case "BLOB", "RAW", "LONG RAW", "BYTEA", "BINARY", "VARBINARY", "IMAGE",
		"TINYBLOB", "MEDIUMBLOB", "LONGBLOB":
		dt.Kind = schema.KindBinary
	case "DATE":
		dt.Kind = schema.KindDate
	case "TIME", "TIME WITHOUT TIME ZONE", "TIMETZ", "TIME WITH TIME ZONE":
		dt.Kind = schema.KindTime
	case "TIMESTAMP", "TIMESTAMP WITHOUT TIME ZONE", "DATETIME", "DATETIME2", "SMALLDATETIME":
		dt.Kind = schema.KindTimestamp
	case "TIMESTAMPTZ", "TIMESTAMP WITH TIME ZONE", "TIMESTAMP WITH LOCAL TIME ZONE", "DATETIMEOFFSET":
		dt.Kind = schema.KindTimestamp
		dt.Timezone = true
	}
	return dt
}
