package schema

import (
	"database/sql"
	"fmt"
	"strconv"
)

type DataTypeKind string

const (
	KindUnknown   DataTypeKind = "unknown"
	KindBool      DataTypeKind = "bool"
	KindInt16     DataTypeKind = "int16"
	KindInt32     DataTypeKind = "int32"
	KindInt64     DataTypeKind = "int64"
	KindFloat32   DataTypeKind = "float32"
	KindFloat64   DataTypeKind = "float64"
	KindNumeric   DataTypeKind = "numeric"
	KindMoney     DataTypeKind = "money"
	KindUUID      DataTypeKind = "uuid"
	KindVarChar   DataTypeKind = "varchar"
	KindText      DataTypeKind = "text"
	KindBinary    DataTypeKind = "binary"
	KindDate      DataTypeKind = "date"
	KindTime      DataTypeKind = "time"
	KindTimestamp DataTypeKind = "timestamp"
)

type DataType struct {
	Kind     DataTypeKind
	Timezone bool
	Raw      string
}

// Nullability is the catalog's tri-state nullable marker.
type Nullability int

const (
	NullUnknown Nullability = iota
	NullYes
	NullNo
)

// ParseNullability reads a catalog marker. Only the exact sentinels "Y" and
// "N" are recognised.
func ParseNullability(marker string) Nullability {
	switch marker {
	case "Y":
		return NullYes
	case "N":
		return NullNo
	default:
		return NullUnknown
	}
}

func (n Nullability) String() string {
	switch n {
	case NullYes:
		return "true"
	case NullNo:
		return "false"
	default:
		return "(null)"
	}
}

// ColumnMetadata is one row of a table's describe query.
type ColumnMetadata struct {
	Name         string
	DataType     sql.NullString
	DataTypeMod  sql.NullString
	DataLength   float64
	Nullable     Nullability
	LastAnalyzed sql.NullTime
}

func (c ColumnMetadata) String() string {
	return fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		c.Name,
		nullString(c.DataType),
		nullString(c.DataTypeMod),
		strconv.FormatFloat(c.DataLength, 'f', -1, 64),
		c.Nullable,
		nullTime(c.LastAnalyzed),
	)
}

func nullString(s sql.NullString) string {
	if !s.Valid {
		return "(null)"
	}
	return s.String
}

func nullTime(t sql.NullTime) string {
	if !t.Valid {
		return "(null)"
	}
	return t.Time.UTC().Format("2006-01-02 15:04:05 UTC")
}

// Result columns of the describe query, in positional order. Every dialect
// emits exactly this layout.
const (
	ColTableName     = "TABLE_NAME"
	ColColumnName    = "COLUMN_NAME"
	ColDataType      = "DATA_TYPE"
	ColDataTypeMod   = "DATA_TYPE_MOD"
	ColDataTypeOwner = "DATA_TYPE_OWNER"
	ColDataLength    = "DATA_LENGTH"
	ColDataPrecision = "DATA_PRECISION"
	ColDataScale     = "DATA_SCALE"
	ColNullable      = "NULLABLE"
	ColColumnID      = "COLUMN_ID"
	ColDefaultLength = "DEFAULT_LENGTH"
	ColNumDistinct   = "NUM_DISTINCT"
	ColLowValue      = "LOW_VALUE"
	ColLastAnalyzed  = "LAST_ANALYZED"
)

var DescribeLayout = []string{
	ColTableName,
	ColColumnName,
	ColDataType,
	ColDataTypeMod,
	ColDataTypeOwner,
	ColDataLength,
	ColDataPrecision,
	ColDataScale,
	ColNullable,
	ColColumnID,
	ColDefaultLength,
	ColNumDistinct,
	ColLowValue,
	ColLastAnalyzed,
}
