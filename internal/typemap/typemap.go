package typemap

import (
	"fmt"
	"slices"
	"strings"

	"benritz/ormgen/internal/ident"
	"benritz/ormgen/internal/schema"
)

// Unknown is the generated type of a native type with no mapping.
const Unknown = ""

// Type is a generated-language type. Nullable is nil until an explicit
// catalog marker has been applied.
type Type struct {
	Name     string
	Nullable *bool
}

// Target is a generated language: its closed kind table, its optional
// wrapper and its identifier conventions.
type Target struct {
	name   string
	types  map[schema.DataTypeKind]string
	tzType string
	wrap   func(string) string
	field  func(string) string
	strukt func(string) string
	escape func(string) string
}

// Name returns the target's registered name.
func (t *Target) Name() string { return t.name }

// MapType maps a native catalog type to the target's type. Unmapped native
// types map to Unknown.
func (t *Target) MapType(native string) Type {
	dt := ToDataType(native)
	if dt.Kind == schema.KindTimestamp && dt.Timezone && t.tzType != "" {
		return Type{Name: t.tzType}
	}
	name, ok := t.types[dt.Kind]
	if !ok {
		return Type{Name: Unknown}
	}
	return Type{Name: name}
}

// ApplyNullable applies a catalog nullable marker. "Y" wraps the type in
// the optional wrapper and marks it nullable, "N" marks it non-nullable and
// any other marker returns typ unchanged.
func (t *Target) ApplyNullable(typ Type, marker string) Type {
	switch schema.ParseNullability(marker) {
	case schema.NullYes:
		return Type{Name: t.wrap(typ.Name), Nullable: boolPtr(true)}
	case schema.NullNo:
		return Type{Name: typ.Name, Nullable: boolPtr(false)}
	default:
		return typ
	}
}

// StructName derives the generated type name of a table. Names that clash
// with a target keyword are escaped.
func (t *Target) StructName(table string) string {
	return t.escape(ident.Safe(t.strukt(table)))
}

// FieldName derives the generated field name of a column. Qualified names
// are prefixed with the table name. Names that clash with a target keyword
// are escaped.
func (t *Target) FieldName(table, column string, qualified bool) string {
	if !qualified {
		table = ""
	}
	return t.escape(ident.Safe(t.field(ident.Join(table, column))))
}

var Rust = &Target{
	name: "rust",
	types: map[schema.DataTypeKind]string{
		schema.KindBool:      "bool",
		schema.KindInt16:     "i16",
		schema.KindInt32:     "i32",
		schema.KindInt64:     "i64",
		schema.KindFloat32:   "f32",
		schema.KindFloat64:   "f64",
		schema.KindNumeric:   "f64",
		schema.KindMoney:     "f64",
		schema.KindUUID:      "String",
		schema.KindVarChar:   "String",
		schema.KindText:      "String",
		schema.KindBinary:    "Vec<u8>",
		schema.KindDate:      "chrono::NaiveDate",
		schema.KindTime:      "chrono::NaiveTime",
		schema.KindTimestamp: "chrono::NaiveDateTime",
	},
	tzType: "chrono::DateTime<chrono::Utc>",
	wrap:   func(s string) string { return "Option<" + s + ">" },
	field:  ident.Snake,
	strukt: ident.Pascal,
	escape: escapeRust,
}

var Go = &Target{
	name: "go",
	types: map[schema.DataTypeKind]string{
		schema.KindBool:      "bool",
		schema.KindInt16:     "int16",
		schema.KindInt32:     "int32",
		schema.KindInt64:     "int64",
		schema.KindFloat32:   "float32",
		schema.KindFloat64:   "float64",
		schema.KindNumeric:   "float64",
		schema.KindMoney:     "float64",
		schema.KindUUID:      "string",
		schema.KindVarChar:   "string",
		schema.KindText:      "string",
		schema.KindBinary:    "[]byte",
		schema.KindDate:      "time.Time",
		schema.KindTime:      "time.Time",
		schema.KindTimestamp: "time.Time",
	},
	// A pointer to an unknown type is still unknown.
	wrap: func(s string) string {
		if s == Unknown {
			return Unknown
		}
		return "*" + s
	},
	field:  ident.Pascal,
	strukt: ident.Pascal,
	escape: escapeGo,
}

var targets = map[string]*Target{
	Rust.name: Rust,
	Go.name:   Go,
}

// Lookup returns the registered target with the given name.
func Lookup(name string) (*Target, error) {
	t, ok := targets[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown target %q (want one of %s)", name, strings.Join(Names(), ", "))
	}
	return t, nil
}

// Names returns the registered target names, sorted.
func Names() []string {
	names := make([]string, 0, len(targets))
	for n := range targets {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

func boolPtr(b bool) *bool { return &b }
