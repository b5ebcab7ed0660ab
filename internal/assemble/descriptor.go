// Package assemble folds buffered describe rows into the table and field
// descriptors consumed by the templates.
package assemble

import (
	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/typemap"
)

// Field is the generated-code view of one column.
type Field struct {
	Name     string
	Column   string
	Type     string
	Nullable *bool
}

// NewField builds a field descriptor. name and column are required; an
// empty type is the unknown-type sentinel and is accepted.
func NewField(table string, row int, name, column string, typ typemap.Type) (Field, error) {
	if column == "" {
		return Field{}, errs.NewBuildError(table, row, "column", "column name is empty")
	}
	if name == "" {
		return Field{}, errs.NewBuildError(table, row, "field_name", "no identifier derived from column "+column)
	}
	return Field{
		Name:     name,
		Column:   column,
		Type:     typ.Name,
		Nullable: typ.Nullable,
	}, nil
}

// IsNullable reports whether the field was explicitly marked nullable.
func (f Field) IsNullable() bool { return f.Nullable != nil && *f.Nullable }

// Table is the generated-code view of one catalog table.
type Table struct {
	StructName string
	Name       string
	Fields     []Field
	Derives    []string
}

// NewTable builds a table descriptor. fields keep their catalog order.
func NewTable(structName, name string, fields []Field, derives []string) (Table, error) {
	if name == "" {
		return Table{}, errs.NewBuildError("", -1, "name", "table name is empty")
	}
	if structName == "" {
		return Table{}, errs.NewBuildError(name, -1, "struct_name", "no identifier derived from table name")
	}
	if fields == nil {
		fields = []Field{}
	}
	return Table{
		StructName: structName,
		Name:       name,
		Fields:     fields,
		Derives:    derives,
	}, nil
}

// HasDerives reports whether any derive annotations are attached.
func (t Table) HasDerives() bool { return len(t.Derives) > 0 }
