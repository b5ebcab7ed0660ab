package assemble

import (
	"fmt"

	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/rows"
	"benritz/ormgen/internal/schema"
	"benritz/ormgen/internal/typemap"
)

// Assembler builds table descriptors for one target language.
type Assembler struct {
	target    *typemap.Target
	qualified bool
	derives   []string
}

type Option func(*Assembler)

// WithQualifiedFields controls whether field names are prefixed with the
// table name. Defaults to true.
func WithQualifiedFields(v bool) Option {
	return func(a *Assembler) {
		a.qualified = v
	}
}

// WithDerives attaches derive annotations to every assembled table.
func WithDerives(names ...string) Option {
	return func(a *Assembler) {
		a.derives = append([]string(nil), names...)
	}
}

func New(target *typemap.Target, opts ...Option) *Assembler {
	a := &Assembler{target: target, qualified: true}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// describeCells holds the cells of one describe row that the assembler reads.
// A nil pointer means the row carried no cell with that column name.
type describeCells struct {
	name     *rows.Cell
	dataType *rows.Cell
	nullable *rows.Cell
}

// Assemble folds the describe rows of table into a table descriptor with one
// field per row, in row index order. Two columns that derive the same field
// name are rejected.
func (a *Assembler) Assemble(table string, rs *rows.Rows) (Table, error) {
	fields := make([]Field, 0, rs.Len())
	columns := make(map[string]string, rs.Len())
	for idx, row := range rs.All() {
		var dc describeCells
		for name, cell := range rs.Named(row) {
			switch name {
			case schema.ColColumnName:
				dc.name = &cell
			case schema.ColDataType:
				dc.dataType = &cell
			case schema.ColNullable:
				dc.nullable = &cell
			}
		}
		f, err := a.field(table, idx, dc)
		if err != nil {
			return Table{}, err
		}
		if prev, ok := columns[f.Name]; ok {
			return Table{}, errs.NewBuildError(table, idx, "field_name",
				fmt.Sprintf("columns %s and %s both map to field %s", prev, f.Column, f.Name))
		}
		columns[f.Name] = f.Column
		fields = append(fields, f)
	}
	return NewTable(a.target.StructName(table), table, fields, a.derives)
}

func (a *Assembler) field(table string, idx int, dc describeCells) (Field, error) {
	if dc.name == nil {
		return Field{}, errs.NewBuildError(table, idx, schema.ColColumnName, "no cell tagged "+schema.ColColumnName)
	}
	if dc.name.Null {
		return Field{}, errs.NewBuildError(table, idx, schema.ColColumnName, "column name is null")
	}
	if dc.dataType == nil {
		return Field{}, errs.NewBuildError(table, idx, schema.ColDataType, "no cell tagged "+schema.ColDataType)
	}

	column := dc.name.Text()
	typ := a.target.MapType(dc.dataType.Text())
	if dc.nullable != nil {
		typ = a.target.ApplyNullable(typ, dc.nullable.Text())
	}
	return NewField(table, idx, a.target.FieldName(table, column, a.qualified), column, typ)
}
