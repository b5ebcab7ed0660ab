package catalog

import (
	"database/sql"
	"strconv"
	"strings"
	"time"

	"benritz/ormgen/internal/rows"
	"benritz/ormgen/internal/schema"
)

// Columns converts buffered describe rows into column metadata, in row index
// order. Cells missing from the layout read as NULL.
func Columns(rs *rows.Rows) []schema.ColumnMetadata {
	cols := make([]schema.ColumnMetadata, 0, rs.Len())
	for _, row := range rs.All() {
		cells := make(map[string]rows.Cell, len(row))
		for name, cell := range rs.Named(row) {
			cells[name] = cell
		}
		cols = append(cols, schema.ColumnMetadata{
			Name:         textOf(cells, schema.ColColumnName).String,
			DataType:     textOf(cells, schema.ColDataType),
			DataTypeMod:  textOf(cells, schema.ColDataTypeMod),
			DataLength:   numberOf(cells, schema.ColDataLength),
			Nullable:     schema.ParseNullability(textOf(cells, schema.ColNullable).String),
			LastAnalyzed: timeOf(cells, schema.ColLastAnalyzed),
		})
	}
	return cols
}

func textOf(cells map[string]rows.Cell, name string) sql.NullString {
	c, ok := cells[name]
	if !ok || c.Null {
		return sql.NullString{}
	}
	return sql.NullString{String: c.Text(), Valid: true}
}

func numberOf(cells map[string]rows.Cell, name string) float64 {
	c, ok := cells[name]
	if !ok || c.Null {
		return 0
	}
	switch v := c.Value.(type) {
	case float64:
		return v
	case float32:
		return float64(v)
	case int64:
		return float64(v)
	case int32:
		return float64(v)
	case int:
		return float64(v)
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(c.Text()), 64)
	if err != nil {
		return 0
	}
	return f
}

func timeOf(cells map[string]rows.Cell, name string) sql.NullTime {
	c, ok := cells[name]
	if !ok || c.Null {
		return sql.NullTime{}
	}
	switch v := c.Value.(type) {
	case time.Time:
		return sql.NullTime{Time: v, Valid: true}
	case string:
		return parseTime(v)
	case []byte:
		return parseTime(string(v))
	}
	return sql.NullTime{}
}

var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func parseTime(s string) sql.NullTime {
	for _, layout := range timeLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return sql.NullTime{Time: t, Valid: true}
		}
	}
	return sql.NullTime{}
}
