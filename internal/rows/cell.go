// Package rows buffers the cells of one result set by row index and tracks
// per-column display metadata while the cursor is drained.
package rows

import (
	"fmt"
	"strconv"
	"time"
	"unicode/utf8"
)

// NullText is the display text of a SQL NULL.
const NullText = "(null)"

// Cell is a single fetched value tagged with its native type.
type Cell struct {
	Type  string
	Value any
	Null  bool
}

// NewCell builds a cell from a driver value; a nil value is a SQL NULL.
func NewCell(nativeType string, v any) Cell {
	if v == nil {
		return Cell{Type: nativeType, Null: true}
	}
	return Cell{Type: nativeType, Value: v}
}

// Text converts the cell to display text.
func (c Cell) Text() string {
	if c.Null {
		return NullText
	}
	switch v := c.Value.(type) {
	case string:
		return v
	case []byte:
		return string(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case int32:
		return strconv.FormatInt(int64(v), 10)
	case int:
		return strconv.Itoa(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case float32:
		return strconv.FormatFloat(float64(v), 'f', -1, 32)
	case bool:
		return strconv.FormatBool(v)
	case time.Time:
		return v.UTC().Format("2006-01-02 15:04:05 UTC")
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprint(v)
	}
}

// Width is the number of runes in the cell's display text.
func (c Cell) Width() int {
	return utf8.RuneCountInString(c.Text())
}

// Row is the ordered cells of one fetched record.
type Row []Cell

// Column is the running state of one result column.
type Column struct {
	Name  string
	Type  string
	Width int
}

// Observe returns the accumulator updated with a cell of width n.
func (c Column) Observe(n int) Column {
	if n > c.Width {
		c.Width = n
	}
	return c
}
