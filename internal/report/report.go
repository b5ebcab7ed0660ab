// Package report prints buffered describe rows as a padded text table.
package report

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"benritz/ormgen/internal/rows"
)

const gap = "  "

// Write prints a title line, a header line and one line per row of rs.
// Every column is padded to the wider of its header and its widest cell.
func Write(w io.Writer, title string, rs *rows.Rows) error {
	cols := rs.Columns()
	widths := make([]int, len(cols))
	header := make([]string, len(cols))
	for i, c := range cols {
		widths[i] = max(utf8.RuneCountInString(c.Name), c.Width)
		header[i] = c.Name
	}

	if _, err := fmt.Fprintln(w, title); err != nil {
		return err
	}
	if err := writeLine(w, widths, header); err != nil {
		return err
	}
	for _, row := range rs.All() {
		cells := make([]string, len(row))
		for i, c := range row {
			cells[i] = c.Text()
		}
		if err := writeLine(w, widths, cells); err != nil {
			return err
		}
	}
	return nil
}

func writeLine(w io.Writer, widths []int, cells []string) error {
	var b strings.Builder
	for i, s := range cells {
		if i > 0 {
			b.WriteString(gap)
		}
		fmt.Fprintf(&b, "%-*s", widths[i], s)
	}
	_, err := fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
	return err
}
