package rows

import (
	"fmt"
	"iter"
	"maps"
	"slices"
)

// Rows is an ordered mapping from row index to row for one result set.
// Iteration is in index order regardless of insertion order.
type Rows struct {
	cols []Column
	rows map[int]Row
}

// New creates an empty store for a result set with the given columns.
// Column widths start at zero.
func New(cols []Column) *Rows {
	c := make([]Column, len(cols))
	for i, col := range cols {
		c[i] = Column{Name: col.Name, Type: col.Type}
	}
	return &Rows{cols: c, rows: make(map[int]Row)}
}

// Insert observes the width of every cell of row and then stores it under
// index. Rows of the wrong length and duplicate indexes are rejected without
// touching the accumulators.
func (r *Rows) Insert(index int, row Row) error {
	if len(row) != len(r.cols) {
		return fmt.Errorf("row %d has %d cells, want %d", index, len(row), len(r.cols))
	}
	if _, ok := r.rows[index]; ok {
		return fmt.Errorf("row %d already inserted", index)
	}
	stored := make(Row, len(row))
	for i, cell := range row {
		r.cols[i] = r.cols[i].Observe(cell.Width())
		stored[i] = cell
	}
	r.rows[index] = stored
	return nil
}

// Len returns the number of stored rows.
func (r *Rows) Len() int { return len(r.rows) }

// Columns returns a copy of the column accumulators.
func (r *Rows) Columns() []Column { return slices.Clone(r.cols) }

// Indexes returns the stored row indexes in ascending order.
func (r *Rows) Indexes() []int {
	return slices.Sorted(maps.Keys(r.rows))
}

// All iterates rows in index order.
func (r *Rows) All() iter.Seq2[int, Row] {
	return func(yield func(int, Row) bool) {
		for _, idx := range r.Indexes() {
			if !yield(idx, r.rows[idx]) {
				return
			}
		}
	}
}

// Named pairs every cell of row with its column name.
func (r *Rows) Named(row Row) iter.Seq2[string, Cell] {
	return func(yield func(string, Cell) bool) {
		for i, cell := range row {
			if !yield(r.cols[i].Name, cell) {
				return
			}
		}
	}
}
