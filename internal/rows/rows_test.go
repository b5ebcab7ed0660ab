package rows

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func describeColumns() []Column {
	return []Column{
		{Name: "COLUMN_NAME", Type: "VARCHAR2"},
		{Name: "DATA_TYPE", Type: "VARCHAR2"},
		{Name: "NULLABLE", Type: "VARCHAR2"},
	}
}

func row(vals ...any) Row {
	r := make(Row, len(vals))
	for i, v := range vals {
		r[i] = NewCell("VARCHAR2", v)
	}
	return r
}

func TestCellText(t *testing.T) {
	tests := []struct {
		name string
		cell Cell
		want string
	}{
		{"null", NewCell("NUMBER", nil), NullText},
		{"string", NewCell("VARCHAR2", "EMP"), "EMP"},
		{"bytes", NewCell("RAW", []byte("ab")), "ab"},
		{"int64", NewCell("NUMBER", int64(42)), "42"},
		{"float64", NewCell("NUMBER", 22.5), "22.5"},
		{"float64 integral", NewCell("NUMBER", float64(22)), "22"},
		{"bool", NewCell("BOOLEAN", true), "true"},
		{"time", NewCell("DATE", time.Date(2017, 1, 2, 3, 4, 5, 0, time.UTC)), "2017-01-02 03:04:05 UTC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cell.Text())
		})
	}
}

func TestCellWidthCountsRunes(t *testing.T) {
	assert.Equal(t, 4, NewCell("VARCHAR2", "Müll").Width())
	assert.Equal(t, len(NullText), NewCell("VARCHAR2", nil).Width())
}

func TestColumnObserveIsMonotonic(t *testing.T) {
	c := Column{Name: "COLUMN_NAME"}
	widths := []int{3, 9, 1, 9, 4, 0}
	prev := c.Width
	for _, w := range widths {
		c = c.Observe(w)
		assert.GreaterOrEqual(t, c.Width, prev)
		prev = c.Width
	}
	assert.Equal(t, 9, c.Width)
}

func TestColumnObserveReturnsCopy(t *testing.T) {
	c := Column{Name: "X", Width: 2}
	next := c.Observe(5)
	assert.Equal(t, 2, c.Width)
	assert.Equal(t, 5, next.Width)
}

func TestInsertTracksMaxWidth(t *testing.T) {
	r := New(describeColumns())
	require.NoError(t, r.Insert(0, row("NAME", "VARCHAR2", "Y")))
	require.NoError(t, r.Insert(1, row("SALARY", "NUMBER", nil)))
	require.NoError(t, r.Insert(2, row("ID", "NUMBER", "N")))

	cols := r.Columns()
	assert.Equal(t, len("SALARY"), cols[0].Width)
	assert.Equal(t, len("VARCHAR2"), cols[1].Width)
	assert.Equal(t, len(NullText), cols[2].Width)
}

func TestMaxWidthIsOrderIndependent(t *testing.T) {
	data := []Row{
		row("A", "NUMBER", "Y"),
		row("LONGEST_NAME", "DATE", "N"),
		row("MID_NAME", "VARCHAR2", "Y"),
	}
	forward := New(describeColumns())
	backward := New(describeColumns())
	for i, r := range data {
		require.NoError(t, forward.Insert(i, r))
		require.NoError(t, backward.Insert(len(data)-1-i, data[len(data)-1-i]))
	}
	assert.Equal(t, forward.Columns(), backward.Columns())

	for ci := range describeColumns() {
		want := 0
		for _, r := range data {
			want = max(want, r[ci].Width())
		}
		assert.Equal(t, want, forward.Columns()[ci].Width)
	}
}

func TestIterationFollowsIndexOrder(t *testing.T) {
	r := New(describeColumns())
	require.NoError(t, r.Insert(7, row("C", "NUMBER", "N")))
	require.NoError(t, r.Insert(2, row("A", "NUMBER", "N")))
	require.NoError(t, r.Insert(5, row("B", "NUMBER", "N")))

	assert.Equal(t, []int{2, 5, 7}, r.Indexes())

	var names []string
	for _, rw := range r.All() {
		names = append(names, rw[0].Text())
	}
	assert.Equal(t, []string{"A", "B", "C"}, names)
}

func TestInsertRejectsBadRows(t *testing.T) {
	r := New(describeColumns())
	require.NoError(t, r.Insert(0, row("NAME", "VARCHAR2", "Y")))

	t.Run("wrong length", func(t *testing.T) {
		err := r.Insert(1, row("X_VERY_LONG_NAME", "NUMBER"))
		require.Error(t, err)
		assert.Equal(t, len("NAME"), r.Columns()[0].Width)
	})

	t.Run("duplicate index", func(t *testing.T) {
		err := r.Insert(0, row("ANOTHER_LONG_NAME", "NUMBER", "N"))
		require.Error(t, err)
		assert.Equal(t, len("NAME"), r.Columns()[0].Width)
		assert.Equal(t, 1, r.Len())
	})
}

func TestNamedPairsCellsWithColumns(t *testing.T) {
	r := New(describeColumns())
	rw := row("NAME", "VARCHAR2", "Y")
	require.NoError(t, r.Insert(0, rw))

	got := map[string]string{}
	for name, cell := range r.Named(rw) {
		got[name] = cell.Text()
	}
	assert.Equal(t, map[string]string{
		"COLUMN_NAME": "NAME",
		"DATA_TYPE":   "VARCHAR2",
		"NULLABLE":    "Y",
	}, got)
}
