package driver

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRows replays fixed values as a pgx result.
type fakeRows struct {
	fields []pgconn.FieldDescription
	data   [][]any
	pos    int
	err    error
	closed bool
}

func (r *fakeRows) Close()                                       { r.closed = true }
func (r *fakeRows) Err() error                                   { return r.err }
func (r *fakeRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (r *fakeRows) FieldDescriptions() []pgconn.FieldDescription { return r.fields }
func (r *fakeRows) Scan(...any) error                            { return errors.New("not supported") }
func (r *fakeRows) RawValues() [][]byte                          { return nil }
func (r *fakeRows) Conn() *pgx.Conn                              { return nil }

func (r *fakeRows) Next() bool {
	if r.closed || r.pos >= len(r.data) {
		return false
	}
	r.pos++
	return true
}

func (r *fakeRows) Values() ([]any, error) { return r.data[r.pos-1], nil }

func TestPgxCursor(t *testing.T) {
	rows := &fakeRows{
		fields: []pgconn.FieldDescription{
			{Name: "TABLE_NAME", DataTypeOID: pgtype.TextOID},
			{Name: "COLUMN_ID", DataTypeOID: pgtype.Int4OID},
			{Name: "GEOM", DataTypeOID: 99999},
		},
		data: [][]any{{"emp", int32(1), nil}, {"dept", int32(2), nil}},
	}

	cur := newPgxCursor(rows, pgtype.NewMap())
	assert.Equal(t, []ColumnInfo{
		{Name: "TABLE_NAME", NativeType: "text"},
		{Name: "COLUMN_ID", NativeType: "int4"},
		{Name: "GEOM", NativeType: "99999"},
	}, cur.Columns())

	var got [][]any
	for cur.Next() {
		vals, err := cur.Values()
		require.NoError(t, err)
		got = append(got, vals)
	}
	require.NoError(t, cur.Err())
	require.NoError(t, cur.Close())
	assert.True(t, rows.closed)
	assert.Equal(t, [][]any{{"emp", int32(1), nil}, {"dept", int32(2), nil}}, got)
}

func TestPgxCursorCloseReportsErr(t *testing.T) {
	boom := errors.New("canceling statement due to statement timeout")
	cur := newPgxCursor(&fakeRows{err: boom}, pgtype.NewMap())
	assert.Empty(t, cur.Columns())
	assert.ErrorIs(t, cur.Close(), boom)
}

func TestOpenPgxBadDSN(t *testing.T) {
	_, err := OpenPgx(context.Background(), "postgres://db.local:notaport/hr")
	require.Error(t, err)
}
