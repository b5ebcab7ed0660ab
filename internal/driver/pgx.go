package driver

import (
	"context"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

// PgxSession is a Session over a native pgx connection.
type PgxSession struct {
	conn *pgx.Conn
}

// NewPgxSession wraps an open connection. Closing the session closes conn.
func NewPgxSession(conn *pgx.Conn) *PgxSession {
	return &PgxSession{conn: conn}
}

// OpenPgx connects to dsn, a postgres:// URL or keyword/value string.
func OpenPgx(ctx context.Context, dsn string) (*PgxSession, error) {
	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, err
	}
	return NewPgxSession(conn), nil
}

func (s *PgxSession) Query(ctx context.Context, query string, args ...any) (Cursor, error) {
	rows, err := s.conn.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return newPgxCursor(rows, s.conn.TypeMap()), nil
}

func (s *PgxSession) Close(ctx context.Context) error {
	return s.conn.Close(ctx)
}

type pgxCursor struct {
	rows pgx.Rows
	cols []ColumnInfo
}

// newPgxCursor resolves the result's type OIDs through types. OIDs the map
// does not know are reported as their decimal value.
func newPgxCursor(rows pgx.Rows, types *pgtype.Map) *pgxCursor {
	fds := rows.FieldDescriptions()
	cols := make([]ColumnInfo, len(fds))
	for i, fd := range fds {
		native := strconv.FormatUint(uint64(fd.DataTypeOID), 10)
		if t, ok := types.TypeForOID(fd.DataTypeOID); ok {
			native = t.Name
		}
		cols[i] = ColumnInfo{Name: fd.Name, NativeType: native}
	}
	return &pgxCursor{rows: rows, cols: cols}
}

func (c *pgxCursor) Columns() []ColumnInfo { return c.cols }

func (c *pgxCursor) Next() bool { return c.rows.Next() }

func (c *pgxCursor) Values() ([]any, error) { return c.rows.Values() }

func (c *pgxCursor) Err() error { return c.rows.Err() }

func (c *pgxCursor) Close() error {
	c.rows.Close()
	return c.rows.Err()
}
