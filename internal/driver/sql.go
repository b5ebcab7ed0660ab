package driver

import (
	"context"
	"database/sql"
	"fmt"
)

// SQLSession is a Session over a database/sql pool.
type SQLSession struct {
	db *sql.DB
}

func NewSQLSession(db *sql.DB) *SQLSession {
	return &SQLSession{db: db}
}

// OpenSQL opens a database/sql pool for a registered driver and pings it so
// connection failures surface before any catalog query.
func OpenSQL(ctx context.Context, driverName, dsn string) (*SQLSession, error) {
	db, err := sql.Open(driverName, dsn)
	if err != nil {
		return nil, fmt.Errorf("sql.Open: %w", err)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping: %w", err)
	}
	return &SQLSession{db: db}, nil
}

func (s *SQLSession) Query(ctx context.Context, query string, args ...any) (Cursor, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	types, err := rows.ColumnTypes()
	if err != nil {
		_ = rows.Close()
		return nil, err
	}
	cols := make([]ColumnInfo, len(types))
	for i, ct := range types {
		cols[i] = ColumnInfo{Name: ct.Name(), NativeType: ct.DatabaseTypeName()}
	}
	return &sqlCursor{rows: rows, cols: cols}, nil
}

func (s *SQLSession) Close(context.Context) error {
	return s.db.Close()
}

type sqlCursor struct {
	rows *sql.Rows
	cols []ColumnInfo
}

func (c *sqlCursor) Columns() []ColumnInfo { return c.cols }

func (c *sqlCursor) Next() bool { return c.rows.Next() }

func (c *sqlCursor) Values() ([]any, error) {
	vals := make([]any, len(c.cols))
	ptrs := make([]any, len(c.cols))
	for i := range vals {
		ptrs[i] = &vals[i]
	}
	if err := c.rows.Scan(ptrs...); err != nil {
		return nil, err
	}
	return vals, nil
}

func (c *sqlCursor) Err() error { return c.rows.Err() }

func (c *sqlCursor) Close() error { return c.rows.Close() }
