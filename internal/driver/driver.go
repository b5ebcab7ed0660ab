// Package driver adapts database client libraries to the small cursor
// capability the catalog reader needs: run a query, read column info, fetch
// rows of untyped cells and release the cursor.
package driver

import "context"

// ColumnInfo describes one result column of a cursor.
type ColumnInfo struct {
	Name       string
	NativeType string
}

// Cursor iterates the rows of one executed query. Close must be called once
// the caller is done, whether or not the rows were drained.
type Cursor interface {
	Columns() []ColumnInfo
	Next() bool
	// Values returns the current row. A nil element is a SQL NULL.
	Values() ([]any, error)
	Err() error
	Close() error
}

// Session is an open database connection.
type Session interface {
	Query(ctx context.Context, query string, args ...any) (Cursor, error)
	Close(ctx context.Context) error
}
