// Package catalog reads table names and column metadata from a database
// catalog into row stores.
package catalog

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
	"benritz/ormgen/internal/errs"
	"benritz/ormgen/internal/rows"
	"benritz/ormgen/internal/schema"
)

// Reader issues the list and describe queries of one dialect over a session.
type Reader struct {
	session driver.Session
	dialect dialect.Dialect
	logger  *slog.Logger
}

func NewReader(session driver.Session, d dialect.Dialect, logger *slog.Logger) *Reader {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Reader{session: session, dialect: d, logger: logger}
}

// ListTables returns the catalog's table names in the order the list query
// returns them.
func (r *Reader) ListTables(ctx context.Context) ([]string, error) {
	rs, err := r.drain(ctx, "list tables", "", r.dialect.ListTablesQuery())
	if err != nil {
		return nil, err
	}
	if len(rs.Columns()) == 0 {
		return nil, errs.NewDriverError("list tables", "", errors.New("list query returned no columns"))
	}
	tables := make([]string, 0, rs.Len())
	for _, row := range rs.All() {
		if row[0].Null {
			continue
		}
		tables = append(tables, row[0].Text())
	}
	r.logger.Debug("listed tables", "count", len(tables))
	return tables, nil
}

// DescribeRows runs the describe query for table and buffers every row. An
// empty store is valid and means the table has no visible columns.
func (r *Reader) DescribeRows(ctx context.Context, table string) (*rows.Rows, error) {
	rs, err := r.drain(ctx, "describe", table, r.dialect.DescribeQuery(), r.dialect.DescribeArgs(table)...)
	if err != nil {
		return nil, err
	}
	r.logger.Debug("described table", "table", table, "columns", rs.Len())
	return rs, nil
}

// DescribeColumns returns the column metadata of table.
func (r *Reader) DescribeColumns(ctx context.Context, table string) ([]schema.ColumnMetadata, error) {
	rs, err := r.DescribeRows(ctx, table)
	if err != nil {
		return nil, err
	}
	return Columns(rs), nil
}

// drain executes query and fetches until the cursor is exhausted. The cursor
// is closed before returning on every path.
func (r *Reader) drain(ctx context.Context, op, table, query string, args ...any) (rs *rows.Rows, err error) {
	cur, err := r.session.Query(ctx, query, args...)
	if err != nil {
		return nil, errs.NewDriverError(op, table, err)
	}
	defer func() {
		if cerr := cur.Close(); cerr != nil && err == nil {
			rs, err = nil, errs.NewDriverError(op, table, fmt.Errorf("close cursor: %w", cerr))
		}
	}()

	info := cur.Columns()
	cols := make([]rows.Column, len(info))
	for i, c := range info {
		cols[i] = rows.Column{Name: c.Name, Type: c.NativeType}
	}
	rs = rows.New(cols)

	for idx := 0; cur.Next(); idx++ {
		vals, err := cur.Values()
		if err != nil {
			return nil, errs.NewDriverError(op, table, err)
		}
		row := make(rows.Row, len(vals))
		for i, v := range vals {
			// Values may report fewer columns than the cursor advertised.
			typ := ""
			if i < len(info) {
				typ = info[i].NativeType
			}
			row[i] = rows.NewCell(typ, v)
		}
		if err := rs.Insert(idx, row); err != nil {
			return nil, errs.NewDriverError(op, table, err)
		}
	}
	if err := cur.Err(); err != nil {
		return nil, errs.NewDriverError(op, table, err)
	}
	return rs, nil
}
