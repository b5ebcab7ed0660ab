package pgsql

import (
	"context"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
)

const listTables = `SELECT c.relname::text AS "TABLE_NAME"
FROM pg_catalog.pg_class c
JOIN pg_catalog.pg_namespace n ON n.oid = c.relnamespace
WHERE c.relkind IN ('r', 'p')
  AND n.nspname = current_schema()
ORDER BY c.relname ASC`

const describe = `SELECT
    c.table_name::text AS "TABLE_NAME",
    c.column_name::text AS "COLUMN_NAME",
    upper(c.data_type::text) AS "DATA_TYPE",
    c.udt_name::text AS "DATA_TYPE_MOD",
    c.udt_schema::text AS "DATA_TYPE_OWNER",
    coalesce(c.character_maximum_length, c.numeric_precision)::int AS "DATA_LENGTH",
    c.numeric_precision::int AS "DATA_PRECISION",
    c.numeric_scale::int AS "DATA_SCALE",
    CASE c.is_nullable WHEN 'YES' THEN 'Y' ELSE 'N' END AS "NULLABLE",
    c.ordinal_position::int AS "COLUMN_ID",
    length(c.column_default::text) AS "DEFAULT_LENGTH",
    s.n_distinct AS "NUM_DISTINCT",
    NULL::text AS "LOW_VALUE",
    greatest(st.last_analyze, st.last_autoanalyze) AS "LAST_ANALYZED"
FROM information_schema.columns c
LEFT JOIN pg_catalog.pg_stats s
  ON s.schemaname = c.table_schema AND s.tablename = c.table_name AND s.attname = c.column_name
  AND NOT s.inherited
LEFT JOIN pg_catalog.pg_stat_user_tables st
  ON st.schemaname = c.table_schema AND st.relname = c.table_name
WHERE c.table_schema = current_schema()
  AND c.table_name = $1
ORDER BY c.ordinal_position::int ASC`

// Dialect introspects PostgreSQL over a native pgx connection.
type Dialect struct{}

func New() Dialect { return Dialect{} }

func (Dialect) Name() string { return "postgres" }

// DSN expects a postgres:// URL.
func (Dialect) DSN(src dialect.Source) (string, error) {
	return dialect.URLWithUser(src)
}

func (Dialect) Open(ctx context.Context, dsn string) (driver.Session, error) {
	return driver.OpenPgx(ctx, dsn)
}

func (Dialect) ListTablesQuery() string { return listTables }

func (Dialect) DescribeQuery() string { return describe }

func (Dialect) DescribeArgs(table string) []any { return []any{table} }
