package sqlite

import (
	"context"
	"strings"

	_ "modernc.org/sqlite"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
)

const listTables = `SELECT name AS TABLE_NAME
FROM sqlite_master
WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
ORDER BY name ASC`

const describe = `SELECT
    ? AS TABLE_NAME,
    p.name AS COLUMN_NAME,
    upper(p.type) AS DATA_TYPE,
    NULL AS DATA_TYPE_MOD,
    NULL AS DATA_TYPE_OWNER,
    NULL AS DATA_LENGTH,
    NULL AS DATA_PRECISION,
    NULL AS DATA_SCALE,
    CASE WHEN p."notnull" = 0 AND p.pk = 0 THEN 'Y' ELSE 'N' END AS NULLABLE,
    p.cid + 1 AS COLUMN_ID,
    length(p.dflt_value) AS DEFAULT_LENGTH,
    NULL AS NUM_DISTINCT,
    NULL AS LOW_VALUE,
    NULL AS LAST_ANALYZED
FROM pragma_table_info(?) p
ORDER BY p.cid ASC`

// Dialect introspects SQLite files through the pure-Go modernc driver.
type Dialect struct{}

func New() Dialect { return Dialect{} }

func (Dialect) Name() string { return "sqlite" }

// DSN accepts a file path, a file: URI or a sqlite:// URL.
func (Dialect) DSN(src dialect.Source) (string, error) {
	return strings.TrimPrefix(src.URL, "sqlite://"), nil
}

func (Dialect) Open(ctx context.Context, dsn string) (driver.Session, error) {
	return driver.OpenSQL(ctx, "sqlite", dsn)
}

func (Dialect) ListTablesQuery() string { return listTables }

func (Dialect) DescribeQuery() string { return describe }

// DescribeArgs binds the table name twice: once echoed as TABLE_NAME and once
// as the pragma argument.
func (Dialect) DescribeArgs(table string) []any { return []any{table, table} }
