package mysql

import (
	"context"
	"fmt"

	"github.com/go-sql-driver/mysql"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
)

const listTables = `SELECT TABLE_NAME AS TABLE_NAME
FROM information_schema.TABLES
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_TYPE = 'BASE TABLE'
ORDER BY TABLE_NAME ASC`

const describe = `SELECT
    c.TABLE_NAME AS TABLE_NAME,
    c.COLUMN_NAME AS COLUMN_NAME,
    UPPER(c.DATA_TYPE) AS DATA_TYPE,
    c.COLUMN_TYPE AS DATA_TYPE_MOD,
    c.TABLE_SCHEMA AS DATA_TYPE_OWNER,
    COALESCE(c.CHARACTER_MAXIMUM_LENGTH, c.NUMERIC_PRECISION) AS DATA_LENGTH,
    c.NUMERIC_PRECISION AS DATA_PRECISION,
    c.NUMERIC_SCALE AS DATA_SCALE,
    CASE c.IS_NULLABLE WHEN 'YES' THEN 'Y' ELSE 'N' END AS NULLABLE,
    c.ORDINAL_POSITION AS COLUMN_ID,
    CHAR_LENGTH(c.COLUMN_DEFAULT) AS DEFAULT_LENGTH,
    s.CARDINALITY AS NUM_DISTINCT,
    NULL AS LOW_VALUE,
    t.UPDATE_TIME AS LAST_ANALYZED
FROM information_schema.COLUMNS c
JOIN information_schema.TABLES t
  ON t.TABLE_SCHEMA = c.TABLE_SCHEMA AND t.TABLE_NAME = c.TABLE_NAME
LEFT JOIN information_schema.STATISTICS s
  ON s.TABLE_SCHEMA = c.TABLE_SCHEMA AND s.TABLE_NAME = c.TABLE_NAME
  AND s.COLUMN_NAME = c.COLUMN_NAME AND s.SEQ_IN_INDEX = 1 AND s.INDEX_NAME = 'PRIMARY'
WHERE c.TABLE_SCHEMA = DATABASE() AND c.TABLE_NAME = ?
ORDER BY c.ORDINAL_POSITION ASC`

// Dialect introspects MySQL and MariaDB through go-sql-driver/mysql.
type Dialect struct{}

func New() Dialect { return Dialect{} }

func (Dialect) Name() string { return "mysql" }

// DSN expects a go-sql-driver DSN ("user:pass@tcp(host:3306)/db"). Timestamps
// are parsed so LAST_ANALYZED arrives as a time value.
func (Dialect) DSN(src dialect.Source) (string, error) {
	cfg, err := mysql.ParseDSN(src.URL)
	if err != nil {
		return "", fmt.Errorf("mysql dsn: %w", err)
	}
	if src.Username != "" {
		cfg.User = src.Username
		cfg.Passwd = src.Password
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("mysql dsn %q names no database", src.URL)
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

func (Dialect) Open(ctx context.Context, dsn string) (driver.Session, error) {
	return driver.OpenSQL(ctx, "mysql", dsn)
}

func (Dialect) ListTablesQuery() string { return listTables }

func (Dialect) DescribeQuery() string { return describe }

func (Dialect) DescribeArgs(table string) []any { return []any{table} }
