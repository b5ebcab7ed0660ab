package mssql

import (
	"context"
	"database/sql"

	_ "github.com/denisenkom/go-mssqldb"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/driver"
)

const listTables = `select t.name as TABLE_NAME
from sys.tables t
where t.is_ms_shipped = 0
  and schema_name(t.schema_id) = schema_name()
order by t.name asc`

const describe = `select
c.TABLE_NAME as TABLE_NAME,
c.COLUMN_NAME as COLUMN_NAME,
upper(c.DATA_TYPE) as DATA_TYPE,
c.DOMAIN_NAME as DATA_TYPE_MOD,
c.DOMAIN_SCHEMA as DATA_TYPE_OWNER,
c.CHARACTER_MAXIMUM_LENGTH as DATA_LENGTH,
c.NUMERIC_PRECISION as DATA_PRECISION,
c.NUMERIC_SCALE as DATA_SCALE,
case c.IS_NULLABLE when 'YES' then 'Y' else 'N' end as NULLABLE,
c.ORDINAL_POSITION as COLUMN_ID,
len(c.COLUMN_DEFAULT) as DEFAULT_LENGTH,
null as NUM_DISTINCT,
null as LOW_VALUE,
(select max(stats_date(s.object_id, s.stats_id))
  from sys.stats s
  where s.object_id = object_id(quotename(c.TABLE_SCHEMA) + '.' + quotename(c.TABLE_NAME))) as LAST_ANALYZED
from INFORMATION_SCHEMA.COLUMNS c
join INFORMATION_SCHEMA.TABLES t
  on t.TABLE_CATALOG = c.TABLE_CATALOG
  and t.TABLE_SCHEMA = c.TABLE_SCHEMA
  and t.TABLE_NAME = c.TABLE_NAME
where t.TABLE_TYPE = 'BASE TABLE'
  and c.TABLE_SCHEMA = schema_name()
  and c.TABLE_NAME = @table_name
order by c.ORDINAL_POSITION asc`

// Dialect introspects Microsoft SQL Server through go-mssqldb. Both queries
// are limited to base tables of the login's default schema.
type Dialect struct{}

func New() Dialect { return Dialect{} }

func (Dialect) Name() string { return "sqlserver" }

// DSN expects a sqlserver:// URL.
func (Dialect) DSN(src dialect.Source) (string, error) {
	return dialect.URLWithUser(src)
}

func (Dialect) Open(ctx context.Context, dsn string) (driver.Session, error) {
	return driver.OpenSQL(ctx, "sqlserver", dsn)
}

func (Dialect) ListTablesQuery() string { return listTables }

func (Dialect) DescribeQuery() string { return describe }

func (Dialect) DescribeArgs(table string) []any {
	return []any{sql.Named("table_name", table)}
}
