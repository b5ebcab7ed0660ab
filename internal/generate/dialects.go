package generate

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	"benritz/ormgen/internal/dialect"
	"benritz/ormgen/internal/dialect/mssql"
	"benritz/ormgen/internal/dialect/mysql"
	"benritz/ormgen/internal/dialect/pgsql"
	"benritz/ormgen/internal/dialect/sqlite"
)

var dialects = map[string]dialect.Dialect{
	"sqlserver": mssql.New(),
	"postgres":  pgsql.New(),
	"mysql":     mysql.New(),
	"sqlite":    sqlite.New(),
}

var aliases = map[string]string{
	"mssql":      "sqlserver",
	"pgsql":      "postgres",
	"postgresql": "postgres",
	"mariadb":    "mysql",
	"sqlite3":    "sqlite",
	"file":       "sqlite",
}

// Dialects returns the registered dialect names, sorted.
func Dialects() []string {
	return slices.Sorted(maps.Keys(dialects))
}

// LookupDialect resolves a dialect name or one of its aliases.
func LookupDialect(name string) (dialect.Dialect, error) {
	key := strings.ToLower(name)
	if alias, ok := aliases[key]; ok {
		key = alias
	}
	d, ok := dialects[key]
	if !ok {
		return nil, fmt.Errorf("unknown dialect %q (want one of %s)", name, strings.Join(Dialects(), ", "))
	}
	return d, nil
}

// DetectDialect infers a dialect name from the scheme of a connection URL.
// It returns "" when the URL carries no recognised scheme.
func DetectDialect(url string) string {
	scheme, _, ok := strings.Cut(url, "://")
	if !ok {
		scheme, _, ok = strings.Cut(url, ":")
		if !ok || scheme != "file" {
			return ""
		}
	}
	scheme = strings.ToLower(scheme)
	if _, ok := dialects[scheme]; ok {
		return scheme
	}
	return aliases[scheme]
}
