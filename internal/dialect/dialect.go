package dialect

import (
	"context"
	"fmt"
	"net/url"

	"benritz/ormgen/internal/driver"
)

// Source locates the database to introspect.
type Source struct {
	URL      string
	Username string
	Password string
}

// Dialect knows how to reach one kind of database and how to query its
// catalog. DescribeQuery results must follow schema.DescribeLayout.
type Dialect interface {
	Name() string
	DSN(src Source) (string, error)
	Open(ctx context.Context, dsn string) (driver.Session, error)
	ListTablesQuery() string
	DescribeQuery() string
	DescribeArgs(table string) []any
}

// URLWithUser merges credentials into the userinfo of a URL-style DSN.
// Credentials already present in the URL are replaced only when a username
// is given.
func URLWithUser(src Source) (string, error) {
	u, err := url.Parse(src.URL)
	if err != nil {
		return "", fmt.Errorf("parse connection url: %w", err)
	}
	if u.Scheme == "" {
		return "", fmt.Errorf("connection url %q has no scheme", src.URL)
	}
	if src.Username != "" {
		if src.Password != "" {
			u.User = url.UserPassword(src.Username, src.Password)
		} else {
			u.User = url.User(src.Username)
		}
	}
	return u.String(), nil
}
