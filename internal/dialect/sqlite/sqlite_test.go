package sqlite

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benritz/ormgen/internal/dialect"
)

func TestDSN(t *testing.T) {
	for in, want := range map[string]string{
		"sqlite:///var/lib/hr.db": "/var/lib/hr.db",
		"file:hr.db?mode=ro":      "file:hr.db?mode=ro",
		"hr.db":                   "hr.db",
	} {
		got, err := New().DSN(dialect.Source{URL: in, Username: "ignored"})
		require.NoError(t, err)
		assert.Equal(t, want, got, in)
	}
}

func TestDescribeArgs(t *testing.T) {
	assert.Equal(t, []any{"emp", "emp"}, New().DescribeArgs("emp"))
}
