package report

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"benritz/ormgen/internal/rows"
)

func TestWrite(t *testing.T) {
	rs := rows.New([]rows.Column{
		{Name: "COLUMN_NAME", Type: "VARCHAR2"},
		{Name: "DATA_TYPE", Type: "VARCHAR2"},
		{Name: "NULLABLE", Type: "CHAR"},
	})
	// inserted out of order; printed by index
	require.NoError(t, rs.Insert(1, rows.Row{
		rows.NewCell("VARCHAR2", "SALARY"),
		rows.NewCell("VARCHAR2", "NUMBER"),
		rows.NewCell("CHAR", nil),
	}))
	require.NoError(t, rs.Insert(0, rows.Row{
		rows.NewCell("VARCHAR2", "EMPLOYEE_FULL_NAME"),
		rows.NewCell("VARCHAR2", "VARCHAR2"),
		rows.NewCell("CHAR", "Y"),
	}))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "EMP", rs))
	assert.Equal(t, ""+
		"EMP\n"+
		"COLUMN_NAME         DATA_TYPE  NULLABLE\n"+
		"EMPLOYEE_FULL_NAME  VARCHAR2   Y\n"+
		"SALARY              NUMBER     (null)\n", buf.String())
}

func TestWriteMultibyte(t *testing.T) {
	rs := rows.New([]rows.Column{{Name: "N"}, {Name: "T"}})
	require.NoError(t, rs.Insert(0, rows.Row{rows.NewCell("", "größe"), rows.NewCell("", "x")}))
	require.NoError(t, rs.Insert(1, rows.Row{rows.NewCell("", "a"), rows.NewCell("", "y")}))

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "T", rs))
	assert.Equal(t, "T\nN      T\ngröße  x\na      y\n", buf.String())
}

func TestWriteEmpty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, "EMPTY", rows.New([]rows.Column{{Name: "COLUMN_NAME"}})))
	assert.Equal(t, "EMPTY\nCOLUMN_NAME\n", buf.String())
}

type failWriter struct{}

func (failWriter) Write([]byte) (int, error) { return 0, errors.New("broken pipe") }

func TestWriteError(t *testing.T) {
	err := Write(failWriter{}, "EMP", rows.New(nil))
	assert.EqualError(t, err, "broken pipe")
}
