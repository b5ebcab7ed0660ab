package schema

import (
	"database/sql"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseNullability(t *testing.T) {
	tests := []struct {
		marker string
		want   Nullability
	}{
		{"Y", NullYes},
		{"N", NullNo},
		{"y", NullUnknown},
		{"YES", NullUnknown},
		{"", NullUnknown},
		{"(null)", NullUnknown},
	}
	for _, tt := range tests {
		t.Run(tt.marker, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseNullability(tt.marker))
		})
	}
}

func TestColumnMetadataString(t *testing.T) {
	c := ColumnMetadata{
		Name:       "SALARY",
		DataType:   sql.NullString{String: "NUMBER", Valid: true},
		DataLength: 22,
		Nullable:   NullNo,
		LastAnalyzed: sql.NullTime{
			Time:  time.Date(2017, 3, 1, 12, 30, 0, 0, time.UTC),
			Valid: true,
		},
	}
	assert.Equal(t, "SALARY|NUMBER|(null)|22|false|2017-03-01 12:30:00 UTC", c.String())

	empty := ColumnMetadata{Name: "X"}
	assert.Equal(t, "X|(null)|(null)|0|(null)|(null)", empty.String())
}
