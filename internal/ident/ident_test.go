package ident

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		in   string
		want []string
	}{
		{"EMP", []string{"emp"}},
		{"EMP_NAME", []string{"emp", "name"}},
		{"empName", []string{"emp", "name"}},
		{"order items", []string{"order", "items"}},
		{"ADDRESS2_LINE", []string{"address2", "line"}},
		{"__x__", []string{"x"}},
		{"", nil},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Words(tt.in))
		})
	}
}

func TestSnakeAndPascal(t *testing.T) {
	assert.Equal(t, "emp_name", Snake("EMP_NAME"))
	assert.Equal(t, "emp_salary", Snake(Join("EMP", "SALARY")))
	assert.Equal(t, "Emp", Pascal("EMP"))
	assert.Equal(t, "OrderItem", Pascal("order_item"))
	assert.Equal(t, "EmpName", Pascal(Join("EMP", "NAME")))
}

func TestJoinSkipsEmpty(t *testing.T) {
	assert.Equal(t, "NAME", Join("", "NAME"))
	assert.Equal(t, "EMP_NAME", Join("EMP", "NAME"))
}

func TestSafe(t *testing.T) {
	assert.Equal(t, "_", Safe(""))
	assert.Equal(t, "_2fa", Safe("2fa"))
	assert.Equal(t, "emp", Safe("emp"))
}
