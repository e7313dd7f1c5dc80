package calc

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0"},
		{math.Copysign(0, -1), "0"},
		{8, "8"},
		{-3, "-3"},
		{2.5, "2.5"},
		{-0.25, "-0.25"},
		{1.0 / 3.0, "0.3333333333333333"},
		{1e20, "100000000000000000000"},
		{1e-7, "0.0000001"},
		{123456789.125, "123456789.125"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatNumber(tt.in))
		})
	}
}

func TestParseDisplay(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"0", 0},
		{"12", 12},
		{"5.", 5},
		{"-0.", 0},
		{"-2.5", -2.5},
		{"Cannot divide by zero", 0},
		{"", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDisplay(tt.in))
		})
	}

	assert.True(t, math.IsInf(ParseDisplay("1e400"), 1))
}

func TestOperatorApply(t *testing.T) {
	assert.Equal(t, 7.0, OpAdd.Apply(3, 4))
	assert.Equal(t, -1.0, OpSubtract.Apply(3, 4))
	assert.Equal(t, 12.0, OpMultiply.Apply(3, 4))
	assert.Equal(t, 0.75, OpDivide.Apply(3, 4))
	assert.Equal(t, 4.0, OpNone.Apply(3, 4))
}
