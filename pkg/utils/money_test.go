package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 10.57, RoundWithTwoDecimalPlace(10.567))
	assert.Equal(t, 10.56, RoundWithTwoDecimalPlace(10.564))
	assert.Equal(t, -3.33, RoundWithTwoDecimalPlace(-3.333))
}

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		value    float64
		expected string
	}{
		{0, "R$ 0,00"},
		{9.9, "R$ 9,90"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{25000, "R$ 25.000,00"},
		{-4200.5, "-R$ 4.200,50"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatBRL(tt.value))
		})
	}
}
