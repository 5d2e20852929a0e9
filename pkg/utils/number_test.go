package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatBRL(t *testing.T) {
	tests := []struct {
		name  string
		value float64
		want  string
	}{
		{name: "valor com centavos", value: 25.5, want: "25,50"},
		{name: "valor inteiro", value: 3, want: "3,00"},
		{name: "zero", value: 0, want: "0,00"},
		{name: "centavo único", value: 0.01, want: "0,01"},
		{name: "milhar sem separador de milhar", value: 1234.5, want: "1234,50"},
		{name: "arredondamento de meio centavo", value: 10.005, want: "10,01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatBRL(tt.value))
		})
	}
}

func TestRoundWithTwoDecimalPlace(t *testing.T) {
	assert.Equal(t, 0.0, RoundWithTwoDecimalPlace(0))
	assert.Equal(t, 25.5, RoundWithTwoDecimalPlace(25.499999999))
	assert.Equal(t, 10.35, RoundWithTwoDecimalPlace(10.346))
	assert.Equal(t, 150.0, RoundWithTwoDecimalPlace(150.0000001))
}
