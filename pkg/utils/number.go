package utils

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro com vírgula
// como separador decimal e duas casas (ex: 25.5 -> "25,50")
func FormatBRL(value float64) string {
	fixed := decimal.NewFromFloat(value).StringFixed(2)
	return strings.Replace(fixed, ".", ",", 1)
}
