package utils

import (
	"fmt"
	"math"
	"strings"
)

func RoundWithTwoDecimalPlace(f float64) float64 {
	if f == 0 {
		return 0
	}

	return math.Round(f*100) / 100
}

// FormatBRL formata um valor monetário no padrão brasileiro (R$ 1.234,56)
func FormatBRL(value float64) string {
	negative := value < 0
	if negative {
		value = -value
	}

	cents := int64(math.Round(value * 100))
	reais := cents / 100
	rest := cents % 100

	// Agrupa os milhares com ponto
	digits := fmt.Sprintf("%d", reais)
	var groups []string
	for len(digits) > 3 {
		groups = append([]string{digits[len(digits)-3:]}, groups...)
		digits = digits[:len(digits)-3]
	}
	groups = append([]string{digits}, groups...)

	formatted := fmt.Sprintf("R$ %s,%02d", strings.Join(groups, "."), rest)
	if negative {
		return "-" + formatted
	}
	return formatted
}
