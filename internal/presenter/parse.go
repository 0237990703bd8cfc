package presenter

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotANumber = errors.New("not a number")

// parseOperand parses s as a finite decimal float64. Surrounding whitespace is
// ignored. Go-only literal forms (hex mantissas, digit underscores) are rejected.
func parseOperand(s string) (float64, error) {
	s = strings.TrimSpace(s)
	if !isDecimal(s) {
		return 0, errNotANumber
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, errNotANumber
	}
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, errNotANumber
	}
	return v, nil
}

func isDecimal(s string) bool {
	if strings.ContainsRune(s, '_') {
		return false
	}
	unsigned := strings.TrimLeft(s, "+-")
	return !strings.HasPrefix(unsigned, "0x") && !strings.HasPrefix(unsigned, "0X")
}
