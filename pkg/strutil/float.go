package strutil

import (
	"errors"
	"strconv"
	"strings"
)

// IsFloat reports whether s can be parsed as a floating-point number.
//
// Surrounding whitespace is ignored. Signed decimals, exponents and the
// special values inf, infinity and nan are accepted. Values too large for a
// float64 still count as numbers. Hexadecimal float literals are rejected.
func IsFloat(s string) bool {
	s = strings.TrimSpace(s)
	if s == "" || isHex(s) {
		return false
	}

	// ParseFloat only accepts an unsigned NaN.
	if strings.EqualFold(trimSign(s), "nan") {
		return true
	}

	_, err := strconv.ParseFloat(s, 64)
	if err == nil {
		return true
	}

	return errors.Is(err, strconv.ErrRange)
}

func trimSign(s string) string {
	if s != "" && (s[0] == '+' || s[0] == '-') {
		return s[1:]
	}

	return s
}

func isHex(s string) bool {
	s = trimSign(s)

	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}
