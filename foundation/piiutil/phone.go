package piiutil

import "strings"

const (
	minDigitsToReveal = 5
	revealedDigits    = 2
)

// RedactPhone hides the digits of a phone value for logging while keeping
// its shape (prefix, spaces, brackets, dashes) so masking bugs stay
// visible in logs. The last two digits are kept only once at least five
// digits are present; shorter partial inputs are fully hidden.
//
//	"+1 (202) 555-0123" -> "+* (***) ***-**23"
//	"+1 (202"           -> "+* (***"
//	"+"                 -> "+"
func RedactPhone(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	b := []byte(value)
	total := countDigits(b)
	keep := 0
	if total >= minDigitsToReveal {
		keep = revealedDigits
	}
	maskDigitsKeepLast(b, keep)
	return string(b)
}

func countDigits(b []byte) int {
	n := 0
	for _, c := range b {
		if isDigit(c) {
			n++
		}
	}
	return n
}

// maskDigitsKeepLast replaces ASCII digits with '*' in place, leaving the
// last keep digits untouched.
func maskDigitsKeepLast(b []byte, keep int) {
	seen := 0
	for i := len(b) - 1; i >= 0; i-- {
		if !isDigit(b[i]) {
			continue
		}
		seen++
		if seen > keep {
			b[i] = '*'
		}
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}
