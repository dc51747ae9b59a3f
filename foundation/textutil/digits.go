package textutil

import (
	"strings"
	"unicode/utf8"
)

// StripNonDigits drops every byte that is not an ASCII digit.
// When s equals preserve exactly (a bare prefix such as "+"), s is returned
// unchanged so a user who erased everything but the prefix keeps it.
func StripNonDigits(s, preserve string) string {
	if preserve != "" && s == preserve {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if c := s[i]; c >= '0' && c <= '9' {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// DigitsOnly is StripNonDigits without a preserved token.
func DigitsOnly(s string) string {
	return StripNonDigits(s, "")
}

// InsertAt inserts ch at byte offset pos. pos is clamped to [0, len(s)].
// If ch already sits at pos the input is returned as is, so repeated
// formatting passes never stack separators.
func InsertAt(s string, pos int, ch rune) string {
	if pos < 0 {
		pos = 0
	}
	if pos > len(s) {
		pos = len(s)
	}
	if r, _ := utf8.DecodeRuneInString(s[pos:]); r == ch && pos < len(s) {
		return s
	}

	var b strings.Builder
	b.Grow(len(s) + utf8.RuneLen(ch))
	b.WriteString(s[:pos])
	b.WriteRune(ch)
	b.WriteString(s[pos:])
	return b.String()
}
