package geo

import (
	"slices"
	"strings"
)

// Country is one row of the dial-code reference table.
//
// Format uses a placeholder rune (conventionally '.') per expected digit
// after the dial code; every other rune is a literal separator. Countries
// that share a dial code are ordered by Priority (lower first), and an
// AreaCodes entry following the dial code makes a more specific match.
type Country struct {
	ISO2      string   `yaml:"iso2" json:"iso2" validate:"required,iso2"`
	Name      string   `yaml:"name" json:"name"`
	DialCode  string   `yaml:"dial_code" json:"dial_code" validate:"required,digits,max=6"`
	Format    string   `yaml:"format,omitempty" json:"format,omitempty" validate:"nodigits"`
	Priority  int      `yaml:"priority,omitempty" json:"priority,omitempty" validate:"gte=0"`
	AreaCodes []string `yaml:"area_codes,omitempty" json:"area_codes,omitempty" validate:"dive,digits"`
}

// HasFormat reports whether the country declares a mask template.
func (c Country) HasFormat() bool {
	return c.Format != ""
}

// normalized returns a copy with ISO2 upper-cased and slices detached from
// the caller.
func (c Country) normalized() Country {
	if iso, ok := NormalizeISO2(c.ISO2); ok {
		c.ISO2 = iso
	}
	c.Name = strings.TrimSpace(c.Name)
	c.DialCode = strings.TrimSpace(c.DialCode)
	c.AreaCodes = slices.Clone(c.AreaCodes)
	return c
}

// matchLen is the number of leading digits this country claims from
// digits, or -1 when its dial code is not a prefix.
func (c Country) matchLen(digits string) int {
	if !strings.HasPrefix(digits, c.DialCode) {
		return -1
	}
	best := len(c.DialCode)
	rest := digits[len(c.DialCode):]
	for _, area := range c.AreaCodes {
		if n := len(c.DialCode) + len(area); n > best && strings.HasPrefix(rest, area) {
			best = n
		}
	}
	return best
}

// NormalizeISO2 trims and uppercases an ASCII ISO2-like code.
//
// Validation here is format-only (two ASCII letters) and does not check
// whether the code is an officially assigned ISO 3166-1 alpha-2 value.
func NormalizeISO2(code string) (string, bool) {
	c := strings.TrimSpace(code)
	if len(c) != 2 || !isASCIILetter(c[0]) || !isASCIILetter(c[1]) {
		return "", false
	}
	return string([]byte{toUpperASCII(c[0]), toUpperASCII(c[1])}), true
}

func isASCIILetter(b byte) bool {
	return (b >= 'A' && b <= 'Z') || (b >= 'a' && b <= 'z')
}

func toUpperASCII(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - ('a' - 'A')
	}
	return b
}
