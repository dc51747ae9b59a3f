package textutil

import "strings"

// Mask describes how a digit run is rendered against a template such as
// "(...) ...-....".
type Mask struct {
	// Template holds one Symbol per digit slot; any other rune is a literal.
	Template string
	Symbol   rune
	// Offset is the number of leading bytes kept verbatim (prefix and dial
	// code). They are not matched against the template.
	Offset int
	// TrimLeftover marks a deletion edit. Literal runs are never rendered
	// past the last available digit in either mode.
	TrimLeftover bool
}

// ApplyMask renders value[Offset:] through the template. Each slot takes
// the next digit; a literal run is written only once a digit follows it.
// Digits beyond the last slot are dropped.
func ApplyMask(value string, m Mask) string {
	offset := m.Offset
	if offset < 0 {
		offset = 0
	}
	if m.Template == "" || len(value) < offset {
		return value
	}

	head, rest := value[:offset], value[offset:]

	var b strings.Builder
	b.Grow(len(head) + len(m.Template))
	b.WriteString(head)

	var pending strings.Builder
	placed := 0
	for _, r := range m.Template {
		if placed >= len(rest) {
			break
		}
		if r != m.Symbol {
			pending.WriteRune(r)
			continue
		}
		b.WriteString(pending.String())
		pending.Reset()
		b.WriteByte(rest[placed])
		placed++
	}

	return b.String()
}

// SlotCount returns how many digit slots the template declares.
func SlotCount(template string, symbol rune) int {
	return strings.Count(template, string(symbol))
}
