package geo

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/vortex-fintech/go-phone/foundation/errx"
	"github.com/vortex-fintech/go-phone/foundation/validator"
)

// Table is an immutable, canonically ordered set of countries.
// It is safe for concurrent use.
type Table struct {
	countries []Country
	byISO2    map[string]int
}

type tableInput struct {
	Countries []Country `yaml:"countries" validate:"required,min=1,dive"`
}

// NewTable validates the rows and orders them by (Priority, ISO2).
// Any problem is reported as an errx.ErrConfiguration.
func NewTable(countries []Country) (*Table, error) {
	rows := make([]Country, len(countries))
	for i, c := range countries {
		rows[i] = c.normalized()
	}

	if err := errx.ConfigViolations("", validator.Validate(tableInput{Countries: rows})); err != nil {
		return nil, err
	}

	byISO2 := make(map[string]int, len(rows))
	for i, c := range rows {
		if _, dup := byISO2[c.ISO2]; dup {
			return nil, errx.Config(fmt.Sprintf("countries[%d].iso2", i), "duplicate")
		}
		byISO2[c.ISO2] = i
	}

	slices.SortStableFunc(rows, func(a, b Country) int {
		if c := cmp.Compare(a.Priority, b.Priority); c != 0 {
			return c
		}
		return cmp.Compare(a.ISO2, b.ISO2)
	})
	for i, c := range rows {
		byISO2[c.ISO2] = i
	}

	return &Table{countries: rows, byISO2: byISO2}, nil
}

// MustTable is NewTable for static data known to be valid.
func MustTable(countries []Country) *Table {
	t, err := NewTable(countries)
	if err != nil {
		panic(err)
	}
	return t
}

// Guess returns the country whose dial code (plus area code, if any) is
// the longest prefix of digits. Ties go to the earliest row in canonical
// order, so the result is stable for a given table.
func (t *Table) Guess(digits string) (Country, bool) {
	if t == nil || digits == "" {
		return Country{}, false
	}

	best, bestLen := -1, 0
	for i, c := range t.countries {
		if n := c.matchLen(digits); n > bestLen {
			best, bestLen = i, n
		}
	}
	if best < 0 {
		return Country{}, false
	}
	return t.countries[best], true
}

// Lookup finds a country by ISO2 code, case-insensitively.
func (t *Table) Lookup(iso2 string) (Country, bool) {
	code, ok := NormalizeISO2(iso2)
	if !ok || t == nil {
		return Country{}, false
	}
	i, ok := t.byISO2[code]
	if !ok {
		return Country{}, false
	}
	return t.countries[i], true
}

// Countries returns a copy of the rows in canonical order.
func (t *Table) Countries() []Country {
	if t == nil {
		return nil
	}
	out := make([]Country, len(t.countries))
	for i, c := range t.countries {
		c.AreaCodes = slices.Clone(c.AreaCodes)
		out[i] = c
	}
	return out
}

func (t *Table) Len() int {
	if t == nil {
		return 0
	}
	return len(t.countries)
}
