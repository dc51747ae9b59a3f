package phone

import (
	"errors"
	"fmt"

	"github.com/nyaruka/phonenumbers"

	"github.com/vortex-fintech/go-phone/foundation/geo"
)

var ErrNoDigits = errors.New("phone: no digits")

// State is what a host renders after each processed edit. Every field is
// derived from Value.
type State struct {
	Value   string       `json:"value"`
	Digits  string       `json:"digits"`
	Country *geo.Country `json:"country,omitempty"`
}

// ISO2 returns the matched country code, or "" when nothing matched.
func (s State) ISO2() string {
	if s.Country == nil {
		return ""
	}
	return s.Country.ISO2
}

// E164 renders the digits as "+<digits>" through libphonenumber. It only
// parses and formats; it does not check that the number is dialable.
func (s State) E164() (string, error) {
	if s.Digits == "" {
		return "", ErrNoDigits
	}
	num, err := phonenumbers.Parse("+"+s.Digits, "")
	if err != nil {
		return "", fmt.Errorf("phone: e164: %w", err)
	}
	return phonenumbers.Format(num, phonenumbers.E164), nil
}
