package errx

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrConfiguration is the sentinel behind every construction-time failure.
// Match it with errors.Is.
var ErrConfiguration = errors.New("configuration error")

// ConfigError describes one rejected configuration value.
//
//	"config: phone.mask_char: must_not_be_digit"
type ConfigError struct {
	Field  string
	Reason string
	Base   error
}

func (e ConfigError) Error() string {
	switch {
	case e.Field == "" && e.Reason == "":
		return "config: invalid"
	case e.Field == "":
		return fmt.Sprintf("config: %s", e.Reason)
	case e.Reason == "":
		return fmt.Sprintf("config: %s: invalid", e.Field)
	default:
		return fmt.Sprintf("config: %s: %s", e.Field, e.Reason)
	}
}

// Unwrap returns both the sentinel and the optional cause so that
// errors.Is works against either.
func (e ConfigError) Unwrap() []error {
	if e.Base == nil {
		return []error{ErrConfiguration}
	}
	return []error{ErrConfiguration, e.Base}
}

// Config builds a ConfigError for a single field.
func Config(field, reason string) error {
	return ConfigError{Field: strings.TrimSpace(field), Reason: strings.TrimSpace(reason)}
}

// Configf wraps base as a configuration failure with an optional message.
func Configf(base error, format string, a ...any) error {
	return ConfigError{Reason: strings.TrimSpace(fmt.Sprintf(format, a...)), Base: base}
}

// ConfigViolations turns a field→code map (as produced by the validator
// package) into a joined error. Fields are sorted so the message is stable.
// Returns nil for an empty map.
func ConfigViolations(prefix string, m map[string]string) error {
	if len(m) == 0 {
		return nil
	}
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	errs := make([]error, 0, len(fields))
	for _, f := range fields {
		name := f
		if prefix != "" {
			name = prefix + "." + f
		}
		errs = append(errs, Config(name, m[f]))
	}
	return errors.Join(errs...)
}

// IsConfig reports whether err carries a ConfigError anywhere in its chain.
func IsConfig(err error) bool {
	var ce ConfigError
	return errors.As(err, &ce)
}
