package phone

import (
	"unicode/utf8"

	"github.com/vortex-fintech/go-phone/foundation/errx"
	"github.com/vortex-fintech/go-phone/foundation/validator"
)

const (
	DefaultPrefix    = "+"
	DefaultMaskChar  = "."
	DefaultMaxLength = 15
)

// Config tunes how raw input is turned into a canonical value.
// Start from DefaultConfig: the zero value disables the dial-code space.
type Config struct {
	// Prefix is the literal token kept at position 0 of every non-empty value.
	Prefix string `yaml:"prefix" mapstructure:"prefix" validate:"required,nodigits"`
	// MaskChar is the digit placeholder used in country format templates.
	MaskChar string `yaml:"mask_char" mapstructure:"mask_char" validate:"required,maskchar"`
	// InsertSpaceAfterDialCode keeps one space right after prefix+dial code.
	InsertSpaceAfterDialCode bool `yaml:"insert_space_after_dial_code" mapstructure:"insert_space_after_dial_code"`
	// MaxLength caps the stripped input (digits, or the bare prefix).
	// Mask punctuation is not counted.
	MaxLength int `yaml:"max_length" mapstructure:"max_length" validate:"gte=1"`
	// HistoryCapacity bounds undo history per field; 0 is unbounded.
	HistoryCapacity int `yaml:"history_capacity" mapstructure:"history_capacity" validate:"gte=0"`
}

func DefaultConfig() Config {
	return Config{
		Prefix:                   DefaultPrefix,
		MaskChar:                 DefaultMaskChar,
		InsertSpaceAfterDialCode: true,
		MaxLength:                DefaultMaxLength,
	}
}

// Validate reports every invalid option as an errx.ErrConfiguration.
func (c Config) Validate() error {
	if err := errx.ConfigViolations("phone", validator.Validate(c)); err != nil {
		return err
	}
	if c.MaxLength < len(c.Prefix) {
		return errx.Config("phone.max_length", "shorter_than_prefix")
	}
	return nil
}

func (c Config) maskRune() rune {
	r, _ := utf8.DecodeRuneInString(c.MaskChar)
	return r
}
