package errx

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConfigError_Messages(t *testing.T) {
	tests := []struct {
		name string
		err  ConfigError
		want string
	}{
		{name: "empty", err: ConfigError{}, want: "config: invalid"},
		{name: "reason only", err: ConfigError{Reason: "table is empty"}, want: "config: table is empty"},
		{name: "field only", err: ConfigError{Field: "phone.prefix"}, want: "config: phone.prefix: invalid"},
		{name: "field and reason", err: ConfigError{Field: "phone.mask_char", Reason: "must_not_be_digit"}, want: "config: phone.mask_char: must_not_be_digit"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, tt.err.Error())
		})
	}
}

func TestConfig_IsSentinel(t *testing.T) {
	err := Config(" country.dial_code ", " required ")
	require.ErrorIs(t, err, ErrConfiguration)
	require.True(t, IsConfig(err))
	require.Equal(t, "config: country.dial_code: required", err.Error())
}

func TestConfigf_KeepsBase(t *testing.T) {
	base := errors.New("yaml: line 3")
	err := Configf(base, "decode %s", "countries.yaml")

	require.ErrorIs(t, err, ErrConfiguration)
	require.ErrorIs(t, err, base)
	require.Equal(t, "config: decode countries.yaml", err.Error())
}

func TestConfigViolations(t *testing.T) {
	require.NoError(t, ConfigViolations("phone", nil))

	err := ConfigViolations("phone", map[string]string{
		"Prefix":   "required",
		"MaskChar": "must_not_be_digit",
	})
	require.Error(t, err)
	require.True(t, IsConfig(err))
	require.ErrorIs(t, err, ErrConfiguration)
	require.Equal(t,
		"config: phone.MaskChar: must_not_be_digit\nconfig: phone.Prefix: required",
		err.Error())
}

func TestIsConfig_OtherErrors(t *testing.T) {
	require.False(t, IsConfig(nil))
	require.False(t, IsConfig(errors.New("boom")))
}
