package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	require.Equal(t, "+", cfg.Prefix)
	require.Equal(t, ".", cfg.MaskChar)
	require.True(t, cfg.InsertSpaceAfterDialCode)
	require.Equal(t, 15, cfg.MaxLength)
	require.Equal(t, 0, cfg.HistoryCapacity)
	require.NoError(t, cfg.Validate())
	require.Equal(t, '.', cfg.maskRune())
}

func TestConfigValidate_ReportsAllFields(t *testing.T) {
	err := Config{}.Validate()
	require.EqualError(t, err,
		"config: phone.mask_char: required\n"+
			"config: phone.max_length: too_small_or_equal\n"+
			"config: phone.prefix: required")
}

func TestIntentFromInputType(t *testing.T) {
	tests := []struct {
		in   string
		want Intent
	}{
		{in: "insertText", want: Insertion},
		{in: "insertFromPaste", want: Insertion},
		{in: "deleteContentBackward", want: Deletion},
		{in: "deleteByCut", want: Deletion},
		{in: "historyUndo", want: Insertion},
		{in: "", want: Insertion},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, IntentFromInputType(tt.in), tt.in)
	}
}

func TestIntentString(t *testing.T) {
	require.Equal(t, "insertion", Insertion.String())
	require.Equal(t, "deletion", Deletion.String())
	require.Equal(t, "unknown", Intent(9).String())
}
