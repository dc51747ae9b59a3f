package phone

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseKeyPress(t *testing.T) {
	tests := []struct {
		in      string
		want    KeyPress
		wantErr bool
	}{
		{in: "ctrl+z", want: KeyPress{Key: "z", Ctrl: true}},
		{in: "Ctrl+Shift+Z", want: KeyPress{Key: "Z", Ctrl: true, Shift: true}},
		{in: " control + z ", want: KeyPress{Key: "z", Ctrl: true}},
		{in: "z", want: KeyPress{Key: "z"}},
		{in: "alt+z", wantErr: true},
		{in: "ctrl+", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKeyPress(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, got)
		})
	}
}

func TestKeyPressAction(t *testing.T) {
	require.Equal(t, keyUndo, KeyPress{Key: "z", Ctrl: true}.action())
	require.Equal(t, keyUndo, KeyPress{Key: "Z", Ctrl: true}.action())
	require.Equal(t, keyRedo, KeyPress{Key: "z", Ctrl: true, Shift: true}.action())
	require.Equal(t, keyNone, KeyPress{Key: "z", Shift: true}.action())
	require.Equal(t, keyNone, KeyPress{Key: "a", Ctrl: true}.action())
}

func TestKeyPressString(t *testing.T) {
	require.Equal(t, "ctrl+shift+z", KeyPress{Key: "Z", Ctrl: true, Shift: true}.String())
	require.Equal(t, "ctrl+z", KeyPress{Key: "z", Ctrl: true}.String())
}
