package textutil

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStripNonDigits(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		in       string
		preserve string
		want     string
	}{
		{name: "empty", in: "", preserve: "+", want: ""},
		{name: "bare prefix kept", in: "+", preserve: "+", want: "+"},
		{name: "prefix with digits stripped", in: "+1", preserve: "+", want: "1"},
		{name: "masked value", in: "+1 (202) 555-0123", preserve: "+", want: "12025550123"},
		{name: "letters and unicode digits", in: "a1b٢c3", preserve: "+", want: "13"},
		{name: "no preserve token", in: "+", preserve: "", want: ""},
		{name: "multi rune prefix", in: "00", preserve: "00", want: "00"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, StripNonDigits(tt.in, tt.preserve))
		})
	}
}

func TestStripNonDigits_Idempotent(t *testing.T) {
	t.Parallel()

	inputs := []string{"", "+", "+1", "+44 20 7946 0958", "(555) 010-9999", "abc", "+7 (700) 123-45-67"}
	for _, in := range inputs {
		once := StripNonDigits(in, "+")
		require.Equal(t, once, StripNonDigits(once, "+"), "input %q", in)
		require.Equal(t, DigitsOnly(in), DigitsOnly(DigitsOnly(in)), "input %q", in)
	}
}

func TestInsertAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		s    string
		pos  int
		ch   rune
		want string
	}{
		{name: "middle", s: "+1(202)", pos: 2, ch: ' ', want: "+1 (202)"},
		{name: "start", s: "1", pos: 0, ch: '+', want: "+1"},
		{name: "end", s: "+1", pos: 2, ch: ' ', want: "+1 "},
		{name: "past end clamps", s: "+1", pos: 9, ch: ' ', want: "+1 "},
		{name: "negative clamps", s: "1", pos: -3, ch: '+', want: "+1"},
		{name: "already present", s: "+1 (202)", pos: 2, ch: ' ', want: "+1 (202)"},
		{name: "different char present", s: "+1-202", pos: 2, ch: ' ', want: "+1 -202"},
		{name: "multibyte rune", s: "ab", pos: 1, ch: '•', want: "a•b"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tt.want, InsertAt(tt.s, tt.pos, tt.ch))
		})
	}
}

func TestInsertAt_RepeatedIsStable(t *testing.T) {
	t.Parallel()

	s := InsertAt("+1(202)", 2, ' ')
	require.Equal(t, s, InsertAt(s, 2, ' '))
}
