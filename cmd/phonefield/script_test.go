package main

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vortex-fintech/go-phone/phone"
)

func TestParseScript(t *testing.T) {
	in := strings.Join([]string{
		"# typing a US number",
		"+1",
		"",
		"++12",
		"-+1 (",
		"-",
		"undo",
		"REDO",
		"key ctrl+shift+z\r",
	}, "\n")

	steps, err := parseScript(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, steps, 7)

	require.Equal(t, 2, steps[0].line)
	require.Equal(t, &phone.Edit{Text: "1", Intent: phone.Insertion}, steps[0].ev.Edit)
	require.Equal(t, &phone.Edit{Text: "+12", Intent: phone.Insertion}, steps[1].ev.Edit)
	require.Equal(t, &phone.Edit{Text: "+1 (", Intent: phone.Deletion}, steps[2].ev.Edit)
	require.Equal(t, &phone.Edit{Text: "", Intent: phone.Deletion}, steps[3].ev.Edit)
	require.Equal(t, "undo", steps[4].op)
	require.Equal(t, "redo", steps[5].op)
	require.Equal(t, &phone.KeyPress{Key: "z", Ctrl: true, Shift: true}, steps[6].ev.Key)
	require.Equal(t, 9, steps[6].line)
}

func TestParseScript_Errors(t *testing.T) {
	tests := []struct {
		in  string
		msg string
	}{
		{in: "+1\nbogus", msg: `line 2: unknown command "bogus"`},
		{in: "undo now", msg: "line 1: undo takes no argument"},
		{in: "key alt+z", msg: `line 1: phone: unknown modifier "alt" in "alt+z"`},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			_, err := parseScript(strings.NewReader(tt.in))
			require.EqualError(t, err, tt.msg)
		})
	}
}
