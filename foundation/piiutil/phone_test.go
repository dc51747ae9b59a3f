package piiutil

import "testing"

func TestRedactPhone(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "empty", in: "", want: ""},
		{name: "blank", in: "   ", want: ""},
		{name: "bare prefix", in: "+", want: "+"},
		{name: "dial code only", in: "+1", want: "+*"},
		{name: "four digits hidden", in: "+1 (202", want: "+* (***"},
		{name: "five digits reveal two", in: "+1 (202) 5", want: "+* (**2) 5"},
		{name: "full number", in: "+1 (202) 555-0123", want: "+* (***) ***-**23"},
		{name: "trim spaces", in: "  +44 7911  ", want: "+** **11"},
		{name: "non ascii digits untouched", in: "+٣٣", want: "+٣٣"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := RedactPhone(tt.in); got != tt.want {
				t.Fatalf("RedactPhone(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestMaskDigitsKeepLast(t *testing.T) {
	b := []byte("12-34")
	maskDigitsKeepLast(b, 0)
	if string(b) != "**-**" {
		t.Fatalf("unexpected mask: %q", b)
	}

	b = []byte("12-34")
	maskDigitsKeepLast(b, 10)
	if string(b) != "12-34" {
		t.Fatalf("keep beyond count must be a no-op: %q", b)
	}
}
