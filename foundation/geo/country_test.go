package geo

import "testing"

func TestNormalizeISO2(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
		ok   bool
	}{
		{name: "trim and uppercase", in: "  us  ", want: "US", ok: true},
		{name: "already normalized", in: "DE", want: "DE", ok: true},
		{name: "mixed case", in: "gB", want: "GB", ok: true},
		{name: "contains digit", in: "A1", want: "", ok: false},
		{name: "too short", in: "U", want: "", ok: false},
		{name: "too long", in: "USA", want: "", ok: false},
		{name: "non ascii letters", in: "éé", want: "", ok: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := NormalizeISO2(tt.in)
			if ok != tt.ok || got != tt.want {
				t.Fatalf("NormalizeISO2(%q) = (%q, %t), want (%q, %t)", tt.in, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestCountryMatchLen(t *testing.T) {
	ca := Country{ISO2: "CA", DialCode: "1", AreaCodes: []string{"204", "416"}}

	tests := []struct {
		name   string
		digits string
		want   int
	}{
		{name: "no prefix", digits: "44", want: -1},
		{name: "dial code only", digits: "1", want: 1},
		{name: "partial area code", digits: "120", want: 1},
		{name: "area code", digits: "1204555", want: 4},
		{name: "other area code", digits: "14165550000", want: 4},
		{name: "shorter than dial code", digits: "", want: -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ca.matchLen(tt.digits); got != tt.want {
				t.Fatalf("matchLen(%q) = %d, want %d", tt.digits, got, tt.want)
			}
		})
	}
}

func TestCountryNormalizedDetachesAreaCodes(t *testing.T) {
	src := []string{"204"}
	c := Country{ISO2: " ca ", DialCode: " 1 ", AreaCodes: src}.normalized()

	if c.ISO2 != "CA" || c.DialCode != "1" {
		t.Fatalf("unexpected normalized country: %+v", c)
	}
	src[0] = "999"
	if c.AreaCodes[0] != "204" {
		t.Fatal("normalized country must not share area code storage")
	}
}
