package ansi

import "testing"

func TestTokenRoundTrip(t *testing.T) {
	cases := []struct {
		kind byte
		data int
	}{
		{'m', 38},
		{'m', 0},
		{'H', 1},
		{'A', 5},
		{'m', 255},
	}
	for _, c := range cases {
		tok := Token{Kind: c.kind, Data: c.data}
		if tok.Kind != c.kind || tok.Data != c.data {
			t.Errorf("Token{%q, %d} read back as {%q, %d}", c.kind, c.data, tok.Kind, tok.Data)
		}
	}
}

func TestTokenIsSGR(t *testing.T) {
	if !(Token{Kind: 'm', Data: 38}).IsSGR() {
		t.Error("kind 'm' should be SGR")
	}
	for _, kind := range []byte{'H', 'A', 'B', 'C', 'D', 'J', 'K', 'l', 'h', '~'} {
		if (Token{Kind: kind, Data: 1}).IsSGR() {
			t.Errorf("kind %q should not be SGR", kind)
		}
	}
}

func TestTokenEquality(t *testing.T) {
	a := Token{Kind: 'm', Data: 38}
	b := Token{Kind: 'm', Data: 38}
	if a != b {
		t.Error("identical tokens should compare equal")
	}
	if a == (Token{Kind: 'm', Data: 2}) {
		t.Error("tokens differing in Data should not compare equal")
	}
	if a == (Token{Kind: 'H', Data: 38}) {
		t.Error("tokens differing in Kind should not compare equal")
	}
}
