package paymig

import "testing"

func TestShortID(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"", ""},
		{"abc", "abc"},
		{"01234567", "01234567"},
		{"7f3c2a1e-9b4d-4f6a-8c2e-d5a1b0c9e8f7", "7f3c2a1e"},
	}
	for _, c := range cases {
		if got := shortID(c.in); got != c.want {
			t.Fatalf("shortID(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}
