package strings

import "testing"

func TestFirstLine(t *testing.T) {
	cases := []struct{ in, want string }{
		{"", ""},
		{"one", "one"},
		{"  padded  \nsecond", "padded"},
		{"\n\n  \nthird line\nrest", "third line"},
	}
	for _, tc := range cases {
		if got := FirstLine(tc.in); got != tc.want {
			t.Fatalf("FirstLine(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestTruncateRunes(t *testing.T) {
	if got := TruncateRunes("hello", 10); got != "hello" {
		t.Fatalf("short strings pass through: %q", got)
	}
	if got := TruncateRunes("hello", 3); got != "hel…" {
		t.Fatalf("got %q", got)
	}
	if got := TruncateRunes("héllo wörld", 5); got != "héllo…" {
		t.Fatalf("rune-aware cut failed: %q", got)
	}
	if got := TruncateRunes("anything", 0); got != "" {
		t.Fatalf("n<=0 yields empty: %q", got)
	}
}
