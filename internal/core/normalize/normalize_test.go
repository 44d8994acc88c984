package normalize

import "testing"

func TestFold(t *testing.T) {
	n := New()

	cases := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"lowercases", "HELLO World", "hello world"},
		{"fullwidth to ascii", "ＡＢＣ１２３", "abc123"},
		{"zero width removed", "a\u200bb", "ab"},
		{"spaces collapse", "a   b", "a b"},
		{"tab collapses to space", "a\tb", "a b"},
		{"single newline kept", "one\ntwo", "one\ntwo"},
		{"newline with padding", "a \n b", "a\nb"},
		{"paragraph break kept", "one\n\n\n\ntwo", "one\n\ntwo"},
		{"edges trimmed", "  padded \n", "padded"},
		{"nul stripped", "a\x00b", "ab"},
		{"crlf is one break", "one\r\ntwo", "one\ntwo"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := n.Fold(tc.in); got != tc.want {
				t.Fatalf("Fold(%q) = %q, want %q", tc.in, got, tc.want)
			}
		})
	}
}

func TestFoldIdempotent(t *testing.T) {
	n := New()
	for _, in := range []string{"Buy MILK  tomorrow", "- a\n- b", "ＴＯＤＯ list"} {
		once := n.Fold(in)
		if twice := n.Fold(once); twice != once {
			t.Fatalf("Fold not idempotent on %q: %q -> %q", in, once, twice)
		}
	}
}

func TestSanitize(t *testing.T) {
	cases := []struct{ in, want string }{
		{"plain", "plain"},
		{"a\x00b", "ab"},
		{"del\x7fchar", "delchar"},
		{"keep\ttab\nand newline", "keep\ttab\nand newline"},
	}
	for _, tc := range cases {
		if got := Sanitize(tc.in); got != tc.want {
			t.Fatalf("Sanitize(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
