package testkit

import "testing"

func TestSwapRestores(t *testing.T) {
	v := 1
	t.Run("swapped", func(t *testing.T) {
		Swap(t, &v, 2)
		if v != 2 {
			t.Fatalf("swap did not apply")
		}
	})
	if v != 1 {
		t.Fatalf("swap did not restore, v = %d", v)
	}
}

func TestMustPanic(t *testing.T) {
	MustPanic(t, func() { panic("boom") })
}

func TestMustNotPanic(t *testing.T) {
	MustNotPanic(t, func() {})
}

func TestMustContain(t *testing.T) {
	MustContain(t, "the quick brown fox", "quick")
}
