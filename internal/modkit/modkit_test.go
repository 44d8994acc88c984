package modkit

import "testing"

func TestBuildAppliesOptions(t *testing.T) {
	type ports struct{ A int }
	b := Build(WithName("capture"), WithPorts(ports{A: 7}))
	if b.Name != "capture" {
		t.Fatalf("name = %q", b.Name)
	}
	p, ok := b.Ports.(ports)
	if !ok || p.A != 7 {
		t.Fatalf("ports = %#v", b.Ports)
	}
}

func TestBuildZero(t *testing.T) {
	b := Build()
	if b.Name != "" || b.Ports != nil {
		t.Fatalf("zero build should be empty: %+v", b)
	}
}

func TestDepsZeroOK(t *testing.T) {
	var d Deps
	if !d.ZeroOK() {
		t.Fatalf("zero deps should be usable in tests")
	}
}
