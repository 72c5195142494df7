package parstat

import "testing"

func TestGenerateLengthAndRange(t *testing.T) {
	src := NewSeededSource(1)
	buf := Generate(1000, src)
	if len(buf) != 1000 {
		t.Fatalf("got %d samples, want 1000", len(buf))
	}
	for i, x := range buf {
		if x < 0 || x >= 1 {
			t.Errorf("sample %d = %v, want [0, 1)", i, x)
		}
	}
}

func TestGenerateZero(t *testing.T) {
	if got := Generate(0, NewSeededSource(1)); len(got) != 0 {
		t.Errorf("Generate(0) returned %d samples", len(got))
	}
}

func TestGenerateSeededReproducible(t *testing.T) {
	a := Generate(100, NewSeededSource(99))
	b := Generate(100, NewSeededSource(99))
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("seeded draws diverge at %d: %v vs %v", i, a[i], b[i])
		}
	}
}

func TestGenerateNilSource(t *testing.T) {
	buf := Generate(10, nil)
	if len(buf) != 10 {
		t.Fatalf("got %d samples, want 10", len(buf))
	}
	for i, x := range buf {
		if x < 0 || x >= 1 {
			t.Errorf("sample %d = %v, want [0, 1)", i, x)
		}
	}
}
