// internal/utils/utils_test.go
package utils

import (
	"math"
	"testing"
)

func TestPRNGService_RangeBounds(t *testing.T) {
	s := NewPRNGService(42)
	for i := 0; i < 10000; i++ {
		v := s.Range(0.0008, 0.0023)
		if v < 0.0008 || v >= 0.0023 {
			t.Fatalf("Range returned %v outside [0.0008, 0.0023)", v)
		}
	}
	if got := s.Range(3, 3); got != 3 {
		t.Fatalf("empty range = %v, want 3", got)
	}
	if got := s.Range(5, 1); got != 5 {
		t.Fatalf("inverted range = %v, want 5", got)
	}
}

func TestPRNGService_SeedReplays(t *testing.T) {
	a, b := NewPRNGService(99), NewPRNGService(99)
	for i := 0; i < 100; i++ {
		if a.Intn(1000) != b.Intn(1000) {
			t.Fatal("same seed must produce the same sequence")
		}
	}
	if NewPRNGService(0).Seed() == 0 {
		t.Fatal("zero seed should be replaced by the clock")
	}
}

func TestHeadingAndLerp(t *testing.T) {
	if got := Heading(0, 0, 0, 10); math.Abs(got-math.Pi/2) > 1e-12 {
		t.Fatalf("heading down = %v, want π/2", got)
	}
	if got := Lerp(10, 20, 0.25); got != 12.5 {
		t.Fatalf("Lerp = %v, want 12.5", got)
	}
}
