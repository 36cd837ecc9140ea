package testutil

import (
	"math"
	"testing"
)

func TestSameFloat(t *testing.T) {
	tests := []struct {
		a, b float64
		want bool
	}{
		{1, 1, true},
		{1, 2, false},
		{math.NaN(), math.NaN(), true},
		{math.NaN(), 0, false},
		{math.Inf(1), math.Inf(1), true},
		{math.Inf(1), math.Inf(-1), false},
	}
	for _, tt := range tests {
		if got := SameFloat(tt.a, tt.b); got != tt.want {
			t.Fatalf("SameFloat(%v, %v)=%v want=%v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestMaxAbsDiff(t *testing.T) {
	a := []float64{1.0, 2.0, 3.0}
	b := []float64{1.0, 2.1, 3.0}

	d, err := MaxAbsDiff(a, b)
	if err != nil {
		t.Fatalf("MaxAbsDiff error: %v", err)
	}

	if math.Abs(d-0.1) > 1e-15 {
		t.Fatalf("MaxAbsDiff = %v, want 0.1", d)
	}
}

func TestMaxAbsDiffLengthMismatch(t *testing.T) {
	if _, err := MaxAbsDiff([]float64{1}, []float64{1, 2}); err == nil {
		t.Fatal("expected error for length mismatch")
	}
	if _, err := MaxAbsDiffComplex([]complex128{1}, nil); err == nil {
		t.Fatal("expected error for complex length mismatch")
	}
}

func TestMaxAbsDiffComplex(t *testing.T) {
	d, err := MaxAbsDiffComplex([]complex128{1 + 1i, 0}, []complex128{1 + 1i, 3 + 4i})
	if err != nil {
		t.Fatalf("MaxAbsDiffComplex error: %v", err)
	}
	if math.Abs(d-5) > 1e-15 {
		t.Fatalf("MaxAbsDiffComplex = %v, want 5", d)
	}
}
