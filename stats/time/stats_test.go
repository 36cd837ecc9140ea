package time

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-vkfft/internal/testutil"
)

func TestCalculateKnownValues(t *testing.T) {
	s := Calculate([]float64{2, 4, 4, 4, 5, 5, 7, 9})

	if s.Count != 8 {
		t.Fatalf("Count=%d want=8", s.Count)
	}
	if math.Abs(s.Mean-5) > 1e-12 {
		t.Fatalf("Mean=%v want=5", s.Mean)
	}
	if math.Abs(s.Variance-4) > 1e-12 || math.Abs(s.StdDev-2) > 1e-12 {
		t.Fatalf("Variance=%v StdDev=%v want 4, 2", s.Variance, s.StdDev)
	}
	if s.Min != 2 || s.Max != 9 || s.Sum != 40 {
		t.Fatalf("Min=%v Max=%v Sum=%v", s.Min, s.Max, s.Sum)
	}
}

func TestCalculateEmpty(t *testing.T) {
	if s := Calculate(nil); s != (Stats{}) {
		t.Fatalf("empty stats=%+v", s)
	}
}

func TestCalculateSingleValue(t *testing.T) {
	s := Calculate([]float64{3.5})
	if s.Mean != 3.5 || s.StdDev != 0 || s.Min != 3.5 || s.Max != 3.5 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestCalculateNegativeValues(t *testing.T) {
	s := Calculate([]float64{-3, -1, -2})
	if s.Min != -3 || s.Max != -1 || math.Abs(s.Mean+2) > 1e-12 {
		t.Fatalf("unexpected stats %+v", s)
	}
}

func TestStreamingStats_MatchesCalculate(t *testing.T) {
	values := testutil.DeterministicNoise(9, 50, 1000)
	want := Calculate(values)

	for _, block := range []int{1, 7, 64, 1000} {
		ss := NewStreamingStats()
		for i := 0; i < len(values); i += block {
			ss.Update(values[i:min(i+block, len(values))]...)
		}
		if got := ss.Result(); got != want {
			t.Fatalf("block=%d: got %+v want %+v", block, got, want)
		}
	}
}

func TestStreamingStats_Reset(t *testing.T) {
	ss := NewStreamingStats()
	ss.Update(1, 2, 3)
	ss.Reset()
	if ss.Count() != 0 || ss.Result() != (Stats{}) {
		t.Fatal("Reset did not clear state")
	}
	ss.Update(10)
	if ss.Result().Mean != 10 {
		t.Fatalf("Mean after reset=%v want=10", ss.Result().Mean)
	}
}

func TestThroughput(t *testing.T) {
	if got := Throughput(4096, 2); math.Abs(got-2048000) > 1e-6 {
		t.Fatalf("Throughput=%v want=2048000", got)
	}
	if Throughput(10, 0) != 0 || Throughput(10, -1) != 0 {
		t.Fatal("non-positive duration must give 0")
	}
}
